// Package models defines the data structures shared across the addon.
package models

// Meta is the externally visible catalog unit handed to Stremio.
// Enrichment fields beyond id/name/type are passed through from
// Cinemeta when available.
type Meta struct {
	ID          string   `json:"id"`
	Type        string   `json:"type"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Poster      string   `json:"poster,omitempty"`
	PosterShape string   `json:"posterShape,omitempty"`
	Background  string   `json:"background,omitempty"`
	Logo        string   `json:"logo,omitempty"`
	Genres      []string `json:"genres,omitempty"`
	ReleaseInfo string   `json:"releaseInfo,omitempty"`
	Runtime     string   `json:"runtime,omitempty"`
	IMDBRating  string   `json:"imdbRating,omitempty"`
	Cast        []string `json:"cast,omitempty"`
	Director    []string `json:"director,omitempty"`
}

// CatalogResponse is the body of a catalog route response.
type CatalogResponse struct {
	Metas []Meta `json:"metas"`
}

// Resolution is the durable output of resolving one raw listing to a
// canonical IMDB id. A nil *Resolution stored under a key is a cached
// negative result.
type Resolution struct {
	IMDBID      string `json:"imdbId"`
	Title       string `json:"title"`
	Year        int    `json:"year,omitempty"`
	Description string `json:"description,omitempty"`
	Poster      string `json:"poster,omitempty"`
}

// SearchCandidate is one hit of a title search, ephemeral per request.
type SearchCandidate struct {
	ExternalID       string
	Title            string
	ReleaseYear      int // 0 when the API returned none
	ShortDescription string
	PosterURL        string
	IMDBID           string
}

// Manifest is the Stremio addon manifest.
type Manifest struct {
	ID            string        `json:"id"`
	Version       string        `json:"version"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	Logo          string        `json:"logo,omitempty"`
	Catalogs      []Catalog     `json:"catalogs"`
	Resources     []string      `json:"resources"`
	Types         []string      `json:"types"`
	IDPrefixes    []string      `json:"idPrefixes"`
	BehaviorHints BehaviorHints `json:"behaviorHints"`
}

// Catalog describes one catalog entry of the manifest.
type Catalog struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Name string `json:"name"`
}

// BehaviorHints signals addon capabilities to the client.
type BehaviorHints struct {
	Configurable bool `json:"configurable"`
}
