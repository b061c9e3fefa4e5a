package services

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/facuparedes/streaming-catalogs-addon/internal/constants"
	"github.com/facuparedes/streaming-catalogs-addon/internal/models"
	"github.com/facuparedes/streaming-catalogs-addon/pkg/httputil"
	"github.com/facuparedes/streaming-catalogs-addon/pkg/logger"
)

// Cinemeta fetches enriched metadata by IMDB id from the public
// Cinemeta API.
type Cinemeta struct {
	httpClient *http.Client
	baseURL    string
	logger     logger.Logger
}

// NewCinemeta creates a Cinemeta client.
func NewCinemeta(log logger.Logger) *Cinemeta {
	return &Cinemeta{
		httpClient: httputil.NewClient(constants.CinemetaTimeout),
		baseURL:    "https://v3-cinemeta.strem.io",
		logger:     log,
	}
}

type cinemetaResponse struct {
	Meta *models.Meta `json:"meta"`
}

// FetchMeta returns the Cinemeta metadata for an id, or an error when
// the lookup fails or the id is unknown. Callers fall back to a basic
// meta on error.
func (c *Cinemeta) FetchMeta(imdbID, contentType, fallbackTitle string) (*models.Meta, error) {
	stremioType := StremioType(contentType)

	resp, err := c.httpClient.Get(fmt.Sprintf("%s/meta/%s/%s.json", c.baseURL, stremioType, imdbID))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cinemeta data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cinemeta API error: status %d", resp.StatusCode)
	}

	var body cinemetaResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode cinemeta response: %w", err)
	}
	if body.Meta == nil {
		return nil, fmt.Errorf("cinemeta returned no meta for %s", imdbID)
	}

	meta := *body.Meta
	meta.ID = imdbID
	if meta.Name == "" {
		meta.Name = fallbackTitle
	}
	return &meta, nil
}

// BasicMeta synthesizes a minimal meta when enrichment is unavailable.
func BasicMeta(imdbID, title, contentType string) models.Meta {
	return models.Meta{
		ID:          imdbID,
		Name:        title,
		Type:        StremioType(contentType),
		Poster:      genericPosterURL(imdbID),
		PosterShape: "poster",
	}
}

// StremioType maps any of the content type spellings used by the
// upstream APIs ("MOVIE"/"SHOW", "movies"/"shows", "movie"/"series")
// to the Stremio type.
func StremioType(contentType string) string {
	switch contentType {
	case "MOVIE", "movie", "movies":
		return "movie"
	default:
		return "series"
	}
}

func genericPosterURL(imdbID string) string {
	return fmt.Sprintf("https://live.metahub.space/poster/medium/%s/img", imdbID)
}
