package models

// GraphQLRequest is the envelope of a JustWatch GraphQL call.
type GraphQLRequest struct {
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
	Query         string                 `json:"query"`
}

// GraphQLError is one reported error of a GraphQL response.
type GraphQLError struct {
	Message string `json:"message"`
}

// PopularTitlesResponse covers both the popularity and the title search
// queries; they share the popularTitles result shape. Every nested level
// is a pointer so a missing field reads as absent, not as a zero page.
type PopularTitlesResponse struct {
	Data   *PopularTitlesData `json:"data"`
	Errors []GraphQLError     `json:"errors"`
}

type PopularTitlesData struct {
	PopularTitles *PopularTitles `json:"popularTitles"`
}

type PopularTitles struct {
	Edges []TitleEdge `json:"edges"`
}

// TitleEdge is one ranked hit of a popularity or search query.
type TitleEdge struct {
	Node TitleNode `json:"node"`
}

type TitleNode struct {
	ID         string        `json:"id"`
	ObjectType string        `json:"objectType"`
	Content    *TitleContent `json:"content"`
}

type TitleContent struct {
	Title               string       `json:"title"`
	OriginalReleaseYear *int         `json:"originalReleaseYear"`
	ShortDescription    string       `json:"shortDescription"`
	PosterURL           string       `json:"posterUrl"`
	ExternalIDs         *ExternalIDs `json:"externalIds"`
}

type ExternalIDs struct {
	IMDBID string `json:"imdbId"`
}

// Candidate flattens an edge into a SearchCandidate, tolerating missing
// nested content.
func (e TitleEdge) Candidate() SearchCandidate {
	c := SearchCandidate{ExternalID: e.Node.ID}
	content := e.Node.Content
	if content == nil {
		return c
	}
	c.Title = content.Title
	if content.OriginalReleaseYear != nil {
		c.ReleaseYear = *content.OriginalReleaseYear
	}
	c.ShortDescription = content.ShortDescription
	c.PosterURL = content.PosterURL
	if content.ExternalIDs != nil {
		c.IMDBID = content.ExternalIDs.IMDBID
	}
	return c
}
