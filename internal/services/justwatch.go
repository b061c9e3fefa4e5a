package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"

	"github.com/facuparedes/streaming-catalogs-addon/internal/constants"
	"github.com/facuparedes/streaming-catalogs-addon/internal/models"
	"github.com/facuparedes/streaming-catalogs-addon/pkg/httputil"
	"github.com/facuparedes/streaming-catalogs-addon/pkg/logger"
	"github.com/facuparedes/streaming-catalogs-addon/pkg/ratelimiter"
)

const netflixProviderCode = "nfx"

const popularTitlesQuery = `query GetPopularTitles(
  $country: Country!
  $popularTitlesFilter: TitleFilter
  $popularTitlesSortBy: PopularTitlesSorting! = POPULAR
  $first: Int!
  $language: Language!
  $offset: Int = 0
  $sortRandomSeed: Int! = 0
) {
  popularTitles(
    country: $country
    filter: $popularTitlesFilter
    offset: $offset
    sortBy: $popularTitlesSortBy
    first: $first
    sortRandomSeed: $sortRandomSeed
  ) {
    edges {
      node {
        id
        objectType
        content(country: $country, language: $language) {
          externalIds {
            imdbId
          }
          title
          shortDescription
          posterUrl
        }
      }
    }
  }
}`

const searchTitlesQuery = `query SearchTitles(
  $country: Country!
  $language: Language!
  $first: Int!
  $filter: TitleFilter
) {
  popularTitles(
    country: $country
    filter: $filter
    first: $first
    sortBy: POPULAR
  ) {
    edges {
      node {
        id
        objectType
        content(country: $country, language: $language) {
          title
          originalReleaseYear
          shortDescription
          posterUrl
          externalIds {
            imdbId
          }
        }
      }
    }
  }
}`

var posterIDPattern = regexp.MustCompile(`/poster/([0-9]+)/`)

// JustWatch queries the JustWatch GraphQL API for provider popularity
// pages and free-text title searches. One token bucket paces every
// outbound call, shared by both query kinds.
type JustWatch struct {
	httpClient *http.Client
	endpoint   string
	limiter    *ratelimiter.TokenBucket
	verifier   *IMDBVerifier
	cinemeta   CinemetaService
	logger     logger.Logger
}

// NewJustWatch creates a JustWatch client.
func NewJustWatch(verifier *IMDBVerifier, cinemeta CinemetaService, log logger.Logger) *JustWatch {
	return &JustWatch{
		httpClient: httputil.NewClient(constants.JustWatchTimeout),
		endpoint:   "https://apis.justwatch.com/graphql",
		limiter:    ratelimiter.NewTokenBucket(constants.JustWatchRateBurst, constants.JustWatchRateLimit),
		verifier:   verifier,
		cinemeta:   cinemeta,
		logger:     log,
	}
}

// query posts a GraphQL request and decodes the shared popularTitles
// response shape.
func (j *JustWatch) query(req models.GraphQLRequest) (*models.PopularTitlesResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s query: %w", req.OperationName, err)
	}

	j.limiter.Wait()

	resp, err := j.httpClient.Post(j.endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("justwatch %s request failed: %w", req.OperationName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("justwatch %s error: status %d", req.OperationName, resp.StatusCode)
	}

	var decoded models.PopularTitlesResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode justwatch response: %w", err)
	}
	return &decoded, nil
}

// SearchTitles runs a free-text title search, optionally restricted to
// the Netflix provider, and returns the ranked candidates.
func (j *JustWatch) SearchTitles(title string, releaseYear int, country, contentType, language string, withProviderFilter bool) ([]models.SearchCandidate, error) {
	if title == "" {
		return nil, nil
	}

	filter := map[string]interface{}{
		"searchQuery": title,
		"objectTypes": []string{},
	}
	if withProviderFilter {
		filter["packages"] = []string{netflixProviderCode}
	}

	decoded, err := j.query(models.GraphQLRequest{
		OperationName: "SearchTitles",
		Variables: map[string]interface{}{
			"country":  country,
			"language": language,
			"first":    constants.SearchResultLimit,
			"filter":   filter,
		},
		Query: searchTitlesQuery,
	})
	if err != nil {
		return nil, err
	}

	// An erroring search is no data, not a failure worth widening.
	if len(decoded.Errors) > 0 || decoded.Data == nil || decoded.Data.PopularTitles == nil {
		return nil, nil
	}

	candidates := make([]models.SearchCandidate, 0, len(decoded.Data.PopularTitles.Edges))
	for _, edge := range decoded.Data.PopularTitles.Edges {
		candidates = append(candidates, edge.Candidate())
	}
	return candidates, nil
}

// GetMetas returns the top titles currently trending on the given
// providers, resolved to IMDB-anchored catalog metas in upstream order.
func (j *JustWatch) GetMetas(contentType string, providers []string, country, language string) ([]models.Meta, error) {
	decoded, err := j.query(models.GraphQLRequest{
		OperationName: "GetPopularTitles",
		Variables: map[string]interface{}{
			"popularTitlesSortBy": "TRENDING",
			"first":               constants.PopularTitlesAmount,
			"platform":            "WEB",
			"sortRandomSeed":      0,
			"popularAfterCursor":  "",
			"popularTitlesFilter": map[string]interface{}{
				"ageCertifications":          []string{},
				"excludeGenres":              []string{},
				"excludeProductionCountries": []string{},
				"genres":                     []string{},
				"objectTypes":                []string{contentType},
				"productionCountries":        []string{},
				"packages":                   providers,
				"excludeIrrelevantTitles":    false,
				"presentationTypes":          []string{},
				"monetizationTypes":          []string{},
			},
			"language": language,
			"country":  country,
		},
		Query: popularTitlesQuery,
	})
	if err != nil {
		return nil, err
	}

	if decoded.Data == nil || decoded.Data.PopularTitles == nil {
		return nil, fmt.Errorf("justwatch popularity response missing popularTitles")
	}

	edges := decoded.Data.PopularTitles.Edges
	j.logger.Debugf("[JustWatch] %v returned %d titles", providers, len(edges))

	metas := make([]models.Meta, 0, len(edges))
	for i, edge := range edges {
		candidate := edge.Candidate()
		imdbID := candidate.IMDBID

		if imdbID == "" || j.verifier.IsRemoved(imdbID) {
			continue
		}

		if canonical, ok := j.verifier.Redirect(imdbID); ok {
			imdbID = canonical
		} else if i < constants.AmountToVerify {
			probed, removed := j.verifier.Probe(imdbID)
			if removed {
				continue
			}
			imdbID = probed
		}

		metas = append(metas, j.buildMeta(imdbID, candidate, contentType))
	}

	return metas, nil
}

// buildMeta enriches one popularity hit via Cinemeta, preferring the
// provider's own name/description/poster when present.
func (j *JustWatch) buildMeta(imdbID string, candidate models.SearchCandidate, contentType string) models.Meta {
	poster := providerPosterURL(candidate.PosterURL)
	if poster == "" {
		poster = genericPosterURL(imdbID)
	}

	enriched, err := j.cinemeta.FetchMeta(imdbID, contentType, candidate.Title)
	if err != nil {
		j.logger.Debugf("[JustWatch] cinemeta fallback for %s: %v", imdbID, err)
		meta := BasicMeta(imdbID, candidate.Title, contentType)
		meta.Description = candidate.ShortDescription
		meta.Poster = poster
		return meta
	}

	meta := *enriched
	if candidate.Title != "" {
		meta.Name = candidate.Title
	}
	if candidate.ShortDescription != "" {
		meta.Description = candidate.ShortDescription
	}
	meta.Poster = poster
	return meta
}

// providerPosterURL derives a sized poster URL from the image id
// embedded in a raw JustWatch poster path, or "" when there is none.
func providerPosterURL(rawPosterURL string) string {
	m := posterIDPattern.FindStringSubmatch(rawPosterURL)
	if m == nil {
		return ""
	}
	return fmt.Sprintf("https://images.justwatch.com/poster/%s/s332/img", m[1])
}
