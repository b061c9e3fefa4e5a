package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/facuparedes/streaming-catalogs-addon/internal/constants"
	apperrors "github.com/facuparedes/streaming-catalogs-addon/internal/errors"
	"github.com/facuparedes/streaming-catalogs-addon/internal/models"
	"github.com/facuparedes/streaming-catalogs-addon/pkg/httputil"
	"github.com/facuparedes/streaming-catalogs-addon/pkg/logger"
)

const (
	pulseUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 14_0) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36"

	// The persisted query id is stable across weeks; the week is part
	// of the page URL.
	persistedQueryID      = "10ca20d3-e892-44af-b52a-f1107400a873"
	persistedQueryVersion = 102
)

// GraphQL error messages that do not invalidate the payload. Anything
// else reported by the feed is fatal for the call.
var toleratedPulseErrors = []string{
	"UNAUTHENTICATED",
	"Setting Non-null field",
	"not found",
}

type pulseRequest struct {
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
	Extensions    pulseExtensions        `json:"extensions"`
}

type pulseExtensions struct {
	PersistedQuery pulsePersistedQuery `json:"persistedQuery"`
}

type pulsePersistedQuery struct {
	ID      string `json:"id"`
	Version int    `json:"version"`
}

// NetflixTop10 fetches the weekly Top 10 ranking feed.
type NetflixTop10 struct {
	httpClient *http.Client
	endpoint   string
	logger     logger.Logger
}

// NewNetflixTop10 creates a Top 10 feed client.
func NewNetflixTop10(log logger.Logger) *NetflixTop10 {
	return &NetflixTop10{
		httpClient: httputil.NewClient(constants.NetflixTimeout),
		endpoint:   "https://pulse.prod.cloud.netflix.com/graphql",
		logger:     log,
	}
}

// countrySlug resolves an ISO country code to the locale slug the feed
// uses in page URLs. Unmapped codes fall back to the lowercased code
// with a warning; the request may still work.
func (n *NetflixTop10) countrySlug(countryCode string) string {
	code := strings.ToUpper(countryCode)
	displayName, ok := constants.CountryDisplayNames[code]
	if !ok {
		n.logger.Warnf("[Top10] country code %q not mapped, using %q as slug", code, strings.ToLower(code))
		return strings.ToLower(code)
	}
	return slugify(displayName)
}

// slugify lowercases a display name, strips diacritics and hyphenates
// spaces ("Türkiye" becomes "turkiye").
func slugify(displayName string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, displayName)
	if err != nil {
		stripped = displayName
	}
	slug := strings.ToLower(stripped)
	return whitespacePattern.ReplaceAllString(slug, "-")
}

// typeSegment maps a content type to the feed's URL segment: shows live
// under /tv, movies at the page root.
func typeSegment(contentType string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(contentType)) {
	case "shows":
		return "tv", nil
	case "movies":
		return "", nil
	default:
		return "", fmt.Errorf("content type must be \"shows\" or \"movies\", got %q", contentType)
	}
}

// FetchTop10 returns the current (or, when week is a YYYY-MM-DD date,
// a pinned) weekly Top 10 for a country and content type, deduplicated
// and sorted by rank.
func (n *NetflixTop10) FetchTop10(countryCode, contentType, week string) (*models.Top10Page, error) {
	if countryCode == "" {
		return nil, fmt.Errorf("countryCode is required")
	}
	segment, err := typeSegment(contentType)
	if err != nil {
		return nil, err
	}

	pageURL := "/top10/" + n.countrySlug(countryCode)
	if segment != "" {
		pageURL += "/" + segment
	}
	if week != "" {
		pageURL += "?week=" + week
	}

	doc, err := n.fetchPulsePage(pageURL)
	if err != nil {
		return nil, err
	}

	entries := parseTop10Entries(doc)

	page := &models.Top10Page{
		CountryCode: strings.ToUpper(countryCode),
		Type:        "movies",
		Results:     entries,
	}
	if segment != "" {
		page.Type = segment
	}
	if len(entries) > 0 {
		page.WeekEndDate = entries[0].WeekEndDate
	}
	return page, nil
}

func (n *NetflixTop10) fetchPulsePage(pageURL string) (*models.PulsePage, error) {
	body, err := json.Marshal(pulseRequest{
		OperationName: "PulsePageQuery",
		Variables: map[string]interface{}{
			"withProfile": false,
			"url":         pageURL,
			"params":      map[string]interface{}{"isWebView": false},
		},
		Extensions: pulseExtensions{
			PersistedQuery: pulsePersistedQuery{ID: persistedQueryID, Version: persistedQueryVersion},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode pulse query: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, n.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build pulse request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", pulseUserAgent)

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewUpstreamError("pulse request failed", err)
	}
	defer resp.Body.Close()

	var decoded models.PulseResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, apperrors.NewProtocolError("failed to decode pulse response", err)
	}

	if err := checkPulseErrors(decoded.Errors); err != nil {
		return nil, err
	}

	if decoded.Data == nil || decoded.Data.PulsePage == nil || decoded.Data.PulsePage.Sections == nil {
		return nil, apperrors.NewProtocolError("pulse response did not contain page sections", nil)
	}
	return decoded.Data.PulsePage, nil
}

// checkPulseErrors filters reported GraphQL errors against the
// tolerated allowlist and raises when anything else remains.
func checkPulseErrors(errs []models.GraphQLError) error {
	var critical []string
outer:
	for _, e := range errs {
		for _, tolerated := range toleratedPulseErrors {
			if strings.Contains(e.Message, tolerated) {
				continue outer
			}
		}
		critical = append(critical, e.Message)
	}
	if len(critical) > 0 {
		return apperrors.NewProtocolError("pulse errors: "+strings.Join(critical, "; "), nil)
	}
	return nil
}

// parseTop10Entries walks the section/entity graph, keeping only
// top-10 list sections and item entities. Sections without a guid are
// sniffed by entity type. The same video can appear in both the card
// list and the table, so entries are deduplicated by video id. Seasons
// collapse to one series entry through the parent show title.
func parseTop10Entries(page *models.PulsePage) []models.Top10Entry {
	var entries []models.Top10Entry
	seen := make(map[int64]bool)

	for _, section := range page.Sections {
		if section.Typename != "PulseEntitiesSection" || len(section.Entities) == 0 {
			continue
		}
		if !isTop10Section(section) {
			continue
		}

		for _, entity := range section.Entities {
			if entity.Typename != "PulseTop10ItemEntity" {
				continue
			}
			top10 := entity.Top10
			video := entity.Top10Video
			if top10 == nil || video == nil || video.VideoID == nil || top10.WeeklyRank == nil {
				continue
			}
			if seen[*video.VideoID] {
				continue
			}
			seen[*video.VideoID] = true

			title := video.Title
			if video.ParentShow != nil && video.ParentShow.Title != "" {
				title = video.ParentShow.Title
			}

			entry := models.Top10Entry{
				Rank:           *top10.WeeklyRank,
				Title:          title,
				Synopsis:       video.Synopsis,
				WeekEndDate:    top10.WeekEndDate,
				VideoID:        *video.VideoID,
				MaturityRating: video.MaturityRating(),
			}
			if video.ReleaseYear != nil {
				entry.ReleaseYear = *video.ReleaseYear
			}
			if top10.CumulativeWeeksInTop10 != nil {
				entry.WeeksInTop10 = *top10.CumulativeWeeksInTop10
			}
			if top10.Runtime != nil {
				entry.RuntimeHours = *top10.Runtime
			}
			if entity.Artwork != nil {
				entry.Artwork = models.Top10Artwork{
					Logo:  entity.Artwork.LogoArt.FirstURL(),
					SDP:   entity.Artwork.SDPArt.FirstURL(),
					Story: entity.Artwork.StoryArt.FirstURL(),
				}
			}
			entries = append(entries, entry)
		}
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Rank < entries[j].Rank })
	return entries
}

// isTop10Section recognizes top-10 list sections by guid, falling back
// to entity-type sniffing when the guid is absent.
func isTop10Section(section models.PulseSection) bool {
	switch section.GUID {
	case "top-10-card-list", "top-10-table":
		return true
	case "":
		for _, entity := range section.Entities {
			if entity.Typename == "PulseTop10ItemEntity" {
				return true
			}
		}
	}
	return false
}
