package services

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/facuparedes/streaming-catalogs-addon/internal/constants"
	"github.com/facuparedes/streaming-catalogs-addon/internal/database"
	"github.com/facuparedes/streaming-catalogs-addon/internal/models"
	"github.com/facuparedes/streaming-catalogs-addon/pkg/logger"
)

// titleVariationRules strip subtitle patterns that keep a search from
// matching ("Stranger Things: Part 2" vs "Stranger Things"). Each rule
// removes its first occurrence; rules apply to the original title only.
var titleVariationRules = []*regexp.Regexp{
	regexp.MustCompile(`(?i):\s*Vol\.\s*\d+`),
	regexp.MustCompile(`(?i):\s*Volume\s*\d+`),
	regexp.MustCompile(`(?i):\s*Part\s*\d+`),
	regexp.MustCompile(`(?i)\s*Vol\.\s*\d+`),
	regexp.MustCompile(`(?i)\s*Volume\s*\d+`),
	regexp.MustCompile(`(?i)\s*Part\s*\d+`),
}

var thePrefixPattern = regexp.MustCompile(`(?i)^the\s+`)

// titleVariations returns the search variations for a title: the
// original first, then subtitle-stripped and "The"-stripped variants,
// deduplicated.
func titleVariations(title string) []string {
	variations := []string{title}
	seen := map[string]bool{title: true}

	add := func(v string) {
		v = strings.TrimSpace(v)
		if v != "" && !seen[v] {
			seen[v] = true
			variations = append(variations, v)
		}
	}

	for _, rule := range titleVariationRules {
		if loc := rule.FindStringIndex(title); loc != nil {
			add(title[:loc[0]] + title[loc[1]:])
		}
	}

	if loc := thePrefixPattern.FindStringIndex(title); loc != nil {
		add(title[loc[1]:])
	}

	return variations
}

// TitleSearcher is the search oracle the resolver queries.
type TitleSearcher interface {
	SearchTitles(title string, releaseYear int, country, contentType, language string, withProviderFilter bool) ([]models.SearchCandidate, error)
}

// Resolver maps raw (title, year) listings to canonical IMDB ids.
//
// Resolutions, including failed ones, are cached under a case-folded
// (type, title, year, language) key and persisted write-through to the
// durable store, so a key is never re-resolved until its cache entry
// expires. Concurrent resolution of the same key may duplicate a search
// call; last write wins, which is harmless because the result is a
// function of the key.
type Resolver struct {
	mu          sync.Mutex
	resolutions map[string]*models.Resolution

	store  database.Store
	search TitleSearcher
	logger logger.Logger
}

// NewResolver creates a resolver, seeding its cache from the durable
// store when a fresh blob exists.
func NewResolver(store database.Store, search TitleSearcher, log logger.Logger) *Resolver {
	r := &Resolver{
		resolutions: make(map[string]*models.Resolution),
		store:       store,
		search:      search,
		logger:      log,
	}
	r.load()
	return r
}

func resolutionKey(contentType, title string, releaseYear int, language string) string {
	return strings.ToLower(fmt.Sprintf("%s:%s:%d:%s", contentType, title, releaseYear, language))
}

func (r *Resolver) load() {
	payload, err := r.store.LoadBlob(constants.BlobResolutions, constants.ResolutionTTL)
	if err != nil {
		r.logger.Errorf("[Resolver] failed to load resolution cache: %v", err)
		return
	}
	if payload == nil {
		return
	}

	var resolutions map[string]*models.Resolution
	if err := json.Unmarshal(payload, &resolutions); err != nil {
		r.logger.Errorf("[Resolver] failed to decode resolution cache: %v", err)
		return
	}
	r.resolutions = resolutions
	r.logger.Infof("[Resolver] loaded %d cached resolutions", len(resolutions))
}

// persist writes the full resolution map through to the store. Called
// under r.mu.
func (r *Resolver) persist() {
	payload, err := json.Marshal(r.resolutions)
	if err != nil {
		r.logger.Errorf("[Resolver] failed to encode resolution cache: %v", err)
		return
	}
	if err := r.store.SaveBlob(constants.BlobResolutions, payload); err != nil {
		r.logger.Errorf("[Resolver] failed to save resolution cache: %v", err)
	}
}

// storeResolution records a result (nil for a failed resolution) and
// persists the cache.
func (r *Resolver) storeResolution(key string, res *models.Resolution) {
	r.mu.Lock()
	r.resolutions[key] = res
	r.persist()
	r.mu.Unlock()
}

// Resolve maps a raw listing to a Resolution, or nil when no candidate
// passes the matcher or the match carries no IMDB id. contentType is a
// JustWatch object type ("MOVIE" or "SHOW").
func (r *Resolver) Resolve(title string, releaseYear int, contentType, country, language string) *models.Resolution {
	if title == "" || releaseYear == 0 {
		return nil
	}

	key := resolutionKey(contentType, title, releaseYear, language)

	r.mu.Lock()
	cached, ok := r.resolutions[key]
	r.mu.Unlock()
	if ok {
		return cached
	}

	var match *models.SearchCandidate
	for _, variation := range titleVariations(title) {
		for _, withFilter := range []bool{true, false} {
			candidates, err := r.search.SearchTitles(variation, releaseYear, country, contentType, language, withFilter)
			if err != nil {
				r.logger.Debugf("[Resolver] search %q failed: %v", variation, err)
				continue
			}
			if match = matchCandidate(candidates, variation, releaseYear); match != nil {
				break
			}
		}
		if match != nil {
			break
		}
	}

	if match == nil {
		r.storeResolution(key, nil)
		return nil
	}

	if match.IMDBID == "" {
		r.logger.Warnf("[Resolver] no IMDB id for %s (%d)", title, releaseYear)
		r.storeResolution(key, nil)
		return nil
	}

	resolution := &models.Resolution{
		IMDBID:      match.IMDBID,
		Title:       match.Title,
		Year:        match.ReleaseYear,
		Description: match.ShortDescription,
		Poster:      providerPosterURL(match.PosterURL),
	}

	r.storeResolution(key, resolution)
	r.logger.Infof("[Resolver] resolved %s (%d) to %s", title, releaseYear, match.IMDBID)

	return resolution
}
