package services

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/facuparedes/streaming-catalogs-addon/internal/cache"
	"github.com/facuparedes/streaming-catalogs-addon/internal/constants"
	"github.com/facuparedes/streaming-catalogs-addon/internal/database"
	"github.com/facuparedes/streaming-catalogs-addon/internal/models"
	"github.com/facuparedes/streaming-catalogs-addon/pkg/logger"
)

// CatalogService assembles the catalogs the addon serves: the per
// provider popularity tables refreshed by a background sweep, and the
// Netflix Top 10 catalogs built on demand from the ranking feed, the
// title resolver and Cinemeta enrichment.
type CatalogService struct {
	top10Mu     sync.Mutex
	top10Cache  map[string][]models.Meta
	top10Loaded time.Time

	providerMu sync.RWMutex
	movies     map[string][]models.Meta
	series     map[string][]models.Meta

	localized *cache.LRUCache

	store        database.Store
	justwatch    JustWatchService
	resolver     TitleResolver
	top10        Top10Fetcher
	cinemeta     CinemetaService
	logger       logger.Logger
	proxyCountry string
	useCache     bool
}

// NewCatalogService creates the catalog assembler. proxyCountry is the
// country whose Top 10 stands in for the "global" catalog.
func NewCatalogService(store database.Store, jw JustWatchService, resolver TitleResolver, top10 Top10Fetcher, cinemeta CinemetaService, proxyCountry string, useCache bool, log logger.Logger) *CatalogService {
	s := &CatalogService{
		top10Cache:   make(map[string][]models.Meta),
		movies:       make(map[string][]models.Meta),
		series:       make(map[string][]models.Meta),
		localized:    cache.New(constants.LocalizedCacheSize, constants.LocalizedCacheTTL),
		store:        store,
		justwatch:    jw,
		resolver:     resolver,
		top10:        top10,
		cinemeta:     cinemeta,
		logger:       log,
		proxyCountry: strings.ToUpper(proxyCountry),
		useCache:     useCache,
	}
	s.loadTop10Cache()
	return s
}

// LocalizedCache exposes the non-English catalog cache so the caller
// can schedule periodic expiry sweeps.
func (s *CatalogService) LocalizedCache() *cache.LRUCache {
	return s.localized
}

func top10CacheKey(countryCode, contentType, language string) string {
	return fmt.Sprintf("%s:%s:%s", strings.ToUpper(countryCode), contentType, language)
}

// loadTop10Cache seeds the Top 10 catalog cache from the durable
// store. Called under top10Mu (or before the service is shared).
func (s *CatalogService) loadTop10Cache() {
	s.top10Cache = make(map[string][]models.Meta)
	s.top10Loaded = time.Now()

	payload, err := s.store.LoadBlob(constants.BlobTop10Catalogs, constants.Top10CatalogTTL)
	if err != nil {
		s.logger.Errorf("[Catalog] failed to load top10 cache: %v", err)
		return
	}
	if payload == nil {
		return
	}

	var catalogs map[string][]models.Meta
	if err := json.Unmarshal(payload, &catalogs); err != nil {
		s.logger.Errorf("[Catalog] failed to decode top10 cache: %v", err)
		return
	}
	s.top10Cache = catalogs
	s.logger.Infof("[Catalog] loaded %d cached top10 catalogs", len(catalogs))
}

// saveTop10Cache persists the Top 10 catalog cache. Called under top10Mu.
func (s *CatalogService) saveTop10Cache() {
	payload, err := json.Marshal(s.top10Cache)
	if err != nil {
		s.logger.Errorf("[Catalog] failed to encode top10 cache: %v", err)
		return
	}
	if err := s.store.SaveBlob(constants.BlobTop10Catalogs, payload); err != nil {
		s.logger.Errorf("[Catalog] failed to save top10 cache: %v", err)
	}
	s.top10Loaded = time.Now()
}

// GetTop10Catalog returns the resolved Top 10 catalog for a country,
// content type ("movies" or "shows") and language. Results are cached
// for 24 hours; a failed or empty fetch caches an empty list under the
// same window so upstream trouble does not turn into a fetch storm.
func (s *CatalogService) GetTop10Catalog(countryCode, contentType, language string) []models.Meta {
	key := top10CacheKey(countryCode, contentType, language)

	s.top10Mu.Lock()
	if time.Since(s.top10Loaded) >= constants.Top10CatalogTTL {
		s.logger.Infof("[Catalog] top10 cache expired, reloading from store")
		s.loadTop10Cache()
	}
	if metas, ok := s.top10Cache[key]; ok {
		s.top10Mu.Unlock()
		s.logger.Debugf("[Catalog] top10 cache hit: %s", key)
		return metas
	}
	s.top10Mu.Unlock()

	s.logger.Infof("[Catalog] top10 cache miss: %s, fetching", key)
	metas := s.buildTop10Catalog(countryCode, contentType, language)

	s.top10Mu.Lock()
	s.top10Cache[key] = metas
	s.saveTop10Cache()
	s.top10Mu.Unlock()

	s.logger.Infof("[Catalog] top10 cached: %s (%d items)", key, len(metas))
	return metas
}

// GetGlobalTop10 returns the Top 10 catalog of the configured proxy
// country. One country stands in for a cross-country aggregate.
func (s *CatalogService) GetGlobalTop10(contentType, language string) []models.Meta {
	return s.GetTop10Catalog(s.proxyCountry, contentType, language)
}

// buildTop10Catalog fetches the ranking and resolves each entry
// sequentially. Entries that fail resolution are dropped, not
// placeholder-filled. The search client's rate limiter paces the loop.
func (s *CatalogService) buildTop10Catalog(countryCode, contentType, language string) []models.Meta {
	page, err := s.top10.FetchTop10(countryCode, contentType, "")
	if err != nil {
		s.logger.Errorf("[Catalog] top10 fetch failed for %s %s: %v", countryCode, contentType, err)
		return []models.Meta{}
	}
	if page == nil || len(page.Results) == 0 {
		return []models.Meta{}
	}

	justwatchType := constants.ContentTypeMovie
	if contentType == "shows" {
		justwatchType = constants.ContentTypeShow
	}

	metas := make([]models.Meta, 0, len(page.Results))
	for _, entry := range page.Results {
		resolution := s.resolver.Resolve(entry.Title, entry.ReleaseYear, justwatchType, countryCode, language)
		if resolution == nil || resolution.IMDBID == "" {
			continue
		}

		title := resolution.Title
		if title == "" {
			title = entry.Title
		}

		meta, err := s.cinemeta.FetchMeta(resolution.IMDBID, justwatchType, title)
		if err != nil {
			s.logger.Debugf("[Catalog] cinemeta fallback for %s: %v", resolution.IMDBID, err)
			basic := BasicMeta(resolution.IMDBID, title, justwatchType)
			basic.Description = resolution.Description
			if resolution.Poster != "" {
				basic.Poster = resolution.Poster
			}
			metas = append(metas, basic)
			continue
		}

		if resolution.Title != "" {
			meta.Name = resolution.Title
		}
		if resolution.Description != "" {
			meta.Description = resolution.Description
		}
		if resolution.Poster != "" {
			meta.Poster = resolution.Poster
		}
		metas = append(metas, *meta)
	}

	return metas
}

// providerCatalogBlob is the persisted shape of the provider tables.
type providerCatalogBlob struct {
	Movies map[string][]models.Meta `json:"movies"`
	Series map[string][]models.Meta `json:"series"`
}

// RefreshProviderCatalogs fills the provider tables, from the durable
// store when a fresh blob exists and caching is enabled, otherwise by
// a full popularity sweep. forceRefresh clears the blob first.
func (s *CatalogService) RefreshProviderCatalogs(forceRefresh bool) {
	if forceRefresh {
		if err := s.store.ClearBlob(constants.BlobProviderCatalogs); err != nil {
			s.logger.Errorf("[Catalog] failed to clear provider cache: %v", err)
		}
	}

	if s.useCache && !forceRefresh {
		if payload, err := s.store.LoadBlob(constants.BlobProviderCatalogs, constants.ProviderCatalogTTL); err == nil && payload != nil {
			var blob providerCatalogBlob
			if err := json.Unmarshal(payload, &blob); err == nil {
				s.providerMu.Lock()
				s.movies = blob.Movies
				s.series = blob.Series
				s.providerMu.Unlock()
				s.logger.Infof("[Catalog] provider catalogs loaded from cache")
				return
			}
		}
	}

	s.logger.Infof("[Catalog] fetching fresh provider catalogs")

	movies := make(map[string][]models.Meta, len(constants.MovieCatalogFetches))
	for _, fetch := range constants.MovieCatalogFetches {
		movies[fetch.Code] = s.fetchProviderCatalog(constants.ContentTypeMovie, fetch)
	}

	series := make(map[string][]models.Meta, len(constants.SeriesCatalogFetches))
	for _, fetch := range constants.SeriesCatalogFetches {
		series[fetch.Code] = s.fetchProviderCatalog(constants.ContentTypeShow, fetch)
	}

	s.providerMu.Lock()
	s.movies = movies
	s.series = series
	s.providerMu.Unlock()

	if s.useCache {
		payload, err := json.Marshal(providerCatalogBlob{Movies: movies, Series: series})
		if err == nil {
			err = s.store.SaveBlob(constants.BlobProviderCatalogs, payload)
		}
		if err != nil {
			s.logger.Errorf("[Catalog] failed to save provider catalogs: %v", err)
		}
	}

	s.logger.Infof("[Catalog] provider catalog refresh done")
}

func (s *CatalogService) fetchProviderCatalog(contentType string, fetch constants.CatalogFetch) []models.Meta {
	metas, err := s.justwatch.GetMetas(contentType, []string{fetch.Code}, fetch.Country, fetch.Language)
	if err != nil {
		s.logger.Errorf("[Catalog] %s %s fetch failed: %v", fetch.Code, contentType, err)
		return []models.Meta{}
	}
	return metas
}

// StartRefreshLoop refreshes the provider tables every interval.
func (s *CatalogService) StartRefreshLoop(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			s.RefreshProviderCatalogs(false)
		}
	}()
}

// ProviderMetas serves one provider catalog. The preloaded table
// answers the default language; other languages go through a live,
// LRU-cached popularity query pinned to the user's country.
func (s *CatalogService) ProviderMetas(stremioType, id, country, language string) []models.Meta {
	if language == "" {
		language = "en"
	}
	if country == "" {
		country = "US"
	}

	if language == "en" {
		s.providerMu.RLock()
		table := s.movies
		if stremioType == "series" {
			table = s.series
		}
		metas := table[id]
		s.providerMu.RUnlock()
		if len(metas) > 0 {
			return metas
		}
	}

	cacheKey := fmt.Sprintf("%s:%s:%s:%s", stremioType, id, country, language)
	if cached, ok := s.localized.Get(cacheKey); ok {
		return cached.([]models.Meta)
	}

	contentType := constants.ContentTypeMovie
	if stremioType == "series" {
		contentType = constants.ContentTypeShow
	}

	s.logger.Infof("[Catalog] fetching localized catalog %s", cacheKey)
	metas, err := s.justwatch.GetMetas(contentType, []string{id}, country, language)
	if err != nil {
		s.logger.Errorf("[Catalog] localized fetch %s failed: %v", cacheKey, err)
		return []models.Meta{}
	}

	if len(metas) > 0 {
		s.localized.Set(cacheKey, metas)
	}
	return metas
}

// ClearCaches removes the durable catalog blobs and resets the in
// memory Top 10 and localized caches. The resolution cache keeps its
// own lifecycle.
func (s *CatalogService) ClearCaches() error {
	if err := s.store.ClearBlob(constants.BlobProviderCatalogs); err != nil {
		return err
	}
	if err := s.store.ClearBlob(constants.BlobTop10Catalogs); err != nil {
		return err
	}

	s.top10Mu.Lock()
	s.top10Cache = make(map[string][]models.Meta)
	s.top10Loaded = time.Now()
	s.top10Mu.Unlock()

	s.localized.Clear()
	return nil
}
