package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facuparedes/streaming-catalogs-addon/internal/constants"
	"github.com/facuparedes/streaming-catalogs-addon/internal/models"
)

type stubTop10 struct {
	pages map[string]*models.Top10Page
	err   error
	calls int
}

func (s *stubTop10) FetchTop10(countryCode, contentType, week string) (*models.Top10Page, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.pages[countryCode+":"+contentType], nil
}

type stubResolver struct {
	resolutions map[string]*models.Resolution
}

func (s *stubResolver) Resolve(title string, releaseYear int, contentType, country, language string) *models.Resolution {
	return s.resolutions[title]
}

type stubJustWatch struct {
	metas map[string][]models.Meta
	err   error
	calls int
}

func (s *stubJustWatch) SearchTitles(title string, releaseYear int, country, contentType, language string, withProviderFilter bool) ([]models.SearchCandidate, error) {
	return nil, nil
}

func (s *stubJustWatch) GetMetas(contentType string, providers []string, country, language string) ([]models.Meta, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.metas[fmt.Sprintf("%s:%s:%s", contentType, providers[0], language)], nil
}

func newTestCatalogService(store *memStore, jw JustWatchService, resolver TitleResolver, top10 Top10Fetcher, cinemeta CinemetaService, useCache bool) *CatalogService {
	return NewCatalogService(store, jw, resolver, top10, cinemeta, "US", useCache, testLogger)
}

func TestGetTop10CatalogResolvesAndCaches(t *testing.T) {
	top10 := &stubTop10{pages: map[string]*models.Top10Page{
		"SE:shows": {CountryCode: "SE", Type: "tv", Results: []models.Top10Entry{
			{Rank: 1, Title: "Young Royals", ReleaseYear: 2021, Synopsis: "a prince"},
			{Rank: 2, Title: "Unresolvable", ReleaseYear: 2020},
		}},
	}}
	resolver := &stubResolver{resolutions: map[string]*models.Resolution{
		"Young Royals": {IMDBID: "tt13315308", Title: "Young Royals", Description: "resolved synopsis", Poster: "https://images.justwatch.com/poster/1/s332/img"},
	}}
	cinemeta := &stubCinemeta{metas: map[string]*models.Meta{
		"tt13315308": {ID: "tt13315308", Type: "series", Name: "Cinemeta Name", Background: "https://bg/yr.jpg"},
	}}
	service := newTestCatalogService(newMemStore(), &stubJustWatch{}, resolver, top10, cinemeta, true)

	metas := service.GetTop10Catalog("SE", "shows", "en")
	require.Len(t, metas, 1)
	assert.Equal(t, "tt13315308", metas[0].ID)
	assert.Equal(t, "Young Royals", metas[0].Name)
	assert.Equal(t, "resolved synopsis", metas[0].Description)
	assert.Equal(t, "https://images.justwatch.com/poster/1/s332/img", metas[0].Poster)
	assert.Equal(t, "https://bg/yr.jpg", metas[0].Background)
	assert.Equal(t, 1, top10.calls)

	// Second call is served from cache.
	metas = service.GetTop10Catalog("SE", "shows", "en")
	require.Len(t, metas, 1)
	assert.Equal(t, 1, top10.calls)
}

func TestGetTop10CatalogBasicMetaFallback(t *testing.T) {
	top10 := &stubTop10{pages: map[string]*models.Top10Page{
		"BR:movies": {Results: []models.Top10Entry{
			{Rank: 1, Title: "Carga Maxima", ReleaseYear: 2023},
		}},
	}}
	resolver := &stubResolver{resolutions: map[string]*models.Resolution{
		"Carga Maxima": {IMDBID: "tt27714946", Title: "Carga Maxima", Description: "truck racing"},
	}}
	service := newTestCatalogService(newMemStore(), &stubJustWatch{}, resolver, top10, &stubCinemeta{}, true)

	metas := service.GetTop10Catalog("BR", "movies", "en")
	require.Len(t, metas, 1)
	assert.Equal(t, "tt27714946", metas[0].ID)
	assert.Equal(t, "Carga Maxima", metas[0].Name)
	assert.Equal(t, "truck racing", metas[0].Description)
	assert.Equal(t, "movie", metas[0].Type)
	assert.Equal(t, "https://live.metahub.space/poster/medium/tt27714946/img", metas[0].Poster)
}

func TestGetTop10CatalogCachesEmptyOnFailure(t *testing.T) {
	top10 := &stubTop10{err: fmt.Errorf("upstream down")}
	service := newTestCatalogService(newMemStore(), &stubJustWatch{}, &stubResolver{}, top10, &stubCinemeta{}, true)

	metas := service.GetTop10Catalog("US", "movies", "en")
	assert.Empty(t, metas)
	assert.Equal(t, 1, top10.calls)

	// The empty result is cached so upstream trouble does not turn
	// into a fetch storm.
	metas = service.GetTop10Catalog("US", "movies", "en")
	assert.Empty(t, metas)
	assert.Equal(t, 1, top10.calls)
}

func TestGetGlobalTop10UsesProxyCountry(t *testing.T) {
	top10 := &stubTop10{pages: map[string]*models.Top10Page{
		"US:movies": {Results: []models.Top10Entry{
			{Rank: 1, Title: "Proxy Hit", ReleaseYear: 2024},
		}},
	}}
	resolver := &stubResolver{resolutions: map[string]*models.Resolution{
		"Proxy Hit": {IMDBID: "tt5000001", Title: "Proxy Hit"},
	}}
	service := newTestCatalogService(newMemStore(), &stubJustWatch{}, resolver, top10, &stubCinemeta{}, true)

	metas := service.GetGlobalTop10("movies", "en")
	require.Len(t, metas, 1)
	assert.Equal(t, "tt5000001", metas[0].ID)
}

func TestTop10CatalogPersistsAcrossRestarts(t *testing.T) {
	store := newMemStore()
	top10 := &stubTop10{pages: map[string]*models.Top10Page{
		"US:shows": {Results: []models.Top10Entry{
			{Rank: 1, Title: "Persisted", ReleaseYear: 2022},
		}},
	}}
	resolver := &stubResolver{resolutions: map[string]*models.Resolution{
		"Persisted": {IMDBID: "tt6000001", Title: "Persisted"},
	}}
	service := newTestCatalogService(store, &stubJustWatch{}, resolver, top10, &stubCinemeta{}, true)
	require.Len(t, service.GetTop10Catalog("US", "shows", "en"), 1)

	// A fresh service over the same store answers without fetching.
	secondFetcher := &stubTop10{}
	restarted := newTestCatalogService(store, &stubJustWatch{}, &stubResolver{}, secondFetcher, &stubCinemeta{}, true)
	metas := restarted.GetTop10Catalog("US", "shows", "en")
	require.Len(t, metas, 1)
	assert.Equal(t, "tt6000001", metas[0].ID)
	assert.Zero(t, secondFetcher.calls)
}

func TestRefreshProviderCatalogs(t *testing.T) {
	store := newMemStore()
	jw := &stubJustWatch{metas: map[string][]models.Meta{
		"MOVIE:nfx:en": {{ID: "tt7000001", Type: "movie", Name: "Netflix Movie"}},
		"SHOW:nfx:en":  {{ID: "tt7000002", Type: "series", Name: "Netflix Show"}},
	}}
	service := newTestCatalogService(store, jw, &stubResolver{}, &stubTop10{}, &stubCinemeta{}, true)

	service.RefreshProviderCatalogs(false)
	sweepCalls := jw.calls
	assert.Equal(t, len(constants.MovieCatalogFetches)+len(constants.SeriesCatalogFetches), sweepCalls)

	metas := service.ProviderMetas("movie", "nfx", "US", "en")
	require.Len(t, metas, 1)
	assert.Equal(t, "Netflix Movie", metas[0].Name)

	metas = service.ProviderMetas("series", "nfx", "US", "en")
	require.Len(t, metas, 1)
	assert.Equal(t, "Netflix Show", metas[0].Name)

	// A second refresh with caching on loads the blob instead of
	// sweeping again.
	second := newTestCatalogService(store, jw, &stubResolver{}, &stubTop10{}, &stubCinemeta{}, true)
	second.RefreshProviderCatalogs(false)
	assert.Equal(t, sweepCalls, jw.calls)
	require.Len(t, second.ProviderMetas("movie", "nfx", "US", "en"), 1)
}

func TestRefreshProviderCatalogsForceIgnoresBlob(t *testing.T) {
	store := newMemStore()
	jw := &stubJustWatch{}
	service := newTestCatalogService(store, jw, &stubResolver{}, &stubTop10{}, &stubCinemeta{}, true)

	service.RefreshProviderCatalogs(false)
	sweepCalls := jw.calls

	service.RefreshProviderCatalogs(true)
	assert.Equal(t, 2*sweepCalls, jw.calls)
}

func TestProviderMetasLocalizedFetch(t *testing.T) {
	jw := &stubJustWatch{metas: map[string][]models.Meta{
		"MOVIE:nfx:es": {{ID: "tt8000001", Type: "movie", Name: "Pelicula"}},
	}}
	service := newTestCatalogService(newMemStore(), jw, &stubResolver{}, &stubTop10{}, &stubCinemeta{}, false)

	metas := service.ProviderMetas("movie", "nfx", "ES", "es")
	require.Len(t, metas, 1)
	assert.Equal(t, "Pelicula", metas[0].Name)
	callsAfterFirst := jw.calls

	// The localized result is LRU-cached.
	metas = service.ProviderMetas("movie", "nfx", "ES", "es")
	require.Len(t, metas, 1)
	assert.Equal(t, callsAfterFirst, jw.calls)
}

func TestProviderMetasUpstreamFailureDegradesToEmpty(t *testing.T) {
	jw := &stubJustWatch{err: fmt.Errorf("boom")}
	service := newTestCatalogService(newMemStore(), jw, &stubResolver{}, &stubTop10{}, &stubCinemeta{}, false)

	metas := service.ProviderMetas("movie", "nfx", "US", "fr")
	assert.NotNil(t, metas)
	assert.Empty(t, metas)
}

func TestClearCaches(t *testing.T) {
	store := newMemStore()
	top10 := &stubTop10{pages: map[string]*models.Top10Page{
		"US:movies": {Results: []models.Top10Entry{{Rank: 1, Title: "Hit", ReleaseYear: 2024}}},
	}}
	resolver := &stubResolver{resolutions: map[string]*models.Resolution{
		"Hit": {IMDBID: "tt9000001", Title: "Hit"},
	}}
	service := newTestCatalogService(store, &stubJustWatch{}, resolver, top10, &stubCinemeta{}, true)

	require.Len(t, service.GetTop10Catalog("US", "movies", "en"), 1)
	require.NoError(t, service.ClearCaches())

	assert.Nil(t, store.blobs[constants.BlobTop10Catalogs])
	assert.Nil(t, store.blobs[constants.BlobProviderCatalogs])

	// The next request rebuilds instead of using stale state.
	fetchesBefore := top10.calls
	require.Len(t, service.GetTop10Catalog("US", "movies", "en"), 1)
	assert.Equal(t, fetchesBefore+1, top10.calls)
}
