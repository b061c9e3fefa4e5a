// Package services implements the catalog pipeline: provider
// popularity fetching, title resolution and Top 10 catalog assembly.
package services

import (
	"github.com/facuparedes/streaming-catalogs-addon/internal/cache"
	"github.com/facuparedes/streaming-catalogs-addon/internal/database"
	"github.com/facuparedes/streaming-catalogs-addon/internal/models"
	"github.com/facuparedes/streaming-catalogs-addon/pkg/logger"
)

// Container holds all application services for dependency injection.
type Container struct {
	JustWatch JustWatchService
	Resolver  TitleResolver
	Top10     Top10Fetcher
	Cinemeta  CinemetaService
	Catalog   *CatalogService
	Store     database.Store
	Cache     *cache.LRUCache
	Logger    logger.Logger
}

// JustWatchService defines the JustWatch API operations.
type JustWatchService interface {
	TitleSearcher
	GetMetas(contentType string, providers []string, country, language string) ([]models.Meta, error)
}

// TitleResolver maps raw listings to canonical identifiers.
type TitleResolver interface {
	Resolve(title string, releaseYear int, contentType, country, language string) *models.Resolution
}

// Top10Fetcher fetches a weekly Top 10 ranking.
type Top10Fetcher interface {
	FetchTop10(countryCode, contentType, week string) (*models.Top10Page, error)
}

// CinemetaService defines the metadata enrichment lookup.
type CinemetaService interface {
	FetchMeta(imdbID, contentType, fallbackTitle string) (*models.Meta, error)
}
