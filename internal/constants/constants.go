// Package constants defines application-wide constants and default values.
package constants

import "time"

const (
	// Addon metadata
	AddonID          = "pw.ers.netflix-catalog"
	AddonVersion     = "1.5.0"
	AddonName        = "Streaming Catalogs"
	AddonDescription = "Trending movies and series on Netflix, HBO Max, Disney+, Apple TV+ and more. Configure to choose your favourite services."
	AddonLogo        = "https://play-lh.googleusercontent.com/TBRwjS_qfJCSj1m7zZB93FnpJM5fSpMA_wUlFDLxWAb45T9RmwBvQd5cWR5viJJOhkI"

	// Default configuration values
	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	// Default country used when building the "global" Top 10 catalog.
	// One country stands in for a true cross-country aggregate.
	DefaultTop10ProxyCountry = "US"

	// Cache windows
	ProviderCatalogTTL = 6 * time.Hour
	ResolutionTTL      = 7 * 24 * time.Hour
	Top10CatalogTTL    = 24 * time.Hour

	// In-memory cache for localized provider catalogs
	LocalizedCacheSize = 500
	LocalizedCacheTTL  = 6 * time.Hour

	// Rate limiting for the JustWatch GraphQL API, shared by search
	// and popularity queries
	JustWatchRateLimit = 5 // requests per second
	JustWatchRateBurst = 5 // burst capacity
)

// Durable cache blob keys.
const (
	BlobProviderCatalogs = "provider-catalogs"
	BlobResolutions      = "netflix-top10-resolved"
	BlobTop10Catalogs    = "netflix-top10-catalog"
)

// Content types as the JustWatch API names them.
const (
	ContentTypeMovie = "MOVIE"
	ContentTypeShow  = "SHOW"
)
