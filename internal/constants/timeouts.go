// Package constants defines timeout values and request limits used throughout the application.
package constants

import "time"

// Timeouts for outbound API calls. Each client carries its own fixed
// timeout; a failed call aborts only that call's contribution.
const (
	JustWatchTimeout = 10 * time.Second
	NetflixTimeout   = 15 * time.Second
	CinemetaTimeout  = 5 * time.Second
	IMDBProbeTimeout = 10 * time.Second
)

// Limits and counts for catalog assembly.
const (
	// Page size of a popularity query
	PopularTitlesAmount = 30

	// How many entries of a popularity page get a live IMDB redirect probe
	AmountToVerify = 5

	// Number of candidates requested from a title search
	SearchResultLimit = 10
)
