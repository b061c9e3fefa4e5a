package services

import (
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/facuparedes/streaming-catalogs-addon/internal/constants"
	"github.com/facuparedes/streaming-catalogs-addon/pkg/httputil"
	"github.com/facuparedes/streaming-catalogs-addon/pkg/logger"
)

const imdbUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10.15; rv:109.0) Gecko/20100101 Firefox/110.0"

// IMDBVerifier resolves stale IMDB ids against the canonical title URL.
// Redirects and removals are permanent facts: once learned they are
// kept for the process lifetime and never re-probed. A transport error
// during a probe disables probing entirely, treating it as a signal the
// endpoint itself is unreliable rather than a per-item failure.
type IMDBVerifier struct {
	mu        sync.Mutex
	redirects map[string]string
	removed   map[string]bool
	enabled   bool

	httpClient *http.Client
	baseURL    string
	logger     logger.Logger
}

// NewIMDBVerifier creates a verifier with probing enabled.
func NewIMDBVerifier(log logger.Logger) *IMDBVerifier {
	return &IMDBVerifier{
		redirects:  make(map[string]string),
		removed:    make(map[string]bool),
		enabled:    true,
		httpClient: httputil.NewNoRedirectClient(constants.IMDBProbeTimeout),
		baseURL:    "https://www.imdb.com",
		logger:     log,
	}
}

// Redirect returns the canonical id recorded for a stale one.
func (v *IMDBVerifier) Redirect(imdbID string) (string, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	canonical, ok := v.redirects[imdbID]
	return canonical, ok
}

// IsRemoved reports whether the id was recorded as no longer existing.
func (v *IMDBVerifier) IsRemoved(imdbID string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.removed[imdbID]
}

// Probe performs a live HEAD lookup of the id. It returns the canonical
// id to use and whether the title was removed. When probing is disabled
// or the outcome is inconclusive, the input id comes back unchanged.
func (v *IMDBVerifier) Probe(imdbID string) (string, bool) {
	v.mu.Lock()
	enabled := v.enabled
	v.mu.Unlock()
	if !enabled {
		return imdbID, false
	}

	req, err := http.NewRequest(http.MethodHead, fmt.Sprintf("%s/title/%s/", v.baseURL, imdbID), nil)
	if err != nil {
		return imdbID, false
	}
	req.Header.Set("User-Agent", imdbUserAgent)

	resp, err := v.httpClient.Do(req)
	if err != nil {
		v.logger.Errorf("[IMDB] disabling verification, probe failed: %v", err)
		v.mu.Lock()
		v.enabled = false
		v.mu.Unlock()
		return imdbID, false
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusMovedPermanently, http.StatusFound, http.StatusPermanentRedirect:
		canonical := titleIDFromLocation(resp.Header.Get("Location"))
		if canonical == "" {
			return imdbID, false
		}
		v.logger.Infof("[IMDB] %s redirects to %s", imdbID, canonical)
		v.mu.Lock()
		v.redirects[imdbID] = canonical
		v.mu.Unlock()
		return canonical, false

	case http.StatusNotFound:
		v.logger.Infof("[IMDB] %s no longer exists", imdbID)
		v.mu.Lock()
		v.removed[imdbID] = true
		v.mu.Unlock()
		return "", true
	}

	return imdbID, false
}

// titleIDFromLocation extracts the title id from a redirect target of
// the form [scheme://host]/title/tt1234567/.
func titleIDFromLocation(location string) string {
	if location == "" {
		return ""
	}
	if i := strings.Index(location, "://"); i >= 0 {
		location = location[i+3:]
		if j := strings.Index(location, "/"); j >= 0 {
			location = location[j:]
		}
	}
	parts := strings.Split(location, "/")
	if len(parts) < 3 || parts[1] != "title" {
		return ""
	}
	return parts[2]
}
