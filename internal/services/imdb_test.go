package services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVerifier(serverURL string) *IMDBVerifier {
	v := NewIMDBVerifier(testLogger)
	v.baseURL = serverURL
	return v
}

func TestProbeRecordsRedirect(t *testing.T) {
	var probes int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		probes++
		assert.Equal(t, http.MethodHead, r.Method)
		w.Header().Set("Location", "https://www.imdb.com/title/tt9999999/")
		w.WriteHeader(http.StatusMovedPermanently)
	}))
	defer server.Close()

	v := newTestVerifier(server.URL)

	canonical, removed := v.Probe("tt0000001")
	assert.False(t, removed)
	assert.Equal(t, "tt9999999", canonical)
	assert.Equal(t, 1, probes)

	// The redirect is remembered without another probe.
	got, ok := v.Redirect("tt0000001")
	require.True(t, ok)
	assert.Equal(t, "tt9999999", got)
}

func TestProbeRecordsRemoval(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	v := newTestVerifier(server.URL)

	canonical, removed := v.Probe("tt0000002")
	assert.True(t, removed)
	assert.Empty(t, canonical)
	assert.True(t, v.IsRemoved("tt0000002"))
}

func TestProbeOKLeavesIDUnchanged(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	v := newTestVerifier(server.URL)

	canonical, removed := v.Probe("tt0000003")
	assert.False(t, removed)
	assert.Equal(t, "tt0000003", canonical)
	assert.False(t, v.IsRemoved("tt0000003"))
	_, ok := v.Redirect("tt0000003")
	assert.False(t, ok)
}

func TestProbeTransportErrorDisablesProbing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	v := newTestVerifier(server.URL)

	canonical, removed := v.Probe("tt0000004")
	assert.False(t, removed)
	assert.Equal(t, "tt0000004", canonical)
	assert.False(t, v.enabled)

	// Later probes return immediately without touching the network.
	canonical, removed = v.Probe("tt0000005")
	assert.False(t, removed)
	assert.Equal(t, "tt0000005", canonical)
}

func TestTitleIDFromLocation(t *testing.T) {
	tests := []struct {
		location string
		expected string
	}{
		{"/title/tt1234567/", "tt1234567"},
		{"https://www.imdb.com/title/tt7654321/", "tt7654321"},
		{"https://www.imdb.com/title/tt7654321/?ref_=fn", "tt7654321"},
		{"/search/", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, titleIDFromLocation(tt.location), "location %q", tt.location)
	}
}
