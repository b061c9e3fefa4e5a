package services

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facuparedes/streaming-catalogs-addon/internal/constants"
)

func TestStremioType(t *testing.T) {
	assert.Equal(t, "movie", StremioType(constants.ContentTypeMovie))
	assert.Equal(t, "movie", StremioType("movie"))
	assert.Equal(t, "movie", StremioType("movies"))
	assert.Equal(t, "series", StremioType(constants.ContentTypeShow))
	assert.Equal(t, "series", StremioType("shows"))
	assert.Equal(t, "series", StremioType("series"))
}

func TestFetchMeta(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, `{"meta": {"id": "tt4574334", "type": "series", "name": "Stranger Things", "imdbRating": "8.6"}}`)
	}))
	defer server.Close()

	c := NewCinemeta(testLogger)
	c.baseURL = server.URL

	meta, err := c.FetchMeta("tt4574334", constants.ContentTypeShow, "fallback")
	require.NoError(t, err)
	assert.Equal(t, "/meta/series/tt4574334.json", gotPath)
	assert.Equal(t, "Stranger Things", meta.Name)
	assert.Equal(t, "8.6", meta.IMDBRating)
}

func TestFetchMetaFallbackName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"meta": {"id": "tt0000010", "type": "movie"}}`)
	}))
	defer server.Close()

	c := NewCinemeta(testLogger)
	c.baseURL = server.URL

	meta, err := c.FetchMeta("tt0000010", constants.ContentTypeMovie, "Provided Title")
	require.NoError(t, err)
	assert.Equal(t, "Provided Title", meta.Name)
	assert.Equal(t, "tt0000010", meta.ID)
}

func TestFetchMetaErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/meta/movie/tt404.json":
			w.WriteHeader(http.StatusNotFound)
		default:
			fmt.Fprint(w, `{}`)
		}
	}))
	defer server.Close()

	c := NewCinemeta(testLogger)
	c.baseURL = server.URL

	_, err := c.FetchMeta("tt404", constants.ContentTypeMovie, "")
	assert.Error(t, err)

	_, err = c.FetchMeta("tt500", constants.ContentTypeMovie, "")
	assert.Error(t, err, "a body without meta must error so callers fall back")
}

func TestBasicMeta(t *testing.T) {
	meta := BasicMeta("tt0110912", "Pulp Fiction", constants.ContentTypeMovie)
	assert.Equal(t, "tt0110912", meta.ID)
	assert.Equal(t, "Pulp Fiction", meta.Name)
	assert.Equal(t, "movie", meta.Type)
	assert.Equal(t, "https://live.metahub.space/poster/medium/tt0110912/img", meta.Poster)
	assert.Equal(t, "poster", meta.PosterShape)
}
