package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facuparedes/streaming-catalogs-addon/internal/models"
)

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercases", "The Matrix", "the matrix"},
		{"strips punctuation", "Spider-Man: No Way Home", "spider man no way home"},
		{"collapses whitespace", "  The   Crown  ", "the crown"},
		{"keeps digits and underscores", "Zone_414", "zone_414"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizeTitle(tt.input))
		})
	}
}

func TestMatchCandidateExactTitleAndYear(t *testing.T) {
	candidates := []models.SearchCandidate{
		{ExternalID: "a", Title: "The Gray Man", ReleaseYear: 2007},
		{ExternalID: "b", Title: "the gray man", ReleaseYear: 2022},
	}

	match := matchCandidate(candidates, "The Gray Man", 2022)
	require.NotNil(t, match)
	assert.Equal(t, "b", match.ExternalID)
}

func TestMatchCandidatePunctuationNormalized(t *testing.T) {
	candidates := []models.SearchCandidate{
		{ExternalID: "a", Title: "Spider-Man: No Way Home", ReleaseYear: 2021},
	}

	match := matchCandidate(candidates, "Spider Man No Way Home", 2021)
	require.NotNil(t, match)
	assert.Equal(t, "a", match.ExternalID)
}

func TestMatchCandidateNeighboringYear(t *testing.T) {
	candidates := []models.SearchCandidate{
		{ExternalID: "a", Title: "1899", ReleaseYear: 2023},
	}

	match := matchCandidate(candidates, "1899", 2022)
	require.NotNil(t, match)
	assert.Equal(t, "a", match.ExternalID)
}

func TestMatchCandidateNeighboringYearRequiresYear(t *testing.T) {
	// The year-tolerant rule must not fire for candidates with no
	// release year, otherwise a wildly wrong title could be matched
	// before the containment rule sees a better one.
	candidates := []models.SearchCandidate{
		{ExternalID: "a", Title: "Wednesday", ReleaseYear: 0},
		{ExternalID: "b", Title: "Wednesday", ReleaseYear: 2022},
	}

	match := matchCandidate(candidates, "Wednesday", 2022)
	require.NotNil(t, match)
	assert.Equal(t, "b", match.ExternalID)
}

func TestMatchCandidateContainment(t *testing.T) {
	candidates := []models.SearchCandidate{
		{ExternalID: "a", Title: "Enola Holmes 2", ReleaseYear: 2022},
	}

	match := matchCandidate(candidates, "Enola Holmes", 2019)
	require.NotNil(t, match)
	assert.Equal(t, "a", match.ExternalID)
}

func TestMatchCandidatePrecedenceOrder(t *testing.T) {
	// A containment hit earlier in the list must lose to an exact hit
	// later in the list.
	candidates := []models.SearchCandidate{
		{ExternalID: "contains", Title: "The Witcher: Blood Origin", ReleaseYear: 2022},
		{ExternalID: "exact", Title: "The Witcher", ReleaseYear: 2019},
	}

	match := matchCandidate(candidates, "The Witcher", 2019)
	require.NotNil(t, match)
	assert.Equal(t, "exact", match.ExternalID)
}

func TestMatchCandidateFirstWinsWithinRule(t *testing.T) {
	candidates := []models.SearchCandidate{
		{ExternalID: "first", Title: "Elite", ReleaseYear: 2018},
		{ExternalID: "second", Title: "Elite", ReleaseYear: 2018},
	}

	match := matchCandidate(candidates, "Elite", 2018)
	require.NotNil(t, match)
	assert.Equal(t, "first", match.ExternalID)
}

func TestMatchCandidateNoMatch(t *testing.T) {
	candidates := []models.SearchCandidate{
		{ExternalID: "a", Title: "Manifest", ReleaseYear: 2018},
	}

	assert.Nil(t, matchCandidate(candidates, "Dark", 2017))
	assert.Nil(t, matchCandidate(nil, "Dark", 2017))
}

func TestMatchCandidateEmptyTitleNeverContains(t *testing.T) {
	candidates := []models.SearchCandidate{
		{ExternalID: "a", Title: "Anything", ReleaseYear: 2020},
	}

	assert.Nil(t, matchCandidate(candidates, "!!!", 1999))
}
