package services

import (
	"regexp"
	"strings"

	"github.com/facuparedes/streaming-catalogs-addon/internal/models"
)

var (
	nonWordPattern    = regexp.MustCompile(`[^0-9A-Za-z_\s]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// normalizeTitle lowercases a title, replaces punctuation with spaces
// and collapses whitespace, so punctuation-only differences compare
// equal.
func normalizeTitle(s string) string {
	s = strings.ToLower(s)
	s = nonWordPattern.ReplaceAllString(s, " ")
	s = whitespacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// matchCandidate selects the single best candidate for a title and
// release year, or nil when no rule yields a hit. Rules run in strict
// precedence order; ties within a rule resolve to the first candidate
// in upstream order:
//
//  1. case-insensitive exact title, exact year
//  2. punctuation-normalized title, exact year
//  3. case-insensitive exact title, year within ±1
//  4. normalized substring containment either direction, any year
func matchCandidate(candidates []models.SearchCandidate, title string, releaseYear int) *models.SearchCandidate {
	exactTitle := strings.ToLower(strings.TrimSpace(title))
	normalized := normalizeTitle(title)

	rules := []func(c *models.SearchCandidate) bool{
		func(c *models.SearchCandidate) bool {
			return strings.ToLower(strings.TrimSpace(c.Title)) == exactTitle && c.ReleaseYear == releaseYear
		},
		func(c *models.SearchCandidate) bool {
			return normalizeTitle(c.Title) == normalized && c.ReleaseYear == releaseYear
		},
		func(c *models.SearchCandidate) bool {
			if c.ReleaseYear == 0 {
				return false
			}
			diff := c.ReleaseYear - releaseYear
			if diff < 0 {
				diff = -diff
			}
			return strings.ToLower(strings.TrimSpace(c.Title)) == exactTitle && diff <= 1
		},
		func(c *models.SearchCandidate) bool {
			candidate := normalizeTitle(c.Title)
			if candidate == "" || normalized == "" {
				return false
			}
			return strings.Contains(candidate, normalized) || strings.Contains(normalized, candidate)
		},
	}

	for _, rule := range rules {
		for i := range candidates {
			if rule(&candidates[i]) {
				return &candidates[i]
			}
		}
	}
	return nil
}
