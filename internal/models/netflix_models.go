package models

import "encoding/json"

// Top10Page is the flattened result of one Netflix Top 10 fetch.
type Top10Page struct {
	CountryCode string       `json:"countryCode"`
	Type        string       `json:"type"`
	WeekEndDate string       `json:"weekEndDate,omitempty"`
	Results     []Top10Entry `json:"results"`
}

// Top10Entry is one ranked title of a weekly Top 10 feed, deduplicated
// by VideoID and sorted ascending by Rank.
type Top10Entry struct {
	Rank           int          `json:"rank"`
	Title          string       `json:"title"`
	Synopsis       string       `json:"synopsis,omitempty"`
	ReleaseYear    int          `json:"releaseYear,omitempty"`
	WeeksInTop10   int          `json:"weeksInTop10,omitempty"`
	WeekEndDate    string       `json:"weekEndDate,omitempty"`
	RuntimeHours   float64      `json:"runtimeHours,omitempty"`
	VideoID        int64        `json:"videoId"`
	MaturityRating string       `json:"maturityRating,omitempty"`
	Artwork        Top10Artwork `json:"artwork"`
}

type Top10Artwork struct {
	Logo  string `json:"logo,omitempty"`
	SDP   string `json:"sdp,omitempty"`
	Story string `json:"story,omitempty"`
}

// Pulse GraphQL response shapes. The document is a loosely shaped
// section/entity graph; every nested access goes through a pointer.

type PulseResponse struct {
	Data   *PulseData     `json:"data"`
	Errors []GraphQLError `json:"errors"`
}

type PulseData struct {
	PulsePage *PulsePage `json:"pulsePage"`
}

type PulsePage struct {
	Sections []PulseSection `json:"sections"`
}

type PulseSection struct {
	Typename string        `json:"__typename"`
	GUID     string        `json:"guid"`
	Entities []PulseEntity `json:"entities"`
}

type PulseEntity struct {
	Typename   string         `json:"__typename"`
	Top10      *PulseTop10    `json:"top10"`
	Top10Video *PulseVideo    `json:"top10Video"`
	Artwork    *PulseArtworks `json:"artwork"`
}

type PulseTop10 struct {
	WeeklyRank             *int     `json:"weeklyRank"`
	CumulativeWeeksInTop10 *int     `json:"cumulativeWeeksInTop10"`
	WeekEndDate            string   `json:"weekEndDate"`
	Runtime                *float64 `json:"runtime"`
}

type PulseVideo struct {
	VideoID     *int64           `json:"videoId"`
	Title       string           `json:"title"`
	Synopsis    string           `json:"shortSynopsis"`
	ReleaseYear *int             `json:"releaseYear"`
	Maturity    json.RawMessage  `json:"maturityRating"`
	ParentShow  *PulseParentShow `json:"parentShow"`
}

type PulseParentShow struct {
	Title string `json:"title"`
}

// MaturityRating returns the rating as a string when the feed encodes
// it as one, and an empty string for any other shape.
func (v *PulseVideo) MaturityRating() string {
	if v == nil || len(v.Maturity) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(v.Maturity, &s); err != nil {
		return ""
	}
	return s
}

type PulseArtworks struct {
	LogoArt  *PulseArt `json:"logoArt"`
	SDPArt   *PulseArt `json:"sdpArt"`
	StoryArt *PulseArt `json:"storyArt"`
}

type PulseArt struct {
	URLsSized []PulseSizedURL `json:"urlsSized"`
}

type PulseSizedURL struct {
	URL string `json:"url"`
}

// FirstURL returns the first sized URL of an artwork slot, if any.
func (a *PulseArt) FirstURL() string {
	if a == nil || len(a.URLsSized) == 0 {
		return ""
	}
	return a.URLsSized[0].URL
}
