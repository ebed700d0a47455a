package model

import (
	"regexp"
	"strings"
)

const filmBaseURL = "https://letterboxd.com/film/"

// MovieItem is one entry on a user's watchlist as scraped from the content
// site. ID, Name and Slug come straight from the grid entry attributes.
// Name may carry a trailing "(YYYY)" release year.
type MovieItem struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Slug             string            `json:"slug"`
	StreamingOptions []StreamingOption `json:"streaming_options"`
}

// DetailURL returns the canonical film detail page derived from the slug.
func (m MovieItem) DetailURL() string {
	return filmBaseURL + m.Slug
}

var trailingYear = regexp.MustCompile(`\s*\((\d{4})\)\s*$`)

// SplitTitleYear separates a display title from its trailing "(YYYY)"
// release year. When no year is embedded the title is returned trimmed and
// year is empty, so exact-year matching downstream can never succeed.
func SplitTitleYear(title string) (clean string, year string) {
	loc := trailingYear.FindStringSubmatchIndex(title)
	if loc == nil {
		return strings.TrimSpace(title), ""
	}
	return strings.TrimSpace(title[:loc[0]]), title[loc[2]:loc[3]]
}
