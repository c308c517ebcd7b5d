package model

import (
	"fmt"
	"strings"
	"time"
)

// Defaults shared by the pipeline and the settings layer
const (
	DefaultResultLimit = 15
	DefaultTitle       = "No title"
)

// SearchQuery is a validated, trimmed, non-empty search term
type SearchQuery string

// NewSearchQuery trims raw input and rejects empty queries
func NewSearchQuery(raw string) (SearchQuery, error) {
	q := strings.TrimSpace(raw)
	if q == "" {
		return "", ErrEmptyQuery
	}
	return SearchQuery(q), nil
}

// String returns the query text
func (q SearchQuery) String() string {
	return string(q)
}

// RawItemData is one entry of an API item's "data" list
type RawItemData struct {
	Title *string `json:"title,omitempty"`
}

// RawItemLink is one entry of an API item's "links" list
type RawItemLink struct {
	Href string `json:"href,omitempty"`
}

// RawSearchResult is a single item as returned by the search API
type RawSearchResult struct {
	Data  []RawItemData `json:"data"`
	Links []RawItemLink `json:"links"`

	// Malformed is set when the item could not be decoded
	Malformed error `json:"-"`
}

// MalformedResult stands in for an item that failed to decode
func MalformedResult(cause error) RawSearchResult {
	return RawSearchResult{Malformed: fmt.Errorf("%w: %v", ErrMalformedItem, cause)}
}

// ResultRecord is the normalized view of a RawSearchResult
type ResultRecord struct {
	Title string
	Href  string
}

// Project builds a ResultRecord from the item's first title and first link.
// Items without a usable href yield ErrMissingHref, undecodable ones ErrMalformedItem.
func (r RawSearchResult) Project() (ResultRecord, error) {
	if r.Malformed != nil {
		return ResultRecord{}, r.Malformed
	}

	title := DefaultTitle
	if len(r.Data) > 0 && r.Data[0].Title != nil {
		if t := strings.TrimSpace(*r.Data[0].Title); t != "" {
			title = t
		}
	}

	if len(r.Links) == 0 {
		return ResultRecord{}, ErrMissingHref
	}
	href := strings.TrimSpace(r.Links[0].Href)
	if href == "" {
		return ResultRecord{}, ErrMissingHref
	}

	return ResultRecord{Title: title, Href: href}, nil
}

// ShortTitle returns the title cut to max runes
func (r ResultRecord) ShortTitle(max int) string {
	runes := []rune(r.Title)
	if max <= 0 || len(runes) <= max {
		return r.Title
	}
	return string(runes[:max])
}

// ResultSet is the ordered, filtered and limit-truncated record list of one search
type ResultSet struct {
	Records []ResultRecord
	// Found counts every raw item, including the ones that were skipped
	Found int
	// Skipped counts malformed items and items without a usable href
	Skipped int
	// Truncated counts usable records dropped by the rendering limit
	Truncated int
}

// NewResultSet normalizes raw items in order, drops the ones without href and
// keeps at most limit records. A non-positive limit falls back to DefaultResultLimit.
func NewResultSet(items []RawSearchResult, limit int) *ResultSet {
	if limit <= 0 {
		limit = DefaultResultLimit
	}

	rs := &ResultSet{
		Records: make([]ResultRecord, 0, min(len(items), limit)),
		Found:   len(items),
	}

	for _, item := range items {
		record, err := item.Project()
		if err != nil {
			rs.Skipped++
			continue
		}
		if len(rs.Records) >= limit {
			rs.Truncated++
			continue
		}
		rs.Records = append(rs.Records, record)
	}

	return rs
}

// Len returns the number of records to render
func (rs *ResultSet) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.Records)
}

// SearchSummary describes the outcome of one submitted search
type SearchSummary struct {
	ID         string
	Query      SearchQuery
	Status     SearchStatus
	Found      int
	Rendered   int
	Skipped    int
	Failed     int
	StartedAt  time.Time
	FinishedAt time.Time
}
