package model

import (
	"errors"
	"fmt"
	"image"
	"testing"
)

func strPtr(s string) *string { return &s }

func rawItem(title *string, href string) RawSearchResult {
	item := RawSearchResult{Data: []RawItemData{{Title: title}}}
	if href != "" {
		item.Links = []RawItemLink{{Href: href}}
	}
	return item
}

func TestNewSearchQuery(t *testing.T) {
	tests := []struct {
		input    string
		expected SearchQuery
		wantErr  bool
	}{
		{"mars", "mars", false},
		{"  apollo 11 \n", "apollo 11", false},
		{"", "", true},
		{"   \t ", "", true},
	}

	for _, test := range tests {
		q, err := NewSearchQuery(test.input)
		if test.wantErr {
			if !errors.Is(err, ErrEmptyQuery) {
				t.Errorf("NewSearchQuery(%q) error = %v, expected ErrEmptyQuery", test.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("NewSearchQuery(%q) unexpected error: %v", test.input, err)
		}
		if q != test.expected {
			t.Errorf("NewSearchQuery(%q) = %q, expected %q", test.input, q, test.expected)
		}
	}
}

func TestRawSearchResult_Project(t *testing.T) {
	tests := []struct {
		name      string
		item      RawSearchResult
		expected  ResultRecord
		expectErr error
	}{
		{"title and href", rawItem(strPtr("Nebula"), "https://img/1.jpg"), ResultRecord{"Nebula", "https://img/1.jpg"}, nil},
		{"missing title", rawItem(nil, "https://img/2.jpg"), ResultRecord{DefaultTitle, "https://img/2.jpg"}, nil},
		{"blank title", rawItem(strPtr("  "), "https://img/3.jpg"), ResultRecord{DefaultTitle, "https://img/3.jpg"}, nil},
		{"no data list", RawSearchResult{Links: []RawItemLink{{Href: "https://img/4.jpg"}}}, ResultRecord{DefaultTitle, "https://img/4.jpg"}, nil},
		{"no links", rawItem(strPtr("Lost"), ""), ResultRecord{}, ErrMissingHref},
		{"empty href", RawSearchResult{Links: []RawItemLink{{Href: " "}}}, ResultRecord{}, ErrMissingHref},
		{"first link wins", RawSearchResult{Links: []RawItemLink{{Href: "a"}, {Href: "b"}}}, ResultRecord{DefaultTitle, "a"}, nil},
		{"malformed", MalformedResult(errors.New("bad title")), ResultRecord{}, ErrMalformedItem},
	}

	for _, test := range tests {
		record, err := test.item.Project()
		if !errors.Is(err, test.expectErr) {
			t.Errorf("%s: error = %v, expected %v", test.name, err, test.expectErr)
			continue
		}
		if record != test.expected {
			t.Errorf("%s: record = %+v, expected %+v", test.name, record, test.expected)
		}
	}
}

func TestNewResultSet_FilterThenLimit(t *testing.T) {
	items := make([]RawSearchResult, 0, 20)
	for i := 0; i < 20; i++ {
		href := fmt.Sprintf("https://img/%d.jpg", i)
		if i%4 == 0 {
			href = ""
		}
		items = append(items, rawItem(strPtr(fmt.Sprintf("item %d", i)), href))
	}

	rs := NewResultSet(items, 15)

	if rs.Found != 20 {
		t.Errorf("Found = %d, expected 20", rs.Found)
	}
	if rs.Skipped != 5 {
		t.Errorf("Skipped = %d, expected 5", rs.Skipped)
	}
	if rs.Len() != 15 {
		t.Fatalf("Len = %d, expected 15", rs.Len())
	}
	if rs.Truncated != 0 {
		t.Errorf("Truncated = %d, expected 0", rs.Truncated)
	}

	// Order follows the raw list, skipping items without href
	if rs.Records[0].Href != "https://img/1.jpg" {
		t.Errorf("first record = %s, expected https://img/1.jpg", rs.Records[0].Href)
	}
	if rs.Records[3].Href != "https://img/5.jpg" {
		t.Errorf("fourth record = %s, expected https://img/5.jpg", rs.Records[3].Href)
	}
}

func TestNewResultSet_Truncates(t *testing.T) {
	items := make([]RawSearchResult, 30)
	for i := range items {
		items[i] = rawItem(nil, fmt.Sprintf("https://img/%d", i))
	}

	rs := NewResultSet(items, 0)
	if rs.Len() != DefaultResultLimit {
		t.Errorf("Len = %d, expected default limit %d", rs.Len(), DefaultResultLimit)
	}
	if rs.Truncated != 30-DefaultResultLimit {
		t.Errorf("Truncated = %d, expected %d", rs.Truncated, 30-DefaultResultLimit)
	}
}

func TestResultSet_LenNil(t *testing.T) {
	var rs *ResultSet
	if rs.Len() != 0 {
		t.Error("nil ResultSet should have zero length")
	}
}

func TestResultRecord_ShortTitle(t *testing.T) {
	r := ResultRecord{Title: "Żółta mgławica nad horyzontem"}
	if got := r.ShortTitle(5); got != "Żółta" {
		t.Errorf("ShortTitle(5) = %q, expected %q", got, "Żółta")
	}
	if got := r.ShortTitle(100); got != r.Title {
		t.Errorf("ShortTitle(100) = %q, expected full title", got)
	}
}

func TestTile_Release(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	tile := NewTile("tile-1", ResultRecord{Title: "x", Href: "y"}, GridPosition{Row: 1, Col: 2}, img)

	if tile.Released() {
		t.Fatal("new tile should hold its thumbnail")
	}
	if tile.Position.Index(3) != 5 {
		t.Errorf("Index(3) = %d, expected 5", tile.Position.Index(3))
	}

	tile.Release()
	if !tile.Released() || tile.Thumbnail() != nil {
		t.Error("released tile should not hold a thumbnail")
	}
}

func TestErrors(t *testing.T) {
	cause := errors.New("connection refused")
	netErr := &NetworkError{URL: "https://x", Err: cause}
	if !errors.Is(netErr, cause) {
		t.Error("NetworkError should unwrap to its cause")
	}
	if !IsRequestError(fmt.Errorf("search: %w", netErr)) {
		t.Error("wrapped NetworkError should be a request error")
	}

	statusErr := &HTTPStatusError{URL: "https://x", StatusCode: 404, Status: "404 Not Found"}
	if !IsRequestError(statusErr) {
		t.Error("HTTPStatusError should be a request error")
	}
	if statusErr.Error() != "unexpected HTTP status 404 Not Found for https://x" {
		t.Errorf("unexpected message: %s", statusErr.Error())
	}

	decodeErr := &DecodeError{Err: cause}
	if IsRequestError(decodeErr) {
		t.Error("DecodeError is not a request error")
	}
}
