package platform

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/image-searcher/internal/download"
	"github.com/ytget/image-searcher/internal/model"
)

const sampleResponse = `{
  "collection": {
    "version": "1.0",
    "items": [
      {"data": [{"title": "Pillars of Creation"}], "links": [{"href": "https://img/1~thumb.jpg", "rel": "preview"}]},
      {"data": [{}], "links": [{"href": "https://img/2~thumb.jpg"}]},
      {"data": [{"title": "No links"}]}
    ]
  }
}`

func newSearchClient(endpoint string) *SearchClient {
	logger, _ := test.NewNullLogger()
	return NewSearchClient(endpoint, download.NewClient(time.Second, logger), logger)
}

func TestNewSearchClient_DefaultEndpoint(t *testing.T) {
	client := newSearchClient("  ")
	assert.Equal(t, DefaultSearchEndpoint, client.Endpoint())
}

func TestBuildURL_EscapesQuery(t *testing.T) {
	client := newSearchClient("https://images-api.nasa.gov/search")

	raw, err := client.BuildURL(model.SearchQuery("apollo 11 & moon?"))
	require.NoError(t, err)

	parsed, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "images-api.nasa.gov", parsed.Host)
	assert.Equal(t, "/search", parsed.Path)
	assert.Equal(t, "apollo 11 & moon?", parsed.Query().Get("q"))
	assert.Equal(t, "image", parsed.Query().Get("media_type"))
	assert.Equal(t, "media_type=image&q=apollo+11+%26+moon%3F", parsed.RawQuery)
}

func TestBuildURL_KeepsEndpointParams(t *testing.T) {
	client := newSearchClient("https://example.com/search?page_size=50")

	raw, err := client.BuildURL(model.SearchQuery("mars"))
	require.NoError(t, err)

	parsed, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "50", parsed.Query().Get("page_size"))
	assert.Equal(t, "mars", parsed.Query().Get("q"))
}

func TestParseSearchResponse(t *testing.T) {
	items, err := ParseSearchResponse([]byte(sampleResponse))
	require.NoError(t, err)
	require.Len(t, items, 3)

	record, err := items[0].Project()
	require.NoError(t, err)
	assert.Equal(t, model.ResultRecord{Title: "Pillars of Creation", Href: "https://img/1~thumb.jpg"}, record)

	record, err = items[1].Project()
	require.NoError(t, err)
	assert.Equal(t, model.DefaultTitle, record.Title)

	_, err = items[2].Project()
	assert.ErrorIs(t, err, model.ErrMissingHref)
}

func TestParseSearchResponse_MalformedItemsIsolated(t *testing.T) {
	body := `{"collection": {"items": [
		{"data": [{"title": "Before"}], "links": [{"href": "https://img/1.jpg"}]},
		{"data": [{"title": 12345}], "links": [{"href": "https://img/2.jpg"}]},
		{"data": [{"title": "Object links"}], "links": {"href": "https://img/3.jpg"}},
		"not an item",
		{"data": [{"title": "After"}], "links": [{"href": "https://img/5.jpg"}]}
	]}}`

	items, err := ParseSearchResponse([]byte(body))
	require.NoError(t, err)
	require.Len(t, items, 5)

	for _, i := range []int{1, 2, 3} {
		_, err := items[i].Project()
		assert.ErrorIs(t, err, model.ErrMalformedItem, "item %d", i)
	}

	rs := model.NewResultSet(items, 15)
	assert.Equal(t, 5, rs.Found)
	assert.Equal(t, 3, rs.Skipped)
	require.Len(t, rs.Records, 2)
	assert.Equal(t, "Before", rs.Records[0].Title)
	assert.Equal(t, "After", rs.Records[1].Title)
}

func TestParseSearchResponse_MissingNesting(t *testing.T) {
	for _, body := range []string{`{}`, `{"collection": {}}`, `{"collection": null}`, `{"collection": {"items": null}}`, `null`} {
		items, err := ParseSearchResponse([]byte(body))
		require.NoError(t, err, body)
		assert.NotNil(t, items, body)
		assert.Empty(t, items, body)
	}
}

func TestParseSearchResponse_Invalid(t *testing.T) {
	for _, body := range []string{`<html>`, `[]`, ``} {
		_, err := ParseSearchResponse([]byte(body))
		assert.ErrorIs(t, err, model.ErrInvalidResponse, body)
	}
}

func TestSearch_OneRequest(t *testing.T) {
	var requests []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, r.URL.RawQuery)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleResponse))
	}))
	defer server.Close()

	items, err := newSearchClient(server.URL+"/search").Search(context.Background(), "", "nebula")
	require.NoError(t, err)
	assert.Len(t, items, 3)
	assert.Equal(t, []string{"media_type=image&q=nebula"}, requests)
}

func TestSearch_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := newSearchClient(server.URL).Search(context.Background(), "", "nebula")

	var statusErr *model.HTTPStatusError
	require.True(t, errors.As(err, &statusErr), "expected HTTPStatusError, got %v", err)
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
}

func TestSearch_EndpointOverride(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		_, _ = w.Write([]byte(`{"collection": {"items": []}}`))
	}))
	defer server.Close()

	client := newSearchClient("ftp://images.example/search")

	items, err := client.Search(context.Background(), server.URL+"/override", "nebula")
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, []string{"/override"}, paths)
	assert.Equal(t, "ftp://images.example/search", client.Endpoint())
}
