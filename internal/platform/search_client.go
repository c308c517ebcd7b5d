package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/ytget/image-searcher/internal/download"
	"github.com/ytget/image-searcher/internal/model"
)

// Search API constants
const (
	DefaultSearchEndpoint = "https://images-api.nasa.gov/search"
	QueryParam            = "q"
	MediaTypeParam        = "media_type"
	MediaTypeImage        = "image"
)

// searchEnvelope mirrors {collection: {items: [...]}}; both levels may be absent.
// Items are decoded one by one so a bad item cannot spoil the others.
type searchEnvelope struct {
	Collection *struct {
		Items []json.RawMessage `json:"items"`
	} `json:"collection"`
}

// SearchClient queries the image search API
type SearchClient struct {
	fetcher download.Fetcher
	logger  logrus.FieldLogger

	mu       sync.RWMutex
	endpoint string
}

// NewSearchClient creates a search client issuing requests through fetcher
func NewSearchClient(endpoint string, fetcher download.Fetcher, logger logrus.FieldLogger) *SearchClient {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	c := &SearchClient{
		fetcher: fetcher,
		logger:  logger,
	}
	c.SetEndpoint(endpoint)
	return c
}

// SetEndpoint sets the search base URL
func (c *SearchClient) SetEndpoint(endpoint string) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		endpoint = DefaultSearchEndpoint
	}
	c.mu.Lock()
	c.endpoint = endpoint
	c.mu.Unlock()
}

// Endpoint returns the search base URL
func (c *SearchClient) Endpoint() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.endpoint
}

// BuildURL returns the request URL for query against the configured endpoint
func (c *SearchClient) BuildURL(query model.SearchQuery) (string, error) {
	return buildURL(c.Endpoint(), query)
}

// Search issues exactly one request against endpoint and returns the raw
// result items. An empty endpoint uses the configured one.
func (c *SearchClient) Search(ctx context.Context, endpoint string, query model.SearchQuery) ([]model.RawSearchResult, error) {
	if strings.TrimSpace(endpoint) == "" {
		endpoint = c.Endpoint()
	}
	reqURL, err := buildURL(endpoint, query)
	if err != nil {
		return nil, err
	}

	c.logger.WithField("url", reqURL).Info("search request")

	body, err := c.fetcher.Fetch(ctx, reqURL)
	if err != nil {
		return nil, err
	}

	items, err := ParseSearchResponse(body)
	if err != nil {
		c.logger.WithError(err).WithField("url", reqURL).Warn("search response rejected")
		return nil, err
	}

	c.logger.WithFields(logrus.Fields{
		"query": query.String(),
		"items": len(items),
	}).Info("search response parsed")

	return items, nil
}

// buildURL escapes query into endpoint. Parameters already present on the
// endpoint are kept.
func buildURL(endpoint string, query model.SearchQuery) (string, error) {
	base, err := url.Parse(strings.TrimSpace(endpoint))
	if err != nil {
		return "", fmt.Errorf("invalid search endpoint: %w", err)
	}

	params := base.Query()
	params.Set(QueryParam, query.String())
	params.Set(MediaTypeParam, MediaTypeImage)
	base.RawQuery = params.Encode()

	return base.String(), nil
}

// ParseSearchResponse extracts collection.items from a search response body.
// A missing collection or items list yields an empty result. Items that do not
// decode are kept in place as malformed results.
func ParseSearchResponse(body []byte) ([]model.RawSearchResult, error) {
	var envelope searchEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidResponse, err)
	}
	if envelope.Collection == nil || envelope.Collection.Items == nil {
		return []model.RawSearchResult{}, nil
	}

	items := make([]model.RawSearchResult, 0, len(envelope.Collection.Items))
	for _, raw := range envelope.Collection.Items {
		var item model.RawSearchResult
		if err := json.Unmarshal(raw, &item); err != nil {
			items = append(items, model.MalformedResult(err))
			continue
		}
		items = append(items, item)
	}
	return items, nil
}
