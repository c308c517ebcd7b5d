package download

import (
	"context"
)

// Fetcher defines the interface for fetching raw resource bytes.
type Fetcher interface {
	// Fetch performs one GET of url and returns the response body.
	Fetch(ctx context.Context, url string) ([]byte, error)
}
