package search

import (
	"context"

	"github.com/ytget/image-searcher/internal/config"
	"github.com/ytget/image-searcher/internal/model"
)

// Dialog titles and messages shown by the controller
const (
	WarningTitle      = "Warning"
	ErrorTitle        = "Error"
	EmptyQueryMessage = "Please enter a search term."
)

// Presenter is the part of the UI the controller drives.
// Implementations must be safe to call from any goroutine and must not call
// back into the controller.
type Presenter interface {
	ShowWarning(title, message string)
	ShowError(title, message string)
	// ClearResults empties the grid and lays the next tiles out with the
	// given column count and thumbnail box
	ClearResults(columns, thumbnailSize int)
	AddTile(tile *model.Tile)
}

// Searcher performs the search request. An empty endpoint means the
// searcher's own default.
type Searcher interface {
	Search(ctx context.Context, endpoint string, query model.SearchQuery) ([]model.RawSearchResult, error)
}

// ConfigSource provides the settings snapshot a search runs with
type ConfigSource interface {
	SearchConfig() (config.SearchConfig, error)
}

// ActivityLog receives user-visible activity lines
type ActivityLog interface {
	Appendf(format string, args ...any) model.LogEntry
}
