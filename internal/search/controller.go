package search

import (
	"context"
	"fmt"
	"image"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ytget/image-searcher/internal/config"
	"github.com/ytget/image-searcher/internal/download"
	"github.com/ytget/image-searcher/internal/grid"
	"github.com/ytget/image-searcher/internal/model"
	"github.com/ytget/image-searcher/internal/thumbnail"
)

// Title length kept in "Loaded thumbnail" lines
const logTitleRunes = 40

// Controller runs searches and owns the live result tiles
type Controller struct {
	searcher  Searcher
	fetcher   download.Fetcher
	presenter Presenter
	activity  ActivityLog
	settings  ConfigSource
	logger    logrus.FieldLogger

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
	tiles      []*model.Tile
}

// NewController creates a search controller. A nil settings source runs
// every search with the built-in defaults against the searcher's own endpoint.
func NewController(searcher Searcher, fetcher download.Fetcher, presenter Presenter, activity ActivityLog, settings ConfigSource, logger logrus.FieldLogger) *Controller {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Controller{
		searcher:  searcher,
		fetcher:   fetcher,
		presenter: presenter,
		activity:  activity,
		settings:  settings,
		logger:    logger,
	}
}

// Submit validates raw, runs the search and renders its thumbnails in order.
// It blocks until the search finishes, fails or is superseded by a newer Submit.
func (c *Controller) Submit(ctx context.Context, raw string) (*model.SearchSummary, error) {
	query, err := model.NewSearchQuery(raw)
	if err != nil {
		c.presenter.ShowWarning(WarningTitle, EmptyQueryMessage)
		return nil, err
	}

	cfg := c.loadConfig()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	gen := c.begin(cancel)
	defer c.end(gen)

	summary := &model.SearchSummary{
		ID:        generateSearchID(),
		Query:     query,
		Status:    model.SearchStatusSearching,
		StartedAt: time.Now(),
	}
	logger := c.logger.WithFields(logrus.Fields{
		"search_id": summary.ID,
		"query":     query.String(),
	})
	logger.Info("search started")

	if !c.whileCurrent(gen, func() {
		c.activity.Appendf("Searching for: %s", query)
	}) {
		return c.finish(summary, model.SearchStatusSuperseded, logger), nil
	}

	reqCtx, reqCancel := context.WithTimeout(ctx, cfg.RequestTimeout)
	items, err := c.searcher.Search(reqCtx, cfg.Endpoint, query)
	reqCancel()
	if err != nil {
		if ctx.Err() != nil {
			return c.abort(summary, gen, ctx.Err(), logger)
		}
		logger.WithError(err).Warn("search request failed")
		// The previous grid stays as it is
		c.whileCurrent(gen, func() {
			c.activity.Appendf("Search error: %v", err)
			c.presenter.ShowError(ErrorTitle, fmt.Sprintf("An error occurred: %v", err))
		})
		return c.finish(summary, model.SearchStatusFailed, logger), err
	}

	results := model.NewResultSet(items, cfg.ResultLimit)
	summary.Found = results.Found
	summary.Skipped = results.Skipped
	summary.Status = model.SearchStatusRendering

	if !c.whileCurrent(gen, func() {
		c.activity.Appendf("Found %d items", results.Found)
		c.releaseTilesLocked()
		c.presenter.ClearResults(cfg.GridColumns, cfg.ThumbnailSize)
	}) {
		return c.finish(summary, model.SearchStatusSuperseded, logger), nil
	}

	logger.WithFields(logrus.Fields{
		"found":     results.Found,
		"records":   results.Len(),
		"skipped":   results.Skipped,
		"truncated": results.Truncated,
	}).Debug("result set built")

	decoder := thumbnail.NewDecoder(cfg.ThumbnailSize)
	for _, record := range results.Records {
		if ctx.Err() != nil {
			return c.abort(summary, gen, ctx.Err(), logger)
		}

		img, err := c.loadThumbnail(ctx, decoder, record.Href, cfg.RequestTimeout)
		if err != nil {
			if ctx.Err() != nil {
				return c.abort(summary, gen, ctx.Err(), logger)
			}
			logger.WithError(err).WithField("href", record.Href).Warn("thumbnail failed")
			summary.Failed++
			if !c.whileCurrent(gen, func() {
				c.activity.Appendf("Error loading thumbnail: %v", err)
			}) {
				return c.finish(summary, model.SearchStatusSuperseded, logger), nil
			}
			continue
		}

		if !c.whileCurrent(gen, func() {
			tile := model.NewTile(generateTileID(), record, grid.PositionFor(len(c.tiles), cfg.GridColumns), img)
			c.tiles = append(c.tiles, tile)
			c.presenter.AddTile(tile)
			c.activity.Appendf("Loaded thumbnail: %s...", record.ShortTitle(logTitleRunes))
		}) {
			return c.finish(summary, model.SearchStatusSuperseded, logger), nil
		}
		summary.Rendered++
	}

	return c.finish(summary, model.SearchStatusCompleted, logger), nil
}

// Tiles returns a copy of the live tiles in grid order
func (c *Controller) Tiles() []*model.Tile {
	c.mu.Lock()
	defer c.mu.Unlock()

	tiles := make([]*model.Tile, len(c.tiles))
	copy(tiles, c.tiles)
	return tiles
}

// Cancel stops the search in flight, if any
func (c *Controller) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.generation++
}

func (c *Controller) loadThumbnail(ctx context.Context, decoder *thumbnail.Decoder, href string, timeout time.Duration) (image.Image, error) {
	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	data, err := c.fetcher.Fetch(reqCtx, href)
	if err != nil {
		return nil, err
	}
	return decoder.Thumbnail(data)
}

// begin makes a new generation current and cancels the previous search
func (c *Controller) begin(cancel context.CancelFunc) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel != nil {
		c.cancel()
	}
	c.generation++
	c.cancel = cancel
	return c.generation
}

func (c *Controller) end(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.generation == gen {
		c.cancel = nil
	}
}

// whileCurrent runs fn under the controller lock if gen is still the newest
// search and reports whether it did.
func (c *Controller) whileCurrent(gen uint64, fn func()) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.generation != gen {
		return false
	}
	fn()
	return true
}

func (c *Controller) isCurrent(gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation == gen
}

// abort ends a search whose context was cancelled. Cancellation is never
// reported to the user.
func (c *Controller) abort(summary *model.SearchSummary, gen uint64, cause error, logger logrus.FieldLogger) (*model.SearchSummary, error) {
	if !c.isCurrent(gen) {
		return c.finish(summary, model.SearchStatusSuperseded, logger), nil
	}
	return c.finish(summary, model.SearchStatusFailed, logger), cause
}

func (c *Controller) finish(summary *model.SearchSummary, status model.SearchStatus, logger logrus.FieldLogger) *model.SearchSummary {
	summary.Status = status
	summary.FinishedAt = time.Now()

	logger.WithFields(logrus.Fields{
		"status":   status.String(),
		"found":    summary.Found,
		"rendered": summary.Rendered,
		"failed":   summary.Failed,
		"duration": summary.FinishedAt.Sub(summary.StartedAt),
	}).Info("search finished")

	return summary
}

func (c *Controller) releaseTilesLocked() {
	for _, tile := range c.tiles {
		tile.Release()
	}
	c.tiles = nil
}

// loadConfig snapshots the settings. Invalid settings fall back to the
// defaults as a whole, endpoint included.
func (c *Controller) loadConfig() config.SearchConfig {
	if c.settings == nil {
		cfg := config.DefaultSearchConfig()
		cfg.Endpoint = ""
		return cfg
	}
	cfg, err := c.settings.SearchConfig()
	if err != nil {
		c.logger.WithError(err).Warn("invalid search settings, using defaults")
		return config.DefaultSearchConfig()
	}
	return cfg
}

func generateSearchID() string {
	return "search-" + uuid.NewString()
}

func generateTileID() string {
	return "tile-" + uuid.NewString()
}
