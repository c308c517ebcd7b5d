package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"

	"github.com/ytget/image-searcher/internal/grid"
	"github.com/ytget/image-searcher/internal/model"
	"github.com/ytget/image-searcher/internal/thumbnail"
)

// ResultGrid lays tiles out row by row in a vertically scrolling grid.
// All methods must be called on the Fyne goroutine.
type ResultGrid struct {
	columns  int
	tileSize float32

	cells  *fyne.Container
	scroll *container.Scroll
	tiles  []*TileWidget

	onActivate func(href string)
}

// NewResultGrid creates an empty grid; onActivate receives the href of a tapped tile
func NewResultGrid(columns int, onActivate func(href string)) *ResultGrid {
	if columns <= 0 {
		columns = grid.DefaultColumns
	}
	g := &ResultGrid{
		columns:    columns,
		tileSize:   thumbnail.DefaultSize,
		onActivate: onActivate,
	}
	g.cells = container.New(layout.NewGridLayoutWithColumns(columns))
	g.scroll = container.NewVScroll(g.cells)
	return g
}

// Container returns the scrollable grid
func (g *ResultGrid) Container() fyne.CanvasObject {
	return g.scroll
}

// SetColumns changes the column count and re-lays the current tiles
func (g *ResultGrid) SetColumns(columns int) {
	if columns <= 0 {
		columns = grid.DefaultColumns
	}
	if columns == g.columns {
		return
	}
	g.columns = columns
	g.cells.Layout = layout.NewGridLayoutWithColumns(columns)
	g.cells.Refresh()
}

// Columns returns the column count
func (g *ResultGrid) Columns() int {
	return g.columns
}

// SetTileSize sets the thumbnail box used by tiles added from now on
func (g *ResultGrid) SetTileSize(size int) {
	if size > 0 {
		g.tileSize = float32(size)
	}
}

// Clear removes every tile and scrolls back to the top
func (g *ResultGrid) Clear() {
	g.tiles = nil
	g.cells.RemoveAll()
	g.scroll.ScrollToTop()
}

// Reset clears the grid and lays out the next search with its own column
// count and thumbnail box. Layout changes only take effect here so tiles
// always sit at the position they were assigned.
func (g *ResultGrid) Reset(columns, tileSize int) {
	g.Clear()
	g.SetColumns(columns)
	g.SetTileSize(tileSize)
}

// Add places a tile in the cell its grid position names. Cells skipped over
// stay empty.
func (g *ResultGrid) Add(tile *model.Tile) *TileWidget {
	tw := NewTileWidget(tile, g.tileSize, g.onActivate)
	g.tiles = append(g.tiles, tw)

	index := tile.Position.Index(g.columns)
	for len(g.cells.Objects) < index {
		g.cells.Add(layout.NewSpacer())
	}
	if index < len(g.cells.Objects) {
		g.cells.Objects[index] = tw
		g.cells.Refresh()
	} else {
		g.cells.Add(tw)
	}
	return tw
}

// Len returns the number of tiles shown
func (g *ResultGrid) Len() int {
	return len(g.tiles)
}

// Tiles returns the tile widgets in grid order
func (g *ResultGrid) Tiles() []*TileWidget {
	out := make([]*TileWidget, len(g.tiles))
	copy(out, g.tiles)
	return out
}

// Rows returns the number of grid rows in use
func (g *ResultGrid) Rows() int {
	return grid.RowsFor(len(g.tiles), g.columns)
}
