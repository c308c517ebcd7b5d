// Package grid maps result indices to fixed-column grid positions.
package grid

import "github.com/ytget/image-searcher/internal/model"

// DefaultColumns is the column count of the result grid
const DefaultColumns = 3

// PositionFor returns the grid slot of the index-th rendered tile.
// A non-positive column count is treated as a single column.
func PositionFor(index, columns int) model.GridPosition {
	if columns <= 0 {
		columns = 1
	}
	if index < 0 {
		index = 0
	}
	return model.GridPosition{
		Row: index / columns,
		Col: index % columns,
	}
}

// RowsFor returns how many rows count tiles occupy
func RowsFor(count, columns int) int {
	if count <= 0 {
		return 0
	}
	if columns <= 0 {
		columns = 1
	}
	return (count + columns - 1) / columns
}
