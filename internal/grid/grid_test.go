package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ytget/image-searcher/internal/model"
)

func TestPositionFor_DefaultColumns(t *testing.T) {
	for i := 0; i < 100; i++ {
		pos := PositionFor(i, DefaultColumns)
		assert.Equal(t, model.GridPosition{Row: i / 3, Col: i % 3}, pos, "index %d", i)
	}
}

func TestPositionFor_NeverRepeats(t *testing.T) {
	for _, columns := range []int{1, 2, 3, 4, 7} {
		seen := make(map[model.GridPosition]int)
		for i := 0; i < 50; i++ {
			pos := PositionFor(i, columns)
			if prev, ok := seen[pos]; ok {
				t.Fatalf("columns=%d: index %d repeats position of index %d", columns, i, prev)
			}
			seen[pos] = i
			assert.Equal(t, i, pos.Index(columns))
		}
	}
}

func TestPositionFor_Wraps(t *testing.T) {
	assert.Equal(t, model.GridPosition{Row: 0, Col: 2}, PositionFor(2, 3))
	assert.Equal(t, model.GridPosition{Row: 1, Col: 0}, PositionFor(3, 3))
	assert.Equal(t, model.GridPosition{Row: 2, Col: 1}, PositionFor(9, 4))
}

func TestPositionFor_InvalidArguments(t *testing.T) {
	assert.Equal(t, model.GridPosition{Row: 5, Col: 0}, PositionFor(5, 0))
	assert.Equal(t, model.GridPosition{Row: 0, Col: 0}, PositionFor(-3, 3))
}

func TestRowsFor(t *testing.T) {
	tests := []struct {
		count, columns, expected int
	}{
		{0, 3, 0},
		{1, 3, 1},
		{3, 3, 1},
		{4, 3, 2},
		{15, 3, 5},
		{5, 0, 5},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, RowsFor(test.count, test.columns), "RowsFor(%d, %d)", test.count, test.columns)
	}
}
