package model

import (
	"image"
	"sync"
	"time"
)

// GridPosition is a (row, column) slot in the result grid
type GridPosition struct {
	Row int
	Col int
}

// Index returns the linear slot index for the given column count
func (p GridPosition) Index(columns int) int {
	if columns <= 0 {
		columns = 1
	}
	return p.Row*columns + p.Col
}

// Tile binds one rendered thumbnail to its result record.
// The bitmap is owned by the tile and dropped by Release.
type Tile struct {
	ID       string
	Record   ResultRecord
	Position GridPosition

	mu        sync.RWMutex
	thumbnail image.Image
}

// NewTile creates a tile holding the given thumbnail
func NewTile(id string, record ResultRecord, pos GridPosition, thumb image.Image) *Tile {
	return &Tile{
		ID:        id,
		Record:    record,
		Position:  pos,
		thumbnail: thumb,
	}
}

// Thumbnail returns the tile bitmap, or nil once released
func (t *Tile) Thumbnail() image.Image {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.thumbnail
}

// Release drops the bitmap reference
func (t *Tile) Release() {
	t.mu.Lock()
	t.thumbnail = nil
	t.mu.Unlock()
}

// Released reports whether the bitmap was dropped
func (t *Tile) Released() bool {
	return t.Thumbnail() == nil
}

// LogEntry is one immutable line of the activity log
type LogEntry struct {
	Seq  uint64
	Time time.Time
	Text string
}

// Preview is a full-resolution image ready to be shown in its own surface
type Preview struct {
	URL   string
	Image image.Image
	// Data keeps the original bytes so the surface can save them unchanged
	Data []byte
}
