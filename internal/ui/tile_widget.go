package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/image-searcher/internal/model"
)

// TileWidget shows one thumbnail with its title and opens the preview when tapped
type TileWidget struct {
	widget.BaseWidget

	tile *model.Tile
	// href is captured when the widget is built so every tile activates its own image
	href string
	size float32

	image   *canvas.Image
	caption *widget.Label

	onActivate func(href string)
}

// NewTileWidget creates a tile widget bounded to a size x size thumbnail box
func NewTileWidget(tile *model.Tile, size float32, onActivate func(href string)) *TileWidget {
	tw := &TileWidget{
		tile:       tile,
		href:       tile.Record.Href,
		size:       size,
		onActivate: onActivate,
	}
	tw.ExtendBaseWidget(tw)
	tw.createUI()
	return tw
}

func (tw *TileWidget) createUI() {
	if thumb := tw.tile.Thumbnail(); thumb != nil {
		tw.image = canvas.NewImageFromImage(thumb)
	} else {
		tw.image = canvas.NewImageFromResource(nil)
	}
	tw.image.FillMode = canvas.ImageFillContain
	tw.image.SetMinSize(fyne.NewSize(tw.size, tw.size))

	tw.caption = widget.NewLabel(tw.tile.Record.Title)
	tw.caption.Alignment = fyne.TextAlignCenter
	tw.caption.Wrapping = fyne.TextWrapWord
	tw.caption.Truncation = fyne.TextTruncateOff
}

// Href returns the image URL this tile opens
func (tw *TileWidget) Href() string {
	return tw.href
}

// Tile returns the bound tile
func (tw *TileWidget) Tile() *model.Tile {
	return tw.tile
}

// Tapped opens the tile's image
func (tw *TileWidget) Tapped(*fyne.PointEvent) {
	if tw.onActivate != nil {
		tw.onActivate(tw.href)
	}
}

// Cursor shows a hand over clickable tiles
func (tw *TileWidget) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}

// MinSize keeps the caption from widening the grid cell beyond the thumbnail box
func (tw *TileWidget) MinSize() fyne.Size {
	ms := tw.BaseWidget.MinSize()
	if ms.Width < tw.size+2*TilePadding {
		ms.Width = tw.size + 2*TilePadding
	}
	return ms
}

// CreateRenderer creates the widget renderer
func (tw *TileWidget) CreateRenderer() fyne.WidgetRenderer {
	content := container.NewBorder(nil, tw.caption, nil, nil, container.NewCenter(tw.image))
	return widget.NewSimpleRenderer(container.NewPadded(content))
}
