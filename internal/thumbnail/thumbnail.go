// Package thumbnail decodes fetched image bytes and produces bounded previews
// for the result grid. Resampling uses golang.org/x/image/draw so builds stay
// free of CGo.
package thumbnail

import (
	"bytes"
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/ytget/image-searcher/internal/model"
)

// DefaultSize is the edge of the square box thumbnails are fitted into
const DefaultSize = 180

var errEmptyData = errors.New("empty image data")

// Decode turns raw bytes of any registered raster format into a bitmap.
// Failures are reported as *model.DecodeError.
func Decode(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, &model.DecodeError{Err: errEmptyData}
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &model.DecodeError{Err: err}
	}
	if img.Bounds().Empty() {
		return nil, &model.DecodeError{Err: errors.New("image has empty bounds")}
	}
	return img, nil
}

// FitWithin scales img down so it fits inside maxWidth x maxHeight, keeping
// the aspect ratio. Images already inside the box are returned unchanged and
// an invalid box leaves the image untouched.
func FitWithin(img image.Image, maxWidth, maxHeight int) image.Image {
	if img == nil || maxWidth <= 0 || maxHeight <= 0 {
		return img
	}

	w, h := TargetSize(img.Bounds().Dx(), img.Bounds().Dy(), maxWidth, maxHeight)
	if w == img.Bounds().Dx() && h == img.Bounds().Dy() {
		return img
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// TargetSize returns the dimensions FitWithin produces for a width x height
// source and the given box.
func TargetSize(width, height, maxWidth, maxHeight int) (int, int) {
	if width <= 0 || height <= 0 || maxWidth <= 0 || maxHeight <= 0 {
		return width, height
	}
	if width <= maxWidth && height <= maxHeight {
		return width, height
	}

	w, h := int64(width), int64(height)
	mw, mh := int64(maxWidth), int64(maxHeight)

	var nw, nh int64
	if w*mh > h*mw {
		nw = mw
		nh = h * mw / w
	} else {
		nh = mh
		nw = w * mh / h
	}

	return int(max(nw, 1)), int(max(nh, 1))
}

// Decoder produces grid thumbnails bounded by MaxWidth x MaxHeight
type Decoder struct {
	MaxWidth  int
	MaxHeight int
}

// NewDecoder creates a decoder fitting thumbnails into a size x size box
func NewDecoder(size int) *Decoder {
	if size <= 0 {
		size = DefaultSize
	}
	return &Decoder{MaxWidth: size, MaxHeight: size}
}

// Thumbnail decodes data and fits the result into the decoder box
func (d *Decoder) Thumbnail(data []byte) (image.Image, error) {
	img, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return FitWithin(img, d.MaxWidth, d.MaxHeight), nil
}

// Full decodes data without any size constraint
func (d *Decoder) Full(data []byte) (image.Image, error) {
	return Decode(data)
}
