package thumbnail

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/image-searcher/internal/model"
)

func createTestImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	return img
}

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, createTestImage(width, height)))
	return buf.Bytes()
}

func TestDecode_Formats(t *testing.T) {
	img := createTestImage(40, 20)

	var jpegBuf, gifBuf bytes.Buffer
	require.NoError(t, jpeg.Encode(&jpegBuf, img, &jpeg.Options{Quality: 90}))
	require.NoError(t, gif.Encode(&gifBuf, img, nil))

	for name, data := range map[string][]byte{
		"png":  encodePNG(t, 40, 20),
		"jpeg": jpegBuf.Bytes(),
		"gif":  gifBuf.Bytes(),
	} {
		decoded, err := Decode(data)
		require.NoError(t, err, name)
		assert.Equal(t, 40, decoded.Bounds().Dx(), name)
		assert.Equal(t, 20, decoded.Bounds().Dy(), name)
	}
}

func TestDecode_InvalidData(t *testing.T) {
	for _, data := range [][]byte{nil, {}, []byte("<html>not an image</html>")} {
		_, err := Decode(data)
		require.Error(t, err)

		var decodeErr *model.DecodeError
		assert.True(t, errors.As(err, &decodeErr), "expected DecodeError, got %T", err)
	}
}

func TestTargetSize(t *testing.T) {
	tests := []struct {
		name             string
		w, h, maxW, maxH int
		wantW, wantH     int
	}{
		{"landscape", 800, 400, 180, 180, 180, 90},
		{"portrait", 400, 800, 180, 180, 90, 180},
		{"square", 1000, 1000, 180, 180, 180, 180},
		{"already small", 100, 50, 180, 180, 100, 50},
		{"exact box", 180, 180, 180, 180, 180, 180},
		{"extreme strip", 10000, 1, 180, 180, 180, 1},
		{"wide box", 300, 300, 200, 100, 100, 100},
	}

	for _, test := range tests {
		w, h := TargetSize(test.w, test.h, test.maxW, test.maxH)
		assert.Equal(t, test.wantW, w, test.name)
		assert.Equal(t, test.wantH, h, test.name)
	}
}

func TestFitWithin_NeverExceedsBoxNorUpscales(t *testing.T) {
	sizes := [][2]int{{1, 1}, {10, 300}, {300, 10}, {179, 181}, {640, 480}, {181, 180}, {50, 50}}
	for _, size := range sizes {
		src := createTestImage(size[0], size[1])
		out := FitWithin(src, 180, 180)

		b := out.Bounds()
		assert.LessOrEqual(t, b.Dx(), 180, "width for %v", size)
		assert.LessOrEqual(t, b.Dy(), 180, "height for %v", size)
		assert.LessOrEqual(t, b.Dx(), size[0], "upscaled width for %v", size)
		assert.LessOrEqual(t, b.Dy(), size[1], "upscaled height for %v", size)
	}
}

func TestFitWithin_SmallImageUnchanged(t *testing.T) {
	src := createTestImage(50, 40)
	out := FitWithin(src, 180, 180)
	assert.Same(t, src, out)
}

func TestFitWithin_InvalidBox(t *testing.T) {
	src := createTestImage(500, 400)
	assert.Same(t, src, FitWithin(src, 0, 180))
	assert.Nil(t, FitWithin(nil, 180, 180))
}

func TestDecoder_Thumbnail(t *testing.T) {
	d := NewDecoder(0)
	assert.Equal(t, DefaultSize, d.MaxWidth)

	thumb, err := d.Thumbnail(encodePNG(t, 720, 360))
	require.NoError(t, err)
	assert.Equal(t, 180, thumb.Bounds().Dx())
	assert.Equal(t, 90, thumb.Bounds().Dy())

	full, err := d.Full(encodePNG(t, 720, 360))
	require.NoError(t, err)
	assert.Equal(t, 720, full.Bounds().Dx())
}
