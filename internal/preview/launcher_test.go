package preview

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/image-searcher/internal/activity"
	"github.com/ytget/image-searcher/internal/download"
	"github.com/ytget/image-searcher/internal/model"
)

type fakeSurface struct {
	mu       sync.Mutex
	previews []*model.Preview
	errors   []string
}

func (s *fakeSurface) ShowPreview(preview *model.Preview) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.previews = append(s.previews, preview)
}

func (s *fakeSurface) ShowError(title, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errors = append(s.errors, message)
}

type fixedTimeout time.Duration

func (f fixedTimeout) GetRequestTimeout() time.Duration {
	return time.Duration(f)
}

func fullImage(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 1200, 800))))
	return buf.Bytes()
}

func newLauncher(t *testing.T) (*Launcher, *fakeSurface, *activity.Log) {
	logger, _ := test.NewNullLogger()
	surface := &fakeSurface{}
	log := activity.NewLog(logger)
	return NewLauncher(download.NewClient(5*time.Second, logger), surface, log, fixedTimeout(5*time.Second), logger), surface, log
}

func TestOpen_FullResolution(t *testing.T) {
	data := fullImage(t)
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		_, _ = w.Write(data)
	}))
	defer server.Close()

	launcher, surface, log := newLauncher(t)

	require.NoError(t, launcher.Open(context.Background(), server.URL+"/orig.png"))

	require.Len(t, surface.previews, 1)
	preview := surface.previews[0]
	assert.Equal(t, server.URL+"/orig.png", preview.URL)
	assert.Equal(t, 1200, preview.Image.Bounds().Dx())
	assert.Equal(t, 800, preview.Image.Bounds().Dy())
	assert.Equal(t, data, preview.Data)
	assert.Equal(t, []string{"Opened full image."}, log.Lines())
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestOpen_TwiceOpensTwoSurfaces(t *testing.T) {
	data := fullImage(t)
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		_, _ = w.Write(data)
	}))
	defer server.Close()

	launcher, surface, log := newLauncher(t)

	require.NoError(t, launcher.Open(context.Background(), server.URL+"/a.png"))
	require.NoError(t, launcher.Open(context.Background(), server.URL+"/a.png"))

	assert.Len(t, surface.previews, 2)
	assert.NotSame(t, surface.previews[0], surface.previews[1])
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
	assert.Equal(t, []string{"Opened full image.", "Opened full image."}, log.Lines())
}

func TestOpen_FetchFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer server.Close()

	launcher, surface, log := newLauncher(t)

	err := launcher.Open(context.Background(), server.URL+"/a.jpg")
	require.Error(t, err)

	var statusErr *model.HTTPStatusError
	assert.True(t, errors.As(err, &statusErr))
	assert.Empty(t, surface.previews)
	require.Len(t, surface.errors, 1)
	assert.True(t, strings.HasPrefix(surface.errors[0], "Could not fetch full image:\n"))

	lines := log.Lines()
	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], "Error opening full image: "))
	assert.Contains(t, lines[0], "403")
}

func TestOpen_DecodeFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not an image</html>"))
	}))
	defer server.Close()

	launcher, surface, log := newLauncher(t)

	err := launcher.Open(context.Background(), server.URL)

	var decodeErr *model.DecodeError
	require.True(t, errors.As(err, &decodeErr), "expected DecodeError, got %v", err)
	assert.Len(t, surface.errors, 1)
	assert.Len(t, log.Lines(), 1)
}

func TestSave_WritesOriginalBytes(t *testing.T) {
	launcher, _, log := newLauncher(t)
	dir := t.TempDir()
	preview := &model.Preview{URL: "https://images-assets.nasa.gov/image/PIA1/PIA1~orig.jpg", Data: []byte("jpeg-bytes")}

	path, err := launcher.Save(preview, dir)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, preview.Data, written)

	second, err := launcher.Save(preview, dir)
	require.NoError(t, err)
	assert.NotEqual(t, path, second)

	lines := log.Lines()
	assert.Equal(t, []string{"Saved image: " + path, "Saved image: " + second}, lines)
}

func TestSave_NothingToSave(t *testing.T) {
	launcher, _, log := newLauncher(t)

	_, err := launcher.Save(&model.Preview{URL: "https://example.com/a.jpg"}, t.TempDir())
	require.Error(t, err)
	require.Len(t, log.Lines(), 1)
	assert.True(t, strings.HasPrefix(log.Lines()[0], "Error saving image: "))
}

func TestReveal(t *testing.T) {
	launcher, _, _ := newLauncher(t)

	var revealed string
	launcher.reveal = func(path string) error {
		revealed = path
		return nil
	}
	require.NoError(t, launcher.Reveal("/tmp/a.jpg"))
	assert.Equal(t, "/tmp/a.jpg", revealed)

	launcher.reveal = func(string) error { return errors.New("no file manager") }
	assert.Error(t, launcher.Reveal("/tmp/a.jpg"))
}
