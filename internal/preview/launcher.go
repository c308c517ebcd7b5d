package preview

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ytget/image-searcher/internal/download"
	"github.com/ytget/image-searcher/internal/model"
	"github.com/ytget/image-searcher/internal/platform"
	"github.com/ytget/image-searcher/internal/thumbnail"
)

// ErrorTitle is the title of the preview error dialog
const ErrorTitle = "Error"

// Surface displays previews. Every ShowPreview call opens a new window.
type Surface interface {
	ShowPreview(preview *model.Preview)
	ShowError(title, message string)
}

// ActivityLog receives user-visible activity lines
type ActivityLog interface {
	Appendf(format string, args ...any) model.LogEntry
}

// TimeoutSource provides the per-request network timeout
type TimeoutSource interface {
	GetRequestTimeout() time.Duration
}

// Launcher fetches full-size images and hands them to a Surface
type Launcher struct {
	fetcher  download.Fetcher
	surface  Surface
	activity ActivityLog
	timeouts TimeoutSource
	decoder  *thumbnail.Decoder
	logger   logrus.FieldLogger

	reveal func(path string) error
}

// NewLauncher creates a preview launcher. A nil timeout source uses the
// fetch client's own timeout.
func NewLauncher(fetcher download.Fetcher, surface Surface, activity ActivityLog, timeouts TimeoutSource, logger logrus.FieldLogger) *Launcher {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Launcher{
		fetcher:  fetcher,
		surface:  surface,
		activity: activity,
		timeouts: timeouts,
		decoder:  thumbnail.NewDecoder(thumbnail.DefaultSize),
		logger:   logger,
		reveal:   platform.OpenFileInManager,
	}
}

// Open fetches url without caching, decodes it at full size and opens a new
// preview surface. Failures are reported through the surface and the log.
func (l *Launcher) Open(ctx context.Context, url string) error {
	logger := l.logger.WithField("url", url)
	logger.Debug("opening preview")

	preview, err := l.load(ctx, url)
	if err != nil {
		logger.WithError(err).Warn("preview failed")
		l.surface.ShowError(ErrorTitle, fmt.Sprintf("Could not fetch full image:\n%v", err))
		l.activity.Appendf("Error opening full image: %v", err)
		return err
	}

	l.surface.ShowPreview(preview)
	l.activity.Appendf("Opened full image.")
	logger.WithFields(logrus.Fields{
		"width":  preview.Image.Bounds().Dx(),
		"height": preview.Image.Bounds().Dy(),
	}).Info("preview opened")
	return nil
}

// Save writes the preview's original bytes into dir and returns the file path
func (l *Launcher) Save(preview *model.Preview, dir string) (string, error) {
	path, err := platform.SaveImage(dir, preview.URL, preview.Data)
	if err != nil {
		l.logger.WithError(err).WithField("dir", dir).Warn("save failed")
		l.activity.Appendf("Error saving image: %v", err)
		return "", err
	}

	l.logger.WithField("path", path).Info("image saved")
	l.activity.Appendf("Saved image: %s", path)
	return path, nil
}

// Reveal shows a saved file in the system file manager
func (l *Launcher) Reveal(path string) error {
	if err := l.reveal(path); err != nil {
		l.logger.WithError(err).WithField("path", path).Warn("reveal failed")
		return err
	}
	return nil
}

func (l *Launcher) load(ctx context.Context, url string) (*model.Preview, error) {
	if l.timeouts != nil {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeouts.GetRequestTimeout())
		defer cancel()
	}

	data, err := l.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	img, err := l.decoder.Full(data)
	if err != nil {
		return nil, err
	}

	return &model.Preview{URL: url, Image: img, Data: data}, nil
}
