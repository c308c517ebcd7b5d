package config

import (
	"fmt"
	"strings"
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/image-searcher/internal/grid"
	"github.com/ytget/image-searcher/internal/model"
	"github.com/ytget/image-searcher/internal/platform"
	"github.com/ytget/image-searcher/internal/thumbnail"
)

// Settings keys for Fyne preferences
const (
	KeySearchEndpoint = "search_endpoint"
	KeyResultLimit    = "result_limit"
	KeyGridColumns    = "grid_columns"
	KeyThumbnailSize  = "thumbnail_size"
	KeyTimeoutSeconds = "request_timeout_seconds"
	KeyFetchRate      = "fetch_rate_per_second"
	KeySaveDirectory  = "save_directory"
	KeyLanguage       = "app_language"
)

// Default values
const (
	DefaultSearchEndpoint = platform.DefaultSearchEndpoint
	DefaultResultLimit    = model.DefaultResultLimit
	DefaultGridColumns    = grid.DefaultColumns
	DefaultThumbnailSize  = thumbnail.DefaultSize
	DefaultTimeoutSeconds = 15
	DefaultFetchRate      = 0.0
	DefaultLanguage       = "system"
)

// Bounds enforced by setters
const (
	MinResultLimit    = 1
	MaxResultLimit    = 100
	MinGridColumns    = 1
	MaxGridColumns    = 8
	MinThumbnailSize  = 32
	MaxThumbnailSize  = 1024
	MinTimeoutSeconds = 1
	MaxTimeoutSeconds = 120
	MaxFetchRate      = 50.0
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetSearchEndpoint returns the search API base URL
func (s *Settings) GetSearchEndpoint() string {
	endpoint := s.app.Preferences().String(KeySearchEndpoint)
	if endpoint == "" {
		s.SetSearchEndpoint(DefaultSearchEndpoint)
		return DefaultSearchEndpoint
	}
	return endpoint
}

// SetSearchEndpoint sets the search API base URL
func (s *Settings) SetSearchEndpoint(endpoint string) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		endpoint = DefaultSearchEndpoint
	}
	s.app.Preferences().SetString(KeySearchEndpoint, endpoint)
}

// GetResultLimit returns how many results a search renders at most
func (s *Settings) GetResultLimit() int {
	value := s.app.Preferences().Int(KeyResultLimit)
	if value <= 0 {
		s.SetResultLimit(DefaultResultLimit)
		return DefaultResultLimit
	}
	return value
}

// SetResultLimit sets the rendering limit
func (s *Settings) SetResultLimit(limit int) {
	s.app.Preferences().SetInt(KeyResultLimit, clamp(limit, MinResultLimit, MaxResultLimit))
}

// GetGridColumns returns the grid column count
func (s *Settings) GetGridColumns() int {
	value := s.app.Preferences().Int(KeyGridColumns)
	if value <= 0 {
		s.SetGridColumns(DefaultGridColumns)
		return DefaultGridColumns
	}
	return value
}

// SetGridColumns sets the grid column count
func (s *Settings) SetGridColumns(columns int) {
	s.app.Preferences().SetInt(KeyGridColumns, clamp(columns, MinGridColumns, MaxGridColumns))
}

// GetThumbnailSize returns the edge of the thumbnail box in pixels
func (s *Settings) GetThumbnailSize() int {
	value := s.app.Preferences().Int(KeyThumbnailSize)
	if value <= 0 {
		s.SetThumbnailSize(DefaultThumbnailSize)
		return DefaultThumbnailSize
	}
	return value
}

// SetThumbnailSize sets the thumbnail box edge
func (s *Settings) SetThumbnailSize(size int) {
	s.app.Preferences().SetInt(KeyThumbnailSize, clamp(size, MinThumbnailSize, MaxThumbnailSize))
}

// GetRequestTimeout returns the per-request network timeout
func (s *Settings) GetRequestTimeout() time.Duration {
	value := s.app.Preferences().Int(KeyTimeoutSeconds)
	if value <= 0 {
		s.SetRequestTimeoutSeconds(DefaultTimeoutSeconds)
		value = DefaultTimeoutSeconds
	}
	return time.Duration(value) * time.Second
}

// SetRequestTimeoutSeconds sets the per-request network timeout
func (s *Settings) SetRequestTimeoutSeconds(seconds int) {
	s.app.Preferences().SetInt(KeyTimeoutSeconds, clamp(seconds, MinTimeoutSeconds, MaxTimeoutSeconds))
}

// GetFetchRate returns the request rate limit, 0 meaning unlimited
func (s *Settings) GetFetchRate() float64 {
	return s.app.Preferences().FloatWithFallback(KeyFetchRate, DefaultFetchRate)
}

// SetFetchRate sets the request rate limit
func (s *Settings) SetFetchRate(perSecond float64) {
	if perSecond < 0 {
		perSecond = 0
	}
	if perSecond > MaxFetchRate {
		perSecond = MaxFetchRate
	}
	s.app.Preferences().SetFloat(KeyFetchRate, perSecond)
}

// GetSaveDirectory returns where previews are saved
func (s *Settings) GetSaveDirectory() string {
	dir := s.app.Preferences().String(KeySaveDirectory)
	if dir == "" {
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = "/tmp/downloads"
		}
		s.SetSaveDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetSaveDirectory sets where previews are saved
func (s *Settings) SetSaveDirectory(dir string) {
	s.app.Preferences().SetString(KeySaveDirectory, dir)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"pl":     "Polski",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// SearchConfig returns a validated snapshot of the search pipeline settings
func (s *Settings) SearchConfig() (SearchConfig, error) {
	cfg := SearchConfig{
		Endpoint:       s.GetSearchEndpoint(),
		ResultLimit:    s.GetResultLimit(),
		GridColumns:    s.GetGridColumns(),
		ThumbnailSize:  s.GetThumbnailSize(),
		RequestTimeout: s.GetRequestTimeout(),
		FetchRate:      s.GetFetchRate(),
	}
	if err := cfg.Validate(); err != nil {
		return DefaultSearchConfig(), fmt.Errorf("%w: %v", model.ErrInvalidConfig, err)
	}
	return cfg, nil
}

func clamp(value, lo, hi int) int {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
