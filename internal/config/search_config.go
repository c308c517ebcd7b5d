package config

import (
	"errors"
	"net/url"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// SearchConfig is an immutable snapshot of the settings a search runs with.
type SearchConfig struct {
	Endpoint       string
	ResultLimit    int
	GridColumns    int
	ThumbnailSize  int
	RequestTimeout time.Duration
	FetchRate      float64
}

// DefaultSearchConfig returns the built-in configuration
func DefaultSearchConfig() SearchConfig {
	return SearchConfig{
		Endpoint:       DefaultSearchEndpoint,
		ResultLimit:    DefaultResultLimit,
		GridColumns:    DefaultGridColumns,
		ThumbnailSize:  DefaultThumbnailSize,
		RequestTimeout: DefaultTimeoutSeconds * time.Second,
		FetchRate:      DefaultFetchRate,
	}
}

// Validate checks that the configuration is usable.
func (c SearchConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Endpoint, validation.Required, validation.By(httpURL)),
		validation.Field(&c.ResultLimit, validation.Required, validation.Min(MinResultLimit), validation.Max(MaxResultLimit)),
		validation.Field(&c.GridColumns, validation.Required, validation.Min(MinGridColumns), validation.Max(MaxGridColumns)),
		validation.Field(&c.ThumbnailSize, validation.Required, validation.Min(MinThumbnailSize), validation.Max(MaxThumbnailSize)),
		validation.Field(&c.RequestTimeout, validation.Required,
			validation.Min(MinTimeoutSeconds*time.Second), validation.Max(MaxTimeoutSeconds*time.Second)),
		validation.Field(&c.FetchRate, validation.Min(0.0), validation.Max(MaxFetchRate)),
	)
}

// ValidateEndpoint checks a search endpoint with the same rule Validate uses
func ValidateEndpoint(endpoint string) error {
	return validation.Validate(endpoint, validation.Required, validation.By(httpURL))
}

func httpURL(value interface{}) error {
	raw, _ := value.(string)
	parsed, err := url.Parse(raw)
	if err != nil {
		return errors.New("must be a valid URL")
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return errors.New("must be an http or https URL")
	}
	return nil
}
