package model

import (
	"errors"
	"fmt"
)

// Sentinel errors for search pipeline operations
var (
	// ErrEmptyQuery indicates the user submitted an empty or whitespace-only query
	ErrEmptyQuery = errors.New("search query is empty")

	// ErrMissingHref indicates a raw result item carries no usable image link
	ErrMissingHref = errors.New("result item has no image link")

	// ErrMalformedItem indicates a raw result item does not have the expected shape
	ErrMalformedItem = errors.New("malformed result item")

	// ErrInvalidResponse indicates the search API answered with an unparsable body
	ErrInvalidResponse = errors.New("invalid search response")

	// ErrInvalidConfig indicates the search settings failed validation
	ErrInvalidConfig = errors.New("invalid search configuration")
)

// NetworkError reports a transport-level failure: connection errors,
// timeouts and truncated or oversized bodies.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error for %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// HTTPStatusError reports a response with a non-2xx status code.
type HTTPStatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *HTTPStatusError) Error() string {
	status := e.Status
	if status == "" {
		status = fmt.Sprintf("%d", e.StatusCode)
	}
	return fmt.Sprintf("unexpected HTTP status %s for %s", status, e.URL)
}

// DecodeError reports image bytes that could not be decoded.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode image: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsRequestError reports whether err is a network or HTTP status failure
func IsRequestError(err error) bool {
	var netErr *NetworkError
	var statusErr *HTTPStatusError
	return errors.As(err, &netErr) || errors.As(err, &statusErr)
}
