package download

// Package download implements the image fetch client used by the search
// pipeline and the preview window: one HTTP GET per call, status validation,
// bounded bodies, an optional request rate limit and typed failures
// (model.NetworkError, model.HTTPStatusError). It never retries or caches.
