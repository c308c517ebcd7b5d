// Package search orchestrates one image search end to end: query validation,
// the search request, result normalization and the sequential thumbnail
// pipeline that fills the result grid.
//
// A newer submission cancels the one in flight. The cancelled search never
// reaches the presenter again, so stale tiles cannot land in a fresh grid.
package search
