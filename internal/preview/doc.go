// Package preview opens full-resolution images in their own surfaces and
// saves them to disk on request.
package preview
