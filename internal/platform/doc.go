package platform

// Package platform contains OS and external-service glue: the image search
// API client, filesystem helpers for saving previews, and OS reveal-in-folder.
