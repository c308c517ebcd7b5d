package model

// Package model defines domain data structures used across the app: search
// queries, raw API items and their normalized records, grid tiles, activity
// log entries, search statuses and the error taxonomy shared by the pipeline.
