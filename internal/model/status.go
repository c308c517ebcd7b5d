package model

// SearchStatus represents the lifecycle state of a single search
type SearchStatus string

const (
	// SearchStatusSearching means the search request is in flight
	SearchStatusSearching SearchStatus = "Searching"

	// SearchStatusRendering means thumbnails are being fetched and rendered
	SearchStatusRendering SearchStatus = "Rendering"

	// SearchStatusCompleted means every record of the result set was processed
	SearchStatusCompleted SearchStatus = "Completed"

	// SearchStatusFailed means the search request itself failed
	SearchStatusFailed SearchStatus = "Failed"

	// SearchStatusSuperseded means a newer search replaced this one mid-flight
	SearchStatusSuperseded SearchStatus = "Superseded"
)

// String returns the string representation of SearchStatus
func (s SearchStatus) String() string {
	return string(s)
}
