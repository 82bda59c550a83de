package tui

import "errors"

var (
	// ErrMissingSearchService is returned when the search service is not provided.
	ErrMissingSearchService = errors.New("tui: search service is required")

	// ErrNoOpener is reported when a record is opened without an opener.
	ErrNoOpener = errors.New("tui: opening records is not available")
)
