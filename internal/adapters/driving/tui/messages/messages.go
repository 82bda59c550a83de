// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/ictam/agmsite/internal/core/domain"
)

// SearchCompleted carries search results back to the model. Query is the
// text the results were computed for, so stale results can be dropped.
type SearchCompleted struct {
	Query   string
	Results []domain.SearchableRecord
	Err     error
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewSearch is the live search view.
	ViewSearch
	// ViewSpeakers lists the speakers.
	ViewSpeakers
	// ViewSponsors lists the sponsors by tier.
	ViewSponsors
	// ViewProgramme shows the schedule one day at a time.
	ViewProgramme
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewSearch:
		return "search"
	case ViewSpeakers:
		return "speakers"
	case ViewSponsors:
		return "sponsors"
	case ViewProgramme:
		return "programme"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// OpenRequested asks the app to open a record target in the browser.
type OpenRequested struct {
	Target string
}

// Opened reports the outcome of an OpenRequested.
type Opened struct {
	Target string
	Err    error
}

// Entry is one line in a directory listing.
type Entry struct {
	Title  string
	Detail string
	Target string

	// Group is the sponsor tier heading the entry sits under; empty for speakers.
	Group string
}

// EntriesLoaded carries a directory listing for View.
type EntriesLoaded struct {
	View    ViewType
	Entries []Entry
	Err     error
}

// ProgrammeLoaded carries the schedule.
type ProgrammeLoaded struct {
	Programme *domain.Programme
	Err       error
}
