// Package tui provides an interactive terminal user interface for the
// conference site. It implements a driving adapter following hexagonal
// architecture principles.
package tui

import (
	"github.com/ictam/agmsite/internal/core/ports/driving"
)

// Opener opens a record target, usually in a web browser.
type Opener interface {
	Open(target string) error
}

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search provides live search.
	Search driving.SearchService

	// Directory lists speakers and sponsors. Optional.
	Directory driving.DirectoryService

	// Programme serves the schedule. Optional.
	Programme driving.ProgrammeService

	// Opener opens selected records. Optional.
	Opener Opener

	// Title is shown in headers.
	Title string

	// Tagline is shown under the menu title, e.g. dates and a countdown.
	Tagline string
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	search driving.SearchService,
	directory driving.DirectoryService,
	programme driving.ProgrammeService,
	opener Opener,
) *Ports {
	return &Ports{
		Search:    search,
		Directory: directory,
		Programme: programme,
		Opener:    opener,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	return nil
}
