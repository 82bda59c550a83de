package mcp

import (
	"github.com/ictam/agmsite/internal/core/ports/driving"
)

// Ports aggregates the driving ports the MCP server uses.
type Ports struct {
	// Search provides site search.
	Search driving.SearchService

	// Directory serves speakers and sponsors. Optional.
	Directory driving.DirectoryService

	// Programme serves the schedule. Optional.
	Programme driving.ProgrammeService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	return nil
}
