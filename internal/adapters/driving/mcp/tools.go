package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ictam/agmsite/internal/core/domain"
)

// defaultLimit caps search results when the caller does not.
const defaultLimit = 10

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query  string   `json:"query" jsonschema:"words to find; every word must appear"`
	Kinds  []string `json:"kinds,omitempty" jsonschema:"restrict to speaker, sponsor, session, link or day"`
	Limit  int      `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 10)"`
	Offset int      `json:"offset,omitempty" jsonschema:"number of results to skip"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	Results []RecordOutput `json:"results"`
	Count   int            `json:"count"`
}

// RecordOutput is one search result.
type RecordOutput struct {
	Kind        string `json:"kind"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Target      string `json:"target"`
	Category    string `json:"category,omitempty"`
	External    bool   `json:"external"`
}

// ProgrammeInput is the input schema for the programme tool.
type ProgrammeInput struct {
	Day   *int     `json:"day,omitempty" jsonschema:"zero-based day index; omit for every day"`
	Types []string `json:"types,omitempty" jsonschema:"session types to keep, e.g. Keynote or Panel"`
	Query string   `json:"query,omitempty" jsonschema:"text matched against title, speaker, type and venue"`
}

// ProgrammeOutput is the output schema for the programme tool.
type ProgrammeOutput struct {
	Event string                `json:"event"`
	Venue string                `json:"venue,omitempty"`
	Days  []domain.ProgrammeDay `json:"days"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Search the conference speakers, sponsors, sessions, links and programme days",
	}, s.handleSearch)

	if s.ports.Programme != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "programme",
			Description: "List programme sessions, optionally filtered by day, session type or text",
		}, s.handleProgramme)
	}
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	opts := domain.SearchOptions{Limit: input.Limit, Offset: input.Offset}
	if opts.Limit <= 0 {
		opts.Limit = defaultLimit
	}
	for _, name := range input.Kinds {
		kind, err := domain.ParseRecordKind(name)
		if err != nil {
			return nil, SearchOutput{}, err
		}
		opts.Kinds = append(opts.Kinds, kind)
	}

	results, err := s.ports.Search.Search(ctx, input.Query, opts)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Results: make([]RecordOutput, len(results)),
		Count:   len(results),
	}
	for i, r := range results {
		output.Results[i] = RecordOutput{
			Kind:        r.Kind.String(),
			Title:       r.Title,
			Description: r.Description,
			Target:      r.Target,
			Category:    r.Category,
			External:    r.IsExternal(),
		}
	}

	return nil, output, nil
}

// handleProgramme handles the programme tool invocation.
func (s *Server) handleProgramme(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ProgrammeInput,
) (*mcp.CallToolResult, ProgrammeOutput, error) {
	filter := domain.ProgrammeFilter{Day: domain.AllDays, Types: input.Types, Query: input.Query}
	if input.Day != nil {
		filter.Day = *input.Day
	}

	prog, err := s.ports.Programme.Programme(ctx)
	if err != nil {
		return nil, ProgrammeOutput{}, fmt.Errorf("loading programme: %w", err)
	}
	days, err := s.ports.Programme.Filter(ctx, filter)
	if err != nil {
		return nil, ProgrammeOutput{}, err
	}

	return nil, ProgrammeOutput{Event: prog.Event, Venue: prog.Venue, Days: days}, nil
}
