// Package mcp provides an MCP (Model Context Protocol) server adapter so
// AI assistants can search the conference content and read the speaker and
// sponsor directory.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")
