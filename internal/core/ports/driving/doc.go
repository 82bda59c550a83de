// Package driving declares what the web site, CLI, TUI and MCP server may
// ask of the core: search, speaker and sponsor lookups, the programme,
// form submission and settings.
//
// internal/core/services implements every interface here.
package driving
