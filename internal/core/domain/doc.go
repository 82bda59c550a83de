// Package domain defines the core business entities for the conference site.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Content: The static speaker, sponsor, programme and link collections
//   - SearchableRecord: One normalised, searchable unit derived from Content
//   - ContactSubmission / Registration: Form payloads and their validation
//   - SiteSettings: Resolved site configuration
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
