package driven

import (
	"context"

	"github.com/ictam/agmsite/internal/core/domain"
)

// ContentSource loads the static conference collections.
// Implementations must treat missing or malformed collections as empty
// rather than failing the whole load.
type ContentSource interface {
	// Load reads every collection. It returns an error only when the
	// source itself cannot be reached (missing directory, closed database).
	Load(ctx context.Context) (*domain.Content, error)

	// Describe returns a short human-readable location, e.g. "bundled" or a path.
	Describe() string
}
