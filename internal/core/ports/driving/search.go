package driving

import (
	"context"

	"github.com/ictam/agmsite/internal/core/domain"
)

// SearchService provides search capabilities to external actors.
type SearchService interface {
	// Search matches query against the site index. A blank query returns
	// no results.
	Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.SearchableRecord, error)

	// Index returns the full index in order.
	Index(ctx context.Context) ([]domain.SearchableRecord, error)

	// Reload re-reads the content source and rebuilds the index.
	Reload(ctx context.Context) error
}
