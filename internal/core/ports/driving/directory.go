package driving

import (
	"context"

	"github.com/ictam/agmsite/internal/core/domain"
)

// DirectoryService exposes the speaker and sponsor directory.
type DirectoryService interface {
	// Speakers lists every speaker in source order.
	Speakers(ctx context.Context) ([]domain.Speaker, error)

	// SpeakerBySlug finds the speaker whose slugified name equals slug.
	// Returns domain.ErrNotFound when none matches.
	SpeakerBySlug(ctx context.Context, slug string) (*domain.Speaker, error)

	// Sponsors lists every sponsor in source order.
	Sponsors(ctx context.Context) ([]domain.Sponsor, error)

	// SponsorByID finds a sponsor by its id, falling back to its name slug.
	// Returns domain.ErrNotFound when none matches.
	SponsorByID(ctx context.Context, id string) (*domain.Sponsor, error)

	// SponsorBySlug finds the sponsor whose slugified name equals slug.
	SponsorBySlug(ctx context.Context, slug string) (*domain.Sponsor, error)

	// SponsorsByTier groups sponsors by tier. Unknown tiers are dropped.
	SponsorsByTier(ctx context.Context) (map[domain.SponsorTier][]domain.Sponsor, error)

	// Links lists the site's quick links in source order.
	Links(ctx context.Context) ([]domain.Link, error)
}
