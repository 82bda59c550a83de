package services

import (
	"context"

	"github.com/ictam/agmsite/internal/core/domain"
	"github.com/ictam/agmsite/internal/core/ports/driving"
)

// Ensure DirectoryService implements the interface.
var _ driving.DirectoryService = (*DirectoryService)(nil)

// DirectoryService looks up speakers and sponsors.
type DirectoryService struct {
	content *ContentCache
}

// NewDirectoryService creates a new directory service.
func NewDirectoryService(content *ContentCache) *DirectoryService {
	return &DirectoryService{content: content}
}

// Speakers lists every speaker in source order.
func (s *DirectoryService) Speakers(ctx context.Context) ([]domain.Speaker, error) {
	content, _, err := s.content.Get(ctx)
	if err != nil {
		return nil, err
	}
	return content.Speakers, nil
}

// SpeakerBySlug finds the speaker whose slugified name equals slug. The
// slug must be in canonical form; "Kwame-Boateng" does not match.
func (s *DirectoryService) SpeakerBySlug(ctx context.Context, slug string) (*domain.Speaker, error) {
	speakers, err := s.Speakers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range speakers {
		if slug != "" && domain.Slugify(speakers[i].Name) == slug {
			speaker := speakers[i]
			return &speaker, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Sponsors lists every sponsor in source order.
func (s *DirectoryService) Sponsors(ctx context.Context) ([]domain.Sponsor, error) {
	content, _, err := s.content.Get(ctx)
	if err != nil {
		return nil, err
	}
	return content.Sponsors, nil
}

// SponsorByID finds a sponsor by its id, falling back to the slug of its
// name so search targets resolve.
func (s *DirectoryService) SponsorByID(ctx context.Context, id string) (*domain.Sponsor, error) {
	sponsors, err := s.Sponsors(ctx)
	if err != nil {
		return nil, err
	}
	for i := range sponsors {
		if id != "" && sponsors[i].ID == id {
			sponsor := sponsors[i]
			return &sponsor, nil
		}
	}
	return s.SponsorBySlug(ctx, id)
}

// SponsorBySlug finds the sponsor whose slugified name equals slug.
func (s *DirectoryService) SponsorBySlug(ctx context.Context, slug string) (*domain.Sponsor, error) {
	sponsors, err := s.Sponsors(ctx)
	if err != nil {
		return nil, err
	}
	for i := range sponsors {
		if slug != "" && domain.Slugify(sponsors[i].Name) == slug {
			sponsor := sponsors[i]
			return &sponsor, nil
		}
	}
	return nil, domain.ErrNotFound
}

// SponsorsByTier groups sponsors by tier, keeping source order within each
// tier. Iterate domain.SponsorTiers for display order.
func (s *DirectoryService) SponsorsByTier(ctx context.Context) (map[domain.SponsorTier][]domain.Sponsor, error) {
	sponsors, err := s.Sponsors(ctx)
	if err != nil {
		return nil, err
	}
	grouped := make(map[domain.SponsorTier][]domain.Sponsor, len(domain.SponsorTiers))
	for _, sp := range sponsors {
		if sp.Tier.IsValid() {
			grouped[sp.Tier] = append(grouped[sp.Tier], sp)
		}
	}
	return grouped, nil
}

// Links lists the quick links in source order.
func (s *DirectoryService) Links(ctx context.Context) ([]domain.Link, error) {
	content, _, err := s.content.Get(ctx)
	if err != nil {
		return nil, err
	}
	return content.Links, nil
}
