package mcp

import (
	"context"

	"github.com/ictam/agmsite/internal/core/domain"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	results  []domain.SearchableRecord
	err      error
	lastOpts domain.SearchOptions
}

func (m *mockSearchService) Search(
	_ context.Context,
	_ string,
	opts domain.SearchOptions,
) ([]domain.SearchableRecord, error) {
	m.lastOpts = opts
	return m.results, m.err
}

func (m *mockSearchService) Index(_ context.Context) ([]domain.SearchableRecord, error) {
	return m.results, m.err
}

func (m *mockSearchService) Reload(_ context.Context) error {
	return m.err
}

// mockDirectoryService is a mock implementation of driving.DirectoryService.
type mockDirectoryService struct {
	speakers []domain.Speaker
	sponsors []domain.Sponsor
	err      error
}

func (m *mockDirectoryService) Speakers(_ context.Context) ([]domain.Speaker, error) {
	return m.speakers, m.err
}

func (m *mockDirectoryService) SpeakerBySlug(_ context.Context, slug string) (*domain.Speaker, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.speakers {
		if domain.Slugify(m.speakers[i].Name) == slug {
			return &m.speakers[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockDirectoryService) Sponsors(_ context.Context) ([]domain.Sponsor, error) {
	return m.sponsors, m.err
}

func (m *mockDirectoryService) SponsorByID(_ context.Context, id string) (*domain.Sponsor, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.sponsors {
		if m.sponsors[i].ID == id {
			return &m.sponsors[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockDirectoryService) SponsorBySlug(ctx context.Context, slug string) (*domain.Sponsor, error) {
	return m.SponsorByID(ctx, slug)
}

func (m *mockDirectoryService) SponsorsByTier(_ context.Context) (map[domain.SponsorTier][]domain.Sponsor, error) {
	return nil, m.err
}

func (m *mockDirectoryService) Links(_ context.Context) ([]domain.Link, error) {
	return nil, m.err
}

// mockProgrammeService is a mock implementation of driving.ProgrammeService.
type mockProgrammeService struct {
	programme  domain.Programme
	err        error
	lastFilter domain.ProgrammeFilter
}

func (m *mockProgrammeService) Programme(_ context.Context) (*domain.Programme, error) {
	return &m.programme, m.err
}

func (m *mockProgrammeService) Filter(_ context.Context, filter domain.ProgrammeFilter) ([]domain.ProgrammeDay, error) {
	m.lastFilter = filter
	return m.programme.Schedule, m.err
}

func (m *mockProgrammeService) SessionTypes(_ context.Context) ([]string, error) {
	return nil, m.err
}
