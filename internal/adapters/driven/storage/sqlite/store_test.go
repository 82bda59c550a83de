package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ictam/agmsite/internal/core/domain"
)

// setupTestStore creates a catalogue in a temporary directory.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(filepath.Join(t.TempDir(), "catalogue", DefaultFileName))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})
	return store
}

func sampleContent() *domain.Content {
	return &domain.Content{
		Speakers: []domain.Speaker{
			{
				Name:        "Kwame Boateng",
				Title:       "CTO, Hubtel",
				Topic:       "AI in Public Services",
				Biography:   "Builds payment platforms.",
				SocialMedia: domain.SocialMedia{Twitter: "kboateng"},
			},
			{Name: "Abena Darko", Title: "MD"},
		},
		Sponsors: []domain.Sponsor{
			{
				ID:       "acme",
				Name:     "Acme Corp",
				Tier:     domain.TierGold,
				Website:  "https://acme.test",
				Services: []string{"Widgets", "Gadgets"},
			},
		},
		Programme: domain.Programme{
			Event: "ICTAM AGM 2025",
			Dates: "19 - 21 November 2025",
			Venue: "Accra",
			Schedule: []domain.ProgrammeDay{
				{
					Day:       "Wednesday, 19 November 2025",
					DayNumber: 1,
					Sessions: []domain.Session{
						{Title: "Opening Ceremony", Time: "10:00", Type: "Ceremony", Agenda: []string{"Anthem", "Welcome"}},
						{Title: "Networking Lunch", Time: "13:00"},
					},
				},
				{
					Day:      "Thursday, 20 November 2025",
					Sessions: []domain.Session{},
				},
			},
		},
		Links: []domain.Link{
			{Title: "ICTAM", Description: "Home", URL: "https://ictam.org", Category: "Association"},
		},
	}
}

func TestNewStore_AppliesMigrations(t *testing.T) {
	store := setupTestStore(t)

	version, err := store.SchemaVersion(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, version)
	assert.Equal(t, "sqlite:"+store.Path(), store.Describe())
}

func TestNewStore_ReopenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)

	first, err := NewStore(path)
	require.NoError(t, err)
	require.NoError(t, first.Import(context.Background(), sampleContent(), "test"))
	require.NoError(t, first.Close())

	second, err := NewStore(path)
	require.NoError(t, err)
	defer second.Close()

	content, err := second.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, content.Speakers, 2)
}

func TestStore_ImportLoadRoundTrip(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	want := sampleContent()

	require.NoError(t, store.Import(ctx, want, "bundled content"))
	got, err := store.Load(ctx)

	require.NoError(t, err)
	assert.Equal(t, want.Speakers, got.Speakers)
	assert.Equal(t, want.Sponsors, got.Sponsors)
	assert.Equal(t, want.Programme, got.Programme)
	assert.Equal(t, want.Links, got.Links)
}

func TestStore_ImportReplaces(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Import(ctx, sampleContent(), "first"))
	require.NoError(t, store.Import(ctx, &domain.Content{
		Links: []domain.Link{{Title: "Only", URL: "/only"}},
	}, "second"))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got.Speakers)
	assert.Empty(t, got.Sponsors)
	assert.Empty(t, got.Programme.Schedule)
	require.Len(t, got.Links, 1)
	assert.Equal(t, "Only", got.Links[0].Title)

	info, err := store.LastImport(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", info.Source)
	assert.Equal(t, 1, info.Links)
	assert.False(t, info.ImportedAt.IsZero())
}

func TestStore_LastImport_Empty(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.LastImport(context.Background())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_LoadEmpty(t *testing.T) {
	store := setupTestStore(t)

	got, err := store.Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, got.Speakers)
	assert.Equal(t, "", got.Programme.Event)
}

func TestStore_ImportNil(t *testing.T) {
	store := setupTestStore(t)
	assert.NoError(t, store.Import(context.Background(), nil, "nil"))
}
