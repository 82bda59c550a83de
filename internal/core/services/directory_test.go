package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ictam/agmsite/internal/core/domain"
)

func TestDirectoryService_SpeakerBySlug(t *testing.T) {
	cache, _ := newTestCache()
	svc := NewDirectoryService(cache)
	ctx := context.Background()

	speaker, err := svc.SpeakerBySlug(ctx, "dr-jane-ansah-sc")
	require.NoError(t, err)
	assert.Equal(t, "Dr. Jane Ansah SC.", speaker.Name)

	speaker, err = svc.SpeakerBySlug(ctx, "kwame-boateng")
	require.NoError(t, err)
	assert.Equal(t, "Kwame Boateng", speaker.Name)

	_, err = svc.SpeakerBySlug(ctx, "nobody")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.SpeakerBySlug(ctx, "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDirectoryService_NonCanonicalSlugsDoNotResolve(t *testing.T) {
	cache, _ := newTestCache()
	svc := NewDirectoryService(cache)
	ctx := context.Background()

	for _, slug := range []string{"Kwame-Boateng", "Dr.-Jane-Ansah-SC.", "dr jane ansah sc", "-dr-jane-ansah-sc-"} {
		_, err := svc.SpeakerBySlug(ctx, slug)
		assert.ErrorIs(t, err, domain.ErrNotFound, slug)
	}

	_, err := svc.SponsorBySlug(ctx, "MTN-Ghana")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = svc.SponsorByID(ctx, "Acme-Corp")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDirectoryService_SpeakerTargetsResolve(t *testing.T) {
	cache, _ := newTestCache()
	svc := NewDirectoryService(cache)

	for _, r := range BuildIndex(testContent()) {
		if r.Kind != domain.KindSpeaker {
			continue
		}
		slug := r.Target[len(domain.SpeakerRoutePrefix):]
		speaker, err := svc.SpeakerBySlug(context.Background(), slug)
		require.NoError(t, err, r.Target)
		assert.Equal(t, r.Title, speaker.Name)
	}
}

func TestDirectoryService_SponsorByID(t *testing.T) {
	cache, _ := newTestCache()
	svc := NewDirectoryService(cache)
	ctx := context.Background()

	sponsor, err := svc.SponsorByID(ctx, "acme")
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", sponsor.Name)

	sponsor, err = svc.SponsorByID(ctx, "acme-corp")
	require.NoError(t, err)
	assert.Equal(t, "acme", sponsor.ID)

	_, err = svc.SponsorByID(ctx, "globex")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDirectoryService_SponsorBySlug(t *testing.T) {
	cache, _ := newTestCache()
	svc := NewDirectoryService(cache)

	sponsor, err := svc.SponsorBySlug(context.Background(), "mtn-ghana")
	require.NoError(t, err)
	assert.Equal(t, "mtn", sponsor.ID)
}

func TestDirectoryService_SponsorsByTier(t *testing.T) {
	content := testContent()
	content.Sponsors = append(content.Sponsors,
		domain.Sponsor{ID: "x", Name: "Odd Tier", Tier: "bronze"},
		domain.Sponsor{ID: "y", Name: "Globex", Tier: domain.TierGold},
	)
	cache, src := newTestCache()
	src.Replace(content)
	svc := NewDirectoryService(cache)

	grouped, err := svc.SponsorsByTier(context.Background())

	require.NoError(t, err)
	assert.Len(t, grouped[domain.TierPlatinum], 1)
	require.Len(t, grouped[domain.TierGold], 2)
	assert.Equal(t, "Acme Corp", grouped[domain.TierGold][0].Name)
	assert.Equal(t, "Globex", grouped[domain.TierGold][1].Name)
	assert.Empty(t, grouped[domain.TierSilver])
	assert.NotContains(t, grouped, domain.SponsorTier("bronze"))
}

func TestDirectoryService_Lists(t *testing.T) {
	cache, _ := newTestCache()
	svc := NewDirectoryService(cache)

	speakers, err := svc.Speakers(context.Background())
	require.NoError(t, err)
	assert.Len(t, speakers, 2)

	sponsors, err := svc.Sponsors(context.Background())
	require.NoError(t, err)
	assert.Len(t, sponsors, 2)

	links, err := svc.Links(context.Background())
	require.NoError(t, err)
	assert.Len(t, links, 2)
}
