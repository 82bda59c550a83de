package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ictam/agmsite/internal/adapters/driven/storage/memory"
	"github.com/ictam/agmsite/internal/core/domain"
)

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	assert.Equal(t, domain.DefaultSiteSettings(), service.Get())
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("site.title", "AGM 2026")
	_ = store.Set("site.base_url", "https://agm.ictam.org/")
	_ = store.Set("site.event_start", "2026-11-18T09:00:00Z")
	_ = store.Set("server.gzip", false)
	_ = store.Set("contact.rate", 1.5)
	_ = store.Set("contact.burst", int64(10))
	_ = store.Set("search.limit", int64(25))
	_ = store.Set("content.dir", "/srv/content")

	settings := NewSettingsService(store).Get()

	assert.Equal(t, "AGM 2026", settings.Site.Title)
	assert.Equal(t, "https://agm.ictam.org", settings.Site.BaseURL)
	assert.Equal(t, time.Date(2026, time.November, 18, 9, 0, 0, 0, time.UTC), settings.Site.EventStart)
	assert.False(t, settings.Server.Gzip)
	assert.Equal(t, ":8080", settings.Server.Addr)
	assert.InDelta(t, 1.5, settings.Contact.Rate, 1e-9)
	assert.Equal(t, 10, settings.Contact.Burst)
	assert.Equal(t, 25, settings.Search.Limit)
	assert.Equal(t, "/srv/content", settings.Content.Dir)
}

func TestSettingsService_Get_InvalidValuesReturnDefaults(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("site.event_start", "next tuesday")
	_ = store.Set("contact.rate", -1.0)
	_ = store.Set("contact.burst", "many")

	settings := NewSettingsService(store).Get()
	defaults := domain.DefaultSiteSettings()

	assert.Equal(t, defaults.Site.EventStart, settings.Site.EventStart)
	assert.InDelta(t, defaults.Contact.Rate, settings.Contact.Rate, 1e-9)
	assert.Equal(t, defaults.Contact.Burst, settings.Contact.Burst)
}

func TestSettingsService_Set(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NoError(t, service.Set("server.addr", ":9000"))
	require.NoError(t, service.Set("server.gzip", "false"))
	require.NoError(t, service.Set("contact.rate", "0.5"))
	require.NoError(t, service.Set("search.limit", "10"))
	require.NoError(t, service.Set("site.event_start", "2026-01-02T03:04:05Z"))

	settings := service.Get()
	assert.Equal(t, ":9000", settings.Server.Addr)
	assert.False(t, settings.Server.Gzip)
	assert.InDelta(t, 0.5, settings.Contact.Rate, 1e-9)
	assert.Equal(t, 10, settings.Search.Limit)
	assert.Equal(t, 2026, settings.Site.EventStart.Year())
}

func TestSettingsService_Set_Invalid(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	tests := []struct{ key, value string }{
		{"unknown.key", "x"},
		{"search.limit", "ten"},
		{"search.limit", "-1"},
		{"contact.rate", "0"},
		{"server.gzip", "maybe"},
		{"site.event_start", "2025-11-19"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			assert.ErrorIs(t, service.Set(tt.key, tt.value), domain.ErrInvalidInput)
		})
	}
}

func TestSettingsService_Value(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	for _, key := range service.Keys() {
		_, err := service.Value(key)
		assert.NoError(t, err, key)
	}

	v, err := service.Value("site.event_start")
	require.NoError(t, err)
	assert.Equal(t, "2025-11-19T08:00:00Z", v)

	v, err = service.Value("contact.rate")
	require.NoError(t, err)
	assert.Equal(t, "0.2", v)

	_, err = service.Value("nope")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsService_KeysSorted(t *testing.T) {
	keys := NewSettingsService(memory.NewConfigStore()).Keys()
	assert.IsIncreasing(t, keys)
	assert.Len(t, keys, len(settingKinds))
}
