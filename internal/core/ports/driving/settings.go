package driving

import "github.com/ictam/agmsite/internal/core/domain"

// SettingsService manages site settings.
type SettingsService interface {
	// Get resolves current settings, applying defaults for missing keys.
	Get() domain.SiteSettings

	// Set validates and stores a single key.
	Set(key, value string) error

	// Keys lists every supported key.
	Keys() []string

	// Value returns the effective value of key as a string.
	Value(key string) (string, error)
}
