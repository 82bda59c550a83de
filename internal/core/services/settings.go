package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ictam/agmsite/internal/core/domain"
	"github.com/ictam/agmsite/internal/core/ports/driven"
	"github.com/ictam/agmsite/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keySiteTitle       = "site.title"
	keySiteBaseURL     = "site.base_url"
	keySiteEventStart  = "site.event_start"
	keyServerAddr      = "server.addr"
	keyServerGzip      = "server.gzip"
	keyContentDir      = "content.dir"
	keyContentDatabase = "content.database"
	keyContactRate     = "contact.rate"
	keyContactBurst    = "contact.burst"
	keySearchLimit     = "search.limit"
)

type settingKind int

const (
	kindString settingKind = iota
	kindInt
	kindFloat
	kindBool
	kindTime
)

// settingKinds lists every supported key with its value type.
var settingKinds = map[string]settingKind{
	keySiteTitle:       kindString,
	keySiteBaseURL:     kindString,
	keySiteEventStart:  kindTime,
	keyServerAddr:      kindString,
	keyServerGzip:      kindBool,
	keyContentDir:      kindString,
	keyContentDatabase: kindString,
	keyContactRate:     kindFloat,
	keyContactBurst:    kindInt,
	keySearchLimit:     kindInt,
}

// SettingsService manages site settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get resolves current settings, falling back to defaults for missing or
// invalid values.
func (s *SettingsService) Get() domain.SiteSettings {
	defaults := domain.DefaultSiteSettings()

	return domain.SiteSettings{
		Site: domain.SiteInfo{
			Title:      s.getString(keySiteTitle, defaults.Site.Title),
			BaseURL:    strings.TrimSuffix(s.configStore.GetString(keySiteBaseURL), "/"),
			EventStart: s.getTime(keySiteEventStart, defaults.Site.EventStart),
		},
		Server: domain.ServerSettings{
			Addr: s.getString(keyServerAddr, defaults.Server.Addr),
			Gzip: s.getBool(keyServerGzip, defaults.Server.Gzip),
		},
		Content: domain.ContentSettings{
			Dir:      s.configStore.GetString(keyContentDir),
			Database: s.configStore.GetString(keyContentDatabase),
		},
		Contact: domain.ContactSettings{
			Rate:  s.getPositiveFloat(keyContactRate, defaults.Contact.Rate),
			Burst: s.getInt(keyContactBurst, defaults.Contact.Burst),
		},
		Search: domain.SearchSettings{
			Limit: s.getInt(keySearchLimit, defaults.Search.Limit),
		},
	}
}

// Set parses value according to the key's type, stores it and saves.
func (s *SettingsService) Set(key, value string) error {
	kind, ok := settingKinds[key]
	if !ok {
		return fmt.Errorf("unknown setting %q: %w", key, domain.ErrInvalidInput)
	}

	var parsed any
	switch kind {
	case kindString:
		parsed = value
	case kindInt:
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("%s must be a non-negative integer: %w", key, domain.ErrInvalidInput)
		}
		parsed = n
	case kindFloat:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f <= 0 {
			return fmt.Errorf("%s must be a positive number: %w", key, domain.ErrInvalidInput)
		}
		parsed = f
	case kindBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s must be true or false: %w", key, domain.ErrInvalidInput)
		}
		parsed = b
	case kindTime:
		if _, err := time.Parse(time.RFC3339, value); err != nil {
			return fmt.Errorf("%s must be an RFC 3339 timestamp: %w", key, domain.ErrInvalidInput)
		}
		parsed = value
	}

	if err := s.configStore.Set(key, parsed); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

// Keys lists every supported key in sorted order.
func (s *SettingsService) Keys() []string {
	return []string{
		keyContactBurst,
		keyContactRate,
		keyContentDatabase,
		keyContentDir,
		keySearchLimit,
		keyServerAddr,
		keyServerGzip,
		keySiteBaseURL,
		keySiteEventStart,
		keySiteTitle,
	}
}

// Value returns the effective value of key, defaults included.
func (s *SettingsService) Value(key string) (string, error) {
	settings := s.Get()
	switch key {
	case keySiteTitle:
		return settings.Site.Title, nil
	case keySiteBaseURL:
		return settings.Site.BaseURL, nil
	case keySiteEventStart:
		return settings.Site.EventStart.Format(time.RFC3339), nil
	case keyServerAddr:
		return settings.Server.Addr, nil
	case keyServerGzip:
		return strconv.FormatBool(settings.Server.Gzip), nil
	case keyContentDir:
		return settings.Content.Dir, nil
	case keyContentDatabase:
		return settings.Content.Database, nil
	case keyContactRate:
		return strconv.FormatFloat(settings.Contact.Rate, 'g', -1, 64), nil
	case keyContactBurst:
		return strconv.Itoa(settings.Contact.Burst), nil
	case keySearchLimit:
		return strconv.Itoa(settings.Search.Limit), nil
	default:
		return "", fmt.Errorf("unknown setting %q: %w", key, domain.ErrInvalidInput)
	}
}

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getPositiveFloat(key string, defaultVal float64) float64 {
	val := s.configStore.GetFloat(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getTime(key string, defaultVal time.Time) time.Time {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	t, err := time.Parse(time.RFC3339, val)
	if err != nil {
		return defaultVal
	}
	return t
}
