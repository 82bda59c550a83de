// Package memory provides in-memory implementations of the driven ports.
// They back tests and the bundled-content mode, and hold the values behind
// the TOML config store.
package memory

import (
	"maps"
	"slices"
	"sync"

	"github.com/ictam/agmsite/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore keeps flat dot-notation settings in a map.
type ConfigStore struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewConfigStore creates an empty store.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{values: make(map[string]any)}
}

// Get returns the raw value for key.
func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.values[key]
	return val, ok
}

func (s *ConfigStore) GetString(key string) string {
	return as[string](s, key)
}

func (s *ConfigStore) GetBool(key string) bool {
	return as[bool](s, key)
}

// GetInt truncates float values; TOML decodes integers as int64.
func (s *ConfigStore) GetInt(key string) int {
	val, _ := s.Get(key)
	n, _ := number(val)
	return int(n)
}

// GetFloat accepts integers so "rate = 1" reads as 1.0.
func (s *ConfigStore) GetFloat(key string) float64 {
	val, _ := s.Get(key)
	n, _ := number(val)
	return n
}

// Keys returns every stored key in sorted order.
func (s *ConfigStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Sorted(maps.Keys(s.values))
}

func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// Snapshot returns a copy of every value.
func (s *ConfigStore) Snapshot() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.values)
}

// Replace swaps in values wholesale. A nil map empties the store.
func (s *ConfigStore) Replace(values map[string]any) {
	if values == nil {
		values = make(map[string]any)
	}
	s.mu.Lock()
	s.values = values
	s.mu.Unlock()
}

// Save is a no-op.
func (s *ConfigStore) Save() error { return nil }

// Load is a no-op.
func (s *ConfigStore) Load() error { return nil }

func (s *ConfigStore) Path() string { return ":memory:" }

// as returns the value for key when it has type T, else T's zero value.
func as[T any](s *ConfigStore, key string) T {
	val, _ := s.Get(key)
	t, _ := val.(T)
	return t
}

func number(val any) (float64, bool) {
	switch v := val.(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}
