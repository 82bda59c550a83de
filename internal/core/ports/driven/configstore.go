package driven

// ConfigStore holds flat settings keyed by dot notation ("server.addr").
// Typed getters return the zero value for missing keys and type mismatches.
type ConfigStore interface {
	// Get returns the raw value and whether the key is set.
	Get(key string) (any, bool)

	GetString(key string) string
	GetInt(key string) int

	// GetFloat also accepts integer values.
	GetFloat(key string) float64

	GetBool(key string) bool

	// Keys lists stored keys in sorted order.
	Keys() []string

	// Set stores and persists one value.
	Set(key string, value any) error

	Save() error
	Load() error

	// Path locates the backing file, or ":memory:".
	Path() string
}
