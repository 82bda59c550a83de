package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/ictam/agmsite/internal/adapters/driven/storage/memory"
	"github.com/ictam/agmsite/internal/core/ports/driven"
)

// DefaultDirName is the directory under the user's home holding config.toml.
const DefaultDirName = ".agmsite"

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore persists settings as TOML tables in config.toml. Reads are
// served from the embedded in-memory store; every Set rewrites the file.
type ConfigStore struct {
	*memory.ConfigStore

	writeMu  sync.Mutex
	filePath string
}

// NewConfigStore opens config.toml in configDir, creating the directory.
// If configDir is empty, defaults to ~/.agmsite.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		configDir = filepath.Join(home, DefaultDirName)
	}
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, fmt.Errorf("create config directory: %w", err)
	}

	s := &ConfigStore{
		ConfigStore: memory.NewConfigStore(),
		filePath:    filepath.Join(configDir, "config.toml"),
	}
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Set writes the file with key updated. The in-memory value only changes
// once the write succeeds.
func (s *ConfigStore) Set(key string, value any) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	next := s.Snapshot()
	next[key] = value
	if err := s.write(next); err != nil {
		return err
	}
	return s.ConfigStore.Set(key, value)
}

// Save rewrites the file from the current values.
func (s *ConfigStore) Save() error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.write(s.Snapshot())
}

func (s *ConfigStore) write(values map[string]any) error {
	data, err := toml.Marshal(nestMap(values))
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(s.filePath, data, 0600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load replaces the values with the file's contents. A missing file is an
// empty configuration.
func (s *ConfigStore) Load() error {
	data, err := os.ReadFile(s.filePath)
	if errors.Is(err, os.ErrNotExist) {
		s.Replace(nil)
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var loaded map[string]any
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("parse %s: %w", s.filePath, err)
	}
	s.Replace(flattenMap(loaded, ""))
	return nil
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}

// flattenMap converts nested maps to dot-notation keys.
// E.g., {"server": {"addr": ":80"}} becomes {"server.addr": ":80"}.
func flattenMap(m map[string]any, prefix string) map[string]any {
	result := make(map[string]any)

	for key, value := range m {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		if nested, ok := value.(map[string]any); ok {
			for k, v := range flattenMap(nested, fullKey) {
				result[k] = v
			}
		} else {
			result[fullKey] = value
		}
	}

	return result
}

// nestMap is the inverse of flattenMap. A key that collides with a table
// of the same name keeps the table.
func nestMap(flat map[string]any) map[string]any {
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	// Longer keys first so tables are created before scalar collisions.
	sort.Slice(keys, func(i, j int) bool {
		return strings.Count(keys[i], ".") > strings.Count(keys[j], ".")
	})

	root := make(map[string]any)
	for _, key := range keys {
		parts := strings.Split(key, ".")
		node := root
		ok := true
		for _, part := range parts[:len(parts)-1] {
			child, exists := node[part]
			if !exists {
				m := make(map[string]any)
				node[part] = m
				node = m
				continue
			}
			m, isMap := child.(map[string]any)
			if !isMap {
				ok = false
				break
			}
			node = m
		}
		leaf := parts[len(parts)-1]
		if !ok {
			continue
		}
		if _, isMap := node[leaf].(map[string]any); isMap {
			continue
		}
		node[leaf] = flat[key]
	}
	return root
}
