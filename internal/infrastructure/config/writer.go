package config

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
)

// WriteTOML writes the effective settings, defaults and environment
// overrides included, as indented TOML.
func (m *Manager) WriteTOML(w io.Writer) error {
	m.mu.RLock()
	settings := m.viper.AllSettings()
	m.mu.RUnlock()

	if db, ok := settings["database"].(map[string]any); ok {
		if path, _ := db["path"].(string); path == "" {
			db["path"] = m.Get().Database.Path
		}
	}

	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	if err := enc.Encode(settings); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}
