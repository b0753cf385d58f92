// Package settings persists runpad's host configuration and exposes live
// read accessors for the session to poll on each render.
package settings

import (
	"encoding/json"
	"os"
	"path/filepath"

	"runpad/internal/config"
)

// DefaultMaxOutputLines is the folded display line cap when unset.
const DefaultMaxOutputLines = 40

// Settings is the on-disk configuration shape.
type Settings struct {
	// MaxOutputLines caps the folded output view. Clamped to 1..10000.
	MaxOutputLines int `json:"max_output_lines" jsonschema:"minimum=1,maximum=10000,default=40"`
	// UsePty runs commands on a pseudo-terminal so tools emit color and
	// progress output.
	UsePty bool `json:"use_pty,omitempty"`
}

// Default returns the documented defaults.
func Default() Settings {
	return Settings{MaxOutputLines: DefaultMaxOutputLines}
}

func (s Settings) normalized() Settings {
	if s.MaxOutputLines < 1 {
		s.MaxOutputLines = DefaultMaxOutputLines
	}
	if s.MaxOutputLines > 10000 {
		s.MaxOutputLines = 10000
	}
	return s
}

// Path returns the settings file location under the user config dir.
func Path() (string, error) {
	dir, err := config.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "settings.json"), nil
}

// Load reads settings from disk. A missing file yields defaults, no error.
func Load() (Settings, error) {
	p, err := Path()
	if err != nil {
		return Default(), err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), err
	}
	s := Default()
	if err := json.Unmarshal(b, &s); err != nil {
		return Default(), err
	}
	return s.normalized(), nil
}

// Save writes settings to disk, creating parent directories.
func Save(s Settings) error {
	p, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(s.normalized(), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o644)
}
