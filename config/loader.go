package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Loader reads and writes one settings file.
type Loader struct {
	path string
}

// NewLoader points at the default settings file in the user's home
// directory.
func NewLoader() (*Loader, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home dir: %w", err)
	}
	return &Loader{path: filepath.Join(home, ".crosspoint", "config.yaml")}, nil
}

// NewLoaderWithPath points at an explicit settings file.
func NewLoaderWithPath(path string) *Loader {
	return &Loader{path: path}
}

// Path reports the settings file location.
func (l *Loader) Path() string { return l.path }

// Load reads the settings file, filling unset fields with defaults.
// A missing file is not an error; it yields the defaults.
func (l *Loader) Load() (Settings, error) {
	settings := Default()
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", l.path, err)
	}
	if err := settings.Validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", l.path, err)
	}
	return settings, nil
}

// Save writes the settings file, creating its directory if needed.
func (l *Loader) Save(settings Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(l.path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
