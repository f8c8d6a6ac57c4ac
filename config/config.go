// Package config loads the analyzer's YAML configuration.
//
// Config is stored at $XDG_CONFIG_HOME/judgment-analyzer/config.yaml
// (defaults to ~/.config/judgment-analyzer/config.yaml). Every field is
// optional; command-line flags override what the file sets.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"judgment-analyzer/models"
	"judgment-analyzer/utils"

	"gopkg.in/yaml.v3"
)

// Path returns the config file location. It respects XDG_CONFIG_HOME,
// falling back to ~/.config/judgment-analyzer/config.yaml.
func Path() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(".config", "judgment-analyzer", "config.yaml")
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "judgment-analyzer", "config.yaml")
}

// Load reads the config file at path, or at Path() when path is empty. A
// missing file yields an empty Config, not an error.
func Load(path string) (*models.Config, error) {
	if path == "" {
		path = Path()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &models.Config{}, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg models.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// Save writes cfg to path, creating directories as needed.
func Save(path string, cfg *models.Config) error {
	if path == "" {
		path = Path()
	}
	if err := utils.EnsureDirectory(filepath.Dir(path)); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
