package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"camera-settings/internal/settings"
)

// FileName is the config file looked up in the working directory.
const FileName = "camera-settings.toml"

// Config is the tool configuration. Unset optional fields fall back to the
// defaults applied by the getter methods.
type Config struct {
	SettingsPath string `koanf:"settings_path"` // settings file to validate (default: settings.json)
	Strict       bool   `koanf:"strict"`        // exit with status 2 on error diagnostics
	Suggestions  *bool  `koanf:"suggestions"`   // attach "did you mean" hints (default: true)
	Color        *bool  `koanf:"color"`         // styled terminal output (default: true)
}

// Load reads the tool configuration. Files are applied in order of priority
// (last wins); missing files are skipped. A non-empty explicit path is loaded
// last and must exist.
func Load(explicit string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load config %s: %w", path, err)
			}
		}
	}

	if explicit != "" {
		path := expandPath(explicit)
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}
	}

	cfg := &Config{
		SettingsPath: settings.DefaultFileName,
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if cfg.SettingsPath == "" {
		cfg.SettingsPath = settings.DefaultFileName
	}

	cfg.SettingsPath = expandPath(cfg.SettingsPath)

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/camera-settings/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "camera-settings", "config.toml"))
	}

	// 2. ./camera-settings.toml (pwd, highest priority)
	paths = append(paths, FileName)

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}

	return path
}

// SuggestionsEnabled reports whether hints should be shown. Unset means yes.
func (c *Config) SuggestionsEnabled() bool {
	return c.Suggestions == nil || *c.Suggestions
}

// ColorEnabled reports whether output should be styled. Unset means yes.
func (c *Config) ColorEnabled() bool {
	return c.Color == nil || *c.Color
}
