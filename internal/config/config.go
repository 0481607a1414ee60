// Package config handles shelltools configuration: the optional TOML config
// file and the process environment snapshot both tools resolve once at startup.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	// DefaultListLimit is the number of records `list` shows when no limit is given.
	DefaultListLimit = 10

	// DefaultManifestName is the task-runner manifest filename written by --just.
	DefaultManifestName = "justfile"
)

// Config represents the global shelltools configuration.
type Config struct {
	// History configures atuin-mv.
	History HistoryConfig `toml:"history"`

	// Index configures tools-index.
	Index IndexConfig `toml:"index"`

	// UI configures terminal output for both tools.
	UI UIConfig `toml:"ui"`
}

// UIConfig holds display settings.
type UIConfig struct {
	// Accent is the accent color: an ANSI code (0-255), #rgb, #rrggbb or "none".
	Accent string `toml:"accent"`
}

// HistoryConfig holds atuin-mv settings.
type HistoryConfig struct {
	// DBPath overrides the default history database location.
	// Lower precedence than --db and ATUIN_DB_PATH.
	DBPath string `toml:"db_path"`

	// ListLimit is the default row limit for `list`.
	ListLimit int `toml:"list_limit"`
}

// IndexConfig holds tools-index settings.
type IndexConfig struct {
	// SkipDirs are directory names never descended into (dependency directories).
	SkipDirs []string `toml:"skip_dirs"`

	// ManifestName is the filename of the generated task-runner manifest.
	ManifestName string `toml:"manifest_name"`

	// LangMarkers maps a lock-file name to the runtime tag it implies.
	LangMarkers map[string]string `toml:"lang_markers"`
}

// GetListLimit returns the configured list limit, falling back to DefaultListLimit.
func (c *Config) GetListLimit() int {
	if c == nil || c.History.ListLimit <= 0 {
		return DefaultListLimit
	}
	return c.History.ListLimit
}

// GetSkipDirs returns the dependency directory names to skip while scanning.
func (c *Config) GetSkipDirs() []string {
	if c == nil || len(c.Index.SkipDirs) == 0 {
		return []string{"node_modules"}
	}
	return c.Index.SkipDirs
}

// GetManifestName returns the manifest filename.
func (c *Config) GetManifestName() string {
	if c == nil || strings.TrimSpace(c.Index.ManifestName) == "" {
		return DefaultManifestName
	}
	return strings.TrimSpace(c.Index.ManifestName)
}

// GetLangMarkers returns the lock-file markers used to tag tools with a runtime.
func (c *Config) GetLangMarkers() map[string]string {
	if c == nil || len(c.Index.LangMarkers) == 0 {
		return map[string]string{
			"bun.lock":  "bun",
			"bun.lockb": "bun",
		}
	}
	return c.Index.LangMarkers
}

// Load loads the configuration from the default location.
// Returns a default config if the file doesn't exist.
func Load(env Env) (*Config, error) {
	configPath := DefaultPath(env)
	if configPath == "" {
		return &Config{}, nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &Config{}, nil
	}

	return LoadFrom(configPath)
}

// LoadFrom loads the configuration from a specific path.
func LoadFrom(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &config, nil
}

// DefaultPath returns the default config file path:
// $XDG_CONFIG_HOME/shelltools/config.toml, else ~/.config/shelltools/config.toml.
// Returns "" when neither location can be determined.
func DefaultPath(env Env) string {
	if env.ConfigHome != "" {
		return filepath.Join(env.ConfigHome, "shelltools", "config.toml")
	}
	if env.Home != "" {
		return filepath.Join(env.Home, ".config", "shelltools", "config.toml")
	}
	return ""
}

// LoadWithPath loads an explicit config file when explicitPath is set, and the
// default location otherwise.
func LoadWithPath(explicitPath string, env Env) (*Config, error) {
	if strings.TrimSpace(explicitPath) != "" {
		return LoadFrom(explicitPath)
	}
	return Load(env)
}
