package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/aidanlsb/shelltools/internal/paths"
)

// Env is a snapshot of the process environment the tools depend on.
// It is captured once at startup and passed down explicitly so tests can inject it.
type Env struct {
	// Home is the invoking user's home directory ("" when unknown).
	Home string

	// DataHome is $XDG_DATA_HOME ("" when unset).
	DataHome string

	// ConfigHome is $XDG_CONFIG_HOME ("" when unset).
	ConfigHome string

	// AtuinDBPath is $ATUIN_DB_PATH ("" when unset).
	AtuinDBPath string
}

// EnvFromOS reads Env from the current process environment.
// HOME wins over USERPROFILE; os.UserHomeDir is only a last resort.
func EnvFromOS() Env {
	home := strings.TrimSpace(os.Getenv("HOME"))
	if home == "" {
		home = strings.TrimSpace(os.Getenv("USERPROFILE"))
	}
	if home == "" {
		if h, err := os.UserHomeDir(); err == nil {
			home = h
		}
	}

	return Env{
		Home:        home,
		DataHome:    strings.TrimSpace(os.Getenv("XDG_DATA_HOME")),
		ConfigHome:  strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")),
		AtuinDBPath: strings.TrimSpace(os.Getenv("ATUIN_DB_PATH")),
	}
}

// DefaultDBPath returns <XDG_DATA_HOME or ~/.local/share>/atuin/history.db.
func DefaultDBPath(env Env) (string, error) {
	dataHome := env.DataHome
	if dataHome == "" {
		if env.Home == "" {
			return "", paths.ErrNoHome
		}
		dataHome = filepath.Join(env.Home, ".local", "share")
	}
	return filepath.Join(dataHome, "atuin", "history.db"), nil
}

// ResolveDBPath resolves the history database path with precedence:
//  1. explicit --db flag
//  2. $ATUIN_DB_PATH
//  3. history.db_path from config.toml
//  4. DefaultDBPath
//
// The winning value is tilde-expanded and made absolute.
func ResolveDBPath(flagPath string, env Env, cfg *Config) (string, error) {
	candidate := strings.TrimSpace(flagPath)
	if candidate == "" {
		candidate = env.AtuinDBPath
	}
	if candidate == "" && cfg != nil {
		candidate = strings.TrimSpace(cfg.History.DBPath)
	}
	if candidate == "" {
		fallback, err := DefaultDBPath(env)
		if err != nil {
			return "", err
		}
		candidate = fallback
	}
	return paths.Normalize(candidate, env.Home)
}
