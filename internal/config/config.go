// Package config handles the optional TOML config file and defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/maxgreen/daykeep/internal/constants"
)

// Config holds file-level settings. Command-line flags override these.
type Config struct {
	// DataPath is the persisted store. A .db/.sqlite extension selects the
	// SQLite provider, anything else the JSON provider.
	DataPath string `toml:"data_path"`

	// Timezone is an IANA name used to compute "today". Empty or "Local"
	// means the system timezone.
	Timezone string `toml:"timezone"`

	// Debug enables verbose logging to stderr.
	Debug bool `toml:"debug"`
}

func defaults() Config {
	return Config{
		DataPath: constants.DefaultDataPath,
	}
}

// Load reads the config file at path, or defaults if it does not exist.
func Load(path string) (Config, error) {
	cfg := defaults()

	expanded, err := ExpandHome(path)
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(expanded)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}
	if cfg.DataPath == "" {
		cfg.DataPath = constants.DefaultDataPath
	}

	return cfg, nil
}

// ExpandHome resolves a leading ~/ against the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
	}
	return path, nil
}
