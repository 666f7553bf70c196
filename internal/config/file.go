package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// FileConfig holds user defaults loaded from the TOML config file. Every
// field is optional; flags always win over file values.
type FileConfig struct {
	DateSource string   `toml:"date_source"`
	Depth      int      `toml:"depth"`
	OnConflict string   `toml:"on_conflict"`
	Hidden     bool     `toml:"hidden"`
	Recursive  bool     `toml:"recursive"`
	CleanEmpty bool     `toml:"clean_empty"`
	Include    []string `toml:"include"`
	Exclude    []string `toml:"exclude"`
}

// DefaultFilePath returns the default config file location,
// ~/.config/tidydate/config.toml (respecting XDG via os.UserConfigDir).
// The TIDYDATE_CONFIG environment variable overrides it.
func DefaultFilePath() (string, error) {
	if p := os.Getenv("TIDYDATE_CONFIG"); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(dir, "tidydate", "config.toml"), nil
}

// LoadFile reads the TOML config at path. A missing file is not an error
// and yields an empty FileConfig.
func LoadFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &FileConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg FileConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return &cfg, nil
}
