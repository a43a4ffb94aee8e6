// Package config handles TOML configuration loading and TMDB token
// resolution.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	LogLevel string        `toml:"log_level"`
	Library  LibraryConfig `toml:"library"`
	Catalog  CatalogConfig `toml:"catalog"`
}

// LibraryConfig controls the scan phase.
type LibraryConfig struct {
	// MinVideoSizeMB filters out trailer/sample files.
	MinVideoSizeMB int64 `toml:"min_video_size_mb"`
	// MaxDepth bounds the walk below each scanned folder.
	MaxDepth int `toml:"max_depth"`
}

// CatalogConfig controls the TMDB boundary.
type CatalogConfig struct {
	// Language for search results and titles (TMDB locale form).
	Language string `toml:"language"`
	// RetryBackoffSeconds is the wait before the single rate-limit retry.
	RetryBackoffSeconds int `toml:"retry_backoff_seconds"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Library: LibraryConfig{
			MinVideoSizeMB: 100,
			MaxDepth:       5,
		},
		Catalog: CatalogConfig{
			Language:            "de-DE",
			RetryBackoffSeconds: 2,
		},
	}
}

// Load reads a TOML config file over the defaults. An empty path loads the
// default location and tolerates its absence; an explicit path must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		dir, err := os.UserConfigDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, "tmdb-rename", "config.toml")
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Library.MinVideoSizeMB < 0 {
		return errors.New("library.min_video_size_mb must not be negative")
	}
	if c.Library.MaxDepth < 0 {
		return errors.New("library.max_depth must not be negative")
	}
	if c.Catalog.RetryBackoffSeconds < 0 {
		return errors.New("catalog.retry_backoff_seconds must not be negative")
	}
	return nil
}

// MinVideoSize returns the scan size floor in bytes.
func (c *Config) MinVideoSize() int64 {
	return c.Library.MinVideoSizeMB << 20
}
