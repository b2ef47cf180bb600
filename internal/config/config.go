// Package config provides TOML configuration loading for the mudra
// recognition service.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/ayusman/hastamudra/internal/mudra"
)

// Config holds the resolved runtime configuration.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string `toml:"addr"`

	// CameraID is the video capture device index.
	CameraID int `toml:"camera_id"`

	// MotionThreshold is the percentage of changed pixels that counts as
	// motion (pipeline idle/active gating).
	MotionThreshold float64 `toml:"motion_threshold"`

	// StabilityFrames is the number of consecutive identical
	// classifications required before a mudra is committed.
	StabilityFrames int `toml:"stability_frames"`

	// HistorySize caps the session detection history.
	HistorySize int `toml:"history_size"`

	// StaticDir is the directory of dashboard static files. Empty disables
	// static serving.
	StaticDir string `toml:"static_dir"`

	// ImagesDir is the directory of mudra reference images served under
	// /images/. Empty disables image serving.
	ImagesDir string `toml:"images_dir"`

	// DBPath is the SQLite database path.
	DBPath string `toml:"db_path"`

	// Tray enables the system tray UI.
	Tray bool `toml:"tray"`
}

// Default returns the configuration used when no file overrides are present.
func Default() Config {
	return Config{
		Addr:            ":8080",
		CameraID:        0,
		MotionThreshold: 1.0,
		StabilityFrames: mudra.DefaultStabilityFrames,
		HistorySize:     mudra.DefaultHistorySize,
		DBPath:          DefaultDBPath(),
	}
}

// Load reads a TOML config from the given path and applies it over the
// defaults. A missing file is not an error; the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to stat config: %w", err)
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to decode config: %w", err)
	}

	if cfg.StabilityFrames < 1 {
		cfg.StabilityFrames = mudra.DefaultStabilityFrames
	}
	if cfg.HistorySize < 1 {
		cfg.HistorySize = mudra.DefaultHistorySize
	}

	return cfg, nil
}
