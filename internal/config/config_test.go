package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ayusman/hastamudra/internal/mudra"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want %q", cfg.Addr, ":8080")
	}
	if cfg.CameraID != 0 {
		t.Errorf("CameraID = %d, want 0", cfg.CameraID)
	}
	if cfg.StabilityFrames != mudra.DefaultStabilityFrames {
		t.Errorf("StabilityFrames = %d, want %d", cfg.StabilityFrames, mudra.DefaultStabilityFrames)
	}
	if cfg.HistorySize != mudra.DefaultHistorySize {
		t.Errorf("HistorySize = %d, want %d", cfg.HistorySize, mudra.DefaultHistorySize)
	}
	if cfg.DBPath == "" {
		t.Error("DBPath is empty")
	}
}

func TestLoad(t *testing.T) {
	t.Run("missing file returns defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Addr != ":8080" {
			t.Errorf("Addr = %q, want default", cfg.Addr)
		}
	})

	t.Run("empty path is an error", func(t *testing.T) {
		if _, err := Load(""); err == nil {
			t.Error("Load(\"\") error = nil, want error")
		}
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		content := `
addr = ":9090"
camera_id = 2
motion_threshold = 0.5
stability_frames = 5
history_size = 20
tray = true
`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.Addr != ":9090" {
			t.Errorf("Addr = %q, want %q", cfg.Addr, ":9090")
		}
		if cfg.CameraID != 2 {
			t.Errorf("CameraID = %d, want 2", cfg.CameraID)
		}
		if cfg.MotionThreshold != 0.5 {
			t.Errorf("MotionThreshold = %v, want 0.5", cfg.MotionThreshold)
		}
		if cfg.StabilityFrames != 5 {
			t.Errorf("StabilityFrames = %d, want 5", cfg.StabilityFrames)
		}
		if cfg.HistorySize != 20 {
			t.Errorf("HistorySize = %d, want 20", cfg.HistorySize)
		}
		if !cfg.Tray {
			t.Error("Tray = false, want true")
		}

		// Unset fields keep their defaults
		if cfg.DBPath == "" {
			t.Error("DBPath lost its default")
		}
	})

	t.Run("invalid values fall back to defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		content := `
stability_frames = 0
history_size = -3
`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.StabilityFrames != mudra.DefaultStabilityFrames {
			t.Errorf("StabilityFrames = %d, want %d", cfg.StabilityFrames, mudra.DefaultStabilityFrames)
		}
		if cfg.HistorySize != mudra.DefaultHistorySize {
			t.Errorf("HistorySize = %d, want %d", cfg.HistorySize, mudra.DefaultHistorySize)
		}
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte(`addr = [`), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		if _, err := Load(path); err == nil {
			t.Error("Load() error = nil for malformed TOML, want error")
		}
	})
}
