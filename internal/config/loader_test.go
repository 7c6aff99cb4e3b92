package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// isolate points HOME and the working directory at empty temp dirs so the
// search order only sees files the test writes.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestLoadArcadeEmbeddedDefault(t *testing.T) {
	isolate(t)

	cfg, err := LoadArcade("")
	if err != nil {
		t.Fatalf("LoadArcade() failed: %v", err)
	}
	if cfg != DefaultArcadeConfig() {
		t.Errorf("embedded config differs from hardcoded default:\n%+v\n%+v", cfg, DefaultArcadeConfig())
	}
}

func TestLoadArcadeCustomPath(t *testing.T) {
	_, work := isolate(t)
	path := filepath.Join(work, "custom.yaml")
	writeFile(t, path, "display:\n  fps: 60\nseed: 99\n")

	cfg, err := LoadArcade(path)
	if err != nil {
		t.Fatalf("LoadArcade() failed: %v", err)
	}
	if cfg.Display.FPS != 60 || cfg.Seed != 99 {
		t.Errorf("custom values not applied: %+v", cfg)
	}
	// Keys missing from the file keep their defaults
	if cfg.Storage.DBPath != DefaultArcadeConfig().Storage.DBPath {
		t.Errorf("expected default db path, got %q", cfg.Storage.DBPath)
	}
}

func TestLoadArcadeErrors(t *testing.T) {
	_, work := isolate(t)

	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "display: [\n"},
		{"fps out of range", "display:\n  fps: 0\n"},
		{"unknown log level", "log:\n  level: loud\n"},
		{"negative timeout", "server:\n  idle_timeout_minutes: -1\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(work, "bad.yaml")
			writeFile(t, path, tc.content)
			if _, err := LoadArcade(path); err == nil {
				t.Error("expected an error")
			}
		})
	}

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadArcade(filepath.Join(work, "nope.yaml")); err == nil {
			t.Error("expected an error")
		}
	})
}

func TestLoadArcadeSearchOrder(t *testing.T) {
	home, work := isolate(t)

	writeFile(t, filepath.Join(work, "configs", "arcade.yaml"), "seed: 2\n")
	cfg, err := LoadArcade("")
	if err != nil {
		t.Fatalf("LoadArcade() failed: %v", err)
	}
	if cfg.Seed != 2 {
		t.Errorf("expected local config seed 2, got %d", cfg.Seed)
	}

	writeFile(t, filepath.Join(home, ".arcade", "configs", "arcade.yaml"), "seed: 1\n")
	cfg, err = LoadArcade("")
	if err != nil {
		t.Fatalf("LoadArcade() failed: %v", err)
	}
	if cfg.Seed != 1 {
		t.Errorf("expected user config to win with seed 1, got %d", cfg.Seed)
	}

	// An invalid user file is skipped
	writeFile(t, filepath.Join(home, ".arcade", "configs", "arcade.yaml"), "display:\n  fps: -3\n")
	cfg, err = LoadArcade("")
	if err != nil {
		t.Fatalf("LoadArcade() failed: %v", err)
	}
	if cfg.Seed != 2 {
		t.Errorf("expected fallback to local config, got seed %d", cfg.Seed)
	}
}

func TestServerIdleTimeout(t *testing.T) {
	s := ServerConfig{IdleTimeoutMinutes: 30}
	if s.IdleTimeout() != 30*time.Minute {
		t.Errorf("IdleTimeout = %v", s.IdleTimeout())
	}
}
