// Package config provides YAML-based host configuration loading for the
// arcade platform. Simulation constants are fixed and not configurable.
package config

import (
	"fmt"
	"time"
)

// ArcadeConfig contains the host settings shared by every command.
type ArcadeConfig struct {
	Display DisplayConfig `yaml:"display"`
	Seed    int64         `yaml:"seed"` // 0 means derive from the clock
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
}

// DisplayConfig controls the host frame loop.
type DisplayConfig struct {
	FPS int `yaml:"fps"` // Host frames per second; the simulation always ticks at 60 Hz
}

// StorageConfig locates the run history database.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// ServerConfig configures the SSH host.
type ServerConfig struct {
	Address            string `yaml:"address"`
	HostKeyPath        string `yaml:"host_key_path"` // Empty means ~/.arcade/host_key
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// LogConfig configures the charmbracelet logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Empty means stderr
}

// IdleTimeout returns the server idle timeout as a duration.
func (c ServerConfig) IdleTimeout() time.Duration {
	return time.Duration(c.IdleTimeoutMinutes) * time.Minute
}

// Validate checks ranges that would otherwise fail later at runtime.
func (c ArcadeConfig) Validate() error {
	if c.Display.FPS < 1 || c.Display.FPS > 240 {
		return fmt.Errorf("config: display.fps must be in [1, 240], got %d", c.Display.FPS)
	}
	if c.Storage.DBPath == "" {
		return fmt.Errorf("config: storage.db_path is empty")
	}
	if c.Server.IdleTimeoutMinutes < 0 {
		return fmt.Errorf("config: server.idle_timeout_minutes is negative")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log.level %q", c.Log.Level)
	}
	return nil
}
