package config

import (
	_ "embed"
)

//go:embed defaults/arcade.yaml
var defaultArcadeYAML []byte

// DefaultArcadeConfig returns the hardcoded configuration used when no YAML
// source can be read.
func DefaultArcadeConfig() ArcadeConfig {
	return ArcadeConfig{
		Display: DisplayConfig{
			FPS: 30,
		},
		Seed: 0,
		Storage: StorageConfig{
			DBPath: "~/.arcade/scores.db",
		},
		Server: ServerConfig{
			Address:            ":23234",
			IdleTimeoutMinutes: 30,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
