package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Width:     28,
			Height:    28,
			FitScreen: true,
		},
		Timing: TimingConfig{
			MoveInterval: 111 * time.Millisecond,
			FoodInterval: 2 * time.Second,
		},
		Log: LogConfig{
			Level:      "info",
			File:       "~/.snake/snake.log",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
		},
		SSH: SSHConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
		Web: WebConfig{
			Address:     ":8080",
			WatchConfig: true,
		},
	}
}
