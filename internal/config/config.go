// Package config provides YAML-based configuration loading for the snake
// game, its servers and its logging.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// SnakeConfig is the complete configuration file.
type SnakeConfig struct {
	Board  BoardConfig  `yaml:"board"`
	Timing TimingConfig `yaml:"timing"`
	Log    LogConfig    `yaml:"log"`
	SSH    SSHConfig    `yaml:"ssh"`
	Web    WebConfig    `yaml:"web"`
}

// BoardConfig defines the grid.
type BoardConfig struct {
	Width     int         `yaml:"width"`
	Height    int         `yaml:"height"`
	FitScreen bool        `yaml:"fit_screen"`
	Origin    PointConfig `yaml:"origin"`
}

// PointConfig is a grid cell.
type PointConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// TimingConfig defines the two fixed tick rates.
type TimingConfig struct {
	MoveInterval time.Duration `yaml:"move_interval"`
	FoodInterval time.Duration `yaml:"food_interval"`
}

// LogConfig controls the logger and its rotating file.
type LogConfig struct {
	Level      string `yaml:"level"` // debug, info, warn, error
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// SSHConfig configures `snake serve`.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// WebConfig configures `snake web`.
type WebConfig struct {
	Address     string `yaml:"address"`
	WatchConfig bool   `yaml:"watch_config"`
}

// Validate reports the first problem found in the configuration.
func (c SnakeConfig) Validate() error {
	switch {
	case c.Board.Width < 1 || c.Board.Height < 1:
		return fmt.Errorf("%w: board %dx%d", ErrInvalidConfig, c.Board.Width, c.Board.Height)
	case c.Board.Origin.X < 0 || c.Board.Origin.X >= c.Board.Width:
		return fmt.Errorf("%w: origin x=%d outside board", ErrInvalidConfig, c.Board.Origin.X)
	case c.Board.Origin.Y < 0 || c.Board.Origin.Y+2 >= c.Board.Height:
		return fmt.Errorf("%w: origin y=%d leaves no room for the starting snake", ErrInvalidConfig, c.Board.Origin.Y)
	case c.Timing.MoveInterval <= 0:
		return fmt.Errorf("%w: move_interval must be positive", ErrInvalidConfig)
	case c.Timing.FoodInterval <= 0:
		return fmt.Errorf("%w: food_interval must be positive", ErrInvalidConfig)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// Level mirrors the logger levels without importing the logger here.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// ParseLevel normalises a level name. Empty means info.
func ParseLevel(s string) (Level, error) {
	switch l := Level(strings.ToLower(strings.TrimSpace(s))); l {
	case "":
		return LevelInfo, nil
	case LevelDebug, LevelInfo, LevelWarn, LevelError:
		return l, nil
	}
	return "", fmt.Errorf("%w: log level %q", ErrInvalidConfig, s)
}

// DifficultyPreset represents a named movement speed.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// MoveIntervalForPreset returns the movement period for a preset.
// Unknown presets return zero.
func MoveIntervalForPreset(preset DifficultyPreset) time.Duration {
	switch preset {
	case DifficultyEasy:
		return time.Second / 6
	case DifficultyNormal:
		return time.Second / 9
	case DifficultyHard:
		return time.Second / 14
	default:
		return 0
	}
}

// ApplyPreset overrides the movement interval. An empty preset is a no-op.
func ApplyPreset(cfg *SnakeConfig, preset DifficultyPreset) error {
	if preset == "" {
		return nil
	}
	d := MoveIntervalForPreset(preset)
	if d == 0 {
		return fmt.Errorf("%w: difficulty %q (want easy, normal or hard)", ErrInvalidConfig, preset)
	}
	cfg.Timing.MoveInterval = d
	return nil
}
