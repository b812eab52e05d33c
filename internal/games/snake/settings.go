package snake

import (
	"time"

	"github.com/vovakirdan/snake-xenzia/internal/config"
)

// Settings are the game parameters taken from configuration.
type Settings struct {
	Grid         GridConfig
	Origin       Position
	MoveInterval time.Duration
	FoodInterval time.Duration
	FitScreen    bool // Shrink the grid when the terminal cannot hold it
}

// DefaultSettings returns the classic 28x28 board at nine moves per second.
func DefaultSettings() Settings {
	return Settings{
		Grid:         DefaultGrid(),
		MoveInterval: DefaultMoveInterval,
		FoodInterval: DefaultFoodInterval,
		FitScreen:    true,
	}
}

// SettingsFromConfig converts the YAML configuration.
func SettingsFromConfig(cfg config.SnakeConfig) Settings {
	return Settings{
		Grid:         GridConfig{Width: cfg.Board.Width, Height: cfg.Board.Height},
		Origin:       Position{X: cfg.Board.Origin.X, Y: cfg.Board.Origin.Y},
		MoveInterval: cfg.Timing.MoveInterval,
		FoodInterval: cfg.Timing.FoodInterval,
		FitScreen:    cfg.Board.FitScreen,
	}
}
