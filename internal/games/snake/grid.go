package snake

import (
	"errors"
	"fmt"
)

// CanonicalLength is the snake length after every reset.
const CanonicalLength = 3

// ErrGridTooSmall is returned when the canonical snake cannot fit on the board.
var ErrGridTooSmall = errors.New("snake: grid too small for the starting snake")

// GridConfig holds the immutable board dimensions in cells.
type GridConfig struct {
	Width  int
	Height int
}

// DefaultGrid is the 28x28 board of the classic game.
func DefaultGrid() GridConfig {
	return GridConfig{Width: 28, Height: 28}
}

// Contains reports whether p lies on the board.
func (g GridConfig) Contains(p Position) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells returns the number of cells on the board.
func (g GridConfig) Cells() int {
	return g.Width * g.Height
}

// Validate checks the dimensions and that the canonical snake fits at origin.
func (g GridConfig) Validate(origin Position) error {
	if g.Width < 1 || g.Height < 1 {
		return fmt.Errorf("snake: invalid grid %dx%d", g.Width, g.Height)
	}
	for _, p := range canonicalSegments(origin) {
		if !g.Contains(p) {
			return fmt.Errorf("%w: %dx%d with origin %s", ErrGridTooSmall, g.Width, g.Height, origin)
		}
	}
	return nil
}
