// Package boardimg draws a snake board as a PNG image.
package boardimg

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"

	"github.com/vovakirdan/snake-xenzia/internal/games/snake"
)

// DefaultBlockSize is the edge of one cell in pixels.
const DefaultBlockSize = 16

// Board is everything the image needs, copied out of a World.
type Board struct {
	Grid     snake.GridConfig
	Segments []snake.Position // Head first
	Food     snake.Position
	HasFood  bool
}

// FromWorld copies the drawable state of w.
func FromWorld(w *snake.World) Board {
	food, ok := w.CurrentFoodPosition()
	return Board{
		Grid:     w.Grid(),
		Segments: w.Snake().Segments(),
		Food:     food,
		HasFood:  ok,
	}
}

// Render draws b with cells of blockSize pixels. Board y grows upwards, so
// row 0 is at the bottom of the image.
func Render(b Board, blockSize int) image.Image {
	return render(b, blockSize).Image()
}

func render(b Board, blockSize int) *gg.Context {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	width := b.Grid.Width * blockSize
	height := b.Grid.Height * blockSize
	dc := gg.NewContext(width, height)

	dc.SetRGB(1, 1, 1)
	dc.Clear()
	renderGrid(dc, width, height, blockSize)

	bs := float64(blockSize)
	cell := func(p snake.Position) (float64, float64) {
		return float64(p.X) * bs, float64(b.Grid.Height-1-p.Y) * bs
	}

	if b.HasFood {
		x, y := cell(b.Food)
		dc.SetRGB(0.85, 0.15, 0.15)
		dc.DrawCircle(x+bs/2, y+bs/2, bs/2-1)
		dc.Fill()
	}

	for i := len(b.Segments) - 1; i >= 0; i-- {
		x, y := cell(b.Segments[i])
		if i == 0 {
			dc.SetRGB(0.05, 0.45, 0.1)
		} else {
			dc.SetRGB(0.2, 0.7, 0.25)
		}
		dc.DrawRectangle(x+1, y+1, bs-2, bs-2)
		dc.Fill()
	}
	return dc
}

func renderGrid(dc *gg.Context, width, height, blockSize int) {
	dc.SetRGB(0.9, 0.9, 0.9)
	for x := 0; x <= width; x += blockSize {
		dc.DrawLine(float64(x), 0, float64(x), float64(height))
		dc.Stroke()
	}
	for y := 0; y <= height; y += blockSize {
		dc.DrawLine(0, float64(y), float64(width), float64(y))
		dc.Stroke()
	}
}

// EncodePNG writes the board image to w.
func EncodePNG(w io.Writer, b Board, blockSize int) error {
	if err := render(b, blockSize).EncodePNG(w); err != nil {
		return fmt.Errorf("boardimg: encode: %w", err)
	}
	return nil
}

// SavePNG writes the board image to path, creating parent directories.
func SavePNG(path string, b Board, blockSize int) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("boardimg: %w", err)
	}
	if err := render(b, blockSize).SavePNG(path); err != nil {
		return fmt.Errorf("boardimg: save %s: %w", path, err)
	}
	return nil
}
