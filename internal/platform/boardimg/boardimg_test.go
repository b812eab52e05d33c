package boardimg

import (
	"bytes"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/snake-xenzia/internal/games/snake"
)

func testBoard() Board {
	return Board{
		Grid:     snake.GridConfig{Width: 4, Height: 5},
		Segments: []snake.Position{{X: 0, Y: 2}, {X: 0, Y: 1}, {X: 0, Y: 0}},
		Food:     snake.Position{X: 3, Y: 4},
		HasFood:  true,
	}
}

func TestRenderSize(t *testing.T) {
	img := Render(testBoard(), 10)
	if b := img.Bounds(); b.Dx() != 40 || b.Dy() != 50 {
		t.Errorf("image is %dx%d, expected 40x50", b.Dx(), b.Dy())
	}
}

func TestRenderFlipsY(t *testing.T) {
	img := Render(testBoard(), 10)

	// Tail (0,0) is the bottom-left cell; (0,4) top-left is empty
	r, g, b, _ := img.At(5, 45).RGBA()
	if g <= r || g <= b {
		t.Errorf("bottom-left pixel should be snake green, got %d,%d,%d", r>>8, g>>8, b>>8)
	}
	r, g, b, _ = img.At(5, 5).RGBA()
	if r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		t.Errorf("top-left pixel should be background, got %d,%d,%d", r>>8, g>>8, b>>8)
	}
	// Food (3,4) is the top-right cell
	r, g, _, _ = img.At(35, 5).RGBA()
	if r <= g {
		t.Errorf("food pixel should be red, got r=%d g=%d", r>>8, g>>8)
	}
}

func TestEncodeAndSave(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, testBoard(), 0); err != nil {
		t.Fatalf("EncodePNG() failed: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if img.Bounds().Dx() != 4*DefaultBlockSize {
		t.Errorf("width = %d with the default block size", img.Bounds().Dx())
	}

	path := filepath.Join(t.TempDir(), "shots", "board.png")
	if err := SavePNG(path, testBoard(), 8); err != nil {
		t.Fatalf("SavePNG() failed: %v", err)
	}
}
