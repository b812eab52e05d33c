package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vovakirdan/snake-xenzia/internal/core"
	"github.com/vovakirdan/snake-xenzia/internal/games/snake"
	"github.com/vovakirdan/snake-xenzia/internal/platform/boardimg"
)

// SaveScreenshot writes the screen as text and, when a board is live, the
// board as PNG. It returns the paths written.
func SaveScreenshot(dir, name string, screen *core.Screen, world *snake.World) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("screenshot: cannot create directory %s: %w", dir, err)
	}

	base := filepath.Join(dir, fmt.Sprintf("%s_%s", name, time.Now().Format("20060102_150405")))
	txt := base + ".txt"
	if err := os.WriteFile(txt, []byte(screen.String()+"\n"), 0o600); err != nil {
		return nil, fmt.Errorf("screenshot: %w", err)
	}
	paths := []string{txt}

	if world != nil {
		png := base + ".png"
		if err := boardimg.SavePNG(png, boardimg.FromWorld(world), boardimg.DefaultBlockSize); err != nil {
			return paths, err
		}
		paths = append(paths, png)
	}
	return paths, nil
}

// saveScreenshot renders the current frame and reports the outcome as a
// status line.
func (m *Model) saveScreenshot() string {
	if m.opts.ScreenshotDir == "" {
		return "screenshots disabled"
	}
	m.game.Render(m.screen)
	paths, err := SaveScreenshot(m.opts.ScreenshotDir, m.game.ID(), m.screen, m.game.World())
	if err != nil {
		m.opts.Logger.Warn("screenshot failed", "error", err)
		return "screenshot failed: " + err.Error()
	}
	m.opts.Logger.Info("screenshot saved", "files", paths)
	return "saved " + paths[len(paths)-1]
}
