package snake

import (
	"fmt"

	"github.com/vovakirdan/snake-xenzia/internal/core"
)

const (
	foodGlyph  = '●'
	crashGlyph = 'X'
)

// Render draws the HUD, the board and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.tooSmall || g.world == nil {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	board := g.boardRect(dst)
	dst.DrawBox(board, core.ColorFrame)
	g.renderFood(dst, board)
	g.renderSnake(dst, board)
	if g.crashFrames > 0 {
		g.drawCell(dst, board, g.crashAt, crashGlyph, false, core.ColorCrash)
	}

	switch {
	case g.world.Won():
		g.renderOverlay(dst, "Board filled!", fmt.Sprintf("Length %d - press R", g.world.snake.Len()))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	st := g.State()
	hud := fmt.Sprintf(" Snake  Score: %d  Best: %d", st.Score, st.Best)
	if g.world != nil {
		grid := g.world.Grid()
		hud += fmt.Sprintf("  Length: %d  Board: %dx%d", g.world.snake.Len(), grid.Width, grid.Height)
	}
	dst.DrawTextColor(0, 0, hud, core.ColorBrightWhite)
	for x := range dst.Width() {
		dst.SetColor(x, 1, '─', core.ColorFrame)
	}
}

// boardRect centres the bordered board below the HUD.
func (g *Game) boardRect(dst *core.Screen) core.Rect {
	grid := g.world.Grid()
	w := grid.Width*cellWidth + borderSize
	h := grid.Height + borderSize
	x := max(0, (dst.Width()-w)/2)
	return core.NewRect(x, hudHeight, w, h)
}

// drawCell draws one board cell. Board y grows upwards, screen y downwards.
func (g *Game) drawCell(dst *core.Screen, board core.Rect, p Position, r rune, joinRight bool, c core.Color) {
	grid := g.world.Grid()
	if !grid.Contains(p) {
		return
	}
	sx := board.X + 1 + p.X*cellWidth
	sy := board.Y + 1 + (grid.Height - 1 - p.Y)
	dst.SetColor(sx, sy, r, c)
	if joinRight {
		dst.SetColor(sx+1, sy, '═', c)
	}
}

func (g *Game) renderFood(dst *core.Screen, board core.Rect) {
	if p, ok := g.world.CurrentFoodPosition(); ok {
		g.drawCell(dst, board, p, foodGlyph, false, core.ColorFood)
	}
}

func (g *Game) renderSnake(dst *core.Screen, board core.Rect) {
	segments := g.world.snake.segments
	for i, shape := range Shapes(segments) {
		color := core.ColorBody
		if i == 0 {
			color = core.ColorHead
		}
		g.drawCell(dst, board, segments[i], shape.Glyph(), shape.ConnectsRight(), color)
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := dst.Bounds().Centered(boxW, 5)
	dst.FillRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorWhite)
}
