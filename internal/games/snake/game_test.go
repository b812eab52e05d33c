package snake

import (
	"strings"
	"testing"

	"github.com/vovakirdan/snake-xenzia/internal/core"
)

func newTestGame(seed int64) *Game {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 24, TickRate: 60})
	return g
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	g1 := newTestGame(12345)
	g2 := newTestGame(12345)

	input := core.NewInputFrame()
	for i := range 1200 {
		input.Clear()
		switch i {
		case 100:
			input.Set(core.ActionRight)
		case 300:
			input.Set(core.ActionDown)
		case 420:
			input.Set(core.ActionLeft)
		}
		g1.Step(input)
		g2.Step(input)

		if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
			t.Fatalf("frame %d: snapshots diverged\n%+v\n%+v", i, s1, s2)
		}
	}
	if g1.Snapshot().Tick == 0 {
		t.Error("the snake never moved")
	}
}

func TestFitScreenShrinksGrid(t *testing.T) {
	g := newTestGame(1)
	grid := g.World().Grid()
	if grid.Width != 28 || grid.Height != 20 {
		t.Errorf("grid = %dx%d, expected 28x20 on an 80x24 screen", grid.Width, grid.Height)
	}

	g.Resize(120, 40)
	if grid := g.World().Grid(); grid != DefaultGrid() {
		t.Errorf("after enlarging, grid = %dx%d, expected the configured 28x28", grid.Width, grid.Height)
	}
}

func TestNoImmediateReversal(t *testing.T) {
	g := newTestGame(42)

	input := core.NewInputFrame()
	input.Set(core.ActionDown)
	g.Step(input)
	input.Clear()
	for range 10 {
		g.Step(input)
	}

	w := g.World()
	if w.Direction() != DirUp {
		t.Errorf("Direction() = %s, expected up", w.Direction())
	}
	if w.Snake().Head() != (Position{0, 3}) {
		t.Errorf("head = %v, expected (0,3) after one move", w.Snake().Head())
	}
}

func TestMoveCadence(t *testing.T) {
	g := newTestGame(1)
	input := core.NewInputFrame()
	moves, foods := 0, 0
	for range 121 { // just past two seconds at 60 FPS
		res := g.Step(input)
		moves += res.MoveTicks
		foods += res.FoodTicks
	}
	if moves != 18 || foods != 1 {
		t.Errorf("moves=%d foods=%d in two seconds, expected 18 and 1", moves, foods)
	}
}

func TestPause(t *testing.T) {
	g := newTestGame(1)
	input := core.NewInputFrame()
	input.Set(core.ActionPause)
	if !g.Step(input).State.Paused {
		t.Fatal("expected paused state")
	}

	input.Clear()
	for range 60 {
		g.Step(input)
	}
	if g.World().Tick() != 0 {
		t.Errorf("paused game moved %d times", g.World().Tick())
	}
	if g.Snapshot().State != StatePaused {
		t.Errorf("State = %s, expected paused", g.Snapshot().State)
	}
}

func TestRestart(t *testing.T) {
	g := newTestGame(1)
	input := core.NewInputFrame()
	for range 30 {
		g.Step(input)
	}
	input.Set(core.ActionRestart)
	g.Step(input)

	assertSegments(t, g.World().Snake().Segments(), []Position{{0, 2}, {0, 1}, {0, 0}})
}

func TestTooSmall(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 10, ScreenH: 5, TickRate: 60})

	if !g.TooSmall() || g.World() != nil {
		t.Fatal("10x5 cannot hold a board")
	}
	if g.Snapshot().State != StatePausedSmall {
		t.Errorf("State = %s", g.Snapshot().State)
	}
	g.Step(core.NewInputFrame()) // must not panic

	g.Resize(80, 24)
	if g.TooSmall() || g.World() == nil {
		t.Error("resize to 80x24 should build the board")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(1)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// Board is 58 columns wide, centred: border at x=11, cells from x=12
	checks := []struct {
		x, y int
		want rune
	}{
		{11, 2, '┌'},
		{12, 20, '▲'},
		{12, 21, '║'},
		{12, 22, '╨'},
		{13, 21, ' '},
	}
	for _, c := range checks {
		if got := screen.Get(c.x, c.y); got != c.want {
			t.Errorf("(%d,%d) = %q, expected %q", c.x, c.y, got, c.want)
		}
	}
	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD = %q", screen.Row(0))
	}
	if screen.GetCell(12, 20).Color != core.ColorBrightGreen {
		t.Error("head should be bright green")
	}
}

func TestRenderFood(t *testing.T) {
	g := newTestGame(1)
	p, ok := g.World().OnFoodTick()
	if !ok {
		t.Fatal("food tick should place food")
	}
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	x := 12 + p.X*cellWidth
	y := 3 + (g.World().Grid().Height - 1 - p.Y)
	if screen.Get(x, y) != foodGlyph {
		t.Errorf("food %v not drawn at (%d,%d), row = %q", p, x, y, screen.Row(y))
	}
}
