package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/snake-xenzia/internal/core"
)

// Screen layout: two HUD rows, then the bordered board.
const (
	hudHeight  = 2
	cellWidth  = 2 // Terminal columns per board cell
	borderSize = 2
)

// Game drives a World from a fixed-rate host loop. It implements the
// interface the platform layer expects: Reset, Step, Render and State.
type Game struct {
	settings Settings
	world    *World
	clock    *SimulationClock
	rng      *rand.Rand

	frameDur time.Duration
	frame    uint64
	paused   bool
	tooSmall bool
	best     int // Survives resizes, which rebuild the world

	screenW int
	screenH int

	crashAt     Position
	crashFrames int // Frames left to show the crash marker

	onEvent func(Event)
}

// NewGame creates a game. Call Reset before the first Step.
func NewGame(settings Settings) *Game {
	return &Game{settings: settings}
}

// New creates a game with the default settings.
func New() *Game {
	return NewGame(DefaultSettings())
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// OnEvent forwards world events to fn, including across resets and resizes.
func (g *Game) OnEvent(fn func(Event)) {
	g.onEvent = fn
	if g.world != nil {
		g.world.OnEvent(fn)
	}
}

// Reset builds a new world sized for the screen and restarts the clock.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.frameDur = time.Second / time.Duration(cfg.TickRate)
	g.frame = 0
	g.paused = false
	g.crashFrames = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.clock = NewSimulationClock(g.settings.MoveInterval, g.settings.FoodInterval)
	g.buildWorld()
}

// Resize adapts to a new terminal size. The board only changes, and the
// round restarts, when the fitted grid differs from the current one.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	if g.clock == nil {
		return // Not reset yet
	}
	if g.world != nil && !g.tooSmall && g.fitGrid() == g.world.Grid() {
		return
	}
	g.buildWorld()
}

func (g *Game) buildWorld() {
	if g.world != nil {
		g.best = max(g.best, g.world.Best())
	}
	grid := g.fitGrid()
	w, err := NewWorld(WorldOptions{Grid: grid, Origin: g.settings.Origin, Rand: g.rng})
	if err != nil || !g.fits(grid) {
		g.tooSmall = true
		g.world = nil
		return
	}
	w.OnEvent(g.onEvent)
	g.world = w
	g.tooSmall = false
	g.clock.Reset()
}

// fitGrid returns the configured grid, shrunk to the screen if allowed.
func (g *Game) fitGrid() GridConfig {
	grid := g.settings.Grid
	if !g.settings.FitScreen || g.screenW <= 0 || g.screenH <= 0 {
		return grid
	}
	grid.Width = min(grid.Width, (g.screenW-borderSize)/cellWidth)
	grid.Height = min(grid.Height, g.screenH-hudHeight-borderSize)
	return grid
}

func (g *Game) fits(grid GridConfig) bool {
	if g.screenW <= 0 || g.screenH <= 0 {
		return true // Headless
	}
	return grid.Width*cellWidth+borderSize <= g.screenW &&
		grid.Height+hudHeight+borderSize <= g.screenH
}

// Step advances the game by one host frame.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.frame++
	if g.crashFrames > 0 {
		g.crashFrames--
	}
	if g.tooSmall || g.world == nil {
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionRestart) {
		g.world.Reset()
		g.clock.Reset()
		g.paused = false
		g.crashFrames = 0
		return core.StepResult{State: g.State()}
	}
	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.world.Won() {
		return core.StepResult{State: g.State()}
	}

	if d, ok := actionDirection(input.LastDir); ok {
		g.world.SetDirectionIntent(d)
	}

	var res core.StepResult
	for _, tick := range g.clock.Advance(g.frameDur) {
		switch tick {
		case TickMove:
			res.MoveTicks++
			mr := g.world.OnMovementTick()
			if mr.GameOver {
				g.crashAt = mr.CrashAt
				g.crashFrames = int(time.Second / g.frameDur)
			}
		case TickFood:
			res.FoodTicks++
			g.world.OnFoodTick()
		}
	}
	res.State = g.State()
	return res
}

// actionDirection maps a movement action to a direction.
func actionDirection(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	}
	return DirUp, false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{Best: g.best, Paused: g.paused}
	}
	return core.GameState{
		Score:    g.world.Score(),
		Best:     max(g.best, g.world.Best()),
		GameOver: g.crashFrames > 0,
		Won:      g.world.Won(),
		Paused:   g.paused,
	}
}

// World exposes the simulation. It is nil while the screen is too small.
func (g *Game) World() *World {
	return g.world
}

// TooSmall reports whether the screen cannot hold the smallest board.
func (g *Game) TooSmall() bool {
	return g.tooSmall
}
