package snake

import (
	"hash/fnv"
	"strconv"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateWin         GameStateType = "win"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Frame      uint64
	Tick       uint64 // Movement ticks
	Score      int
	Best       int
	SnakeLen   int
	Head       Position
	Dir        Direction
	Food       Position
	FoodActive bool
	Grid       GridConfig
	BodyHash   uint64 // FNV-1a over every segment, head first
	State      GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{Frame: g.frame, Best: g.best, State: StatePlaying}
	switch {
	case g.tooSmall || g.world == nil:
		snap.State = StatePausedSmall
		return snap
	case g.world.Won():
		snap.State = StateWin
	case g.paused:
		snap.State = StatePaused
	}

	w := g.world
	snap.Tick = w.Tick()
	snap.Score = w.Score()
	snap.Best = max(g.best, w.Best())
	snap.SnakeLen = w.snake.Len()
	snap.Head = w.snake.Head()
	snap.Dir = w.snake.Heading()
	snap.Food, snap.FoodActive = w.CurrentFoodPosition()
	snap.Grid = w.Grid()
	snap.BodyHash = HashSegments(w.snake.segments)
	return snap
}

// HashSegments fingerprints a body so two runs can be compared cheaply.
func HashSegments(segments []Position) uint64 {
	h := fnv.New64a()
	var buf []byte
	for _, p := range segments {
		buf = strconv.AppendInt(buf[:0], int64(p.X), 10)
		buf = append(buf, ',')
		buf = strconv.AppendInt(buf, int64(p.Y), 10)
		buf = append(buf, ';')
		h.Write(buf)
	}
	return h.Sum64()
}
