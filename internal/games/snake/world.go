package snake

import (
	"fmt"
	"math/rand"
)

// EventKind labels a notable simulation event.
type EventKind int

const (
	EventAte EventKind = iota
	EventCollision
	EventReset
	EventFoodSpawned
	EventWon
)

func (k EventKind) String() string {
	switch k {
	case EventAte:
		return "ate"
	case EventCollision:
		return "collision"
	case EventReset:
		return "reset"
	case EventFoodSpawned:
		return "food_spawned"
	case EventWon:
		return "won"
	default:
		return "unknown"
	}
}

// Event is reported to the observer installed with OnEvent.
type Event struct {
	Kind      EventKind
	Tick      uint64
	Pos       Position
	Length    int
	Collision Collision
}

// MoveResult is what a movement tick exposes to renderers.
type MoveResult struct {
	Tick      uint64
	Head      Position
	Segments  []Position
	AteFood   bool
	GameOver  bool
	Won       bool
	Collision Collision
	CrashAt   Position // Head cell that triggered the reset, if any
}

// Stats counts events since the world was created.
type Stats struct {
	Moves      uint64
	FoodEaten  int
	FoodPlaced int
	Resets     int
}

// WorldOptions configures a World.
type WorldOptions struct {
	Grid   GridConfig
	Origin Position // Tail cell of the canonical snake
	Seed   int64
	Rand   *rand.Rand // Overrides Seed when set
}

// World owns the snake, the food and the direction latch. Every method
// runs a whole tick or query; it is not safe for concurrent use.
type World struct {
	grid     GridConfig
	origin   Position
	snake    *Snake
	intent   DirectionIntent
	food     Food
	engine   MovementEngine
	detector CollisionDetector
	spawner  *FoodSpawner

	tick  uint64
	score int
	best  int
	won   bool
	stats Stats

	onEvent func(Event)
}

// NewWorld validates the options and returns a freshly reset world.
func NewWorld(opts WorldOptions) (*World, error) {
	if err := opts.Grid.Validate(opts.Origin); err != nil {
		return nil, err
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(opts.Seed))
	}
	w := &World{
		grid:    opts.Grid,
		origin:  opts.Origin,
		spawner: NewFoodSpawner(rng),
	}
	w.reset()
	return w, nil
}

// newWorldWith installs an arbitrary snake and food. Used by tests.
func newWorldWith(grid GridConfig, s *Snake, food Food, seed int64) *World {
	w := &World{
		grid:    grid,
		snake:   s,
		intent:  NewDirectionIntent(s.Heading()),
		food:    food,
		spawner: NewFoodSpawner(rand.New(rand.NewSource(seed))),
	}
	return w
}

// OnEvent installs an observer. Pass nil to remove it.
func (w *World) OnEvent(fn func(Event)) {
	w.onEvent = fn
}

func (w *World) emit(ev Event) {
	if w.onEvent != nil {
		ev.Tick = w.tick
		w.onEvent(ev)
	}
}

// SetDirectionIntent latches d for the next movement tick. A reversal of
// the current heading is ignored.
func (w *World) SetDirectionIntent(d Direction) {
	w.intent.Set(w.snake.Heading(), d)
}

// OnMovementTick advances the snake one cell, resolves eating and
// collisions, and returns the resulting state. A collision resets the
// world within the same call.
func (w *World) OnMovementTick() MoveResult {
	return w.moveWith(w.intent.Consume(), true)
}

func (w *World) moveWith(dir Direction, validate bool) MoveResult {
	if w.won {
		return w.result(MoveResult{Won: true})
	}
	w.tick++
	w.stats.Moves++

	var mv Move
	if validate {
		mv = w.engine.Step(w.snake, dir, w.food)
	} else {
		mv = w.engine.apply(w.snake, dir, w.food)
	}
	w.intent.Reset(mv.Direction)

	if c := w.detector.Check(w.snake, w.grid); c != CollisionNone {
		w.emit(Event{Kind: EventCollision, Pos: mv.Head, Length: w.snake.Len(), Collision: c})
		w.reset()
		return w.result(MoveResult{GameOver: true, Collision: c, CrashAt: mv.Head})
	}

	res := MoveResult{AteFood: mv.Ate}
	if mv.Ate {
		w.food = Food{}
		w.score++
		w.best = max(w.best, w.score)
		w.stats.FoodEaten++
		w.emit(Event{Kind: EventAte, Pos: mv.Head, Length: w.snake.Len()})
		if w.snake.Len() >= w.grid.Cells() {
			w.win()
			res.Won = true
		}
	}
	return w.result(res)
}

func (w *World) result(r MoveResult) MoveResult {
	r.Tick = w.tick
	r.Head = w.snake.Head()
	r.Segments = w.snake.Segments()
	return r
}

// OnFoodTick places food if none is active. It reports the new position
// and whether food was placed. A full board ends the game as a win.
func (w *World) OnFoodTick() (Position, bool) {
	if w.won || w.food.Active {
		return Position{}, false
	}
	p, err := w.spawner.Spawn(w.snake.Occupied(), w.grid)
	if err != nil {
		w.win()
		return Position{}, false
	}
	w.food = Food{Pos: p, Active: true}
	w.stats.FoodPlaced++
	w.emit(Event{Kind: EventFoodSpawned, Pos: p, Length: w.snake.Len()})
	return p, true
}

// CurrentFoodPosition returns the active food cell, if any.
func (w *World) CurrentFoodPosition() (Position, bool) {
	return w.food.Pos, w.food.Active
}

func (w *World) win() {
	if w.won {
		return
	}
	w.won = true
	w.food = Food{}
	w.emit(Event{Kind: EventWon, Pos: w.snake.Head(), Length: w.snake.Len()})
}

// Reset restores the canonical snake and clears food and score. The
// session best survives.
func (w *World) Reset() {
	w.reset()
}

func (w *World) reset() {
	first := w.snake == nil
	w.snake = CanonicalSnake(w.origin)
	w.intent.Reset(DirUp)
	w.food = Food{}
	w.score = 0
	w.won = false
	if !first {
		w.stats.Resets++
		w.emit(Event{Kind: EventReset, Pos: w.snake.Head(), Length: w.snake.Len()})
	}
}

// Snake returns a copy of the current body.
func (w *World) Snake() *Snake {
	return w.snake.Clone()
}

// Direction returns the heading applied on the last move.
func (w *World) Direction() Direction {
	return w.snake.Heading()
}

// Grid returns the board dimensions.
func (w *World) Grid() GridConfig {
	return w.grid
}

// Tick returns the number of movement ticks run so far.
func (w *World) Tick() uint64 {
	return w.tick
}

// Score is the food eaten since the last reset.
func (w *World) Score() int {
	return w.score
}

// Best is the highest score reached in this process.
func (w *World) Best() int {
	return w.best
}

// Won reports whether the board has been filled.
func (w *World) Won() bool {
	return w.won
}

// Stats returns the event counters.
func (w *World) Stats() Stats {
	return w.stats
}

func (w *World) String() string {
	return fmt.Sprintf("tick=%d len=%d head=%s dir=%s food=%v score=%d",
		w.tick, w.snake.Len(), w.snake.Head(), w.snake.Heading(), w.food, w.score)
}
