package snake

import "time"

// TickKind identifies which fixed-rate clock fired.
type TickKind int

const (
	TickMove TickKind = iota
	TickFood
)

func (k TickKind) String() string {
	if k == TickFood {
		return "food"
	}
	return "move"
}

// Default cadences of the classic game.
const (
	DefaultMoveInterval = time.Second / 9
	DefaultFoodInterval = 2 * time.Second
)

// maxCatchUp caps how many ticks one Advance call may emit after a stall.
const maxCatchUp = 32

// SimulationClock turns host-loop elapsed time into two independent
// fixed-rate tick streams. It does no waiting of its own.
type SimulationClock struct {
	moveEvery time.Duration
	foodEvery time.Duration
	now       time.Duration
	nextMove  time.Duration
	nextFood  time.Duration
}

// NewSimulationClock creates a clock. Non-positive intervals fall back to
// the defaults.
func NewSimulationClock(moveEvery, foodEvery time.Duration) *SimulationClock {
	if moveEvery <= 0 {
		moveEvery = DefaultMoveInterval
	}
	if foodEvery <= 0 {
		foodEvery = DefaultFoodInterval
	}
	c := &SimulationClock{moveEvery: moveEvery, foodEvery: foodEvery}
	c.Reset()
	return c
}

// Reset restarts both phases from zero.
func (c *SimulationClock) Reset() {
	c.now = 0
	c.nextMove = c.moveEvery
	c.nextFood = c.foodEvery
}

// MoveInterval returns the movement period.
func (c *SimulationClock) MoveInterval() time.Duration {
	return c.moveEvery
}

// FoodInterval returns the food period.
func (c *SimulationClock) FoodInterval() time.Duration {
	return c.foodEvery
}

// Advance moves the clock forward by dt and returns the ticks that became
// due, in time order. A move and a food tick due at the same instant come
// out move first.
func (c *SimulationClock) Advance(dt time.Duration) []TickKind {
	if dt <= 0 {
		return nil
	}
	c.now += dt

	var due []TickKind
	for len(due) < maxCatchUp {
		switch {
		case c.nextMove <= c.now && c.nextMove <= c.nextFood:
			due = append(due, TickMove)
			c.nextMove += c.moveEvery
		case c.nextFood <= c.now:
			due = append(due, TickFood)
			c.nextFood += c.foodEvery
		default:
			return due
		}
	}

	// Drop the backlog rather than replaying it in a burst
	for c.nextMove <= c.now {
		c.nextMove += c.moveEvery
	}
	for c.nextFood <= c.now {
		c.nextFood += c.foodEvery
	}
	return due
}
