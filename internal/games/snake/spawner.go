package snake

import (
	"errors"
	"math/rand"
)

// ErrBoardFull means every cell is taken and no food can be placed.
var ErrBoardFull = errors.New("snake: no unoccupied cell remains")

// minSpawnAttempts bounds rejection sampling on tiny boards.
const minSpawnAttempts = 64

// FoodSpawner draws food cells uniformly from the free part of the board.
type FoodSpawner struct {
	rng *rand.Rand
}

// NewFoodSpawner returns a spawner drawing from rng.
func NewFoodSpawner(rng *rand.Rand) *FoodSpawner {
	return &FoodSpawner{rng: rng}
}

// Spawn returns a uniformly random cell not in occupied.
// Rejection sampling runs for a budget of 4x the board size; if that runs
// out the free cells are listed and one is picked, which keeps the same
// distribution with a hard time bound.
func (f *FoodSpawner) Spawn(occupied map[Position]struct{}, grid GridConfig) (Position, error) {
	taken := 0
	for p := range occupied {
		if grid.Contains(p) {
			taken++
		}
	}
	if taken >= grid.Cells() {
		return Position{}, ErrBoardFull
	}

	attempts := max(minSpawnAttempts, 4*grid.Cells())
	for range attempts {
		p := Position{X: f.rng.Intn(grid.Width), Y: f.rng.Intn(grid.Height)}
		if _, ok := occupied[p]; !ok {
			return p, nil
		}
	}

	free := make([]Position, 0, grid.Cells()-taken)
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			p := Position{X: x, Y: y}
			if _, ok := occupied[p]; !ok {
				free = append(free, p)
			}
		}
	}
	return free[f.rng.Intn(len(free))], nil
}
