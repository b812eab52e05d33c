package snake

import (
	"errors"
	"math/rand"
	"testing"
)

func TestSpawnFindsLastFreeCell(t *testing.T) {
	grid := DefaultGrid()
	occupied := make(map[Position]struct{}, grid.Cells())
	for y := range grid.Height {
		for x := range grid.Width {
			if x != 0 || y != 0 {
				occupied[Position{X: x, Y: y}] = struct{}{}
			}
		}
	}

	sp := NewFoodSpawner(rand.New(rand.NewSource(7)))
	for i := range 20 {
		p, err := sp.Spawn(occupied, grid)
		if err != nil {
			t.Fatalf("call %d: unexpected error %v", i, err)
		}
		if p != (Position{}) {
			t.Fatalf("call %d: Spawn() = %v, expected the only free cell (0,0)", i, p)
		}
	}
}

func TestSpawnBoardFull(t *testing.T) {
	grid := GridConfig{Width: 2, Height: 2}
	occupied := map[Position]struct{}{
		{0, 0}: {}, {0, 1}: {}, {1, 0}: {}, {1, 1}: {},
	}
	_, err := NewFoodSpawner(rand.New(rand.NewSource(1))).Spawn(occupied, grid)
	if !errors.Is(err, ErrBoardFull) {
		t.Errorf("Spawn() error = %v, expected ErrBoardFull", err)
	}
}

func TestSpawnIgnoresOffBoardCells(t *testing.T) {
	grid := GridConfig{Width: 1, Height: 1}
	occupied := map[Position]struct{}{{5, 5}: {}, {-1, 0}: {}}
	p, err := NewFoodSpawner(rand.New(rand.NewSource(1))).Spawn(occupied, grid)
	if err != nil || p != (Position{}) {
		t.Errorf("Spawn() = %v, %v; expected (0,0)", p, err)
	}
}

func TestSpawnNeverOnSnake(t *testing.T) {
	grid := GridConfig{Width: 6, Height: 6}
	s, err := NewSnake([]Position{
		{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}, {5, 0},
		{5, 1}, {4, 1}, {3, 1}, {2, 1}, {1, 1}, {0, 1},
		{0, 2}, {1, 2}, {2, 2}, {3, 2}, {4, 2}, {5, 2},
	}, DirLeft)
	if err != nil {
		t.Fatal(err)
	}
	occupied := s.Occupied()

	for seed := range int64(50) {
		sp := NewFoodSpawner(rand.New(rand.NewSource(seed)))
		for range 20 {
			p, err := sp.Spawn(occupied, grid)
			if err != nil {
				t.Fatal(err)
			}
			if s.Contains(p) || !grid.Contains(p) {
				t.Fatalf("seed %d: spawned on %v", seed, p)
			}
		}
	}
}

func TestSpawnDeterministic(t *testing.T) {
	grid := DefaultGrid()
	occupied := CanonicalSnake(Position{}).Occupied()
	a := NewFoodSpawner(rand.New(rand.NewSource(99)))
	b := NewFoodSpawner(rand.New(rand.NewSource(99)))
	for i := range 10 {
		pa, _ := a.Spawn(occupied, grid)
		pb, _ := b.Spawn(occupied, grid)
		if pa != pb {
			t.Fatalf("draw %d: %v vs %v with the same seed", i, pa, pb)
		}
	}
}
