package snake

import (
	"errors"
	"testing"
)

func TestNewSnakeValidation(t *testing.T) {
	tests := []struct {
		name     string
		segments []Position
		heading  Direction
		wantErr  bool
	}{
		{"valid", []Position{{5, 5}, {5, 4}}, DirUp, false},
		{"too short", []Position{{5, 5}}, DirUp, true},
		{"gap", []Position{{5, 5}, {5, 3}}, DirUp, true},
		{"diagonal", []Position{{5, 5}, {4, 4}}, DirUp, true},
		{"overlap", []Position{{1, 1}, {1, 2}, {2, 2}, {2, 1}, {1, 1}}, DirUp, true},
		{"bad heading", []Position{{5, 5}, {5, 4}}, Direction(9), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSnake(tt.segments, tt.heading)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewSnake() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidSnake) {
				t.Errorf("error should wrap ErrInvalidSnake, got %v", err)
			}
		})
	}
}

func TestCanonicalSnake(t *testing.T) {
	s := CanonicalSnake(Position{X: 4, Y: 1})
	want := []Position{{4, 3}, {4, 2}, {4, 1}}
	assertSegments(t, s.Segments(), want)
	if s.Heading() != DirUp {
		t.Errorf("heading = %s, expected up", s.Heading())
	}
	if s.Len() != CanonicalLength {
		t.Errorf("Len() = %d, expected %d", s.Len(), CanonicalLength)
	}
}

func TestSegmentsReturnsCopy(t *testing.T) {
	s := CanonicalSnake(Position{})
	segs := s.Segments()
	segs[0] = Position{X: 99, Y: 99}
	if s.Head() == segs[0] {
		t.Error("mutating Segments() result must not affect the snake")
	}

	clone := s.Clone()
	MovementEngine{}.Step(clone, DirUp, Food{})
	if s.Head() == clone.Head() {
		t.Error("moving a clone must not move the original")
	}
}

func TestGridValidate(t *testing.T) {
	if err := DefaultGrid().Validate(Position{}); err != nil {
		t.Errorf("default grid should be valid: %v", err)
	}
	if err := (GridConfig{Width: 0, Height: 5}).Validate(Position{}); err == nil {
		t.Error("zero width should fail")
	}
	err := (GridConfig{Width: 5, Height: 2}).Validate(Position{})
	if !errors.Is(err, ErrGridTooSmall) {
		t.Errorf("height 2 cannot hold the starting snake, got %v", err)
	}
	if err := (GridConfig{Width: 5, Height: 5}).Validate(Position{X: 0, Y: 3}); !errors.Is(err, ErrGridTooSmall) {
		t.Errorf("origin too high should fail, got %v", err)
	}
}

func assertSegments(t *testing.T, got, want []Position) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("segments = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("segments = %v, expected %v", got, want)
		}
	}
}
