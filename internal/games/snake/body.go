package snake

import (
	"errors"
	"fmt"
)

// ErrInvalidSnake is returned when a segment list breaks the body invariants.
var ErrInvalidSnake = errors.New("snake: invalid body")

// Snake is the ordered body, head at index 0, plus the applied heading.
// It exclusively owns its segment slice; callers only ever get copies.
type Snake struct {
	segments []Position
	heading  Direction
}

// NewSnake builds a snake from head-first segments. The body must have at
// least two cells, each adjacent to the next, with no cell repeated.
func NewSnake(segments []Position, heading Direction) (*Snake, error) {
	if len(segments) < 2 {
		return nil, fmt.Errorf("%w: length %d", ErrInvalidSnake, len(segments))
	}
	if !heading.Valid() {
		return nil, fmt.Errorf("%w: heading %d", ErrInvalidSnake, heading)
	}
	for i := 1; i < len(segments); i++ {
		if segments[i].Manhattan(segments[i-1]) != 1 {
			return nil, fmt.Errorf("%w: gap between %s and %s", ErrInvalidSnake, segments[i-1], segments[i])
		}
	}
	s := &Snake{
		segments: append(make([]Position, 0, len(segments)+8), segments...),
		heading:  heading,
	}
	if !s.distinct() {
		return nil, fmt.Errorf("%w: overlapping segments", ErrInvalidSnake)
	}
	return s, nil
}

// canonicalSegments is the starting body: vertical, tail on origin, head on top.
func canonicalSegments(origin Position) []Position {
	return []Position{
		{X: origin.X, Y: origin.Y + 2}, // Head
		{X: origin.X, Y: origin.Y + 1},
		origin,
	}
}

// CanonicalSnake returns the three-segment snake heading up from origin.
func CanonicalSnake(origin Position) *Snake {
	segs := canonicalSegments(origin)
	return &Snake{
		segments: append(make([]Position, 0, 16), segs...),
		heading:  DirUp,
	}
}

// Head returns the head position.
func (s *Snake) Head() Position {
	return s.segments[0]
}

// Tail returns the last segment.
func (s *Snake) Tail() Position {
	return s.segments[len(s.segments)-1]
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.segments)
}

// Heading returns the direction applied on the most recent move.
func (s *Snake) Heading() Direction {
	return s.heading
}

// Segments returns a copy of the body, head first.
func (s *Snake) Segments() []Position {
	out := make([]Position, len(s.segments))
	copy(out, s.segments)
	return out
}

// Contains reports whether any segment occupies p.
func (s *Snake) Contains(p Position) bool {
	for _, seg := range s.segments {
		if seg == p {
			return true
		}
	}
	return false
}

// Occupied returns the set of cells covered by the body.
func (s *Snake) Occupied() map[Position]struct{} {
	set := make(map[Position]struct{}, len(s.segments))
	for _, seg := range s.segments {
		set[seg] = struct{}{}
	}
	return set
}

// Clone returns an independent copy.
func (s *Snake) Clone() *Snake {
	return &Snake{
		segments: append(make([]Position, 0, cap(s.segments)), s.segments...),
		heading:  s.heading,
	}
}

// distinct reports whether all segments are pairwise distinct.
func (s *Snake) distinct() bool {
	seen := make(map[Position]struct{}, len(s.segments))
	for _, seg := range s.segments {
		if _, dup := seen[seg]; dup {
			return false
		}
		seen[seg] = struct{}{}
	}
	return true
}
