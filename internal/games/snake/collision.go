package snake

// Collision classifies the outcome of a post-move check.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionSelf
	CollisionBoundary
)

func (c Collision) String() string {
	switch c {
	case CollisionSelf:
		return "self"
	case CollisionBoundary:
		return "boundary"
	default:
		return "none"
	}
}

// CollisionDetector checks the head against the board edge and the body.
// Food is never an obstacle.
type CollisionDetector struct{}

// Check inspects the snake after a move. It never mutates the snake.
func (CollisionDetector) Check(s *Snake, grid GridConfig) Collision {
	head := s.Head()
	if !grid.Contains(head) {
		return CollisionBoundary
	}
	for _, seg := range s.segments[1:] {
		if seg == head {
			return CollisionSelf
		}
	}
	return CollisionNone
}
