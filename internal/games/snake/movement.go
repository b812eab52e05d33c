package snake

// Food is the single optional food cell.
type Food struct {
	Pos    Position
	Active bool
}

// Move describes what one movement tick did to the snake.
type Move struct {
	Head      Position
	Vacated   Position // Cell the tail left this tick
	Direction Direction
	Ate       bool
}

// MovementEngine advances a snake one cell per tick.
type MovementEngine struct{}

// Step applies dir, unless it reverses the heading applied last tick, and
// moves the snake. When the new head lands on food the vacated tail cell
// is appended in the same tick, so length grows by exactly one.
func (e MovementEngine) Step(s *Snake, dir Direction, food Food) Move {
	if !dir.Valid() || dir.IsOpposite(s.heading) {
		dir = s.heading
	}
	return e.apply(s, dir, food)
}

// apply moves without validating dir.
func (e MovementEngine) apply(s *Snake, dir Direction, food Food) Move {
	n := len(s.segments)
	vacated := s.segments[n-1]
	newHead := s.segments[0].Add(dir.Delta())

	// Every segment takes its predecessor's old cell
	copy(s.segments[1:], s.segments[:n-1])
	s.segments[0] = newHead
	s.heading = dir

	mv := Move{Head: newHead, Vacated: vacated, Direction: dir}
	if food.Active && food.Pos == newHead {
		s.segments = append(s.segments, vacated)
		mv.Ate = true
	}
	return mv
}
