package snake

// DirectionIntent is the latched heading for the next movement tick.
// Writes between ticks overwrite each other; the tick consumes the latest.
type DirectionIntent struct {
	next Direction
}

// NewDirectionIntent returns an intent latched to d.
func NewDirectionIntent(d Direction) DirectionIntent {
	return DirectionIntent{next: d}
}

// Set latches proposed unless it reverses current, the direction the snake
// is actually moving in. Rejected proposals are dropped without trace.
func (i *DirectionIntent) Set(current, proposed Direction) bool {
	if !proposed.Valid() || proposed.IsOpposite(current) {
		return false
	}
	i.next = proposed
	return true
}

// Peek returns the latched direction without consuming it.
func (i DirectionIntent) Peek() Direction {
	return i.next
}

// Consume returns the latched direction. The latch keeps that value, so an
// idle tick repeats the applied heading.
func (i *DirectionIntent) Consume() Direction {
	return i.next
}

// Reset latches d.
func (i *DirectionIntent) Reset(d Direction) {
	i.next = d
}
