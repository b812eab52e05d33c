package snake

// Autopilot picks moves for unattended runs: the safe direction that gets
// closest to the food, or any safe direction when there is no food.
// Ties break in the order up, right, down, left so runs stay reproducible.
type Autopilot struct{}

var autopilotOrder = [...]Direction{DirUp, DirRight, DirDown, DirLeft}

// Choose returns the direction to latch before the next movement tick.
func (Autopilot) Choose(w *World) Direction {
	s := w.snake
	head := s.Head()
	food, hasFood := w.CurrentFoodPosition()

	blocked := s.Occupied()
	tail := s.Tail()

	best, bestScore := s.Heading(), -1
	for _, d := range autopilotOrder {
		if d.IsOpposite(s.Heading()) {
			continue
		}
		next := head.Add(d.Delta())
		if !w.grid.Contains(next) {
			continue
		}
		// The tail moves out of the way unless this move eats.
		eats := hasFood && next == food
		if _, hit := blocked[next]; hit && (next != tail || eats) {
			continue
		}
		score := 8 * w.grid.Cells()
		if hasFood {
			score -= 4 * next.Manhattan(food)
		}
		score += freeNeighbours(next, blocked, w.grid)
		if score > bestScore {
			best, bestScore = d, score
		}
	}
	return best
}

// freeNeighbours counts open cells around p, steering away from dead ends.
func freeNeighbours(p Position, blocked map[Position]struct{}, grid GridConfig) int {
	n := 0
	for _, d := range autopilotOrder {
		q := p.Add(d.Delta())
		if _, hit := blocked[q]; !hit && grid.Contains(q) {
			n++
		}
	}
	return n
}
