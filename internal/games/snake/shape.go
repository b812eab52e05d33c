package snake

// Shape is the drawn form of one segment, derived from its neighbours.
type Shape int

const (
	ShapeBlock Shape = iota // Neighbours not adjacent; never seen in a live snake
	ShapeHeadUp
	ShapeHeadDown
	ShapeHeadLeft
	ShapeHeadRight
	ShapeVertical
	ShapeHorizontal
	ShapeCornerUpLeft
	ShapeCornerUpRight
	ShapeCornerDownLeft
	ShapeCornerDownRight
	ShapeTailUp // Tail sits above the segment before it
	ShapeTailDown
	ShapeTailLeft
	ShapeTailRight
)

var shapeGlyphs = map[Shape]rune{
	ShapeBlock:           '■',
	ShapeHeadUp:          '▲',
	ShapeHeadDown:        '▼',
	ShapeHeadLeft:        '◀',
	ShapeHeadRight:       '▶',
	ShapeVertical:        '║',
	ShapeHorizontal:      '═',
	ShapeCornerUpLeft:    '╝',
	ShapeCornerUpRight:   '╚',
	ShapeCornerDownLeft:  '╗',
	ShapeCornerDownRight: '╔',
	ShapeTailUp:          '╥',
	ShapeTailDown:        '╨',
	ShapeTailLeft:        '╞',
	ShapeTailRight:       '╡',
}

// Glyph returns the box-drawing rune for the shape.
func (s Shape) Glyph() rune {
	if r, ok := shapeGlyphs[s]; ok {
		return r
	}
	return shapeGlyphs[ShapeBlock]
}

// ConnectsRight reports whether the shape has a stroke to the cell on its
// right. The renderer uses it to fill the second column of a cell.
func (s Shape) ConnectsRight() bool {
	switch s {
	case ShapeHorizontal, ShapeCornerUpRight, ShapeCornerDownRight, ShapeTailLeft, ShapeHeadLeft:
		return true
	}
	return false
}

// Shapes derives a shape for every segment of a head-first body.
func Shapes(segments []Position) []Shape {
	n := len(segments)
	shapes := make([]Shape, n)
	if n < 2 {
		for i := range shapes {
			shapes[i] = ShapeBlock
		}
		return shapes
	}
	shapes[0] = headShape(segments[0].Sub(segments[1]))
	for i := 1; i < n-1; i++ {
		shapes[i] = bodyShape(segments[i-1].Sub(segments[i]), segments[i+1].Sub(segments[i]))
	}
	shapes[n-1] = tailShape(segments[n-1].Sub(segments[n-2]))
	return shapes
}

func headShape(delta Position) Shape {
	d, ok := directionOf(delta)
	if !ok {
		return ShapeBlock
	}
	switch d {
	case DirUp:
		return ShapeHeadUp
	case DirDown:
		return ShapeHeadDown
	case DirLeft:
		return ShapeHeadLeft
	default:
		return ShapeHeadRight
	}
}

func tailShape(delta Position) Shape {
	d, ok := directionOf(delta)
	if !ok {
		return ShapeBlock
	}
	switch d {
	case DirUp:
		return ShapeTailUp
	case DirDown:
		return ShapeTailDown
	case DirLeft:
		return ShapeTailLeft
	default:
		return ShapeTailRight
	}
}

// bodyShape joins the links towards the previous and next segments.
func bodyShape(toPrev, toNext Position) Shape {
	a, okA := directionOf(toPrev)
	b, okB := directionOf(toNext)
	if !okA || !okB || a == b {
		return ShapeBlock
	}
	if a.IsOpposite(b) {
		if a == DirUp || a == DirDown {
			return ShapeVertical
		}
		return ShapeHorizontal
	}

	vertical, horizontal := a, b
	if a == DirLeft || a == DirRight {
		vertical, horizontal = b, a
	}
	switch {
	case vertical == DirUp && horizontal == DirLeft:
		return ShapeCornerUpLeft
	case vertical == DirUp:
		return ShapeCornerUpRight
	case horizontal == DirLeft:
		return ShapeCornerDownLeft
	default:
		return ShapeCornerDownRight
	}
}
