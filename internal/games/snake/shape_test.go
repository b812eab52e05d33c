package snake

import "testing"

func TestShapes(t *testing.T) {
	segments := []Position{{2, 2}, {1, 2}, {1, 1}, {1, 0}, {2, 0}}
	want := []Shape{ShapeHeadRight, ShapeCornerDownRight, ShapeVertical, ShapeCornerUpRight, ShapeTailRight}

	got := Shapes(segments)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("segment %d %v: shape %c, expected %c", i, segments[i], got[i].Glyph(), want[i].Glyph())
		}
	}
}

func TestTailShapes(t *testing.T) {
	tests := []struct {
		tail Position
		want Shape
		rune rune
	}{
		{Position{5, 4}, ShapeTailDown, '╨'},
		{Position{5, 6}, ShapeTailUp, '╥'},
		{Position{4, 5}, ShapeTailLeft, '╞'},
		{Position{6, 5}, ShapeTailRight, '╡'},
	}
	for _, tt := range tests {
		// Head two cells away so the head shape does not matter
		head := Position{X: 5 + (5 - tt.tail.X), Y: 5 + (5 - tt.tail.Y)}
		shapes := Shapes([]Position{head, {5, 5}, tt.tail})
		if shapes[2] != tt.want || shapes[2].Glyph() != tt.rune {
			t.Errorf("tail at %v: got %c, expected %c", tt.tail, shapes[2].Glyph(), tt.rune)
		}
	}
}

func TestCanonicalShapes(t *testing.T) {
	shapes := Shapes(CanonicalSnake(Position{}).segments)
	want := []Shape{ShapeHeadUp, ShapeVertical, ShapeTailDown}
	for i := range want {
		if shapes[i] != want[i] {
			t.Errorf("segment %d: %c, expected %c", i, shapes[i].Glyph(), want[i].Glyph())
		}
	}
}

func TestCornerGlyphs(t *testing.T) {
	center := Position{5, 5}
	tests := []struct {
		a, b Direction
		want rune
	}{
		{DirUp, DirLeft, '╝'},
		{DirLeft, DirUp, '╝'},
		{DirUp, DirRight, '╚'},
		{DirDown, DirLeft, '╗'},
		{DirRight, DirDown, '╔'},
	}
	for _, tt := range tests {
		segs := []Position{center.Add(tt.a.Delta()), center, center.Add(tt.b.Delta())}
		if got := Shapes(segs)[1].Glyph(); got != tt.want {
			t.Errorf("%s/%s: got %c, expected %c", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestConnectsRight(t *testing.T) {
	if !ShapeHorizontal.ConnectsRight() || !ShapeHeadLeft.ConnectsRight() || !ShapeTailLeft.ConnectsRight() {
		t.Error("shapes with a right stroke should connect right")
	}
	if ShapeVertical.ConnectsRight() || ShapeHeadRight.ConnectsRight() || ShapeCornerUpLeft.ConnectsRight() {
		t.Error("shapes without a right stroke should not connect right")
	}
}
