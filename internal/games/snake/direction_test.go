package snake

import "testing"

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Position
	}{
		{DirUp, Position{X: 0, Y: 1}},
		{DirDown, Position{X: 0, Y: -1}},
		{DirLeft, Position{X: -1, Y: 0}},
		{DirRight, Position{X: 1, Y: 0}},
	}
	for _, tt := range tests {
		if got := tt.dir.Delta(); got != tt.want {
			t.Errorf("%s.Delta() = %v, expected %v", tt.dir, got, tt.want)
		}
		if got := tt.dir.Opposite().Delta(); got != (Position{X: -tt.want.X, Y: -tt.want.Y}) {
			t.Errorf("%s.Opposite() delta = %v", tt.dir, got)
		}
		if !tt.dir.IsOpposite(tt.dir.Opposite()) {
			t.Errorf("%s should be opposite to %s", tt.dir, tt.dir.Opposite())
		}
		if tt.dir.IsOpposite(tt.dir) {
			t.Errorf("%s should not be opposite to itself", tt.dir)
		}
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{"up", DirUp, false},
		{"U", DirUp, false},
		{" down ", DirDown, false},
		{"l", DirLeft, false},
		{"Right", DirRight, false},
		{"north", DirUp, true},
		{"", DirUp, true},
	}
	for _, tt := range tests {
		got, err := ParseDirection(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDirection(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseDirection(%q) = %s, expected %s", tt.in, got, tt.want)
		}
	}
}

func TestManhattan(t *testing.T) {
	a := Position{X: 1, Y: 2}
	b := Position{X: -2, Y: 6}
	if got := a.Manhattan(b); got != 7 {
		t.Errorf("Manhattan = %d, expected 7", got)
	}
	if got := b.Manhattan(a); got != 7 {
		t.Errorf("Manhattan should be symmetric, got %d", got)
	}
}
