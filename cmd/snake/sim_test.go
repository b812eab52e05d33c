package main

import (
	"path/filepath"
	"slices"
	"testing"

	"github.com/vovakirdan/snake-xenzia/internal/games/snake"
	"github.com/vovakirdan/snake-xenzia/internal/storage"
)

func TestParseScript(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []snake.Direction
		wantErr bool
	}{
		{"empty", "", nil, false},
		{"letters", "U,L,D,R", []snake.Direction{snake.DirUp, snake.DirLeft, snake.DirDown, snake.DirRight}, false},
		{"mixed separators", "up, left  down,\tright,", []snake.Direction{snake.DirUp, snake.DirLeft, snake.DirDown, snake.DirRight}, false},
		{"unknown step", "U,x", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseScript(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseScript(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("parseScript(%q) = %v, expected %v", tt.input, got, tt.want)
			}
		})
	}
}

func simSettings(w, h int) snake.Settings {
	s := snake.DefaultSettings()
	s.Grid = snake.GridConfig{Width: w, Height: h}
	return s
}

func TestSimulateDeterministic(t *testing.T) {
	run := func() (simSummary, []storage.TickRecord) {
		var recs []storage.TickRecord
		sum, err := simulate(simOptions{Settings: simSettings(16, 16), Seed: 42, Moves: 500},
			func(r storage.TickRecord) { recs = append(recs, r) })
		if err != nil {
			t.Fatal(err)
		}
		return sum, recs
	}

	a, recsA := run()
	b, recsB := run()
	if a != b {
		t.Errorf("summaries differ:\n%+v\n%+v", a, b)
	}
	if !slices.Equal(recsA, recsB) {
		t.Error("same seed should record the same ticks")
	}
	if a.Moves != 500 {
		t.Errorf("Moves = %d, expected 500", a.Moves)
	}
	if a.FoodPlaced == 0 {
		t.Error("500 moves span several food ticks")
	}
}

func TestSimulateRecordsSequence(t *testing.T) {
	var recs []storage.TickRecord
	sum, err := simulate(simOptions{Settings: simSettings(12, 12), Seed: 3, Moves: 100},
		func(r storage.TickRecord) { recs = append(recs, r) })
	if err != nil {
		t.Fatal(err)
	}

	moves := 0
	for i, r := range recs {
		if r.Seq != i+1 {
			t.Fatalf("record %d has seq %d", i, r.Seq)
		}
		switch r.Kind {
		case "move":
			moves++
		case "food":
			if !r.FoodActive && !r.Won {
				t.Errorf("food tick %d left no food on the board", r.Seq)
			}
		default:
			t.Errorf("unexpected kind %q", r.Kind)
		}
	}
	if uint64(moves) != sum.Moves {
		t.Errorf("recorded %d moves, summary says %d", moves, sum.Moves)
	}
}

func TestSimulateScriptIntoWall(t *testing.T) {
	var recs []storage.TickRecord
	sum, err := simulate(simOptions{
		Settings: simSettings(5, 5),
		Seed:     1,
		Moves:    1,
		Script:   []snake.Direction{snake.DirLeft},
	}, func(r storage.TickRecord) { recs = append(recs, r) })
	if err != nil {
		t.Fatal(err)
	}

	if sum.Resets != 1 || sum.Length != 3 {
		t.Errorf("summary = %+v, expected one reset back to length 3", sum)
	}
	if sum.Head != (snake.Position{X: 0, Y: 2}) {
		t.Errorf("head = %s, expected the canonical head (0,2)", sum.Head)
	}
	if len(recs) != 1 || !recs[0].GameOver || recs[0].Dir != "left" {
		t.Errorf("records = %+v, expected one fatal left move", recs)
	}
}

func TestSimulateScriptRunsOut(t *testing.T) {
	sum, err := simulate(simOptions{
		Settings: simSettings(10, 10),
		Seed:     1,
		Moves:    3,
		Script:   []snake.Direction{snake.DirRight},
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if sum.Head != (snake.Position{X: 3, Y: 2}) {
		t.Errorf("head = %s, expected (3,2) after keeping the heading", sum.Head)
	}
}

func TestSimulateWinStops(t *testing.T) {
	// A 1x3 board is full from the start; the first food tick wins.
	sum, err := simulate(simOptions{Settings: simSettings(1, 3), Seed: 1, Moves: 1000}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !sum.Won {
		t.Fatal("expected a win on a full board")
	}
	if sum.Moves >= 1000 {
		t.Errorf("Moves = %d, expected the run to stop at the win", sum.Moves)
	}
}

func TestSimulateInvalidBoard(t *testing.T) {
	if _, err := simulate(simOptions{Settings: simSettings(2, 2), Moves: 1}, nil); err == nil {
		t.Error("a board without room for the snake should be rejected")
	}
}

func TestTraceWriter(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	runID, err := store.BeginRun(9, 8, 8)
	if err != nil {
		t.Fatal(err)
	}
	tw := &traceWriter{store: store, runID: runID}
	sum, err := simulate(simOptions{Settings: simSettings(8, 8), Seed: 9, Moves: 700}, tw.add)
	if err != nil {
		t.Fatal(err)
	}
	tw.flush()
	if tw.err != nil {
		t.Fatalf("trace: %v", tw.err)
	}

	ticks, err := store.Ticks(runID)
	if err != nil {
		t.Fatal(err)
	}
	moves := 0
	for _, tk := range ticks {
		if tk.Kind == "move" {
			moves++
		}
	}
	if uint64(moves) != sum.Moves {
		t.Errorf("stored %d moves, expected %d", moves, sum.Moves)
	}
	if len(ticks) <= traceBatch {
		t.Errorf("stored %d ticks, expected more than one batch", len(ticks))
	}
}
