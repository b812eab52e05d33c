package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-xenzia/internal/config"
	"github.com/vovakirdan/snake-xenzia/internal/games/snake"
	"github.com/vovakirdan/snake-xenzia/internal/storage"
)

// traceBatch is how many tick records are written per transaction.
const traceBatch = 512

var (
	flagSimMoves  int
	flagSimTrace  string
	flagSimScript string
	flagSimWidth  int
	flagSimHeight int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Run the game without a terminal, as fast as possible, and print a summary.

Without --script the built-in autopilot steers. A script is a list of
directions (U, D, L, R or up, down, left, right) applied one per move;
when it runs out the snake keeps its heading.

With --trace every tick is recorded to a SQLite file for 'snake trace'.

Examples:
  snake sim --ticks 5000 --seed 42
  snake sim --script "L,L,U,U,R" --width 10 --height 10
  snake sim --seed 7 --trace ~/.snake/runs.db`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimMoves, "ticks", 1000, "Movement ticks to run")
	simCmd.Flags().StringVar(&flagSimTrace, "trace", "", "Record ticks to this SQLite file")
	simCmd.Flags().StringVar(&flagSimScript, "script", "", "Comma separated directions, one per move")
	simCmd.Flags().IntVar(&flagSimWidth, "width", 0, "Board width in cells (overrides config)")
	simCmd.Flags().IntVar(&flagSimHeight, "height", 0, "Board height in cells (overrides config)")
}

// simOptions describe one headless run.
type simOptions struct {
	Settings snake.Settings
	Seed     int64
	Moves    int
	Script   []snake.Direction // Nil hands control to the autopilot
}

// simSummary is the outcome of a run.
type simSummary struct {
	Moves      uint64
	Score      int
	Best       int
	Resets     int
	FoodEaten  int
	FoodPlaced int
	Length     int
	Head       snake.Position
	Won        bool
}

// parseScript reads "U,L,down right" into directions.
func parseScript(s string) ([]snake.Direction, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	if len(fields) == 0 {
		return nil, nil
	}
	dirs := make([]snake.Direction, 0, len(fields))
	for i, f := range fields {
		d, err := snake.ParseDirection(f)
		if err != nil {
			return nil, fmt.Errorf("script step %d: %w", i+1, err)
		}
		dirs = append(dirs, d)
	}
	return dirs, nil
}

// simulate runs the world on its own clock, one movement interval per
// step, until opts.Moves moves have run or the board is full. Every tick
// is passed to record when it is non-nil.
func simulate(opts simOptions, record func(storage.TickRecord)) (simSummary, error) {
	world, err := snake.NewWorld(snake.WorldOptions{
		Grid:   opts.Settings.Grid,
		Origin: opts.Settings.Origin,
		Seed:   opts.Seed,
	})
	if err != nil {
		return simSummary{}, err
	}
	clock := snake.NewSimulationClock(opts.Settings.MoveInterval, opts.Settings.FoodInterval)

	var (
		pilot snake.Autopilot
		moves int
		seq   int
	)
	emit := func(rec storage.TickRecord) {
		seq++
		if record == nil {
			return
		}
		rec.Seq = seq
		head := world.Snake().Head()
		rec.HeadX, rec.HeadY = head.X, head.Y
		if p, ok := world.CurrentFoodPosition(); ok {
			rec.FoodX, rec.FoodY, rec.FoodActive = p.X, p.Y, true
		}
		record(rec)
	}

	for moves < opts.Moves && !world.Won() {
		for _, tick := range clock.Advance(clock.MoveInterval()) {
			switch tick {
			case snake.TickMove:
				if moves >= opts.Moves {
					continue
				}
				heading := world.Direction()
				applied := heading
				if d, ok := nextDirection(opts.Script, moves, world, pilot); ok {
					world.SetDirectionIntent(d)
					if !d.IsOpposite(heading) {
						applied = d
					}
				}
				res := world.OnMovementTick()
				moves++
				emit(storage.TickRecord{
					Kind:     snake.TickMove.String(),
					Dir:      applied.String(),
					Length:   len(res.Segments),
					Ate:      res.AteFood,
					GameOver: res.GameOver,
					Won:      res.Won,
				})
			case snake.TickFood:
				world.OnFoodTick()
				emit(storage.TickRecord{
					Kind:   snake.TickFood.String(),
					Length: world.Snake().Len(),
					Won:    world.Won(),
				})
			}
		}
	}

	stats := world.Stats()
	s := world.Snake()
	return simSummary{
		Moves:      stats.Moves,
		Score:      world.Score(),
		Best:       world.Best(),
		Resets:     stats.Resets,
		FoodEaten:  stats.FoodEaten,
		FoodPlaced: stats.FoodPlaced,
		Length:     s.Len(),
		Head:       s.Head(),
		Won:        world.Won(),
	}, nil
}

func nextDirection(script []snake.Direction, move int, w *snake.World, pilot snake.Autopilot) (snake.Direction, bool) {
	if script == nil {
		return pilot.Choose(w), true
	}
	if move < len(script) {
		return script[move], true
	}
	return 0, false
}

// traceWriter buffers records and writes them in batches.
type traceWriter struct {
	store *storage.Store
	runID int64
	buf   []storage.TickRecord
	err   error
}

func (t *traceWriter) add(rec storage.TickRecord) {
	if t.err != nil {
		return
	}
	t.buf = append(t.buf, rec)
	if len(t.buf) >= traceBatch {
		t.flush()
	}
}

func (t *traceWriter) flush() {
	if t.err != nil || len(t.buf) == 0 {
		return
	}
	t.err = t.store.RecordTicks(t.runID, t.buf)
	t.buf = t.buf[:0]
}

func runSim(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	if flagSimWidth > 0 {
		cfg.Board.Width = flagSimWidth
	}
	if flagSimHeight > 0 {
		cfg.Board.Height = flagSimHeight
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	script, err := parseScript(flagSimScript)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	opts := simOptions{
		Settings: snake.SettingsFromConfig(cfg),
		Seed:     seed,
		Moves:    flagSimMoves,
		Script:   script,
	}

	logger, _ := newLogger(cfg.Log, "snake-sim", false)

	var (
		tw     *traceWriter
		record func(storage.TickRecord)
	)
	if flagSimTrace != "" {
		store, err := storage.Open(config.ExpandPath(flagSimTrace))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening trace database: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()

		runID, err := store.BeginRun(seed, cfg.Board.Width, cfg.Board.Height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error starting trace: %v\n", err)
			os.Exit(1)
		}
		tw = &traceWriter{store: store, runID: runID}
		record = tw.add
		logger.Debug("recording trace", "path", flagSimTrace, "run", runID)
	}

	start := time.Now()
	sum, err := simulate(opts, record)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	took := time.Since(start)

	if tw != nil {
		tw.flush()
		if tw.err == nil {
			tw.err = tw.store.FinishRun(tw.runID, storage.RunResult{
				Moves:  int(sum.Moves),
				Score:  sum.Score,
				Best:   sum.Best,
				Resets: sum.Resets,
				Won:    sum.Won,
			})
		}
		if tw.err != nil {
			logger.Error("trace incomplete", "error", tw.err)
		}
	}

	fmt.Printf("Simulation - %dx%d board, seed %d\n", cfg.Board.Width, cfg.Board.Height, seed)
	fmt.Println()
	fmt.Printf("  %-12s %d\n", "Moves", sum.Moves)
	fmt.Printf("  %-12s %d\n", "Score", sum.Score)
	fmt.Printf("  %-12s %d\n", "Best", sum.Best)
	fmt.Printf("  %-12s %d\n", "Resets", sum.Resets)
	fmt.Printf("  %-12s %d/%d\n", "Food eaten", sum.FoodEaten, sum.FoodPlaced)
	fmt.Printf("  %-12s %d\n", "Length", sum.Length)
	fmt.Printf("  %-12s %s\n", "Head", sum.Head)
	fmt.Printf("  %-12s %v\n", "Won", sum.Won)
	fmt.Printf("  %-12s %s\n", "Took", took.Round(time.Microsecond))
	if tw != nil && tw.err == nil {
		fmt.Println()
		fmt.Printf("Trace saved as run %d in %s\n", tw.runID, flagSimTrace)
	}
}
