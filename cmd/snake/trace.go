package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-xenzia/internal/config"
	"github.com/vovakirdan/snake-xenzia/internal/storage"
)

var flagTraceLimit int

var traceCmd = &cobra.Command{
	Use:   "trace <file.db> [run-id]",
	Short: "Show recorded simulations",
	Long: `List the runs recorded by 'snake sim --trace', newest first, or print
every tick of one run.

Examples:
  snake trace runs.db
  snake trace runs.db 3`,
	Args: cobra.RangeArgs(1, 2),
	Run:  runTrace,
}

func init() {
	traceCmd.Flags().IntVar(&flagTraceLimit, "limit", 20, "Number of runs to list")
}

func runTrace(_ *cobra.Command, args []string) {
	path := config.ExpandPath(args[0])
	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening trace database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 1 {
		if err := listRuns(store); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	id, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid run id %q\n", args[1])
		os.Exit(1)
	}
	if err := showRun(store, id); err != nil {
		if errors.Is(err, storage.ErrRunNotFound) {
			fmt.Fprintf(os.Stderr, "Error: no run %d in %s\n", id, args[0])
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func listRuns(store *storage.Store) error {
	runs, err := store.Runs(flagTraceLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Record one with 'snake sim --trace <file.db>'.")
		return nil
	}

	fmt.Printf("  %-4s  %-20s  %-7s  %-16s  %-6s  %-5s  %-4s  %-6s  %s\n",
		"ID", "Seed", "Board", "Started", "Moves", "Score", "Best", "Resets", "Result")
	for _, r := range runs {
		fmt.Printf("  %-4d  %-20d  %-7s  %-16s  %-6d  %-5d  %-4d  %-6d  %s\n",
			r.ID, r.Seed, fmt.Sprintf("%dx%d", r.Width, r.Height),
			r.StartedAt.Format("2006-01-02 15:04"), r.Moves, r.Score, r.Best, r.Resets, runResult(r))
	}
	return nil
}

func runResult(r storage.Run) string {
	switch {
	case r.FinishedAt.IsZero():
		return "unfinished"
	case r.Won:
		return "won"
	default:
		return "done"
	}
}

func showRun(store *storage.Store, id int64) error {
	run, err := store.RunByID(id)
	if err != nil {
		return err
	}
	ticks, err := store.Ticks(id)
	if err != nil {
		return err
	}

	fmt.Printf("Run %d - %dx%d board, seed %d, %s\n", run.ID, run.Width, run.Height, run.Seed, runResult(run))
	fmt.Println()
	fmt.Printf("  %-6s  %-4s  %-5s  %-8s  %-6s  %-8s  %s\n", "Seq", "Kind", "Dir", "Head", "Length", "Food", "Events")
	for _, t := range ticks {
		food := "-"
		if t.FoodActive {
			food = fmt.Sprintf("(%d,%d)", t.FoodX, t.FoodY)
		}
		fmt.Printf("  %-6d  %-4s  %-5s  %-8s  %-6d  %-8s  %s\n",
			t.Seq, t.Kind, t.Dir, fmt.Sprintf("(%d,%d)", t.HeadX, t.HeadY), t.Length, food, tickEvents(t))
	}
	fmt.Println()
	fmt.Printf("Moves: %d  Score: %d  Best: %d  Resets: %d\n", run.Moves, run.Score, run.Best, run.Resets)
	return nil
}

func tickEvents(t storage.TickRecord) string {
	var out string
	add := func(s string) {
		if out != "" {
			out += ","
		}
		out += s
	}
	if t.Ate {
		add("ate")
	}
	if t.GameOver {
		add("crash")
	}
	if t.Won {
		add("won")
	}
	return out
}
