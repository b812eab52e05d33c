package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snake-xenzia/internal/config"
	"github.com/vovakirdan/snake-xenzia/internal/core"
	"github.com/vovakirdan/snake-xenzia/internal/games/snake"
	"github.com/vovakirdan/snake-xenzia/internal/platform/tui"
)

var (
	flagDifficulty    string
	flagWidth         int
	flagHeight        int
	flagScreenshotDir string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD  - Steer
  P/Space      - Pause
  R            - Restart
  Ctrl+S       - Screenshot (text and PNG)
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - 6 moves per second
  normal - 9 moves per second
  hard   - 14 moves per second

Examples:
  snake play
  snake play --difficulty hard
  snake play --width 20 --height 15
  snake play --seed 42 --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().IntVar(&flagWidth, "width", 0, "Board width in cells (overrides config)")
	playCmd.Flags().IntVar(&flagHeight, "height", 0, "Board height in cells (overrides config)")
	playCmd.Flags().StringVar(&flagScreenshotDir, "screenshots", "~/.snake/screenshots", "Screenshot directory (empty disables)")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	if err := config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagWidth > 0 {
		cfg.Board.Width = flagWidth
	}
	if flagHeight > 0 {
		cfg.Board.Height = flagHeight
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closer := newLogger(cfg.Log, "snake", true)
	defer closer.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rcfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game := snake.NewGame(snake.SettingsFromConfig(cfg))
	opts := tui.Options{Logger: logger}
	if flagScreenshotDir != "" {
		opts.ScreenshotDir = config.ExpandPath(flagScreenshotDir)
	}

	logger.Debug("settings", "board", fmt.Sprintf("%dx%d", cfg.Board.Width, cfg.Board.Height),
		"move_interval", cfg.Timing.MoveInterval, "seed", flagSeed)
	if err := tui.Run(game, rcfg, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}

	best := game.State().Best
	logger.Info("game ended", "best", best)
	fmt.Printf("Best: %d\n", best)
}
