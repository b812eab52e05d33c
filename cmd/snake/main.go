// snake is a terminal snake game with SSH and browser front ends.
//
// Usage:
//
//	snake play               - Play in this terminal
//	snake serve              - Start SSH server for remote play
//	snake web                - Start websocket server for browser play
//	snake sim                - Run a headless simulation
//	snake trace <db> [run]   - Inspect recorded simulations
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.snake/configs/snake.yaml)
//	--fps <rate>        - Host frame rate (default: 60)
//	--seed <value>      - RNG seed for reproducible gameplay
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-xenzia/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake moves one cell per tick across a bounded board. Eat food to grow,
avoid the walls and your own body, fill the board to win.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  web      - Start websocket server for browser play
  sim      - Run a headless simulation
  trace    - Inspect recorded simulations

Examples:
  snake play
  snake play --difficulty hard
  snake serve --ssh :2222
  snake web --addr :8080 --watch
  snake sim --ticks 5000 --seed 42 --trace runs.db
  snake trace runs.db`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Host frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(traceCmd)
}

// loadConfig reads the configuration and applies the global overrides.
// Errors end the process.
func loadConfig() config.SnakeConfig {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}
