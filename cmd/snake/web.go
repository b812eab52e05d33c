package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-xenzia/internal/config"
	"github.com/vovakirdan/snake-xenzia/internal/games/snake"
	"github.com/vovakirdan/snake-xenzia/internal/platform/web"
)

var (
	flagWebAddr string
	flagWatch   bool
)

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Start the websocket game server",
	Long: `Start an HTTP server that runs one game per websocket connection.

Endpoints:
  GET /ws                      - Play (JSON messages)
  GET /healthz                 - Liveness and session count
  GET /config                  - Settings new sessions start with
  GET /sessions                - Running sessions
  GET /sessions/<id>/board.png - Board snapshot of one session

With --watch the config file is watched and changes apply to new sessions.

Examples:
  snake web
  snake web --addr :9000
  snake web --config ./snake.yaml --watch`,
	Args: cobra.NoArgs,
	Run:  runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagWebAddr, "addr", "", "HTTP listen address (overrides config)")
	webCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload settings when the config file changes")
}

func runWeb(cmd *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger, _ := newLogger(cfg.Log, "snake-web", false)

	wcfg := web.Config{
		Address:       cfg.Web.Address,
		Settings:      snake.SettingsFromConfig(cfg),
		FrameInterval: time.Second / time.Duration(max(flagFPS, 1)),
		Seed:          flagSeed,
		Watch:         cfg.Web.WatchConfig,
	}
	if flagWebAddr != "" {
		wcfg.Address = flagWebAddr
	}
	if cmd.Flags().Changed("watch") {
		wcfg.Watch = flagWatch
	}
	if wcfg.Watch {
		wcfg.ConfigPath = config.Locate(flagConfig)
		if wcfg.ConfigPath == "" {
			logger.Warn("no config file to watch, using built-in defaults")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Starting snake web server on %s\n", wcfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := web.NewServer(wcfg, logger).Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
