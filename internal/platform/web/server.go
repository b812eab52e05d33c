// Package web serves the snake game over HTTP: one websocket per game,
// plus a few JSON and PNG endpoints for inspection.
package web

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/vovakirdan/snake-xenzia/internal/config"
	"github.com/vovakirdan/snake-xenzia/internal/games/snake"
	"github.com/vovakirdan/snake-xenzia/internal/platform/boardimg"
)

// Config holds configuration for the web server.
type Config struct {
	Address       string
	Settings      snake.Settings
	FrameInterval time.Duration // Host loop period of every session
	Seed          int64         // Zero seeds sessions from the clock
	ConfigPath    string        // File to watch for setting changes
	Watch         bool
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Address:       ":8080",
		Settings:      snake.DefaultSettings(),
		FrameInterval: time.Second / 60,
	}
}

// Server hosts websocket games. Settings changes apply to new sessions.
type Server struct {
	cfg      Config
	logger   *log.Logger
	engine   *gin.Engine
	settings atomic.Pointer[snake.Settings]
	nextID   atomic.Uint64

	ctx    context.Context // Cancelled on shutdown; parents every session
	cancel context.CancelFunc

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewServer creates a server. A nil logger discards output.
func NewServer(cfg Config, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.FrameInterval <= 0 {
		cfg.FrameInterval = DefaultConfig().FrameInterval
	}

	gin.SetMode(gin.ReleaseMode)
	s := &Server{
		cfg:      cfg,
		logger:   logger,
		engine:   gin.New(),
		sessions: make(map[string]*Session),
	}
	s.ctx, s.cancel = context.WithCancel(context.Background())
	settings := cfg.Settings
	s.settings.Store(&settings)

	s.engine.Use(gin.Recovery(), s.requestLogger())
	s.engine.GET("/healthz", s.handleHealth)
	s.engine.GET("/config", s.handleConfig)
	s.engine.GET("/sessions", s.handleSessions)
	s.engine.GET("/sessions/:id/board.png", s.handleBoard)
	s.engine.GET("/ws", s.handleWS)
	return s
}

// Handler exposes the routes, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Settings returns the settings new sessions start with.
func (s *Server) Settings() snake.Settings {
	return *s.settings.Load()
}

// SetSettings replaces the settings for sessions created from now on.
func (s *Server) SetSettings(settings snake.Settings) {
	s.settings.Store(&settings)
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Address,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	if s.cfg.Watch && s.cfg.ConfigPath != "" {
		go s.watchConfig(ctx)
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("starting web server", "address", s.cfg.Address)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		s.cancel()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("web: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	s.cancel() // Hijacked websockets are not covered by Shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// Close ends every running session.
func (s *Server) Close() {
	s.cancel()
}

func (s *Server) watchConfig(ctx context.Context) {
	s.logger.Info("watching config", "path", s.cfg.ConfigPath)
	err := config.Watch(ctx, s.cfg.ConfigPath,
		func(c config.SnakeConfig) {
			s.SetSettings(snake.SettingsFromConfig(c))
			s.logger.Info("config reloaded", "board", fmt.Sprintf("%dx%d", c.Board.Width, c.Board.Height),
				"move_interval", c.Timing.MoveInterval)
		},
		func(err error) {
			s.logger.Warn("config reload failed", "error", err)
		},
	)
	if err != nil {
		s.logger.Error("config watcher stopped", "error", err)
	}
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"took", time.Since(start),
		)
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	s.mu.Lock()
	n := len(s.sessions)
	s.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{"status": "ok", "sessions": n})
}

func (s *Server) handleConfig(c *gin.Context) {
	st := s.Settings()
	c.JSON(http.StatusOK, gin.H{
		"grid":             GridInfo{Width: st.Grid.Width, Height: st.Grid.Height},
		"origin":           toPoint(st.Origin),
		"move_interval_ms": st.MoveInterval.Milliseconds(),
		"food_interval_ms": st.FoodInterval.Milliseconds(),
	})
}

func (s *Server) handleSessions(c *gin.Context) {
	s.mu.Lock()
	sessions := make([]*Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		sessions = append(sessions, sess)
	}
	s.mu.Unlock()

	infos := make([]SessionInfo, 0, len(sessions))
	for _, sess := range sessions {
		var info SessionInfo
		if err := sess.query(c.Request.Context(), func(s *Session) { info = s.info() }); err != nil {
			continue // Ended while we were asking
		}
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	c.JSON(http.StatusOK, infos)
}

func (s *Server) handleBoard(c *gin.Context) {
	s.mu.Lock()
	sess, ok := s.sessions[c.Param("id")]
	s.mu.Unlock()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no such session"})
		return
	}

	block, _ := strconv.Atoi(c.DefaultQuery("block", strconv.Itoa(boardimg.DefaultBlockSize)))
	block = min(max(block, 4), 64)

	var board boardimg.Board
	if err := sess.query(c.Request.Context(), func(s *Session) { board = boardimg.FromWorld(s.world) }); err != nil {
		c.JSON(http.StatusGone, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Type", "image/png")
	c.Status(http.StatusOK)
	if err := boardimg.EncodePNG(c.Writer, board, block); err != nil {
		s.logger.Warn("board render failed", "session", sess.id, "error", err)
	}
}

// handleWS upgrades the connection and runs the session until the client
// leaves or the server stops.
func (s *Server) handleWS(c *gin.Context) {
	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.logger.Warn("upgrade failed", "remote", c.ClientIP(), "error", err)
		return
	}

	n := s.nextID.Add(1)
	id := "s" + strconv.FormatUint(n, 10)
	seed := s.cfg.Seed + int64(n)
	if s.cfg.Seed == 0 {
		seed = time.Now().UnixNano()
	}

	conn := newClientConn(ws)
	sess, err := newSession(id, c.ClientIP(), s.Settings(), seed, s.cfg.FrameInterval, conn, s.logger)
	if err != nil {
		s.logger.Error("cannot start session", "error", err)
		ws.Close()
		return
	}

	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()

	s.mu.Lock()
	s.sessions[id] = sess
	active := len(s.sessions)
	s.mu.Unlock()
	s.logger.Info("session started", "session", id, "remote", sess.remote, "seed", seed, "active", active)

	go conn.writePump()
	go conn.readPump(sess.input, cancel)
	sess.run(ctx)

	s.mu.Lock()
	delete(s.sessions, id)
	active = len(s.sessions)
	s.mu.Unlock()
	s.logger.Info("session ended", "session", id, "best", sess.world.Best(), "active", active)
}
