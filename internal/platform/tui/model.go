package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-xenzia/internal/core"
	"github.com/vovakirdan/snake-xenzia/internal/games/snake"
)

// helpHeight is the number of rows kept below the game for key help.
const helpHeight = 1

// Options are the optional collaborators of a Model.
type Options struct {
	Logger        *log.Logger
	ScreenshotDir string // Empty disables screenshots
	Player        string // Shown in log lines, e.g. the SSH user
}

// Model is the Bubble Tea model for running the snake game.
type Model struct {
	game       *snake.Game
	screen     *core.Screen
	keys       *KeyMapper
	help       help.Model
	config     core.RuntimeConfig
	opts       Options
	inputFrame core.InputFrame
	gameState  core.GameState
	status     string // One-line message shown instead of help
	statusLeft int    // Frames until status is cleared
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *snake.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	cfg.ScreenH = max(0, cfg.ScreenH-helpHeight)

	logger := opts.Logger.With("player", opts.Player)
	game.OnEvent(func(ev snake.Event) { logEvent(logger, ev) })

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:       NewKeyMapper(),
		help:       h,
		config:     cfg,
		opts:       opts,
		inputFrame: core.NewInputFrame(),
	}
}

// logEvent reports the events worth keeping. Food spawns are too chatty.
func logEvent(logger *log.Logger, ev snake.Event) {
	switch ev.Kind {
	case snake.EventCollision:
		logger.Info("collision", "kind", ev.Collision, "at", ev.Pos, "length", ev.Length, "tick", ev.Tick)
	case snake.EventWon:
		logger.Info("board filled", "length", ev.Length, "tick", ev.Tick)
	case snake.EventAte:
		logger.Debug("ate", "at", ev.Pos, "length", ev.Length)
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.opts.Logger.Info("game started", "player", m.opts.Player, "seed", m.config.Seed,
		"screen", [2]int{m.config.ScreenW, m.config.ScreenH})
	return frameCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys.Keys()
	switch {
	case key.Matches(msg, keys.Screenshot):
		m.status = m.saveScreenshot()
		m.statusLeft = 2 * m.config.TickRate
		return m, nil
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.opts.Logger.Info("game quit", "player", m.opts.Player, "best", m.gameState.Best)
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(0, msg.Height-helpHeight)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	// The board only rebuilds when the fitted grid changes
	m.game.Resize(m.config.ScreenW, m.config.ScreenH)
	return m, nil
}

// handleFrame runs one host frame of simulation.
func (m Model) handleFrame() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	if m.statusLeft > 0 {
		m.statusLeft--
		if m.statusLeft == 0 {
			m.status = ""
		}
	}
	m.gameState = result.State
	m.inputFrame.Clear()
	return m, frameCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	footer := m.help.View(m.keys.Keys())
	if m.status != "" {
		footer = m.status
	}
	return RenderScreen(m.screen) + "\n" + footer
}

// State returns the state after the most recent frame.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given model.
func Run(game *snake.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
