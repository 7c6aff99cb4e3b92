package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/quadbreak/internal/core"
	"github.com/vovakirdan/quadbreak/internal/registry"
	"github.com/vovakirdan/quadbreak/internal/storage"
)

// Model is the Bubble Tea model for running a game. Each host frame it
// measures the real time since the previous one and hands it, together with
// the keys pressed in between, to the game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	palette    Palette
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	player     string
	randomSeed bool // Pick a fresh seed on every restart
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	loop       uint64
	lastTick   time.Time
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the current run has been recorded
}

// ModelOption customizes a Model.
type ModelOption func(*Model)

// WithStore records finished runs in store.
func WithStore(store *storage.Store) ModelOption {
	return func(m *Model) { m.store = store }
}

// WithLogger sets the logger used for game events.
func WithLogger(logger *log.Logger) ModelOption {
	return func(m *Model) { m.logger = logger }
}

// WithPlayer names the player in stored runs.
func WithPlayer(name string) ModelOption {
	return func(m *Model) { m.player = name }
}

// WithPalette sets the color styles used by View.
func WithPalette(p Palette) ModelOption {
	return func(m *Model) { m.palette = p }
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		palette:    defaultPalette,
		logger:     log.New(io.Discard),
		config:     cfg,
		randomSeed: cfg.Seed == 0,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		loop:       nextLoop(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.randomSeed {
		m.config.Seed = time.Now().UnixNano()
	}

	// The game is a pointer behind the interface, so resetting here is
	// visible to every copy of the model.
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	return m
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("run started", "game", m.game.ID(), "seed", m.config.Seed, "fps", m.config.FrameRate)
	return tickCmd(m.config.FrameRate, m.loop)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick(msg.At)
	}

	return m, nil
}

// handleKey collects actions for the next frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		return m.quit()
	}

	// Back leaves only from a paused or finished run
	if m.inputFrame.Has(core.ActionBack) && (m.gameState.Paused || m.gameState.GameOver) {
		m.backToMenu = true
		return m.quit()
	}

	return m, nil
}

// handleResize keeps the run going at the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one host frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	elapsed := frameElapsed(m.lastTick, now)
	m.lastTick = now

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.restart()
		return m, tickCmd(m.config.FrameRate, m.loop)
	}

	result := m.game.Advance(elapsed, m.inputFrame)
	m.gameState = result.State
	for _, e := range result.Events {
		m.logger.Debug(e.Name, e.Fields...)
	}

	if m.gameState.GameOver && !m.runSaved {
		m.saveRun(storage.EndCleared)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.FrameRate, m.loop)
}

// restart begins a new run, with a new seed unless one was fixed.
func (m *Model) restart() {
	if m.randomSeed {
		m.config.Seed = time.Now().UnixNano()
	}
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.runSaved = false
	m.inputFrame.Clear()
	m.logger.Info("run restarted", "seed", m.config.Seed)
}

// quit records an unfinished run and stops the program. A session host
// checks BackToMenu before honoring the returned command.
func (m Model) quit() (tea.Model, tea.Cmd) {
	if !m.runSaved {
		m.saveRun(storage.EndQuit)
	}
	m.quitting = true
	return m, tea.Quit
}

// saveRun records the current run. Runs that scored nothing are skipped.
func (m *Model) saveRun(reason string) {
	m.runSaved = true

	summary := m.game.Summary()
	if m.store == nil || summary.Score <= 0 {
		return
	}

	id, err := m.store.SaveRun(storage.Run{
		GameID:          m.game.ID(),
		Player:          m.player,
		Seed:            m.config.Seed,
		Score:           summary.Score,
		BricksDestroyed: summary.BricksDestroyed,
		BallsLost:       summary.BallsLost,
		Ticks:           summary.Ticks,
		Cleared:         summary.Cleared,
		EndReason:       reason,
	})
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
		return
	}
	m.logger.Info("run saved", "id", id, "score", summary.Score, "reason", reason)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.palette.Render(m.screen)
}

// BackToMenu reports whether the player left with the back key rather than
// quitting.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting reports whether the model has stopped.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// State returns the game state as of the last frame.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts ...ModelOption) error {
	model := NewModel(game, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
