package tui

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sprite-run/internal/config"
	"github.com/vovakirdan/sprite-run/internal/core"
	"github.com/vovakirdan/sprite-run/internal/games/spriterun"
	"github.com/vovakirdan/sprite-run/internal/storage"
)

// ModelOptions configures a Model. Zero values pick defaults.
type ModelOptions struct {
	Settings config.Settings
	Runtime  core.RuntimeConfig

	// History records finished runs. May be nil.
	History *storage.Store
	// Scores persists the high score. Defaults to an in-memory slot.
	Scores spriterun.HighScoreStore
	// Clock defaults to the system clock.
	Clock  spriterun.Clock
	Logger *log.Logger
	// ScreenshotDir defaults to ~/.spriterun/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model for one Sprite Run session.
type Model struct {
	game          *spriterun.Game
	sched         *TickScheduler
	screen        *core.Screen
	history       *storage.Store
	logger        *log.Logger
	keys          KeyMap
	help          help.Model
	config        core.RuntimeConfig
	screenshotDir string
	lastShot      string
	recorded      bool // Whether the current game over has been written to history
	quitting      bool
}

// NewModel creates a model in the Idle phase.
func NewModel(opts ModelOptions) Model {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	dir := opts.ScreenshotDir
	if dir == "" {
		dir = filepath.Join(os.Getenv("HOME"), ".spriterun", "screenshots")
	}

	sched := NewTickScheduler(cfg.TickRate)
	game := spriterun.New(opts.Settings, spriterun.Options{
		Clock:     opts.Clock,
		Random:    rand.New(rand.NewSource(cfg.Seed)),
		Scores:    opts.Scores,
		Scheduler: sched,
		Logger:    logger,
	})

	return Model{
		game:          game,
		sched:         sched,
		screen:        core.NewScreen(cfg.ScreenW, core.Max(1, cfg.ScreenH-1)),
		history:       opts.History,
		logger:        logger,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		config:        cfg,
		screenshotDir: dir,
	}
}

// Init sets the window title. Ticks start with the first run.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.game.Title())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		// Last row is reserved for the help line
		m.screen.Resize(msg.Width, core.Max(1, msg.Height-1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey applies input immediately rather than on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	}

	wasRunning := m.game.State().Running
	in := core.NewInputFrame()
	in.Set(action)
	m.game.HandleInput(in)

	if !wasRunning && m.game.State().Running {
		m.recorded = false
	}
	return m, m.sched.Next()
}

// handleTick advances the simulation and records the run once it ends.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.sched.Accept(msg) {
		return m, nil
	}

	state := m.game.Step().State
	if state.GameOver && !m.recorded {
		m.recordRun(state.Score)
		m.recorded = true
	}

	return m, m.sched.Next()
}

// recordRun appends a finished run to the history.
func (m Model) recordRun(score int) {
	if m.history == nil || score <= 0 {
		return
	}
	if _, err := m.history.SaveScore(m.game.ID(), score); err != nil {
		m.logger.Warn("cannot record run", "score", score, "error", err)
	}
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "error", err)
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405.000"))
	path := filepath.Join(m.screenshotDir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	m.lastShot = path
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the playfield and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given options.
func Run(opts ModelOptions) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
