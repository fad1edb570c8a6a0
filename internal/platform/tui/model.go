package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickbreak/internal/brickbreak"
	"github.com/vovakirdan/brickbreak/internal/config"
	"github.com/vovakirdan/brickbreak/internal/core"
	"github.com/vovakirdan/brickbreak/internal/storage"
)

// Options configures a terminal game session.
type Options struct {
	Config  config.Config
	Preset  config.Preset
	Runtime core.RuntimeConfig
	Store   *storage.Store // Optional; scores are not persisted when nil
	Logger  *log.Logger    // Optional; defaults to a discarding logger
	Player  string

	// Initial terminal size, replaced by the first WindowSizeMsg.
	Width, Height int

	// Lipgloss renderer for the output the session is drawn on. Nil uses
	// the process default.
	Renderer *lipgloss.Renderer
}

// Model is the Bubble Tea model for one brick breaker session.
type Model struct {
	game     *brickbreak.Game
	snap     brickbreak.Snapshot
	screen   *core.Screen
	renderer *Renderer
	keys     *KeyMapper

	store  *storage.Store
	logger *log.Logger
	player string
	preset config.Preset

	interval time.Duration
	tickGen  int  // Current tick chain; older TickMsgs are dropped
	ticking  bool // Whether a tick chain is running

	best       int
	showModal  bool
	scoreSaved bool
	quitting   bool
}

// NewModel creates a session model and its game.
func NewModel(opts Options) Model {
	rt := opts.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TickInterval <= 0 {
		rt.TickInterval = opts.Config.Timing.TickInterval()
	}
	if rt.ViewportW <= 0 || rt.ViewportH <= 0 {
		rt.ViewportW, rt.ViewportH = opts.Config.Arena.Width, opts.Config.Arena.Height
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	width, height := opts.Width, opts.Height
	if width <= 0 || height <= 0 {
		width, height = 80, 24
	}

	game := brickbreak.New(opts.Config, rt)
	m := Model{
		game:     game,
		snap:     game.Snapshot(),
		screen:   core.NewScreen(width, height),
		renderer: NewRenderer(opts.Renderer),
		keys:     NewKeyMapper(),
		store:    opts.Store,
		logger:   logger,
		player:   opts.Player,
		preset:   opts.Preset,
		interval: rt.TickInterval,
		ticking:  true,
	}

	if m.store != nil {
		best, err := m.store.HighScore(string(m.preset))
		if err != nil {
			m.logger.Warn("could not load high score", "preset", m.preset, "error", err)
		}
		m.best = best
	}

	m.logger.Debug("session created",
		"player", m.player,
		"preset", m.preset,
		"viewport", [2]int{rt.ViewportW, rt.ViewportH},
		"tick", rt.TickInterval,
		"seed", rt.Seed,
	)
	return m
}

// Init starts the first tick chain.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval, m.tickGen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	if dir, ok := action.Direction(); ok {
		m.game.MovePaddle(dir)
		m.snap = m.game.Snapshot()
		return m, nil
	}

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionReset:
		return m.reset()

	case core.ActionAck:
		m.showModal = false
	}

	return m, nil
}

// reset starts a new game and a new tick chain. Ticks still in flight from
// the previous chain carry the old generation and are ignored.
func (m Model) reset() (tea.Model, tea.Cmd) {
	w, h := m.game.Viewport()
	m.game.Reset(w, h)
	m.snap = m.game.Snapshot()

	m.tickGen++
	m.ticking = true
	m.showModal = false
	m.scoreSaved = false

	m.logger.Debug("game reset", "player", m.player, "gen", m.tickGen)
	return m, tickCmd(m.interval, m.tickGen)
}

func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.tickGen || !m.ticking {
		return m, nil
	}

	m.snap = m.game.Tick()

	for _, ev := range m.game.Events() {
		switch ev := ev.(type) {
		case brickbreak.BrickDestroyedEvent:
			m.logger.Debug("brick destroyed", "row", ev.Row, "col", ev.Col, "score", ev.Score)
		case brickbreak.GameOverEvent:
			m.logger.Info("game over", "player", m.player, "preset", m.preset, "score", ev.Score, "ticks", m.snap.Tick)
			m.showModal = true
			m.ticking = false
			m.recordScore(ev.Score)
		}
	}

	if !m.ticking {
		return m, nil
	}
	return m, tickCmd(m.interval, m.tickGen)
}

// recordScore persists a finished game once. Storage failures are logged and
// never interrupt the session.
func (m *Model) recordScore(score int) {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true
	m.best = max(m.best, score)

	if m.store == nil || score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(string(m.preset), m.player, score); err != nil {
		m.logger.Warn("could not save score", "player", m.player, "score", score, "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawScene(m.screen, m.snap, HUD{Best: m.best, Modal: m.showModal})
	return m.renderer.Render(m.screen)
}

// Snapshot returns the state drawn by the last View.
func (m Model) Snapshot() brickbreak.Snapshot {
	return m.snap
}

// IsQuitting returns true if user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// ModalVisible reports whether the game over dialog is raised.
func (m Model) ModalVisible() bool {
	return m.showModal
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
