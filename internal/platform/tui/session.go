package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brickbreak/internal/config"
)

type sessionState int

const (
	stateMenu sessionState = iota
	stateGame
	stateScores
)

// SessionModel manages the full flow: menu -> game -> menu, with the
// scoreboard reachable from the menu. It is the top-level model for SSH
// sessions and for local play without a fixed difficulty.
type SessionModel struct {
	opts     Options // Config is the base config; presets are applied per game
	state    sessionState
	menu     MenuModel
	game     Model
	scores   ScoreboardModel
	keys     *KeyMapper
	started  int // Games started, used to vary fixed seeds
	quitting bool
}

// NewSessionModel creates a session that opens on the difficulty menu with
// the cursor on opts.Preset.
func NewSessionModel(opts Options) SessionModel {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 80, 24
	}
	m := SessionModel{
		opts: opts,
		keys: NewKeyMapper(),
	}
	m.openMenu(opts.Preset)
	return m
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Width = wsm.Width
		m.opts.Height = wsm.Height
	}

	switch m.state {
	case stateGame:
		return m.updateGame(msg)
	case stateScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.scores = NewScoreboardModel(m.opts.Store, m.opts.Logger, m.menu.Cursor(), m.opts.Width, m.opts.Height)
		m.state = stateScores
		return m, m.scores.Init()

	case m.menu.Selected() != nil:
		m.startGame(m.menu.Selected().Preset)
		return m, m.game.Init()
	}

	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Back to the menu only once the game is over, so no tick is in flight
	if km, ok := msg.(tea.KeyMsg); ok && m.keys.MapMenuKey(km) == MenuActionBack && m.game.Snapshot().GameOver {
		m.openMenu(m.game.preset)
		return m, nil
	}

	next, cmd := m.game.Update(msg)
	if game, ok := next.(Model); ok {
		m.game = game
	}
	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && m.keys.MapMenuKey(km) == MenuActionBack {
		m.openMenu(m.scores.Preset())
		return m, nil
	}

	next, cmd := m.scores.Update(msg)
	if scores, ok := next.(ScoreboardModel); ok {
		m.scores = scores
	}
	if m.scores.quitting {
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

func (m *SessionModel) openMenu(cursor config.Preset) {
	m.menu = NewMenuModel(m.opts.Config, cursor, m.bestScores(), m.opts.Width, m.opts.Height)
	m.state = stateMenu
}

func (m *SessionModel) startGame(preset config.Preset) {
	cfg := m.opts.Config
	config.ApplyPreset(&cfg, preset)

	opts := m.opts
	opts.Config = cfg
	opts.Preset = preset
	if opts.Runtime.Seed != 0 {
		opts.Runtime.Seed += int64(m.started)
	}
	m.started++

	m.game = NewModel(opts)
	m.state = stateGame
}

// bestScores loads the high score of every preset. Failures leave gaps.
func (m *SessionModel) bestScores() map[config.Preset]int {
	best := make(map[config.Preset]int)
	if m.opts.Store == nil {
		return best
	}
	for _, p := range config.Presets() {
		score, err := m.opts.Store.HighScore(string(p))
		if err != nil {
			if m.opts.Logger != nil {
				m.opts.Logger.Warn("could not load high score", "preset", p, "error", err)
			}
			continue
		}
		best[p] = score
	}
	return best
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case stateGame:
		return m.game.View()
	case stateScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// RunSession starts the Bubble Tea program on the difficulty menu.
func RunSession(opts Options) error {
	p := tea.NewProgram(
		NewSessionModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
