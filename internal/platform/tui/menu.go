package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brickbreak/internal/config"
)

// MenuItem is one selectable difficulty.
type MenuItem struct {
	Preset config.Preset
	Title  string
	Detail string
}

// MenuModel is the Bubble Tea model for the difficulty picker.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	best      map[config.Preset]int
	keyMapper *KeyMapper

	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel creates a menu with the cursor on start. base is the config
// before any preset is applied; each item describes what its preset changes.
func NewMenuModel(base config.Config, start config.Preset, best map[config.Preset]int, width, height int) MenuModel {
	presets := config.Presets()
	items := make([]MenuItem, 0, len(presets))
	cursor := 0

	for i, p := range presets {
		cfg := base
		config.ApplyPreset(&cfg, p)
		items = append(items, MenuItem{
			Preset: p,
			Title:  strings.ToUpper(string(p)),
			Detail: fmt.Sprintf("ball %d/%d, paddle %d", cfg.Ball.SpeedX, cfg.Ball.SpeedY, cfg.Paddle.Width),
		})
		if p == start {
			cursor = i
		}
	}

	return MenuModel{
		items:     items,
		cursor:    cursor,
		width:     width,
		height:    height,
		best:      best,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapMenuKey(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		selected := m.items[m.cursor]
		m.selected = &selected
		return m, tea.Quit

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("B R I C K B R E A K", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a difficulty", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := fmt.Sprintf("  %-7s %s", item.Title, item.Detail)
		if best := m.best[item.Preset]; best > 0 {
			line += fmt.Sprintf("  best %d", best)
		}
		if i == m.cursor {
			line = "> " + line[2:]
			b.WriteString(activeStyle.Render(centerText(line, m.width)))
		} else {
			b.WriteString(centerText(line, m.width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(centerText("Up/Down: Navigate  |  Enter: Play  |  Tab: Scores  |  Q: Quit", m.width)))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen item, or nil if none was chosen.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Cursor returns the preset under the cursor.
func (m MenuModel) Cursor() config.Preset {
	return m.items[m.cursor].Preset
}
