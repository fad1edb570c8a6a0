package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brickbreak/internal/brickbreak"
	"github.com/vovakirdan/brickbreak/internal/core"
)

// Smallest terminal the scene is drawn in.
const (
	minCols = 20
	minRows = 6
)

const (
	brickGlyph  = '█'
	paddleGlyph = '▀'
	ballGlyph   = '●'
)

// Projection maps logical arena coordinates onto a block of terminal cells.
// The field starts at row OffsetY and spans Cols x Rows cells.
type Projection struct {
	ArenaW, ArenaH int
	Cols, Rows     int
	OffsetY        int
}

// Rect converts an arena rectangle to the cells it covers. Anything with a
// positive size covers at least one cell, and the result is clipped to the
// field. Rectangles that overshoot an arena edge are clipped first.
func (p Projection) Rect(r core.Rect) core.Rect {
	if p.ArenaW <= 0 || p.ArenaH <= 0 || p.Cols <= 0 || p.Rows <= 0 {
		return core.Rect{}
	}

	x0 := scale(core.Clamp(r.Left(), 0, p.ArenaW), p.ArenaW, p.Cols)
	x1 := scale(core.Clamp(r.Right(), 0, p.ArenaW), p.ArenaW, p.Cols)
	y0 := scale(core.Clamp(r.Top(), 0, p.ArenaH), p.ArenaH, p.Rows)
	y1 := scale(core.Clamp(r.Bottom(), 0, p.ArenaH), p.ArenaH, p.Rows)

	x0 = min(x0, p.Cols-1)
	y0 = min(y0, p.Rows-1)
	x1 = core.Clamp(x1, x0+1, p.Cols)
	y1 = core.Clamp(y1, y0+1, p.Rows)

	return core.NewRect(x0, y0+p.OffsetY, x1-x0, y1-y0)
}

func scale(v, from, to int) int {
	return v * to / from
}

// HUD carries the host-side values drawn around the scene.
type HUD struct {
	Best  int  // Best stored score for the current preset, 0 if unknown
	Modal bool // Whether the game over dialog is raised
}

// DrawScene clears the screen and draws the snapshot: the HUD on row 0 and
// the arena projected onto the remaining rows.
func DrawScene(scr *core.Screen, snap brickbreak.Snapshot, hud HUD) {
	scr.Clear()
	if scr.Width() < minCols || scr.Height() < minRows {
		scr.DrawText(0, 0, "Terminal too small")
		return
	}

	drawHUD(scr, snap.Score, hud.Best)

	proj := Projection{
		ArenaW:  snap.Width,
		ArenaH:  snap.Height,
		Cols:    scr.Width(),
		Rows:    scr.Height() - 1,
		OffsetY: 1,
	}
	for _, b := range snap.Bricks {
		if b.Visible {
			scr.DrawRect(proj.Rect(b.Rect), brickGlyph, b.Color)
		}
	}
	scr.DrawRect(proj.Rect(snap.Paddle), paddleGlyph, core.ColorPaddle)
	scr.DrawRect(proj.Rect(snap.Ball), ballGlyph, core.ColorBall)

	if hud.Modal {
		drawGameOver(scr, snap.Score)
	}
}

func drawHUD(scr *core.Screen, score, best int) {
	left := fmt.Sprintf("Score: %d", score)
	if best > 0 {
		left += fmt.Sprintf("  Best: %d", max(best, score))
	}
	scr.DrawTextColored(0, 0, left, core.ColorHUD)

	hint := "[R] Reset"
	scr.DrawTextColored(scr.Width()-len(hint), 0, hint, core.ColorHUD.Dim())
}

func drawGameOver(scr *core.Screen, score int) {
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("Score: %d", score),
		"[Enter] OK  [R] Reset",
	}
	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}

	box := core.NewRect(0, 0, width+4, len(lines)+2)
	box.X = (scr.Width() - box.W) / 2
	box.Y = (scr.Height() - box.H) / 2

	scr.DrawRect(box, ' ', core.NoColor)
	scr.DrawBox(box, core.ColorGameOver)
	for i, l := range lines {
		c := core.ColorHUD
		if i == 0 {
			c = core.ColorGameOver
		}
		scr.DrawTextColored(box.X+(box.W-len(l))/2, box.Y+1+i, l, c)
	}
}

// Renderer converts Screen buffers to styled strings. Styles are cached per
// color; a Renderer belongs to one session.
type Renderer struct {
	lr     *lipgloss.Renderer
	styles map[core.Color]lipgloss.Style
}

// NewRenderer creates a renderer bound to a lipgloss renderer, which decides
// the color profile. A nil lr uses the default renderer.
func NewRenderer(lr *lipgloss.Renderer) *Renderer {
	if lr == nil {
		lr = lipgloss.DefaultRenderer()
	}
	return &Renderer{
		lr:     lr,
		styles: make(map[core.Color]lipgloss.Style),
	}
}

func (r *Renderer) style(c core.Color) lipgloss.Style {
	if st, ok := r.styles[c]; ok {
		return st
	}
	st := r.lr.NewStyle()
	if c != core.NoColor {
		st = st.Foreground(lipgloss.Color(c.Hex()))
	}
	r.styles[c] = st
	return st
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (r *Renderer) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(r.style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
