//go:build ebiten

package gui

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/brickbreak/internal/brickbreak"
	"github.com/vovakirdan/brickbreak/internal/core"
	"github.com/vovakirdan/brickbreak/internal/storage"
)

// Held-key repeat, in ticks.
const (
	repeatDelay    = 12
	repeatInterval = 3
)

var overlayColor = color.RGBA{A: 0xb0}

// Game adapts a brickbreak game to the ebiten.Game interface.
type Game struct {
	game   *brickbreak.Game
	snap   brickbreak.Snapshot
	store  *storage.Store
	logger *log.Logger
	player string
	preset string

	showOverlay bool
	scoreSaved  bool
}

// New constructs a window host for a fresh game.
func New(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rt := opts.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	game := brickbreak.New(opts.Config, rt)
	return &Game{
		game:   game,
		snap:   game.Snapshot(),
		store:  opts.Store,
		logger: logger,
		player: opts.Player,
		preset: string(opts.Preset),
	}
}

func pressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if keyRepeat(inpututil.KeyPressDuration(k), repeatDelay, repeatInterval) {
			return true
		}
	}
	return false
}

func justPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// Update handles input and advances the simulation by one tick.
func (g *Game) Update() error {
	if justPressed(ebiten.KeyQ, ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if pressed(ebiten.KeyArrowLeft, ebiten.KeyA, ebiten.KeyH) {
		g.game.MovePaddle(core.DirectionLeft)
	}
	if pressed(ebiten.KeyArrowRight, ebiten.KeyD, ebiten.KeyL) {
		g.game.MovePaddle(core.DirectionRight)
	}
	if justPressed(ebiten.KeyR) {
		w, h := g.game.Viewport()
		g.game.Reset(w, h)
		g.showOverlay = false
		g.scoreSaved = false
	}
	if justPressed(ebiten.KeyEnter, ebiten.KeySpace) {
		g.showOverlay = false
	}

	g.snap = g.game.Tick()
	for _, ev := range g.game.Events() {
		if over, ok := ev.(brickbreak.GameOverEvent); ok {
			g.logger.Info("game over", "player", g.player, "preset", g.preset, "score", over.Score)
			g.showOverlay = true
			g.recordScore(over.Score)
		}
	}
	return nil
}

func (g *Game) recordScore(score int) {
	if g.scoreSaved {
		return
	}
	g.scoreSaved = true
	if g.store == nil || score <= 0 {
		return
	}
	if _, err := g.store.SaveScore(g.preset, g.player, score); err != nil {
		g.logger.Warn("could not save score", "score", score, "error", err)
	}
}

func fillRect(dst *ebiten.Image, r core.Rect, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

// Draw renders the current snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	for _, b := range g.snap.Bricks {
		if b.Visible {
			fillRect(screen, b.Rect, b.Color)
		}
	}
	fillRect(screen, g.snap.Paddle, core.ColorPaddle)
	fillRect(screen, g.snap.Ball, core.ColorBall)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", g.snap.Score), 10, 10)

	if g.showOverlay {
		w, h := g.snap.Width, g.snap.Height
		vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), overlayColor, false)
		ebitenutil.DebugPrintAt(screen, "GAME OVER", w/2-27, h/2-20)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", g.snap.Score), w/2-27, h/2)
		ebitenutil.DebugPrintAt(screen, "Enter: OK   R: Reset", w/2-60, h/2+20)
	}
}

// Layout returns the logical screen size, which is the arena.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.game.Viewport()
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	game := New(opts)
	w, h := opts.windowSize()

	ebiten.SetWindowTitle("Brickbreak")
	ebiten.SetTPS(opts.Runtime.TicksPerSecond())
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
