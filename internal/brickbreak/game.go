// Package brickbreak implements the brick-breaking simulation.
//
// A Game is owned by exactly one host, which drives it through Tick,
// MovePaddle and Reset from a single dispatch context. The Game never blocks,
// spawns goroutines, or touches I/O.
package brickbreak

import (
	"math/rand/v2"

	"github.com/vovakirdan/brickbreak/internal/config"
	"github.com/vovakirdan/brickbreak/internal/core"
)

// Phase is the game's state machine position.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Game holds the complete simulation state.
type Game struct {
	cfg config.Config
	rng *rand.Rand

	width  int
	height int

	ball   Ball
	paddle Paddle
	bricks []Brick // Row-major: index = row*Columns + col

	score int
	phase Phase
	ticks uint64

	events []Event // Emitted by the most recent Tick
}

// New creates a game for the given viewport. The seed only affects brick
// colors.
func New(cfg config.Config, rt core.RuntimeConfig) *Game {
	seed := uint64(rt.Seed) //#nosec G115 -- intentional conversion for RNG seeding
	g := &Game{
		cfg: cfg,
		rng: rand.New(rand.NewPCG(seed, 0)),
	}
	g.Reset(rt.ViewportW, rt.ViewportH)
	return g
}

// Reset discards all state and starts a fresh game in the given viewport.
func (g *Game) Reset(viewportW, viewportH int) {
	g.width = viewportW
	g.height = viewportH

	pc := g.cfg.Paddle
	g.paddle = Paddle{
		X: (viewportW - pc.Width) / 2,
		Y: viewportH - pc.Height - pc.BottomMargin,
		W: pc.Width,
		H: pc.Height,
	}

	bc := g.cfg.Ball
	g.ball = Ball{
		X:    (viewportW - bc.Size) / 2,
		Y:    viewportH / 2,
		Size: bc.Size,
		VX:   bc.SpeedX,
		VY:   bc.SpeedY,
	}

	g.bricks = g.buildBricks()
	g.score = 0
	g.phase = PhasePlaying
	g.ticks = 0
	g.events = nil
}

// buildBricks lays out a full grid of visible bricks with random colors.
func (g *Game) buildBricks() []Brick {
	bc := g.cfg.Bricks
	bricks := make([]Brick, 0, bc.Rows*bc.Columns)
	for row := range bc.Rows {
		for col := range bc.Columns {
			bricks = append(bricks, Brick{
				Row:     row,
				Col:     col,
				Rect:    core.NewRect(col*bc.Width, row*bc.Height, bc.Width, bc.Height),
				Color:   core.RandomColor(g.rng),
				Visible: true,
			})
		}
	}
	return bricks
}

// Tick advances the simulation by one step and returns the resulting
// snapshot. After game over it changes nothing.
func (g *Game) Tick() Snapshot {
	g.events = nil
	if g.phase == PhaseGameOver {
		return g.Snapshot()
	}
	g.ticks++

	g.ball.Move()
	ball := g.ball.Rect()

	// Walls reverse velocity without pulling the ball back inside, so it can
	// overshoot an edge by up to one step.
	horizontal, top := wallHit(ball, g.width)
	if horizontal {
		g.ball.BounceX()
	}
	if top {
		g.ball.BounceY()
	}

	if ball.Intersects(g.paddle.Rect()) {
		g.ball.BounceY()
	}

	// At most one brick per tick
	if i := firstHit(g.bricks, ball); i >= 0 {
		brick := &g.bricks[i]
		brick.Visible = false
		g.ball.BounceY()
		g.score += g.cfg.Scoring.PointsPerBrick
		g.events = append(g.events, BrickDestroyedEvent{Row: brick.Row, Col: brick.Col, Score: g.score})
	}

	if ball.Bottom() >= g.height {
		g.phase = PhaseGameOver
		g.events = append(g.events, GameOverEvent{Score: g.score})
	}

	return g.Snapshot()
}

// MovePaddle shifts the paddle one step, keeping it inside the arena.
func (g *Game) MovePaddle(dir core.Direction) {
	maxX := max(g.width-g.paddle.W, 0)
	g.paddle.X = core.Clamp(g.paddle.X+dir.Sign()*g.cfg.Paddle.Step, 0, maxX)
}

// Events returns the events emitted by the most recent Tick.
func (g *Game) Events() []Event {
	return g.events
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// GameOver reports whether the ball has left through the bottom edge.
func (g *Game) GameOver() bool {
	return g.phase == PhaseGameOver
}

// Viewport returns the arena size the game was last reset with.
func (g *Game) Viewport() (w, h int) {
	return g.width, g.height
}

// Config returns the configuration the game was created with.
func (g *Game) Config() config.Config {
	return g.cfg
}
