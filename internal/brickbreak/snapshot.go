package brickbreak

import "github.com/vovakirdan/brickbreak/internal/core"

// Snapshot is a read-only copy of everything a host needs to redraw the scene.
type Snapshot struct {
	Tick     uint64
	Width    int
	Height   int
	Ball     core.Rect
	BallVX   int
	BallVY   int
	Paddle   core.Rect
	Bricks   []Brick // All cells, row-major, including hidden ones
	Columns  int     // Bricks per row
	Score    int
	GameOver bool
}

// Snapshot returns the current state without advancing the simulation.
func (g *Game) Snapshot() Snapshot {
	bricks := make([]Brick, len(g.bricks))
	copy(bricks, g.bricks)

	return Snapshot{
		Tick:     g.ticks,
		Width:    g.width,
		Height:   g.height,
		Ball:     g.ball.Rect(),
		BallVX:   g.ball.VX,
		BallVY:   g.ball.VY,
		Paddle:   g.paddle.Rect(),
		Bricks:   bricks,
		Columns:  g.cfg.Bricks.Columns,
		Score:    g.score,
		GameOver: g.phase == PhaseGameOver,
	}
}

// VisibleBricks returns the number of bricks still in play.
func (s *Snapshot) VisibleBricks() int {
	n := 0
	for _, b := range s.Bricks {
		if b.Visible {
			n++
		}
	}
	return n
}

// Brick returns the brick at (row, col), or false if out of range.
func (s *Snapshot) Brick(row, col int) (Brick, bool) {
	if row < 0 || col < 0 || col >= s.Columns {
		return Brick{}, false
	}
	i := row*s.Columns + col
	if i >= len(s.Bricks) {
		return Brick{}, false
	}
	return s.Bricks[i], true
}

// Hash returns a simple hash of the snapshot for determinism testing.
// Brick colors are included, so equal hashes imply equal renders.
func (s *Snapshot) Hash() uint64 {
	h := s.Tick
	for _, v := range []int{
		s.Width, s.Height,
		s.Ball.X, s.Ball.Y, s.Ball.W, s.Ball.H, s.BallVX, s.BallVY,
		s.Paddle.X, s.Paddle.Y, s.Paddle.W, s.Paddle.H,
		s.Score,
	} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	if s.GameOver {
		h = h*31 + 1
	}

	for _, b := range s.Bricks {
		v := uint64(b.Color.R)<<16 | uint64(b.Color.G)<<8 | uint64(b.Color.B)
		if b.Visible {
			v |= 1 << 24
		}
		h = h*31 + v
	}

	return h
}
