package brickbreak

import "github.com/vovakirdan/brickbreak/internal/core"

// Ball is a square moving at a constant integer velocity.
type Ball struct {
	X, Y   int // Top-left corner
	Size   int // Side length
	VX, VY int // Velocity per tick
}

// Rect returns the ball's bounding box.
func (b *Ball) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.Size, b.Size)
}

// Move updates ball position by velocity.
func (b *Ball) Move() {
	b.X += b.VX
	b.Y += b.VY
}

// BounceX reverses horizontal velocity.
func (b *Ball) BounceX() {
	b.VX = -b.VX
}

// BounceY reverses vertical velocity.
func (b *Ball) BounceY() {
	b.VY = -b.VY
}

// Paddle is the player's paddle. Only X changes during play.
type Paddle struct {
	X, Y int
	W, H int
}

// Rect returns the paddle's bounding box.
func (p *Paddle) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Brick is one cell of the brick grid.
type Brick struct {
	Row, Col int
	Rect     core.Rect
	Color    core.Color
	Visible  bool
}

// wallHit reports which arena edges the ball rectangle touches or crosses.
// The bottom edge is not a wall; it ends the game.
func wallHit(ball core.Rect, arenaW int) (horizontal, top bool) {
	horizontal = ball.Left() <= 0 || ball.Right() >= arenaW
	top = ball.Top() <= 0
	return horizontal, top
}

// firstHit returns the index of the first visible brick intersecting the
// ball, scanning in slice order, or -1.
func firstHit(bricks []Brick, ball core.Rect) int {
	for i := range bricks {
		if bricks[i].Visible && ball.Intersects(bricks[i].Rect) {
			return i
		}
	}
	return -1
}
