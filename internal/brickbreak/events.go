package brickbreak

// Event is something a tick wants its host to react to.
type Event interface {
	event()
}

// BrickDestroyedEvent is emitted when a brick disappears.
type BrickDestroyedEvent struct {
	Row, Col int
	Score    int // Score after the brick was counted
}

func (BrickDestroyedEvent) event() {}

// GameOverEvent is emitted exactly once, on the tick the ball reaches the
// bottom edge.
type GameOverEvent struct {
	Score int
}

func (GameOverEvent) event() {}
