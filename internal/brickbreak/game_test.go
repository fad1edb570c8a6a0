package brickbreak

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/brickbreak/internal/config"
	"github.com/vovakirdan/brickbreak/internal/core"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	return New(config.Default(), core.RuntimeConfig{
		ViewportW: 800,
		ViewportH: 600,
		Seed:      42,
	})
}

// placeBall puts the ball at (x, y) with velocity (vx, vy).
func placeBall(g *Game, x, y, vx, vy int) {
	g.ball.X, g.ball.Y = x, y
	g.ball.VX, g.ball.VY = vx, vy
}

func countGameOverEvents(events []Event) int {
	n := 0
	for _, e := range events {
		if _, ok := e.(GameOverEvent); ok {
			n++
		}
	}
	return n
}

func TestNewGameLayout(t *testing.T) {
	g := newTestGame(t)
	snap := g.Snapshot()

	if snap.Ball != core.NewRect(395, 300, 10, 10) {
		t.Errorf("ball = %+v, expected centered at (395, 300)", snap.Ball)
	}
	cx, cy := snap.Ball.Center()
	if core.Abs(cx-400) > 5 || core.Abs(cy-300) > 5 {
		t.Errorf("ball center = (%d, %d), expected about (400, 300)", cx, cy)
	}
	if snap.BallVX != 4 || snap.BallVY != 4 {
		t.Errorf("ball velocity = (%d, %d), expected (4, 4)", snap.BallVX, snap.BallVY)
	}
	if snap.Paddle != core.NewRect(350, 580, 100, 10) {
		t.Errorf("paddle = %+v, expected (350, 580, 100, 10)", snap.Paddle)
	}
	if len(snap.Bricks) != 50 {
		t.Fatalf("expected 50 bricks, got %d", len(snap.Bricks))
	}
	if snap.VisibleBricks() != 50 {
		t.Errorf("expected all 50 bricks visible, got %d", snap.VisibleBricks())
	}
	if snap.Score != 0 || snap.GameOver || snap.Tick != 0 {
		t.Errorf("fresh game should have score 0, no game over, tick 0; got %d, %v, %d",
			snap.Score, snap.GameOver, snap.Tick)
	}
	if g.Phase() != PhasePlaying {
		t.Errorf("fresh game should be playing, got %s", g.Phase())
	}
}

func TestBrickGridRowMajor(t *testing.T) {
	g := newTestGame(t)
	snap := g.Snapshot()

	for i, b := range snap.Bricks {
		row, col := i/10, i%10
		if b.Row != row || b.Col != col {
			t.Fatalf("brick %d is (%d, %d), expected (%d, %d)", i, b.Row, b.Col, row, col)
		}
		want := core.NewRect(col*75, row*20, 75, 20)
		if b.Rect != want {
			t.Errorf("brick (%d, %d) rect = %+v, expected %+v", row, col, b.Rect, want)
		}
	}

	b, ok := snap.Brick(2, 3)
	if !ok || b.Row != 2 || b.Col != 3 {
		t.Errorf("Brick(2, 3) = %+v, %v", b, ok)
	}
	if _, ok := snap.Brick(5, 0); ok {
		t.Error("Brick(5, 0) should be out of range")
	}
	if _, ok := snap.Brick(0, 10); ok {
		t.Error("Brick(0, 10) should be out of range")
	}
}

func TestTickMovesBall(t *testing.T) {
	g := newTestGame(t)

	snap := g.Tick()
	if snap.Ball.X != 399 || snap.Ball.Y != 304 {
		t.Errorf("ball after one tick = (%d, %d), expected (399, 304)", snap.Ball.X, snap.Ball.Y)
	}
	if snap.Tick != 1 {
		t.Errorf("tick counter = %d, expected 1", snap.Tick)
	}
}

func TestWallBounce(t *testing.T) {
	tests := []struct {
		name           string
		x, y, vx, vy   int
		wantX, wantY   int
		wantVX, wantVY int
	}{
		{
			name: "left wall crossed",
			x:    1, y: 100, vx: -4, vy: 4,
			wantX: -3, wantY: 104, wantVX: 4, wantVY: 4,
		},
		{
			name: "left edge exactly zero",
			x:    4, y: 100, vx: -4, vy: 4,
			wantX: 0, wantY: 104, wantVX: 4, wantVY: 4,
		},
		{
			name: "near left wall moving away",
			x:    1, y: 100, vx: 4, vy: 4,
			wantX: 5, wantY: 104, wantVX: 4, wantVY: 4,
		},
		{
			name: "right wall crossed",
			x:    789, y: 200, vx: 4, vy: 4,
			wantX: 793, wantY: 204, wantVX: -4, wantVY: 4,
		},
		{
			name: "right edge exactly width",
			x:    786, y: 200, vx: 4, vy: -4,
			wantX: 790, wantY: 196, wantVX: -4, wantVY: -4,
		},
		{
			name: "top wall crossed right of the grid",
			x:    780, y: 2, vx: 4, vy: -4,
			wantX: 784, wantY: -2, wantVX: 4, wantVY: 4,
		},
		{
			name: "open space",
			x:    400, y: 300, vx: -4, vy: -4,
			wantX: 396, wantY: 296, wantVX: -4, wantVY: -4,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t)
			placeBall(g, tc.x, tc.y, tc.vx, tc.vy)

			snap := g.Tick()

			// Position always moves by the old velocity; no clamping
			if snap.Ball.X != tc.wantX || snap.Ball.Y != tc.wantY {
				t.Errorf("position = (%d, %d), expected (%d, %d)", snap.Ball.X, snap.Ball.Y, tc.wantX, tc.wantY)
			}
			if snap.BallVX != tc.wantVX || snap.BallVY != tc.wantVY {
				t.Errorf("velocity = (%d, %d), expected (%d, %d)", snap.BallVX, snap.BallVY, tc.wantVX, tc.wantVY)
			}
			if snap.Score != 0 || snap.VisibleBricks() != 50 {
				t.Error("wall bounce should not touch bricks")
			}
		})
	}
}

func TestWallBounceOvershoot(t *testing.T) {
	g := newTestGame(t)
	placeBall(g, 2, 300, -4, 4)

	// Overshoots past zero and is not pulled back
	snap := g.Tick()
	if snap.Ball.X != -2 || snap.BallVX != 4 {
		t.Fatalf("expected overshoot to x=-2 with vx=4, got x=%d vx=%d", snap.Ball.X, snap.BallVX)
	}

	// Next tick the ball is still at the edge, so vx flips again
	snap = g.Tick()
	if snap.Ball.X != 2 || snap.BallVX != -4 {
		t.Errorf("expected x=2 with vx=-4 on the following tick, got x=%d vx=%d", snap.Ball.X, snap.BallVX)
	}
}

func TestPaddleBounce(t *testing.T) {
	g := newTestGame(t)
	placeBall(g, 400, 568, 4, 4)

	snap := g.Tick()
	if snap.Ball.Y != 572 {
		t.Fatalf("ball y = %d, expected 572", snap.Ball.Y)
	}
	if snap.BallVY != -4 {
		t.Errorf("paddle hit should flip vy to -4, got %d", snap.BallVY)
	}
	if snap.BallVX != 4 {
		t.Errorf("paddle hit should not change vx, got %d", snap.BallVX)
	}
	if snap.GameOver {
		t.Error("paddle hit should not end the game")
	}
}

func TestPaddleMissIsGameOver(t *testing.T) {
	g := newTestGame(t)
	placeBall(g, 100, 586, 4, 4)

	snap := g.Tick()
	if snap.Ball.Bottom() != 600 {
		t.Fatalf("ball bottom = %d, expected 600", snap.Ball.Bottom())
	}
	if !snap.GameOver || !g.GameOver() || g.Phase() != PhaseGameOver {
		t.Fatal("ball reaching the bottom edge should end the game")
	}
	if n := countGameOverEvents(g.Events()); n != 1 {
		t.Errorf("expected exactly one game over event, got %d", n)
	}
}

func TestGameOverIsTerminal(t *testing.T) {
	g := newTestGame(t)
	placeBall(g, 100, 590, 4, 4)

	first := g.Tick()
	if !first.GameOver {
		t.Fatal("expected game over")
	}
	if n := countGameOverEvents(g.Events()); n != 1 {
		t.Fatalf("expected one game over event, got %d", n)
	}

	for i := 0; i < 10; i++ {
		next := g.Tick()
		if !reflect.DeepEqual(first, next) {
			t.Fatalf("tick %d after game over changed the snapshot", i)
		}
		if next.Hash() != first.Hash() {
			t.Fatalf("tick %d after game over changed the hash", i)
		}
		if len(g.Events()) != 0 {
			t.Fatalf("tick %d after game over emitted events: %v", i, g.Events())
		}
	}
}

func TestBrickCollision(t *testing.T) {
	g := newTestGame(t)
	placeBall(g, 30, 5, 4, 4)

	snap := g.Tick()

	b, _ := snap.Brick(0, 0)
	if b.Visible {
		t.Error("brick (0, 0) should be destroyed")
	}
	if snap.Score != 10 {
		t.Errorf("score = %d, expected 10", snap.Score)
	}
	if snap.BallVY != -4 {
		t.Errorf("brick hit should flip vy to -4, got %d", snap.BallVY)
	}
	if snap.VisibleBricks() != 49 {
		t.Errorf("exactly one brick should disappear, %d visible", snap.VisibleBricks())
	}

	events := g.Events()
	if len(events) != 1 {
		t.Fatalf("expected one event, got %d", len(events))
	}
	ev, ok := events[0].(BrickDestroyedEvent)
	if !ok || ev.Row != 0 || ev.Col != 0 || ev.Score != 10 {
		t.Errorf("unexpected event %#v", events[0])
	}
}

func TestBrickCollisionFirstMatchOnly(t *testing.T) {
	g := newTestGame(t)
	// Lands on the corner shared by bricks (0,0), (0,1), (1,0) and (1,1)
	placeBall(g, 66, 10, 4, 4)

	snap := g.Tick()

	if snap.VisibleBricks() != 49 {
		t.Fatalf("only one brick may be destroyed per tick, %d visible", snap.VisibleBricks())
	}
	if b, _ := snap.Brick(0, 0); b.Visible {
		t.Error("row-major scan should destroy brick (0, 0) first")
	}
	for _, rc := range [][2]int{{0, 1}, {1, 0}, {1, 1}} {
		if b, _ := snap.Brick(rc[0], rc[1]); !b.Visible {
			t.Errorf("brick (%d, %d) should survive this tick", rc[0], rc[1])
		}
	}
	if snap.Score != 10 {
		t.Errorf("score = %d, expected 10", snap.Score)
	}
}

func TestHiddenBrickIsSkipped(t *testing.T) {
	g := newTestGame(t)
	g.bricks[0].Visible = false
	placeBall(g, 66, 10, 4, 4)

	snap := g.Tick()

	if b, _ := snap.Brick(0, 1); b.Visible {
		t.Error("with (0, 0) gone the scan should stop at (0, 1)")
	}
	if b, _ := snap.Brick(0, 0); b.Visible {
		t.Error("hidden brick must stay hidden")
	}
	if snap.VisibleBricks() != 48 {
		t.Errorf("expected 48 visible bricks, got %d", snap.VisibleBricks())
	}
}

func TestMovePaddle(t *testing.T) {
	g := newTestGame(t)

	g.MovePaddle(core.DirectionLeft)
	if x := g.Snapshot().Paddle.X; x != 330 {
		t.Errorf("paddle x after one left = %d, expected 330", x)
	}

	for i := 0; i < 30; i++ {
		g.MovePaddle(core.DirectionLeft)
	}
	if x := g.Snapshot().Paddle.X; x != 0 {
		t.Errorf("paddle should stop at 0, got %d", x)
	}

	for i := 0; i < 50; i++ {
		g.MovePaddle(core.DirectionRight)
		if x := g.Snapshot().Paddle.X; x < 0 || x > 700 {
			t.Fatalf("paddle x = %d outside [0, 700]", x)
		}
	}
	if x := g.Snapshot().Paddle.X; x != 700 {
		t.Errorf("paddle should stop at 700, got %d", x)
	}

	before := g.Snapshot()
	g.MovePaddle(core.DirectionRight)
	after := g.Snapshot()
	if after.Paddle != before.Paddle {
		t.Error("moving into the wall should have no effect")
	}
	if after.Ball != before.Ball || after.Score != before.Score {
		t.Error("paddle movement must not affect ball or score")
	}
}

func TestMovePaddleClampsOddStep(t *testing.T) {
	cfg := config.Default()
	cfg.Paddle.Step = 33
	g := New(cfg, core.RuntimeConfig{ViewportW: 800, ViewportH: 600})

	for i := 0; i < 20; i++ {
		g.MovePaddle(core.DirectionRight)
	}
	if x := g.Snapshot().Paddle.X; x != 700 {
		t.Errorf("paddle should clamp to 700, got %d", x)
	}
}

func TestReset(t *testing.T) {
	g := newTestGame(t)
	placeBall(g, 30, 5, 4, 4)
	g.Tick()
	g.MovePaddle(core.DirectionLeft)
	placeBall(g, 100, 590, 4, 4)
	g.Tick()
	if !g.GameOver() || g.Score() != 10 {
		t.Fatalf("setup failed: game over %v, score %d", g.GameOver(), g.Score())
	}

	g.Reset(1024, 768)
	snap := g.Snapshot()

	if snap.GameOver || g.Phase() != PhasePlaying {
		t.Error("reset should return to playing")
	}
	if snap.Score != 0 || snap.Tick != 0 {
		t.Errorf("reset should clear score and tick, got %d, %d", snap.Score, snap.Tick)
	}
	if snap.VisibleBricks() != 50 {
		t.Errorf("reset should restore all bricks, got %d", snap.VisibleBricks())
	}
	if snap.Paddle != core.NewRect(462, 748, 100, 10) {
		t.Errorf("paddle after reset = %+v", snap.Paddle)
	}
	if snap.Ball != core.NewRect(507, 384, 10, 10) || snap.BallVX != 4 || snap.BallVY != 4 {
		t.Errorf("ball after reset = %+v v=(%d, %d)", snap.Ball, snap.BallVX, snap.BallVY)
	}
	if w, h := g.Viewport(); w != 1024 || h != 768 {
		t.Errorf("viewport = %dx%d, expected 1024x768", w, h)
	}
	if len(g.Events()) != 0 {
		t.Error("reset should drop pending events")
	}

	// Ticks work again
	if next := g.Tick(); next.Tick != 1 || next.Ball.X != 511 {
		t.Errorf("tick after reset = %d, ball x %d", next.Tick, next.Ball.X)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g := newTestGame(t)
	snap := g.Snapshot()
	snap.Bricks[0].Visible = false

	if fresh := g.Snapshot(); !fresh.Bricks[0].Visible {
		t.Error("mutating a snapshot must not affect the game")
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := newTestGame(t)
		var snap Snapshot
		for i := 0; i < 500; i++ {
			if i%7 < 3 {
				g.MovePaddle(core.DirectionLeft)
			} else if i%7 == 4 {
				g.MovePaddle(core.DirectionRight)
			}
			snap = g.Tick()
		}
		return snap
	}

	a, b := run(), run()
	if a.Hash() != b.Hash() {
		t.Errorf("determinism failed: hashes differ. Run1=%d, Run2=%d", a.Hash(), b.Hash())
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("determinism failed: snapshots differ")
	}
}

// TestTrackedPlay plays a long game with a paddle that follows the
// ball and checks the per-tick rules on every step.
func TestTrackedPlay(t *testing.T) {
	g := newTestGame(t)
	prev := g.Snapshot()
	destroyed := 0
	everHidden := make(map[int]bool)
	gameOverEvents := 0

	for i := 0; i < 5000 && !prev.GameOver; i++ {
		ballCX, _ := prev.Ball.Center()
		paddleCX, _ := prev.Paddle.Center()
		switch {
		case ballCX < paddleCX-10:
			g.MovePaddle(core.DirectionLeft)
		case ballCX > paddleCX+10:
			g.MovePaddle(core.DirectionRight)
		}

		snap := g.Tick()

		if snap.Ball.X != prev.Ball.X+prev.BallVX || snap.Ball.Y != prev.Ball.Y+prev.BallVY {
			t.Fatalf("tick %d: ball moved from (%d, %d) to (%d, %d) with velocity (%d, %d)",
				snap.Tick, prev.Ball.X, prev.Ball.Y, snap.Ball.X, snap.Ball.Y, prev.BallVX, prev.BallVY)
		}

		hitWall := snap.Ball.Left() <= 0 || snap.Ball.Right() >= 800
		flipped := snap.BallVX == -prev.BallVX
		if hitWall != flipped {
			t.Fatalf("tick %d: vx flip %v but wall contact %v", snap.Tick, flipped, hitWall)
		}
		if snap.BallVX == 0 || snap.BallVY == 0 {
			t.Fatalf("tick %d: velocity component became zero", snap.Tick)
		}

		if snap.Paddle.X < 0 || snap.Paddle.X > 700 {
			t.Fatalf("tick %d: paddle x %d out of range", snap.Tick, snap.Paddle.X)
		}

		newlyHidden := 0
		for idx, b := range snap.Bricks {
			if everHidden[idx] && b.Visible {
				t.Fatalf("tick %d: brick %d became visible again", snap.Tick, idx)
			}
			if !b.Visible && !everHidden[idx] {
				everHidden[idx] = true
				newlyHidden++
			}
		}
		if newlyHidden > 1 {
			t.Fatalf("tick %d: %d bricks destroyed in one tick", snap.Tick, newlyHidden)
		}
		destroyed += newlyHidden

		if snap.Score != 10*destroyed {
			t.Fatalf("tick %d: score %d after %d bricks", snap.Tick, snap.Score, destroyed)
		}
		gameOverEvents += countGameOverEvents(g.Events())

		prev = snap
	}

	if destroyed == 0 {
		t.Error("expected the tracked paddle to keep the ball alive long enough to break bricks")
	}
	if prev.GameOver && gameOverEvents != 1 {
		t.Errorf("expected one game over event, got %d", gameOverEvents)
	}
	if !prev.GameOver && gameOverEvents != 0 {
		t.Errorf("game over event without game over")
	}
}
