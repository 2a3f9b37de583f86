package game

import (
	"testing"
	"time"

	"pacman/internal/entities"
	"pacman/internal/maze"
)

func TestNextPositionTunnelWraparound(t *testing.T) {
	m := maze.Default()
	row := m.TunnelRow

	left := NextPosition(m, entities.Point{X: 0, Y: row}, entities.DirLeft)
	if left != (entities.Point{X: m.Width - 1, Y: row}) {
		t.Fatalf("left wrap: got %v, want (%d,%d)", left, m.Width-1, row)
	}
	right := NextPosition(m, entities.Point{X: m.Width - 1, Y: row}, entities.DirRight)
	if right != (entities.Point{X: 0, Y: row}) {
		t.Fatalf("right wrap: got %v, want (0,%d)", right, row)
	}

	// Round trip: both wrapped destinations are walkable.
	if !m.IsWalkable(left.X, left.Y) || !m.IsWalkable(right.X, right.Y) {
		t.Fatal("wrapped tunnel destinations must be walkable")
	}

	// Off the tunnel row the raw coordinate comes back and is rejected.
	off := NextPosition(m, entities.Point{X: 0, Y: 1}, entities.DirLeft)
	if off != (entities.Point{X: -1, Y: 1}) {
		t.Fatalf("expected raw out-of-bounds position off the tunnel row, got %v", off)
	}
	if m.IsWalkable(off.X, off.Y) {
		t.Fatal("out-of-bounds cell off the tunnel row must not be walkable")
	}
}

func TestMoverStepsThroughTunnel(t *testing.T) {
	m := maze.Default()
	mv := &Mover{Pos: entities.Point{X: 0, Y: m.TunnelRow}, Dir: entities.DirLeft, Interval: time.Second}
	moved, _ := mv.Step(m)
	if !moved {
		t.Fatal("expected tunnel step to succeed")
	}
	if mv.Pos != (entities.Point{X: m.Width - 1, Y: m.TunnelRow}) {
		t.Fatalf("expected wrap to far edge, got %v", mv.Pos)
	}
}

func TestMoverHaltsAgainstWall(t *testing.T) {
	m := maze.Default()
	// (1,1) has walls above and to the left.
	mv := &Mover{Pos: entities.Point{X: 1, Y: 1}, Dir: entities.DirUp, Interval: time.Second}
	for i := 0; i < 3; i++ {
		moved, _ := mv.Step(m)
		if moved {
			t.Fatalf("mover walked into a wall on step %d, pos %v", i, mv.Pos)
		}
	}
	if mv.Pos != (entities.Point{X: 1, Y: 1}) {
		t.Fatalf("halted mover must stay put, got %v", mv.Pos)
	}
	if mv.Dir != entities.DirUp {
		t.Fatalf("halted mover must not auto-reverse, got %v", mv.Dir)
	}
}

func TestMoverAdoptsQueuedDirection(t *testing.T) {
	m := maze.Default()
	mv := &Mover{Pos: entities.Point{X: 1, Y: 1}, Dir: entities.DirUp, Interval: time.Second}

	// Blocked upward; queue a legal turn.
	if adopted := mv.Request(m, entities.DirUp); adopted {
		t.Fatal("up should not be adoptable at (1,1)")
	}
	mv.Dir = entities.DirUp
	if adopted := mv.Request(m, entities.DirDown); !adopted {
		// Down is legal from (1,1), so Request adopts it immediately.
		t.Fatal("down should be adopted immediately at (1,1)")
	}
	if mv.Queued != entities.DirNone {
		t.Fatalf("adoption must clear the queue, got %v", mv.Queued)
	}
}

func TestMoverQueuedTurnAdoptedOnLaterStep(t *testing.T) {
	m := maze.Default()
	// Start at (2,1) heading right along the top corridor. Queue a down
	// turn, illegal until the mover reaches an opening.
	mv := &Mover{Pos: entities.Point{X: 2, Y: 1}, Dir: entities.DirRight, Interval: time.Second}
	if adopted := mv.Request(m, entities.DirDown); adopted {
		t.Fatal("down should not be legal at (2,1)")
	}
	if mv.Queued != entities.DirDown {
		t.Fatalf("expected queued down, got %v", mv.Queued)
	}

	for i := 0; i < m.Width; i++ {
		moved, turned := mv.Step(m)
		if turned {
			if mv.Dir != entities.DirDown {
				t.Fatalf("expected to adopt queued down, got %v", mv.Dir)
			}
			if mv.Queued != entities.DirNone {
				t.Fatal("queue must be cleared on adoption")
			}
			return
		}
		if !moved {
			t.Fatalf("mover stalled at %v before finding the opening", mv.Pos)
		}
	}
	t.Fatal("queued turn never became legal along the corridor")
}

func TestMoverAccrue(t *testing.T) {
	mv := &Mover{Interval: 200 * time.Millisecond}
	if got := mv.Accrue(100 * time.Millisecond); got != 0 {
		t.Fatalf("expected 0 steps at half an interval, got %d", got)
	}
	if got := mv.Accrue(100 * time.Millisecond); got != 1 {
		t.Fatalf("expected 1 step once the interval elapses, got %d", got)
	}
	if got := mv.Accrue(450 * time.Millisecond); got != 2 {
		t.Fatalf("expected 2 steps for 450ms, got %d", got)
	}
	// A huge stall is capped rather than bursting the actor.
	if got := mv.Accrue(time.Hour); got != 4 {
		t.Fatalf("expected capped steps, got %d", got)
	}
}

func TestGhostMoverEntersHouse(t *testing.T) {
	m := maze.Default()
	c := m.HouseCenter
	ghost := &Mover{Pos: entities.Point{X: c.X, Y: c.Y - 1}, Dir: entities.DirDown, Interval: time.Second, Ghost: true}
	pac := &Mover{Pos: entities.Point{X: c.X, Y: c.Y - 1}, Dir: entities.DirDown, Interval: time.Second}
	if !ghost.CanMove(m, entities.DirDown) {
		t.Fatal("ghost should be able to enter the house")
	}
	if pac.CanMove(m, entities.DirDown) {
		t.Fatal("pacman must not be able to enter the house")
	}
}
