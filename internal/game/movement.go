package game

import (
	"time"

	"pacman/internal/entities"
	"pacman/internal/maze"
)

// NextPosition applies dir's unit offset to pos. Crossing the maze edge on
// the tunnel row wraps to the opposite side; everywhere else the raw
// coordinate is returned and the walkability check rejects it.
func NextPosition(m *maze.Maze, pos entities.Point, dir entities.Direction) entities.Point {
	next := pos.Add(dir)
	if pos.Y == m.TunnelRow {
		if next.X < 0 {
			next.X = m.Width - 1
		} else if next.X >= m.Width {
			next.X = 0
		}
	}
	return next
}

// Mover advances one actor a single grid cell per step interval. It holds
// the queued-turn state for Pacman; ghosts set Dir directly and leave
// Queued empty. Movement decisions are pure grid logic; anything smooth or
// interpolated belongs to the renderer.
type Mover struct {
	Pos      entities.Point
	Dir      entities.Direction
	Queued   entities.Direction
	Interval time.Duration
	Ghost    bool

	accum time.Duration
}

// CanMove reports whether one step in d from the current cell is legal.
func (mv *Mover) CanMove(m *maze.Maze, d entities.Direction) bool {
	if d == entities.DirNone {
		return false
	}
	next := NextPosition(m, mv.Pos, d)
	if mv.Ghost {
		return m.IsWalkableGhost(next.X, next.Y)
	}
	return m.IsWalkable(next.X, next.Y)
}

// Request adopts d immediately when it is legal from the current cell,
// clearing any queued turn; otherwise it queues d for retry on every
// subsequent step. Returns whether the turn was adopted now.
func (mv *Mover) Request(m *maze.Maze, d entities.Direction) bool {
	if d == entities.DirNone {
		return false
	}
	if mv.CanMove(m, d) {
		mv.Dir = d
		mv.Queued = entities.DirNone
		return true
	}
	mv.Queued = d
	return false
}

// Accrue adds elapsed time and returns how many steps fell due. Steps are
// capped so a stalled host clock cannot burst an actor across the maze.
func (mv *Mover) Accrue(dt time.Duration) int {
	mv.accum += dt
	steps := 0
	for mv.accum >= mv.Interval && steps < 4 {
		mv.accum -= mv.Interval
		steps++
	}
	if steps == 4 {
		mv.accum = 0
	}
	return steps
}

// ResetAccum drops partial progress toward the next step, used when the
// actor is repositioned.
func (mv *Mover) ResetAccum() {
	mv.accum = 0
}

// Step performs one grid step: adopt a newly legal queued turn, then move
// one cell if the current direction is legal. A mover wedged against a wall
// stays put (no auto-reverse) until a direction change frees it.
func (mv *Mover) Step(m *maze.Maze) (moved, turned bool) {
	if mv.Queued != entities.DirNone && mv.CanMove(m, mv.Queued) {
		mv.Dir = mv.Queued
		mv.Queued = entities.DirNone
		turned = true
	}
	if mv.CanMove(m, mv.Dir) {
		mv.Pos = NextPosition(m, mv.Pos, mv.Dir)
		moved = true
	}
	return moved, turned
}
