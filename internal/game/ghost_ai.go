package game

import (
	"math"
	"math/rand"
	"time"

	"pacman/internal/entities"
	"pacman/internal/maze"
)

const (
	// phaseDuration is one leg of the alternating scatter/chase cycle.
	phaseDuration = 7 * time.Second

	// ambushLead is how many cells an ambush ghost aims ahead of Pacman.
	ambushLead = 4

	ghostStepInterval = 200 * time.Millisecond
	fleeStepInterval  = 300 * time.Millisecond
	eatenStepInterval = 100 * time.Millisecond
)

// GhostAI drives one ghost: its mode state machine layered on a Mover, and
// its personality-specific target selection. Direction is re-evaluated at
// every step and immediately on mode changes.
type GhostAI struct {
	Ghost *entities.Ghost
	Mover *Mover
	rng   *rand.Rand
}

func newGhostAI(g *entities.Ghost, rng *rand.Rand) *GhostAI {
	return &GhostAI{
		Ghost: g,
		Mover: &Mover{Pos: g.Pos, Dir: g.Dir, Interval: ghostStepInterval, Ghost: true},
		rng:   rng,
	}
}

// cyclePhase is the scatter/chase phase the session clock dictates.
func cyclePhase(now time.Duration) entities.GhostMode {
	if (now/phaseDuration)%2 == 0 {
		return entities.ModeScatter
	}
	return entities.ModeChase
}

func (ai *GhostAI) setMode(m entities.GhostMode) bool {
	if ai.Ghost.Mode == m {
		return false
	}
	ai.Ghost.Mode = m
	switch m {
	case entities.ModeFlee:
		ai.Mover.Interval = fleeStepInterval
	case entities.ModeEaten:
		ai.Mover.Interval = eatenStepInterval
	default:
		ai.Mover.Interval = ghostStepInterval
	}
	return true
}

// enterFlee puts a ghost into its vulnerable fleeing state, reversing it on
// the spot. Eaten ghosts are already disembodied and stay that way.
func (ai *GhostAI) enterFlee() bool {
	if ai.Ghost.Mode == entities.ModeEaten {
		return false
	}
	ai.setMode(entities.ModeFlee)
	ai.Ghost.Vulnerable = true
	ai.Ghost.Flashing = false
	if rev := ai.Ghost.Dir.Reverse(); rev != entities.DirNone {
		ai.Ghost.Dir = rev
		ai.Mover.Dir = rev
	}
	return true
}

// endFlee reverts a fleeing ghost to the cycle's current phase.
func (ai *GhostAI) endFlee(now time.Duration) bool {
	if ai.Ghost.Mode != entities.ModeFlee {
		return false
	}
	ai.Ghost.Vulnerable = false
	ai.Ghost.Flashing = false
	return ai.setMode(cyclePhase(now))
}

// consume marks the ghost eaten; GhostAI routes it home from here.
func (ai *GhostAI) consume() {
	ai.Ghost.Vulnerable = false
	ai.Ghost.Flashing = false
	ai.setMode(entities.ModeEaten)
}

func (ai *GhostAI) target(m *maze.Maze, now time.Duration, player entities.Player) entities.Point {
	g := ai.Ghost
	switch g.Mode {
	case entities.ModeScatter:
		return m.ScatterCorners[g.Personality]
	case entities.ModeEaten:
		return m.HouseCenter
	case entities.ModeFlee:
		// Mirror extrapolation away from Pacman.
		return entities.Point{
			X: 2*g.Pos.X - player.Pos.X,
			Y: 2*g.Pos.Y - player.Pos.Y,
		}
	}
	// Chase targets per personality.
	switch g.Personality {
	case entities.Ambush:
		p := player.Pos
		dx, dy := player.Dir.Delta()
		return entities.Point{X: p.X + ambushLead*dx, Y: p.Y + ambushLead*dy}
	case entities.Random:
		if ai.rng.Float64() < 0.7 {
			return player.Pos
		}
		return entities.Point{
			X: player.Pos.X + ai.rng.Intn(7) - 3,
			Y: player.Pos.Y + ai.rng.Intn(7) - 3,
		}
	case entities.Patrol:
		// Bounded wander near Pacman on a smooth clock-driven oscillation.
		t := now.Seconds()
		return entities.Point{
			X: player.Pos.X + int(math.Round(3*math.Sin(t))),
			Y: player.Pos.Y + int(math.Round(3*math.Cos(0.7*t))),
		}
	default:
		return player.Pos
	}
}

// chooseDirection picks greedily among legal single steps: never reverse
// unless it is the only way out, minimize Manhattan distance to the target,
// break ties randomly.
func (ai *GhostAI) chooseDirection(m *maze.Maze, target entities.Point) entities.Direction {
	legal := make([]entities.Direction, 0, 4)
	for _, d := range entities.Directions {
		if ai.Mover.CanMove(m, d) {
			legal = append(legal, d)
		}
	}
	if len(legal) == 0 {
		return ai.Ghost.Dir
	}
	candidates := legal
	if len(legal) > 1 {
		filtered := make([]entities.Direction, 0, 3)
		for _, d := range legal {
			if !ai.Ghost.Dir.IsReverse(d) {
				filtered = append(filtered, d)
			}
		}
		if len(filtered) > 0 {
			candidates = filtered
		}
	}
	best := make([]entities.Direction, 0, 3)
	bestDist := -1
	for _, d := range candidates {
		dist := NextPosition(m, ai.Mover.Pos, d).ManhattanDist(target)
		switch {
		case bestDist == -1 || dist < bestDist:
			bestDist = dist
			best = best[:0]
			best = append(best, d)
		case dist == bestDist:
			best = append(best, d)
		}
	}
	return best[ai.rng.Intn(len(best))]
}

// Step advances the ghost one cell. player is the start-of-tick snapshot,
// so ghost decisions never observe Pacman's in-progress update. Returns
// whether the ghost moved and whether its mode changed this step.
func (ai *GhostAI) Step(m *maze.Maze, now time.Duration, player entities.Player) (moved, modeChanged bool) {
	g := ai.Ghost
	if g.Mode == entities.ModeScatter || g.Mode == entities.ModeChase {
		modeChanged = ai.setMode(cyclePhase(now))
	}
	dir := ai.chooseDirection(m, ai.target(m, now, player))
	ai.Mover.Dir = dir
	moved, _ = ai.Mover.Step(m)
	g.Pos = ai.Mover.Pos
	g.Dir = ai.Mover.Dir

	// An eaten ghost is restored the moment it reaches the house center.
	if g.Mode == entities.ModeEaten && g.Pos == m.HouseCenter {
		g.Vulnerable = false
		g.Flashing = false
		ai.setMode(cyclePhase(now))
		modeChanged = true
	}
	return moved, modeChanged
}

// place teleports the ghost for spawn/reset and clears transient state.
func (ai *GhostAI) place(p entities.Point, d entities.Direction) {
	ai.Ghost.Pos = p
	ai.Ghost.Dir = d
	ai.Ghost.Vulnerable = false
	ai.Ghost.Flashing = false
	ai.Mover.Pos = p
	ai.Mover.Dir = d
	ai.Mover.Queued = entities.DirNone
	ai.Mover.ResetAccum()
}
