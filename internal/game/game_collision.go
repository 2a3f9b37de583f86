package game

import "pacman/internal/entities"

// collectAt picks up whatever sits at Pacman's cell. A power pellet arms
// the vulnerability window and flips every embodied ghost into flee,
// reversing it on the spot.
func (s *Session) collectAt(p entities.Point) {
	kind, pts := s.store.Collect(p)
	if kind == KindNone {
		return
	}
	s.addScore(pts)
	s.bus.Emit(Event{Type: EventCollected, Actor: actorPacman, Pos: p, Kind: kind, Points: pts, Score: s.score})
	if kind == KindPowerPellet {
		s.power.Activate(DefaultPowerDuration)
		for _, ai := range s.ghosts {
			if ai.enterFlee() {
				s.emitMode(ai)
			}
		}
		s.bus.Emit(Event{Type: EventPowerStarted})
	}
}

// resolveCollisions runs once per tick after every actor's position is
// final. A ghost collides when it shares Pacman's cell, or when the two
// swapped cells this tick (differing step rates would otherwise let them
// pass through each other). Cell equality is exact; there is no pixel
// tolerance in grid space.
func (s *Session) resolveCollisions(prevPlayer entities.Point, prevGhosts []entities.Point) {
	for i, ai := range s.ghosts {
		g := ai.Ghost
		hit := g.Pos == s.player.Pos ||
			(g.Pos == prevPlayer && prevGhosts[i] == s.player.Pos)
		if !hit {
			continue
		}
		if s.power.Active() && g.Vulnerable {
			pts := s.power.EatGhost()
			s.addScore(pts)
			ai.consume()
			s.bus.Emit(Event{Type: EventGhostConsumed, Actor: g.Name, Pos: g.Pos, Points: pts, Score: s.score})
			s.emitMode(ai)
			continue
		}
		if g.Mode == entities.ModeEaten || s.invincible {
			continue
		}
		s.loseLife()
		return
	}
}

// loseLife freezes the simulation for the respawn beat, then either ends
// the game or resets positions under a short invincibility window.
func (s *Session) loseLife() {
	s.lives--
	s.power.Deactivate()
	s.frozen = true
	s.bus.Emit(Event{Type: EventLifeLost, Actor: actorPacman, Pos: s.player.Pos, Lives: s.lives, Score: s.score})
	s.sched.after(respawnDelay, func() {
		if s.lives <= 0 {
			s.gameOver()
			return
		}
		s.resetPositions()
		s.frozen = false
		s.invincible = true
		s.sched.after(invincibilityWindow, func() {
			s.invincible = false
		})
	})
}
