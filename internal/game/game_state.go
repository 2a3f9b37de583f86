package game

import "pacman/internal/entities"

type Status int

const (
	StatusReady Status = iota
	StatusPlaying
	StatusPaused
	StatusRoundComplete
	StatusGameComplete
	StatusGameOver
)

func (st Status) String() string {
	switch st {
	case StatusReady:
		return "ready"
	case StatusPlaying:
		return "playing"
	case StatusPaused:
		return "paused"
	case StatusRoundComplete:
		return "round-complete"
	case StatusGameComplete:
		return "game-complete"
	case StatusGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Start begins play from the ready screen.
func (s *Session) Start() {
	if s.status == StatusReady {
		s.status = StatusPlaying
	}
}

// TogglePause flips between playing and paused. The logical clock does not
// advance while paused, so every pending timer is frozen with the game.
func (s *Session) TogglePause() {
	switch s.status {
	case StatusPlaying:
		s.status = StatusPaused
	case StatusPaused:
		s.status = StatusPlaying
	}
}

// Restart tears the session down to a fresh ready state. Every scheduled
// action is cancelled first so nothing stale fires into the reset state.
func (s *Session) Restart() {
	s.sched.cancelAll()
	s.power.Deactivate()
	s.score = 0
	s.lives = startingLives
	s.round = 1
	s.frozen = false
	s.invincible = false
	s.store.Reset(s.maze)
	s.resetPositions()
	s.status = StatusReady
}

func (s *Session) completeRound() {
	s.power.Deactivate()
	s.sched.cancelAll()
	s.frozen = false
	s.invincible = false
	if s.round >= s.maxRounds {
		s.status = StatusGameComplete
		_ = SaveHighScore(s.highScore)
		s.bus.Emit(Event{Type: EventGameComplete, Score: s.score, High: s.highScore, Round: s.round})
		return
	}
	s.status = StatusRoundComplete
	s.bus.Emit(Event{Type: EventRoundComplete, Score: s.score, Round: s.round})
	s.sched.after(roundTransitionDelay, s.nextRound)
}

func (s *Session) nextRound() {
	s.round++
	s.store.Reset(s.maze)
	s.resetPositions()
	s.status = StatusPlaying
}

func (s *Session) gameOver() {
	s.status = StatusGameOver
	s.frozen = false
	s.sched.cancelAll()
	_ = SaveHighScore(s.highScore)
	s.bus.Emit(Event{Type: EventGameOver, Score: s.score, High: s.highScore, Lives: 0})
}

// resetPositions returns Pacman and all ghosts to their spawn cells and
// normal modes, as after a life loss or at round start.
func (s *Session) resetPositions() {
	s.playerMover.Pos = s.maze.PlayerSpawn
	s.playerMover.Dir = entities.DirNone
	s.playerMover.Queued = entities.DirNone
	s.playerMover.ResetAccum()
	s.syncPlayer()

	phase := cyclePhase(s.sched.clock())
	for i, ai := range s.ghosts {
		ai.place(s.maze.GhostSpawns[i%len(s.maze.GhostSpawns)], entities.DirLeft)
		ai.setMode(phase)
	}
}
