package game

import (
	"math/rand"
	"time"

	"pacman/internal/entities"
	"pacman/internal/maze"
)

const (
	playerStepInterval = 180 * time.Millisecond

	startingLives    = 3
	defaultMaxRounds = 3

	// respawnDelay is the frozen beat after losing a life, before either
	// game over or a position reset.
	respawnDelay = 1500 * time.Millisecond

	// invincibilityWindow ignores ghost contact right after a respawn.
	invincibilityWindow = 2 * time.Second

	roundTransitionDelay = 2 * time.Second
)

const actorPacman = "pacman"

var ghostRoster = []struct {
	name        string
	personality entities.Personality
}{
	{"blinky", entities.Aggressive},
	{"pinky", entities.Ambush},
	{"inky", entities.Patrol},
	{"clyde", entities.Random},
}

// Session owns one game's entire simulation state. Nothing in here is
// global; the host creates a Session, feeds it input and Advance calls, and
// watches the event bus. All actors advance on the single logical clock, so
// there is no parallel actor execution to race.
type Session struct {
	maze  *maze.Maze
	bus   *EventBus
	sched *scheduler
	rng   *rand.Rand

	player      entities.Player
	playerMover *Mover
	ghosts      []*GhostAI

	store *CollectibleStore
	power *PowerMode

	status     Status
	score      int
	highScore  int
	lives      int
	round      int
	maxRounds  int
	frozen     bool // life-loss beat: timers run, actors do not
	invincible bool
}

func NewSession(m *maze.Maze) *Session {
	return newSession(m, rand.New(rand.NewSource(time.Now().UnixNano())))
}

func newSession(m *maze.Maze, rng *rand.Rand) *Session {
	s := &Session{
		maze:      m,
		bus:       NewEventBus(),
		sched:     newScheduler(),
		rng:       rng,
		lives:     startingLives,
		round:     1,
		maxRounds: defaultMaxRounds,
		highScore: LoadHighScore(),
		status:    StatusReady,
	}
	s.store = NewCollectibleStore(m)
	s.power = NewPowerMode(s.onPowerFlash, s.onPowerEnd)
	s.playerMover = &Mover{Interval: playerStepInterval}
	for _, r := range ghostRoster {
		g := &entities.Ghost{Name: r.name, Personality: r.personality}
		s.ghosts = append(s.ghosts, newGhostAI(g, rng))
	}
	s.resetPositions()
	return s
}

func (s *Session) Maze() *maze.Maze              { return s.maze }
func (s *Session) Bus() *EventBus                { return s.bus }
func (s *Session) Status() Status                { return s.status }
func (s *Session) Score() int                    { return s.score }
func (s *Session) HighScore() int                { return s.highScore }
func (s *Session) Lives() int                    { return s.lives }
func (s *Session) Round() int                    { return s.round }
func (s *Session) MaxRounds() int                { return s.maxRounds }
func (s *Session) Player() entities.Player       { return s.player }
func (s *Session) Invincible() bool              { return s.invincible }
func (s *Session) PowerActive() bool             { return s.power.Active() }
func (s *Session) PowerFlashing() bool           { return s.power.Flashing() }
func (s *Session) PowerRemaining() time.Duration { return s.power.Remaining() }

// Collectibles exposes the store for rendering; callers must not collect
// through it.
func (s *Session) Collectibles() *CollectibleStore { return s.store }

// Ghosts returns the live ghost states for rendering.
func (s *Session) Ghosts() []*entities.Ghost {
	out := make([]*entities.Ghost, len(s.ghosts))
	for i, ai := range s.ghosts {
		out[i] = ai.Ghost
	}
	return out
}

// RequestDirection is the input edge for Pacman. A turn that is legal right
// now is adopted immediately; otherwise it is queued and retried each step.
func (s *Session) RequestDirection(d entities.Direction) {
	if s.status != StatusPlaying || s.frozen {
		return
	}
	adopted := s.playerMover.Request(s.maze, d)
	s.syncPlayer()
	if adopted {
		s.bus.Emit(Event{Type: EventDirectionChanged, Actor: actorPacman, Dir: d, Pos: s.player.Pos})
	}
}

// Advance moves the simulation forward by dt. The host calls this from its
// frame loop; everything inside runs on the session's logical clock. While
// paused or in a terminal state the clock is frozen, so no timer or tick
// can fire.
func (s *Session) Advance(dt time.Duration) {
	switch s.status {
	case StatusPlaying, StatusRoundComplete:
	default:
		return
	}

	// Deferred actions first (respawn, invincibility expiry, next round);
	// these may change status under us. A tick that began idle only
	// services timers: its dt was spent frozen or between rounds, so none
	// of it reaches the movers when a transition resumes play mid-tick.
	wasIdle := s.status != StatusPlaying || s.frozen
	s.sched.advance(dt)
	if s.status != StatusPlaying || s.frozen || wasIdle {
		return
	}

	// Power countdown runs on its own shorter tick.
	s.power.Tick(dt)

	// Start-of-tick snapshot: ghost decisions see Pacman as he was when
	// the tick began, and collision checks compare against these.
	snapshot := s.player
	prevGhosts := make([]entities.Point, len(s.ghosts))
	for i, ai := range s.ghosts {
		prevGhosts[i] = ai.Ghost.Pos
	}

	for i := s.playerMover.Accrue(dt); i > 0; i-- {
		moved, turned := s.playerMover.Step(s.maze)
		s.syncPlayer()
		if turned {
			s.bus.Emit(Event{Type: EventDirectionChanged, Actor: actorPacman, Dir: s.player.Dir, Pos: s.player.Pos})
		}
		if !moved {
			break
		}
		s.bus.Emit(Event{Type: EventPositionChanged, Actor: actorPacman, Pos: s.player.Pos, Dir: s.player.Dir})
		s.collectAt(s.player.Pos)
	}

	now := s.sched.clock()
	for _, ai := range s.ghosts {
		for i := ai.Mover.Accrue(dt); i > 0; i-- {
			moved, modeChanged := ai.Step(s.maze, now, snapshot)
			if modeChanged {
				s.emitMode(ai)
			}
			if moved {
				s.bus.Emit(Event{Type: EventPositionChanged, Actor: ai.Ghost.Name, Pos: ai.Ghost.Pos, Dir: ai.Ghost.Dir, Mode: ai.Ghost.Mode})
			}
		}
	}

	s.resolveCollisions(snapshot.Pos, prevGhosts)

	// Round completion is decided after collisions so that collecting the
	// last dot and dying land in the same tick, both applying. A life lost
	// this tick holds completion back: the respawn beat runs first, and
	// with no lives left the game ends instead of the round completing.
	if s.status == StatusPlaying && !s.frozen && s.store.Empty() {
		s.completeRound()
	}
}

func (s *Session) syncPlayer() {
	s.player.Pos = s.playerMover.Pos
	s.player.Dir = s.playerMover.Dir
	s.player.Queued = s.playerMover.Queued
}

func (s *Session) emitMode(ai *GhostAI) {
	s.bus.Emit(Event{Type: EventModeChanged, Actor: ai.Ghost.Name, Pos: ai.Ghost.Pos, Mode: ai.Ghost.Mode})
}

func (s *Session) onPowerFlash() {
	for _, ai := range s.ghosts {
		if ai.Ghost.Mode == entities.ModeFlee {
			ai.Ghost.Flashing = true
		}
	}
	s.bus.Emit(Event{Type: EventPowerFlashing})
}

func (s *Session) onPowerEnd(eaten int) {
	now := s.sched.clock()
	for _, ai := range s.ghosts {
		if ai.endFlee(now) {
			s.emitMode(ai)
		}
	}
	s.bus.Emit(Event{Type: EventPowerEnded, Count: eaten})
}

func (s *Session) addScore(pts int) {
	if pts == 0 {
		return
	}
	s.score += pts
	if s.score > s.highScore {
		s.highScore = s.score
		_ = SaveHighScore(s.highScore)
	}
	s.bus.Emit(Event{Type: EventScoreChanged, Score: s.score, High: s.highScore, Points: pts})
}
