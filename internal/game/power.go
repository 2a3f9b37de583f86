package game

import "time"

const (
	// DefaultPowerDuration is the vulnerability window opened by a power
	// pellet.
	DefaultPowerDuration = 6 * time.Second

	// powerTickInterval is the countdown granularity, independent of and
	// shorter than any movement interval.
	powerTickInterval = 100 * time.Millisecond

	// flashThreshold is how much remaining time flips ghosts into their
	// end-of-window warning flash.
	flashThreshold = 3 * time.Second

	baseGhostPoints = 200
	maxGhostCombo   = 3
)

// PowerMode is the timed vulnerability window and its consecutive-ghost
// score multiplier. It is created inert, armed by Activate, and returns to
// inert on expiry or Deactivate.
type PowerMode struct {
	active    bool
	flashing  bool
	remaining time.Duration
	eaten     int
	lastEaten int
	accum     time.Duration

	onFlash func()
	onEnd   func(eaten int)
}

// NewPowerMode creates an inert controller. onFlash fires once when the
// window enters its flashing phase, onEnd once when it expires, with the
// count of ghosts eaten during the window.
func NewPowerMode(onFlash func(), onEnd func(eaten int)) *PowerMode {
	return &PowerMode{onFlash: onFlash, onEnd: onEnd}
}

func (pm *PowerMode) Active() bool             { return pm.active }
func (pm *PowerMode) Flashing() bool           { return pm.flashing }
func (pm *PowerMode) Remaining() time.Duration { return pm.remaining }

// EatenThisWindow is the running count while active, or the final count of
// the last window once it has ended.
func (pm *PowerMode) EatenThisWindow() int {
	if pm.active {
		return pm.eaten
	}
	return pm.lastEaten
}

// Activate opens (or re-opens) the window and resets the combo counter.
// Collecting a pellet mid-window restarts it in full.
func (pm *PowerMode) Activate(d time.Duration) {
	pm.active = true
	pm.flashing = false
	pm.remaining = d
	pm.eaten = 0
	pm.accum = 0
}

// Deactivate force-closes the window without firing onEnd, as on life loss
// or round reset.
func (pm *PowerMode) Deactivate() {
	if pm.active {
		pm.lastEaten = pm.eaten
	}
	pm.active = false
	pm.flashing = false
	pm.remaining = 0
	pm.accum = 0
}

// EatGhost awards 200 << min(eatenSoFar, 3): 200, 400, 800, 1600, then
// capped at 1600. Calling it while inactive is a guarded no-op returning 0;
// the collision resolver never reaches here with vulnerability set while
// the window is closed.
func (pm *PowerMode) EatGhost() int {
	if !pm.active {
		return 0
	}
	combo := pm.eaten
	if combo > maxGhostCombo {
		combo = maxGhostCombo
	}
	pm.eaten++
	return baseGhostPoints << combo
}

// Tick advances the countdown in fixed 100ms quanta.
func (pm *PowerMode) Tick(dt time.Duration) {
	if !pm.active {
		return
	}
	pm.accum += dt
	for pm.accum >= powerTickInterval && pm.active {
		pm.accum -= powerTickInterval
		pm.remaining -= powerTickInterval
		if pm.remaining <= 0 {
			pm.lastEaten = pm.eaten
			pm.active = false
			pm.flashing = false
			pm.remaining = 0
			if pm.onEnd != nil {
				pm.onEnd(pm.lastEaten)
			}
			return
		}
		if !pm.flashing && pm.remaining <= flashThreshold {
			pm.flashing = true
			if pm.onFlash != nil {
				pm.onFlash()
			}
		}
	}
}
