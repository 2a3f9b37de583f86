package game

import (
	"testing"
	"time"
)

func TestEatGhostComboScoring(t *testing.T) {
	pm := NewPowerMode(nil, nil)
	pm.Activate(DefaultPowerDuration)

	want := []int{200, 400, 800, 1600, 1600}
	for i, w := range want {
		if got := pm.EatGhost(); got != w {
			t.Fatalf("eat %d: got %d points, want %d", i+1, got, w)
		}
	}
	if pm.EatenThisWindow() != 5 {
		t.Fatalf("expected 5 ghosts eaten this window, got %d", pm.EatenThisWindow())
	}
}

func TestEatGhostWhileInactiveIsNoop(t *testing.T) {
	pm := NewPowerMode(nil, nil)
	if got := pm.EatGhost(); got != 0 {
		t.Fatalf("inactive EatGhost must award 0, got %d", got)
	}
}

func TestActivateResetsCombo(t *testing.T) {
	pm := NewPowerMode(nil, nil)
	pm.Activate(DefaultPowerDuration)
	pm.EatGhost()
	pm.EatGhost()
	pm.Activate(DefaultPowerDuration)
	if got := pm.EatGhost(); got != 200 {
		t.Fatalf("combo must reset on re-activation, got %d", got)
	}
}

func TestFlashingThresholdAndExpiry(t *testing.T) {
	var flashed bool
	var endedWith = -1
	pm := NewPowerMode(func() { flashed = true }, func(eaten int) { endedWith = eaten })

	pm.Activate(DefaultPowerDuration)
	pm.EatGhost()
	pm.EatGhost()

	// Run down to just above the flashing threshold.
	pm.Tick(DefaultPowerDuration - flashThreshold - powerTickInterval)
	if flashed {
		t.Fatal("flashing must not start above the threshold")
	}
	pm.Tick(powerTickInterval)
	if !pm.Flashing() || !flashed {
		t.Fatal("flashing must start once remaining time crosses the threshold")
	}

	// Run out the window.
	pm.Tick(flashThreshold)
	if pm.Active() || pm.Flashing() {
		t.Fatal("expiry must deactivate and clear flashing")
	}
	if endedWith != 2 {
		t.Fatalf("end notification must carry the final eaten count, got %d", endedWith)
	}
	if pm.EatenThisWindow() != 2 {
		t.Fatalf("final eaten count must be preserved for reporting, got %d", pm.EatenThisWindow())
	}
}

func TestDeactivateClearsState(t *testing.T) {
	ended := false
	pm := NewPowerMode(nil, func(int) { ended = true })
	pm.Activate(DefaultPowerDuration)
	pm.Deactivate()
	if pm.Active() || pm.Flashing() || pm.Remaining() != 0 {
		t.Fatal("deactivate must reset the controller to inert")
	}
	if ended {
		t.Fatal("manual deactivation must not fire the expiry notification")
	}
	pm.Tick(time.Second)
	if pm.Active() {
		t.Fatal("ticking an inert controller must do nothing")
	}
}
