package entities

import "testing"

func TestDeltaAndReverse(t *testing.T) {
	for _, d := range Directions {
		dx, dy := d.Delta()
		rx, ry := d.Reverse().Delta()
		if dx != -rx || dy != -ry {
			t.Fatalf("%v reverse delta mismatch: (%d,%d) vs (%d,%d)", d, dx, dy, rx, ry)
		}
		if !d.IsReverse(d.Reverse()) {
			t.Fatalf("%v should be reverse of %v", d, d.Reverse())
		}
	}
	if dx, dy := DirNone.Delta(); dx != 0 || dy != 0 {
		t.Fatalf("DirNone delta should be zero, got (%d,%d)", dx, dy)
	}
	if DirNone.IsReverse(DirNone) {
		t.Fatal("DirNone must not be its own reverse")
	}
}

func TestPointAdd(t *testing.T) {
	p := Point{X: 3, Y: 7}
	if got := p.Add(DirUp); got != (Point{3, 6}) {
		t.Fatalf("Add up: got %v", got)
	}
	if got := p.Add(DirRight); got != (Point{4, 7}) {
		t.Fatalf("Add right: got %v", got)
	}
}

func TestManhattanDist(t *testing.T) {
	a := Point{X: 10, Y: 8}
	b := Point{X: 10, Y: 10}
	if d := a.ManhattanDist(b); d != 2 {
		t.Fatalf("expected distance 2, got %d", d)
	}
	if d := b.ManhattanDist(a); d != 2 {
		t.Fatalf("distance must be symmetric, got %d", d)
	}
}
