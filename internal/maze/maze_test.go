package maze

import (
	"testing"

	"pacman/internal/entities"
)

func TestDefaultMazeDimensions(t *testing.T) {
	m := Default()
	if m.Width != len(defaultLayout[0]) || m.Height != len(defaultLayout) {
		t.Fatalf("unexpected dimensions: got %dx%d, want %dx%d", m.Width, m.Height, len(defaultLayout[0]), len(defaultLayout))
	}
	if m.TunnelRow != 14 {
		t.Fatalf("expected tunnel row 14, got %d", m.TunnelRow)
	}
	if got := len(m.PowerPellets); got != 4 {
		t.Fatalf("expected 4 power pellets, got %d", got)
	}
}

func TestIsWalkableBounds(t *testing.T) {
	m := Default()
	if m.IsWalkable(-1, 0) || m.IsWalkable(0, -1) || m.IsWalkable(m.Width, 0) || m.IsWalkable(0, m.Height) {
		t.Fatal("out-of-bounds cells off the tunnel row must not be walkable")
	}
	if !m.IsWalkable(-1, m.TunnelRow) || !m.IsWalkable(m.Width, m.TunnelRow) {
		t.Fatal("tunnel mouths at x=-1 and x=width must be walkable")
	}
	if m.IsWalkable(-2, m.TunnelRow) || m.IsWalkable(m.Width+1, m.TunnelRow) {
		t.Fatal("cells beyond the tunnel mouths must not be walkable")
	}
}

func TestGhostHouseOffLimitsToPacman(t *testing.T) {
	m := Default()
	c := m.HouseCenter
	if m.At(c.X, c.Y) != GhostHouse {
		t.Fatalf("house center %v should be a ghost-house cell", c)
	}
	if m.IsWalkable(c.X, c.Y) {
		t.Fatal("ghost house must not be walkable for Pacman")
	}
	if !m.IsWalkableGhost(c.X, c.Y) {
		t.Fatal("ghost house must be walkable for ghosts")
	}
}

func TestSpawnsAndCornersWalkable(t *testing.T) {
	m := Default()
	if !m.IsWalkable(m.PlayerSpawn.X, m.PlayerSpawn.Y) {
		t.Fatalf("player spawn %v not walkable", m.PlayerSpawn)
	}
	for i, s := range m.GhostSpawns {
		if !m.IsWalkableGhost(s.X, s.Y) {
			t.Fatalf("ghost spawn %d at %v not ghost-walkable", i, s)
		}
	}
	seen := map[entities.Point]bool{}
	for i, c := range m.ScatterCorners {
		if !m.IsWalkable(c.X, c.Y) {
			t.Fatalf("scatter corner %d at %v not walkable", i, c)
		}
		if seen[c] {
			t.Fatalf("scatter corners must be distinct, %v repeated", c)
		}
		seen[c] = true
	}
}

func TestParseRejectsRaggedLayout(t *testing.T) {
	_, err := Parse([]string{"###", "#.#", "##"})
	if err == nil {
		t.Fatal("expected error for non-rectangular layout")
	}
}

func TestParseRejectsMissingTunnelRow(t *testing.T) {
	_, err := Parse([]string{
		"#######",
		"#o.P.o#",
		"#.HHH.#",
		"#o...o#",
		"#######",
	})
	if err == nil {
		t.Fatal("expected error when no row is open at both edges")
	}
}

func TestParseTinyMaze(t *testing.T) {
	m, err := Parse([]string{
		"########",
		"#o.P..o#",
		" .HHHH. ",
		"#o....o#",
		"########",
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if m.TunnelRow != 2 {
		t.Fatalf("expected tunnel row 2, got %d", m.TunnelRow)
	}
	if m.PlayerSpawn != (entities.Point{X: 3, Y: 1}) {
		t.Fatalf("unexpected player spawn %v", m.PlayerSpawn)
	}
	if len(m.DotCells) == 0 {
		t.Fatal("expected dot cells")
	}
}
