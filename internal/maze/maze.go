package maze

import (
	"errors"
	"fmt"

	"pacman/internal/entities"
)

type Cell int

const (
	Wall Cell = iota
	Path
	GhostHouse
)

// Maze is the static topology of one level. Dots and power pellets are not
// part of the grid; the collectible store tracks them so collection never
// mutates the maze.
type Maze struct {
	Width  int
	Height int

	// TunnelRow is the row where x=-1 and x=Width are valid wraparound
	// entry points for every actor.
	TunnelRow int

	// HouseCenter is the return target for eaten ghosts.
	HouseCenter entities.Point

	// ScatterCorners holds one dispersal target per personality, indexed
	// by entities.Personality.
	ScatterCorners [4]entities.Point

	PlayerSpawn entities.Point
	GhostSpawns [4]entities.Point

	// PowerPellets are the four cells seeded with power pellets at round
	// start. DotCells are every other cell seeded with a dot.
	PowerPellets []entities.Point
	DotCells     []entities.Point

	cells [][]Cell
}

// At returns the cell kind, treating out-of-bounds as Wall.
func (m *Maze) At(x, y int) Cell {
	if y < 0 || y >= m.Height || x < 0 || x >= m.Width {
		return Wall
	}
	return m.cells[y][x]
}

// IsWalkable reports whether Pacman may occupy (x, y). Out-of-bounds
// coordinates are walkable only as the tunnel mouths at x=-1 and x=Width
// on the tunnel row. Ghost-house cells are off-limits to Pacman.
func (m *Maze) IsWalkable(x, y int) bool {
	if y == m.TunnelRow && (x == -1 || x == m.Width) {
		return true
	}
	return m.At(x, y) == Path
}

// IsWalkableGhost is IsWalkable with ghost-house cells admitted.
func (m *Maze) IsWalkableGhost(x, y int) bool {
	if y == m.TunnelRow && (x == -1 || x == m.Width) {
		return true
	}
	c := m.At(x, y)
	return c == Path || c == GhostHouse
}

// Parse builds a maze from ASCII rows:
//
//	'#' wall, '.' path with a dot, 'o' path with a power pellet,
//	' ' path without a dot, 'P' player spawn, 'H' ghost-house cell.
//
// The tunnel row is the first row open at both edges. Validation failures
// are configuration errors; the tick loop assumes a parsed maze is sound.
func Parse(lines []string) (*Maze, error) {
	if len(lines) == 0 {
		return nil, errors.New("maze: empty layout")
	}
	h := len(lines)
	w := len(lines[0])
	m := &Maze{Width: w, Height: h, TunnelRow: -1}
	m.cells = make([][]Cell, h)

	var house []entities.Point
	playerSpawns := 0
	for y, line := range lines {
		if len(line) != w {
			return nil, fmt.Errorf("maze: row %d has width %d, want %d", y, len(line), w)
		}
		m.cells[y] = make([]Cell, w)
		for x, ch := range line {
			p := entities.Point{X: x, Y: y}
			switch ch {
			case '#':
				m.cells[y][x] = Wall
			case '.':
				m.cells[y][x] = Path
				m.DotCells = append(m.DotCells, p)
			case 'o':
				m.cells[y][x] = Path
				m.PowerPellets = append(m.PowerPellets, p)
			case ' ':
				m.cells[y][x] = Path
			case 'P':
				m.cells[y][x] = Path
				m.PlayerSpawn = p
				playerSpawns++
			case 'H':
				m.cells[y][x] = GhostHouse
				house = append(house, p)
			default:
				return nil, fmt.Errorf("maze: unknown cell %q at (%d,%d)", ch, x, y)
			}
		}
		if m.TunnelRow == -1 && m.cells[y][0] != Wall && m.cells[y][w-1] != Wall {
			m.TunnelRow = y
		}
	}

	if m.TunnelRow == -1 {
		return nil, errors.New("maze: no tunnel row (a row open at both edges)")
	}
	if playerSpawns != 1 {
		return nil, fmt.Errorf("maze: want exactly one player spawn, got %d", playerSpawns)
	}
	if len(m.PowerPellets) != 4 {
		return nil, fmt.Errorf("maze: want exactly 4 power pellets, got %d", len(m.PowerPellets))
	}
	if len(house) < 4 {
		return nil, fmt.Errorf("maze: ghost house too small: %d cells", len(house))
	}

	m.HouseCenter = houseCenter(house)
	m.GhostSpawns = ghostSpawns(house, m.HouseCenter)

	// One distinct corner per personality: aggressive top-right, ambush
	// top-left, random bottom-left, patrol bottom-right.
	m.ScatterCorners[entities.Aggressive] = nearestPath(m, entities.Point{X: w - 2, Y: 1})
	m.ScatterCorners[entities.Ambush] = nearestPath(m, entities.Point{X: 1, Y: 1})
	m.ScatterCorners[entities.Random] = nearestPath(m, entities.Point{X: 1, Y: h - 2})
	m.ScatterCorners[entities.Patrol] = nearestPath(m, entities.Point{X: w - 2, Y: h - 2})

	return m, nil
}

func houseCenter(house []entities.Point) entities.Point {
	sx, sy := 0, 0
	for _, p := range house {
		sx += p.X
		sy += p.Y
	}
	c := entities.Point{X: sx / len(house), Y: sy / len(house)}
	// Snap to an actual house cell in case the box is irregular.
	best := house[0]
	for _, p := range house {
		if p.ManhattanDist(c) < best.ManhattanDist(c) {
			best = p
		}
	}
	return best
}

func ghostSpawns(house []entities.Point, center entities.Point) [4]entities.Point {
	// The four house cells nearest the center, center first.
	sorted := append([]entities.Point(nil), house...)
	for i := 0; i < 4; i++ {
		min := i
		for j := i + 1; j < len(sorted); j++ {
			if sorted[j].ManhattanDist(center) < sorted[min].ManhattanDist(center) {
				min = j
			}
		}
		sorted[i], sorted[min] = sorted[min], sorted[i]
	}
	var out [4]entities.Point
	copy(out[:], sorted[:4])
	return out
}

// nearestPath finds the closest Path cell to a starting coordinate via a
// bounded ring search.
func nearestPath(m *Maze, p entities.Point) entities.Point {
	if m.At(p.X, p.Y) == Path {
		return p
	}
	for r := 1; r <= 8; r++ {
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if m.At(p.X+dx, p.Y+dy) == Path {
					return entities.Point{X: p.X + dx, Y: p.Y + dy}
				}
			}
		}
	}
	return p
}
