package game

import (
	"pacman/internal/entities"
	"pacman/internal/maze"
)

type CollectibleKind int

const (
	KindNone CollectibleKind = iota
	KindDot
	KindPowerPellet
)

const (
	dotPoints         = 10
	powerPelletPoints = 50
)

// CollectibleStore tracks which dots and power pellets remain. The two sets
// are disjoint and separate from maze topology, so collection never touches
// the grid.
type CollectibleStore struct {
	dots    map[entities.Point]struct{}
	pellets map[entities.Point]struct{}
}

func NewCollectibleStore(m *maze.Maze) *CollectibleStore {
	s := &CollectibleStore{}
	s.Reset(m)
	return s
}

// Reset repopulates both sets from the maze layout, as at round start.
func (s *CollectibleStore) Reset(m *maze.Maze) {
	s.dots = make(map[entities.Point]struct{}, len(m.DotCells))
	s.pellets = make(map[entities.Point]struct{}, len(m.PowerPellets))
	for _, p := range m.DotCells {
		s.dots[p] = struct{}{}
	}
	for _, p := range m.PowerPellets {
		s.pellets[p] = struct{}{}
	}
}

// Collect removes whatever sits at p and returns its kind and point value.
// Collecting an empty cell is a no-op returning KindNone, never an error.
func (s *CollectibleStore) Collect(p entities.Point) (CollectibleKind, int) {
	if _, ok := s.dots[p]; ok {
		delete(s.dots, p)
		return KindDot, dotPoints
	}
	if _, ok := s.pellets[p]; ok {
		delete(s.pellets, p)
		return KindPowerPellet, powerPelletPoints
	}
	return KindNone, 0
}

func (s *CollectibleStore) DotsRemaining() int         { return len(s.dots) }
func (s *CollectibleStore) PowerPelletsRemaining() int { return len(s.pellets) }

// Empty reports round completion: every dot and pellet collected.
func (s *CollectibleStore) Empty() bool {
	return len(s.dots) == 0 && len(s.pellets) == 0
}

func (s *CollectibleStore) HasDot(p entities.Point) bool {
	_, ok := s.dots[p]
	return ok
}

func (s *CollectibleStore) HasPowerPellet(p entities.Point) bool {
	_, ok := s.pellets[p]
	return ok
}
