package entities

// Player holds Pacman's discrete grid state. Queued is the pending turn,
// adopted as soon as it becomes legal.
type Player struct {
	Pos    Point
	Dir    Direction
	Queued Direction
}
