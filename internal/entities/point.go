package entities

// Point is an integer grid coordinate. Actors occupy whole cells between
// discrete steps; any interpolated pixel position belongs to the renderer.
type Point struct {
	X, Y int
}

func (p Point) Add(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

func (p Point) ManhattanDist(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
