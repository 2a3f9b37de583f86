package maze

// defaultLayout is the built-in level. Row 14 is the tunnel row: both edge
// cells are open, so x=-1 and x=28 wrap to the far side there.
var defaultLayout = []string{
	"############################",
	"#............##............#",
	"#.####.#####.##.#####.####.#",
	"#o####.#####.##.#####.####o#",
	"#.####.#####.##.#####.####.#",
	"#..........................#",
	"#.####.##.########.##.####.#",
	"#.####.##.########.##.####.#",
	"#......##....##....##......#",
	"######.#####.##.#####.######",
	"######.#####.##.#####.######",
	"######.##..........##.######",
	"######.##.###HH###.##.######",
	"######.##.#HHHHHH#.##.######",
	" .........#HHHHHH#......... ",
	"######.##.#HHHHHH#.##.######",
	"######.##.########.##.######",
	"######.##..........##.######",
	"######.##.########.##.######",
	"######.##.########.##.######",
	"#............##............#",
	"#.####.#####.##.#####.####.#",
	"#o..##.......P........##..o#",
	"###.##.##.########.##.##.###",
	"###.##.##.########.##.##.###",
	"#......##....##....##......#",
	"#.##########.##.##########.#",
	"#.##########.##.##########.#",
	"#..........................#",
	"############################",
}

// Default returns the built-in maze. The layout is validated by tests, so a
// parse failure here is a programming error.
func Default() *Maze {
	m, err := Parse(defaultLayout)
	if err != nil {
		panic(err)
	}
	return m
}
