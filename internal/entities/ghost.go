package entities

// Personality selects a ghost's chase-target rule and its scatter corner.
type Personality int

const (
	Aggressive Personality = iota
	Ambush
	Random
	Patrol
)

func (p Personality) String() string {
	switch p {
	case Aggressive:
		return "aggressive"
	case Ambush:
		return "ambush"
	case Random:
		return "random"
	case Patrol:
		return "patrol"
	default:
		return "unknown"
	}
}

type GhostMode int

const (
	ModeScatter GhostMode = iota
	ModeChase
	ModeFlee
	ModeEaten
)

func (m GhostMode) String() string {
	switch m {
	case ModeScatter:
		return "scatter"
	case ModeChase:
		return "chase"
	case ModeFlee:
		return "flee"
	case ModeEaten:
		return "eaten"
	default:
		return "unknown"
	}
}

type Ghost struct {
	Name        string
	Personality Personality
	Pos         Point
	Dir         Direction
	Mode        GhostMode
	Vulnerable  bool
	Flashing    bool
}
