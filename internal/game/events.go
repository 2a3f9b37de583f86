package game

import "pacman/internal/entities"

type EventType int

const (
	EventPositionChanged EventType = iota
	EventDirectionChanged
	EventModeChanged
	EventCollected
	EventGhostConsumed
	EventPowerStarted
	EventPowerFlashing
	EventPowerEnded
	EventLifeLost
	EventScoreChanged
	EventRoundComplete
	EventGameComplete
	EventGameOver
)

// Event is the single payload type for all outbound notifications. Only the
// fields relevant to the Type are populated.
type Event struct {
	Type   EventType
	Actor  string // "pacman" or a ghost name
	Pos    entities.Point
	Dir    entities.Direction
	Mode   entities.GhostMode
	Kind   CollectibleKind
	Points int
	Count  int // ghosts eaten in the power window that just ended
	Score  int
	High   int
	Lives  int
	Round  int
}

type EventHandler func(Event)

// EventBus delivers events synchronously to subscribers, in subscription
// order. The renderer and audio layer hang off this; the core never blocks
// on them.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{handlers: make(map[EventType][]EventHandler)}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
