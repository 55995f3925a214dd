package physics

import "github.com/automoto/cavefall/shared/rooms"

// EventKind classifies what happened during a tick.
type EventKind int

const (
	EventGrounded EventKind = iota
	EventFalling
	EventDeath
	EventExit
	EventSuffocated
	EventRotated
	EventRespawn
)

func (k EventKind) String() string {
	switch k {
	case EventGrounded:
		return "grounded"
	case EventFalling:
		return "falling"
	case EventDeath:
		return "death"
	case EventExit:
		return "exit"
	case EventSuffocated:
		return "suffocated"
	case EventRotated:
		return "rotated"
	case EventRespawn:
		return "respawn"
	}
	return "unknown"
}

// Event is a semantic outcome of the simulation.
type Event struct {
	Kind EventKind
	// Cell is the tile that caused the event, when there is one.
	Cell rooms.Cell
	// Room is the catalog index loaded after the event.
	Room int
	// Wrapped is set on an exit out of the last room of the catalog.
	Wrapped bool
}
