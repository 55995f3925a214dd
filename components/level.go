package components

import (
	"github.com/automoto/cavefall/shared/physics"
	"github.com/yohamta/donburi"
)

// LevelData holds the running simulation. There is one per gameplay scene.
type LevelData struct {
	Sim *physics.Simulation

	// MirroredRevision is the room revision the resolv space was last
	// rebuilt from.
	MirroredRevision uint64
	Mirrored         bool

	// EmbedWarned is set once the player mirror has been reported inside a
	// solid tile for the current revision.
	EmbedWarned bool
}

var Level = donburi.NewComponentType[LevelData]()
