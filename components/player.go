package components

import (
	"github.com/automoto/cavefall/shared/physics"
	"github.com/yohamta/donburi"
)

// PlayerData links the player entity to the kernel's miner.
type PlayerData struct {
	Miner *physics.Player
}

var Player = donburi.NewComponentType[PlayerData]()
