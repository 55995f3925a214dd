package components

import (
	"github.com/automoto/cavefall/shared/physics"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  physics.MovementState
	PreviousState physics.MovementState
	StateTimer    int // ticks spent in CurrentState
}

var State = donburi.NewComponentType[StateData]()
