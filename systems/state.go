package systems

import (
	"github.com/automoto/cavefall/components"
	"github.com/automoto/cavefall/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStates copies the miner's movement state onto the player entity and
// switches its animation on every transition.
func UpdateStates(e *ecs.ECS) {
	entry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	miner := components.Player.Get(entry).Miner
	state := components.State.Get(entry)
	anim := components.Animation.Get(entry)

	if miner.State != state.CurrentState {
		state.PreviousState = state.CurrentState
		state.CurrentState = miner.State
		state.StateTimer = 0
		anim.SetAnimation(miner.State)
	} else {
		state.StateTimer++
	}

	if anim.CurrentAnimation != nil {
		anim.CurrentAnimation.Update()
	}
}
