package components

import (
	"github.com/automoto/cavefall/assets/animations"
	"github.com/automoto/cavefall/shared/physics"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	CurrentAnimation *animations.Animation
	CurrentState     physics.MovementState
	Animations       map[physics.MovementState]*animations.Animation
}

func (a *AnimationData) SetAnimation(state physics.MovementState) {
	if a.CurrentState == state && a.CurrentAnimation != nil {
		return
	}

	anim, ok := a.Animations[state]
	if !ok {
		// No animation for this state, clear current
		a.CurrentAnimation = nil
		a.CurrentState = state
		return
	}
	if a.CurrentAnimation != anim {
		a.CurrentAnimation = anim
		a.CurrentAnimation.Restart()
	}
	a.CurrentState = state
}

var Animation = donburi.NewComponentType[AnimationData]()
