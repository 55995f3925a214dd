package factory

import (
	"github.com/automoto/cavefall/assets/animations"
	"github.com/automoto/cavefall/components"
	cfg "github.com/automoto/cavefall/config"
	"github.com/automoto/cavefall/shared/physics"
)

// GenerateAnimations builds the miner's frame counters from the definitions
// in config. There are no sprite sheets; the renderer draws each frame.
func GenerateAnimations() *components.AnimationData {
	animData := &components.AnimationData{
		Animations:   make(map[physics.MovementState]*animations.Animation, len(cfg.PlayerAnimations)),
		CurrentState: physics.Idle,
	}

	for state, def := range cfg.PlayerAnimations {
		animData.Animations[state] = animations.NewAnimation(def.Frames, def.TicksPerFrame, def.Once)
	}

	return animData
}
