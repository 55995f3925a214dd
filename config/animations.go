package config

import "github.com/automoto/cavefall/shared/physics"

type AnimationDef struct {
	Frames        int
	TicksPerFrame int
	Once          bool
}

// PlayerAnimations maps a movement state to the miner's pose cycle.
// Getting up from a landing plays once and holds.
var PlayerAnimations = map[physics.MovementState]AnimationDef{
	physics.Idle:     {Frames: 4, TicksPerFrame: 8},
	physics.Walking:  {Frames: 8, TicksPerFrame: 5},
	physics.Falling:  {Frames: 4, TicksPerFrame: 10},
	physics.Grounded: {Frames: 4, TicksPerFrame: 15, Once: true},
	physics.Rotating: {Frames: 4, TicksPerFrame: 10},
}
