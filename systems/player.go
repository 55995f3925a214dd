package systems

import (
	"github.com/automoto/cavefall/config/input"
	"github.com/automoto/cavefall/shared/physics"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer turns this frame's input into commands and one simulation
// tick. Reset and rotate are applied before the tick.
func UpdatePlayer(e *ecs.ECS) {
	_, level, ok := GetLevel(e)
	if !ok {
		return
	}
	in := getOrCreateInput(e)
	sim := level.Sim

	if GetAction(in, input.ActionReset).JustPressed {
		respawn(e, sim)
	}
	if GetAction(in, input.ActionRotate).JustPressed && sim.Rotate() {
		StartRotationTween(e)
	}

	sim.Step(physics.Input{Horizontal: horizontalIntent(in)})
}

// respawn restarts the room and cancels any turn animation, since the
// simulation leaves the Rotating state on respawn.
func respawn(e *ecs.ECS, sim *physics.Simulation) {
	sim.Respawn()
	StopRotationTween(e)
}
