package systems

import (
	"github.com/automoto/cavefall/components"
	cfg "github.com/automoto/cavefall/config"
	"github.com/yohamta/donburi/ecs"
)

// StartRotationTween begins the quarter turn animation. The grid has already
// turned, so the view starts a quarter counter-clockwise and eases back.
func StartRotationTween(e *ecs.ECS) {
	entry, _, ok := GetLevel(e)
	if !ok {
		return
	}
	components.Rotation.Get(entry).Start(cfg.Rotation.Duration)
}

// StopRotationTween cancels a turn animation, e.g. when the room restarts
// while it is turning.
func StopRotationTween(e *ecs.ECS) {
	entry, _, ok := GetLevel(e)
	if !ok {
		return
	}
	components.Rotation.Get(entry).Stop()
}

// UpdateRotation advances the rotation tween by one tick.
func UpdateRotation(e *ecs.ECS) {
	entry, _, ok := GetLevel(e)
	if !ok {
		return
	}
	components.Rotation.Get(entry).Advance(1 / float64(cfg.C.TPS))
}

// viewAngle returns the current tween angle in degrees.
func viewAngle(e *ecs.ECS) float64 {
	entry, _, ok := GetLevel(e)
	if !ok {
		return 0
	}
	return components.Rotation.Get(entry).Angle
}
