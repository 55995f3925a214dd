package systems

import (
	"math"

	"github.com/automoto/cavefall/components"
	"github.com/automoto/cavefall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects processes visual effect components (flash, screen shake)
func UpdateEffects(ecs *ecs.ECS) {
	updateFlashEffects(ecs)
	updateScreenShake(ecs)
}

// updateFlashEffects decrements flash timers
func updateFlashEffects(ecs *ecs.ECS) {
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Duration > 0 {
			flash.Duration--
		}
	})
}

func updateScreenShake(ecs *ecs.ECS) {
	shake := getOrCreateScreenShake(ecs)
	if shake.Duration > 0 {
		shake.Duration--
		shake.Elapsed++
	}
}

// TriggerPlayerFlash tints the player sprite for duration frames.
func TriggerPlayerFlash(ecs *ecs.ECS, duration int, r, g, b float32) {
	entry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	flash := components.Flash.Get(entry)
	flash.Duration = duration
	flash.R, flash.G, flash.B = r, g, b
}

// TriggerScreenShake starts a shake, keeping the stronger of two overlapping shakes.
func TriggerScreenShake(ecs *ecs.ECS, intensity float64, duration int) {
	shake := getOrCreateScreenShake(ecs)
	if shake.Duration > 0 && shake.Intensity > intensity {
		return
	}
	shake.Intensity = intensity
	shake.Duration = duration
	shake.Elapsed = 0
}

// shakeOffset returns the current view offset, decaying with the remaining duration.
func shakeOffset(ecs *ecs.ECS) (float64, float64) {
	shake := getOrCreateScreenShake(ecs)
	if shake.Duration <= 0 {
		return 0, 0
	}
	decay := float64(shake.Duration) / float64(shake.Duration+shake.Elapsed)
	t := float64(shake.Elapsed)
	return math.Sin(t*1.7) * shake.Intensity * decay, math.Cos(t*2.3) * shake.Intensity * decay
}

func getOrCreateScreenShake(ecs *ecs.ECS) *components.ScreenShakeData {
	entry, ok := components.ScreenShake.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.ScreenShake))
	}
	return components.ScreenShake.Get(entry)
}
