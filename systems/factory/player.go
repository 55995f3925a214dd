package factory

import (
	"github.com/automoto/cavefall/archetypes"
	"github.com/automoto/cavefall/components"
	"github.com/automoto/cavefall/shared/physics"
	"github.com/automoto/cavefall/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the entity that draws and mirrors the simulation's
// miner.
func CreatePlayer(ecs *ecs.ECS, miner *physics.Player) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := resolv.NewObject(miner.Position.X, miner.Position.Y, miner.Width, miner.Height)
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	obj.AddTags("character", tags.ResolvPlayer)
	obj.Data = player
	obj.SetShape(resolv.NewRectangle(0, 0, miner.Width, miner.Height))

	components.Player.SetValue(player, components.PlayerData{Miner: miner})
	components.State.SetValue(player, components.StateData{
		CurrentState:  miner.State,
		PreviousState: miner.State,
	})

	animData := GenerateAnimations()
	animData.SetAnimation(miner.State)
	components.Animation.Set(player, animData)

	// Permanently attached to avoid archetype thrashing
	components.Flash.SetValue(player, components.FlashData{R: 1, G: 1, B: 1})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return player
}
