package archetypes

import (
	"github.com/automoto/cavefall/components"
	cfg "github.com/automoto/cavefall/config"
	"github.com/automoto/cavefall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Level = newArchetype(
		components.Level,
		components.RunStats,
		components.Rotation,
	)
	Space = newArchetype(
		components.Space,
	)
	Tile = newArchetype(
		tags.Tile,
		components.Object,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Animation,
		components.State,
		components.Flash,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
