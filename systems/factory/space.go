package factory

import (
	"github.com/automoto/cavefall/archetypes"
	"github.com/automoto/cavefall/components"
	"github.com/automoto/cavefall/shared/rooms"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace spawns a resolv space covering one room, bucketed per tile.
func CreateSpace(ecs *ecs.ECS) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(rooms.Extent, rooms.Extent, rooms.TileSize, rooms.TileSize)
	components.Space.Set(space, spaceData)
	return space
}
