package factory

import (
	"github.com/automoto/cavefall/archetypes"
	"github.com/automoto/cavefall/components"
	"github.com/automoto/cavefall/shared/rooms"
	"github.com/automoto/cavefall/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTile spawns the collision mirror of one non-air cell. It returns nil
// for air.
func CreateTile(ecs *ecs.ECS, cell rooms.Cell, t rooms.TileType) *donburi.Entry {
	tag := tags.ForTile(t)
	if tag == "" {
		return nil
	}
	tile := archetypes.Tile.Spawn(ecs)

	x, y := rooms.CellOrigin(cell)
	obj := resolv.NewObject(x, y, rooms.TileSize, rooms.TileSize, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, rooms.TileSize, rooms.TileSize))
	obj.Data = tile // Link for O(1) lookup

	components.Object.SetValue(tile, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return tile
}
