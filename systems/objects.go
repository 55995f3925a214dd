package systems

import (
	"github.com/automoto/cavefall/components"
	"github.com/automoto/cavefall/shared/rooms"
	"github.com/automoto/cavefall/systems/factory"
	"github.com/automoto/cavefall/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects keeps the resolv space in step with the simulation. Tile
// objects are rebuilt whenever the room loads or turns; the player object
// follows the miner every tick. The space is a mirror for the debug overlay
// and diagnostics; the simulation never reads it.
func UpdateObjects(e *ecs.ECS) {
	_, level, ok := GetLevel(e)
	if !ok {
		return
	}
	room := level.Sim.Room

	if !level.Mirrored || level.MirroredRevision != room.Revision() {
		rebuildTiles(e, room)
		level.MirroredRevision = room.Revision()
		level.Mirrored = true
		level.EmbedWarned = false
	}

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	obj := components.Object.Get(playerEntry)
	miner := components.Player.Get(playerEntry).Miner
	obj.X = miner.Position.X
	obj.Y = miner.Position.Y
	obj.Update()

	if level.EmbedWarned {
		return
	}
	if check := obj.Check(0, 0, tags.ResolvSolid); check != nil {
		if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
			log.Warn("player overlaps a solid tile",
				"room", room.Index(),
				"x", miner.Position.X,
				"y", miner.Position.Y,
				"state", miner.State)
			level.EmbedWarned = true
		}
	}
}

func rebuildTiles(e *ecs.ECS, room *rooms.Room) {
	var stale []*donburi.Entry
	tags.Tile.Each(e.World, func(entry *donburi.Entry) {
		stale = append(stale, entry)
	})

	spaceEntry, hasSpace := components.Space.First(e.World)
	for _, entry := range stale {
		if hasSpace {
			components.Space.Get(spaceEntry).Remove(components.Object.Get(entry).Object)
		}
		e.World.Remove(entry.Entity())
	}

	grid := room.Tiles()
	for row := 0; row < rooms.Size; row++ {
		for col := 0; col < rooms.Size; col++ {
			factory.CreateTile(e, rooms.Cell{Col: col, Row: row}, grid[row][col])
		}
	}
}
