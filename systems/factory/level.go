package factory

import (
	"math/rand"
	"time"

	"github.com/automoto/cavefall/archetypes"
	"github.com/automoto/cavefall/components"
	cfg "github.com/automoto/cavefall/config"
	"github.com/automoto/cavefall/shared/physics"
	"github.com/automoto/cavefall/shared/rooms"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LevelOptions picks where a run begins.
type LevelOptions struct {
	Catalog   rooms.Catalog
	RoomIndex int
	Rotations int
}

// CreateLevel spawns the level entity holding a simulation started at
// opts.RoomIndex with the cave already turned opts.Rotations times.
func CreateLevel(ecs *ecs.ECS, opts LevelOptions) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	if opts.Catalog.Len() == 0 {
		panic("no rooms in catalog")
	}

	seed := cfg.Room.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	room := rooms.New(opts.Catalog, rand.New(rand.NewSource(seed)))
	room.SetRotations(opts.Rotations)

	sim := physics.New(room, cfg.Kernel())
	sim.Start(opts.RoomIndex)

	components.Level.Set(level, &components.LevelData{Sim: sim})
	components.RunStats.Set(level, &components.RunStatsData{StartRoom: room.Index()})

	return level
}
