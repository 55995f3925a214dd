package systems

import (
	"fmt"
	"os"

	"github.com/automoto/cavefall/components"
	cfg "github.com/automoto/cavefall/config"
	"github.com/automoto/cavefall/shared/leveldata"
	"github.com/automoto/cavefall/shared/rooms"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LoadCatalog returns the rooms to play: the .tmx files in cfg.Room.Dir when
// it is set, the built-in catalog otherwise.
func LoadCatalog() (rooms.Catalog, error) {
	if cfg.Room.Dir == "" {
		return rooms.DefaultCatalog(), nil
	}

	files, err := leveldata.LoadAllRooms(os.DirFS(cfg.Room.Dir), ".")
	if err != nil {
		return nil, fmt.Errorf("load rooms from %s: %w", cfg.Room.Dir, err)
	}
	catalog := leveldata.Catalog(files)
	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("rooms in %s: %w", cfg.Room.Dir, err)
	}
	log.Info("loaded rooms", "dir", cfg.Room.Dir, "count", len(files))
	return catalog, nil
}

// GetLevel returns the level entry and its data.
func GetLevel(e *ecs.ECS) (*donburi.Entry, *components.LevelData, bool) {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return nil, nil, false
	}
	return entry, components.Level.Get(entry), true
}

// GetRunStats returns the counters of the current run, or nil outside a run.
func GetRunStats(e *ecs.ECS) *components.RunStatsData {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return nil
	}
	return components.RunStats.Get(entry)
}
