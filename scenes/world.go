package scenes

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/automoto/cavefall/components"
	cfg "github.com/automoto/cavefall/config"
	"github.com/automoto/cavefall/systems"
	factory2 "github.com/automoto/cavefall/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	progress     *systems.SavedGameProgress
	once         sync.Once
}

// NewPlatformerScene creates a gameplay scene. A nil progress starts a new
// run in the first room.
func NewPlatformerScene(sc SceneChanger, progress *systems.SavedGameProgress) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, progress: progress}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	if systems.IsFadeFinished(ps.ecs) {
		stats := *systems.GetRunStats(ps.ecs)
		ps.sceneChanger.ChangeScene(NewEndingScene(ps.sceneChanger, stats))
		return
	}

	if systems.IsExitRequested(ps.ecs) {
		ps.leave()
		ps.sceneChanger.ChangeScene(NewTitleScene(ps.sceneChanger))
	}
}

// leave records an unfinished run in the history and saves it so it can be
// continued. The run is recorded first so the save carries its history row.
func (ps *PlatformerScene) leave() {
	entry, level, ok := systems.GetLevel(ps.ecs)
	if !ok {
		return
	}
	stats := components.RunStats.Get(entry)
	systems.RecordRun(stats)
	_ = systems.SaveGameProgress(systems.NewProgress(level.Sim, stats))
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	catalog, err := systems.LoadCatalog()
	if err != nil {
		panic("failed to load rooms: " + err.Error())
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateSettings)

	// Game systems wrapped with pause and level complete checks
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEvents))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateStates))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateRotation))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateObjects))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateEffects))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateMessage))
	ecs.AddSystem(systems.UpdateLevelComplete)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawRoom)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Overlay, systems.DrawHUD)
	ecs.AddRenderer(cfg.Overlay, systems.DrawMessage)
	ecs.AddRenderer(cfg.Overlay, systems.DrawLevelComplete)
	ecs.AddRenderer(cfg.Overlay, systems.DrawPause)

	ps.ecs = ecs

	// The space must exist before anything adds objects to it.
	factory2.CreateSpace(ps.ecs)

	opts := factory2.LevelOptions{Catalog: catalog}
	if ps.progress != nil {
		opts.RoomIndex = ps.progress.RoomIndex
		opts.Rotations = ps.progress.Rotations
	}
	level := factory2.CreateLevel(ps.ecs, opts)
	levelData := components.Level.Get(level)
	systems.RestoreStats(components.RunStats.Get(level), ps.progress)

	factory2.CreatePlayer(ps.ecs, levelData.Sim.Player)

	room := levelData.Sim.Room
	systems.ShowMessage(ps.ecs, roomBanner(room.Index()))
	log.Info("run started",
		"room", room.Index(),
		"rooms", room.Count(),
		"rotations", room.Rotations(),
		"continued", ps.progress != nil)
}

func roomBanner(index int) string {
	return fmt.Sprintf("ROOM %d", index+1)
}
