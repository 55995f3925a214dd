package scenes

import (
	"fmt"
	"os"
	"sync"
	"time"

	cfg "github.com/automoto/cavefall/config"
	"github.com/automoto/cavefall/config/input"
	"github.com/automoto/cavefall/storage"
	"github.com/automoto/cavefall/systems"
	"github.com/automoto/cavefall/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TitleScene displays the title screen
type TitleScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	titleUI      *ui.TitleUI
	canContinue  bool
	next         interface{}
	ticks        int
	once         sync.Once
}

// NewTitleScene creates a new title scene
func NewTitleScene(sc SceneChanger) *TitleScene {
	return &TitleScene{sceneChanger: sc}
}

func (ts *TitleScene) Update() {
	ts.once.Do(ts.configure)
	ts.ecs.Update()
	ts.titleUI.Update()

	// A key still held from the previous scene reads as pressed on the first frame.
	ts.ticks++
	if ts.ticks > 1 && systems.GetAction(systems.GetInput(ts.ecs), input.ActionMenuSelect).JustPressed {
		if ts.canContinue {
			ts.continueGame()
		} else {
			ts.newGame()
		}
	}

	if ts.next != nil {
		ts.sceneChanger.ChangeScene(ts.next)
	}
}

func (ts *TitleScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Menu.Background)

	if ts.titleUI == nil {
		return
	}
	ts.titleUI.UI.Draw(screen)
}

func (ts *TitleScene) configure() {
	ts.ecs = ecs.NewECS(donburi.NewWorld())
	ts.ecs.AddSystem(systems.UpdateInput)

	ts.canContinue = systems.HasSaveGame()
	ts.titleUI = ui.NewTitleUI(ui.TitleOptions{
		Title:       cfg.Menu.Title,
		Subtitle:    cfg.Menu.Subtitle,
		Best:        bestLine(systems.RunSummary()),
		CanContinue: ts.canContinue,
		WindowScale: cfg.C.Scale,
		Background:  cfg.Menu.Background,
		TitleColor:  cfg.Menu.TitleColor,
	})
	ts.titleUI.OnNewGame = ts.newGame
	ts.titleUI.OnContinue = ts.continueGame
	ts.titleUI.OnScale = func() int {
		settings := &systems.SavedSettings{WindowScale: cfg.NextScale(cfg.C.Scale)}
		systems.ApplySettings(settings)
		_ = systems.SaveSettings(settings)
		return cfg.C.Scale
	}
	ts.titleUI.OnQuit = func() { os.Exit(0) }
}

func (ts *TitleScene) newGame() {
	systems.ClearGameProgress()
	ts.next = NewPlatformerScene(ts.sceneChanger, nil)
}

func (ts *TitleScene) continueGame() {
	progress, _ := systems.LoadGameProgress()
	if progress == nil {
		ts.newGame()
		return
	}
	ts.next = NewPlatformerScene(ts.sceneChanger, progress)
}

func bestLine(sum *storage.Summary) string {
	if sum == nil || sum.Runs == 0 {
		return ""
	}
	if sum.BestDuration == 0 {
		return fmt.Sprintf("%d runs, none out yet", sum.Runs)
	}
	return fmt.Sprintf("Best escape %s  (%d of %d runs)", sum.BestDuration.Round(time.Second/10), sum.Completed, sum.Runs)
}
