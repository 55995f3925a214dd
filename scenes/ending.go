package scenes

import (
	"fmt"
	"image/color"
	"sync"
	"time"

	"github.com/automoto/cavefall/components"
	cfg "github.com/automoto/cavefall/config"
	"github.com/automoto/cavefall/systems"
	"github.com/automoto/cavefall/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// EndingScene shows the finished run and records it.
type EndingScene struct {
	sceneChanger SceneChanger
	stats        components.RunStatsData
	endingUI     *ui.EndingUI
	next         interface{}
	once         sync.Once
}

// NewEndingScene creates the ending scene for a completed run
func NewEndingScene(sc SceneChanger, stats components.RunStatsData) *EndingScene {
	return &EndingScene{sceneChanger: sc, stats: stats}
}

func (es *EndingScene) Update() {
	es.once.Do(es.configure)
	es.endingUI.Update()

	if es.next != nil {
		es.sceneChanger.ChangeScene(es.next)
	}
}

func (es *EndingScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Ending.FadeColor)

	if es.endingUI == nil {
		return
	}
	es.endingUI.UI.Draw(screen)
}

func (es *EndingScene) configure() {
	systems.RecordRun(&es.stats)

	run := systems.RunFromStats(&es.stats)
	es.endingUI = ui.NewEndingUI(ui.EndingOptions{
		Title:   cfg.Ending.Title,
		Message: cfg.Ending.Message,
		Lines: []string{
			fmt.Sprintf("Time       %s", run.Duration.Round(time.Second/10)),
			fmt.Sprintf("Rooms      %d", run.Rooms),
			fmt.Sprintf("Deaths     %d", run.Deaths),
			fmt.Sprintf("Rotations  %d", run.Rotations),
		},
		Background: cfg.Ending.FadeColor,
		TitleColor: color.RGBA{R: 200, G: 120, B: 20, A: 255},
	})
	es.endingUI.OnPlayAgain = func() {
		es.next = NewPlatformerScene(es.sceneChanger, nil)
	}
	es.endingUI.OnTitle = func() {
		es.next = NewTitleScene(es.sceneChanger)
	}
}
