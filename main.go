package main

import (
	"flag"
	"image"
	"os"

	"github.com/automoto/cavefall/config"
	"github.com/automoto/cavefall/fonts"
	"github.com/automoto/cavefall/scenes"
	"github.com/automoto/cavefall/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatal("failed to load fonts", "err", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewPlatformerScene(g, nil)
	} else {
		g.scene = scenes.NewTitleScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "path to a cavefall.yaml")
	skipMenu := flag.Bool("skip-menu", false, "start in the first room")
	debug := flag.Bool("debug", false, "verbose logging and collider overlay")
	flag.Parse()

	log.SetReportTimestamp(true)
	log.SetPrefix("cavefall")

	loaded, err := config.Load(*configPath)
	if err != nil {
		log.Error("invalid configuration", "err", err)
		os.Exit(1)
	}
	if loaded != "" {
		log.Info("configuration loaded", "path", loaded)
	}
	if *skipMenu {
		config.Debug.SkipMenu = true
	}
	if *debug {
		config.Debug.ShowColliders = true
		log.SetLevel(log.DebugLevel)
	}

	ebiten.SetWindowTitle(config.Menu.Title)
	ebiten.SetWindowSize(config.C.Width*config.C.Scale, config.C.Height*config.C.Scale)
	ebiten.SetTPS(config.C.TPS)

	// Initialize persistence and load saved settings
	_ = systems.InitPersistence()
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySettings(saved)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal("game exited", "err", err)
	}
}
