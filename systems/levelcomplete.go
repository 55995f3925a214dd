package systems

import (
	"image/color"

	"github.com/automoto/cavefall/components"
	cfg "github.com/automoto/cavefall/config"
	"github.com/automoto/cavefall/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// StartLevelComplete begins the fade to daylight after the last room.
func StartLevelComplete(e *ecs.ECS) {
	levelComplete := GetOrCreateLevelComplete(e)
	if levelComplete.IsComplete {
		return
	}
	levelComplete.IsComplete = true
	levelComplete.Timer = cfg.Ending.FadeFrames
	ClearGameProgress()
}

// UpdateLevelComplete runs the fade timer.
func UpdateLevelComplete(e *ecs.ECS) {
	levelComplete := GetOrCreateLevelComplete(e)
	if levelComplete.IsComplete && levelComplete.Timer > 0 {
		levelComplete.Timer--
	}
}

// IsFadeFinished reports whether the ending scene should take over.
func IsFadeFinished(e *ecs.ECS) bool {
	levelComplete := GetOrCreateLevelComplete(e)
	return levelComplete.IsComplete && levelComplete.Timer <= 0
}

// DrawLevelComplete renders the daylight fade
func DrawLevelComplete(e *ecs.ECS, screen *ebiten.Image) {
	levelComplete := GetOrCreateLevelComplete(e)
	if !levelComplete.IsComplete {
		return
	}

	progress := 1.0
	if cfg.Ending.FadeFrames > 0 {
		progress = 1 - float64(levelComplete.Timer)/float64(cfg.Ending.FadeFrames)
	}
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), scaleAlpha(cfg.Ending.FadeColor, progress), false)

	titleFont := fonts.Title.Get()
	title := cfg.Ending.Title
	text.Draw(screen, title, titleFont, centerTextX(title, titleFont, width), int(height/2), scaleAlpha(cfg.DeepCave, progress))
}

// scaleAlpha returns c at the given opacity, premultiplied.
func scaleAlpha(c color.RGBA, opacity float64) color.RGBA {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * opacity),
		G: uint8(float64(c.G) * opacity),
		B: uint8(float64(c.B) * opacity),
		A: uint8(float64(c.A) * opacity),
	}
}

// centerTextX calculates the X position to center text on screen
func centerTextX(s string, face font.Face, screenWidth float64) int {
	bounds := text.BoundString(face, s)
	textWidth := bounds.Dx()
	return int((screenWidth - float64(textWidth)) / 2)
}

// GetOrCreateLevelComplete returns the singleton LevelComplete component, creating if needed
func GetOrCreateLevelComplete(e *ecs.ECS) *components.LevelCompleteData {
	if _, ok := components.LevelComplete.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.LevelComplete))
		components.LevelComplete.SetValue(ent, components.LevelCompleteData{
			IsComplete: false,
		})
	}

	ent, _ := components.LevelComplete.First(e.World)
	return components.LevelComplete.Get(ent)
}

// IsLevelComplete checks if the level is complete
func IsLevelComplete(e *ecs.ECS) bool {
	levelComplete := GetOrCreateLevelComplete(e)
	return levelComplete.IsComplete
}

// WithLevelCompleteCheck wraps a system to skip execution when level is complete
func WithLevelCompleteCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsLevelComplete(e) {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused or level is complete
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(WithLevelCompleteCheck(system))
}
