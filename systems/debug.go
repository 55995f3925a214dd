package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/cavefall/components"
	cfg "github.com/automoto/cavefall/config"
	"github.com/automoto/cavefall/config/input"
	"github.com/automoto/cavefall/fonts"
	"github.com/automoto/cavefall/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings toggles the collider overlay on F1.
func UpdateSettings(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	if GetAction(getOrCreateInput(ecs), input.ActionDebug).JustPressed {
		settings.Debug = !settings.Debug
	}
}

// GetOrCreateSettings returns the singleton Settings component, seeded from config.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			Debug: cfg.Debug.ShowColliders,
		})
	}
	return components.Settings.Get(entry)
}

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}
	// The mirror is in room space; skip it while the view is mid-turn.
	if viewAngle(ecs) != 0 {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			x, y := float32(obj.X), float32(obj.Y)
			w, h := float32(obj.W), float32(obj.H)

			// Determine color based on tags
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			switch {
			case obj.HasTags(tags.ResolvSolid):
				c = color.RGBA{100, 100, 100, 255} // Grey
			case obj.HasTags(tags.ResolvPlayer):
				c = color.RGBA{0, 0, 255, 255} // Blue
			case obj.HasTags(tags.ResolvHazard):
				c = color.RGBA{255, 0, 0, 255} // Red
			case obj.HasTags(tags.ResolvExit):
				c = color.RGBA{0, 255, 0, 255} // Green
			}

			// Draw outline
			vector.FillRect(screen, x, y, w, 1, c, false)     // Top
			vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
			vector.FillRect(screen, x, y, 1, h, c, false)     // Left
			vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
		}
	}

	_, level, ok := GetLevel(ecs)
	if !ok {
		return
	}
	p := level.Sim.Player
	lines := []string{
		fmt.Sprintf("state %s  room %d  rot %d", p.State, level.Sim.Room.Index(), level.Sim.Room.Rotations()),
		fmt.Sprintf("pos %.1f,%.1f  vel %.1f,%.1f", p.Position.X, p.Position.Y, p.Velocity.X, p.Velocity.Y),
		fmt.Sprintf("o2 %.1f  t %.2fs  tps %.0f", p.Oxygen, level.Sim.Now, ebiten.ActualTPS()),
	}
	face := fonts.Small.Get()
	y := screen.Bounds().Dy() - 4 - 10*(len(lines)-1)
	for _, line := range lines {
		text.Draw(screen, line, face, 4, y, cfg.Yellow)
		y += 10
	}
}
