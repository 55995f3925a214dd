package systems

import (
	"fmt"
	"time"

	"github.com/automoto/cavefall/components"
	cfg "github.com/automoto/cavefall/config"
	"github.com/automoto/cavefall/config/input"
	"github.com/automoto/cavefall/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause handles pause toggle and menu navigation.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	if IsLevelComplete(ecs) {
		return
	}
	pause := GetOrCreatePause(ecs)
	in := getOrCreateInput(ecs)

	// Toggle pause on ESC or P
	if GetAction(in, input.ActionPause).JustPressed {
		pause.IsPaused = !pause.IsPaused
		if pause.IsPaused {
			pause.SelectedOption = components.MenuResume
		}
		return
	}

	// Only process menu input while paused
	if !pause.IsPaused {
		return
	}

	// Navigate menu with wrap-around using modulo arithmetic
	numOptions := int(components.MenuExit) + 1
	if GetAction(in, input.ActionMenuUp).JustPressed {
		pause.SelectedOption = components.PauseMenuOption(
			(int(pause.SelectedOption) - 1 + numOptions) % numOptions,
		)
	}
	if GetAction(in, input.ActionMenuDown).JustPressed {
		pause.SelectedOption = components.PauseMenuOption(
			(int(pause.SelectedOption) + 1) % numOptions,
		)
	}

	if GetAction(in, input.ActionMenuSelect).JustPressed {
		switch pause.SelectedOption {
		case components.MenuResume:
			pause.IsPaused = false
		case components.MenuRestartRoom:
			if _, level, ok := GetLevel(ecs); ok {
				respawn(ecs, level.Sim)
			}
			pause.IsPaused = false
		case components.MenuExit:
			pause.ExitRequested = true
		}
	}
}

// IsExitRequested reports whether the player chose to leave the run.
func IsExitRequested(ecs *ecs.ECS) bool {
	return GetOrCreatePause(ecs).ExitRequested
}

// DrawPause renders the pause overlay and menu.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)

	if !pause.IsPaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Pause.OverlayColor,
		false,
	)

	menuOptions := cfg.Pause.MenuOptions
	totalMenuHeight := float64(len(menuOptions)) * (cfg.Pause.MenuItemHeight + cfg.Pause.MenuItemGap)
	startY := (height - totalMenuHeight) / 2

	fontFace := fonts.Bold.Get()

	for i, option := range menuOptions {
		y := startY + float64(i)*(cfg.Pause.MenuItemHeight+cfg.Pause.MenuItemGap)

		textColor := cfg.Pause.TextColorNormal
		if components.PauseMenuOption(i) == pause.SelectedOption {
			textColor = cfg.Pause.TextColorSelected
		}

		text.Draw(screen, option, fontFace, centerTextX(option, fontFace, width), int(y)+int(cfg.Pause.MenuItemHeight), textColor)
	}

	if status := pauseStatus(ecs); status != "" {
		statusFont := fonts.Regular.Get()
		text.Draw(screen, status, statusFont, centerTextX(status, statusFont, width), int(startY)-12, cfg.Pause.TextColorSelected)
	}

	in := getOrCreateInput(ecs)
	hint := getPauseHint(in.LastInputMethod)
	hintFont := fonts.Small.Get()
	text.Draw(screen, hint, hintFont, centerTextX(hint, hintFont, width), int(height)-12, cfg.Pause.TextColorNormal)
}

// pauseStatus summarizes the run so far: room, deaths and time in the cave.
func pauseStatus(e *ecs.ECS) string {
	_, level, ok := GetLevel(e)
	if !ok {
		return ""
	}
	stats := GetRunStats(e)
	elapsed := RunFromStats(stats).Duration.Round(time.Second)
	return fmt.Sprintf("ROOM %d/%d   DEATHS %d   %s",
		level.Sim.Room.Index()+1, level.Sim.Room.Count(), stats.Deaths, elapsed)
}

// getPauseHint returns the appropriate hint for pause menu
func getPauseHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "D-Pad: Navigate   Cross: Select   Options: Resume"
	case components.InputXbox:
		return "D-Pad: Navigate   A: Select   Start: Resume"
	}
	return "Arrows: Navigate   Enter: Select   Esc: Resume"
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{
			IsPaused:       false,
			SelectedOption: components.MenuResume,
		})
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}
