package systems

import (
	"github.com/automoto/cavefall/components"
	cfg "github.com/automoto/cavefall/config"
	"github.com/automoto/cavefall/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// ShowMessage displays a banner across the middle of the room.
func ShowMessage(ecs *ecs.ECS, msg string) {
	state := getOrCreateMessageState(ecs)
	state.Text = msg
	state.DisplayTimer = cfg.Message.DisplayDuration
}

// UpdateMessage counts the active banner down.
func UpdateMessage(ecs *ecs.ECS) {
	state := getOrCreateMessageState(ecs)
	if state.DisplayTimer > 0 {
		state.DisplayTimer--
		if state.DisplayTimer == 0 {
			state.Text = ""
		}
	}
}

// DrawMessage renders the active banner centered on screen
func DrawMessage(ecs *ecs.ECS, screen *ebiten.Image) {
	state := getOrCreateMessageState(ecs)
	if state.Text == "" {
		return
	}

	face := fonts.Bold.Get()
	width := float64(screen.Bounds().Dx())
	x := centerTextX(state.Text, face, width)
	y := screen.Bounds().Dy() / 3

	text.Draw(screen, state.Text, face, x+1, y+1, cfg.Message.ShadowColor)
	text.Draw(screen, state.Text, face, x, y, cfg.Message.TextColor)
}

// getOrCreateMessageState returns the singleton MessageState component
func getOrCreateMessageState(ecs *ecs.ECS) *components.MessageStateData {
	entry, ok := components.MessageState.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.MessageState))
	}
	return components.MessageState.Get(entry)
}
