package systems

import (
	"fmt"

	cfg "github.com/automoto/cavefall/config"
	"github.com/automoto/cavefall/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the oxygen bar in the top-left corner and the room and
// death counters in the top-right.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	_, level, ok := GetLevel(ecs)
	if !ok {
		return
	}
	sim := level.Sim
	margin := float32(cfg.HUD.Margin)
	barW := float32(cfg.HUD.OxygenBarWidth)
	barH := float32(cfg.HUD.OxygenBarHeight)

	vector.DrawFilledRect(screen, margin, margin, barW, barH, cfg.HUD.OxygenBarBgColor, false)

	ratio := sim.Player.OxygenRatio(sim.Config)
	fg := cfg.HUD.OxygenBarFgColor
	if ratio < cfg.HUD.OxygenLowFraction {
		fg = cfg.HUD.OxygenLowColor
	}
	vector.DrawFilledRect(screen, margin, margin, barW*float32(ratio), barH, fg, false)

	face := fonts.Small.Get()
	text.Draw(screen, "O2", face, int(margin+barW)+4, int(margin+barH), cfg.HUD.TextColor)

	width := float64(screen.Bounds().Dx())
	roomLabel := fmt.Sprintf("ROOM %d/%d", sim.Room.Index()+1, sim.Room.Count())
	text.Draw(screen, roomLabel, face, int(width)-text.BoundString(face, roomLabel).Dx()-int(margin), int(margin+barH), cfg.HUD.TextColor)

	if stats := GetRunStats(ecs); stats != nil && stats.Deaths > 0 {
		deaths := fmt.Sprintf("DEATHS %d", stats.Deaths)
		text.Draw(screen, deaths, face, int(width)-text.BoundString(face, deaths).Dx()-int(margin), int(margin+barH)+12, cfg.HUD.TextColor)
	}
}
