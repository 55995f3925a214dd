package systems

import (
	"fmt"

	cfg "github.com/automoto/cavefall/config"
	"github.com/automoto/cavefall/shared/physics"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEvents reacts to what the simulation reported during this frame's
// tick. Must run after UpdatePlayer.
func UpdateEvents(e *ecs.ECS) {
	_, level, ok := GetLevel(e)
	if !ok {
		return
	}
	stats := GetRunStats(e)
	stats.Ticks++

	for _, ev := range level.Sim.DrainEvents() {
		switch ev.Kind {
		case physics.EventDeath, physics.EventSuffocated:
			stats.Deaths++
			log.Info("miner died",
				"cause", ev.Kind,
				"room", ev.Room,
				"col", ev.Cell.Col,
				"row", ev.Cell.Row,
				"deaths", stats.Deaths)
			TriggerScreenShake(e, cfg.Effects.DeathShakeIntensity, cfg.Effects.DeathShakeDuration)
			TriggerPlayerFlash(e, cfg.Effects.DeathFlashDuration, 1, 0.4, 0.4)
			if ev.Kind == physics.EventSuffocated {
				ShowMessage(e, "OUT OF AIR")
			}

		case physics.EventExit:
			stats.RoomsCleared++
			log.Info("room cleared", "next", ev.Room, "wrapped", ev.Wrapped, "cleared", stats.RoomsCleared)
			if ev.Wrapped {
				stats.Completed = true
				StartLevelComplete(e)
				continue
			}
			ShowMessage(e, fmt.Sprintf("ROOM %d", ev.Room+1))
			SaveRunProgress(level.Sim, stats)

		case physics.EventRotated:
			stats.Rotations++
			log.Debug("room rotated", "rotations", level.Sim.Room.Rotations(), "col", ev.Cell.Col, "row", ev.Cell.Row)

		case physics.EventRespawn:
			TriggerPlayerFlash(e, cfg.Effects.DeathFlashDuration, 1, 1, 1)
			log.Debug("room restarted", "room", ev.Room)

		case physics.EventGrounded, physics.EventFalling:
			log.Debug("movement", "event", ev.Kind, "state", level.Sim.Player.State)
		}
	}
}
