package tags

import (
	"github.com/automoto/cavefall/shared/rooms"
	"github.com/yohamta/donburi"
)

var (
	Player = donburi.NewTag().SetName("Player")
	Tile   = donburi.NewTag().SetName("Tile")
)

// Resolv tags for the room mirror
const (
	ResolvSolid  = "solid"
	ResolvHazard = "hazard"
	ResolvExit   = "exit"
	ResolvStart  = "start"
	ResolvRail   = "rail"
	ResolvPlayer = "Player"
)

// ForTile returns the resolv tag for a tile type, or "" for air.
func ForTile(t rooms.TileType) string {
	switch {
	case rooms.IsSolid(t):
		return ResolvSolid
	case rooms.IsDeath(t):
		return ResolvHazard
	case rooms.IsExit(t):
		return ResolvExit
	case rooms.IsStart(t):
		return ResolvStart
	case t == rooms.Rail:
		return ResolvRail
	}
	return ""
}
