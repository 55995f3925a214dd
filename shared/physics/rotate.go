package physics

import (
	"github.com/automoto/cavefall/shared/rooms"
	"github.com/yohamta/donburi/features/math"
)

// Remap returns where a box anchored at its top-left corner ends up after
// the room turns 90 degrees clockwise about its center. height is the box
// height, which becomes its width along the new X axis.
func Remap(pos math.Vec2, height float64) math.Vec2 {
	const c = rooms.Extent / 2.0
	dx, dy := pos.X-c, pos.Y-c
	return math.Vec2{
		X: c - dy - height,
		Y: c + dx,
	}
}

// Rotate turns the room clockwise under the player and keeps the player on
// the same physical cells. It returns false while a previous turn is still
// running.
func (s *Simulation) Rotate() bool {
	p := s.Player
	if p.State == Rotating {
		return false
	}

	s.Room.RotateRoom()
	p.Position = Remap(p.Position, p.Height)
	p.Velocity = math.Vec2{}
	p.State = Rotating
	p.RotateTimer = s.Config.RotateDuration

	// Push a player caught in a border column toward the interior.
	switch {
	case p.Position.X < rooms.TileSize:
		p.Velocity.X = s.Config.RotateNudge
	case p.Right() > rooms.Extent-rooms.TileSize:
		p.Velocity.X = -s.Config.RotateNudge
	}

	s.emit(Event{
		Kind: EventRotated,
		Cell: rooms.CellAt(p.Position.X, p.Position.Y),
		Room: s.Room.Index(),
	})
	return true
}
