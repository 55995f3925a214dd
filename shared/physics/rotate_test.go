package physics

import (
	"testing"

	"github.com/automoto/cavefall/shared/rooms"
	"github.com/yohamta/donburi/features/math"
)

func TestRemapPinsCell(t *testing.T) {
	tests := []struct {
		name string
		cell rooms.Cell
	}{
		{"left doorway", rooms.Cell{Col: 0, Row: 4}},
		{"top row", rooms.Cell{Col: 5, Row: 0}},
		{"interior", rooms.Cell{Col: 2, Row: 7}},
		{"bottom right", rooms.Cell{Col: 9, Row: 9}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y := rooms.CellOrigin(tc.cell)
			got := Remap(math.Vec2{X: x, Y: y}, rooms.TileSize)

			want := rooms.Cell{Col: rooms.Size - 1 - tc.cell.Row, Row: tc.cell.Col}
			wx, wy := rooms.CellOrigin(want)
			if got.X != wx || got.Y != wy {
				t.Errorf("Remap(%v, %v) = %+v, expected (%v, %v)", x, y, got, wx, wy)
			}
		})
	}
}

func TestRemapOrderFour(t *testing.T) {
	start := math.Vec2{X: 37.5, Y: 201.25}
	pos := start
	for i := 0; i < 4; i++ {
		pos = Remap(pos, rooms.TileSize)
	}
	if pos != start {
		t.Errorf("four remaps moved %+v to %+v", start, pos)
	}
}

func TestRotateKeepsPlayerOnItsCell(t *testing.T) {
	s := newSim(t, DefaultConfig(), rooms.DefaultCatalog())
	p := s.Player

	for turn := 0; turn < 4; turn++ {
		before := rooms.CellAt(p.Position.X, p.Position.Y)
		tile := s.Room.Tile(before.Col, before.Row)

		p.State = Idle
		if !s.Rotate() {
			t.Fatalf("turn %d: Rotate() = false", turn)
		}

		after := rooms.CellAt(p.Position.X, p.Position.Y)
		if want := (rooms.Cell{Col: rooms.Size - 1 - before.Row, Row: before.Col}); after != want {
			t.Errorf("turn %d: player cell %+v, expected %+v", turn, after, want)
		}
		if got := s.Room.Tile(after.Col, after.Row); got != tile {
			t.Errorf("turn %d: player tile %v, expected %v", turn, got, tile)
		}
	}
	if s.Room.Rotations() != 0 {
		t.Errorf("Rotations() = %d after four turns", s.Room.Rotations())
	}
}

func TestRotateEntersRotatingState(t *testing.T) {
	s := newSim(t, DefaultConfig(), rooms.DefaultCatalog())
	p := s.Player
	p.Velocity = math.Vec2{X: 50, Y: 200}
	s.DrainEvents()

	if !s.Rotate() {
		t.Fatal("Rotate() = false")
	}
	if p.State != Rotating {
		t.Errorf("State = %v, expected rotating", p.State)
	}
	if p.Velocity.Y != 0 {
		t.Errorf("Velocity.Y = %v, expected 0", p.Velocity.Y)
	}
	if _, ok := hasEvent(s.DrainEvents(), EventRotated); !ok {
		t.Error("no rotated event")
	}
	if s.Rotate() {
		t.Error("Rotate() succeeded while a turn was running")
	}

	pos := p.Position
	s.Step(Input{Horizontal: 1})
	if p.Position != pos {
		t.Errorf("player moved from %+v to %+v while rotating", pos, p.Position)
	}

	ticks := int(s.Config.RotateDuration/s.Config.TimeStep) + 2
	if !stepUntil(s, Input{}, ticks, func() bool { return p.State != Rotating }) {
		t.Fatal("rotation never finished")
	}
	if p.State != Falling {
		t.Errorf("State = %v after rotating, expected falling", p.State)
	}
}

func TestRotateNudgesAwayFromBorder(t *testing.T) {
	tests := []struct {
		name  string
		start math.Vec2
		sign  float64
	}{
		{"lands in right column", math.Vec2{X: 128, Y: 0}, -1},
		{"lands in left column", math.Vec2{X: 128, Y: 288}, 1},
		{"lands inside", math.Vec2{X: 128, Y: 128}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newSim(t, DefaultConfig(), rooms.Catalog{openGrid()})
			p := s.Player
			p.State = Idle
			p.Position = tc.start

			s.Rotate()

			if want := tc.sign * s.Config.RotateNudge; p.Velocity.X != want {
				t.Errorf("Velocity.X = %v, expected %v", p.Velocity.X, want)
			}
		})
	}
}
