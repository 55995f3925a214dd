package physics

import (
	"math/rand"
	"testing"

	"github.com/automoto/cavefall/shared/rooms"
	"github.com/yohamta/donburi/features/math"
)

// openGrid is a walled room with a doorway on the left border and nothing
// else inside.
func openGrid() rooms.Grid {
	var g rooms.Grid
	for i := 0; i < rooms.Size; i++ {
		g[0][i], g[rooms.Size-1][i] = rooms.Ground, rooms.Ground
		g[i][0], g[i][rooms.Size-1] = rooms.Ground, rooms.Ground
	}
	g[4][0], g[5][0] = rooms.Start, rooms.Start
	return g
}

func newSim(t *testing.T, cfg Config, catalog rooms.Catalog) *Simulation {
	t.Helper()
	room := rooms.New(catalog, rand.New(rand.NewSource(7)))
	s := New(room, cfg)
	s.Start(0)
	return s
}

func overlapsCell(p *Player, c rooms.Cell) bool {
	x, y := rooms.CellOrigin(c)
	return p.Position.X < x+rooms.TileSize && p.Right() > x &&
		p.Position.Y < y+rooms.TileSize && p.Bottom() > y
}

func stepUntil(s *Simulation, in Input, limit int, done func() bool) bool {
	for i := 0; i < limit; i++ {
		s.Step(in)
		if done() {
			return true
		}
	}
	return false
}

func hasEvent(events []Event, kind EventKind) (Event, bool) {
	for _, ev := range events {
		if ev.Kind == kind {
			return ev, true
		}
	}
	return Event{}, false
}

func TestStartPlacesPlayerAtDoorway(t *testing.T) {
	s := newSim(t, DefaultConfig(), rooms.DefaultCatalog())

	if got := s.Room.Start(); got != (rooms.Cell{Col: 0, Row: 4}) {
		t.Fatalf("Start() = %+v, expected {Col:0 Row:4}", got)
	}
	if s.Player.Position != (math.Vec2{X: 0, Y: 4 * rooms.TileSize}) {
		t.Errorf("player at %+v, expected (0, 128)", s.Player.Position)
	}
	if s.Player.Oxygen != s.Config.OxygenMax {
		t.Errorf("Oxygen = %v, expected %v", s.Player.Oxygen, s.Config.OxygenMax)
	}
}

func TestPlayerLandsOnDoorwayFloor(t *testing.T) {
	s := newSim(t, DefaultConfig(), rooms.DefaultCatalog())

	var events []Event
	ok := stepUntil(s, Input{}, 120, func() bool {
		events = append(events, s.DrainEvents()...)
		return s.Player.State == Grounded
	})
	if !ok {
		t.Fatalf("player never landed, state %v at %+v", s.Player.State, s.Player.Position)
	}
	if s.Player.Position.Y != 5*rooms.TileSize {
		t.Errorf("Position.Y = %v, expected %v", s.Player.Position.Y, 5*rooms.TileSize)
	}
	if s.Player.Velocity.Y != 0 {
		t.Errorf("Velocity.Y = %v after landing", s.Player.Velocity.Y)
	}
	if _, ok := hasEvent(events, EventGrounded); !ok {
		t.Error("no grounded event emitted")
	}
}

func TestMovementStateMachine(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LandingDuration = 0.2
	s := newSim(t, cfg, rooms.DefaultCatalog())
	p := s.Player
	right := Input{Horizontal: 1}

	if !stepUntil(s, Input{}, 120, func() bool { return p.State == Grounded }) {
		t.Fatal("player never landed")
	}

	s.Step(right)
	if p.State != Grounded || p.Position.X != 0 {
		t.Fatalf("input applied while grounded: state %v x %v", p.State, p.Position.X)
	}

	if !stepUntil(s, right, 30, func() bool { return p.State != Grounded }) {
		t.Fatal("landing never finished")
	}
	if p.State != Walking {
		t.Errorf("State = %v after landing with input held, expected walking", p.State)
	}
	if p.Facing != FacingRight {
		t.Errorf("Facing = %v, expected right", p.Facing)
	}

	s.Step(Input{})
	if p.State != Idle {
		t.Errorf("State = %v after releasing input, expected idle", p.State)
	}

	s.DrainEvents()
	if !stepUntil(s, right, 60, func() bool { return p.State == Falling }) {
		t.Fatal("player never walked off the ledge")
	}
	if _, ok := hasEvent(s.DrainEvents(), EventFalling); !ok {
		t.Error("no falling event emitted")
	}

	if !stepUntil(s, right, 120, func() bool { return p.State == Grounded }) {
		t.Fatal("player never reached the floor")
	}
	if p.Bottom() != 9*rooms.TileSize {
		t.Errorf("Bottom() = %v, expected the top of the floor row", p.Bottom())
	}
}

func TestWalkIntoWallStops(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LandingDuration = 0
	s := newSim(t, cfg, rooms.Catalog{openGrid()})
	p := s.Player
	p.Position = math.Vec2{X: 200, Y: 8 * rooms.TileSize}
	p.State = Idle

	blocked := false
	for i := 0; i < 60; i++ {
		s.Step(Input{Horizontal: 1})
		if p.Velocity.X == 0 && p.State == Walking {
			blocked = true
		}
	}

	if want := float64(9*rooms.TileSize) - p.Width; p.Position.X != want {
		t.Errorf("Position.X = %v, expected %v", p.Position.X, want)
	}
	if !blocked {
		t.Error("horizontal velocity was never zeroed by the wall")
	}
}

func TestResolveXReportsCollision(t *testing.T) {
	s := newSim(t, DefaultConfig(), rooms.Catalog{openGrid()})
	p := s.Player
	p.Position = math.Vec2{X: 9*rooms.TileSize - p.Width + 2, Y: 128}
	p.Velocity = math.Vec2{X: 100}

	if !s.ResolveX() {
		t.Fatal("ResolveX() = false moving into the wall")
	}
	if p.Right() != 9*rooms.TileSize {
		t.Errorf("Right() = %v, expected %v", p.Right(), 9*rooms.TileSize)
	}

	p.Position.X = 100
	p.Velocity.X = 100
	if s.ResolveX() {
		t.Error("ResolveX() = true in open space")
	}
}

func TestDiagonalCornerDoesNotTunnel(t *testing.T) {
	block := rooms.Cell{Col: 5, Row: 5}
	g := openGrid()
	g[block.Row][block.Col] = rooms.Ground

	tests := []struct {
		name   string
		start  math.Vec2
		dx, dy float64
	}{
		{"down right", math.Vec2{X: 127, Y: 127}, 1, 1},
		{"down left", math.Vec2{X: 193, Y: 127}, -1, 1},
		{"up right", math.Vec2{X: 127, Y: 193}, 1, -1},
		{"up left", math.Vec2{X: 193, Y: 193}, -1, -1},
	}
	speeds := []float64{60, 600, 1200, 1900}

	for _, tc := range tests {
		for _, speed := range speeds {
			t.Run(tc.name, func(t *testing.T) {
				s := newSim(t, DefaultConfig(), rooms.Catalog{g})
				p := s.Player
				dt := s.Config.TimeStep
				p.State = Falling
				p.Position = tc.start
				p.Velocity = math.Vec2{X: tc.dx * speed, Y: tc.dy * speed}

				p.Position.X += p.Velocity.X * dt
				s.ResolveX()
				p.Position.Y += p.Velocity.Y * dt
				s.ResolveY()

				if overlapsCell(p, block) {
					t.Errorf("speed %v: player at %+v overlaps the block", speed, p.Position)
				}
			})
		}
	}
}

func TestHazardResetsFromAnyDirection(t *testing.T) {
	hazard := rooms.Cell{Col: 5, Row: 5}

	tests := []struct {
		name  string
		tile  rooms.TileType
		start math.Vec2
		vel   math.Vec2
	}{
		{"from the left", rooms.Stalagmite, math.Vec2{X: 127, Y: 160}, math.Vec2{X: 1}},
		{"from the right", rooms.Stalagmite, math.Vec2{X: 193, Y: 160}, math.Vec2{X: -1}},
		{"from above", rooms.Stalagmite, math.Vec2{X: 160, Y: 127}, math.Vec2{Y: 1}},
		{"from below", rooms.Stalactite, math.Vec2{X: 160, Y: 193}, math.Vec2{Y: -1}},
	}
	speeds := []float64{120, 1800}

	for _, tc := range tests {
		for _, speed := range speeds {
			t.Run(tc.name, func(t *testing.T) {
				g := openGrid()
				g[hazard.Row][hazard.Col] = tc.tile
				s := newSim(t, DefaultConfig(), rooms.Catalog{g})
				p := s.Player
				dt := s.Config.TimeStep
				p.State = Falling
				p.Oxygen = 3
				p.Position = tc.start
				p.Velocity = math.Vec2{X: tc.vel.X * speed, Y: tc.vel.Y * speed}

				if tc.vel.X != 0 {
					p.Position.X += p.Velocity.X * dt
					s.ResolveX()
				} else {
					p.Position.Y += p.Velocity.Y * dt
					s.ResolveY()
				}

				ev, ok := hasEvent(s.DrainEvents(), EventDeath)
				if !ok {
					t.Fatalf("speed %v: no death event, player at %+v", speed, p.Position)
				}
				if ev.Cell != hazard {
					t.Errorf("death cell = %+v, expected %+v", ev.Cell, hazard)
				}
				x, y := s.Room.StartPosition()
				if p.Position != (math.Vec2{X: x, Y: y}) {
					t.Errorf("player at %+v, expected start (%v, %v)", p.Position, x, y)
				}
				if p.Oxygen != s.Config.OxygenMax {
					t.Errorf("Oxygen = %v, expected %v", p.Oxygen, s.Config.OxygenMax)
				}
				if p.Velocity != (math.Vec2{}) {
					t.Errorf("Velocity = %+v, expected zero", p.Velocity)
				}
			})
		}
	}
}

// approach puts the player next to cell and moves it one tick into it.
func approach(s *Simulation, cell rooms.Cell) {
	p := s.Player
	dt := s.Config.TimeStep
	const speed = 120
	x, y := rooms.CellOrigin(cell)
	p.State = Falling
	p.Velocity = math.Vec2{}

	switch {
	case cell.Row == 0:
		p.Position = math.Vec2{X: x, Y: y + rooms.TileSize + 1}
		p.Velocity.Y = -speed
	case cell.Row == rooms.Size-1:
		p.Position = math.Vec2{X: x, Y: y - p.Height - 1}
		p.Velocity.Y = speed
	case cell.Col == 0:
		p.Position = math.Vec2{X: x + rooms.TileSize + 1, Y: y}
		p.Velocity.X = -speed
	default:
		p.Position = math.Vec2{X: x - p.Width - 1, Y: y}
		p.Velocity.X = speed
	}

	if p.Velocity.X != 0 {
		p.Position.X += p.Velocity.X * dt
		s.ResolveX()
		return
	}
	p.Position.Y += p.Velocity.Y * dt
	s.ResolveY()
}

func firstExit(r *rooms.Room) rooms.Cell {
	g := r.Tiles()
	for row := range g {
		for col := range g[row] {
			if g[row][col] == rooms.Exit {
				return rooms.Cell{Col: col, Row: row}
			}
		}
	}
	return rooms.Cell{Col: -1, Row: -1}
}

func TestExitChainsRooms(t *testing.T) {
	s := newSim(t, DefaultConfig(), rooms.DefaultCatalog())
	count := s.Room.Count()

	visited := []int{s.Room.Index()}
	for i := 0; i < 2*count; i++ {
		from := s.Room.Index()
		s.Player.Oxygen = 1
		approach(s, firstExit(s.Room))

		ev, ok := hasEvent(s.DrainEvents(), EventExit)
		if !ok {
			t.Fatalf("room %d: no exit event, player at %+v", from, s.Player.Position)
		}
		if ev.Wrapped != (from == count-1) {
			t.Errorf("room %d: Wrapped = %v", from, ev.Wrapped)
		}
		if ev.Room != s.Room.Index() {
			t.Errorf("event room %d, loaded %d", ev.Room, s.Room.Index())
		}
		if s.Player.Oxygen != s.Config.OxygenMax {
			t.Errorf("room %d: oxygen not restored", s.Room.Index())
		}
		x, y := s.Room.StartPosition()
		if s.Player.Position != (math.Vec2{X: x, Y: y}) {
			t.Errorf("room %d: player at %+v, expected start", s.Room.Index(), s.Player.Position)
		}
		visited = append(visited, s.Room.Index())
	}

	for i, idx := range visited {
		if idx != i%count {
			t.Fatalf("visited %v, expected rooms in catalog order", visited)
		}
	}
}

func TestExitAbortsTick(t *testing.T) {
	s := newSim(t, DefaultConfig(), rooms.DefaultCatalog())
	p := s.Player
	p.State = Idle
	p.Position = math.Vec2{X: 32, Y: 34}
	p.Velocity = math.Vec2{}
	s.Player.Oxygen = s.Config.OxygenMax

	// The exit sits directly above; ResolveY sees it when moving up.
	p.Velocity.Y = -180
	p.Position.Y += p.Velocity.Y * s.Config.TimeStep
	s.ResolveY()

	if s.Room.Index() != 1 {
		t.Fatalf("Index() = %d, expected 1", s.Room.Index())
	}
	if !s.interrupted {
		t.Error("exit did not interrupt the tick")
	}
}

func TestOxygenSuffocates(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OxygenMax = 1
	cfg.OxygenDrain = 10
	s := newSim(t, cfg, rooms.DefaultCatalog())

	var events []Event
	ok := stepUntil(s, Input{}, 10, func() bool {
		events = append(events, s.DrainEvents()...)
		_, found := hasEvent(events, EventSuffocated)
		return found
	})
	if !ok {
		t.Fatalf("no suffocation after 10 ticks, oxygen %v", s.Player.Oxygen)
	}
	if s.Player.Oxygen != cfg.OxygenMax {
		t.Errorf("Oxygen = %v, expected %v", s.Player.Oxygen, cfg.OxygenMax)
	}
	x, y := s.Room.StartPosition()
	if s.Player.Position != (math.Vec2{X: x, Y: y}) {
		t.Errorf("player at %+v, expected start", s.Player.Position)
	}
}

func TestOxygenDrains(t *testing.T) {
	s := newSim(t, DefaultConfig(), rooms.DefaultCatalog())
	s.Step(Input{})
	if s.Player.Oxygen >= s.Config.OxygenMax {
		t.Errorf("Oxygen = %v, expected below %v", s.Player.Oxygen, s.Config.OxygenMax)
	}
	if r := s.Player.OxygenRatio(s.Config); r <= 0 || r >= 1 {
		t.Errorf("OxygenRatio() = %v", r)
	}
}

func TestRespawn(t *testing.T) {
	s := newSim(t, DefaultConfig(), rooms.DefaultCatalog())
	s.Player.Position = math.Vec2{X: 150, Y: 200}
	s.Player.Oxygen = 4
	s.Player.State = Walking
	s.DrainEvents()

	s.Respawn()

	if s.Player.Position != (math.Vec2{X: 0, Y: 128}) {
		t.Errorf("player at %+v, expected (0, 128)", s.Player.Position)
	}
	if s.Player.Oxygen != s.Config.OxygenMax {
		t.Errorf("Oxygen = %v", s.Player.Oxygen)
	}
	if _, ok := hasEvent(s.DrainEvents(), EventRespawn); !ok {
		t.Error("no respawn event")
	}
}
