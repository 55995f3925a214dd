// Package physics moves the player through a rooms.Room: per-axis collision
// resolution against the tile grid, the movement state machine, oxygen and
// the rotate command.
package physics

import (
	"github.com/automoto/cavefall/shared/gamemath"
	"github.com/automoto/cavefall/shared/rooms"
	"github.com/yohamta/donburi/features/math"
)

// Input is the player intent sampled for one tick.
type Input struct {
	// Horizontal is -1 for left, 1 for right, 0 for none.
	Horizontal float64
}

// Simulation owns everything one tick touches. It is not safe for
// concurrent use.
type Simulation struct {
	Room   *rooms.Room
	Player *Player
	Config Config

	// Now is the simulated time in seconds.
	Now float64

	events      []Event
	interrupted bool
}

// New returns a simulation over room with a fresh player. Call Start before
// the first Step.
func New(room *rooms.Room, cfg Config) *Simulation {
	return &Simulation{
		Room:   room,
		Player: NewPlayer(cfg),
		Config: cfg,
	}
}

// Start loads room index and places the player at its start cell.
func (s *Simulation) Start(index int) {
	s.Room.LoadRoom(index)
	s.reset()
}

// Step advances the simulation by one fixed time step.
func (s *Simulation) Step(in Input) {
	dt := s.Config.TimeStep
	p := s.Player
	s.Now += dt
	s.interrupted = false

	s.applyInput(in)

	limit := s.Config.MaxStep() / dt
	p.Velocity.X = gamemath.ClampSpeed(p.Velocity.X, limit)
	p.Velocity.Y = gamemath.ClampSpeed(p.Velocity.Y, limit)

	p.Position.X += p.Velocity.X * dt
	s.ResolveX()
	if s.interrupted {
		return
	}

	p.Position.Y += p.Velocity.Y * dt
	s.ResolveY()
	if s.interrupted {
		return
	}

	p.Oxygen -= s.Config.OxygenDrain * dt
	if p.Oxygen <= 0 {
		s.die(rooms.CellAt(p.Position.X, p.Position.Y), EventSuffocated)
	}
}

// Respawn puts the player back at the start cell of the current room.
func (s *Simulation) Respawn() {
	s.reset()
	s.emit(Event{Kind: EventRespawn, Cell: s.Room.Start(), Room: s.Room.Index()})
}

// DrainEvents returns the events queued since the last call and clears the
// queue.
func (s *Simulation) DrainEvents() []Event {
	ev := s.events
	s.events = nil
	return ev
}

func (s *Simulation) emit(ev Event) {
	s.events = append(s.events, ev)
}

// reset places the player at the current start with zero velocity and full
// oxygen.
func (s *Simulation) reset() {
	p := s.Player
	x, y := s.Room.StartPosition()
	p.Position = math.Vec2{X: x, Y: y}
	p.Velocity = math.Vec2{}
	p.Oxygen = s.Config.OxygenMax
	p.State = Falling
	p.RotateTimer = 0
}

func (s *Simulation) die(cell rooms.Cell, kind EventKind) {
	s.reset()
	s.interrupted = true
	s.emit(Event{Kind: kind, Cell: cell, Room: s.Room.Index()})
}

func (s *Simulation) exit(cell rooms.Cell) {
	from := s.Room.Index()
	s.Room.LoadRoom(s.Room.Next())
	s.reset()
	s.interrupted = true
	s.emit(Event{
		Kind:    EventExit,
		Cell:    cell,
		Room:    s.Room.Index(),
		Wrapped: s.Room.Index() <= from,
	})
}
