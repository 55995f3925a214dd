package physics

import "github.com/automoto/cavefall/shared/gamemath"

// applyInput runs the input-driven transitions of the movement state machine
// and sets the horizontal velocity for this tick.
func (s *Simulation) applyInput(in Input) {
	p := s.Player
	cfg := s.Config

	switch p.State {
	case Rotating:
		p.RotateTimer -= cfg.TimeStep
		if p.RotateTimer <= 0 {
			p.RotateTimer = 0
			p.State = Falling
			p.Velocity.X = 0
		}
		return
	case Grounded:
		p.Velocity.X = 0
		if s.Now-p.GroundedAt < cfg.LandingDuration {
			return
		}
		p.State = Idle
	}

	dir := gamemath.Sign(in.Horizontal)
	p.Velocity.X = dir * cfg.WalkSpeed
	if dir != 0 {
		p.Facing = dir
	}

	switch p.State {
	case Idle:
		if dir != 0 {
			p.State = Walking
		}
	case Walking:
		if dir == 0 {
			p.State = Idle
		}
	}
}

// land handles a blocked downward move.
func (s *Simulation) land() {
	p := s.Player
	p.Velocity.Y = 0
	if p.State != Falling {
		return
	}
	p.State = Grounded
	p.GroundedAt = s.Now
	s.emit(Event{Kind: EventGrounded, Room: s.Room.Index()})
}

// fall handles a tick without support: enter Falling and accumulate gravity.
// A rotating player hangs in place until the turn completes.
func (s *Simulation) fall() {
	p := s.Player
	if p.State == Rotating {
		return
	}
	if p.State != Falling {
		p.State = Falling
		s.emit(Event{Kind: EventFalling, Room: s.Room.Index()})
	}
	p.Velocity.Y = gamemath.ClampSpeed(p.Velocity.Y+s.Config.Gravity*s.Config.TimeStep, s.Config.MaxFallSpeed)
}
