package physics

import (
	"github.com/automoto/cavefall/shared/rooms"
	"github.com/yohamta/donburi/features/math"
)

// MovementState is the player's discrete movement state.
type MovementState int

const (
	Idle MovementState = iota
	Walking
	Falling
	Grounded
	Rotating
)

func (s MovementState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Walking:
		return "walking"
	case Falling:
		return "falling"
	case Grounded:
		return "grounded"
	case Rotating:
		return "rotating"
	}
	return "unknown"
}

// Facing directions.
const (
	FacingLeft  = -1.0
	FacingRight = 1.0
)

// Player is the miner's physical state. Position is the top-left corner of
// the bounding box in world units.
type Player struct {
	Position math.Vec2
	Velocity math.Vec2
	Width    float64
	Height   float64

	State  MovementState
	Facing float64
	Oxygen float64

	// GroundedAt is the simulation time of the last landing.
	GroundedAt float64
	// RotateTimer counts down the remaining seconds of a rotation.
	RotateTimer float64
}

// NewPlayer returns a player one tile in size, facing right with full oxygen.
func NewPlayer(cfg Config) *Player {
	return &Player{
		Width:  rooms.TileSize,
		Height: rooms.TileSize,
		State:  Falling,
		Facing: FacingRight,
		Oxygen: cfg.OxygenMax,
	}
}

// Right returns the x coordinate of the right edge.
func (p *Player) Right() float64 { return p.Position.X + p.Width }

// Bottom returns the y coordinate of the bottom edge.
func (p *Player) Bottom() float64 { return p.Position.Y + p.Height }

// OxygenRatio returns oxygen as a fraction of max in [0, 1].
func (p *Player) OxygenRatio(cfg Config) float64 {
	if cfg.OxygenMax <= 0 {
		return 0
	}
	r := p.Oxygen / cfg.OxygenMax
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}
