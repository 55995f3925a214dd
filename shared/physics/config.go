package physics

import "github.com/automoto/cavefall/shared/rooms"

// Config holds the kernel tunables. Speeds are in world units per second.
type Config struct {
	TimeStep     float64
	Gravity      float64
	WalkSpeed    float64
	MaxFallSpeed float64

	OxygenMax   float64
	OxygenDrain float64

	// LandingDuration is how long the player stays Grounded after a landing.
	LandingDuration float64
	// RotateDuration is how long input is ignored after a rotation.
	RotateDuration float64
	// RotateNudge is the horizontal speed applied to a player caught in a
	// border column when the room turns.
	RotateNudge float64
}

// DefaultConfig returns the stock tunables at 60 ticks per second.
func DefaultConfig() Config {
	return Config{
		TimeStep:        1.0 / 60.0,
		Gravity:         588,
		WalkSpeed:       180,
		MaxFallSpeed:    900,
		OxygenMax:       100,
		OxygenDrain:     2.5,
		LandingDuration: 1.0,
		RotateDuration:  0.5,
		RotateNudge:     64,
	}
}

// MaxStep is the largest distance a player may travel on one axis in a
// single tick. Faster motion could skip a tile.
func (c Config) MaxStep() float64 {
	return rooms.TileSize - 1
}
