// Package animations steps the frame counters the renderer draws the miner
// from. The miner has no sprite sheet, so a frame is only an index into a
// procedural pose.
package animations

// Animation cycles through Frames poses, holding each for TicksPerFrame
// ticks.
type Animation struct {
	Frames        int
	TicksPerFrame int
	// Once holds the last pose instead of wrapping around.
	Once bool

	tick  int
	frame int
	done  bool
}

func NewAnimation(frames, ticksPerFrame int, once bool) *Animation {
	if frames < 1 {
		frames = 1
	}
	if ticksPerFrame < 1 {
		ticksPerFrame = 1
	}
	return &Animation{Frames: frames, TicksPerFrame: ticksPerFrame, Once: once}
}

// Update advances the animation by one tick.
func (a *Animation) Update() {
	if a.done {
		return
	}
	a.tick++
	if a.tick < a.TicksPerFrame {
		return
	}
	a.tick = 0
	a.frame++
	if a.frame < a.Frames {
		return
	}
	if a.Once {
		a.frame = a.Frames - 1
		a.done = true
		return
	}
	a.frame = 0
}

func (a *Animation) Frame() int { return a.frame }

// Done reports whether a one-shot animation reached its last pose.
func (a *Animation) Done() bool { return a.done }

func (a *Animation) Restart() {
	a.tick = 0
	a.frame = 0
	a.done = false
}
