package components

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// RotationData animates the room turning a quarter clockwise. The grid has
// already turned when the tween starts, so Angle runs from -90 degrees up to 0.
type RotationData struct {
	Tween  *gween.Tween
	Angle  float64 // degrees
	Active bool
}

var Rotation = donburi.NewComponentType[RotationData]()

// Start begins a quarter turn lasting duration seconds.
func (r *RotationData) Start(duration float64) {
	r.Tween = gween.New(-90, 0, float32(duration), ease.OutCubic)
	r.Angle = -90
	r.Active = true
}

// Advance moves the turn on by dt seconds.
func (r *RotationData) Advance(dt float64) {
	if !r.Active || r.Tween == nil {
		return
	}
	angle, done := r.Tween.Update(float32(dt))
	r.Angle = float64(angle)
	if done {
		r.Stop()
	}
}

// Stop drops any turn in progress and levels the view.
func (r *RotationData) Stop() {
	r.Tween = nil
	r.Angle = 0
	r.Active = false
}
