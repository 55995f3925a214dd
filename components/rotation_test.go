package components

import "testing"

func TestRotationRunsToLevel(t *testing.T) {
	var r RotationData
	r.Start(0.5)
	if !r.Active || r.Angle != -90 {
		t.Fatalf("after Start: active=%v angle=%v, expected active at -90", r.Active, r.Angle)
	}

	r.Advance(0.25)
	if !r.Active || r.Angle <= -90 || r.Angle >= 0 {
		t.Errorf("halfway: active=%v angle=%v, expected a turn in progress", r.Active, r.Angle)
	}

	r.Advance(0.5)
	if r.Active || r.Angle != 0 || r.Tween != nil {
		t.Errorf("after the turn: active=%v angle=%v, expected a level idle view", r.Active, r.Angle)
	}
}

func TestRotationStopMidTurn(t *testing.T) {
	var r RotationData
	r.Start(0.5)
	r.Advance(0.1)
	r.Stop()

	if r.Active || r.Angle != 0 || r.Tween != nil {
		t.Fatalf("after Stop: active=%v angle=%v, expected a level idle view", r.Active, r.Angle)
	}
	// Further ticks must not pick the old turn back up.
	r.Advance(0.1)
	if r.Angle != 0 {
		t.Errorf("Advance() after Stop moved the view to %v", r.Angle)
	}
}
