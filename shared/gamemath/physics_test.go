package gamemath

import "testing"

func TestClampSpeed(t *testing.T) {
	tests := []struct {
		name     string
		speed    float64
		max      float64
		expected float64
	}{
		{"within range", 3, 5, 3},
		{"above max", 9, 5, 5},
		{"below min", -9, 5, -5},
		{"zero", 0, 5, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClampSpeed(tc.speed, tc.max); got != tc.expected {
				t.Errorf("ClampSpeed(%v, %v) = %v, expected %v", tc.speed, tc.max, got, tc.expected)
			}
		})
	}
}

func TestSign(t *testing.T) {
	for v, want := range map[float64]float64{-3.5: -1, 0: 0, 0.01: 1} {
		if got := Sign(v); got != want {
			t.Errorf("Sign(%v) = %v, expected %v", v, got, want)
		}
	}
}

func TestSpanCells(t *testing.T) {
	tests := []struct {
		name        string
		lo, size    float64
		first, last int
	}{
		{"aligned", 64, 32, 2, 2},
		{"straddling", 70, 32, 2, 3},
		{"just past boundary", 63.5, 32, 1, 2},
		{"negative", -10, 32, -1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			first, last := SpanCells(tc.lo, tc.size, 32)
			if first != tc.first || last != tc.last {
				t.Errorf("SpanCells(%v, %v) = (%d, %d), expected (%d, %d)", tc.lo, tc.size, first, last, tc.first, tc.last)
			}
		})
	}
}

func TestLeadingCells(t *testing.T) {
	tests := []struct {
		name   string
		v      float64
		ahead  int
		behind int
	}{
		{"on boundary", 64, 2, 1},
		{"inside cell", 70, 2, 2},
		{"origin", 0, 0, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CellAhead(tc.v, 32); got != tc.ahead {
				t.Errorf("CellAhead(%v) = %d, expected %d", tc.v, got, tc.ahead)
			}
			if got := CellBehind(tc.v, 32); got != tc.behind {
				t.Errorf("CellBehind(%v) = %d, expected %d", tc.v, got, tc.behind)
			}
		})
	}
}
