package gamemath

import "math"

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Sign returns -1, 0 or 1 according to the sign of v.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// SpanCells returns the first and last cell index covered by the half-open
// interval [lo, lo+size) on a grid of cellSize cells.
func SpanCells(lo, size, cellSize float64) (first, last int) {
	first = int(math.Floor(lo / cellSize))
	last = int(math.Ceil((lo+size)/cellSize)) - 1
	if last < first {
		last = first
	}
	return first, last
}

// CellBehind returns the cell touched by an edge at v when moving toward
// negative coordinates. An edge lying exactly on a boundary touches the cell
// before it.
func CellBehind(v, cellSize float64) int {
	return int(math.Ceil(v/cellSize)) - 1
}

// CellAhead returns the cell touched by an edge at v when moving toward
// positive coordinates.
func CellAhead(v, cellSize float64) int {
	return int(math.Floor(v / cellSize))
}
