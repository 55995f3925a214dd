package components

import "github.com/yohamta/donburi"

// RunStatsData counts what happened since the run started or was continued.
type RunStatsData struct {
	StartRoom    int
	RoomsCleared int
	Deaths       int
	Rotations    int
	Ticks        int
	Completed    bool
	RunID        int64 // history row, 0 until first recorded
}

var RunStats = donburi.NewComponentType[RunStatsData]()
