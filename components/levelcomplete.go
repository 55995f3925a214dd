package components

import "github.com/yohamta/donburi"

// LevelCompleteData stores the state of the daylight fade after the last room
type LevelCompleteData struct {
	IsComplete bool
	Timer      int // frames left before the ending scene
}

var LevelComplete = donburi.NewComponentType[LevelCompleteData]()
