package components

import "github.com/yohamta/donburi"

// SettingsData holds toggles that survive for the life of a scene.
type SettingsData struct {
	Debug bool // collider overlay
}

var Settings = donburi.NewComponentType[SettingsData]()
