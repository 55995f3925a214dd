package config

// SettingsMenuConfig contains settings offered on the title screen
type SettingsMenuConfig struct {
	WindowScales []int
}

// SettingsMenu is the global settings menu configuration
var SettingsMenu SettingsMenuConfig

func init() {
	SettingsMenu = SettingsMenuConfig{
		WindowScales: []int{1, 2, 3, 4},
	}
}

// NextScale returns the window scale that follows current, wrapping around.
func NextScale(current int) int {
	scales := SettingsMenu.WindowScales
	for i, s := range scales {
		if s == current {
			return scales[(i+1)%len(scales)]
		}
	}
	return scales[0]
}
