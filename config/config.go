package config

import (
	"image/color"

	"github.com/automoto/cavefall/shared/physics"
	"github.com/automoto/cavefall/shared/rooms"
)

// Config holds general game configuration
type Config struct {
	Width  int `yaml:"-"`
	Height int `yaml:"-"`
	TPS    int `yaml:"tps"`
	// Scale is the window size as a multiple of the logical screen.
	Scale int `yaml:"scale"`
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	WalkSpeed float64 `yaml:"walk_speed"` // pixels per second

	// Oxygen
	OxygenMax   float64 `yaml:"oxygen_max"`
	OxygenDrain float64 `yaml:"oxygen_drain"` // units per second

	// Seconds spent getting up after a landing
	LandingDuration float64 `yaml:"landing_duration"`

	Color color.RGBA `yaml:"-"`
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`        // pixels per second squared
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // must stay below one tile per tick
}

// RotationConfig controls the rotate command and its tween.
type RotationConfig struct {
	Duration float64 `yaml:"duration"` // seconds
	Nudge    float64 `yaml:"nudge"`    // pixels per second away from a border column
}

// RoomConfig controls room rendering.
type RoomConfig struct {
	// Seed for the backdrop; 0 seeds from the clock.
	Seed int64 `yaml:"seed"`
	// Dir holds Tiled .tmx rooms replacing the built-in catalog when set.
	Dir string `yaml:"dir"`

	GroundColor     color.RGBA `yaml:"-"`
	ExitColor       color.RGBA `yaml:"-"`
	StartColor      color.RGBA `yaml:"-"`
	HazardColor     color.RGBA `yaml:"-"`
	RailColor       color.RGBA `yaml:"-"`
	BackgroundColor color.RGBA `yaml:"-"`
}

// HUDConfig contains HUD-related configuration values
type HUDConfig struct {
	OxygenBarWidth  float64
	OxygenBarHeight float64
	Margin          float64

	OxygenBarBgColor  color.RGBA
	OxygenBarFgColor  color.RGBA
	OxygenLowColor    color.RGBA
	OxygenLowFraction float64
	TextColor         color.RGBA
}

// MenuConfig contains title screen configuration
type MenuConfig struct {
	Title      string
	Subtitle   string
	TitleColor color.RGBA
	Background color.RGBA
}

// EndingConfig contains ending screen configuration
type EndingConfig struct {
	Title   string
	Message string
	// Frames the screen fades to daylight before the ending scene.
	FadeFrames int
	FadeColor  color.RGBA
}

// PauseConfig contains pause menu configuration
type PauseConfig struct {
	OverlayColor      color.RGBA
	MenuOptions       []string
	MenuItemHeight    float64
	MenuItemGap       float64
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
}

// MessageConfig controls the banners shown on room entry and death
type MessageConfig struct {
	DisplayDuration int // frames
	TextColor       color.RGBA
	ShadowColor     color.RGBA
}

// EffectsConfig contains death feedback values
type EffectsConfig struct {
	DeathShakeIntensity float64
	DeathShakeDuration  int
	DeathFlashDuration  int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu      bool `yaml:"skip_menu"`      // Skip menu and go directly to game
	ShowColliders bool `yaml:"show_colliders"` // Start with the collider overlay on
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Rotation RotationConfig
var Room RoomConfig
var HUD HUDConfig
var Menu MenuConfig
var Ending EndingConfig
var Pause PauseConfig
var Message MessageConfig
var Effects EffectsConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
	Stone        = color.RGBA{R: 92, G: 78, B: 66, A: 255}
	DeepCave     = color.RGBA{R: 24, G: 20, B: 28, A: 255}
)

func init() {
	Reset()
}

// Reset restores every tunable to its built-in value.
func Reset() {
	C = &Config{
		Width:  rooms.Extent,
		Height: rooms.Extent,
		TPS:    60,
		Scale:  2,
	}

	Player = PlayerConfig{
		WalkSpeed:       180,
		OxygenMax:       100,
		OxygenDrain:     2.5, // 40 seconds per room
		LandingDuration: 1.0, // four get-up frames of 0.25s
		Color:           Orange,
	}

	Physics = PhysicsConfig{
		Gravity:      588, // 9.8 px/frame per second at 60 TPS
		MaxFallSpeed: 900,
	}

	Rotation = RotationConfig{
		Duration: 0.5,
		Nudge:    64,
	}

	Room = RoomConfig{
		GroundColor:     Stone,
		ExitColor:       LightBlue,
		StartColor:      DarkBlue,
		HazardColor:     color.RGBA{R: 200, G: 200, B: 190, A: 255},
		RailColor:       color.RGBA{R: 140, G: 110, B: 60, A: 255},
		BackgroundColor: DeepCave,
	}

	HUD = HUDConfig{
		OxygenBarWidth:    100,
		OxygenBarHeight:   8,
		Margin:            8,
		OxygenBarBgColor:  BlackOverlay,
		OxygenBarFgColor:  LightBlue,
		OxygenLowColor:    Red,
		OxygenLowFraction: 0.25,
		TextColor:         White,
	}

	Menu = MenuConfig{
		Title:      "CAVEFALL",
		Subtitle:   "Arrows move, Space turns the cave, R restarts the room",
		TitleColor: Yellow,
		Background: DeepCave,
	}

	Ending = EndingConfig{
		Title:      "DAYLIGHT",
		Message:    "You made it out of the cave.",
		FadeFrames: 90,
		FadeColor:  color.RGBA{R: 255, G: 250, B: 230, A: 255},
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		MenuOptions:       []string{"RESUME", "RESTART ROOM", "QUIT TO TITLE"},
		MenuItemHeight:    20,
		MenuItemGap:       12,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
	}

	Message = MessageConfig{
		DisplayDuration: 90,
		TextColor:       White,
		ShadowColor:     color.RGBA{A: 255},
	}

	Effects = EffectsConfig{
		DeathShakeIntensity: 4,
		DeathShakeDuration:  15,
		DeathFlashDuration:  20,
	}

	Debug = DebugConfig{}
}

// Kernel converts the tunables into the simulation's configuration.
func Kernel() physics.Config {
	k := physics.DefaultConfig()
	if C.TPS > 0 {
		k.TimeStep = 1 / float64(C.TPS)
	}
	k.Gravity = Physics.Gravity
	k.MaxFallSpeed = Physics.MaxFallSpeed
	k.WalkSpeed = Player.WalkSpeed
	k.OxygenMax = Player.OxygenMax
	k.OxygenDrain = Player.OxygenDrain
	k.LandingDuration = Player.LandingDuration
	k.RotateDuration = Rotation.Duration
	k.RotateNudge = Rotation.Nudge
	return k
}
