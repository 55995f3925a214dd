package systems

import (
	"encoding/json"

	"github.com/automoto/cavefall/components"
	cfg "github.com/automoto/cavefall/config"
	"github.com/automoto/cavefall/shared/physics"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

const (
	settingsItem = "settings"
	progressItem = "progress"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	WindowScale int  `json:"windowScale"`
	Fullscreen  bool `json:"fullscreen"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "cavefall",
	})
	if err != nil {
		log.Warn("could not initialize persistence", "err", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsItem)
	if err != nil {
		log.Warn("could not load settings", "err", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Warn("could not parse saved settings", "err", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Warn("could not serialize settings", "err", err)
		return err
	}

	if err := gdataManager.SaveItem(settingsItem, data); err != nil {
		log.Warn("could not save settings", "err", err)
		return err
	}
	return nil
}

// ApplySettings resizes the window from saved or chosen settings.
func ApplySettings(s *SavedSettings) {
	if s == nil {
		return
	}
	if s.WindowScale > 0 {
		cfg.C.Scale = s.WindowScale
	}
	ebiten.SetFullscreen(s.Fullscreen)
	if !s.Fullscreen {
		ebiten.SetWindowSize(cfg.C.Width*cfg.C.Scale, cfg.C.Height*cfg.C.Scale)
	}
}

// SavedGameProgress is what "Continue" restores.
type SavedGameProgress struct {
	RoomIndex int   `json:"roomIndex"`
	Rotations int   `json:"rotations"`
	Deaths    int   `json:"deaths"`
	Rotates   int   `json:"rotates"`
	Cleared   int   `json:"cleared"`
	Ticks     int   `json:"ticks"`
	RunID     int64 `json:"runId,omitempty"`
}

func LoadGameProgress() (*SavedGameProgress, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(progressItem)
	if err != nil {
		log.Warn("could not load game progress", "err", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var progress SavedGameProgress
	if err := json.Unmarshal(data, &progress); err != nil {
		log.Warn("could not parse saved progress", "err", err)
		return nil, err
	}

	return &progress, nil
}

// NewProgress captures the resumable part of a run.
func NewProgress(sim *physics.Simulation, stats *components.RunStatsData) *SavedGameProgress {
	return &SavedGameProgress{
		RoomIndex: sim.Room.Index(),
		Rotations: sim.Room.Rotations(),
		Deaths:    stats.Deaths,
		Rotates:   stats.Rotations,
		Cleared:   stats.RoomsCleared,
		Ticks:     stats.Ticks,
		RunID:     stats.RunID,
	}
}

func SaveGameProgress(progress *SavedGameProgress) error {
	if !gdataInitialized || gdataManager == nil || progress == nil {
		return nil
	}

	data, err := json.Marshal(progress)
	if err != nil {
		log.Warn("could not serialize game progress", "err", err)
		return err
	}

	if err := gdataManager.SaveItem(progressItem, data); err != nil {
		log.Warn("could not save game progress", "err", err)
		return err
	}

	return nil
}

// SaveRunProgress saves the run after a room exit.
func SaveRunProgress(sim *physics.Simulation, stats *components.RunStatsData) {
	_ = SaveGameProgress(NewProgress(sim, stats))
}

// RestoreStats seeds a continued run's counters from saved progress.
func RestoreStats(stats *components.RunStatsData, progress *SavedGameProgress) {
	if progress == nil {
		return
	}
	stats.Deaths = progress.Deaths
	stats.Rotations = progress.Rotates
	stats.RoomsCleared = progress.Cleared
	stats.Ticks = progress.Ticks
	stats.RunID = progress.RunID
}

// HasSaveGame returns true if a saved game progress exists
func HasSaveGame() bool {
	if !gdataInitialized || gdataManager == nil {
		return false
	}

	data, err := gdataManager.LoadItem(progressItem)
	if err != nil || len(data) == 0 {
		return false
	}

	return true
}

// ClearGameProgress removes any saved game progress
func ClearGameProgress() {
	if !gdataInitialized || gdataManager == nil {
		return
	}

	// Save empty/nil data to clear the progress
	if err := gdataManager.SaveItem(progressItem, nil); err != nil {
		log.Warn("could not clear game progress", "err", err)
	}
}
