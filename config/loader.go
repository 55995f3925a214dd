package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/automoto/cavefall/shared/rooms"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the optional configuration file.
const FileName = "cavefall.yaml"

// document is the YAML layout. Sections absent from the file keep their
// current values.
type document struct {
	Window   Config         `yaml:"window"`
	Player   PlayerConfig   `yaml:"player"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Rotation RotationConfig `yaml:"rotation"`
	Room     RoomConfig     `yaml:"room"`
	Debug    DebugConfig    `yaml:"debug"`
}

// Load overlays a YAML file on the built-in tunables and returns the path it
// read, or "" when none was found.
// Search order: customPath -> ~/.cavefall/cavefall.yaml -> ./configs/cavefall.yaml
// An explicit path that cannot be read or parsed is an error; the implicit
// locations are skipped silently.
func Load(customPath string) (string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := apply(data); err != nil {
			return "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return customPath, nil
	}

	for _, p := range []string{userConfigPath(FileName), filepath.Join("configs", FileName)} {
		if p == "" {
			continue
		}
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		if err := apply(data); err == nil {
			return p, nil
		}
	}
	return "", nil
}

func apply(data []byte) error {
	doc := document{
		Window:   *C,
		Player:   Player,
		Physics:  Physics,
		Rotation: Rotation,
		Room:     Room,
		Debug:    Debug,
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	if err := doc.validate(); err != nil {
		return err
	}

	window := doc.Window
	C = &window
	Player = doc.Player
	Physics = doc.Physics
	Rotation = doc.Rotation
	Room = doc.Room
	Debug = doc.Debug
	return nil
}

func (d *document) validate() error {
	if d.Window.TPS <= 0 {
		return fmt.Errorf("window.tps must be positive, got %d", d.Window.TPS)
	}
	if d.Window.Scale <= 0 {
		return fmt.Errorf("window.scale must be positive, got %d", d.Window.Scale)
	}
	// Faster falls could skip a tile in one tick.
	if limit := float64((rooms.TileSize - 1) * d.Window.TPS); d.Physics.MaxFallSpeed > limit {
		return fmt.Errorf("physics.max_fall_speed %.0f must not exceed %.0f", d.Physics.MaxFallSpeed, limit)
	}
	if d.Player.OxygenMax <= 0 {
		return fmt.Errorf("player.oxygen_max must be positive")
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cavefall", filename)
}
