package settings

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings holds client tuning for the demo: window size, analog
// tuning, and player speeds. Keybindings deliberately don't live here.
type Settings struct {
	WindowWidth      int     `yaml:"window_width"`
	WindowHeight     int     `yaml:"window_height"`
	StickDeadzone    float64 `yaml:"stick_deadzone"`
	MouseSensitivity float64 `yaml:"mouse_sensitivity"`
	WalkSpeed        float64 `yaml:"walk_speed"`
	SprintSpeed      float64 `yaml:"sprint_speed"`
}

func Default() Settings {
	return Settings{
		WindowWidth:      1280,
		WindowHeight:     720,
		StickDeadzone:    0.2,
		MouseSensitivity: 1.0,
		WalkSpeed:        160,
		SprintSpeed:      280,
	}
}

// Load reads a settings file. Fields absent from the file keep their
// defaults.
func Load(filename string) (Settings, error) {
	s := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		return s, fmt.Errorf("settings: load %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("settings: unmarshal %s: %w", filename, err)
	}
	return s, nil
}
