package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// File mirrors the on-disk YAML layout. Sections left out of the file keep
// their current values.
type File struct {
	Window  *Config        `yaml:"window"`
	Physics *PhysicsConfig `yaml:"physics"`
	Player  *PlayerConfig  `yaml:"player"`
	Level   *LevelConfig   `yaml:"level"`
	Camera  *CameraConfig  `yaml:"camera"`
	Loading *LoadingConfig `yaml:"loading"`
	Assets  *AssetsConfig  `yaml:"assets"`
	Debug   *DebugConfig   `yaml:"debug"`
}

// Load applies YAML overrides to the package-level configuration.
// Search order: customPath -> ~/.heaven-and-hell/config.yaml -> ./configs/config.yaml.
// Finding no file at all is not an error; the defaults stay in place.
// It returns the path that was applied, or "" when none was found.
func Load(customPath string) (string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := Apply(data); err != nil {
			return "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return customPath, nil
	}

	for _, path := range []string{userConfigPath("config.yaml"), filepath.Join("configs", "config.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := Apply(data); err != nil {
			return "", fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		return path, nil
	}
	return "", nil
}

// Apply decodes data on top of the current configuration values.
func Apply(data []byte) error {
	f := File{
		Window:  C,
		Physics: &Physics,
		Player:  &Player,
		Level:   &Level,
		Camera:  &Camera,
		Loading: &Loading,
		Assets:  &Assets,
		Debug:   &Debug,
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return err
	}
	return Validate()
}

// Validate rejects values the simulation cannot run with.
func Validate() error {
	switch {
	case C.Width <= 0 || C.Height <= 0:
		return fmt.Errorf("window size must be positive, got %dx%d", C.Width, C.Height)
	case Physics.BlockSize <= 0:
		return fmt.Errorf("physics.block_size must be positive, got %v", Physics.BlockSize)
	case Physics.TimeStep <= 0:
		return fmt.Errorf("physics.time_step must be positive, got %v", Physics.TimeStep)
	case Player.Mass <= 0:
		return fmt.Errorf("player.mass must be positive, got %v", Player.Mass)
	case Player.MaxJumps < 0:
		return fmt.Errorf("player.max_jumps must not be negative, got %d", Player.MaxJumps)
	case Level.BaseNodeSize < 1:
		return fmt.Errorf("level.base_node_size must be at least 1, got %d", Level.BaseNodeSize)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".heaven-and-hell", filename)
}
