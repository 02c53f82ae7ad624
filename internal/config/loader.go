package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadCarShoot loads Car Shoot configuration.
// Search order: customPath -> ~/.arcade/configs/carshoot.yaml -> ./configs/carshoot.yaml -> embedded default
func LoadCarShoot(customPath string) (CarShootConfig, error) {
	return load("carshoot.yaml", customPath, defaultCarShootYAML, DefaultCarShootConfig)
}

// LoadRoadRace loads Road Race configuration.
// Search order: customPath -> ~/.arcade/configs/roadrace.yaml -> ./configs/roadrace.yaml -> embedded default
func LoadRoadRace(customPath string) (RoadRaceConfig, error) {
	return load("roadrace.yaml", customPath, defaultRoadRaceYAML, DefaultRoadRaceConfig)
}

// load decodes the first config found over the hard-coded defaults, so a
// file only needs the keys it changes. A custom path that cannot be read
// or parsed is an error; the other locations are optional.
func load[T any](filename, customPath string, embedded []byte, defaults func() T) (T, error) {
	cfg := defaults()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return defaults(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{userConfigPath(filename), filepath.Join("configs", filename)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		parsed := defaults()
		if err := yaml.Unmarshal(data, &parsed); err == nil {
			return parsed, nil
		}
	}

	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return defaults(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyCarShootPreset modifies the config based on a difficulty preset.
func ApplyCarShootPreset(cfg *CarShootConfig, preset DifficultyPreset) {
	applyDifficulty(&cfg.Difficulty, preset)

	switch preset {
	case DifficultyEasy:
		cfg.Marbles.Count = 4
		cfg.Cars.Speed = 450
	case DifficultyHard:
		cfg.Marbles.Count = 2
		cfg.Cars.Speed = 750
	}
}

// ApplyRoadRacePreset modifies the config based on a difficulty preset.
func ApplyRoadRacePreset(cfg *RoadRaceConfig, preset DifficultyPreset) {
	applyDifficulty(&cfg.Difficulty, preset)

	switch preset {
	case DifficultyEasy:
		cfg.Player.Health = 7
	case DifficultyHard:
		cfg.Player.Health = 3
	}
}

func applyDifficulty(d *DifficultyConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		d.Enabled = false
	default:
		d.Enabled = true
		d.InitialLevel = InitialLevelForPreset(preset)
	}
}
