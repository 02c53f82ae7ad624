package config

import (
	_ "embed"
)

//go:embed defaults/carshoot.yaml
var defaultCarShootYAML []byte

//go:embed defaults/roadrace.yaml
var defaultRoadRaceYAML []byte

// DefaultCarShootConfig returns the built-in Car Shoot configuration.
func DefaultCarShootConfig() CarShootConfig {
	return CarShootConfig{
		Gun: CarShootGun{
			Y:     -325,
			Scale: 0.5,
			Speed: 900,
		},
		Marbles: CarShootMarbles{
			Count:  3,
			Speed:  600,
			SpawnY: -275,
		},
		Cars: CarShootCars{
			Total:    25,
			Speed:    600,
			SpawnX:   -740,
			MinY:     -100,
			MaxY:     325,
			MinDelay: 0.1,
			MaxDelay: 1.25,
		},
		Bounds: Bounds{
			MaxX: 750,
			MaxY: 400,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 25,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				DelayReduction:  0.4,
			},
		},
	}
}

// DefaultRoadRaceConfig returns the built-in Road Race configuration.
func DefaultRoadRaceConfig() RoadRaceConfig {
	return RoadRaceConfig{
		Player: RoadRacePlayer{
			X:      -500,
			Speed:  250,
			Tilt:   0.15,
			LimitY: 360,
			Health: 5,
		},
		Road: RoadRaceRoad{
			Speed:        400,
			LineCount:    10,
			LineStartX:   -600,
			LineSpacing:  150,
			LineScale:    0.1,
			LineWrapX:    -675,
			LineWrapDist: 1500,
		},
		Obstacles: RoadRaceObstacles{
			MinX:     800,
			MaxX:     1600,
			MinY:     -300,
			MaxY:     300,
			RecycleX: -800,
		},
		Difficulty: DifficultyConfig{
			Enabled: false,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 7200, // two minutes at 60 ticks per second
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "carshoot":
		return defaultCarShootYAML
	case "roadrace":
		return defaultRoadRaceYAML
	default:
		return nil
	}
}
