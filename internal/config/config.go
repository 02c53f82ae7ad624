// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade.
package config

// CarShootConfig contains all configuration for the Car Shoot gallery.
type CarShootConfig struct {
	Gun        CarShootGun      `yaml:"gun"`
	Marbles    CarShootMarbles  `yaml:"marbles"`
	Cars       CarShootCars     `yaml:"cars"`
	Bounds     Bounds           `yaml:"bounds"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// CarShootGun defines the marble gun at the bottom of the screen.
type CarShootGun struct {
	Y     float64 `yaml:"y"`
	Scale float64 `yaml:"scale"`
	Speed float64 `yaml:"speed"` // keyboard movement, world units per second
}

// CarShootMarbles defines the reusable marble pool.
type CarShootMarbles struct {
	Count  int     `yaml:"count"`
	Speed  float64 `yaml:"speed"`
	SpawnY float64 `yaml:"spawn_y"`
}

// CarShootCars defines the targets crossing the screen.
type CarShootCars struct {
	Total    int     `yaml:"total"`
	Speed    float64 `yaml:"speed"`
	SpawnX   float64 `yaml:"spawn_x"`
	MinY     float64 `yaml:"min_y"`
	MaxY     float64 `yaml:"max_y"`
	MinDelay float64 `yaml:"min_delay"` // seconds between spawns
	MaxDelay float64 `yaml:"max_delay"`
}

// Bounds is the cleanup limit; sprites past it are removed.
type Bounds struct {
	MaxX float64 `yaml:"max_x"`
	MaxY float64 `yaml:"max_y"`
}

// RoadRaceConfig contains all configuration for Road Race.
type RoadRaceConfig struct {
	Player     RoadRacePlayer    `yaml:"player"`
	Road       RoadRaceRoad      `yaml:"road"`
	Obstacles  RoadRaceObstacles `yaml:"obstacles"`
	Difficulty DifficultyConfig  `yaml:"difficulty"`
}

// RoadRacePlayer defines the player's car.
type RoadRacePlayer struct {
	X      float64 `yaml:"x"`
	Speed  float64 `yaml:"speed"`
	Tilt   float64 `yaml:"tilt"`    // rotation per unit of steering
	LimitY float64 `yaml:"limit_y"` // leaving |y| > limit ends the run
	Health int     `yaml:"health"`
}

// RoadRaceRoad defines road speed and the scrolling lane markers.
type RoadRaceRoad struct {
	Speed        float64 `yaml:"speed"`
	LineCount    int     `yaml:"line_count"`
	LineStartX   float64 `yaml:"line_start_x"`
	LineSpacing  float64 `yaml:"line_spacing"`
	LineScale    float64 `yaml:"line_scale"`
	LineWrapX    float64 `yaml:"line_wrap_x"`
	LineWrapDist float64 `yaml:"line_wrap_dist"`
}

// RoadRaceObstacles defines where obstacles respawn.
type RoadRaceObstacles struct {
	MinX     float64 `yaml:"min_x"`
	MaxX     float64 `yaml:"max_x"`
	MinY     float64 `yaml:"min_y"`
	MaxY     float64 `yaml:"max_y"`
	RecycleX float64 `yaml:"recycle_x"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // score or ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // added to speed at max difficulty
	DelayReduction  float64 `yaml:"delay_reduction"`  // fraction removed from spawn delays at max difficulty
}

// DifficultyPreset is a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings give "",
// which means "use the config file as is".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
