package config

import "github.com/vovakirdan/sprite-arcade/internal/core"

// DifficultyManager scales speeds and spawn delays as a run goes on.
// The level rises from the configured initial level to 1.0 as score or
// elapsed ticks approach progression.max_at.
type DifficultyManager struct {
	cfg  DifficultyConfig
	base float64
}

// NewDifficultyManager creates a manager for cfg.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg, base: core.ClampF(cfg.InitialLevel, 0, 1)}
}

// IsEnabled reports whether the level changes during a run.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// progress returns how far the run is towards max difficulty, in [0, 1].
func (d *DifficultyManager) progress(score, ticks int) float64 {
	maxAt := float64(max(d.cfg.Progression.MaxAt, 1))
	switch d.cfg.Progression.Type {
	case "score":
		return core.ClampF(float64(score)/maxAt, 0, 1)
	case "time":
		return core.ClampF(float64(ticks)/maxAt, 0, 1)
	}
	return 0
}

// Level returns the difficulty level (0.0 to 1.0) for a score and tick count.
func (d *DifficultyManager) Level(score, ticks int) float64 {
	if !d.IsEnabled() {
		return d.base
	}
	return d.base + d.progress(score, ticks)*(1-d.base)
}

// Speed scales baseSpeed up by Scaling.SpeedMultiplier at full difficulty.
func (d *DifficultyManager) Speed(baseSpeed float64, score, ticks int) float64 {
	return baseSpeed * (1 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier)
}

// Delay shortens a spawn delay in seconds. At most 90% is removed.
func (d *DifficultyManager) Delay(baseDelay float64, score, ticks int) float64 {
	cut := core.ClampF(d.Level(score, ticks)*d.cfg.Scaling.DelayReduction, 0, 0.9)
	return baseDelay * (1 - cut)
}
