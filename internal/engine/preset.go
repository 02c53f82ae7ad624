package engine

import "github.com/vovakirdan/sprite-arcade/internal/core"

// SpritePreset selects the look and collider of a sprite.
type SpritePreset int

const (
	RacingBarrelBlue SpritePreset = iota
	RacingBarrelRed
	RacingBarrierRed
	RacingBarrierWhite
	RacingCarBlack
	RacingCarBlue
	RacingCarGreen
	RacingCarRed
	RacingCarYellow
	RacingConeStraight
	RollingBallBlue
	RollingBlockCorner
	RollingBlockSquare
	RollingBlockSmall
)

type presetInfo struct {
	name  string
	w, h  float64 // collider size in world units at scale 1, rotation 0
	glyph rune
	color core.Color
}

var presets = map[SpritePreset]presetInfo{
	RacingBarrelBlue:   {"racing_barrel_blue", 56, 56, '◍', core.ColorBlue},
	RacingBarrelRed:    {"racing_barrel_red", 56, 56, '◍', core.ColorRed},
	RacingBarrierRed:   {"racing_barrier_red", 104, 36, '▬', core.ColorBrightRed},
	RacingBarrierWhite: {"racing_barrier_white", 104, 36, '▬', core.ColorBrightWhite},
	RacingCarBlack:     {"racing_car_black", 112, 56, '█', core.ColorGray},
	RacingCarBlue:      {"racing_car_blue", 112, 56, '█', core.ColorBrightBlue},
	RacingCarGreen:     {"racing_car_green", 112, 56, '█', core.ColorGreen},
	RacingCarRed:       {"racing_car_red", 112, 56, '█', core.ColorRed},
	RacingCarYellow:    {"racing_car_yellow", 112, 56, '█', core.ColorYellow},
	RacingConeStraight: {"racing_cone_straight", 44, 44, '▲', core.ColorOrange},
	RollingBallBlue:    {"rolling_ball_blue", 32, 32, '●', core.ColorBrightBlue},
	RollingBlockCorner: {"rolling_block_corner", 64, 64, '◣', core.ColorMagenta},
	RollingBlockSquare: {"rolling_block_square", 64, 64, '■', core.ColorCyan},
	RollingBlockSmall:  {"rolling_block_small", 32, 32, '■', core.ColorGreen},
}

// String returns the asset-style name of the preset.
func (p SpritePreset) String() string {
	if info, ok := presets[p]; ok {
		return info.name
	}
	return "unknown"
}

// Size returns the collider width and height at scale 1.
func (p SpritePreset) Size() (w, h float64) {
	info := presets[p]
	return info.w, info.h
}

// Glyph returns the rune and color used to draw the preset in cells.
func (p SpritePreset) Glyph() (rune, core.Color) {
	info, ok := presets[p]
	if !ok {
		return '?', core.ColorDefault
	}
	return info.glyph, info.color
}

// RacingCars lists the car presets, used for random car spawns.
func RacingCars() []SpritePreset {
	return []SpritePreset{RacingCarBlack, RacingCarBlue, RacingCarGreen, RacingCarRed, RacingCarYellow}
}
