package engine

import (
	"math"
	"strings"
)

// Sprite is a labeled, positioned instance of a preset.
type Sprite struct {
	Label       string
	Preset      SpritePreset
	Translation Vec2
	Rotation    float64 // radians, counter-clockwise from facing right
	Scale       float64
	Layer       float64 // higher layers draw on top
	Collision   bool

	id uint32
}

// HasPrefix reports whether the sprite's label starts with prefix.
func (s *Sprite) HasPrefix(prefix string) bool {
	return strings.HasPrefix(s.Label, prefix)
}

// Size returns the sprite's world-space extent after scale and rotation.
// Rotations closer to vertical than horizontal swap width and height.
func (s *Sprite) Size() (w, h float64) {
	w, h = s.Preset.Size()
	w *= s.Scale
	h *= s.Scale
	if math.Abs(math.Sin(s.Rotation)) > math.Sqrt2/2 {
		w, h = h, w
	}
	return w, h
}

func (s *Sprite) bounds() box {
	w, h := s.Size()
	return box{
		minX: s.Translation.X - w/2,
		minY: s.Translation.Y - h/2,
		maxX: s.Translation.X + w/2,
		maxY: s.Translation.Y + h/2,
	}
}

// Text is a labeled string drawn in world space.
type Text struct {
	Label       string
	Value       string
	Translation Vec2
	FontSize    float64
}

// DefaultFontSize is the size new texts start with.
const DefaultFontSize = 30.0

// BannerFontSize and above render as a boxed banner.
const BannerFontSize = 64.0
