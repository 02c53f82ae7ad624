package engine

import "math"

// World dimensions. The origin is the center of the play area,
// x grows to the right and y grows upward.
const (
	WorldWidth  = 1280.0
	WorldHeight = 720.0
)

// Rotation constants in radians.
const (
	Right = 0.0
	Up    = math.Pi / 2
	Left  = math.Pi
	Down  = -math.Pi / 2
)

// Vec2 is a point or offset in world space.
type Vec2 struct {
	X, Y float64
}

// NewVec2 returns a Vec2.
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// box is a world-space axis-aligned bounding box.
type box struct {
	minX, minY, maxX, maxY float64
}

func (b box) overlaps(o box) bool {
	return b.minX < o.maxX && o.minX < b.maxX && b.minY < o.maxY && o.minY < b.maxY
}
