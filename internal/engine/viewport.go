package engine

import (
	"math"

	"github.com/vovakirdan/sprite-arcade/internal/core"
)

// Viewport maps the world onto a grid of screen cells.
type Viewport struct {
	ScreenW int
	ScreenH int
}

// NewViewport returns a viewport for a screen of w by h cells.
func NewViewport(w, h int) Viewport {
	return Viewport{ScreenW: max(w, 1), ScreenH: max(h, 1)}
}

// ToCell returns the cell containing world point p.
func (v Viewport) ToCell(p Vec2) (int, int) {
	x := (p.X + WorldWidth/2) / WorldWidth * float64(v.ScreenW)
	y := (WorldHeight/2 - p.Y) / WorldHeight * float64(v.ScreenH)
	return int(math.Floor(x)), int(math.Floor(y))
}

// ToWorld returns the world point at the center of cell (cx, cy).
func (v Viewport) ToWorld(cx, cy int) Vec2 {
	x := (float64(cx)+0.5)/float64(v.ScreenW)*WorldWidth - WorldWidth/2
	y := WorldHeight/2 - (float64(cy)+0.5)/float64(v.ScreenH)*WorldHeight
	return Vec2{X: x, Y: y}
}

// SizeToCells converts a world extent to cells, never less than one.
func (v Viewport) SizeToCells(w, h float64) (int, int) {
	cw := int(math.Round(w / WorldWidth * float64(v.ScreenW)))
	ch := int(math.Round(h / WorldHeight * float64(v.ScreenH)))
	return max(cw, 1), max(ch, 1)
}

// SpriteRect returns the cells covered by s.
func (v Viewport) SpriteRect(s *Sprite) core.Rect {
	w, h := s.Size()
	cw, ch := v.SizeToCells(w, h)
	cx, cy := v.ToCell(s.Translation)
	return core.NewRect(cx-cw/2, cy-ch/2, cw, ch)
}
