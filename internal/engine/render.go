package engine

import (
	"sort"

	"github.com/vovakirdan/sprite-arcade/internal/core"
)

// Render draws the scene into dst. Sprites are drawn from the lowest
// layer up, ties broken by label; texts are drawn on top.
func (e *Engine) Render(dst *core.Screen) {
	sprites := e.Sprites()
	sort.SliceStable(sprites, func(i, j int) bool {
		return sprites[i].Layer < sprites[j].Layer
	})

	for _, s := range sprites {
		glyph, color := s.Preset.Glyph()
		dst.DrawRectColor(e.viewport.SpriteRect(s), glyph, color)
	}

	for _, t := range e.Texts() {
		e.drawText(dst, t)
	}
}

func (e *Engine) drawText(dst *core.Screen, t *Text) {
	cx, cy := e.viewport.ToCell(t.Translation)
	n := len([]rune(t.Value))

	if t.FontSize < BannerFontSize {
		x := core.Clamp(cx-n/2, 0, max(dst.Width()-n, 0))
		y := core.Clamp(cy, 0, max(dst.Height()-1, 0))
		dst.DrawTextColor(x, y, t.Value, core.ColorBrightWhite)
		return
	}

	box := core.NewRect(cx-(n+4)/2, cy-1, n+4, 3)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextColor(box.X+2, cy, t.Value, core.ColorBrightYellow)
}
