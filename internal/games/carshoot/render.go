package carshoot

import (
	"fmt"

	"github.com/vovakirdan/sprite-arcade/internal/core"
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.eng == nil {
		return
	}
	g.eng.Render(dst)

	if g.paused {
		dst.DrawMessageBox("PAUSED", "Press P to resume")
	}

	if g.gameOver && !g.eng.Animating() {
		hint := fmt.Sprintf("Score: %d  |  R restart  |  B menu", g.score)
		dst.DrawTextCentered(dst.Height()-1, hint)
	}
}
