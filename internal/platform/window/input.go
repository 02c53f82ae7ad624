package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/sprite-arcade/internal/core"
)

// Cell size in pixels. Matches the ebitenutil debug font line height.
const (
	cellW = 8
	cellH = 16
)

// heldKeys are reported every tick while down.
var heldKeys = map[core.Action][]ebiten.Key{
	core.ActionUp:    {ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyComma},
	core.ActionDown:  {ebiten.KeyArrowDown, ebiten.KeyS, ebiten.KeyO},
	core.ActionLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ActionRight: {ebiten.KeyArrowRight, ebiten.KeyD},
}

// edgeKeys fire once per press.
var edgeKeys = map[core.Action][]ebiten.Key{
	core.ActionFire:    {ebiten.KeySpace},
	core.ActionPause:   {ebiten.KeyP},
	core.ActionRestart: {ebiten.KeyR},
	core.ActionBack:    {ebiten.KeyEscape, ebiten.KeyB},
	core.ActionQuit:    {ebiten.KeyQ},
}

// inputSource abstracts ebiten's polling functions.
type inputSource interface {
	KeyDown(k ebiten.Key) bool
	KeyPressed(k ebiten.Key) bool
	Cursor() (x, y int)
	Clicked() bool
}

type ebitenInput struct{}

func (ebitenInput) KeyDown(k ebiten.Key) bool    { return ebiten.IsKeyPressed(k) }
func (ebitenInput) KeyPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }
func (ebitenInput) Cursor() (int, int)           { return ebiten.CursorPosition() }
func (ebitenInput) Clicked() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// readFrame polls src into an input frame for a cols x rows cell grid.
func readFrame(src inputSource, cols, rows int) core.InputFrame {
	frame := core.NewInputFrame()

	for action, keys := range heldKeys {
		for _, k := range keys {
			if src.KeyPressed(k) {
				frame.Set(action)
			} else if src.KeyDown(k) {
				frame.Hold(action)
			}
		}
	}
	for action, keys := range edgeKeys {
		for _, k := range keys {
			if src.KeyPressed(k) {
				frame.Set(action)
				break
			}
		}
	}

	if x, y, ok := cellAt(src.Cursor()); ok && x < cols && y < rows {
		frame.SetCursor(x, y)
	}
	if src.Clicked() {
		frame.Set(core.ActionFire)
	}
	return frame
}

// cellAt converts a pixel position into a cell position.
func cellAt(px, py int) (x, y int, ok bool) {
	if px < 0 || py < 0 {
		return 0, 0, false
	}
	return px / cellW, py / cellH, true
}
