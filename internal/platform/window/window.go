// Package window presents arcade games in a desktop window using Ebiten.
// Games draw into the same cell buffer as on the terminal; the window
// adds real held keys and mouse input.
package window

import (
	"errors"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/sprite-arcade/internal/core"
	"github.com/vovakirdan/sprite-arcade/internal/engine"
	"github.com/vovakirdan/sprite-arcade/internal/registry"
	"github.com/vovakirdan/sprite-arcade/internal/storage"
)

// Options configures a window run.
type Options struct {
	Config     core.RuntimeConfig
	Store      *storage.Store
	Difficulty string
	Logger     *log.Logger
	Scale      float64
}

// Window adapts a registry.Game to ebiten.Game.
type Window struct {
	game   registry.Game
	opts   Options
	screen *core.Screen
	input  inputSource
	logger *log.Logger

	state      core.GameState
	ticks      int
	scoreSaved bool
}

// New creates a window for game and resets it.
func New(game registry.Game, opts Options) *Window {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Config.TickRate <= 0 {
		opts.Config.TickRate = 60
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if ds, ok := game.(registry.DifficultySetter); ok && opts.Difficulty != "" {
		ds.SetDifficulty(opts.Difficulty)
	}

	w := &Window{
		game:   game,
		opts:   opts,
		screen: core.NewScreen(opts.Config.ScreenW, opts.Config.ScreenH),
		input:  ebitenInput{},
		logger: opts.Logger.With("game", game.ID()),
	}
	w.reset()
	return w
}

func (w *Window) reset() {
	if w.opts.Config.Seed == 0 {
		w.opts.Config.Seed = time.Now().UnixNano()
	}
	w.game.Reset(w.opts.Config)
	w.state = w.game.State()
	w.ticks = 0
	w.scoreSaved = false
}

// errBack ends the run loop when the player leaves the game.
var errBack = errors.New("window: back")

// Update advances the game by one tick. Ebiten calls it TPS times a second.
func (w *Window) Update() error {
	frame := readFrame(w.input, w.screen.Width(), w.screen.Height())
	return w.step(frame)
}

func (w *Window) step(frame core.InputFrame) error {
	switch {
	case frame.Has(core.ActionQuit):
		return ebiten.Termination
	case frame.Has(core.ActionBack):
		return errBack
	case frame.Has(core.ActionRestart) && w.state.GameOver:
		w.opts.Config.Seed = 0
		w.reset()
		return nil
	}

	w.state = w.game.Step(frame).State
	if !w.state.Paused && !w.state.GameOver {
		w.ticks++
	}
	w.drainAudio()

	if w.state.GameOver && !w.scoreSaved {
		w.saveRun()
	}
	return nil
}

func (w *Window) drainAudio() {
	src, ok := w.game.(registry.AudioSource)
	if !ok {
		return
	}
	for _, ev := range src.DrainAudio() {
		switch ev.Kind {
		case engine.AudioMusicStart:
			w.logger.Debug("music", "track", ev.Music, "volume", ev.Volume)
		case engine.AudioMusicStop:
			w.logger.Debug("music stopped")
		case engine.AudioSfx:
			w.logger.Debug("sfx", "effect", ev.Sfx, "volume", ev.Volume)
		}
	}
}

func (w *Window) saveRun() {
	w.scoreSaved = true
	if w.opts.Store == nil || w.state.Score <= 0 {
		return
	}
	_, err := w.opts.Store.SaveRun(storage.Run{
		GameID:     w.game.ID(),
		Score:      w.state.Score,
		Difficulty: w.opts.Difficulty,
		Duration:   time.Duration(w.ticks) * time.Second / time.Duration(w.opts.Config.TickRate),
	})
	if err != nil {
		w.logger.Error("could not save score", "err", err)
		return
	}
	w.logger.Info("run saved", "score", w.state.Score)
}

// Draw renders the game's cell buffer.
func (w *Window) Draw(dst *ebiten.Image) {
	w.game.Render(w.screen)

	for y := 0; y < w.screen.Height(); y++ {
		for x := 0; x < w.screen.Width(); x++ {
			cell := w.screen.GetCell(x, y)
			if cell.Rune == ' ' || cell.Rune == 0 {
				continue
			}
			px, py := x*cellW, y*cellH
			if cell.Color != core.ColorDefault {
				vector.DrawFilledRect(dst, float32(px), float32(py), cellW, cellH, rgba(cell.Color), false)
			}
			ebitenutil.DebugPrintAt(dst, string(cell.Rune), px+1, py)
		}
	}
}

// Layout keeps one logical pixel grid regardless of window size.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.screen.Width() * cellW, w.screen.Height() * cellH
}

// Run opens a window and plays game until it is closed. It reports
// whether the player asked to go back to the menu.
func Run(game registry.Game, opts Options) (backToMenu bool, err error) {
	w := New(game, opts)

	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowSize(
		int(float64(w.screen.Width()*cellW)*w.opts.Scale),
		int(float64(w.screen.Height()*cellH)*w.opts.Scale),
	)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(w.opts.Config.TickRate)

	err = ebiten.RunGame(w)
	switch {
	case errors.Is(err, errBack):
		return true, nil
	case errors.Is(err, ebiten.Termination):
		return false, nil
	}
	return false, err
}

var palette = map[core.Color]color.RGBA{
	core.ColorRed:          {R: 170, A: 255},
	core.ColorGreen:        {G: 170, A: 255},
	core.ColorYellow:       {R: 170, G: 170, A: 255},
	core.ColorBlue:         {B: 170, A: 255},
	core.ColorMagenta:      {R: 170, B: 170, A: 255},
	core.ColorCyan:         {G: 170, B: 170, A: 255},
	core.ColorWhite:        {R: 170, G: 170, B: 170, A: 255},
	core.ColorBrightRed:    {R: 255, G: 85, B: 85, A: 255},
	core.ColorBrightGreen:  {R: 85, G: 255, B: 85, A: 255},
	core.ColorBrightYellow: {R: 255, G: 255, B: 85, A: 255},
	core.ColorBrightBlue:   {R: 85, G: 85, B: 255, A: 255},
	core.ColorBrightWhite:  {R: 255, G: 255, B: 255, A: 255},
	core.ColorOrange:       {R: 255, G: 135, A: 255},
	core.ColorGray:         {R: 138, G: 138, B: 138, A: 255},
	core.ColorBlack:        {R: 30, G: 30, B: 30, A: 255},
}

func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return color.RGBA{R: 200, G: 200, B: 200, A: 255}
}
