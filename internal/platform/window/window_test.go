package window

import (
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/sprite-arcade/internal/core"
	"github.com/vovakirdan/sprite-arcade/internal/engine"
	"github.com/vovakirdan/sprite-arcade/internal/registry"
	"github.com/vovakirdan/sprite-arcade/internal/storage"
)

type fakeInput struct {
	down    map[ebiten.Key]bool
	pressed map[ebiten.Key]bool
	x, y    int
	click   bool
}

func (f fakeInput) KeyDown(k ebiten.Key) bool    { return f.down[k] }
func (f fakeInput) KeyPressed(k ebiten.Key) bool { return f.pressed[k] }
func (f fakeInput) Cursor() (int, int)           { return f.x, f.y }
func (f fakeInput) Clicked() bool                { return f.click }

type countingGame struct {
	steps  int
	overAt int
}

func (g *countingGame) ID() string               { return "counting" }
func (g *countingGame) Title() string            { return "Counting" }
func (g *countingGame) Reset(core.RuntimeConfig) { g.steps = 0 }
func (g *countingGame) Render(dst *core.Screen)  { dst.DrawText(0, 0, "count") }
func (g *countingGame) State() core.GameState {
	over := g.steps >= g.overAt
	return core.GameState{Score: g.steps, GameOver: over}
}
func (g *countingGame) Step(core.InputFrame) core.StepResult {
	g.steps++
	return core.StepResult{State: g.State()}
}

// tunedGame also takes a difficulty preset and queues audio.
type tunedGame struct {
	countingGame
	preset string
	drains int
}

var (
	_ registry.DifficultySetter = (*tunedGame)(nil)
	_ registry.AudioSource      = (*tunedGame)(nil)
)

func (g *tunedGame) SetDifficulty(preset string) { g.preset = preset }
func (g *tunedGame) DrainAudio() []engine.AudioEvent {
	g.drains++
	return []engine.AudioEvent{{Kind: engine.AudioSfx, Sfx: engine.SfxImpact2, Volume: 0.4}}
}

func TestReadFrameHeldKeys(t *testing.T) {
	in := fakeInput{
		down:    map[ebiten.Key]bool{ebiten.KeyComma: true},
		pressed: map[ebiten.Key]bool{ebiten.KeyArrowLeft: true, ebiten.KeySpace: true},
		x:       -1, y: -1,
	}
	frame := readFrame(in, 80, 24)

	assert.True(t, frame.IsHeld(core.ActionUp))
	assert.False(t, frame.Has(core.ActionUp), "a held key is not a new press")
	assert.True(t, frame.Has(core.ActionLeft))
	assert.True(t, frame.Has(core.ActionFire))
	assert.False(t, frame.Cursor.Valid)
}

func TestReadFrameMouse(t *testing.T) {
	frame := readFrame(fakeInput{x: 8*10 + 3, y: 16 * 5, click: true}, 80, 24)

	assert.True(t, frame.Has(core.ActionFire))
	assert.Equal(t, core.Cursor{X: 10, Y: 5, Valid: true}, frame.Cursor)

	frame = readFrame(fakeInput{x: 8 * 100, y: 0}, 80, 24)
	assert.False(t, frame.Cursor.Valid, "cursor outside the grid is ignored")
}

func TestStepSavesRunAndRestarts(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	game := &countingGame{overAt: 3}
	w := New(game, Options{
		Config:     core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1},
		Store:      store,
		Difficulty: "easy",
		Logger:     log.New(io.Discard),
	})

	for i := 0; i < 5; i++ {
		require.NoError(t, w.step(core.NewInputFrame()))
	}
	assert.True(t, w.state.GameOver)

	scores, err := store.AllScores("counting")
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, 3, scores[0].Score)
	assert.Equal(t, "easy", scores[0].Difficulty)

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	require.NoError(t, w.step(restart))
	assert.False(t, w.state.GameOver)
	assert.Equal(t, 0, game.steps)
}

func TestStepBackAndQuit(t *testing.T) {
	w := New(&countingGame{overAt: 100}, Options{
		Config: core.RuntimeConfig{ScreenW: 40, ScreenH: 10},
		Logger: log.New(io.Discard),
	})

	back := core.NewInputFrame()
	back.Set(core.ActionBack)
	assert.True(t, errors.Is(w.step(back), errBack))

	quit := core.NewInputFrame()
	quit.Set(core.ActionQuit)
	assert.ErrorIs(t, w.step(quit), ebiten.Termination)
}

func TestLayout(t *testing.T) {
	w := New(&countingGame{overAt: 100}, Options{
		Config: core.RuntimeConfig{ScreenW: 40, ScreenH: 10},
		Logger: log.New(io.Discard),
	})
	width, height := w.Layout(1920, 1080)
	assert.Equal(t, 320, width)
	assert.Equal(t, 160, height)
}

func TestCellAt(t *testing.T) {
	x, y, ok := cellAt(17, 33)
	assert.True(t, ok)
	assert.Equal(t, 2, x)
	assert.Equal(t, 2, y)

	_, _, ok = cellAt(-1, 5)
	assert.False(t, ok)
}

func TestNewAppliesDifficultyAndDrainsAudio(t *testing.T) {
	game := &tunedGame{countingGame: countingGame{overAt: 100}}
	w := New(game, Options{
		Config:     core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1},
		Difficulty: "hard",
		Logger:     log.New(io.Discard),
	})
	assert.Equal(t, "hard", game.preset)

	require.NoError(t, w.step(core.NewInputFrame()))
	assert.Equal(t, 1, game.drains)

	plain := &tunedGame{countingGame: countingGame{overAt: 100}}
	New(plain, Options{Logger: log.New(io.Discard)})
	assert.Empty(t, plain.preset, "no preset leaves the game's own config alone")
}
