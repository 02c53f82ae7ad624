// Package carshoot implements a shooting gallery. Cars cross the screen
// from the left and the player fires marbles up from a gun at the bottom.
// A small pool of marbles limits how many can be in flight at once.
package carshoot

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sprite-arcade/internal/config"
	"github.com/vovakirdan/sprite-arcade/internal/core"
	"github.com/vovakirdan/sprite-arcade/internal/engine"
	"github.com/vovakirdan/sprite-arcade/internal/registry"
)

// Sprite and text labels.
const (
	playerLabel   = "player"
	marblePrefix  = "marble"
	carPrefix     = "car"
	carsLeftLabel = "cars left"
	scoreLabel    = "score"
	marblesLabel  = "marbles"
	gameOverLabel = "game over"
)

// Layers and HUD placement in world units.
const (
	playerLayer = 10.0
	marbleLayer = 5.0
	hudY        = -320.0
	hudX        = 540.0
)

// Mode selects the gallery rules.
type Mode int

const (
	ModeClassic  Mode = iota // a fixed number of cars, ends when they are gone
	ModePractice             // free fire, no targets
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game implements the shooting gallery.
type Game struct {
	mode Mode

	eng        *engine.Engine
	rng        *rand.Rand
	runtime    core.RuntimeConfig
	cfg        config.CarShootConfig
	difficulty *config.DifficultyManager
	preset     *config.DifficultyPreset // per-instance override of difficultyPreset
	delta      time.Duration

	marbleLabels []string // marbles ready to fire; the last one goes first
	carsLeft     int
	score        int
	spawnTimer   engine.Timer
	gameOver     bool
	paused       bool
	ticks        int
	lastCursor   core.Cursor
}

// New creates a classic Car Shoot game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewPractice creates a practice gallery with no cars.
func NewPractice() *Game {
	return &Game{mode: ModePractice}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModePractice {
		return "carshoot_practice"
	}
	return "carshoot"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModePractice {
		return "Car Shoot (Practice)"
	}
	return "Car Shoot"
}

// Hint describes the controls.
func (g *Game) Hint() string {
	if g.mode == ModePractice {
		return "free fire, no targets"
	}
	return "aim with mouse or a/d, fire with click or space"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadCarShoot(configPath)
	if err != nil {
		log.Warn("using default car shoot config", "err", err)
		cfg = config.DefaultCarShootConfig()
	}
	preset := difficultyPreset
	if g.preset != nil {
		preset = *g.preset
	}
	if preset != "" {
		config.ApplyCarShootPreset(&cfg, preset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	g.delta = time.Second / time.Duration(tickRate)

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.eng = engine.New(
		engine.WithLogger(log.Default().WithPrefix(g.ID())),
		engine.WithViewport(engine.NewViewport(runtime.ScreenW, runtime.ScreenH)),
	)

	g.marbleLabels = g.marbleLabels[:0]
	for i := 1; i <= cfg.Marbles.Count; i++ {
		g.marbleLabels = append(g.marbleLabels, marbleName(i))
	}
	g.carsLeft = cfg.Cars.Total
	g.score = 0
	g.spawnTimer = engine.TimerFromSeconds(0, false)
	g.gameOver = false
	g.paused = false
	g.ticks = 0
	g.lastCursor = core.Cursor{}

	g.setup()
}

// setup builds the opening scene.
func (g *Game) setup() {
	e := g.eng
	e.Audio().PlayMusic(engine.MusicClassy8Bit, 0.1)

	preset := engine.RacingBarrierRed
	if g.mode == ModePractice {
		preset = engine.RacingBarrelRed
	}
	player := e.AddSprite(playerLabel, preset)
	player.Rotation = engine.Up
	player.Scale = g.cfg.Gun.Scale
	player.Translation.Y = g.cfg.Gun.Y
	player.Layer = playerLayer

	if g.mode == ModePractice {
		e.AddText(marblesLabel, g.marblesText()).Translation = engine.NewVec2(hudX, hudY)
		return
	}

	e.AddText(carsLeftLabel, g.carsLeftText()).Translation = engine.NewVec2(hudX, hudY)
	e.AddText(scoreLabel, g.scoreText()).Translation = engine.NewVec2(-hudX, hudY)
}

// SetDifficulty overrides the CLI preset for this instance. It takes
// effect on the next Reset.
func (g *Game) SetDifficulty(preset string) {
	p := config.ParsePreset(preset)
	g.preset = &p
}

// Resize remaps the world onto a new screen size without restarting.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	if g.eng != nil {
		g.eng.SetViewport(engine.NewViewport(w, h))
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		// Keep the banner animating.
		g.eng.BeginFrame(g.delta, in)
		g.eng.EndFrame()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.ticks++
	g.eng.BeginFrame(g.delta, in)
	g.update(in)
	g.eng.EndFrame()

	return core.StepResult{State: g.State()}
}

// DrainAudio hands queued audio events to the platform.
func (g *Game) DrainAudio() []engine.AudioEvent {
	if g.eng == nil {
		return nil
	}
	return g.eng.Audio().Drain()
}

// Engine exposes the scene, mainly for frontends and tests.
func (g *Game) Engine() *engine.Engine {
	return g.eng
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Register the games with the registry
func init() {
	registry.Register("carshoot", func() registry.Game {
		return New()
	})
	registry.Register("carshoot_practice", func() registry.Game {
		return NewPractice()
	})
}
