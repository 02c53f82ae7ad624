// Package roadrace implements a lane-dodging racer. The player's car holds
// its x position and steers up and down while the road and its obstacles
// scroll past. Each hit costs health; leaving the road ends the run.
package roadrace

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sprite-arcade/internal/config"
	"github.com/vovakirdan/sprite-arcade/internal/core"
	"github.com/vovakirdan/sprite-arcade/internal/engine"
	"github.com/vovakirdan/sprite-arcade/internal/registry"
)

const (
	playerLabel    = "player"
	roadlinePrefix = "roadline"
	obstaclePrefix = "obstacle"
	healthLabel    = "health_message"
	gameOverLabel  = "game over"
)

const (
	playerLayer   = 10.0
	obstacleLayer = 5.0
)

// obstaclePresets is the fixed obstacle set; one sprite per entry.
var obstaclePresets = []engine.SpritePreset{
	engine.RacingBarrelBlue,
	engine.RacingBarrelRed,
	engine.RacingBarrelRed,
	engine.RacingConeStraight,
	engine.RacingConeStraight,
	engine.RacingConeStraight,
	engine.RollingBlockCorner,
	engine.RollingBlockSquare,
	engine.RollingBlockSmall,
}

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

// Game implements Road Race.
type Game struct {
	eng        *engine.Engine
	rng        *rand.Rand
	runtime    core.RuntimeConfig
	cfg        config.RoadRaceConfig
	difficulty *config.DifficultyManager
	preset     *config.DifficultyPreset // per-instance override of difficultyPreset
	delta      time.Duration

	health int
	lost   bool
	score  int // obstacles that made it past the player
	paused bool
	ticks  int
}

// New creates a new Road Race game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "roadrace"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Road Race"
}

// Hint describes the controls.
func (g *Game) Hint() string {
	return "steer with w/s or up/down, avoid everything"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadRoadRace(configPath)
	if err != nil {
		log.Warn("using default road race config", "err", err)
		cfg = config.DefaultRoadRaceConfig()
	}
	preset := difficultyPreset
	if g.preset != nil {
		preset = *g.preset
	}
	if preset != "" {
		config.ApplyRoadRacePreset(&cfg, preset)
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

	g.health = cfg.Player.Health
	g.lost = false
	g.score = 0
	g.paused = false
	g.ticks = 0

	g.setup()
}

// setup places the player, the lane markers and the obstacles.
func (g *Game) setup() {
	e := g.eng

	player := e.AddSprite(playerLabel, engine.RacingCarBlue)
	player.Translation.X = g.cfg.Player.X
	player.Layer = playerLayer
	player.Collision = true

	e.Audio().PlayMusic(engine.MusicWhimsicalPopsicle, 0.2)

	road := g.cfg.Road
	for i := 0; i < road.LineCount; i++ {
		line := e.AddSprite(fmt.Sprintf("%s_%d", roadlinePrefix, i), engine.RacingBarrierWhite)
		line.Scale = road.LineScale
		line.Translation.X = road.LineStartX + road.LineSpacing*float64(i)
	}

	for i, preset := range obstaclePresets {
		obstacle := e.AddSprite(fmt.Sprintf("%s_%d", obstaclePrefix, i), preset)
		obstacle.Layer = obstacleLayer
		obstacle.Collision = true
		obstacle.Translation = g.randomObstaclePosition()
	}

	e.AddText(healthLabel, g.healthText()).Translation = engine.NewVec2(555, 320)
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
	if g.lost {
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

// update runs one frame of game logic.
func (g *Game) update(in core.InputFrame) {
	player, ok := g.eng.Sprite(playerLabel)
	if !ok {
		g.eng.Logger().Error("player sprite missing, skipping frame")
		return
	}
	dt := g.eng.DeltaSeconds()

	direction := 0.0
	if in.IsHeld(core.ActionUp) {
		direction++
	}
	if in.IsHeld(core.ActionDown) {
		direction--
	}

	player.Translation.Y += direction * g.cfg.Player.Speed * dt
	player.Rotation = direction * g.cfg.Player.Tilt
	if player.Translation.Y < -g.cfg.Player.LimitY || player.Translation.Y > g.cfg.Player.LimitY {
		g.setHealth(0)
	}

	g.moveRoad(dt)
	g.handleCollisions()

	if g.health == 0 {
		g.endGame()
	}
}

// moveRoad scrolls lane markers and obstacles left. Markers wrap around;
// obstacles that get past the player respawn ahead and score a point.
func (g *Game) moveRoad(dt float64) {
	speed := g.difficulty.Speed(g.cfg.Road.Speed, g.score, g.ticks)
	road, obstacles := g.cfg.Road, g.cfg.Obstacles

	for _, s := range g.eng.Sprites() {
		switch {
		case s.HasPrefix(roadlinePrefix):
			s.Translation.X -= speed * dt
			if s.Translation.X < road.LineWrapX {
				s.Translation.X += road.LineWrapDist
			}
		case s.HasPrefix(obstaclePrefix):
			s.Translation.X -= speed * dt
			if s.Translation.X < obstacles.RecycleX {
				s.Translation = g.randomObstaclePosition()
				g.score++
			}
		}
	}
}

// handleCollisions costs one health per new contact with the player.
func (g *Game) handleCollisions() {
	for _, ev := range g.eng.DrainCollisions() {
		if !ev.Pair.EitherContains(playerLabel) || ev.State.IsEnd() {
			continue
		}
		if g.health > 0 {
			g.setHealth(g.health - 1)
			g.eng.Audio().PlaySFX(engine.SfxImpact3, 0.5)
		}
	}
}

func (g *Game) setHealth(h int) {
	if h == g.health {
		return
	}
	g.health = h
	g.eng.SetText(healthLabel, g.healthText())
}

func (g *Game) endGame() {
	g.lost = true

	banner := g.eng.AddText(gameOverLabel, "Game Over")
	banner.FontSize = 128
	banner.Translation.Y = engine.WorldHeight / 2
	g.eng.AnimateText(gameOverLabel, 0, time.Second)

	g.eng.Audio().StopMusic()
	g.eng.Audio().PlaySFX(engine.SfxJingle3, 0.5)
	g.eng.Logger().Info("game over", "score", g.score, "ticks", g.ticks)
}

func (g *Game) randomObstaclePosition() engine.Vec2 {
	o := g.cfg.Obstacles
	return engine.NewVec2(
		o.MinX+g.rng.Float64()*(o.MaxX-o.MinX),
		o.MinY+g.rng.Float64()*(o.MaxY-o.MinY),
	)
}

func (g *Game) healthText() string {
	return fmt.Sprintf("Health: %d", g.health)
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

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.eng == nil {
		return
	}
	g.eng.Render(dst)
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score))

	if g.paused {
		dst.DrawMessageBox("PAUSED", "Press P to resume")
	}
	if g.lost && !g.eng.Animating() {
		dst.DrawTextCentered(dst.Height()-1, fmt.Sprintf("Score: %d  |  R restart  |  B menu", g.score))
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.lost,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("roadrace", func() registry.Game {
		return New()
	})
}
