package roadrace

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/sprite-arcade/internal/core"
	"github.com/vovakirdan/sprite-arcade/internal/engine"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func held(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Hold(a)
	return in
}

func countSfx(events []engine.AudioEvent, sfx engine.SfxPreset) int {
	n := 0
	for _, ev := range events {
		if ev.Kind == engine.AudioSfx && ev.Sfx == sfx {
			n++
		}
	}
	return n
}

func TestGameSetup(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	player, ok := g.eng.Sprite(playerLabel)
	if !ok {
		t.Fatal("player should exist")
	}
	if player.Preset != engine.RacingCarBlue || player.Translation != engine.NewVec2(-500, 0) {
		t.Errorf("unexpected player: %+v", player)
	}
	if !player.Collision || player.Layer != 10 {
		t.Error("player should collide on layer 10")
	}

	lines := g.eng.SpritesWithPrefix(roadlinePrefix)
	if len(lines) != 10 {
		t.Fatalf("expected 10 road lines, got %d", len(lines))
	}
	line, _ := g.eng.Sprite("roadline_3")
	if line.Translation.X != -150 || line.Scale != 0.1 || line.Collision {
		t.Errorf("unexpected road line: %+v", line)
	}

	obstacles := g.eng.SpritesWithPrefix(obstaclePrefix)
	if len(obstacles) != len(obstaclePresets) {
		t.Fatalf("expected %d obstacles, got %d", len(obstaclePresets), len(obstacles))
	}
	for _, o := range obstacles {
		if o.Translation.X < 800 || o.Translation.X >= 1600 || o.Translation.Y < -300 || o.Translation.Y >= 300 {
			t.Errorf("%s placed outside the spawn area: %+v", o.Label, o.Translation)
		}
		if !o.Collision || o.Layer != 5 {
			t.Errorf("%s should collide on layer 5", o.Label)
		}
	}

	txt, ok := g.eng.Text(healthLabel)
	if !ok || txt.Value != "Health: 5" || txt.Translation != engine.NewVec2(555, 320) {
		t.Errorf("unexpected health text: %+v", txt)
	}
	if music, playing := g.eng.Audio().MusicPlaying(); !playing || music != engine.MusicWhimsicalPopsicle {
		t.Error("WhimsicalPopsicle should be playing")
	}
}

func TestSteering(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))
	player, _ := g.eng.Sprite(playerLabel)

	for i := 0; i < 10; i++ {
		g.Step(held(core.ActionUp))
	}
	if math.Abs(player.Translation.Y-250.0/6) > 1e-3 {
		t.Errorf("player y = %f, want %f", player.Translation.Y, 250.0/6)
	}
	if player.Rotation != 0.15 {
		t.Errorf("steering up should tilt by 0.15, got %f", player.Rotation)
	}

	g.Step(held(core.ActionDown))
	if player.Rotation != -0.15 {
		t.Errorf("steering down should tilt by -0.15, got %f", player.Rotation)
	}

	both := held(core.ActionUp)
	both.Hold(core.ActionDown)
	y := player.Translation.Y
	g.Step(both)
	if player.Translation.Y != y || player.Rotation != 0 {
		t.Error("opposite keys should cancel out")
	}
}

func TestLeavingRoadEndsRun(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	for i := 0; i < 90 && !g.State().GameOver; i++ {
		g.Step(held(core.ActionUp))
	}

	if !g.State().GameOver {
		t.Fatal("driving off the road should end the run")
	}
	if g.health != 0 {
		t.Errorf("health = %d, want 0", g.health)
	}
	if txt, _ := g.eng.Text(healthLabel); txt.Value != "Health: 0" {
		t.Errorf("health text = %q", txt.Value)
	}
	banner, ok := g.eng.Text(gameOverLabel)
	if !ok || banner.Value != "Game Over" || banner.FontSize != 128 {
		t.Errorf("unexpected banner: %+v", banner)
	}
	if _, playing := g.eng.Audio().MusicPlaying(); playing {
		t.Error("music should stop")
	}
	if countSfx(g.DrainAudio(), engine.SfxJingle3) != 1 {
		t.Error("Jingle3 should play once")
	}

	player, _ := g.eng.Sprite(playerLabel)
	y := player.Translation.Y
	g.Step(held(core.ActionUp))
	if player.Translation.Y != y {
		t.Error("player should not move after the run ends")
	}
}

func TestRoadLinesWrap(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	for i := 0; i < 12; i++ {
		g.Step(core.NewInputFrame())
	}

	line, _ := g.eng.Sprite("roadline_0")
	if line.Translation.X < 800 || line.Translation.X > 830 {
		t.Errorf("roadline_0 should wrap past x=-675 to the right, got %f", line.Translation.X)
	}
}

func TestRoadSpeedConstantByDefault(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))
	g.ticks = 7200

	line, _ := g.eng.Sprite("roadline_5")
	x := line.Translation.X
	g.Step(core.NewInputFrame())

	if want := x - 400.0/60; math.Abs(line.Translation.X-want) > 1e-3 {
		t.Errorf("roadline_5 x = %f, want %f", line.Translation.X, want)
	}
}

func TestRenderPaused(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)

	dst := core.NewScreen(80, 24)
	g.Render(dst)
	if !strings.Contains(dst.String(), "PAUSED") {
		t.Error("paused run should show the pause box")
	}
}

func TestObstacleHitCostsHealth(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))
	g.DrainAudio()

	player, _ := g.eng.Sprite(playerLabel)
	obstacle, _ := g.eng.Sprite("obstacle_0")
	obstacle.Translation = player.Translation

	g.Step(core.NewInputFrame())
	if g.health != 4 {
		t.Fatalf("health = %d, want 4", g.health)
	}
	if txt, _ := g.eng.Text(healthLabel); txt.Value != "Health: 4" {
		t.Errorf("health text = %q", txt.Value)
	}
	if countSfx(g.DrainAudio(), engine.SfxImpact3) != 1 {
		t.Error("hit should play Impact3")
	}

	// Still touching: no new contact.
	g.Step(core.NewInputFrame())
	if g.health != 4 {
		t.Errorf("a held contact should cost health once, health = %d", g.health)
	}
}

func TestLastHitEndsRun(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))
	g.health = 1

	player, _ := g.eng.Sprite(playerLabel)
	obstacle, _ := g.eng.Sprite("obstacle_4")
	obstacle.Translation = player.Translation

	res := g.Step(core.NewInputFrame())
	if !res.State.GameOver {
		t.Fatal("losing the last health point should end the run")
	}
	if _, ok := g.eng.Text(gameOverLabel); !ok {
		t.Error("game over banner should be shown")
	}
}

func TestPassedObstacleScores(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	obstacle, _ := g.eng.Sprite("obstacle_3")
	obstacle.Translation = engine.NewVec2(-799, 0)

	res := g.Step(core.NewInputFrame())
	if res.State.Score != 1 {
		t.Errorf("score = %d, want 1", res.State.Score)
	}
	if obstacle.Translation.X < 800 || obstacle.Translation.X >= 1600 {
		t.Errorf("obstacle should respawn ahead, got x=%f", obstacle.Translation.X)
	}
}

func TestPause(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)

	line, _ := g.eng.Sprite("roadline_5")
	x := line.Translation.X
	g.Step(core.NewInputFrame())
	if line.Translation.X != x {
		t.Error("road should not scroll while paused")
	}

	if res := g.Step(pause); res.State.Paused {
		t.Error("second pause should resume")
	}
}

func TestDifficultyPresetHealth(t *testing.T) {
	SetDifficultyPreset("easy")
	defer SetDifficultyPreset("")

	g := New()
	g.Reset(testConfig(1))
	if g.health != 7 {
		t.Errorf("easy preset health = %d, want 7", g.health)
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() *Game {
		g := New()
		g.Reset(testConfig(99))
		for i := 0; i < 600 && !g.State().GameOver; i++ {
			in := core.NewInputFrame()
			switch (i / 40) % 4 {
			case 0:
				in.Hold(core.ActionUp)
			case 2:
				in.Hold(core.ActionDown)
			}
			g.Step(in)
		}
		return g
	}

	g1, g2 := run(), run()
	if g1.State() != g2.State() || g1.health != g2.health || g1.ticks != g2.ticks {
		t.Errorf("runs differ: %+v/%d vs %+v/%d", g1.State(), g1.health, g2.State(), g2.health)
	}
	for _, s1 := range g1.eng.Sprites() {
		s2, ok := g2.eng.Sprite(s1.Label)
		if !ok || s1.Translation != s2.Translation {
			t.Errorf("sprite %s differs between runs", s1.Label)
		}
	}
}
