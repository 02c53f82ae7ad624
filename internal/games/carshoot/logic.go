package carshoot

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/sprite-arcade/internal/core"
	"github.com/vovakirdan/sprite-arcade/internal/engine"
)

// update runs one frame of game logic.
func (g *Game) update(in core.InputFrame) {
	player, ok := g.eng.Sprite(playerLabel)
	if !ok {
		g.eng.Logger().Error("player sprite missing, skipping frame")
		return
	}

	g.moveGun(player, in)
	if in.Has(core.ActionFire) {
		g.fire(player.Translation.X)
	}
	g.moveSprites()
	g.cleanup()

	if g.mode == ModePractice {
		return
	}

	if g.spawnTimer.Tick(g.eng.Delta()).JustFinished() {
		g.spawn()
	}
	if g.gameOver {
		return
	}
	g.handleCollisions()
}

// moveGun follows the pointer when it moves and slides the gun with the
// left/right keys.
func (g *Game) moveGun(player *engine.Sprite, in core.InputFrame) {
	if loc, ok := g.eng.MouseLocation(); ok && in.Cursor != g.lastCursor {
		player.Translation.X = loc.X
	}
	g.lastCursor = in.Cursor

	dir := 0.0
	if in.IsHeld(core.ActionLeft) {
		dir--
	}
	if in.IsHeld(core.ActionRight) {
		dir++
	}
	if dir != 0 {
		x := player.Translation.X + dir*g.cfg.Gun.Speed*g.eng.DeltaSeconds()
		player.Translation.X = core.ClampF(x, -engine.WorldWidth/2, engine.WorldWidth/2)
	}
}

// fire launches the next pooled marble from x. An empty pool fires nothing.
func (g *Game) fire(x float64) {
	n := len(g.marbleLabels)
	if n == 0 {
		return
	}
	label := g.marbleLabels[n-1]
	g.marbleLabels = g.marbleLabels[:n-1]

	marble := g.eng.AddSprite(label, engine.RollingBallBlue)
	marble.Translation = engine.NewVec2(x, g.cfg.Marbles.SpawnY)
	marble.Layer = marbleLayer
	marble.Collision = true
	g.eng.Audio().PlaySFX(engine.SfxImpact2, 0.4)
	g.updateMarblesText()
}

func (g *Game) moveSprites() {
	dt := g.eng.DeltaSeconds()
	carSpeed := g.difficulty.Speed(g.cfg.Cars.Speed, g.score, g.ticks)

	for _, s := range g.eng.Sprites() {
		switch {
		case s.HasPrefix(marblePrefix):
			s.Translation.Y += g.cfg.Marbles.Speed * dt
		case s.HasPrefix(carPrefix):
			s.Translation.X += carSpeed * dt
		}
	}
}

// cleanup removes sprites that left the top or right edge. Marbles go
// back to the pool.
func (g *Game) cleanup() {
	for _, s := range g.eng.Sprites() {
		if s.Translation.Y <= g.cfg.Bounds.MaxY && s.Translation.X <= g.cfg.Bounds.MaxX {
			continue
		}
		g.eng.RemoveSprite(s.Label)
		if s.HasPrefix(marblePrefix) {
			g.returnMarble(s.Label)
		}
	}
}

// spawn restarts the spawn timer and sends the next car, or ends the
// game once every car has been sent and none is left on screen.
// Difficulty shortens the delay but never below cars.min_delay.
func (g *Game) spawn() {
	cars := g.cfg.Cars
	secs := cars.MinDelay + g.rng.Float64()*(cars.MaxDelay-cars.MinDelay)
	secs = max(g.difficulty.Delay(secs, g.score, g.ticks), cars.MinDelay)
	g.spawnTimer = engine.TimerFromSeconds(secs, false)

	if g.carsLeft <= 0 {
		if len(g.eng.SpritesWithPrefix(carPrefix)) == 0 {
			g.endGame()
		}
		return
	}

	g.carsLeft--
	g.eng.SetText(carsLeftLabel, g.carsLeftText())

	choices := engine.RacingCars()
	label := fmt.Sprintf("%s %d", carPrefix, g.carsLeft)
	car := g.eng.AddSprite(label, choices[g.rng.Intn(len(choices))])
	car.Translation = engine.NewVec2(cars.SpawnX, cars.MinY+g.rng.Float64()*(cars.MaxY-cars.MinY))
	car.Collision = true
}

// handleCollisions scores every marble that started touching a car. A
// marble that already scored this frame cannot score again.
func (g *Game) handleCollisions() {
	for _, ev := range g.eng.DrainCollisions() {
		if !ev.State.IsBegin() || !ev.Pair.OneStartsWith(marblePrefix) {
			continue
		}

		marble, target := ev.Pair[0], ev.Pair[1]
		if !strings.HasPrefix(marble, marblePrefix) {
			marble, target = target, marble
		}
		if !g.eng.RemoveSprite(marble) {
			continue
		}
		g.returnMarble(marble)
		if !g.eng.RemoveSprite(target) {
			continue
		}

		g.score++
		g.eng.SetText(scoreLabel, g.scoreText())
		g.eng.Audio().PlaySFX(engine.SfxConfirmation1, 0.2)
	}
}

func (g *Game) returnMarble(label string) {
	g.marbleLabels = append(g.marbleLabels, label)
	g.updateMarblesText()
}

// endGame shows the banner, stops the music and plays the closing jingle.
func (g *Game) endGame() {
	g.gameOver = true

	banner := g.eng.AddText(gameOverLabel, "GAME OVER")
	banner.FontSize = 128
	banner.Translation.Y = engine.WorldHeight / 2
	g.eng.AnimateText(gameOverLabel, 0, time.Second)

	g.eng.Audio().StopMusic()
	g.eng.Audio().PlaySFX(engine.SfxJingle3, 0.5)
	g.eng.Logger().Info("game over", "score", g.score, "ticks", g.ticks)
}

func (g *Game) updateMarblesText() {
	if g.mode == ModePractice {
		g.eng.SetText(marblesLabel, g.marblesText())
	}
}

func (g *Game) carsLeftText() string {
	return fmt.Sprintf("Cars left: %d", g.carsLeft)
}

func (g *Game) scoreText() string {
	return fmt.Sprintf("Score: %d", g.score)
}

func (g *Game) marblesText() string {
	return fmt.Sprintf("Marbles: %d", len(g.marbleLabels))
}

func marbleName(i int) string {
	return fmt.Sprintf("%s%d", marblePrefix, i)
}
