package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/sprite-arcade/internal/core"
)

func addBall(e *Engine, label string, x, y float64) *Sprite {
	s := e.AddSprite(label, RollingBallBlue)
	s.Translation = Vec2{X: x, Y: y}
	s.Collision = true
	return s
}

func TestCollisionBeginOnce(t *testing.T) {
	e := New()
	addBall(e, "marble1", 0, 0)
	addBall(e, "car 3", 10, 0)

	e.BeginFrame(frame, core.NewInputFrame())
	events := e.DrainCollisions()
	require.Len(t, events, 1)
	assert.True(t, events[0].State.IsBegin())
	assert.Equal(t, CollisionPair{"car 3", "marble1"}, events[0].Pair)

	e.BeginFrame(frame, core.NewInputFrame())
	assert.Empty(t, e.DrainCollisions(), "ongoing contact should not repeat Begin")
}

func TestCollisionEndWhenApart(t *testing.T) {
	e := New()
	a := addBall(e, "a", 0, 0)
	addBall(e, "b", 10, 0)

	e.BeginFrame(frame, core.NewInputFrame())
	e.DrainCollisions()

	a.Translation.X = -500
	e.BeginFrame(frame, core.NewInputFrame())
	events := e.DrainCollisions()
	require.Len(t, events, 1)
	assert.True(t, events[0].State.IsEnd())
}

func TestCollisionEndWhenRemoved(t *testing.T) {
	e := New()
	addBall(e, "a", 0, 0)
	addBall(e, "b", 10, 0)
	e.BeginFrame(frame, core.NewInputFrame())
	e.DrainCollisions()

	e.RemoveSprite("b")
	e.BeginFrame(frame, core.NewInputFrame())
	events := e.DrainCollisions()
	require.Len(t, events, 1)
	assert.Equal(t, CollisionEnd, events[0].State)
}

func TestCollisionReaddedLabelBeginsAgain(t *testing.T) {
	e := New()
	addBall(e, "a", 0, 0)
	addBall(e, "b", 10, 0)
	e.BeginFrame(frame, core.NewInputFrame())
	e.DrainCollisions()

	addBall(e, "b", 10, 0)
	e.BeginFrame(frame, core.NewInputFrame())
	events := e.DrainCollisions()
	require.Len(t, events, 2)
	assert.Equal(t, CollisionEnd, events[0].State)
	assert.Equal(t, CollisionBegin, events[1].State)
}

func TestCollisionRequiresBothColliders(t *testing.T) {
	e := New()
	addBall(e, "a", 0, 0)
	b := e.AddSprite("b", RollingBallBlue)
	b.Translation = Vec2{X: 5}

	e.BeginFrame(frame, core.NewInputFrame())
	assert.Empty(t, e.DrainCollisions())
}

func TestCollisionEventsDroppedNextFrame(t *testing.T) {
	e := New()
	addBall(e, "a", 0, 0)
	addBall(e, "b", 10, 0)

	e.BeginFrame(frame, core.NewInputFrame())
	e.BeginFrame(frame, core.NewInputFrame())
	assert.Empty(t, e.DrainCollisions())
}

func TestCollisionUsesScaleAndRotation(t *testing.T) {
	e := New()
	// A barrier is 104 wide and 36 tall; rotated up it becomes 36 wide.
	wall := e.AddSprite("wall", RacingBarrierRed)
	wall.Rotation = Up
	wall.Collision = true
	addBall(e, "ball", 40, 0)

	e.BeginFrame(frame, core.NewInputFrame())
	assert.Empty(t, e.DrainCollisions(), "rotated barrier should be narrow")

	wall.Rotation = Right
	e.BeginFrame(frame, core.NewInputFrame())
	require.Len(t, e.DrainCollisions(), 1)

	wall.Scale = 0.1
	e.BeginFrame(frame, core.NewInputFrame())
	events := e.DrainCollisions()
	require.Len(t, events, 1)
	assert.True(t, events[0].State.IsEnd())
}

func TestCollisionPairPredicates(t *testing.T) {
	tests := []struct {
		name   string
		pair   CollisionPair
		one    bool
		either bool
		both   bool
	}{
		{"marble and car", newPair("marble1", "car 4"), true, true, false},
		{"two marbles", newPair("marble1", "marble2"), false, true, true},
		{"no marble", newPair("car 1", "car 2"), false, false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.one, tc.pair.OneStartsWith("marble"))
			assert.Equal(t, tc.either, tc.pair.EitherStartsWith("marble"))
			assert.Equal(t, tc.both, tc.pair.BothStartWith("marble"))
		})
	}

	p := newPair("player", "obstacle_3")
	assert.Equal(t, "obstacle_3", p[0])
	assert.True(t, p.EitherContains("player"))
	assert.True(t, p.EitherEquals("player"))
	assert.False(t, p.EitherEquals("play"))
}
