// Package engine is a small 2D sprite engine. It owns labeled sprites and
// texts, detects collisions between them, queues audio requests and draws
// the scene into a core.Screen. Games drive it from a per-frame callback:
// BeginFrame, game logic, EndFrame.
package engine

import (
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/sprite-arcade/internal/core"
)

// Engine holds the scene state for one game.
type Engine struct {
	sprites  map[string]*Sprite
	texts    map[string]*Text
	nextID   uint32
	contacts *contactTracker
	events   []CollisionEvent
	tweens   map[string]*gween.Tween

	delta    time.Duration
	deltaF   float64
	elapsed  time.Duration
	frame    uint64
	input    core.InputFrame
	viewport Viewport
	audio    *AudioManager
	logger   *log.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// WithViewport sets the initial viewport.
func WithViewport(v Viewport) Option {
	return func(e *Engine) {
		e.viewport = v
	}
}

// New creates an empty engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		sprites:  make(map[string]*Sprite),
		texts:    make(map[string]*Text),
		contacts: newContactTracker(),
		tweens:   make(map[string]*gween.Tween),
		input:    core.NewInputFrame(),
		viewport: NewViewport(80, 24),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = log.Default().WithPrefix("engine")
	}
	e.audio = newAudioManager(e.logger)
	return e
}

// Logger returns the engine logger.
func (e *Engine) Logger() *log.Logger {
	return e.logger
}

// Audio returns the audio manager.
func (e *Engine) Audio() *AudioManager {
	return e.audio
}

// SetViewport changes the cell grid the world is mapped onto.
func (e *Engine) SetViewport(v Viewport) {
	e.viewport = v
}

// Viewport returns the current viewport.
func (e *Engine) Viewport() Viewport {
	return e.viewport
}

// AddSprite creates a sprite, replacing any sprite with the same label.
// The sprite starts at the origin with scale 1 and collision disabled.
func (e *Engine) AddSprite(label string, preset SpritePreset) *Sprite {
	e.nextID++
	s := &Sprite{
		Label:  label,
		Preset: preset,
		Scale:  1,
		id:     e.nextID,
	}
	e.sprites[label] = s
	e.logger.Debug("sprite added", "label", label, "preset", preset)
	return s
}

// Sprite looks up a sprite by label.
func (e *Engine) Sprite(label string) (*Sprite, bool) {
	s, ok := e.sprites[label]
	return s, ok
}

// RemoveSprite deletes a sprite. It reports whether the label existed.
func (e *Engine) RemoveSprite(label string) bool {
	if _, ok := e.sprites[label]; !ok {
		return false
	}
	delete(e.sprites, label)
	e.logger.Debug("sprite removed", "label", label)
	return true
}

// Sprites returns all sprites ordered by label.
func (e *Engine) Sprites() []*Sprite {
	out := make([]*Sprite, 0, len(e.sprites))
	for _, s := range e.sprites {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

// SpritesWithPrefix returns the sprites whose label starts with prefix,
// ordered by label.
func (e *Engine) SpritesWithPrefix(prefix string) []*Sprite {
	var out []*Sprite
	for _, s := range e.Sprites() {
		if strings.HasPrefix(s.Label, prefix) {
			out = append(out, s)
		}
	}
	return out
}

// SpriteCount returns the number of sprites.
func (e *Engine) SpriteCount() int {
	return len(e.sprites)
}

// AddText creates a text, replacing any text with the same label.
func (e *Engine) AddText(label, value string) *Text {
	t := &Text{
		Label:    label,
		Value:    value,
		FontSize: DefaultFontSize,
	}
	e.texts[label] = t
	return t
}

// Text looks up a text by label.
func (e *Engine) Text(label string) (*Text, bool) {
	t, ok := e.texts[label]
	return t, ok
}

// SetText updates a text's value. It reports whether the label existed.
func (e *Engine) SetText(label, value string) bool {
	t, ok := e.texts[label]
	if !ok {
		e.logger.Warn("text not found", "label", label)
		return false
	}
	t.Value = value
	return true
}

// RemoveText deletes a text and any tween running on it.
func (e *Engine) RemoveText(label string) {
	delete(e.texts, label)
	delete(e.tweens, label)
}

// Texts returns all texts ordered by label.
func (e *Engine) Texts() []*Text {
	out := make([]*Text, 0, len(e.texts))
	for _, t := range e.texts {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

// AnimateText moves a text's Y coordinate to toY over duration with a
// bounce easing. Tweens advance in EndFrame.
func (e *Engine) AnimateText(label string, toY float64, duration time.Duration) bool {
	t, ok := e.texts[label]
	if !ok {
		return false
	}
	e.tweens[label] = gween.New(float32(t.Translation.Y), float32(toY), float32(duration.Seconds()), ease.OutBounce)
	return true
}

// Animating reports whether any text tween is still running.
func (e *Engine) Animating() bool {
	return len(e.tweens) > 0
}

// BeginFrame starts a frame: it records the delta and input, then runs
// collision detection. Events not drained in the previous frame are
// dropped.
func (e *Engine) BeginFrame(delta time.Duration, in core.InputFrame) {
	e.frame++
	e.delta = delta
	e.deltaF = delta.Seconds()
	e.elapsed += delta
	e.input = in

	colliders := make([]*Sprite, 0, len(e.sprites))
	for _, s := range e.Sprites() {
		if s.Collision {
			colliders = append(colliders, s)
		}
	}
	e.events = e.contacts.update(colliders)
}

// EndFrame advances text tweens.
func (e *Engine) EndFrame() {
	for label, tw := range e.tweens {
		t, ok := e.texts[label]
		if !ok {
			delete(e.tweens, label)
			continue
		}
		y, done := tw.Update(float32(e.deltaF))
		t.Translation.Y = float64(y)
		if done {
			delete(e.tweens, label)
		}
	}
}

// DrainCollisions returns this frame's collision events and clears them.
func (e *Engine) DrainCollisions() []CollisionEvent {
	events := e.events
	e.events = nil
	return events
}

// Delta returns the current frame duration.
func (e *Engine) Delta() time.Duration {
	return e.delta
}

// DeltaSeconds returns the current frame duration in seconds.
func (e *Engine) DeltaSeconds() float64 {
	return e.deltaF
}

// Elapsed returns the total time simulated so far.
func (e *Engine) Elapsed() time.Duration {
	return e.elapsed
}

// Frame returns the number of frames begun.
func (e *Engine) Frame() uint64 {
	return e.frame
}

// Input returns the current frame's input.
func (e *Engine) Input() core.InputFrame {
	return e.input
}

// MouseLocation returns the cursor position in world space.
func (e *Engine) MouseLocation() (Vec2, bool) {
	if !e.input.Cursor.Valid {
		return Vec2{}, false
	}
	return e.viewport.ToWorld(e.input.Cursor.X, e.input.Cursor.Y), true
}

// Clear removes all sprites, texts, tweens and contacts and resets the
// clock. Queued audio is discarded.
func (e *Engine) Clear() {
	clear(e.sprites)
	clear(e.texts)
	clear(e.tweens)
	e.contacts.reset()
	e.events = nil
	e.audio.Drain()
	e.audio.playing = false
	e.frame = 0
	e.elapsed = 0
	e.delta = 0
	e.deltaF = 0
}
