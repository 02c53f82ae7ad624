package engine

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sprite-arcade/internal/core"
)

// MusicPreset is a background music track.
type MusicPreset int

const (
	MusicClassy8Bit MusicPreset = iota
	MusicWhimsicalPopsicle
)

// String returns the track name.
func (m MusicPreset) String() string {
	switch m {
	case MusicClassy8Bit:
		return "classy_8_bit"
	case MusicWhimsicalPopsicle:
		return "whimsical_popsicle"
	default:
		return "unknown"
	}
}

// SfxPreset is a one-shot sound effect.
type SfxPreset int

const (
	SfxImpact2 SfxPreset = iota
	SfxImpact3
	SfxConfirmation1
	SfxJingle3
)

// String returns the effect name.
func (s SfxPreset) String() string {
	switch s {
	case SfxImpact2:
		return "impact2"
	case SfxImpact3:
		return "impact3"
	case SfxConfirmation1:
		return "confirmation1"
	case SfxJingle3:
		return "jingle3"
	default:
		return "unknown"
	}
}

// AudioEventKind tells a platform what to do with an AudioEvent.
type AudioEventKind int

const (
	AudioMusicStart AudioEventKind = iota
	AudioMusicStop
	AudioSfx
)

// AudioEvent is a queued audio command. Platforms drain the queue and
// decide how (or whether) to make a sound.
type AudioEvent struct {
	Kind   AudioEventKind
	Music  MusicPreset
	Sfx    SfxPreset
	Volume float64
}

// AudioManager records music and sound effect requests.
type AudioManager struct {
	music   MusicPreset
	playing bool
	volume  float64
	queue   []AudioEvent
	logger  *log.Logger
}

func newAudioManager(logger *log.Logger) *AudioManager {
	return &AudioManager{logger: logger}
}

// PlayMusic starts (or switches to) a looping music track.
func (a *AudioManager) PlayMusic(m MusicPreset, volume float64) {
	volume = core.ClampF(volume, 0, 1)
	a.music = m
	a.playing = true
	a.volume = volume
	a.queue = append(a.queue, AudioEvent{Kind: AudioMusicStart, Music: m, Volume: volume})
	a.logger.Debug("music started", "track", m, "volume", volume)
}

// StopMusic stops the current track. Stopping silence is a no-op.
func (a *AudioManager) StopMusic() {
	if !a.playing {
		return
	}
	a.playing = false
	a.queue = append(a.queue, AudioEvent{Kind: AudioMusicStop, Music: a.music})
	a.logger.Debug("music stopped", "track", a.music)
}

// PlaySFX plays a sound effect once.
func (a *AudioManager) PlaySFX(s SfxPreset, volume float64) {
	volume = core.ClampF(volume, 0, 1)
	a.queue = append(a.queue, AudioEvent{Kind: AudioSfx, Sfx: s, Volume: volume})
	a.logger.Debug("sfx", "effect", s, "volume", volume)
}

// MusicPlaying reports the current track and whether it is playing.
func (a *AudioManager) MusicPlaying() (MusicPreset, bool) {
	return a.music, a.playing
}

// Drain returns and clears the queued audio events.
func (a *AudioManager) Drain() []AudioEvent {
	events := a.queue
	a.queue = nil
	return events
}
