package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAudioQueue(t *testing.T) {
	a := New().Audio()

	a.PlayMusic(MusicClassy8Bit, 0.1)
	a.PlaySFX(SfxImpact2, 0.4)
	a.StopMusic()
	a.StopMusic()

	events := a.Drain()
	require.Len(t, events, 3)
	assert.Equal(t, AudioMusicStart, events[0].Kind)
	assert.Equal(t, MusicClassy8Bit, events[0].Music)
	assert.Equal(t, AudioSfx, events[1].Kind)
	assert.Equal(t, SfxImpact2, events[1].Sfx)
	assert.InDelta(t, 0.4, events[1].Volume, 1e-9)
	assert.Equal(t, AudioMusicStop, events[2].Kind)

	assert.Empty(t, a.Drain())
}

func TestAudioVolumeClamped(t *testing.T) {
	a := New().Audio()
	a.PlaySFX(SfxJingle3, 3)
	events := a.Drain()
	require.Len(t, events, 1)
	assert.Equal(t, 1.0, events[0].Volume)
}

func TestMusicPlaying(t *testing.T) {
	a := New().Audio()
	_, playing := a.MusicPlaying()
	assert.False(t, playing)

	a.PlayMusic(MusicWhimsicalPopsicle, 0.2)
	track, playing := a.MusicPlaying()
	assert.True(t, playing)
	assert.Equal(t, "whimsical_popsicle", track.String())
}
