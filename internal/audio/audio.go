// Package audio plays the tone of the sound timer.
package audio

import (
	"fmt"
	"time"

	"github.com/ebitengine/oto/v3"
)

const (
	// SampleRate of the audio output.
	SampleRate = 44100
	// Frequency of the square wave tone.
	Frequency = 440
	// BeepDuration is the length of the tone played when the sound timer expires.
	BeepDuration = 100 * time.Millisecond
)

// Player outputs the tone through the audio device.
type Player struct {
	ctx    *oto.Context
	player *oto.Player
	tone   *tone
}

// New opens the audio device and starts the silent output stream.
// Only one player can exist per process.
func New() (*Player, error) {
	op := &oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   50 * time.Millisecond,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("creating audio context: %w", err)
	}
	<-ready

	p := &Player{
		ctx:  ctx,
		tone: newTone(SampleRate, Frequency),
	}
	p.player = ctx.NewPlayer(p.tone)
	p.player.Play()
	return p, nil
}

// Beep plays the tone for the given duration.
func (p *Player) Beep(d time.Duration) {
	p.tone.start(d)
}

// Close stops the output stream.
func (p *Player) Close() error {
	if err := p.player.Close(); err != nil {
		return fmt.Errorf("closing audio player: %w", err)
	}
	return nil
}
