package audio

import (
	"encoding/binary"
	"math"
	"sync/atomic"
	"time"
)

const (
	bytesPerSample = 4 // mono float32
	amplitude      = 0.2
)

// tone generates a square wave of a fixed frequency for a requested duration.
// Beep may be called from any goroutine while the audio driver calls Read.
type tone struct {
	sampleRate int
	halfPeriod int // samples per half wave

	remaining atomic.Int64 // samples left to play
	position  int          // sample position within the current period, used by Read only
}

func newTone(sampleRate, frequency int) *tone {
	return &tone{
		sampleRate: sampleRate,
		halfPeriod: max(1, sampleRate/frequency/2),
	}
}

// start plays the tone for the given duration, replacing a tone in progress.
func (t *tone) start(d time.Duration) {
	samples := int64(d) * int64(t.sampleRate) / int64(time.Second)
	t.remaining.Store(samples)
}

// Read fills p with little endian float32 samples, silence when no tone is playing.
func (t *tone) Read(p []byte) (int, error) {
	count := len(p) / bytesPerSample
	for i := range count {
		var sample float32
		if t.remaining.Load() > 0 {
			t.remaining.Add(-1)
			sample = amplitude
			if t.position >= t.halfPeriod {
				sample = -amplitude
			}
			t.position = (t.position + 1) % (2 * t.halfPeriod)
		} else {
			t.position = 0
		}
		binary.LittleEndian.PutUint32(p[i*bytesPerSample:], math.Float32bits(sample))
	}
	return count * bytesPerSample, nil
}
