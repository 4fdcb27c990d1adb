package audio

import (
	"encoding/binary"
	"math"
	"testing"
	"time"

	"github.com/retroenv/retrogolib/assert"
)

func samples(t *testing.T, tn *tone, count int) []float32 {
	t.Helper()
	buf := make([]byte, count*bytesPerSample)
	n, err := tn.Read(buf)
	assert.NoError(t, err)
	assert.Equal(t, len(buf), n)

	result := make([]float32, count)
	for i := range result {
		result[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[i*bytesPerSample:]))
	}
	return result
}

func TestTone_SilentByDefault(t *testing.T) {
	tn := newTone(8000, 1000)
	for _, s := range samples(t, tn, 16) {
		assert.Equal(t, float32(0), s)
	}
}

func TestTone_SquareWave(t *testing.T) {
	// 4 samples per half wave
	tn := newTone(8000, 1000)
	tn.start(time.Millisecond) // 8 samples

	got := samples(t, tn, 12)
	want := []float32{
		amplitude, amplitude, amplitude, amplitude,
		-amplitude, -amplitude, -amplitude, -amplitude,
		0, 0, 0, 0,
	}
	for i := range want {
		assert.Equal(t, want[i], got[i])
	}
}

func TestTone_RestartReplacesDuration(t *testing.T) {
	tn := newTone(8000, 1000)
	tn.start(time.Second)
	tn.start(time.Millisecond)
	assert.Equal(t, int64(8), tn.remaining.Load())
}

func TestTone_PartialSampleIgnored(t *testing.T) {
	tn := newTone(8000, 1000)
	n, err := tn.Read(make([]byte, 6))
	assert.NoError(t, err)
	assert.Equal(t, 4, n)
}
