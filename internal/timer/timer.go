// Package timer implements the delay and sound countdown timers.
//
// Both timers are decremented by the host at a fixed rate, conventionally 60Hz,
// independent of the instruction rate.
package timer

// Timers holds the delay and sound counters.
type Timers struct {
	delay uint8
	sound uint8
}

// Tick decrements each nonzero timer by one. It returns true when the sound
// timer reached zero during this tick, which is the signal for the host to
// emit a tone.
func (t *Timers) Tick() bool {
	if t.delay > 0 {
		t.delay--
	}

	if t.sound == 0 {
		return false
	}
	t.sound--
	return t.sound == 0
}

// Delay returns the delay timer value.
func (t *Timers) Delay() uint8 {
	return t.delay
}

// Sound returns the sound timer value.
func (t *Timers) Sound() uint8 {
	return t.sound
}

// SetDelay sets the delay timer.
func (t *Timers) SetDelay(value uint8) {
	t.delay = value
}

// SetSound sets the sound timer.
func (t *Timers) SetSound(value uint8) {
	t.sound = value
}

// SoundActive returns whether the sound timer is still counting down.
func (t *Timers) SoundActive() bool {
	return t.sound > 0
}

// Reset zeroes both timers.
func (t *Timers) Reset() {
	t.delay = 0
	t.sound = 0
}
