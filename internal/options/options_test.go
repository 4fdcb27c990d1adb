package options

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestFrontendFromString(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   Frontend
		wantOK bool
	}{
		{"headless", "headless", Headless, true},
		{"terminal upper case", "TERMINAL", Terminal, true},
		{"ebiten", "ebiten", Ebiten, true},
		{"empty", "", "", false},
		{"unsupported", "sdl", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FrontendFromString(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestNewEmulator(t *testing.T) {
	opts := NewEmulator()

	assert.Equal(t, DefaultInstructionsPerSecond, opts.InstructionsPerSecond)
	assert.Equal(t, DefaultStackLimit, opts.StackLimit)
	assert.Equal(t, 0, opts.Frames)
}
