package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestParseFlags_EmulatorOptions(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Emulator
	}{
		{
			name: "default flags",
			args: []string{"prog", "test.ch8"},
			want: options.NewEmulator(),
		},
		{
			name: "instruction rate and frames",
			args: []string{"prog", "-ips", "1000", "-frames", "120", "test.ch8"},
			want: options.Emulator{
				InstructionsPerSecond: 1000,
				Frames:                120,
				Scale:                 options.DefaultScale,
				StackLimit:            options.DefaultStackLimit,
				TraceDepth:            options.DefaultTraceDepth,
			},
		},
		{
			name: "unbounded stack without trace",
			args: []string{"prog", "-stack", "0", "-trace", "0", "-seed", "7", "test.ch8"},
			want: options.Emulator{
				InstructionsPerSecond: options.DefaultInstructionsPerSecond,
				Scale:                 options.DefaultScale,
				Seed:                  7,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			opts, got, err := ParseFlags()
			assert.NoError(t, err)
			assert.Equal(t, "test.ch8", opts.Input)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantUsage bool
	}{
		{"no rom file", []string{"prog"}, true},
		{"flag after file", []string{"prog", "test.ch8", "-q"}, true},
		{"unknown frontend", []string{"prog", "-f", "sdl", "test.ch8"}, false},
		{"negative frames", []string{"prog", "-frames", "-1", "test.ch8"}, false},
		{"zero instruction rate", []string{"prog", "-ips", "0", "test.ch8"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			_, _, err := ParseFlags()
			assert.Error(t, err)

			var usageErr *UsageError
			assert.Equal(t, tt.wantUsage, errors.As(err, &usageErr))
		})
	}
}

func TestParseFlags_Frontend(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })

	os.Args = []string{"prog", "-f", "Terminal", "test.ch8"}

	opts, _, err := ParseFlags()
	assert.NoError(t, err)
	assert.Equal(t, options.Terminal.String(), opts.Frontend)
}

func TestParseFlags_Version(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })

	os.Args = []string{"prog", "-version"}

	opts, _, err := ParseFlags()
	assert.NoError(t, err)
	assert.True(t, opts.Version)
}
