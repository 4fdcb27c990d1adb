package detector

import (
	"testing"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestDetect(t *testing.T) {
	logger := log.NewTestLogger(t)

	tests := []struct {
		name         string
		frontendOpt  string
		inputFile    string
		terminal     bool
		wantFrontend options.Frontend
	}{
		{
			name:         "explicit ebiten frontend",
			frontendOpt:  "ebiten",
			inputFile:    "pong.ch8",
			terminal:     true,
			wantFrontend: options.Ebiten,
		},
		{
			name:         "explicit headless frontend on terminal",
			frontendOpt:  "headless",
			inputFile:    "pong.ch8",
			terminal:     true,
			wantFrontend: options.Headless,
		},
		{
			name:         "explicit frontend is case insensitive",
			frontendOpt:  "Terminal",
			inputFile:    "pong.ch8",
			terminal:     false,
			wantFrontend: options.Terminal,
		},
		{
			name:         "terminal detected",
			inputFile:    "pong.ch8",
			terminal:     true,
			wantFrontend: options.Terminal,
		},
		{
			name:         "no terminal defaults to headless",
			inputFile:    "pong.rom",
			terminal:     false,
			wantFrontend: options.Headless,
		},
		{
			name:         "unknown extension is still detected",
			inputFile:    "game.bin",
			terminal:     false,
			wantFrontend: options.Headless,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New(logger)
			d.isTerminal = func() bool { return tt.terminal }

			opts := options.Program{
				Parameters: options.Parameters{Input: tt.inputFile},
				Flags:      options.Flags{Frontend: tt.frontendOpt},
			}

			got := d.Detect(opts)
			assert.Equal(t, tt.wantFrontend, got)
		})
	}
}
