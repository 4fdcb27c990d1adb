// Package config handles application configuration and setup
package config

import (
	"github.com/retroenv/retrochip8/internal/emulator"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// EmulatorOptions converts the command line options to emulator options.
// A zero seed keeps the randomly seeded default source.
func EmulatorOptions(logger *log.Logger, opts options.Emulator) []emulator.Option {
	emulatorOptions := []emulator.Option{
		emulator.WithLogger(logger),
		emulator.WithStackLimit(opts.StackLimit),
		emulator.WithTrace(opts.TraceDepth),
	}
	if opts.Seed != 0 {
		emulatorOptions = append(emulatorOptions, emulator.WithRandom(emulator.NewRandom(opts.Seed)))
	}
	return emulatorOptions
}

// CreateEmulator creates an emulator configured by the command line options.
func CreateEmulator(logger *log.Logger, opts options.Emulator) *emulator.Emulator {
	return emulator.New(EmulatorOptions(logger, opts)...)
}

// RunnerConfig converts the command line options to a runner configuration.
// The headless frontend runs without waiting for the frame ticker and stops
// after a default number of frames if no limit is given.
func RunnerConfig(opts options.Emulator, frontend options.Frontend) runner.Config {
	cfg := runner.Config{
		InstructionsPerSecond: opts.InstructionsPerSecond,
		MaxFrames:             opts.Frames,
	}
	if frontend == options.Headless {
		cfg.Unthrottled = true
		if cfg.MaxFrames == 0 {
			cfg.MaxFrames = options.DefaultHeadlessFrames
		}
	}
	return cfg
}
