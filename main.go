// Package main implements the main entry point for a CHIP-8 emulator
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/retrochip8/internal/app"
	"github.com/retroenv/retrochip8/internal/audio"
	"github.com/retroenv/retrochip8/internal/cli"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/frontend/headless"
	"github.com/retroenv/retrochip8/internal/frontend/terminal"
	"github.com/retroenv/retrochip8/internal/frontend/window"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/pipeline"
	retroapp "github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := retroapp.Context()

	opts, emulatorOptions, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			app.PrintBanner(logger, opts, version, commit, date)
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("version: %s\n", buildinfo.Version(version, commit, date))
		return
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	app.PrintBanner(logger, opts, version, commit, date)

	p := pipeline.New(logger, frontendFactory(logger))
	if _, err := p.Execute(ctx, opts, emulatorOptions); err != nil {
		// Handle context cancellation (Ctrl+C) gracefully
		if errors.Is(err, context.Canceled) {
			logger.Info("Emulation cancelled")
			return
		}
		logger.Error("Emulation failed", log.Err(err))
		os.Exit(1)
	}
}

// frontendFactory returns a factory for all frontends that this binary supports.
func frontendFactory(logger *log.Logger) pipeline.FrontendFactory {
	return func(kind options.Frontend, opts options.Emulator) (pipeline.Frontend, error) {
		switch kind {
		case options.Headless:
			return headless.New(os.Stdout), nil

		case options.Terminal:
			frontend := terminal.New(logger, os.Stdin, os.Stdout)
			if err := frontend.Open(); err != nil {
				return nil, fmt.Errorf("opening terminal: %w", err)
			}
			return frontend, nil

		case options.Ebiten:
			var beeper window.Beeper
			player, err := audio.New()
			if err != nil {
				logger.Warn("Audio output is not available", log.Err(err))
			} else {
				beeper = player
			}
			return window.New(logger, app.Name, opts.Scale, beeper, audio.BeepDuration), nil

		default:
			return nil, fmt.Errorf("unsupported frontend '%s'", kind)
		}
	}
}
