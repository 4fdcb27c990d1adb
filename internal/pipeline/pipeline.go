// Package pipeline orchestrates the emulation workflow stages.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/retroenv/retrochip8/internal/app"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/detector"
	"github.com/retroenv/retrochip8/internal/disasm"
	"github.com/retroenv/retrochip8/internal/emulator"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/log"
)

// Frontend is a runner frontend that holds resources.
type Frontend interface {
	runner.Frontend
	io.Closer
}

// Looper is implemented by frontends that own the main loop and drive the
// runner themselves.
type Looper interface {
	Loop(ctx context.Context, r *runner.Runner) error
}

// FrontendFactory creates the frontend of the given kind.
type FrontendFactory func(kind options.Frontend, opts options.Emulator) (Frontend, error)

// Pipeline orchestrates the complete emulation workflow.
type Pipeline struct {
	logger      *log.Logger
	detector    *detector.Detector
	loader      *loader.Loader
	newFrontend FrontendFactory
}

// New creates a new emulation pipeline.
func New(logger *log.Logger, newFrontend FrontendFactory) *Pipeline {
	return &Pipeline{
		logger:      logger,
		detector:    detector.New(logger),
		loader:      loader.New(),
		newFrontend: newFrontend,
	}
}

// Execute runs the complete emulation pipeline.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, emulatorOpts options.Emulator) (*emulator.Emulator, error) {
	kind := p.detector.Detect(opts)

	rom, err := p.loader.Load(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("loading rom: %w", err)
	}

	return p.ExecuteWithROM(ctx, rom, kind, opts, emulatorOpts)
}

// ExecuteWithROM runs the emulation pipeline with a pre-loaded ROM.
// This is useful for testing and programmatic usage where the ROM is already in memory.
// The emulator is returned on execution faults as well to allow inspecting its state.
func (p *Pipeline) ExecuteWithROM(ctx context.Context, rom []byte, kind options.Frontend,
	opts options.Program, emulatorOpts options.Emulator) (*emulator.Emulator, error) {

	emu := config.CreateEmulator(p.logger, emulatorOpts)
	if err := emu.LoadROM(rom); err != nil {
		return nil, fmt.Errorf("loading rom into memory: %w", err)
	}

	frontend, err := p.newFrontend(kind, emulatorOpts)
	if err != nil {
		return nil, fmt.Errorf("creating %s frontend: %w", kind, err)
	}

	app.PrintInfo(p.logger, opts, kind, len(rom))

	r := runner.New(p.logger, emu, frontend, config.RunnerConfig(emulatorOpts, kind))
	err = p.run(ctx, r, frontend)
	if closeErr := frontend.Close(); closeErr != nil {
		err = errors.Join(err, fmt.Errorf("closing frontend: %w", closeErr))
	}
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			p.printTrace(emu)
		}
		return emu, err
	}

	p.logger.Debug("Emulation finished", log.Int("frames", r.Frames()))
	return emu, nil
}

func (p *Pipeline) run(ctx context.Context, r *runner.Runner, frontend Frontend) error {
	if looper, ok := frontend.(Looper); ok {
		if err := looper.Loop(ctx, r); err != nil {
			return fmt.Errorf("running frontend loop: %w", err)
		}
		return nil
	}
	if err := r.Run(ctx); err != nil {
		return fmt.Errorf("running emulation: %w", err)
	}
	return nil
}

// printTrace logs the last executed instructions.
func (p *Pipeline) printTrace(emu *emulator.Emulator) {
	for _, entry := range emu.Trace() {
		p.logger.Warn("Trace",
			log.Hex("address", entry.Address),
			log.Hex("opcode", entry.Instruction.Opcode),
			log.String("instruction", disasm.Format(entry.Instruction.Opcode)))
	}
}
