// Package runner drives an emulator at a fixed frame rate and connects it to a frontend.
//
// Every frame the runner polls the frontend for input, executes the share of
// instructions that falls into the frame, ticks the timers once and presents
// the framebuffer if it changed. The timers are therefore decremented at the
// frame rate, independent of the instruction rate.
package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/emulator"
	"github.com/retroenv/retrogolib/log"
)

// FrameRate is the number of frames per second, which is also the timer rate.
const FrameRate = 60

// ErrQuit is returned by Frame when the frontend requested to quit.
var ErrQuit = errors.New("quit requested")

// KeySetter receives key state changes from a frontend.
type KeySetter interface {
	SetKey(index int, pressed bool) error
}

// Machine is the part of the emulator that the runner drives.
type Machine interface {
	KeySetter
	Step() error
	TickTimers() bool
	ToneSignal() bool
	Display() *display.Framebuffer
}

// Frontend presents the machine to the user.
type Frontend interface {
	// PollInput forwards the current key states to keys and returns whether
	// the user requested to quit.
	PollInput(keys KeySetter) (quit bool, err error)
	// Render presents the framebuffer.
	Render(screen *display.Framebuffer) error
	// Beep plays the tone signaled by the sound timer.
	Beep() error
}

// Config controls the pacing of the runner.
type Config struct {
	InstructionsPerSecond int
	MaxFrames             int  // 0 runs until quit
	Unthrottled           bool // do not wait for the frame ticker
}

// Runner executes frames of a machine.
type Runner struct {
	logger   *log.Logger
	machine  Machine
	frontend Frontend
	cfg      Config

	paused    bool
	frames    int
	remainder int // instruction share carried over to the next frame
}

// New returns a new runner.
func New(logger *log.Logger, machine Machine, frontend Frontend, cfg Config) *Runner {
	return &Runner{
		logger:   logger,
		machine:  machine,
		frontend: frontend,
		cfg:      cfg,
	}
}

// Run executes frames until the context is canceled, the frontend requests to
// quit, an instruction fails or the configured number of frames was executed.
// A quit request is not reported as error.
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / FrameRate)
	defer ticker.Stop()

	for {
		if r.Finished() {
			r.logger.Debug("Frame limit reached", log.Int("frames", r.frames))
			return nil
		}

		if err := r.Frame(); err != nil {
			if errors.Is(err, ErrQuit) {
				r.logger.Debug("Quit requested", log.Int("frames", r.frames))
				return nil
			}
			return err
		}

		if r.cfg.Unthrottled {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("running: %w", err)
			}
			continue
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("running: %w", ctx.Err())
		case <-ticker.C:
		}
	}
}

// Frame executes a single frame.
func (r *Runner) Frame() error {
	quit, err := r.frontend.PollInput(r.machine)
	if err != nil {
		return fmt.Errorf("polling input: %w", err)
	}
	if quit {
		return ErrQuit
	}

	if !r.paused {
		if err := r.execute(); err != nil {
			return err
		}
		if err := r.tickTimers(); err != nil {
			return err
		}
	}

	screen := r.machine.Display()
	if screen.Dirty() {
		if err := r.frontend.Render(screen); err != nil {
			return fmt.Errorf("rendering frame: %w", err)
		}
		screen.ClearDirty()
	}

	r.frames++
	return nil
}

// Pause stops execution of instructions and timers, input and rendering continue.
func (r *Runner) Pause() {
	r.paused = true
}

// Resume continues execution after Pause.
func (r *Runner) Resume() {
	r.paused = false
}

// Paused returns whether the runner is paused.
func (r *Runner) Paused() bool {
	return r.paused
}

// Finished returns whether the configured number of frames was executed.
func (r *Runner) Finished() bool {
	return r.cfg.MaxFrames > 0 && r.frames >= r.cfg.MaxFrames
}

// Frames returns the number of executed frames.
func (r *Runner) Frames() int {
	return r.frames
}

func (r *Runner) execute() error {
	r.remainder += r.cfg.InstructionsPerSecond
	count := r.remainder / FrameRate
	r.remainder -= count * FrameRate

	for range count {
		if err := r.machine.Step(); err != nil {
			r.logFault(err)
			return fmt.Errorf("executing instruction: %w", err)
		}
	}
	return nil
}

func (r *Runner) tickTimers() error {
	r.machine.TickTimers()
	if !r.machine.ToneSignal() {
		return nil
	}
	if err := r.frontend.Beep(); err != nil {
		return fmt.Errorf("playing tone: %w", err)
	}
	return nil
}

// logFault logs the location of a failed instruction. The error itself is
// returned to the caller, which decides how to report it.
func (r *Runner) logFault(err error) {
	var fault *emulator.Fault
	if !errors.As(err, &fault) {
		r.logger.Warn("Execution failed", log.Err(err))
		return
	}
	r.logger.Warn("Execution stopped",
		log.Hex("address", fault.Address),
		log.Hex("opcode", fault.Instruction.Opcode),
		log.Int("frame", r.frames),
		log.Err(fault.Err))
}
