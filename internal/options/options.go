// Package options contains the program options.
package options

import "strings"

// Frontend names the host frontend used to present the machine.
type Frontend string

// Supported frontends.
const (
	Headless Frontend = "headless"
	Terminal Frontend = "terminal"
	Ebiten   Frontend = "ebiten"
)

// String implements the fmt.Stringer interface.
func (f Frontend) String() string {
	return string(f)
}

// Frontends lists all supported frontends.
var Frontends = []Frontend{Headless, Terminal, Ebiten}

// FrontendFromString returns the frontend for the given name and whether it is supported.
func FrontendFromString(name string) (Frontend, bool) {
	f := Frontend(strings.ToLower(name))
	for _, supported := range Frontends {
		if f == supported {
			return f, true
		}
	}
	return "", false
}

// Parameters contains file path options.
type Parameters struct {
	Input string `flag:"i" usage:"input ROM file"`
}

// Flags contains behavior options.
type Flags struct {
	Frontend string `flag:"f" usage:"frontend: headless, terminal, ebiten (default: auto-detect)"`
	Debug    bool   `flag:"debug" usage:"enable debug logging"`
	Quiet    bool   `flag:"q" usage:"quiet mode"`
	Version  bool   `flag:"version" usage:"print version and exit"`
}

// Program options of the emulator.
type Program struct {
	Parameters
	Flags
}

// Emulator defines options to control the machine and the runner.
type Emulator struct {
	InstructionsPerSecond int    // instructions executed per second of emulated time
	Frames                int    // number of frames to run, 0 runs until quit
	Scale                 int    // window scale of graphical frontends
	StackLimit            int    // maximum call depth, 0 is unbounded
	Seed                  uint64 // random seed, 0 picks a random seed
	TraceDepth            int    // number of executed instructions to keep for fault reports
}

// Default option values.
const (
	DefaultInstructionsPerSecond = 700
	DefaultScale                 = 10
	DefaultStackLimit            = 16
	DefaultTraceDepth            = 16
	DefaultHeadlessFrames        = 600 // frames run by the headless frontend without a frame limit
)

// NewEmulator returns a new options instance with default options.
func NewEmulator() Emulator {
	return Emulator{
		InstructionsPerSecond: DefaultInstructionsPerSecond,
		Scale:                 DefaultScale,
		StackLimit:            DefaultStackLimit,
		TraceDepth:            DefaultTraceDepth,
	}
}
