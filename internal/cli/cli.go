// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/retroenv/retrochip8/internal/options"
)

// ParseFlags parses command line flags and returns program and emulator options
func ParseFlags() (options.Program, options.Emulator, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)
	emulatorOptions := options.NewEmulator()
	readEmulatorOptionFlags(flags, &emulatorOptions)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err == nil && opts.Version {
		return opts, emulatorOptions, nil
	}
	if err != nil || (len(args) == 0 && opts.Input == "") {
		return opts, emulatorOptions, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, emulatorOptions, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, emulatorOptions, err
	}

	if err := validateEmulatorOptions(emulatorOptions); err != nil {
		return opts, emulatorOptions, err
	}

	if opts.Input == "" {
		opts.Input = args[0]
	}

	return opts, emulatorOptions, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: retrochip8 [options] <ROM file to run>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	if opts.Frontend == "" {
		return nil
	}

	frontend, ok := options.FrontendFromString(opts.Frontend)
	if !ok {
		names := make([]string, 0, len(options.Frontends))
		for _, f := range options.Frontends {
			names = append(names, f.String())
		}
		return fmt.Errorf("unsupported frontend: %s. Valid options: %s",
			opts.Frontend, strings.Join(names, ", "))
	}
	opts.Frontend = frontend.String()
	return nil
}

// validateEmulatorOptions checks the numeric emulator options for sane ranges
func validateEmulatorOptions(opts options.Emulator) error {
	switch {
	case opts.InstructionsPerSecond <= 0:
		return fmt.Errorf("instructions per second must be positive, got %d", opts.InstructionsPerSecond)
	case opts.Frames < 0:
		return fmt.Errorf("frame count must not be negative, got %d", opts.Frames)
	case opts.Scale <= 0:
		return fmt.Errorf("scale must be positive, got %d", opts.Scale)
	case opts.StackLimit < 0:
		return fmt.Errorf("stack limit must not be negative, got %d", opts.StackLimit)
	case opts.TraceDepth < 0:
		return fmt.Errorf("trace depth must not be negative, got %d", opts.TraceDepth)
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input ROM file")
	flags.StringVar(&opts.Frontend, "f", "", "frontend to present the machine (headless/terminal/ebiten), auto-detected if not given")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	flags.BoolVar(&opts.Version, "version", false, "print version information and exit")
}

func readEmulatorOptionFlags(flags *flag.FlagSet, opts *options.Emulator) {
	flags.IntVar(&opts.InstructionsPerSecond, "ips", opts.InstructionsPerSecond, "instructions executed per second")
	flags.IntVar(&opts.Frames, "frames", opts.Frames, "number of 60Hz frames to run, 0 runs until quit")
	flags.IntVar(&opts.Scale, "scale", opts.Scale, "window scale factor of the ebiten frontend")
	flags.IntVar(&opts.StackLimit, "stack", opts.StackLimit, "maximum subroutine nesting depth, 0 for unbounded")
	flags.Uint64Var(&opts.Seed, "seed", opts.Seed, "seed of the random number instruction, 0 for a random seed")
	flags.IntVar(&opts.TraceDepth, "trace", opts.TraceDepth, "number of executed instructions to print on a fault, 0 disables tracing")
}
