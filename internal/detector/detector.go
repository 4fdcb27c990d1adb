// Package detector handles frontend detection.
package detector

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/term"
)

// romExtensions lists the file extensions that ROMs are commonly distributed with.
var romExtensions = []string{".ch8", ".c8", ".rom"}

// Detector handles frontend detection from options and the output environment.
type Detector struct {
	logger     *log.Logger
	isTerminal func() bool
}

// New creates a new frontend detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
		isTerminal: func() bool {
			return term.IsTerminal(int(os.Stdout.Fd()))
		},
	}
}

// Detect determines the frontend from options or the output environment.
// An explicitly specified frontend is used as is, otherwise the terminal
// frontend is selected if stdout is a terminal and the headless one if not.
func (d *Detector) Detect(opts options.Program) options.Frontend {
	d.checkExtension(opts.Input)

	if frontend, ok := options.FrontendFromString(opts.Frontend); ok {
		return frontend
	}

	frontend := options.Headless
	if d.isTerminal() {
		frontend = options.Terminal
	}
	d.logger.Debug("Auto-detected frontend",
		log.Stringer("frontend", frontend),
		log.String("file", opts.Input))
	return frontend
}

// checkExtension warns about files that are not named like a ROM.
func (d *Detector) checkExtension(filename string) {
	ext := strings.ToLower(filepath.Ext(filename))
	if slices.Contains(romExtensions, ext) {
		return
	}
	d.logger.Warn("Unexpected ROM file extension, the file is loaded as raw program",
		log.String("file", filename))
}
