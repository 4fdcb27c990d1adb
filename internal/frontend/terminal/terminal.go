// Package terminal implements a frontend that renders into an ANSI terminal
// and reads keys from the raw mode standard input.
package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/frontend/keymap"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/term"
)

// holdFrames is the number of frames a key stays pressed after its last
// character was read, terminals report no key releases.
const holdFrames = 6

const (
	keyEscape = 0x1b
	keyCtrlC  = 0x03

	cursorHome = "\x1b[H"
	clearAll   = "\x1b[2J"
	hideCursor = "\x1b[?25l"
	showCursor = "\x1b[?25h"
	bell       = "\a"
)

// Frontend is a terminal frontend.
type Frontend struct {
	logger *log.Logger
	in     io.Reader
	out    io.Writer

	state *term.State
	input chan byte
	done  chan struct{}
	held  [16]int
}

// New returns a terminal frontend. Open has to be called before it is used.
func New(logger *log.Logger, in io.Reader, out io.Writer) *Frontend {
	return &Frontend{
		logger: logger,
		in:     in,
		out:    out,
		input:  make(chan byte, 64),
		done:   make(chan struct{}),
	}
}

// Open switches the input to raw mode, if it is a terminal, and starts reading keys.
func (f *Frontend) Open() error {
	if file, ok := f.in.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		state, err := term.MakeRaw(int(file.Fd()))
		if err != nil {
			return fmt.Errorf("setting terminal raw mode: %w", err)
		}
		f.state = state
	}

	go f.readInput()

	if _, err := io.WriteString(f.out, clearAll+hideCursor); err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	return nil
}

// Close stops reading input and restores the terminal state.
func (f *Frontend) Close() error {
	close(f.done)

	if _, err := io.WriteString(f.out, showCursor+"\r\n"); err != nil {
		return fmt.Errorf("resetting terminal: %w", err)
	}
	if f.state == nil {
		return nil
	}
	file, ok := f.in.(*os.File)
	if !ok {
		return nil
	}
	if err := term.Restore(int(file.Fd()), f.state); err != nil {
		return fmt.Errorf("restoring terminal: %w", err)
	}
	return nil
}

// PollInput processes the characters read since the last call.
// Escape and Ctrl-C request to quit.
func (f *Frontend) PollInput(keys runner.KeySetter) (bool, error) {
drain:
	for {
		select {
		case char := <-f.input:
			if char == keyEscape || char == keyCtrlC {
				return true, nil
			}
			if key, ok := keymap.KeyForChar(rune(char)); ok {
				f.held[key] = holdFrames
			}
		default:
			break drain
		}
	}

	for key, frames := range f.held {
		if err := keys.SetKey(key, frames > 0); err != nil {
			return false, fmt.Errorf("setting key state: %w", err)
		}
		if frames > 0 {
			f.held[key]--
		}
	}
	return false, nil
}

// Render draws the framebuffer using half block characters, two pixel rows
// per text line.
func (f *Frontend) Render(screen *display.Framebuffer) error {
	if _, err := io.WriteString(f.out, renderFrame(screen)); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}

// Beep rings the terminal bell.
func (f *Frontend) Beep() error {
	if _, err := io.WriteString(f.out, bell); err != nil {
		return fmt.Errorf("ringing bell: %w", err)
	}
	return nil
}

func (f *Frontend) readInput() {
	buf := make([]byte, 64)
	for {
		n, err := f.in.Read(buf)
		for _, char := range buf[:n] {
			select {
			case f.input <- char:
			case <-f.done:
				return
			}
		}
		if err != nil {
			f.logger.Debug("Terminal input closed", log.Err(err))
			return
		}
	}
}

func renderFrame(screen *display.Framebuffer) string {
	var sb strings.Builder
	sb.WriteString(cursorHome)
	for y := 0; y < display.Height; y += 2 {
		for x := range display.Width {
			top := screen.Pixel(x, y)
			bottom := screen.Pixel(x, y+1)
			switch {
			case top && bottom:
				sb.WriteRune('█')
			case top:
				sb.WriteRune('▀')
			case bottom:
				sb.WriteRune('▄')
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteString("\r\n")
	}
	return sb.String()
}
