// Package headless implements a frontend without input and output devices.
// It records the presented frames and tones and writes the final frame when closed.
package headless

import (
	"fmt"
	"io"

	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/runner"
)

// Frontend is a frontend that renders into memory.
type Frontend struct {
	writer  io.Writer
	frame   string
	renders int
	beeps   int
}

// New returns a headless frontend that writes the last frame to writer on Close.
// A nil writer discards it.
func New(writer io.Writer) *Frontend {
	return &Frontend{
		writer: writer,
	}
}

// PollInput never reports pressed keys or a quit request.
func (f *Frontend) PollInput(runner.KeySetter) (bool, error) {
	return false, nil
}

// Render stores a text dump of the framebuffer.
func (f *Frontend) Render(screen *display.Framebuffer) error {
	f.frame = screen.String()
	f.renders++
	return nil
}

// Beep counts the tone.
func (f *Frontend) Beep() error {
	f.beeps++
	return nil
}

// Frame returns the last rendered frame as text.
func (f *Frontend) Frame() string {
	return f.frame
}

// Renders returns the number of rendered frames.
func (f *Frontend) Renders() int {
	return f.renders
}

// Beeps returns the number of played tones.
func (f *Frontend) Beeps() int {
	return f.beeps
}

// Close writes the last rendered frame.
func (f *Frontend) Close() error {
	if f.writer == nil || f.frame == "" {
		return nil
	}
	if _, err := io.WriteString(f.writer, f.frame); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}
