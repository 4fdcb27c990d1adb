// Package window implements a windowed frontend using the ebiten game engine.
//
// Ebiten owns the main loop, every tick executes one frame of the runner.
// Keys: the hex keypad layout of the keymap package, P toggles pause,
// F2 copies the screen as text to the clipboard and Escape quits.
package window

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/frontend/keymap"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/log"
	"golang.design/x/clipboard"
	"golang.org/x/image/font/basicfont"
)

// Beeper plays the tone of the sound timer.
type Beeper interface {
	Beep(d time.Duration)
}

var (
	pixelOn  = color.RGBA{R: 0x33, G: 0xFF, B: 0x66, A: 0xFF}
	pixelOff = color.RGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xFF}
	overlay  = color.RGBA{A: 0xC0}
)

var keys = map[rune]ebiten.Key{
	'1': ebiten.KeyDigit1, '2': ebiten.KeyDigit2, '3': ebiten.KeyDigit3, '4': ebiten.KeyDigit4,
	'q': ebiten.KeyQ, 'w': ebiten.KeyW, 'e': ebiten.KeyE, 'r': ebiten.KeyR,
	'a': ebiten.KeyA, 's': ebiten.KeyS, 'd': ebiten.KeyD, 'f': ebiten.KeyF,
	'z': ebiten.KeyZ, 'x': ebiten.KeyX, 'c': ebiten.KeyC, 'v': ebiten.KeyV,
}

// Frontend is a windowed frontend.
type Frontend struct {
	logger       *log.Logger
	title        string
	scale        int
	beeper       Beeper
	beepDuration time.Duration

	image       *ebiten.Image
	pixels      []byte
	dump        string
	clipboardOK bool
	ctx         context.Context
	runner      *runner.Runner
	err         error
}

// New returns a windowed frontend. The beeper is optional.
func New(logger *log.Logger, title string, scale int, beeper Beeper, beepDuration time.Duration) *Frontend {
	return &Frontend{
		logger:       logger,
		title:        title,
		scale:        scale,
		beeper:       beeper,
		beepDuration: beepDuration,
		pixels:       make([]byte, display.Width*display.Height*4),
	}
}

// Loop opens the window and executes frames of the runner until the window
// is closed, the user quits, the context is canceled or the runner fails.
func (f *Frontend) Loop(ctx context.Context, r *runner.Runner) error {
	f.ctx = ctx
	f.runner = r
	f.clipboardOK = clipboard.Init() == nil
	if !f.clipboardOK {
		f.logger.Warn("Clipboard is not available")
	}

	ebiten.SetWindowSize(display.Width*f.scale, display.Height*f.scale)
	ebiten.SetWindowTitle(f.title)
	ebiten.SetTPS(runner.FrameRate)

	if err := ebiten.RunGame(f); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return f.err
}

// Update implements ebiten.Game.
func (f *Frontend) Update() error {
	if err := f.ctx.Err(); err != nil {
		f.err = fmt.Errorf("running: %w", err)
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		if f.runner.Paused() {
			f.runner.Resume()
		} else {
			f.runner.Pause()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) && f.clipboardOK && f.dump != "" {
		clipboard.Write(clipboard.FmtText, []byte(f.dump))
		f.logger.Info("Screen copied to clipboard")
	}

	if f.runner.Finished() {
		return ebiten.Termination
	}
	if err := f.runner.Frame(); err != nil {
		if !errors.Is(err, runner.ErrQuit) {
			f.err = err
		}
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (f *Frontend) Draw(screen *ebiten.Image) {
	if f.image == nil {
		f.image = ebiten.NewImage(display.Width, display.Height)
	}
	f.image.WritePixels(f.pixels)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(f.scale), float64(f.scale))
	screen.DrawImage(f.image, op)

	if f.runner != nil && f.runner.Paused() {
		width := float64(display.Width * f.scale)
		ebitenutil.DrawRect(screen, 0, 0, width, 20, overlay)
		text.Draw(screen, "PAUSED - press P to resume", basicfont.Face7x13, 6, 14, color.White)
	}
}

// Layout implements ebiten.Game.
func (f *Frontend) Layout(int, int) (int, int) {
	return display.Width * f.scale, display.Height * f.scale
}

// PollInput forwards the state of the mapped keyboard keys.
func (f *Frontend) PollInput(setter runner.KeySetter) (bool, error) {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return true, nil
	}
	for _, mapping := range keymap.Mappings() {
		pressed := ebiten.IsKeyPressed(keys[mapping.Char])
		if err := setter.SetKey(int(mapping.Key), pressed); err != nil {
			return false, fmt.Errorf("setting key state: %w", err)
		}
	}
	return false, nil
}

// Render converts the framebuffer to the pixels presented by the next Draw.
func (f *Frontend) Render(screen *display.Framebuffer) error {
	for i, set := range screen.Pixels() {
		c := pixelOff
		if set {
			c = pixelOn
		}
		f.pixels[i*4] = c.R
		f.pixels[i*4+1] = c.G
		f.pixels[i*4+2] = c.B
		f.pixels[i*4+3] = c.A
	}
	f.dump = screen.String()
	return nil
}

// Close releases the audio output.
func (f *Frontend) Close() error {
	closer, ok := f.beeper.(io.Closer)
	if !ok {
		return nil
	}
	if err := closer.Close(); err != nil {
		return fmt.Errorf("closing audio: %w", err)
	}
	return nil
}

// Beep plays the tone if audio is available.
func (f *Frontend) Beep() error {
	if f.beeper != nil {
		f.beeper.Beep(f.beepDuration)
	}
	return nil
}
