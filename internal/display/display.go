// Package display implements the monochrome CHIP-8 framebuffer.
package display

import "strings"

const (
	// Width is the number of pixel columns.
	Width = 64
	// Height is the number of pixel rows.
	Height = 32
)

// Framebuffer is a Width x Height grid of pixels addressed by y*Width+x.
type Framebuffer struct {
	pixels [Width * Height]bool
	dirty  bool
}

// New returns a cleared framebuffer.
func New() *Framebuffer {
	return &Framebuffer{}
}

// Clear turns all pixels off.
func (f *Framebuffer) Clear() {
	f.pixels = [Width * Height]bool{}
	f.dirty = true
}

// Pixel returns whether the pixel at the given coordinates is set.
// Coordinates wrap around the screen edges.
func (f *Framebuffer) Pixel(x, y int) bool {
	return f.pixels[index(x, y)]
}

// DrawSprite XORs the sprite rows onto the framebuffer with the top left corner
// at x, y. Every byte is one row of 8 pixels, most significant bit first.
// Pixels that fall off an edge wrap around to the opposite edge.
// It returns whether any pixel that was set got turned off.
func (f *Framebuffer) DrawSprite(x, y uint8, sprite []byte) bool {
	collision := false
	for row, bits := range sprite {
		for col := range 8 {
			if bits&(0x80>>col) == 0 {
				continue
			}
			i := index(int(x)+col, int(y)+row)
			if f.pixels[i] {
				collision = true
			}
			f.pixels[i] = !f.pixels[i]
		}
	}
	f.dirty = true
	return collision
}

// Pixels returns a copy of all pixels in row major order.
func (f *Framebuffer) Pixels() []bool {
	pixels := make([]bool, len(f.pixels))
	copy(pixels, f.pixels[:])
	return pixels
}

// Dirty returns whether the framebuffer changed since the last ClearDirty call.
func (f *Framebuffer) Dirty() bool {
	return f.dirty
}

// ClearDirty resets the change marker, renderers call it after presenting a frame.
func (f *Framebuffer) ClearDirty() {
	f.dirty = false
}

// String renders the framebuffer as text, '#' for set and '.' for clear pixels.
func (f *Framebuffer) String() string {
	var sb strings.Builder
	sb.Grow((Width + 1) * Height)
	for y := range Height {
		for x := range Width {
			if f.pixels[y*Width+x] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func index(x, y int) int {
	x %= Width
	if x < 0 {
		x += Width
	}
	y %= Height
	if y < 0 {
		y += Height
	}
	return y*Width + x
}
