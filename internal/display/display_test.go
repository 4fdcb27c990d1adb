package display

import (
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDrawSprite_SetsPixels(t *testing.T) {
	f := New()

	collision := f.DrawSprite(2, 3, []byte{0b10100000})
	assert.False(t, collision)
	assert.True(t, f.Pixel(2, 3))
	assert.False(t, f.Pixel(3, 3))
	assert.True(t, f.Pixel(4, 3))
	assert.True(t, f.Dirty())
}

func TestDrawSprite_TwiceClearsAndCollides(t *testing.T) {
	f := New()
	sprite := []byte{0xF0, 0x90, 0x90, 0x90, 0xF0}

	assert.False(t, f.DrawSprite(10, 10, sprite))
	assert.True(t, f.DrawSprite(10, 10, sprite))

	for _, p := range f.Pixels() {
		assert.False(t, p)
	}
}

func TestDrawSprite_CollisionAnyPixel(t *testing.T) {
	f := New()
	f.DrawSprite(0, 0, []byte{0x01})

	// only the last pixel of the row overlaps
	assert.True(t, f.DrawSprite(0, 0, []byte{0xFF}))
	assert.False(t, f.Pixel(7, 0))
	assert.True(t, f.Pixel(0, 0))
}

func TestDrawSprite_Wraparound(t *testing.T) {
	f := New()

	f.DrawSprite(Width-1, Height-1, []byte{0xC0, 0xC0})

	assert.True(t, f.Pixel(Width-1, Height-1))
	assert.True(t, f.Pixel(0, Height-1))
	assert.True(t, f.Pixel(Width-1, 0))
	assert.True(t, f.Pixel(0, 0))
	assert.False(t, f.Pixel(1, 0))
}

func TestDrawSprite_StartCoordinatesWrap(t *testing.T) {
	f := New()

	f.DrawSprite(Width+1, Height+2, []byte{0x80})
	assert.True(t, f.Pixel(1, 2))
}

func TestClear(t *testing.T) {
	f := New()
	f.DrawSprite(0, 0, []byte{0xFF})
	f.ClearDirty()
	assert.False(t, f.Dirty())

	f.Clear()
	assert.True(t, f.Dirty())
	assert.False(t, f.Pixel(0, 0))
}

func TestString(t *testing.T) {
	f := New()
	f.DrawSprite(0, 0, []byte{0x80})

	lines := strings.Split(strings.TrimSuffix(f.String(), "\n"), "\n")
	assert.Len(t, lines, Height)
	assert.Equal(t, "#"+strings.Repeat(".", Width-1), lines[0])
	assert.Equal(t, strings.Repeat(".", Width), lines[1])
}
