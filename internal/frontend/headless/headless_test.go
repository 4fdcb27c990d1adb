package headless

import (
	"bytes"
	"testing"

	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrogolib/assert"
)

func TestFrontend(t *testing.T) {
	var buf bytes.Buffer
	f := New(&buf)

	quit, err := f.PollInput(nil)
	assert.NoError(t, err)
	assert.False(t, quit)

	screen := display.New()
	screen.DrawSprite(0, 0, []byte{0xF0})
	assert.NoError(t, f.Render(screen))
	assert.NoError(t, f.Beep())

	assert.Equal(t, 1, f.Renders())
	assert.Equal(t, 1, f.Beeps())
	assert.Equal(t, screen.String(), f.Frame())

	assert.NoError(t, f.Close())
	assert.Equal(t, screen.String(), buf.String())
}

func TestClose_NothingRendered(t *testing.T) {
	var buf bytes.Buffer
	f := New(&buf)

	assert.NoError(t, f.Close())
	assert.Equal(t, 0, buf.Len())
	assert.NoError(t, New(nil).Close())
}
