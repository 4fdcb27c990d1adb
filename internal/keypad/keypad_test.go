package keypad

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestSet(t *testing.T) {
	tests := []struct {
		name    string
		index   int
		wantErr bool
	}{
		{"first key", 0, false},
		{"last key", 15, false},
		{"negative", -1, true},
		{"past last key", 16, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var k Keypad
			err := k.Set(tt.index, true)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidKey))
				_, ok := k.FirstPressed()
				assert.False(t, ok)
				return
			}
			assert.NoError(t, err)
			assert.True(t, k.IsPressed(uint8(tt.index)))
		})
	}
}

func TestFirstPressed(t *testing.T) {
	var k Keypad

	_, ok := k.FirstPressed()
	assert.False(t, ok)

	assert.NoError(t, k.Set(0xC, true))
	assert.NoError(t, k.Set(0x5, true))

	key, ok := k.FirstPressed()
	assert.True(t, ok)
	assert.Equal(t, uint8(0x5), key)

	assert.NoError(t, k.Set(0x5, false))
	key, ok = k.FirstPressed()
	assert.True(t, ok)
	assert.Equal(t, uint8(0xC), key)
}

func TestIsPressed_OutOfRange(t *testing.T) {
	var k Keypad
	assert.False(t, k.IsPressed(0x10))
}

func TestReset(t *testing.T) {
	var k Keypad
	assert.NoError(t, k.Set(3, true))

	k.Reset()
	assert.False(t, k.IsPressed(3))
}
