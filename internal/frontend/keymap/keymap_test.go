package keymap

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestKeyForChar(t *testing.T) {
	tests := []struct {
		char rune
		key  uint8
		ok   bool
	}{
		{'1', 0x1, true},
		{'4', 0xC, true},
		{'w', 0x5, true},
		{'R', 0xD, true},
		{'a', 0x7, true},
		{'z', 0xA, true},
		{'x', 0x0, true},
		{'v', 0xF, true},
		{'5', 0, false},
		{'p', 0, false},
	}

	for _, tt := range tests {
		key, ok := KeyForChar(tt.char)
		assert.Equal(t, tt.ok, ok)
		assert.Equal(t, tt.key, key)
	}
}

func TestMappings_CoverAllKeys(t *testing.T) {
	mappings := Mappings()
	assert.Len(t, mappings, 16)

	var seen [16]bool
	for _, m := range mappings {
		assert.False(t, seen[m.Key])
		seen[m.Key] = true
	}
}
