// Package keypad implements the state of the 16 key hexadecimal input pad.
package keypad

import (
	"errors"
	"fmt"
)

// Count is the number of keys on the pad.
const Count = 16

// ErrInvalidKey is returned for key indexes outside of 0-15.
var ErrInvalidKey = errors.New("invalid key")

// Keypad holds the pressed state of every key.
type Keypad struct {
	pressed [Count]bool
}

// Set marks the key with the given index as pressed or released.
func (k *Keypad) Set(index int, pressed bool) error {
	if index < 0 || index >= Count {
		return fmt.Errorf("%w: %d", ErrInvalidKey, index)
	}
	k.pressed[index] = pressed
	return nil
}

// IsPressed returns whether the key is currently pressed.
// Indexes outside of the pad are reported as not pressed.
func (k *Keypad) IsPressed(index uint8) bool {
	if int(index) >= Count {
		return false
	}
	return k.pressed[index]
}

// FirstPressed returns the lowest numbered pressed key.
func (k *Keypad) FirstPressed() (uint8, bool) {
	for i, pressed := range k.pressed {
		if pressed {
			return uint8(i), true
		}
	}
	return 0, false
}

// Reset releases all keys.
func (k *Keypad) Reset() {
	k.pressed = [Count]bool{}
}
