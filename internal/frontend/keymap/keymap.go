// Package keymap maps the left side of a QWERTY keyboard to the hex keypad.
//
//	1 2 3 4      1 2 3 C
//	q w e r  ->  4 5 6 D
//	a s d f      7 8 9 E
//	z x c v      A 0 B F
package keymap

import "unicode"

// Mapping assigns a keyboard character to a keypad key.
type Mapping struct {
	Char rune
	Key  uint8
}

var rows = [4]string{"1234", "qwer", "asdf", "zxcv"}

var pad = [4][4]uint8{
	{0x1, 0x2, 0x3, 0xC},
	{0x4, 0x5, 0x6, 0xD},
	{0x7, 0x8, 0x9, 0xE},
	{0xA, 0x0, 0xB, 0xF},
}

// Mappings returns all 16 mappings in keyboard row order.
func Mappings() []Mapping {
	mappings := make([]Mapping, 0, 16)
	for row, chars := range rows {
		for col, char := range chars {
			mappings = append(mappings, Mapping{Char: char, Key: pad[row][col]})
		}
	}
	return mappings
}

// KeyForChar returns the keypad key for a keyboard character, ignoring case.
func KeyForChar(char rune) (uint8, bool) {
	char = unicode.ToLower(char)
	for row, chars := range rows {
		for col, c := range chars {
			if c == char {
				return pad[row][col], true
			}
		}
	}
	return 0, false
}
