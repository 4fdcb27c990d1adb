// Package memory implements the CHIP-8 address space with the built-in glyph font.
//
// CHIP-8 memory map (4KB total):
//
//	0x000-0x04F: Hexadecimal glyph font (16 glyphs, 5 bytes each)
//	0x050-0x1FF: Reserved interpreter area
//	0x200-0xFFF: Program space (3584 bytes)
package memory

import (
	"errors"
	"fmt"
)

const (
	// Size is the total number of addressable bytes.
	Size = 4096

	// ProgramStart is the address where ROMs are loaded and execution begins.
	ProgramStart = 0x200

	// MaxProgramSize is the largest ROM that fits into the program space.
	MaxProgramSize = Size - ProgramStart

	// FontStart is the address of the glyph for digit 0.
	FontStart = 0x000

	// GlyphSize is the number of bytes per font glyph.
	GlyphSize = 5
)

var (
	// ErrOutOfMemory is returned when a program does not fit into the program space.
	ErrOutOfMemory = errors.New("out of memory")
	// ErrAddressOutOfRange is returned for any access outside of the address space.
	ErrAddressOutOfRange = errors.New("address out of range")
)

var font = [16 * GlyphSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xF0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xF0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// Memory is the fixed size byte addressable store of the machine.
type Memory struct {
	data [Size]byte
}

// New returns a memory instance with the glyph font installed.
func New() *Memory {
	m := &Memory{}
	m.Reset()
	return m
}

// Reset clears the whole address space and reinstalls the font.
func (m *Memory) Reset() {
	m.data = [Size]byte{}
	copy(m.data[FontStart:], font[:])
}

// LoadProgram copies the program into memory starting at ProgramStart.
// Nothing is written if the program does not fit.
func (m *Memory) LoadProgram(program []byte) error {
	if len(program) > MaxProgramSize {
		return fmt.Errorf("%w: program of %d bytes exceeds %d bytes of program space",
			ErrOutOfMemory, len(program), MaxProgramSize)
	}
	copy(m.data[ProgramStart:], program)
	return nil
}

// Read returns the byte at the given address.
func (m *Memory) Read(address uint16) (byte, error) {
	if int(address) >= Size {
		return 0, addressError(address)
	}
	return m.data[address], nil
}

// Write sets the byte at the given address.
func (m *Memory) Write(address uint16, value byte) error {
	if int(address) >= Size {
		return addressError(address)
	}
	m.data[address] = value
	return nil
}

// ReadWord returns the big endian 16 bit word starting at the given address.
func (m *Memory) ReadWord(address uint16) (uint16, error) {
	if int(address)+1 >= Size {
		return 0, addressError(address)
	}
	return uint16(m.data[address])<<8 | uint16(m.data[address+1]), nil
}

// Slice returns a view of n bytes starting at the given address.
// The returned slice aliases memory and must not be retained across writes.
func (m *Memory) Slice(address uint16, n int) ([]byte, error) {
	if err := m.CheckRange(address, n); err != nil {
		return nil, err
	}
	return m.data[address : int(address)+n], nil
}

// CheckRange verifies that n bytes starting at the given address are addressable.
func (m *Memory) CheckRange(address uint16, n int) error {
	if n < 0 || int(address)+n > Size {
		return fmt.Errorf("%w: %d bytes at $%03X", ErrAddressOutOfRange, n, address)
	}
	return nil
}

// GlyphAddress returns the address of the font glyph for the hexadecimal digit
// in the low nibble of the given value.
func GlyphAddress(digit uint8) uint16 {
	return FontStart + uint16(digit&0x0F)*GlyphSize
}

func addressError(address uint16) error {
	return fmt.Errorf("%w: $%04X", ErrAddressOutOfRange, address)
}
