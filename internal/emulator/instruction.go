package emulator

// Instruction is a decoded 16 bit instruction word.
// D1 to D4 are the nibbles from most to least significant.
type Instruction struct {
	Opcode uint16
	D1     uint8
	D2     uint8
	D3     uint8
	D4     uint8
}

// Decode splits an instruction word into its nibbles.
func Decode(opcode uint16) Instruction {
	return Instruction{
		Opcode: opcode,
		D1:     uint8(opcode >> 12),
		D2:     uint8(opcode>>8) & 0x0F,
		D3:     uint8(opcode>>4) & 0x0F,
		D4:     uint8(opcode) & 0x0F,
	}
}

// X returns the register index encoded in the second nibble.
func (i Instruction) X() uint8 {
	return i.D2
}

// Y returns the register index encoded in the third nibble.
func (i Instruction) Y() uint8 {
	return i.D3
}

// N returns the 4 bit immediate in the lowest nibble.
func (i Instruction) N() uint8 {
	return i.D4
}

// NN returns the 8 bit immediate in the low byte.
func (i Instruction) NN() uint8 {
	return uint8(i.Opcode)
}

// NNN returns the 12 bit address in the low 12 bits.
func (i Instruction) NNN() uint16 {
	return i.Opcode & 0x0FFF
}
