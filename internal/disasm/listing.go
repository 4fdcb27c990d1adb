package disasm

import (
	"fmt"
	"io"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/set"
)

const (
	funcNaming  = "_func_%04x"
	labelNaming = "_label_%04x"
)

// Line is a single instruction word of a listing.
type Line struct {
	Address uint16
	Opcode  uint16
	Label   string
	Code    string
}

// Disassemble decodes the ROM linearly as 2 byte words loaded at the given base
// address. Destinations of jumps and calls inside the ROM get a label.
// A trailing odd byte is emitted as a data word padded with zero.
func Disassemble(rom []byte, base uint16) []Line {
	lines := make([]Line, 0, (len(rom)+1)/2)
	for offset := 0; offset < len(rom); offset += 2 {
		word := uint16(rom[offset]) << 8
		if offset+1 < len(rom) {
			word |= uint16(rom[offset+1])
		}
		lines = append(lines, Line{
			Address: base + uint16(offset),
			Opcode:  word,
			Code:    Format(word),
		})
	}

	processJumpDestinations(lines)
	return lines
}

// processJumpDestinations names every line that is the destination of a jump
// or call and appends the label name to the instructions referencing it.
func processJumpDestinations(lines []Line) {
	branchDestinations := set.New[uint16]()
	callDestinations := set.New[uint16]()
	for _, line := range lines {
		target, ok := branchTarget(line.Opcode)
		if !ok {
			continue
		}
		branchDestinations.Add(target)
		if op, _ := Lookup(line.Opcode); op.Instruction == chip8.CallInst {
			callDestinations.Add(target)
		}
	}

	names := make(map[uint16]string, len(branchDestinations))
	for i := range lines {
		address := lines[i].Address
		if !branchDestinations.Contains(address) {
			continue
		}
		name := fmt.Sprintf(labelNaming, address)
		if callDestinations.Contains(address) {
			name = fmt.Sprintf(funcNaming, address)
		}
		lines[i].Label = name
		names[address] = name
	}

	for i := range lines {
		target, ok := branchTarget(lines[i].Opcode)
		if !ok {
			continue
		}
		if name, ok := names[target]; ok {
			lines[i].Code = fmt.Sprintf("%s ; %s", lines[i].Code, name)
		}
	}
}

// Write outputs the listing with address, raw word and code columns.
func Write(w io.Writer, lines []Line) error {
	for _, line := range lines {
		if line.Label != "" {
			if _, err := fmt.Fprintf(w, "%s:\n", line.Label); err != nil {
				return fmt.Errorf("writing label: %w", err)
			}
		}
		if _, err := fmt.Fprintf(w, "  $%03X  %04X  %s\n", line.Address, line.Opcode, line.Code); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
	}
	return nil
}
