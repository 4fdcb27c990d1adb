package emulator

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/memory"
)

// handler executes a decoded instruction. The program counter already points
// to the following instruction when a handler runs. Handlers validate before
// mutating state so that a returned error leaves the machine untouched.
type handler func(e *Emulator, ins Instruction) error

// aluHandlers maps the lowest nibble of 8xyN instructions.
var aluHandlers = [16]handler{
	0x0: (*Emulator).ldRegister,
	0x1: (*Emulator).or,
	0x2: (*Emulator).and,
	0x3: (*Emulator).xor,
	0x4: (*Emulator).addRegister,
	0x5: (*Emulator).sub,
	0x6: (*Emulator).shr,
	0x7: (*Emulator).subn,
	0xE: (*Emulator).shl,
}

// miscHandlers maps the low byte of FxNN instructions.
var miscHandlers = map[uint8]handler{
	0x07: (*Emulator).ldDelayTimer,
	0x0A: (*Emulator).waitKey,
	0x15: (*Emulator).setDelayTimer,
	0x18: (*Emulator).setSoundTimer,
	0x1E: (*Emulator).addIndex,
	0x29: (*Emulator).ldGlyph,
	0x33: (*Emulator).storeBCD,
	0x55: (*Emulator).storeRegisters,
	0x65: (*Emulator).loadRegisters,
}

// lookup returns the handler for the instruction or nil if the instruction
// word matches no defined pattern.
func lookup(ins Instruction) handler {
	switch ins.D1 {
	case 0x0:
		switch ins.Opcode {
		case 0x0000:
			return (*Emulator).nop
		case 0x00E0:
			return (*Emulator).cls
		case 0x00EE:
			return (*Emulator).ret
		}
	case 0x1:
		return (*Emulator).jp
	case 0x2:
		return (*Emulator).call
	case 0x3:
		return (*Emulator).seImmediate
	case 0x4:
		return (*Emulator).sneImmediate
	case 0x5:
		if ins.D4 == 0 {
			return (*Emulator).seRegister
		}
	case 0x6:
		return (*Emulator).ldImmediate
	case 0x7:
		return (*Emulator).addImmediate
	case 0x8:
		return aluHandlers[ins.D4]
	case 0x9:
		if ins.D4 == 0 {
			return (*Emulator).sneRegister
		}
	case 0xA:
		return (*Emulator).ldIndex
	case 0xB:
		return (*Emulator).jpOffset
	case 0xC:
		return (*Emulator).rnd
	case 0xD:
		return (*Emulator).drw
	case 0xE:
		switch ins.NN() {
		case 0x9E:
			return (*Emulator).skp
		case 0xA1:
			return (*Emulator).sknp
		}
	case 0xF:
		return miscHandlers[ins.NN()]
	}
	return nil
}

// 0000
func (e *Emulator) nop(Instruction) error {
	return nil
}

// 00E0
func (e *Emulator) cls(Instruction) error {
	e.screen.Clear()
	return nil
}

// 00EE
func (e *Emulator) ret(Instruction) error {
	if len(e.stack) == 0 {
		return ErrStackUnderflow
	}
	last := len(e.stack) - 1
	e.pc = e.stack[last]
	e.stack = e.stack[:last]
	return nil
}

// 1nnn
func (e *Emulator) jp(ins Instruction) error {
	e.pc = ins.NNN()
	return nil
}

// 2nnn
func (e *Emulator) call(ins Instruction) error {
	if e.stackLimit > 0 && len(e.stack) >= e.stackLimit {
		return fmt.Errorf("%w: depth %d", ErrStackOverflow, len(e.stack))
	}
	e.stack = append(e.stack, e.pc)
	e.pc = ins.NNN()
	return nil
}

// 3xnn
func (e *Emulator) seImmediate(ins Instruction) error {
	e.skipIf(e.v[ins.X()] == ins.NN())
	return nil
}

// 4xnn
func (e *Emulator) sneImmediate(ins Instruction) error {
	e.skipIf(e.v[ins.X()] != ins.NN())
	return nil
}

// 5xy0
func (e *Emulator) seRegister(ins Instruction) error {
	e.skipIf(e.v[ins.X()] == e.v[ins.Y()])
	return nil
}

// 6xnn
func (e *Emulator) ldImmediate(ins Instruction) error {
	e.v[ins.X()] = ins.NN()
	return nil
}

// 7xnn, no carry flag
func (e *Emulator) addImmediate(ins Instruction) error {
	e.v[ins.X()] += ins.NN()
	return nil
}

// 8xy0
func (e *Emulator) ldRegister(ins Instruction) error {
	e.v[ins.X()] = e.v[ins.Y()]
	return nil
}

// 8xy1
func (e *Emulator) or(ins Instruction) error {
	e.v[ins.X()] |= e.v[ins.Y()]
	return nil
}

// 8xy2
func (e *Emulator) and(ins Instruction) error {
	e.v[ins.X()] &= e.v[ins.Y()]
	return nil
}

// 8xy3
func (e *Emulator) xor(ins Instruction) error {
	e.v[ins.X()] ^= e.v[ins.Y()]
	return nil
}

// 8xy4, VF is the carry.
func (e *Emulator) addRegister(ins Instruction) error {
	sum := uint16(e.v[ins.X()]) + uint16(e.v[ins.Y()])
	e.v[ins.X()] = uint8(sum)
	e.v[flagRegister] = flag(sum > 0xFF)
	return nil
}

// 8xy5, VF is set when no borrow occurred.
func (e *Emulator) sub(ins Instruction) error {
	vx, vy := e.v[ins.X()], e.v[ins.Y()]
	e.v[ins.X()] = vx - vy
	e.v[flagRegister] = flag(vx >= vy)
	return nil
}

// 8xy6, VF is the bit shifted out.
func (e *Emulator) shr(ins Instruction) error {
	vx := e.v[ins.X()]
	e.v[ins.X()] = vx >> 1
	e.v[flagRegister] = vx & 0x01
	return nil
}

// 8xy7, VF is set when no borrow occurred.
func (e *Emulator) subn(ins Instruction) error {
	vx, vy := e.v[ins.X()], e.v[ins.Y()]
	e.v[ins.X()] = vy - vx
	e.v[flagRegister] = flag(vy >= vx)
	return nil
}

// 8xyE, VF is the bit shifted out.
func (e *Emulator) shl(ins Instruction) error {
	vx := e.v[ins.X()]
	e.v[ins.X()] = vx << 1
	e.v[flagRegister] = vx >> 7
	return nil
}

// 9xy0
func (e *Emulator) sneRegister(ins Instruction) error {
	e.skipIf(e.v[ins.X()] != e.v[ins.Y()])
	return nil
}

// Annn
func (e *Emulator) ldIndex(ins Instruction) error {
	e.i = ins.NNN()
	return nil
}

// Bnnn
func (e *Emulator) jpOffset(ins Instruction) error {
	e.pc = uint16(e.v[0]) + ins.NNN()
	return nil
}

// Cxnn
func (e *Emulator) rnd(ins Instruction) error {
	e.v[ins.X()] = e.random.Uint8() & ins.NN()
	return nil
}

// Dxyn, VF is set if any set pixel was turned off.
func (e *Emulator) drw(ins Instruction) error {
	sprite, err := e.memory.Slice(e.i, int(ins.N()))
	if err != nil {
		return fmt.Errorf("reading sprite: %w", err)
	}
	collision := e.screen.DrawSprite(e.v[ins.X()], e.v[ins.Y()], sprite)
	e.v[flagRegister] = flag(collision)
	return nil
}

// Ex9E
func (e *Emulator) skp(ins Instruction) error {
	e.skipIf(e.keys.IsPressed(e.v[ins.X()]))
	return nil
}

// ExA1
func (e *Emulator) sknp(ins Instruction) error {
	e.skipIf(!e.keys.IsPressed(e.v[ins.X()]))
	return nil
}

// Fx07
func (e *Emulator) ldDelayTimer(ins Instruction) error {
	e.v[ins.X()] = e.timers.Delay()
	return nil
}

// Fx0A blocks by rewinding the program counter until a key is pressed.
func (e *Emulator) waitKey(ins Instruction) error {
	key, ok := e.keys.FirstPressed()
	if !ok {
		e.pc -= 2
		return nil
	}
	e.v[ins.X()] = key
	return nil
}

// Fx15
func (e *Emulator) setDelayTimer(ins Instruction) error {
	e.timers.SetDelay(e.v[ins.X()])
	return nil
}

// Fx18
func (e *Emulator) setSoundTimer(ins Instruction) error {
	e.timers.SetSound(e.v[ins.X()])
	return nil
}

// Fx1E
func (e *Emulator) addIndex(ins Instruction) error {
	e.i += uint16(e.v[ins.X()])
	return nil
}

// Fx29
func (e *Emulator) ldGlyph(ins Instruction) error {
	e.i = memory.GlyphAddress(e.v[ins.X()])
	return nil
}

// Fx33
func (e *Emulator) storeBCD(ins Instruction) error {
	digits, err := e.memory.Slice(e.i, 3)
	if err != nil {
		return fmt.Errorf("storing bcd: %w", err)
	}
	value := e.v[ins.X()]
	digits[0] = value / 100
	digits[1] = value / 10 % 10
	digits[2] = value % 10
	return nil
}

// Fx55
func (e *Emulator) storeRegisters(ins Instruction) error {
	count, err := registerCount(ins.X())
	if err != nil {
		return err
	}
	dst, err := e.memory.Slice(e.i, count)
	if err != nil {
		return fmt.Errorf("storing registers: %w", err)
	}
	copy(dst, e.v[:count])
	return nil
}

// Fx65
func (e *Emulator) loadRegisters(ins Instruction) error {
	count, err := registerCount(ins.X())
	if err != nil {
		return err
	}
	src, err := e.memory.Slice(e.i, count)
	if err != nil {
		return fmt.Errorf("loading registers: %w", err)
	}
	copy(e.v[:count], src)
	return nil
}

func (e *Emulator) skipIf(condition bool) {
	if condition {
		e.pc += 2
	}
}

// registerCount returns the number of registers in the range V0..Vx.
func registerCount(x uint8) (int, error) {
	count := int(x) + 1
	if count > RegisterCount {
		return 0, fmt.Errorf("%w: V%X", ErrRegisterIndexOutOfRange, x)
	}
	return count, nil
}

func flag(set bool) uint8 {
	if set {
		return 1
	}
	return 0
}
