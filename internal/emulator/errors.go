package emulator

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownOpcode is returned when a fetched word matches no instruction.
	ErrUnknownOpcode = errors.New("unknown opcode")
	// ErrStackUnderflow is returned when returning from a subroutine with an empty stack.
	ErrStackUnderflow = errors.New("stack underflow")
	// ErrStackOverflow is returned when calling a subroutine with a full stack.
	ErrStackOverflow = errors.New("stack overflow")
	// ErrRegisterIndexOutOfRange is returned for register indexes outside of V0-VF.
	ErrRegisterIndexOutOfRange = errors.New("register index out of range")
)

// Fault describes an instruction that could not be executed.
// The machine state is left as it was before the instruction was fetched,
// so the host can report the fault and decide whether to continue.
// The diagnostic trace is the exception: a decoded instruction is recorded
// even if its execution fails.
type Fault struct {
	Address     uint16
	Instruction Instruction
	Err         error
}

func (f *Fault) Error() string {
	return fmt.Sprintf("%s: opcode $%04X (%X,%X,%X,%X) at $%03X",
		f.Err, f.Instruction.Opcode,
		f.Instruction.D1, f.Instruction.D2, f.Instruction.D3, f.Instruction.D4,
		f.Address)
}

func (f *Fault) Unwrap() error {
	return f.Err
}
