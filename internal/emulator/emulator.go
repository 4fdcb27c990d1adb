// Package emulator implements the CHIP-8 interpreter core.
//
// The emulator is purely reactive: a host calls Step to execute one instruction
// and TickTimers at a fixed rate, conventionally 60Hz, to count down the timers.
// The core performs no timing, no locking and owns no rendering technology.
package emulator

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/keypad"
	"github.com/retroenv/retrochip8/internal/memory"
	"github.com/retroenv/retrochip8/internal/timer"
	"github.com/retroenv/retrogolib/log"
)

const (
	// RegisterCount is the number of general purpose registers V0-VF.
	RegisterCount = 16

	// DefaultStackLimit is the call depth of the reference machine.
	DefaultStackLimit = 16

	flagRegister = 0xF
)

// Random is the source of the random instruction.
type Random interface {
	Uint8() uint8
}

// Emulator holds the complete machine state.
type Emulator struct {
	pc     uint16
	i      uint16
	v      [RegisterCount]uint8
	stack  []uint16
	memory *memory.Memory
	timers timer.Timers
	screen *display.Framebuffer
	keys   keypad.Keypad

	toneSignal bool

	stackLimit int
	random     Random
	trace      *traceRing
	logger     *log.Logger
}

// Option configures an emulator.
type Option func(*Emulator)

// WithStackLimit sets the maximum call depth, 0 allows unbounded nesting.
func WithStackLimit(limit int) Option {
	return func(e *Emulator) {
		e.stackLimit = limit
	}
}

// WithRandom sets the random source used by the random instruction.
func WithRandom(random Random) Option {
	return func(e *Emulator) {
		e.random = random
	}
}

// WithTrace enables recording of the last depth executed instructions.
func WithTrace(depth int) Option {
	return func(e *Emulator) {
		if depth > 0 {
			e.trace = newTraceRing(depth)
		}
	}
}

// WithLogger sets a logger that receives debug messages about faults and
// lifecycle events.
func WithLogger(logger *log.Logger) Option {
	return func(e *Emulator) {
		e.logger = logger
	}
}

// New returns an emulator with the font loaded and all other state cleared.
func New(options ...Option) *Emulator {
	e := &Emulator{
		pc:         memory.ProgramStart,
		memory:     memory.New(),
		screen:     display.New(),
		stackLimit: DefaultStackLimit,
	}
	for _, option := range options {
		option(e)
	}
	if e.random == nil {
		e.random = NewRandom(rand.Uint64())
	}
	return e
}

// LoadROM copies the program into memory at the program start address.
func (e *Emulator) LoadROM(rom []byte) error {
	if err := e.memory.LoadProgram(rom); err != nil {
		return fmt.Errorf("loading rom: %w", err)
	}
	if e.logger != nil {
		e.logger.Debug("ROM loaded", log.Int("size", len(rom)))
	}
	return nil
}

// Reset restores the just constructed state. The program is cleared as well,
// hosts load the ROM again to restart it.
func (e *Emulator) Reset() {
	e.pc = memory.ProgramStart
	e.i = 0
	e.v = [RegisterCount]uint8{}
	e.stack = e.stack[:0]
	e.memory.Reset()
	e.timers.Reset()
	e.screen.Clear()
	e.keys.Reset()
	e.toneSignal = false
	if e.trace != nil {
		e.trace.reset()
	}
	if e.logger != nil {
		e.logger.Debug("Emulator reset")
	}
}

// Step fetches, decodes and executes one instruction.
// On failure a *Fault is returned and the machine state is unchanged,
// only the trace keeps the failed instruction.
func (e *Emulator) Step() error {
	address := e.pc
	opcode, err := e.memory.ReadWord(address)
	if err != nil {
		return e.fault(address, Instruction{}, err)
	}

	ins := Decode(opcode)
	execute := lookup(ins)
	if execute == nil {
		return e.fault(address, ins, ErrUnknownOpcode)
	}

	if e.trace != nil {
		e.trace.add(TraceEntry{Address: address, Instruction: ins})
	}

	e.pc += 2
	if err := execute(e, ins); err != nil {
		e.pc = address
		return e.fault(address, ins, err)
	}
	return nil
}

// TickTimers counts down the delay and sound timers by one.
// It returns true when the sound timer expired during this tick.
func (e *Emulator) TickTimers() bool {
	expired := e.timers.Tick()
	if expired {
		e.toneSignal = true
	}
	return expired
}

// ToneSignal reports whether the sound timer expired since the last call
// and clears the signal.
func (e *Emulator) ToneSignal() bool {
	signal := e.toneSignal
	e.toneSignal = false
	return signal
}

// SoundActive returns whether the sound timer is counting down.
func (e *Emulator) SoundActive() bool {
	return e.timers.SoundActive()
}

// SetKey sets the pressed state of a key of the pad.
func (e *Emulator) SetKey(index int, pressed bool) error {
	if err := e.keys.Set(index, pressed); err != nil {
		return fmt.Errorf("setting key: %w", err)
	}
	return nil
}

// Display returns the framebuffer. Hosts must treat it as read only.
func (e *Emulator) Display() *display.Framebuffer {
	return e.screen
}

// Memory returns the address space. Hosts must treat it as read only.
func (e *Emulator) Memory() *memory.Memory {
	return e.memory
}

// PC returns the address of the next instruction.
func (e *Emulator) PC() uint16 {
	return e.pc
}

// I returns the index register.
func (e *Emulator) I() uint16 {
	return e.i
}

// V returns the value of a general purpose register.
func (e *Emulator) V(index int) (uint8, error) {
	if index < 0 || index >= RegisterCount {
		return 0, fmt.Errorf("%w: %d", ErrRegisterIndexOutOfRange, index)
	}
	return e.v[index], nil
}

// Registers returns a copy of all general purpose registers.
func (e *Emulator) Registers() [RegisterCount]uint8 {
	return e.v
}

// Stack returns a copy of the return addresses, the most recent call last.
func (e *Emulator) Stack() []uint16 {
	stack := make([]uint16, len(e.stack))
	copy(stack, e.stack)
	return stack
}

// DelayTimer returns the delay timer value.
func (e *Emulator) DelayTimer() uint8 {
	return e.timers.Delay()
}

// SoundTimer returns the sound timer value.
func (e *Emulator) SoundTimer() uint8 {
	return e.timers.Sound()
}

// Trace returns the recorded instructions, oldest first.
// It returns nil if tracing is not enabled.
func (e *Emulator) Trace() []TraceEntry {
	if e.trace == nil {
		return nil
	}
	return e.trace.entries()
}

func (e *Emulator) fault(address uint16, ins Instruction, err error) error {
	if e.logger != nil {
		msg := "Instruction failed"
		if errors.Is(err, ErrUnknownOpcode) {
			msg = "Unknown instruction"
		}
		e.logger.Debug(msg,
			log.Hex("address", address),
			log.Hex("opcode", ins.Opcode),
			log.Err(err))
	}
	return &Fault{
		Address:     address,
		Instruction: ins,
		Err:         err,
	}
}

type pcgRandom struct {
	rnd *rand.Rand
}

// NewRandom returns a deterministic random source for the given seed.
func NewRandom(seed uint64) Random {
	return pcgRandom{rnd: rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))}
}

func (r pcgRandom) Uint8() uint8 {
	return uint8(r.rnd.Uint32())
}
