// Package loader handles ROM file loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/memory"
	"github.com/retroenv/retrogolib/arch/system/nes/cartridge"
)

var (
	// ErrEmptyROM is returned for ROM files without content.
	ErrEmptyROM = errors.New("empty rom")
	// ErrTruncatedROM is returned if the cartridge holds less data than was read.
	ErrTruncatedROM = errors.New("truncated rom")
)

// Loader handles loading ROM files from disk.
type Loader struct{}

// New creates a new ROM loader.
func New() *Loader {
	return &Loader{}
}

// Load reads a raw ROM file. ROMs have no header, the whole file is the program.
func (l *Loader) Load(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	return l.LoadFromReader(file)
}

// LoadFromReader reads a raw ROM from the reader and validates its size.
// The buffer is loaded as cartridge without header, the program is the
// part of the padded PRG data that was read.
func (l *Loader) LoadFromReader(reader io.Reader) ([]byte, error) {
	// read one byte more than fits to detect oversized files without reading them completely
	counter := &countingReader{reader: io.LimitReader(reader, memory.MaxProgramSize+1)}
	cart, err := cartridge.LoadBuffer(counter)

	switch {
	case counter.count == 0:
		return nil, ErrEmptyROM
	case err != nil:
		return nil, fmt.Errorf("loading cartridge: %w", err)
	case counter.count > memory.MaxProgramSize:
		return nil, fmt.Errorf("%w: rom exceeds %d bytes", memory.ErrOutOfMemory, memory.MaxProgramSize)
	case len(cart.PRG) < counter.count:
		return nil, fmt.Errorf("%w: cartridge holds %d of %d bytes", ErrTruncatedROM, len(cart.PRG), counter.count)
	}

	data := make([]byte, counter.count)
	copy(data, cart.PRG)
	return data, nil
}

// countingReader counts the bytes read from the wrapped reader.
type countingReader struct {
	reader io.Reader
	count  int
}

func (r *countingReader) Read(p []byte) (int, error) {
	n, err := r.reader.Read(p)
	r.count += n
	return n, err
}
