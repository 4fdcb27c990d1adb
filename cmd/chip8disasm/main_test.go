package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retroenv/retrochip8/internal/disasm"
	"github.com/retroenv/retrogolib/assert"
)

var errWrite = errors.New("disk full")

type failingWriter struct {
	closed bool
}

func (w *failingWriter) Write([]byte) (int, error) {
	return 0, errWrite
}

func (w *failingWriter) Close() error {
	w.closed = true
	return nil
}

func TestWriteListing_ClosesOnWriteError(t *testing.T) {
	w := &failingWriter{}
	lines := disasm.Disassemble([]byte{0x00, 0xE0}, 0x200)

	err := writeListing(w, lines)
	assert.True(t, errors.Is(err, errWrite))
	assert.True(t, w.closed)
}

func TestDisasmFile(t *testing.T) {
	tmpDir := t.TempDir()
	input := filepath.Join(tmpDir, "test.ch8")
	output := filepath.Join(tmpDir, "test.lst")
	if err := os.WriteFile(input, []byte{0x00, 0xE0, 0x12, 0x02}, 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}

	assert.NoError(t, disasmFile(optionFlags{input: input, output: output, quiet: true}))

	data, err := os.ReadFile(output)
	assert.NoError(t, err)
	listing := string(data)
	assert.True(t, strings.Contains(listing, "_label_0202:"))
	assert.True(t, strings.Contains(listing, "$200  00E0"))
}
