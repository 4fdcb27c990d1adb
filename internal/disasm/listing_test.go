package disasm

import (
	"bytes"
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDisassemble_Labels(t *testing.T) {
	// 0x200: call 0x206
	// 0x202: jp 0x204
	// 0x204: jp 0x204
	// 0x206: ret
	rom := []byte{0x22, 0x06, 0x12, 0x04, 0x12, 0x04, 0x00, 0xEE}

	lines := Disassemble(rom, 0x200)
	assert.Len(t, lines, 4)

	assert.Equal(t, "", lines[0].Label)
	assert.Equal(t, "", lines[1].Label)
	assert.Equal(t, "_label_0204", lines[2].Label)
	assert.Equal(t, "_func_0206", lines[3].Label)

	assert.True(t, strings.HasSuffix(lines[0].Code, "; _func_0206"))
	assert.True(t, strings.HasSuffix(lines[1].Code, "; _label_0204"))
}

func TestDisassemble_OddLength(t *testing.T) {
	lines := Disassemble([]byte{0x00, 0xE0, 0xAB}, 0x200)

	assert.Len(t, lines, 2)
	assert.Equal(t, uint16(0xAB00), lines[1].Opcode)
	assert.Equal(t, uint16(0x202), lines[1].Address)
}

func TestWrite(t *testing.T) {
	lines := Disassemble([]byte{0x12, 0x00}, 0x200)

	var buf bytes.Buffer
	assert.NoError(t, Write(&buf, lines))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "_label_0200:\n"))
	assert.True(t, strings.Contains(out, "$200  1200"))
}
