package config

import (
	"testing"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestCreateLogger(t *testing.T) {
	assert.NotNil(t, CreateLogger(false, false))
	assert.NotNil(t, CreateLogger(true, false))
	assert.NotNil(t, CreateLogger(false, true))
}

func TestCreateEmulator_Seeded(t *testing.T) {
	logger := log.NewTestLogger(t)
	opts := options.NewEmulator()
	opts.Seed = 42

	// RND V0, FF
	rom := []byte{0xC0, 0xFF}
	values := make([]uint8, 0, 2)
	for range 2 {
		e := CreateEmulator(logger, opts)
		assert.NoError(t, e.LoadROM(rom))
		assert.NoError(t, e.Step())
		v, err := e.V(0)
		assert.NoError(t, err)
		values = append(values, v)
	}
	assert.Equal(t, values[0], values[1])
}

func TestCreateEmulator_Trace(t *testing.T) {
	logger := log.NewTestLogger(t)
	opts := options.NewEmulator()
	opts.TraceDepth = 0

	e := CreateEmulator(logger, opts)
	assert.True(t, e.Trace() == nil)

	opts.TraceDepth = 4
	e = CreateEmulator(logger, opts)
	assert.NoError(t, e.LoadROM([]byte{0x60, 0x01}))
	assert.NoError(t, e.Step())
	assert.Len(t, e.Trace(), 1)
}

func TestCreateEmulator_StackLimit(t *testing.T) {
	logger := log.NewTestLogger(t)
	opts := options.NewEmulator()
	opts.StackLimit = 1

	// CALL 202; CALL 204
	e := CreateEmulator(logger, opts)
	assert.NoError(t, e.LoadROM([]byte{0x22, 0x02, 0x22, 0x04}))
	assert.NoError(t, e.Step())
	assert.Error(t, e.Step())
}

func TestRunnerConfig(t *testing.T) {
	opts := options.NewEmulator()
	opts.Frames = 30

	cfg := RunnerConfig(opts, options.Headless)
	assert.Equal(t, options.DefaultInstructionsPerSecond, cfg.InstructionsPerSecond)
	assert.Equal(t, 30, cfg.MaxFrames)
	assert.True(t, cfg.Unthrottled)

	cfg = RunnerConfig(opts, options.Ebiten)
	assert.False(t, cfg.Unthrottled)

	opts.Frames = 0
	cfg = RunnerConfig(opts, options.Headless)
	assert.Equal(t, options.DefaultHeadlessFrames, cfg.MaxFrames)
	cfg = RunnerConfig(opts, options.Terminal)
	assert.Equal(t, 0, cfg.MaxFrames)
}
