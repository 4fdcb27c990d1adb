package window

import (
	"context"
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/retroenv/retrochip8/internal/emulator"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestUpdate_ContextCanceled(t *testing.T) {
	logger := log.NewTestLogger(t)
	e := emulator.New(emulator.WithLogger(logger))
	f := New(logger, "test", 1, nil, 0)
	r := runner.New(logger, e, f, runner.Config{InstructionsPerSecond: 60})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	f.ctx = ctx
	f.runner = r

	err := f.Update()
	assert.True(t, errors.Is(err, ebiten.Termination))
	assert.True(t, errors.Is(f.err, context.Canceled))
	assert.Equal(t, 0, r.Frames())
}

func TestClose_WithoutBeeper(t *testing.T) {
	f := New(log.NewTestLogger(t), "test", 1, nil, 0)
	assert.NoError(t, f.Close())
}
