package app

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"forest-fire/internal/core"
	"forest-fire/internal/ctxlog"
	"forest-fire/internal/fire"
	"forest-fire/internal/render"

	"github.com/stretchr/testify/require"
)

type recordingRenderer struct {
	frames []render.Frame
}

func (r *recordingRenderer) Render(f render.Frame) error {
	cells := append([]uint8(nil), f.Cells...)
	r.frames = append(r.frames, render.Frame{Cells: cells, Width: f.Width, Caption: f.Caption})
	return nil
}

func testConfig() *Config {
	cfg := NewConfig()
	cfg.Size = 10
	cfg.Density = 0.7
	cfg.Spread = 0.6
	cfg.Seed = 8
	cfg.Delay = 0
	return cfg
}

func TestRunnerRendersEveryStepUntilFireIsOut(t *testing.T) {
	var out bytes.Buffer
	r, err := NewRunner(testConfig(), &out)
	require.NoError(t, err)
	rec := &recordingRenderer{}
	r.Renderer = rec

	ctx := ctxlog.WithLogger(context.Background(), ctxlog.Discard())
	outcome, err := r.Run(ctx)
	require.NoError(t, err)

	require.True(t, r.Forest.Done())
	// One frame before each step plus the final frame.
	require.Len(t, rec.frames, outcome.Steps+1)
	first := rec.frames[0]
	require.Equal(t, 10, first.Width)
	require.Equal(t, 1, countState(first.Cells, fire.Burning))
	last := rec.frames[len(rec.frames)-1]
	require.Equal(t, 0, countState(last.Cells, fire.Burning))
	require.Contains(t, last.Caption, "burning 0")
	require.Equal(t, outcome.InitialTrees, outcome.Burned+outcome.Surviving)
}

func TestRunnerStepLimit(t *testing.T) {
	cfg := testConfig()
	cfg.Size = 40
	cfg.Density = 1
	cfg.Spread = 1
	cfg.MaxSteps = 3
	r, err := NewRunner(cfg, &bytes.Buffer{})
	require.NoError(t, err)
	rec := &recordingRenderer{}
	r.Renderer = rec

	var logs bytes.Buffer
	logger, err := ctxlog.New(&logs, "json", "info")
	require.NoError(t, err)
	outcome, err := r.Run(ctxlog.WithLogger(context.Background(), logger))
	require.NoError(t, err)
	require.Equal(t, 3, outcome.Steps)
	require.False(t, r.Forest.Done())
	require.Len(t, rec.frames, 4)
	require.Contains(t, logs.String(), `"msg":"fire stopped while burning"`)
	require.NotContains(t, logs.String(), `"msg":"fire out"`)
}

func TestRunnerCancelled(t *testing.T) {
	cfg := testConfig()
	r, err := NewRunner(cfg, &bytes.Buffer{})
	require.NoError(t, err)
	r.Renderer = &recordingRenderer{}
	r.Pacer = core.NewPacer(1 << 40)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	outcome, err := r.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 1, outcome.Steps)
}

func TestRunnerWritesAsciiFrames(t *testing.T) {
	cfg := testConfig()
	cfg.Glyphs = "ascii"
	cfg.Color = false
	cfg.Clear = false
	var out bytes.Buffer
	r, err := NewRunner(cfg, &out)
	require.NoError(t, err)

	_, err = r.Run(context.Background())
	require.NoError(t, err)
	text := out.String()
	require.NotContains(t, text, "\x1b[")
	require.Contains(t, text, "generation 0 |")
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	require.Len(t, lines[0], 10)
}

func TestNewRunnerNoFuel(t *testing.T) {
	cfg := testConfig()
	cfg.Density = 0
	_, err := NewRunner(cfg, &bytes.Buffer{})
	require.ErrorIs(t, err, fire.ErrNoFuelAvailable)
}

func countState(cells []uint8, state fire.Cell) int {
	n := 0
	for _, c := range cells {
		if fire.Cell(c) == state {
			n++
		}
	}
	return n
}
