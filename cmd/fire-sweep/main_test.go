package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"forest-fire/internal/fire"

	"github.com/stretchr/testify/require"
)

func TestFloatList(t *testing.T) {
	var l floatList
	require.NoError(t, l.Set("0.1, 0.5,,1"))
	require.Equal(t, floatList{0.1, 0.5, 1}, l)
	require.Equal(t, "0.1,0.5,1", l.String())
	require.Error(t, l.Set("0.1,x"))
}

func TestRunPrintsOneRowPerPair(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), &out, &bytes.Buffer{}, []string{
		"-size", "8", "-trials", "2", "-workers", "2",
		"-densities", "0,1", "-spreads", "1",
	})
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	require.Contains(t, lines[0], "burned")
	require.Contains(t, lines[1], "0.00")
	require.Contains(t, lines[2], "1.000")
}

func TestRunRejectsBadDensity(t *testing.T) {
	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"-densities", "1.5", "-trials", "1"})
	require.ErrorIs(t, err, fire.ErrInvalidParameter)
}
