package app

import (
	"testing"

	"forest-fire/internal/core"
	"forest-fire/internal/fire"

	"github.com/stretchr/testify/require"
)

type bareSim struct{}

func (bareSim) Name() string      { return "bare" }
func (bareSim) Size() core.Size   { return core.Size{W: 1, H: 1} }
func (bareSim) Reset(int64) error { return nil }
func (bareSim) Step()             {}
func (bareSim) Cells() []uint8    { return []uint8{0} }

func TestCurrentSeedFollowsHUDEdits(t *testing.T) {
	cfg := fire.DefaultConfig()
	f, err := fire.NewForest(cfg)
	require.NoError(t, err)
	require.NoError(t, f.Reset(1))
	require.Equal(t, int64(1), currentSeed(f, 1))

	require.True(t, f.SetIntParameter("seed", 99))
	seed := currentSeed(f, 1)
	require.Equal(t, int64(99), seed)
	require.NoError(t, f.Reset(seed))

	fresh, err := fire.NewForest(cfg)
	require.NoError(t, err)
	require.NoError(t, fresh.Reset(99))
	require.True(t, f.Grid().Equal(fresh.Grid()))
}

func TestCurrentSeedFallback(t *testing.T) {
	require.Equal(t, int64(5), currentSeed(bareSim{}, 5))
}
