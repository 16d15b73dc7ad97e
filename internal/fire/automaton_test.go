package fire

import (
	"testing"

	"forest-fire/internal/core"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

// scriptedSource replays fixed draws and fails the test when it runs dry.
type scriptedSource struct {
	t     *testing.T
	bools []bool
	ints  []int
}

func (s *scriptedSource) Bernoulli(float64) bool {
	s.t.Helper()
	require.NotEmpty(s.t, s.bools, "unexpected Bernoulli draw")
	b := s.bools[0]
	s.bools = s.bools[1:]
	return b
}

func (s *scriptedSource) IntN(int) int {
	s.t.Helper()
	require.NotEmpty(s.t, s.ints, "unexpected IntN draw")
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v
}

func mustRows(t *testing.T, rows [][]Cell) *Grid {
	t.Helper()
	g, err := FromRows(rows)
	require.NoError(t, err)
	return g
}

func uniform(size int, state Cell) [][]Cell {
	rows := make([][]Cell, size)
	for r := range rows {
		rows[r] = make([]Cell, size)
		for c := range rows[r] {
			rows[r][c] = state
		}
	}
	return rows
}

func centerFire() [][]Cell {
	rows := uniform(3, Tree)
	rows[1][1] = Burning
	return rows
}

func TestStepCenterFireFullSpread(t *testing.T) {
	g := mustRows(t, centerFire())
	next := Step(g, 1, core.NewRNG(1))

	want := [][]Cell{
		{Tree, Burning, Tree},
		{Burning, Burned, Burning},
		{Tree, Burning, Tree},
	}
	if diff := cmp.Diff(want, next.Rows()); diff != "" {
		t.Fatalf("unexpected grid after step (-want +got):\n%s", diff)
	}
	require.True(t, next.HasBurning())
}

func TestStepCenterFireNoSpread(t *testing.T) {
	g := mustRows(t, centerFire())
	next := Step(g, 0, core.NewRNG(1))

	want := uniform(3, Tree)
	want[1][1] = Burned
	if diff := cmp.Diff(want, next.Rows()); diff != "" {
		t.Fatalf("unexpected grid after step (-want +got):\n%s", diff)
	}
	require.False(t, next.HasBurning(), "fire should be out after one step")
}

func TestStepDoesNotMutateInput(t *testing.T) {
	g := mustRows(t, centerFire())
	before := g.Clone()
	_ = Step(g, 1, core.NewRNG(3))
	require.True(t, g.Equal(before))
}

func TestStepReadsOnlyPreviousSnapshot(t *testing.T) {
	// A row of trees lit at one end advances exactly one cell per step.
	rows := uniform(5, Empty)
	for c := range rows[2] {
		rows[2][c] = Tree
	}
	rows[2][0] = Burning
	g := mustRows(t, rows)

	for step := 1; step < 5; step++ {
		g = Step(g, 1, core.NewRNG(int64(step)))
		require.Equal(t, Burning, g.At(Coord{Row: 2, Col: step}), "step %d", step)
		if step+1 < 5 {
			require.Equal(t, Tree, g.At(Coord{Row: 2, Col: step + 1}), "fire jumped ahead at step %d", step)
		}
		require.Equal(t, 1, g.Count(Burning))
	}
}

func TestStepTrialsPerBurningNeighbour(t *testing.T) {
	// The middle tree has two burning neighbours: the first trial fails, the
	// second succeeds.
	g := mustRows(t, [][]Cell{
		{Empty, Burning, Empty},
		{Empty, Tree, Empty},
		{Empty, Burning, Empty},
	})
	src := &scriptedSource{t: t, bools: []bool{false, true}}
	next := Step(g, 0.5, src)
	require.Equal(t, Burning, next.At(Coord{Row: 1, Col: 1}))
	require.Empty(t, src.bools)

	// Once lit, the tree is not offered a second trial.
	src = &scriptedSource{t: t, bools: []bool{true}}
	next = Step(g, 0.5, src)
	require.Equal(t, Burning, next.At(Coord{Row: 1, Col: 1}))
	require.Empty(t, src.bools)
}

func TestStepFollowsNeighbourOrder(t *testing.T) {
	// Down, up, left, right: only the third draw succeeds, lighting the left tree.
	g := mustRows(t, centerFire())
	src := &scriptedSource{t: t, bools: []bool{false, false, true, false}}
	next := Step(g, 0.5, src)

	want := [][]Cell{
		{Tree, Tree, Tree},
		{Burning, Burned, Tree},
		{Tree, Tree, Tree},
	}
	if diff := cmp.Diff(want, next.Rows()); diff != "" {
		t.Fatalf("unexpected grid (-want +got):\n%s", diff)
	}
}

func TestStepTransitionInvariants(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		rng := core.NewRNG(seed)
		g, _, err := Initialize(Config{Size: 12, Density: 0.6, Spread: 0.5, IgnitionAttempts: 64}, rng)
		require.NoError(t, err)
		// Sprinkle extra fires and ash so every state is present.
		for i := 0; i < 6; i++ {
			c := Coord{Row: rng.IntN(12), Col: rng.IntN(12)}
			if g.At(c) == Tree {
				g.Set(c, Burning)
			}
		}
		g.Set(Coord{Row: 0, Col: 0}, Burned)

		for g.HasBurning() {
			next := Step(g, 0.5, rng)
			for r := 0; r < 12; r++ {
				for c := 0; c < 12; c++ {
					at := Coord{Row: r, Col: c}
					before, after := g.At(at), next.At(at)
					switch before {
					case Empty, Burned:
						require.Equal(t, before, after, "seed %d cell %v", seed, at)
					case Burning:
						require.Equal(t, Burned, after, "seed %d cell %v", seed, at)
					case Tree:
						require.Contains(t, []Cell{Tree, Burning}, after, "seed %d cell %v", seed, at)
						if after == Burning {
							require.True(t, hasBurningNeighbour(g, at), "seed %d: %v ignited without a burning neighbour", seed, at)
						}
					}
				}
			}
			g = next
		}
	}
}

func hasBurningNeighbour(g *Grid, at Coord) bool {
	for _, nb := range Neighbors4(at.Row, at.Col, g.Size()) {
		if g.At(nb) == Burning {
			return true
		}
	}
	return false
}

func TestStepZeroSpreadCreatesNoFire(t *testing.T) {
	rng := core.NewRNG(5)
	g, _, err := Initialize(Config{Size: 16, Density: 0.9, Spread: 0, IgnitionAttempts: 8}, rng)
	require.NoError(t, err)
	burning := g.Count(Burning)
	next := Step(g, 0, rng)
	require.Equal(t, 0, next.Count(Burning))
	require.Equal(t, g.Count(Burned)+burning, next.Count(Burned))
}

func TestStepFullSpreadIgnitesAllAdjacentTrees(t *testing.T) {
	rng := core.NewRNG(9)
	g, err := NewRandom(15, 0.7, rng)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		c := Coord{Row: rng.IntN(15), Col: rng.IntN(15)}
		if g.At(c) == Tree {
			g.Set(c, Burning)
		}
	}

	next := Step(g, 1, rng)
	for r := 0; r < 15; r++ {
		for c := 0; c < 15; c++ {
			at := Coord{Row: r, Col: c}
			if g.At(at) == Tree && hasBurningNeighbour(g, at) {
				require.Equal(t, Burning, next.At(at), "tree %v next to fire stayed unlit", at)
			}
		}
	}
}

func TestFireTerminatesWithinSizeSquaredSteps(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		cfg := Config{Size: 10, Density: 1, Spread: 1, IgnitionAttempts: 16}
		rng := core.NewRNG(seed)
		g, _, err := Initialize(cfg, rng)
		require.NoError(t, err)
		steps := 0
		for g.HasBurning() {
			g = Step(g, cfg.Spread, rng)
			steps++
			require.LessOrEqual(t, steps, cfg.Size*cfg.Size)
		}
	}
}

func TestNewRandomExtremes(t *testing.T) {
	g, err := NewRandom(7, 0, core.NewRNG(1))
	require.NoError(t, err)
	require.Equal(t, 49, g.Count(Empty))

	g, err = NewRandom(7, 1, core.NewRNG(1))
	require.NoError(t, err)
	require.Equal(t, 49, g.Count(Tree))
}

func TestNewRandomDeterministic(t *testing.T) {
	a, err := NewRandom(20, 0.5, core.NewRNG(77))
	require.NoError(t, err)
	b, err := NewRandom(20, 0.5, core.NewRNG(77))
	require.NoError(t, err)
	require.True(t, a.Equal(b))

	c, err := NewRandom(20, 0.5, core.NewRNG(78))
	require.NoError(t, err)
	require.False(t, a.Equal(c))
}

func TestNewRandomRejectsBadParameters(t *testing.T) {
	for _, tc := range []struct {
		name    string
		size    int
		density float64
	}{
		{"negative density", 5, -0.1},
		{"density above one", 5, 1.5},
		{"zero size", 0, 0.5},
		{"negative size", -3, 0.5},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewRandom(tc.size, tc.density, core.NewRNG(1))
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrInvalidParameter), "got %v", err)
		})
	}
}

func TestChooseIgnitionNoFuel(t *testing.T) {
	g, err := NewGrid(4)
	require.NoError(t, err)
	_, err = ChooseIgnition(g, core.NewRNG(1), 100)
	require.True(t, errors.Is(err, ErrNoFuelAvailable), "got %v", err)

	_, _, err = Initialize(Config{Size: 4, Density: 0, Spread: 0.5, IgnitionAttempts: 10}, core.NewRNG(1))
	require.True(t, errors.Is(err, ErrNoFuelAvailable), "got %v", err)
}

func TestChooseIgnitionAlwaysPicksTree(t *testing.T) {
	rng := core.NewRNG(11)
	for i := 0; i < 50; i++ {
		g, err := NewRandom(9, 0.1, rng)
		require.NoError(t, err)
		if g.Count(Tree) == 0 {
			continue
		}
		at, err := ChooseIgnition(g, rng, 3)
		require.NoError(t, err)
		require.Equal(t, Tree, g.At(at))
	}
}

func TestChooseIgnitionFallsBackToScan(t *testing.T) {
	rows := uniform(3, Empty)
	rows[2][2] = Tree
	g := mustRows(t, rows)

	// Two misses exhaust the attempts; the scan then indexes the only tree.
	src := &scriptedSource{t: t, ints: []int{0, 0, 1, 1, 0}}
	at, err := ChooseIgnition(g, src, 2)
	require.NoError(t, err)
	require.Equal(t, Coord{Row: 2, Col: 2}, at)
	require.Empty(t, src.ints)
}

func TestIgniteRequiresTree(t *testing.T) {
	g := mustRows(t, uniform(2, Empty))
	err := Ignite(g, Coord{Row: 0, Col: 0})
	require.True(t, errors.Is(err, ErrInvalidParameter))

	err = Ignite(g, Coord{Row: 5, Col: 0})
	require.True(t, errors.Is(err, ErrInvalidParameter))

	g.Set(Coord{Row: 1, Col: 1}, Tree)
	require.NoError(t, Ignite(g, Coord{Row: 1, Col: 1}))
	require.Equal(t, Burning, g.At(Coord{Row: 1, Col: 1}))
}

func TestInitializeLightsExactlyOneTree(t *testing.T) {
	g, at, err := Initialize(DefaultConfig(), core.NewRNG(3))
	require.NoError(t, err)
	require.Equal(t, 1, g.Count(Burning))
	require.Equal(t, Burning, g.At(at))
	require.Equal(t, 0, g.Count(Burned))
}
