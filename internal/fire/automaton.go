package fire

import "github.com/pkg/errors"

// RandomSource supplies the draws the automaton needs. core.RNG satisfies it.
type RandomSource interface {
	// Bernoulli reports true with probability p.
	Bernoulli(p float64) bool
	// IntN returns a uniform value in [0, n).
	IntN(n int) int
}

// DefaultIgnitionAttempts bounds rejection sampling in ChooseIgnition before
// it falls back to scanning for trees.
const DefaultIgnitionAttempts = 1024

// ChooseIgnition picks a uniformly random Tree cell. It samples random
// coordinates up to maxAttempts times, then falls back to choosing among all
// trees directly, so it always terminates. A grid without trees yields
// ErrNoFuelAvailable.
func ChooseIgnition(g *Grid, rng RandomSource, maxAttempts int) (Coord, error) {
	if g.Count(Tree) == 0 {
		return Coord{}, errors.Wrapf(ErrNoFuelAvailable, "%dx%d grid holds no trees", g.size, g.size)
	}
	for i := 0; i < maxAttempts; i++ {
		c := Coord{Row: rng.IntN(g.size), Col: rng.IntN(g.size)}
		if g.At(c) == Tree {
			return c, nil
		}
	}

	trees := make([]Coord, 0, g.Count(Tree))
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			if g.cells.Get(r, c) == uint8(Tree) {
				trees = append(trees, Coord{Row: r, Col: c})
			}
		}
	}
	return trees[rng.IntN(len(trees))], nil
}

// Ignite sets the Tree at c on fire.
func Ignite(g *Grid, c Coord) error {
	if !g.InBounds(c) {
		return errors.Wrapf(ErrInvalidParameter, "ignition point %v outside %dx%d grid", c, g.size, g.size)
	}
	if s := g.At(c); s != Tree {
		return errors.Wrapf(ErrInvalidParameter, "ignition point %v is %v, not a tree", c, s)
	}
	g.Set(c, Burning)
	return nil
}

// Initialize validates cfg, grows a random forest and lights one tree.
func Initialize(cfg Config, rng RandomSource) (*Grid, Coord, error) {
	if err := cfg.Validate(); err != nil {
		return nil, Coord{}, err
	}
	g, err := NewRandom(cfg.Size, cfg.Density, rng)
	if err != nil {
		return nil, Coord{}, err
	}
	at, err := ChooseIgnition(g, rng, cfg.IgnitionAttempts)
	if err != nil {
		return nil, Coord{}, err
	}
	if err := Ignite(g, at); err != nil {
		return nil, Coord{}, err
	}
	return g, at, nil
}

// Step computes the next snapshot. Every Burning cell becomes Burned, and
// each Tree next to a Burning cell gets one Bernoulli(spreadP) trial per
// burning neighbour, igniting on the first success. Only the input grid is
// read, so fire advances at most one ring per step. The input is not
// modified. spreadP is expected to be validated by the caller.
func Step(g *Grid, spreadP float64, rng RandomSource) *Grid {
	next := g.Clone()
	src := g.cells.Cells()
	dst := next.cells.Cells()
	n := g.size

	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			idx := r*n + c
			if Cell(src[idx]) != Burning {
				continue
			}
			dst[idx] = uint8(Burned)

			for _, nb := range Neighbors4(r, c, n) {
				nIdx := nb.Row*n + nb.Col
				if Cell(src[nIdx]) != Tree || Cell(dst[nIdx]) != Tree {
					continue
				}
				if rng.Bernoulli(spreadP) {
					dst[nIdx] = uint8(Burning)
				}
			}
		}
	}
	return next
}
