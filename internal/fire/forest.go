package fire

import (
	"forest-fire/internal/core"
)

// Name is the registry key of the forest fire simulation.
const Name = "forestfire"

// Outcome summarises a finished (or interrupted) run.
type Outcome struct {
	Steps        int
	Ignition     Coord
	InitialTrees int
	Burned       int
	Surviving    int
	Census       Census
}

// BurnedFraction is the share of the initial forest that burned.
func (o Outcome) BurnedFraction() float64 {
	if o.InitialTrees == 0 {
		return 0
	}
	return float64(o.Burned) / float64(o.InitialTrees)
}

// Forest drives one simulation and adapts it to core.Sim.
type Forest struct {
	cfg Config

	grid     *Grid
	ignition Coord
	rng      RandomSource

	generation   int
	initialTrees int
}

// NewForest validates cfg and returns a forest awaiting Reset.
func NewForest(cfg Config) (*Forest, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g, err := NewGrid(cfg.Size)
	if err != nil {
		return nil, err
	}
	return &Forest{cfg: cfg, grid: g}, nil
}

// Name returns the simulation identifier.
func (f *Forest) Name() string { return Name }

// Size reports the grid dimensions.
func (f *Forest) Size() core.Size { return core.Size{W: f.grid.size, H: f.grid.size} }

// Cells exposes the current grid values.
func (f *Forest) Cells() []uint8 { return f.grid.Cells() }

// Grid returns the current snapshot.
func (f *Forest) Grid() *Grid { return f.grid }

// Config returns the active configuration.
func (f *Forest) Config() Config { return f.cfg }

// Generation counts steps taken since the last Reset.
func (f *Forest) Generation() int { return f.generation }

// Ignition returns the cell that was lit by the last Reset.
func (f *Forest) Ignition() Coord { return f.ignition }

// Reset grows a new forest and lights it. A zero seed replays the configured
// seed; any other seed becomes the configured one.
func (f *Forest) Reset(seed int64) error {
	if seed == 0 {
		seed = f.cfg.Seed
	}
	if err := f.ResetWith(core.NewRNG(seed)); err != nil {
		return err
	}
	f.cfg.Seed = seed
	return nil
}

// ResetWith is Reset with a caller-owned random source.
func (f *Forest) ResetWith(rng RandomSource) error {
	g, at, err := Initialize(f.cfg, rng)
	if err != nil {
		return err
	}
	f.rng = rng
	f.grid = g
	f.ignition = at
	f.generation = 0
	// The ignition tree counts as fuel.
	f.initialTrees = g.Count(Tree) + g.Count(Burning)
	return nil
}

// Done reports whether no cell is burning.
func (f *Forest) Done() bool { return !f.grid.HasBurning() }

// Step advances the fire by one generation. It does nothing once Done.
func (f *Forest) Step() {
	if f.rng == nil || f.Done() {
		return
	}
	f.grid = Step(f.grid, f.cfg.Spread, f.rng)
	f.generation++
}

// Outcome reports the state of the current run.
func (f *Forest) Outcome() Outcome {
	census := f.grid.Census()
	return Outcome{
		Steps:        f.generation,
		Ignition:     f.ignition,
		InitialTrees: f.initialTrees,
		Burned:       census.Burned,
		Surviving:    census.Tree,
		Census:       census,
	}
}

// Simulate runs a headless simulation to completion, or until maxSteps steps
// when maxSteps is positive.
func Simulate(cfg Config, rng RandomSource, maxSteps int) (Outcome, error) {
	f, err := NewForest(cfg)
	if err != nil {
		return Outcome{}, err
	}
	if err := f.ResetWith(rng); err != nil {
		return Outcome{}, err
	}
	for !f.Done() {
		if maxSteps > 0 && f.generation >= maxSteps {
			break
		}
		f.Step()
	}
	return f.Outcome(), nil
}

func init() {
	core.Register(Name, func(m map[string]string) (core.Sim, error) {
		c, err := FromMap(m)
		if err != nil {
			return nil, err
		}
		f, err := NewForest(c)
		if err != nil {
			return nil, err
		}
		return f, nil
	})
}
