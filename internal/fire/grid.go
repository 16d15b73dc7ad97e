package fire

import (
	"forest-fire/internal/core"

	"github.com/pkg/errors"
)

// Coord addresses a cell as (Row, Col), both in [0, size).
type Coord = core.Point

// Grid is a square snapshot of cell states. Its size is fixed at creation.
type Grid struct {
	size  int
	cells *core.ByteGrid
}

// Census counts cells per state.
type Census struct {
	Empty   int
	Tree    int
	Burning int
	Burned  int
}

// NewGrid returns a size×size grid with every cell Empty.
func NewGrid(size int) (*Grid, error) {
	if err := validateSize(size); err != nil {
		return nil, err
	}
	return &Grid{size: size, cells: core.NewByteGrid(size, size)}, nil
}

// FromRows builds a grid from a square matrix of cells.
func FromRows(rows [][]Cell) (*Grid, error) {
	g, err := NewGrid(len(rows))
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		if len(row) != g.size {
			return nil, errors.Wrapf(ErrInvalidParameter, "row %d has %d cells, want %d", r, len(row), g.size)
		}
		for c, cell := range row {
			if !cell.Valid() {
				return nil, errors.Wrapf(ErrInvalidParameter, "cell (%d,%d) holds %v", r, c, cell)
			}
			g.cells.Set(r, c, uint8(cell))
		}
	}
	return g, nil
}

// NewRandom fills a size×size grid by an independent Bernoulli(density) trial
// per cell: Tree on success, Empty otherwise.
func NewRandom(size int, density float64, rng RandomSource) (*Grid, error) {
	if err := validateProbability("density", density); err != nil {
		return nil, err
	}
	g, err := NewGrid(size)
	if err != nil {
		return nil, err
	}
	cells := g.cells.Cells()
	for i := range cells {
		if rng.Bernoulli(density) {
			cells[i] = uint8(Tree)
		}
	}
	return g, nil
}

// Size returns the grid dimension N.
func (g *Grid) Size() int { return g.size }

// At returns the state at c. Out-of-bounds coordinates read as Empty.
func (g *Grid) At(c Coord) Cell { return Cell(g.cells.Get(c.Row, c.Col)) }

// Set stores state at c. Out-of-bounds writes are ignored.
func (g *Grid) Set(c Coord, state Cell) { g.cells.Set(c.Row, c.Col, uint8(state)) }

// InBounds reports whether c lies on the grid.
func (g *Grid) InBounds(c Coord) bool { return g.cells.InBounds(c.Row, c.Col) }

// Cells exposes the row-major backing store for renderers. Callers must not
// write to it.
func (g *Grid) Cells() []uint8 { return g.cells.Cells() }

// Clone returns an independent copy.
func (g *Grid) Clone() *Grid {
	return &Grid{size: g.size, cells: g.cells.Clone()}
}

// Equal reports whether both grids hold the same states.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	return g.size == o.size && g.cells.Equal(o.cells)
}

// HasBurning reports whether at least one cell is Burning.
func (g *Grid) HasBurning() bool { return g.cells.Contains(uint8(Burning)) }

// Count returns the number of cells in the given state.
func (g *Grid) Count(state Cell) int { return g.cells.Count(uint8(state)) }

// Census tallies every state in one pass.
func (g *Grid) Census() Census {
	var out Census
	for _, v := range g.cells.Cells() {
		switch Cell(v) {
		case Empty:
			out.Empty++
		case Tree:
			out.Tree++
		case Burning:
			out.Burning++
		case Burned:
			out.Burned++
		}
	}
	return out
}

// Rows copies the grid into a matrix, mostly for tests and diagnostics.
func (g *Grid) Rows() [][]Cell {
	rows := make([][]Cell, g.size)
	for r := range rows {
		rows[r] = make([]Cell, g.size)
		for c := range rows[r] {
			rows[r][c] = Cell(g.cells.Get(r, c))
		}
	}
	return rows
}

// Neighbors4 returns the in-bounds 4-connected neighbours of (row, col) on a
// size×size grid in the order down, up, left, right.
func Neighbors4(row, col, size int) []Coord {
	return core.Neighbors4(row, col, size, size)
}
