package core

// Point addresses a grid cell by row and column.
type Point struct {
	Row, Col int
}

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
// Bounds are fixed at construction; there is no wrapping.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a zeroed grid with the given dimensions. Callers are
// expected to validate dimensions; non-positive values yield an empty grid.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 || h <= 0 {
		return &ByteGrid{}
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for (row, col).
func (g *ByteGrid) Index(row, col int) int { return row*g.W + col }

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *ByteGrid) InBounds(row, col int) bool {
	return row >= 0 && row < g.H && col >= 0 && col < g.W
}

// Get returns the value at (row, col). Out-of-bounds reads return zero.
func (g *ByteGrid) Get(row, col int) uint8 {
	if !g.InBounds(row, col) {
		return 0
	}
	return g.data[g.Index(row, col)]
}

// Set stores v at (row, col). Out-of-bounds writes are ignored.
func (g *ByteGrid) Set(row, col int, v uint8) {
	if !g.InBounds(row, col) {
		return
	}
	g.data[g.Index(row, col)] = v
}

// Clone returns a deep copy of the grid.
func (g *ByteGrid) Clone() *ByteGrid {
	out := &ByteGrid{W: g.W, H: g.H, data: make([]uint8, len(g.data))}
	copy(out.data, g.data)
	return out
}

// Equal reports whether both grids have the same shape and contents.
func (g *ByteGrid) Equal(o *ByteGrid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.W != o.W || g.H != o.H || len(g.data) != len(o.data) {
		return false
	}
	for i := range g.data {
		if g.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

// Contains reports whether any cell holds v.
func (g *ByteGrid) Contains(v uint8) bool {
	for _, c := range g.data {
		if c == v {
			return true
		}
	}
	return false
}

// Count returns how many cells hold v.
func (g *ByteGrid) Count(v uint8) int {
	n := 0
	for _, c := range g.data {
		if c == v {
			n++
		}
	}
	return n
}

// Fill sets every cell to v.
func (g *ByteGrid) Fill(v uint8) {
	for i := range g.data {
		g.data[i] = v
	}
}

// vonNeumann lists the 4-connected offsets in the order down, up, left, right.
var vonNeumann = [4]Point{
	{Row: 1, Col: 0},
	{Row: -1, Col: 0},
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
}

// Neighbors4 returns the in-bounds 4-connected neighbours of (row, col) on a
// w×h grid in the fixed order down, up, left, right. Out-of-bounds
// neighbours are omitted, never wrapped.
func Neighbors4(row, col, w, h int) []Point {
	out := make([]Point, 0, len(vonNeumann))
	for _, d := range vonNeumann {
		r, c := row+d.Row, col+d.Col
		if r < 0 || r >= h || c < 0 || c >= w {
			continue
		}
		out = append(out, Point{Row: r, Col: c})
	}
	return out
}
