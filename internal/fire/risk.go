package fire

import "math"

// IgnitionRisk returns, for every cell in row-major order, the probability
// that it catches fire on the next Step: 1-(1-spread)^k for a Tree with k
// burning neighbours, 0 for everything else.
func IgnitionRisk(g *Grid, spread float64) []float32 {
	n := g.Size()
	risk := make([]float32, n*n)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if g.At(Coord{Row: row, Col: col}) != Tree {
				continue
			}
			k := 0
			for _, nb := range Neighbors4(row, col, n) {
				if g.At(nb) == Burning {
					k++
				}
			}
			if k > 0 {
				risk[row*n+col] = float32(1 - math.Pow(1-spread, float64(k)))
			}
		}
	}
	return risk
}

// RiskMask is IgnitionRisk for the forest's current grid and spread.
func (f *Forest) RiskMask() []float32 {
	return IgnitionRisk(f.grid, f.cfg.Spread)
}
