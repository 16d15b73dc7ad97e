// Package fire implements a stochastic forest-fire cellular automaton on a
// square grid: random forest generation, ignition and the copy-on-step
// spread rule.
package fire

import "fmt"

// Cell enumerates the fire state of one grid position.
type Cell uint8

const (
	Empty Cell = iota
	Tree
	Burning
	Burned
)

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Tree:
		return "tree"
	case Burning:
		return "burning"
	case Burned:
		return "burned"
	default:
		return fmt.Sprintf("cell(%d)", uint8(c))
	}
}

// Valid reports whether c is one of the four defined states.
func (c Cell) Valid() bool { return c <= Burned }
