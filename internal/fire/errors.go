package fire

import (
	"math"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidParameter reports a probability outside [0,1], a non-positive
	// grid size or an otherwise unusable argument.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrNoFuelAvailable reports that ignition found no Tree cell.
	ErrNoFuelAvailable = errors.New("no fuel available")
)

func validateProbability(name string, p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return errors.Wrapf(ErrInvalidParameter, "%s %v outside [0,1]", name, p)
	}
	return nil
}

func validateSize(size int) error {
	if size <= 0 {
		return errors.Wrapf(ErrInvalidParameter, "grid size %d must be positive", size)
	}
	return nil
}
