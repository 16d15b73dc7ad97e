package app

import (
	"strconv"

	"forest-fire/internal/core"
)

// currentSeed returns the seed sim publishes in its parameter snapshot, or
// fallback when it publishes none.
func currentSeed(sim core.Sim, fallback int64) int64 {
	p, ok := sim.(core.ParameterProvider)
	if !ok {
		return fallback
	}
	param, ok := p.Parameters().Lookup("seed")
	if !ok {
		return fallback
	}
	seed, err := strconv.ParseInt(param.Value, 10, 64)
	if err != nil {
		return fallback
	}
	return seed
}
