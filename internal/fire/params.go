package fire

import (
	"math"
	"strconv"

	"forest-fire/internal/core"
)

// Parameters publishes the configuration and live counters for the HUD.
func (f *Forest) Parameters() core.ParameterSnapshot {
	census := f.grid.Census()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Forest",
			Params: []core.Parameter{
				intParam("size", "Size", f.cfg.Size),
				int64Param("seed", "Seed", f.cfg.Seed),
				floatParam("density", "Density", f.cfg.Density),
			},
		},
		{
			Name: "Fire",
			Params: []core.Parameter{
				floatParam("spread", "Spread chance", f.cfg.Spread),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				intParam("generation", "Generation", f.generation),
				intParam("trees", "Trees", census.Tree),
				intParam("burning", "Burning", census.Burning),
				intParam("burned", "Burned", census.Burned),
			},
		},
	}}
}

// ParameterControls lists the values the HUD may adjust.
func (f *Forest) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "density", Label: "Density", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1},
		{Key: "spread", Label: "Spread chance", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1},
		{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: MaxSeed},
	}
}

// SetFloatParameter clamps and applies density or spread. Spread applies from
// the next step, density from the next Reset.
func (f *Forest) SetFloatParameter(key string, value float64) bool {
	if math.IsNaN(value) {
		return false
	}
	value = math.Min(1, math.Max(0, value))
	switch key {
	case "density":
		f.cfg.Density = value
	case "spread":
		f.cfg.Spread = value
	default:
		return false
	}
	return true
}

// SetIntParameter updates the seed used by Reset(0).
func (f *Forest) SetIntParameter(key string, value int) bool {
	if key != "seed" || value < 0 || value > MaxSeed {
		return false
	}
	f.cfg.Seed = int64(value)
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.FormatInt(value, 10)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}
