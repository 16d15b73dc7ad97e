package fire

import (
	"math"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// Config holds the parameters of one fire simulation.
type Config struct {
	Size    int     `json:"size"`
	Density float64 `json:"density"`
	Spread  float64 `json:"spread"`
	Seed    int64   `json:"seed"`

	// IgnitionAttempts bounds random sampling for the ignition point.
	IgnitionAttempts int `json:"ignition_attempts"`
}

// MaxSeed is the largest seed the HUD seed control accepts.
const MaxSeed = math.MaxInt32

// ClockSeed derives a seed in [1, MaxSeed) from t.
func ClockSeed(t time.Time) int64 {
	s := int64(uint64(t.UnixNano()) % uint64(MaxSeed))
	if s == 0 {
		return 1
	}
	return s
}

// DefaultConfig returns a 20×20 forest at 80% density with an 80% spread
// chance.
func DefaultConfig() Config {
	return Config{
		Size:             20,
		Density:          0.8,
		Spread:           0.8,
		Seed:             42,
		IgnitionAttempts: DefaultIgnitionAttempts,
	}
}

// Validate checks each parameter independently and reports the first
// failure.
func (c Config) Validate() error {
	if err := validateSize(c.Size); err != nil {
		return err
	}
	if err := validateProbability("density", c.Density); err != nil {
		return err
	}
	if err := validateProbability("spread probability", c.Spread); err != nil {
		return err
	}
	if c.IgnitionAttempts < 0 {
		return errors.Wrapf(ErrInvalidParameter, "ignition attempts %d must not be negative", c.IgnitionAttempts)
	}
	return nil
}

// FromMap overlays flag-style key/value pairs on DefaultConfig. Recognised
// keys are size, density, spread, seed and ignition_attempts; others are
// ignored. Values that fail to parse are reported, range checks are left to
// Validate.
func FromMap(cfg map[string]string) (Config, error) {
	return Overlay(DefaultConfig(), cfg)
}

// Overlay applies key/value pairs on top of base.
func Overlay(base Config, cfg map[string]string) (Config, error) {
	c := base
	if cfg == nil {
		return c, nil
	}
	if v, ok := cfg["size"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, errors.Wrapf(ErrInvalidParameter, "size %q: %v", v, err)
		}
		c.Size = parsed
	}
	if v, ok := cfg["density"]; ok {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c, errors.Wrapf(ErrInvalidParameter, "density %q: %v", v, err)
		}
		c.Density = parsed
	}
	if v, ok := cfg["spread"]; ok {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c, errors.Wrapf(ErrInvalidParameter, "spread %q: %v", v, err)
		}
		c.Spread = parsed
	}
	if v, ok := cfg["seed"]; ok {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c, errors.Wrapf(ErrInvalidParameter, "seed %q: %v", v, err)
		}
		c.Seed = parsed
	}
	if v, ok := cfg["ignition_attempts"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, errors.Wrapf(ErrInvalidParameter, "ignition_attempts %q: %v", v, err)
		}
		c.IgnitionAttempts = parsed
	}
	return c, nil
}
