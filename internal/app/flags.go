package app

import (
	"encoding/json"
	"flag"
	"io"
	"os"
	"strings"
	"time"

	"forest-fire/internal/fire"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Duration is a time.Duration that reads from JSON as a string like "300ms".
type Duration time.Duration

// UnmarshalJSON parses a Go duration string.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return errors.Wrap(err, "duration must be a string such as \"300ms\"")
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return errors.Wrapf(err, "duration %q", s)
	}
	*d = Duration(parsed)
	return nil
}

// Config represents the command-line parameters for the application.
type Config struct {
	fire.Config

	Delay    Duration `json:"delay"`
	Glyphs   string   `json:"glyphs"`
	Color    bool     `json:"color"`
	Clear    bool     `json:"clear"`
	MaxSteps int      `json:"max_steps"`

	// Window settings, bound only for the GUI build.
	Sim   string `json:"sim"`
	Scale int    `json:"scale"`
	TPS   int    `json:"tps"`

	LogLevel  string `json:"log_level"`
	LogFormat string `json:"log_format"`

	ConfigFile string `json:"-"`
	EnvFile    string `json:"-"`
}

// NewConfig returns a Config populated with defaults. A zero seed is
// replaced by a clock-derived one when loading.
func NewConfig() *Config {
	fc := fire.DefaultConfig()
	fc.Seed = 0
	return &Config{
		Config:    fc,
		Delay:     Duration(300 * time.Millisecond),
		Glyphs:    "emoji",
		Color:     true,
		Clear:     true,
		Sim:       fire.Name,
		Scale:     16,
		TPS:       8,
		LogLevel:  "info",
		LogFormat: "text",
		EnvFile:   ".env",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Size, "size", c.Size, "grid side length")
	fs.Float64Var(&c.Density, "density", c.Density, "initial tree density in [0,1]")
	fs.Float64Var(&c.Spread, "spread", c.Spread, "fire spread probability in [0,1]")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 picks one from the clock)")
	fs.IntVar(&c.IgnitionAttempts, "ignition-attempts", c.IgnitionAttempts, "random samples before scanning for an ignition tree")
	fs.DurationVar((*time.Duration)(&c.Delay), "delay", time.Duration(c.Delay), "pause between frames")
	fs.StringVar(&c.Glyphs, "glyphs", c.Glyphs, "glyph set: "+strings.Join(fire.GlyphSetNames(), ", "))
	fs.BoolVar(&c.Color, "color", c.Color, "colour ascii glyphs")
	fs.BoolVar(&c.Clear, "clear", c.Clear, "redraw in place instead of scrolling")
	fs.IntVar(&c.MaxSteps, "max-steps", c.MaxSteps, "stop after this many steps (0 = until the fire is out)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn or error")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "text or json")
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "JSON config file")
	fs.StringVar(&c.EnvFile, "env-file", c.EnvFile, "dotenv file with FOREST_* variables")
}

// BindWindow attaches the GUI-only settings.
func (c *Config) BindWindow(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
}

// Validate checks the fire parameters and the presentation settings.
func (c *Config) Validate() error {
	if err := c.Config.Validate(); err != nil {
		return err
	}
	if _, err := fire.GlyphSet(c.Glyphs); err != nil {
		return err
	}
	if c.Delay < 0 {
		return errors.Wrapf(fire.ErrInvalidParameter, "delay %s must not be negative", time.Duration(c.Delay))
	}
	if c.MaxSteps < 0 {
		return errors.Wrapf(fire.ErrInvalidParameter, "max steps %d must not be negative", c.MaxSteps)
	}
	if c.Scale <= 0 || c.TPS <= 0 {
		return errors.Wrapf(fire.ErrInvalidParameter, "scale %d and tps %d must be positive", c.Scale, c.TPS)
	}
	return nil
}

// LoadFile overlays a JSON config file on c.
func LoadFile(filename string, c *Config) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to read file: %s", filename)
	}
	if err := json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to unmarshal data from file: %s", filename)
	}
	return nil
}

// envKeys maps FOREST_* variables to fire.FromMap keys.
var envKeys = map[string]string{
	"FOREST_SIZE":    "size",
	"FOREST_DENSITY": "density",
	"FOREST_SPREAD":  "spread",
	"FOREST_SEED":    "seed",
}

// ApplyEnv overlays FOREST_* variables found by lookup on c.
func ApplyEnv(c *Config, lookup func(string) (string, bool)) error {
	m := map[string]string{}
	for env, key := range envKeys {
		if v, ok := lookup(env); ok {
			m[key] = strings.TrimSpace(v)
		}
	}
	fc, err := fire.Overlay(c.Config, m)
	if err != nil {
		return err
	}
	c.Config = fc
	if v, ok := lookup("FOREST_DELAY"); ok {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return errors.Wrapf(fire.ErrInvalidParameter, "FOREST_DELAY %q: %v", v, err)
		}
		c.Delay = Duration(d)
	}
	if v, ok := lookup("FOREST_GLYPHS"); ok {
		c.Glyphs = strings.TrimSpace(v)
	}
	return nil
}

// ExitError carries the process exit code for a failure.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }

// Unwrap exposes the underlying error.
func (e *ExitError) Unwrap() error { return e.Err }

// Loader resolves a Config from defaults, a JSON file, a dotenv file plus the
// process environment, and flags, in increasing precedence.
type Loader struct {
	Name   string
	Output io.Writer
	Window bool

	// LookupEnv defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
	// Now seeds runs started with seed 0; defaults to time.Now.
	Now func() time.Time
}

// Load parses args. flag.ErrHelp is returned unchanged when -h is given and
// malformed flags come back as an *ExitError with code 2.
func (l Loader) Load(args []string) (*Config, error) {
	lookup := l.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	now := l.Now
	if now == nil {
		now = time.Now
	}

	// The first pass only discovers the file locations.
	probe := NewConfig()
	if err := l.flagSet(probe, io.Discard).Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			l.flagSet(NewConfig(), l.Output).Usage()
			return nil, err
		}
		return nil, &ExitError{Code: 2, Err: err}
	}

	cfg := NewConfig()
	if probe.ConfigFile != "" {
		if err := LoadFile(probe.ConfigFile, cfg); err != nil {
			return nil, err
		}
	}

	dotenv, err := readDotenv(probe.EnvFile, l.explicit(args, "env-file"))
	if err != nil {
		return nil, err
	}
	err = ApplyEnv(cfg, func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	})
	if err != nil {
		return nil, err
	}

	if err := l.flagSet(cfg, io.Discard).Parse(args); err != nil {
		return nil, &ExitError{Code: 2, Err: err}
	}
	if cfg.Seed == 0 {
		cfg.Seed = fire.ClockSeed(now())
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (l Loader) flagSet(c *Config, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(l.Name, flag.ContinueOnError)
	if out == nil {
		out = io.Discard
	}
	fs.SetOutput(out)
	c.Bind(fs)
	if l.Window {
		c.BindWindow(fs)
	}
	return fs
}

// explicit reports whether args set the named flag.
func (l Loader) explicit(args []string, name string) bool {
	fs := l.flagSet(NewConfig(), io.Discard)
	if err := fs.Parse(args); err != nil {
		return false
	}
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// readDotenv reads path without touching the process environment. A missing
// default file is fine; a missing file the user asked for is not.
func readDotenv(path string, required bool) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	vals, err := godotenv.Read(path)
	if err != nil {
		if !required && errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "[readDotenv] failed to read env file: %s", path)
	}
	return vals, nil
}
