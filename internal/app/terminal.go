package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"forest-fire/internal/core"
	"forest-fire/internal/ctxlog"
	"forest-fire/internal/fire"
	"forest-fire/internal/render"

	"github.com/gookit/color"
)

// FrameRenderer displays one snapshot.
type FrameRenderer interface {
	Render(render.Frame) error
}

var asciiStyles = []color.Color{
	fire.Empty:   color.FgDefault,
	fire.Tree:    color.FgGreen,
	fire.Burning: color.FgLightRed,
	fire.Burned:  color.FgGray,
}

// Runner owns the terminal loop: render, step, pause, until no cell burns.
type Runner struct {
	Forest   *fire.Forest
	Renderer FrameRenderer
	Pacer    *core.Pacer
	MaxSteps int
}

// NewRunner builds a lit forest and a terminal renderer writing to out.
func NewRunner(cfg *Config, out io.Writer) (*Runner, error) {
	forest, err := fire.NewForest(cfg.Config)
	if err != nil {
		return nil, err
	}
	if err := forest.Reset(cfg.Seed); err != nil {
		return nil, err
	}
	glyphs, err := fire.GlyphSet(cfg.Glyphs)
	if err != nil {
		return nil, err
	}
	var opts []render.TerminalOption
	if cfg.Color && cfg.Glyphs == "ascii" {
		opts = append(opts, render.WithStyles(asciiStyles))
	}
	if !cfg.Clear {
		opts = append(opts, render.WithoutClear())
	}
	return &Runner{
		Forest:   forest,
		Renderer: render.NewTerminal(out, glyphs.Table(), opts...),
		Pacer:    core.NewPacer(time.Duration(cfg.Delay)),
		MaxSteps: cfg.MaxSteps,
	}, nil
}

// Run drives the simulation until the fire is out, the step limit is hit or
// ctx is cancelled. The outcome reflects the last state reached; on
// cancellation it is returned alongside ctx.Err().
func (r *Runner) Run(ctx context.Context) (fire.Outcome, error) {
	log := ctxlog.FromContext(ctx)
	f := r.Forest
	cfg := f.Config()
	log.Info("fire started",
		"size", cfg.Size,
		"density", cfg.Density,
		"spread", cfg.Spread,
		"seed", cfg.Seed,
		"ignition", fmt.Sprintf("(%d,%d)", f.Ignition().Row, f.Ignition().Col),
	)

	for !f.Done() {
		if r.MaxSteps > 0 && f.Generation() >= r.MaxSteps {
			log.Warn("step limit reached", "max_steps", r.MaxSteps)
			break
		}
		if err := r.draw(); err != nil {
			return f.Outcome(), err
		}
		f.Step()
		census := f.Grid().Census()
		log.Debug("step",
			"generation", f.Generation(),
			"trees", census.Tree,
			"burning", census.Burning,
			"burned", census.Burned,
		)
		if err := r.Pacer.Wait(ctx); err != nil {
			return f.Outcome(), err
		}
	}
	if err := r.draw(); err != nil {
		return f.Outcome(), err
	}

	out := f.Outcome()
	msg := "fire out"
	if !f.Done() {
		msg = "fire stopped while burning"
	}
	log.Info(msg,
		"steps", out.Steps,
		"initial_trees", out.InitialTrees,
		"burned", out.Burned,
		"surviving", out.Surviving,
		"burned_fraction", out.BurnedFraction(),
	)
	return out, nil
}

func (r *Runner) draw() error {
	f := r.Forest
	census := f.Grid().Census()
	return r.Renderer.Render(render.Frame{
		Cells: f.Cells(),
		Width: f.Size().W,
		Caption: fmt.Sprintf("generation %d | trees %d | burning %d | burned %d",
			f.Generation(), census.Tree, census.Burning, census.Burned),
	})
}
