//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"strconv"

	"forest-fire/internal/app"
	"forest-fire/internal/core"
	"forest-fire/internal/ctxlog"
	_ "forest-fire/internal/fire"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := app.Loader{Name: "forestfire-gui", Output: os.Stderr, Window: true}.Load(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}
	logger, err := ctxlog.New(os.Stderr, cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (have %v)", cfg.Sim, core.Names())
	}

	sim, err := factory(map[string]string{
		"size":              strconv.Itoa(cfg.Size),
		"density":           strconv.FormatFloat(cfg.Density, 'g', -1, 64),
		"spread":            strconv.FormatFloat(cfg.Spread, 'g', -1, 64),
		"seed":              strconv.FormatInt(cfg.Seed, 10),
		"ignition_attempts": strconv.Itoa(cfg.IgnitionAttempts),
	})
	if err != nil {
		log.Fatal(err)
	}
	if err := sim.Reset(cfg.Seed); err != nil {
		log.Fatal(err)
	}
	logger.Info("window opened", "sim", sim.Name(), "seed", cfg.Seed, "scale", cfg.Scale)

	game := app.New(sim, cfg.Scale, cfg.Seed, logger)

	ebiten.SetWindowTitle("forest fire - " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(game.WindowSize())

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
