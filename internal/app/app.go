//go:build ebiten

package app

import (
	"image/color"
	"log/slog"
	"time"

	"forest-fire/internal/core"
	"forest-fire/internal/fire"
	"forest-fire/internal/render"
	"forest-fire/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// hudWidth is the pixel width of the parameter panel.
const hudWidth = 220

var fallbackPalette = []color.RGBA{
	{A: 255},
	{R: 255, G: 255, B: 255, A: 255},
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	log     *slog.Logger

	palette []color.RGBA

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
	finished bool
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale int, seed int64, log *slog.Logger) *Game {
	size := sim.Size()
	palette := fallbackPalette
	if p, ok := sim.(core.Paletted); ok {
		palette = p.Palette()
	}
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(sim, hudWidth),
		overlay: ui.NewOverlay(sim, scale),
		log:     log,
		palette: palette,
		scale:   scale,
		seed:    seed,
	}
}

// Reset reinitializes the simulation state with the provided seed. A zero
// seed replays whatever seed the sim currently reports, which picks up edits
// made in the HUD.
func (g *Game) Reset(seed int64) {
	if seed == 0 {
		seed = currentSeed(g.sim, g.seed)
	}
	g.seed = seed
	g.tickOnce = false
	g.finished = false
	if err := g.sim.Reset(seed); err != nil {
		g.log.Error("reset failed", "seed", seed, "err", err)
		return
	}
	g.log.Info("reset", "seed", seed)
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(fire.ClockSeed(time.Now()))
	}

	g.hud.Update(g.sim.Size().W * g.scale)
	g.overlay.Update()

	if (!g.paused) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	if f, ok := g.sim.(core.Finisher); ok && f.Done() && !g.finished {
		g.finished = true
		g.log.Info("fire out", "seed", g.seed)
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.palette, g.scale)
	g.overlay.Draw(screen)
	s := g.sim.Size()
	g.hud.Draw(screen, s.W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + hudWidth, s.H * g.scale
}

// WindowSize reports the initial window dimensions.
func (g *Game) WindowSize() (int, int) {
	return g.Layout(0, 0)
}
