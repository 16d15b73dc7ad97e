//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"forest-fire/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type riskProvider interface {
	RiskMask() []float32
}

type ignitionProvider interface {
	Ignition() core.Point
}

var (
	riskTint     = color.RGBA{R: 255, G: 150, B: 40}
	ignitionTint = color.RGBA{R: 80, G: 200, B: 255, A: 220}
)

// Overlay draws optional visuals on top of the grid. Key 1 toggles the
// next-step ignition risk, key 2 the ignition marker.
type Overlay struct {
	sim          core.Sim
	scale        int
	showRisk     bool
	showIgnition bool

	maskImg *ebiten.Image
	maskBuf []byte
	pixel   *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale, showIgnition: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update reads the toggle keys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showRisk = !o.showRisk
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showIgnition = !o.showIgnition
	}
}

// Draw renders the enabled layers onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.sim.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	if o.showRisk {
		if p, ok := o.sim.(riskProvider); ok {
			o.drawMask(screen, p.RiskMask(), size)
		}
	}
	if o.showIgnition {
		if p, ok := o.sim.(ignitionProvider); ok {
			o.drawMarker(screen, p.Ignition())
		}
	}
}

func (o *Overlay) drawMask(screen *ebiten.Image, mask []float32, size core.Size) {
	total := size.W * size.H
	if len(mask) != total {
		return
	}
	if o.maskImg == nil || o.maskImg.Bounds().Dx() != size.W || o.maskImg.Bounds().Dy() != size.H {
		o.maskImg = ebiten.NewImage(size.W, size.H)
		o.maskBuf = make([]byte, 4*total)
	}

	const maxAlpha = 170.0
	for i, v := range mask {
		base := i * 4
		intensity := clamp01(float64(v))
		if intensity == 0 {
			o.maskBuf[base+0] = 0
			o.maskBuf[base+1] = 0
			o.maskBuf[base+2] = 0
			o.maskBuf[base+3] = 0
			continue
		}
		// Premultiplied alpha.
		a := math.Round(maxAlpha * math.Sqrt(intensity))
		o.maskBuf[base+0] = uint8(float64(riskTint.R) * a / 255)
		o.maskBuf[base+1] = uint8(float64(riskTint.G) * a / 255)
		o.maskBuf[base+2] = uint8(float64(riskTint.B) * a / 255)
		o.maskBuf[base+3] = uint8(a)
	}
	o.maskImg.WritePixels(o.maskBuf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.cellScale()), float64(o.cellScale()))
	screen.DrawImage(o.maskImg, op)
}

// drawMarker outlines the ignition cell.
func (o *Overlay) drawMarker(screen *ebiten.Image, p core.Point) {
	s := float64(o.cellScale())
	x, y := float64(p.Col)*s, float64(p.Row)*s
	t := math.Max(1, s/8)
	o.drawRect(screen, x, y, s, t)
	o.drawRect(screen, x, y+s-t, s, t)
	o.drawRect(screen, x, y, t, s)
	o.drawRect(screen, x+s-t, y, t, s)
}

func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(ignitionTint)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) cellScale() int {
	if o.scale <= 0 {
		return 1
	}
	return o.scale
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
