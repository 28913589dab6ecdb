//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"sparselife/internal/render"
	"sparselife/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// legendAges are the first ages of each shade step shown in the legend.
var legendAges = []uint64{0, 10, 20, 40, 60, 80, 100, 120}

// Overlay draws an age-shade legend over the board, toggled with the 1 key.
type Overlay struct {
	sim        core.Sim
	showLegend bool
	pixel      *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim) *Overlay {
	o := &Overlay{sim: sim}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the legend.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showLegend = !o.showLegend
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showLegend {
		return
	}
	if size := o.sim.Size(); size.W <= 0 || size.H <= 0 {
		return
	}
	const swatch = 12
	face := basicfont.Face7x13
	x, y := 8, 8
	for _, age := range legendAges {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(swatch, swatch)
		op.GeoM.Translate(float64(x), float64(y))
		op.ColorScale.ScaleWithColor(render.AgeShade(age))
		screen.DrawImage(o.pixel, op)
		text.Draw(screen, fmt.Sprintf("age %d+", age), face, x+swatch+6, y+swatch-2, color.RGBA{R: 255, G: 200, B: 80, A: 255})
		y += swatch + 4
	}
}
