//go:build ebiten

package render

import (
	"image/color"

	"sparselife/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image from live-cell snapshots.
type GridPainter struct {
	size core.Size
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a board of the given size.
func NewGridPainter(size core.Size) *GridPainter {
	gp := &GridPainter{size: size, buf: make([]byte, 4*size.W*size.H)}
	gp.img = ebiten.NewImage(size.W, size.H)
	return gp
}

// Blit uploads the provided cells into the painter image and draws it scaled.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []core.LiveCell, off color.Color, scale int) {
	FillAgeRGBA(gp.buf, gp.size, cells, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
