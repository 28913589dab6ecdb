package render

import (
	"image/color"

	"sparselife/pkg/core"
)

// FillAgeRGBA paints a size.W×size.H RGBA buffer: every pixel starts as off,
// then each live cell is drawn with its AgeShade. Cells outside the board are
// skipped.
func FillAgeRGBA(buf []byte, size core.Size, cells []core.LiveCell, off color.Color) {
	rOff, gOff, bOff, aOff := off.RGBA()
	total := size.W * size.H
	for i := 0; i < total; i++ {
		base := i * 4
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
	for _, c := range cells {
		if c.Row < 0 || c.Row >= size.H || c.Col < 0 || c.Col >= size.W {
			continue
		}
		shade := AgeShade(c.Age)
		base := (c.Row*size.W + c.Col) * 4
		buf[base+0] = shade.R
		buf[base+1] = shade.G
		buf[base+2] = shade.B
		buf[base+3] = shade.A
	}
}
