package grid

import (
	"math"
	"strings"
)

const (
	aliveGlyph = '#'
	voidGlyph  = '.'
)

// Dump renders the board row-major, one glyph per cell: '#' alive, '.' dead.
// Rows are separated by '\n' with no trailing newline.
func (g *Grid) Dump() string {
	var b strings.Builder
	if g.cols < math.MaxInt && g.rows <= math.MaxInt/(g.cols+1) {
		b.Grow(g.rows * (g.cols + 1))
	}
	for row := 0; row < g.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < g.cols; col++ {
			if _, ok := g.live[row*g.cols+col]; ok {
				b.WriteByte(aliveGlyph)
			} else {
				b.WriteByte(voidGlyph)
			}
		}
	}
	return b.String()
}

func (g *Grid) String() string { return g.Dump() }
