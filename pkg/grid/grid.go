// Package grid implements Conway's Game of Life on a toroidal board.
//
// The board state is a sparse map holding only living cells; a missing entry
// is a dead cell. Every coordinate passed in is wrapped modulo the board
// dimensions, so seeding, queries and neighbour lookups share one topology.
package grid

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"sparselife/pkg/core"
)

// ErrInvalidDimension is returned by New when rows or cols is not positive,
// or when rows*cols does not fit in an int.
var ErrInvalidDimension = errors.New("grid: invalid dimension")

// neighborOffsets lists N, NE, E, SE, S, SW, W, NW as (drow, dcol).
var neighborOffsets = [8][2]int{
	{-1, 0}, {-1, 1}, {0, 1}, {1, 1},
	{1, 0}, {1, -1}, {0, -1}, {-1, -1},
}

// Grid holds the live cells of a rows×cols toroidal board.
//
// A Grid has a single owner. Readers on other goroutines must take a
// LiveCells snapshot before the owner calls Tick again.
type Grid struct {
	rows, cols int
	live       map[int]Cell
}

// New returns an empty rows×cols grid. Cells are keyed by their row-major
// index, so the board may hold at most math.MaxInt cells.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 || rows > math.MaxInt/cols {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, rows, cols)
	}
	return &Grid{rows: rows, cols: cols, live: make(map[int]Cell)}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns the board dimensions with W as columns and H as rows.
func (g *Grid) Size() core.Size { return core.Size{W: g.cols, H: g.rows} }

// Population returns the number of living cells.
func (g *Grid) Population() int { return len(g.live) }

// Wrap reduces c onto the board.
func (g *Grid) Wrap(c core.Coord) core.Coord {
	return core.Coord{Row: mod(c.Row, g.rows), Col: mod(c.Col, g.cols)}
}

func mod(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

func (g *Grid) index(c core.Coord) int {
	c = g.Wrap(c)
	return c.Row*g.cols + c.Col
}

func (g *Grid) coord(idx int) core.Coord {
	return core.Coord{Row: idx / g.cols, Col: idx % g.cols}
}

// SetAlive places a newborn cell at c, resetting its age if it was already alive.
func (g *Grid) SetAlive(c core.Coord) {
	g.live[g.index(c)] = NewCell(Alive)
}

// SetVoid kills the cell at c. It is a no-op on a dead cell.
func (g *Grid) SetVoid(c core.Coord) {
	delete(g.live, g.index(c))
}

// IsAlive reports whether the cell at c is alive.
func (g *Grid) IsAlive(c core.Coord) bool {
	_, ok := g.live[g.index(c)]
	return ok
}

// IsVoid reports whether the cell at c is dead.
func (g *Grid) IsVoid(c core.Coord) bool { return !g.IsAlive(c) }

// Cell returns a copy of the living cell at c.
func (g *Grid) Cell(c core.Coord) (Cell, bool) {
	cell, ok := g.live[g.index(c)]
	return cell, ok
}

// Clear kills every cell.
func (g *Grid) Clear() {
	clear(g.live)
}

// Neighbors returns the eight wrapped neighbours of c in N, NE, E, SE, S, SW,
// W, NW order. On boards narrower than three cells in either direction some
// entries coincide, and c itself may appear.
func (g *Grid) Neighbors(c core.Coord) [8]core.Coord {
	c = g.Wrap(c)
	var out [8]core.Coord
	for i, off := range neighborOffsets {
		out[i] = g.Wrap(core.Coord{Row: c.Row + off[0], Col: c.Col + off[1]})
	}
	return out
}

// CountLiveNeighbors counts the living cells among Neighbors(c). A cell that
// occupies several neighbour slots is counted once per slot.
func (g *Grid) CountLiveNeighbors(c core.Coord) int {
	n := 0
	for _, nb := range g.Neighbors(c) {
		if _, ok := g.live[nb.Row*g.cols+nb.Col]; ok {
			n++
		}
	}
	return n
}

// LiveCells returns a row-major snapshot of the living cells.
func (g *Grid) LiveCells() []core.LiveCell {
	idxs := make([]int, 0, len(g.live))
	for idx := range g.live {
		idxs = append(idxs, idx)
	}
	slices.Sort(idxs)
	out := make([]core.LiveCell, len(idxs))
	for i, idx := range idxs {
		out[i] = core.LiveCell{Coord: g.coord(idx), Age: g.live[idx].Age()}
	}
	return out
}
