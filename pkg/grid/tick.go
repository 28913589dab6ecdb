package grid

import "sparselife/pkg/core"

// Tick advances the board by one generation under B3/S23.
//
// Every rule reads the pre-tick map; the next generation is accumulated in a
// fresh map that replaces the old one only once it is complete. Only living
// cells and their neighbours are examined, and each dead neighbour is
// evaluated at most once.
func (g *Grid) Tick() {
	g.live = g.next(g.CountLiveNeighbors)
}

// next builds the generation after g.live, asking count for the neighbour
// total of every coordinate it evaluates.
func (g *Grid) next(count func(core.Coord) int) map[int]Cell {
	next := make(map[int]Cell, len(g.live))
	visited := make(map[int]struct{}, len(g.live)*4)
	for idx := range g.live {
		visited[idx] = struct{}{}
	}

	for idx, cell := range g.live {
		c := g.coord(idx)
		switch count(c) {
		case 2, 3:
			cell.AdvanceAge()
			next[idx] = cell
		}

		for _, nb := range g.Neighbors(c) {
			nidx := nb.Row*g.cols + nb.Col
			if _, seen := visited[nidx]; seen {
				continue
			}
			visited[nidx] = struct{}{}
			if count(nb) == 3 {
				next[nidx] = NewCell(Alive)
			}
		}
	}

	return next
}
