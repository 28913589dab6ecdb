// Package life adapts the sparse Game of Life grid to the core.Sim driver
// contract: seeding, generation counting and statistics for display.
package life

import (
	"fmt"

	"sparselife/pkg/core"
	"sparselife/pkg/grid"
)

// Sim runs Conway's Game of Life on a toroidal board.
type Sim struct {
	cfg        Config
	board      *grid.Grid
	generation uint64
}

// New returns a Sim for cfg. The board starts empty until Reset is called.
func New(cfg Config) (*Sim, error) {
	if err := validatePattern(cfg.Pattern); err != nil {
		return nil, err
	}
	board, err := grid.New(cfg.Rows, cfg.Cols)
	if err != nil {
		return nil, fmt.Errorf("new life sim: %w", err)
	}
	return &Sim{cfg: cfg, board: board}, nil
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "life" }

// Size returns the grid dimensions.
func (s *Sim) Size() core.Size { return s.board.Size() }

// Grid exposes the underlying board for direct seeding.
func (s *Sim) Grid() *grid.Grid { return s.board }

// Generation returns the number of steps since the last Reset.
func (s *Sim) Generation() uint64 { return s.generation }

// LiveCells returns a snapshot of the living cells.
func (s *Sim) LiveCells() []core.LiveCell { return s.board.LiveCells() }

// Reset clears the board and stamps the configured pattern. Random regions
// are derived from seed, so equal seeds give equal boards.
func (s *Sim) Reset(seed int64) {
	s.board.Clear()
	s.generation = 0
	stamp(s.cfg.Pattern, s.board.Size(), s.cfg.Density, seed, s.board.SetAlive)
}

// Step advances the simulation by one generation.
func (s *Sim) Step() {
	s.board.Tick()
	s.generation++
}

// Parameters reports the board statistics shown by the HUD.
func (s *Sim) Parameters() core.ParameterSnapshot {
	var oldest uint64
	for _, c := range s.board.LiveCells() {
		oldest = max(oldest, c.Age)
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Run",
			Params: []core.Parameter{
				core.Uint64Param("generation", "Generation", s.generation),
				core.IntParam("population", "Cells", s.board.Population()),
				core.Uint64Param("oldest", "Oldest", oldest),
			},
		},
		{
			Name: "Board",
			Params: []core.Parameter{
				core.IntParam("rows", "Rows", s.board.Rows()),
				core.IntParam("cols", "Cols", s.board.Cols()),
				{Key: "pattern", Label: "Pattern", Value: s.cfg.Pattern},
			},
		},
	}}
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		return New(FromMap(cfg))
	})
}
