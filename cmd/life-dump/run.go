package main

import (
	"fmt"
	"io"
	"log"

	lifesim "sparselife/pkg/sims/life"
)

// run writes the starting board and then every dump generation up to
// generations, each preceded by a header line.
func run(w io.Writer, sim *lifesim.Sim, generations, every int) error {
	if every <= 0 {
		every = 1
	}
	if err := dump(w, sim); err != nil {
		return err
	}
	for i := 0; i < generations; i++ {
		sim.Step()
		if sim.Generation()%uint64(every) == 0 || i == generations-1 {
			if err := dump(w, sim); err != nil {
				return err
			}
		}
	}
	return nil
}

func dump(w io.Writer, sim *lifesim.Sim) error {
	population := sim.Grid().Population()
	log.Printf("generation %d: %d cells", sim.Generation(), population)
	if _, err := fmt.Fprintf(w, "# generation %d (%d cells)\n%s\n", sim.Generation(), population, sim.Grid().Dump()); err != nil {
		return fmt.Errorf("write dump: %w", err)
	}
	return nil
}
