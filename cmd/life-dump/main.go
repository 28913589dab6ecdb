package main

import (
	"flag"
	"log"
	"os"

	"sparselife/internal/app"
	lifesim "sparselife/pkg/sims/life"
)

func main() {
	cfg := app.NewConfig()
	cfg.Rows, cfg.Cols = 24, 64
	if err := cfg.LoadEnv(); err != nil {
		log.Fatal(err)
	}
	cfg.Bind(flag.CommandLine)
	generations := flag.Int("generations", 10, "generations to run")
	every := flag.Int("every", 1, "print a dump every N generations")
	flag.Parse()

	sim, err := lifesim.New(lifesim.FromMap(cfg.SimParams()))
	if err != nil {
		log.Fatalf("create sim: %v", err)
	}
	sim.Reset(cfg.Seed)

	if err := run(os.Stdout, sim, *generations, *every); err != nil {
		log.Fatal(err)
	}
}
