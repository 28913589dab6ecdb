package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"

	"sparselife/internal/app"
	"sparselife/internal/term"
	"sparselife/pkg/core"
	_ "sparselife/pkg/sims/life"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Rows, cfg.Cols = 0, 0
	if err := cfg.LoadEnv(); err != nil {
		log.Fatal(err)
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("open terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init terminal: %v", err)
	}

	// Without explicit dimensions the board fills the terminal, minus the
	// status line.
	w, h := screen.Size()
	if cfg.Rows <= 0 {
		cfg.Rows = max(h-1, 1)
	}
	if cfg.Cols <= 0 {
		cfg.Cols = max(w, 1)
	}

	sim, err := factory(cfg.SimParams())
	if err != nil {
		screen.Fini()
		log.Fatalf("create sim: %v", err)
	}
	sim.Reset(cfg.Seed)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = term.New(screen, sim, cfg.TPS, cfg.Seed).Run(ctx)
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
