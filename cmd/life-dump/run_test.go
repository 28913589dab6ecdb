package main

import (
	"bytes"
	"io"
	"log"
	"os"
	"testing"

	lifesim "sparselife/pkg/sims/life"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestRunGolden(t *testing.T) {
	sim, err := lifesim.New(lifesim.Config{Rows: 5, Cols: 5, Pattern: lifesim.PatternBlinker})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	sim.Reset(0)

	var buf bytes.Buffer
	if err := run(&buf, sim, 2, 1); err != nil {
		t.Fatalf("run: %v", err)
	}
	want := "# generation 0 (3 cells)\n" +
		".....\n" +
		".....\n" +
		".###.\n" +
		".....\n" +
		".....\n" +
		"# generation 1 (3 cells)\n" +
		".....\n" +
		"..#..\n" +
		"..#..\n" +
		"..#..\n" +
		".....\n" +
		"# generation 2 (3 cells)\n" +
		".....\n" +
		".....\n" +
		".###.\n" +
		".....\n" +
		".....\n"
	if got := buf.String(); got != want {
		t.Fatalf("output:\n%s\nwant:\n%s", got, want)
	}
}

func TestRunEveryPrintsLastGeneration(t *testing.T) {
	sim, err := lifesim.New(lifesim.Config{Rows: 6, Cols: 6, Pattern: lifesim.PatternBlock})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	sim.Reset(0)

	var buf bytes.Buffer
	if err := run(&buf, sim, 5, 2); err != nil {
		t.Fatalf("run: %v", err)
	}
	// Generations 0, 2, 4 and the final 5.
	if got := bytes.Count(buf.Bytes(), []byte("# generation")); got != 4 {
		t.Fatalf("dump count = %d, want 4:\n%s", got, buf.String())
	}
	if !bytes.Contains(buf.Bytes(), []byte("# generation 5 (4 cells)")) {
		t.Fatalf("final generation missing:\n%s", buf.String())
	}
}
