package life

import (
	"errors"
	"slices"
	"testing"

	"sparselife/pkg/core"
	"sparselife/pkg/grid"
)

func mustSim(t *testing.T, cfg Config) *Sim {
	t.Helper()
	sim, err := New(cfg)
	if err != nil {
		t.Fatalf("New(%+v): %v", cfg, err)
	}
	return sim
}

func liveCoords(sim *Sim) []core.Coord {
	var out []core.Coord
	for _, c := range sim.LiveCells() {
		out = append(out, c.Coord)
	}
	return out
}

func TestBlinkerOscillation(t *testing.T) {
	sim := mustSim(t, Config{Rows: 5, Cols: 5, Pattern: PatternBlinker})
	sim.Reset(0)

	horizontal := []core.Coord{{Row: 2, Col: 1}, {Row: 2, Col: 2}, {Row: 2, Col: 3}}
	vertical := []core.Coord{{Row: 1, Col: 2}, {Row: 2, Col: 2}, {Row: 3, Col: 2}}

	if got := liveCoords(sim); !slices.Equal(got, horizontal) {
		t.Fatalf("seeded blinker = %v, want %v", got, horizontal)
	}
	sim.Step()
	if got := liveCoords(sim); !slices.Equal(got, vertical) {
		t.Fatalf("after one step = %v, want %v", got, vertical)
	}
	sim.Step()
	if got := liveCoords(sim); !slices.Equal(got, horizontal) {
		t.Fatalf("after second step = %v, want %v", got, horizontal)
	}
	if sim.Generation() != 2 {
		t.Fatalf("generation = %d, want 2", sim.Generation())
	}
}

func TestResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows, cfg.Cols = 60, 60

	a := mustSim(t, cfg)
	b := mustSim(t, cfg)
	a.Reset(99)
	b.Reset(99)
	if !slices.Equal(a.LiveCells(), b.LiveCells()) {
		t.Fatal("equal seeds produced different boards")
	}

	for i := 0; i < 5; i++ {
		a.Step()
	}
	a.Reset(99)
	if a.Generation() != 0 {
		t.Fatalf("generation after Reset = %d", a.Generation())
	}
	if !slices.Equal(a.LiveCells(), b.LiveCells()) {
		t.Fatal("Reset did not rebuild the board from scratch")
	}

	b.Reset(100)
	if slices.Equal(a.LiveCells(), b.LiveCells()) {
		t.Fatal("different seeds produced identical random regions")
	}
}

func TestRandomPatternStaysInMiddleThird(t *testing.T) {
	sim := mustSim(t, Config{Rows: 30, Cols: 45, Pattern: PatternRandom, Density: 1})
	sim.Reset(1)
	cells := sim.LiveCells()
	if len(cells) != 10*15 {
		t.Fatalf("population = %d, want %d", len(cells), 10*15)
	}
	for _, c := range cells {
		if c.Row < 10 || c.Row >= 20 || c.Col < 15 || c.Col >= 30 {
			t.Fatalf("cell %v outside the middle third", c.Coord)
		}
	}
}

func TestSoupIncludesFixedSeed(t *testing.T) {
	sim := mustSim(t, Config{Rows: 192, Cols: 256, Pattern: PatternSoup, Density: 0})
	sim.Reset(5)
	if got := len(sim.LiveCells()); got != len(soupSeed) {
		t.Fatalf("population = %d, want %d", got, len(soupSeed))
	}
	for _, c := range soupSeed {
		if !sim.Grid().IsAlive(c) {
			t.Fatalf("soup seed cell %v missing", c)
		}
	}
}

func TestShapesAreCentred(t *testing.T) {
	sim := mustSim(t, Config{Rows: 10, Cols: 10, Pattern: PatternBlock})
	sim.Reset(0)
	want := []core.Coord{{Row: 4, Col: 4}, {Row: 4, Col: 5}, {Row: 5, Col: 4}, {Row: 5, Col: 5}}
	if got := liveCoords(sim); !slices.Equal(got, want) {
		t.Fatalf("block = %v, want %v", got, want)
	}
}

func TestNewErrors(t *testing.T) {
	if _, err := New(Config{Rows: 10, Cols: 10, Pattern: "spaceship"}); !errors.Is(err, ErrUnknownPattern) {
		t.Fatalf("err = %v, want ErrUnknownPattern", err)
	}
	if _, err := New(Config{Rows: 0, Cols: 10, Pattern: PatternBlock}); !errors.Is(err, grid.ErrInvalidDimension) {
		t.Fatalf("err = %v, want ErrInvalidDimension", err)
	}
}

func TestPatterns(t *testing.T) {
	want := []string{"acorn", "blinker", "block", "glider", "random", "soup"}
	if got := Patterns(); !slices.Equal(got, want) {
		t.Fatalf("Patterns() = %v, want %v", got, want)
	}
	for _, name := range want {
		if err := validatePattern(name); err != nil {
			t.Fatalf("validatePattern(%q): %v", name, err)
		}
	}
}

func TestParameters(t *testing.T) {
	sim := mustSim(t, Config{Rows: 10, Cols: 10, Pattern: PatternBlock})
	sim.Reset(0)
	sim.Step()
	sim.Step()

	snap := sim.Parameters()
	expect := map[string]string{
		"generation": "2",
		"population": "4",
		"oldest":     "2",
		"rows":       "10",
		"cols":       "10",
		"pattern":    "block",
	}
	for key, want := range expect {
		p, ok := snap.Lookup(key)
		if !ok {
			t.Fatalf("parameter %q missing", key)
		}
		if p.Value != want {
			t.Fatalf("parameter %q = %q, want %q", key, p.Value, want)
		}
	}
}

func TestRegistered(t *testing.T) {
	factory, ok := core.Sims()["life"]
	if !ok {
		t.Fatal("life sim not registered")
	}
	sim, err := factory(map[string]string{"rows": "12", "cols": "20", "pattern": "glider"})
	if err != nil {
		t.Fatalf("factory: %v", err)
	}
	if sim.Size() != (core.Size{W: 20, H: 12}) {
		t.Fatalf("Size() = %+v", sim.Size())
	}
	sim.Reset(0)
	if got := len(sim.LiveCells()); got != 5 {
		t.Fatalf("glider population = %d", got)
	}
}
