package life

import (
	"errors"
	"fmt"
	"slices"

	"sparselife/pkg/core"
)

// Pattern names accepted by Config.Pattern.
const (
	PatternSoup    = "soup"
	PatternRandom  = "random"
	PatternGlider  = "glider"
	PatternBlock   = "block"
	PatternBlinker = "blinker"
	PatternAcorn   = "acorn"
)

// ErrUnknownPattern is returned by New for an unrecognised pattern name.
var ErrUnknownPattern = errors.New("life: unknown pattern")

// Fixed shapes, anchored at their top-left corner.
var shapes = map[string][]core.Coord{
	PatternGlider:  {{Row: 0, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}},
	PatternBlock:   {{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}},
	PatternBlinker: {{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}},
	PatternAcorn:   {{Row: 0, Col: 1}, {Row: 1, Col: 3}, {Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 4}, {Row: 2, Col: 5}, {Row: 2, Col: 6}},
}

// soupSeed is the hand-placed part of the soup pattern: a glider, two blocks
// and a small methuselah. Positions wrap on boards too small to hold them.
var soupSeed = []core.Coord{
	{Row: 1, Col: 1}, {Row: 2, Col: 2}, {Row: 2, Col: 3}, {Row: 3, Col: 1}, {Row: 3, Col: 2},
	{Row: 18, Col: 14}, {Row: 18, Col: 15}, {Row: 19, Col: 14}, {Row: 19, Col: 15},
	{Row: 11, Col: 14}, {Row: 11, Col: 15}, {Row: 12, Col: 14}, {Row: 12, Col: 15},
	{Row: 52, Col: 51}, {Row: 53, Col: 51}, {Row: 55, Col: 51}, {Row: 56, Col: 51},
	{Row: 53, Col: 52}, {Row: 55, Col: 52},
	{Row: 53, Col: 53}, {Row: 55, Col: 53},
	{Row: 52, Col: 54}, {Row: 53, Col: 54}, {Row: 55, Col: 54}, {Row: 56, Col: 54},
	{Row: 51, Col: 53}, {Row: 52, Col: 53},
}

// Patterns lists every accepted pattern name in sorted order.
func Patterns() []string {
	names := []string{PatternSoup, PatternRandom}
	for name := range shapes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func validatePattern(name string) error {
	if name == PatternSoup || name == PatternRandom {
		return nil
	}
	if _, ok := shapes[name]; ok {
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownPattern, name)
}

// stamp seeds the named pattern through set. Fixed shapes are centred on the
// board; random regions cover its middle third.
func stamp(name string, size core.Size, density float64, seed int64, set func(core.Coord)) {
	if shape, ok := shapes[name]; ok {
		h, w := extent(shape)
		top, left := (size.H-h)/2, (size.W-w)/2
		for _, c := range shape {
			set(core.Coord{Row: top + c.Row, Col: left + c.Col})
		}
		return
	}
	if name == PatternSoup {
		for _, c := range soupSeed {
			set(c)
		}
	}
	rng := core.NewRNG(seed)
	rng.FillRegion(size.H/3, size.W/3, size.H/3*2, size.W/3*2, density, set)
}

func extent(shape []core.Coord) (h, w int) {
	for _, c := range shape {
		h = max(h, c.Row+1)
		w = max(w, c.Col+1)
	}
	return h, w
}
