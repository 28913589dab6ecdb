// Package term drives a simulation in a terminal using tcell.
package term

import (
	"context"
	"fmt"
	"time"

	"sparselife/internal/render"
	"sparselife/pkg/core"

	"github.com/gdamore/tcell/v2"
)

const (
	cellGlyph     = '█'
	frameInterval = 10 * time.Millisecond
)

var statusStyle = tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack)

// Driver owns the render/step loop for one sim on one screen. The board is
// drawn from a LiveCells snapshot so a frame never observes a step in
// progress.
type Driver struct {
	screen   tcell.Screen
	sim      core.Sim
	step     *core.FixedStep
	paused   bool
	tickOnce bool
	seed     int64
}

// New returns a Driver stepping sim at tps ticks per second.
func New(screen tcell.Screen, sim core.Sim, tps int, seed int64) *Driver {
	return &Driver{screen: screen, sim: sim, step: core.NewFixedStep(tps), seed: seed}
}

// Paused reports whether automatic stepping is suspended.
func (d *Driver) Paused() bool { return d.paused }

// Reset reseeds the simulation.
func (d *Driver) Reset(seed int64) {
	d.seed = seed
	d.sim.Reset(seed)
	d.tickOnce = false
}

// HandleKey applies a key press and reports whether the driver should quit.
//
//	space  pause/resume      enter  resume
//	n      single step       r      reset with the same seed
//	s      reseed from clock q/esc  quit
func (d *Driver) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyEnter:
		d.paused = false
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case ' ':
			d.paused = !d.paused
		case 'n':
			d.tickOnce = true
		case 'r':
			d.Reset(d.seed)
		case 's':
			d.Reset(time.Now().UnixNano())
		}
	}
	return false
}

// Advance steps the simulation when a single step was requested or when it
// is running and the tick interval has elapsed. It reports whether a step ran.
func (d *Driver) Advance() bool {
	if d.tickOnce {
		d.tickOnce = false
		d.sim.Step()
		return true
	}
	if d.paused || !d.step.ShouldStep() {
		return false
	}
	d.sim.Step()
	return true
}

// Draw renders the board shaded by age with a status line on the last row.
// Cells beyond the terminal's size are clipped.
func (d *Driver) Draw() {
	d.screen.Clear()
	w, h := d.screen.Size()
	boardRows := h
	if h > 1 {
		boardRows = h - 1
	}
	for _, c := range d.sim.LiveCells() {
		if c.Row >= boardRows || c.Col >= w {
			continue
		}
		shade := render.AgeShade(c.Age)
		style := tcell.StyleDefault.
			Foreground(tcell.NewRGBColor(int32(shade.R), int32(shade.G), int32(shade.B))).
			Background(tcell.ColorBlack)
		d.screen.SetContent(c.Col, c.Row, cellGlyph, nil, style)
	}
	if h > 1 {
		d.drawStatus(h-1, w)
	}
	d.screen.Show()
}

func (d *Driver) drawStatus(row, width int) {
	line := d.statusLine()
	for i, r := range []rune(line) {
		if i >= width {
			break
		}
		d.screen.SetContent(i, row, r, nil, statusStyle)
	}
}

func (d *Driver) statusLine() string {
	population := fmt.Sprint(len(d.sim.LiveCells()))
	generation := "?"
	if provider, ok := d.sim.(core.ParameterProvider); ok {
		snap := provider.Parameters()
		if p, ok := snap.Lookup("population"); ok {
			population = p.Value
		}
		if p, ok := snap.Lookup("generation"); ok {
			generation = p.Value
		}
	}
	state := "running"
	if d.paused {
		state = "paused"
	}
	return fmt.Sprintf("%s cells / gen: %s  [%s]", population, generation, state)
}

// Run processes input and steps the simulation until the user quits or ctx
// is done. It returns nil on quit and ctx.Err() on cancellation.
func (d *Driver) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go d.screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	d.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if d.HandleKey(ev) {
					return nil
				}
			case *tcell.EventResize:
				d.screen.Sync()
			}
			d.Draw()
		case <-ticker.C:
			if d.Advance() {
				d.Draw()
			}
		}
	}
}
