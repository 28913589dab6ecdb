package grid

import (
	"fmt"
	"math"
)

// State is the liveness of a Cell.
type State uint8

const (
	// Void is the dead state.
	Void State = iota
	// Alive is the living state.
	Alive
)

// Cell is the liveness and survival age of one board position.
type Cell struct {
	state State
	age   uint64
}

// NewCell returns a cell in the given state with age 0.
func NewCell(state State) Cell {
	return Cell{state: state}
}

// IsAlive reports whether the cell is alive.
func (c Cell) IsAlive() bool { return c.state == Alive }

// IsVoid reports whether the cell is dead.
func (c Cell) IsVoid() bool { return c.state != Alive }

// Age returns the number of consecutive ticks the cell has survived.
func (c Cell) Age() uint64 { return c.age }

// AdvanceAge adds one tick of survival to a living cell. Age saturates at
// math.MaxUint64.
func (c *Cell) AdvanceAge() {
	if c.state != Alive || c.age == math.MaxUint64 {
		return
	}
	c.age++
}

func (c Cell) String() string {
	if c.IsAlive() {
		return fmt.Sprintf("alive(age=%d)", c.age)
	}
	return "void"
}
