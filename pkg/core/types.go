package core

// Size describes the dimensions of a simulation board in cells.
type Size struct {
	W int
	H int
}

// Coord identifies a board position by row and column.
type Coord struct {
	Row int
	Col int
}

// LiveCell is a read-only snapshot of one living cell handed to renderers.
type LiveCell struct {
	Coord
	Age uint64
}

// Sim defines the contract a driver (window, terminal, batch runner) uses to
// seed, advance and draw a simulation.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	LiveCells() []LiveCell
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
