package core

// Canvas is the cell access capability handed to fill programs. The
// scheduler owns the concrete grid; programs read and write only through
// this interface, so tests can substitute their own recorder.
type Canvas interface {
	Size() Size
	Cell(r, c int) CellState
	SetCell(r, c int, v CellState)
}

// Program is the contract every fill program implements. Reset clears the
// canvas to Clay and returns to the first phase; Update applies at most one
// logical step and is a no-op once Done reports true.
type Program interface {
	Name() string
	Reset()
	Update()
	Done() bool
}

// Factory constructs a Program drawing on the provided canvas, using an
// optional configuration map.
type Factory func(canvas Canvas, cfg map[string]string) Program

type registration struct {
	name    string
	factory Factory
}

var programs []registration

// Register adds a program factory under the provided name. Registration
// order is preserved; the scheduler builds and indexes programs in this
// order. Duplicate names are ignored.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	for _, reg := range programs {
		if reg.name == name {
			return
		}
	}
	programs = append(programs, registration{name: name, factory: f})
}

// Programs returns the registered names in registration order.
func Programs() []string {
	names := make([]string, len(programs))
	for i, reg := range programs {
		names[i] = reg.name
	}
	return names
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, bool) {
	for _, reg := range programs {
		if reg.name == name {
			return reg.factory, true
		}
	}
	return nil, false
}
