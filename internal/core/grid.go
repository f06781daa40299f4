package core

// CellState is the material a single grid cell shows.
type CellState uint8

const (
	// Clay is the background material every cell resets to.
	Clay CellState = iota
	// Brick is the foreground material fill programs paint.
	Brick
)

// Size describes grid dimensions in cells.
type Size struct {
	Rows int
	Cols int
}

// Grid stores a 2D field of cell states in row-major order.
type Grid struct {
	Rows, Cols int
	cells      []CellState
}

// NewGrid allocates a grid with the given dimensions. Dimensions below 1
// clamp to 1.
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	return &Grid{Rows: rows, Cols: cols, cells: make([]CellState, rows*cols)}
}

// Size reports the grid dimensions.
func (g *Grid) Size() Size { return Size{Rows: g.Rows, Cols: g.Cols} }

// Cells exposes the backing slice so renderers can read states directly.
func (g *Grid) Cells() []CellState { return g.cells }

// Cell returns the state at (r, c), or Clay when out of bounds.
func (g *Grid) Cell(r, c int) CellState {
	if r < 0 || r >= g.Rows || c < 0 || c >= g.Cols {
		return Clay
	}
	return g.cells[r*g.Cols+c]
}

// SetCell writes the state at (r, c). Out-of-bounds writes are ignored.
func (g *Grid) SetCell(r, c int, v CellState) {
	if r < 0 || r >= g.Rows || c < 0 || c >= g.Cols {
		return
	}
	g.cells[r*g.Cols+c] = v
}

// Fill sets every cell to the provided state.
func (g *Grid) Fill(v CellState) {
	for i := range g.cells {
		g.cells[i] = v
	}
}
