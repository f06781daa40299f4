// Package paths produces the traversal orders the fill programs walk.
// Every generator is a pure function of the grid dimensions: identical
// inputs yield identical sequences, and scan-order generators cover the
// grid exactly once.
package paths

// Position identifies a single grid cell.
type Position struct {
	Row int
	Col int
}

// Center returns the traversal origin for spiral and radial orders. The
// column sits one left of the geometric center, clamped to the grid.
func Center(rows, cols int) (int, int) {
	rows, cols = clampDims(rows, cols)
	r := rows / 2
	c := cols/2 - 1
	if c < 0 {
		c = 0
	}
	return r, c
}

func clampDims(rows, cols int) (int, int) {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	return rows, cols
}
