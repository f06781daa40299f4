package paths

// Spiral lists every cell in square-spiral order starting at Center. The
// walk moves right, down, left, up with run lengths 1,1,2,2,3,3,... and
// skips positions that fall outside the grid, so the result always holds
// exactly rows*cols cells.
func Spiral(rows, cols int) []Position {
	rows, cols = clampDims(rows, cols)
	total := rows * cols
	path := make([]Position, 0, total)

	r, c := Center(rows, cols)
	path = append(path, Position{Row: r, Col: c})
	if total == 1 {
		return path
	}

	dirRow := [4]int{0, 1, 0, -1}
	dirCol := [4]int{1, 0, -1, 0}
	dir := 0
	for run := 1; ; run++ {
		// Two legs share each run length before it grows.
		for leg := 0; leg < 2; leg++ {
			for step := 0; step < run; step++ {
				r += dirRow[dir]
				c += dirCol[dir]
				if r < 0 || r >= rows || c < 0 || c >= cols {
					continue
				}
				path = append(path, Position{Row: r, Col: c})
				if len(path) == total {
					return path
				}
			}
			dir = (dir + 1) % 4
		}
	}
}
