package paths

// DiagonalBandsFromTopLeft groups cells by the sum row+col, one band per
// sum ascending from 0 to rows+cols-2, rows ascending within a band. The
// first band is the top-left corner, the last the bottom-right.
func DiagonalBandsFromTopLeft(rows, cols int) [][]Position {
	rows, cols = clampDims(rows, cols)
	bands := make([][]Position, 0, rows+cols-1)
	for sum := 0; sum <= rows+cols-2; sum++ {
		rStart := 0
		if sum > cols-1 {
			rStart = sum - (cols - 1)
		}
		rEnd := sum
		if rEnd > rows-1 {
			rEnd = rows - 1
		}
		band := make([]Position, 0, rEnd-rStart+1)
		for r := rStart; r <= rEnd; r++ {
			band = append(band, Position{Row: r, Col: sum - r})
		}
		bands = append(bands, band)
	}
	return bands
}

// DiagonalFromTopLeft flattens DiagonalBandsFromTopLeft into a single
// traversal covering the grid exactly once.
func DiagonalFromTopLeft(rows, cols int) []Position {
	rows, cols = clampDims(rows, cols)
	path := make([]Position, 0, rows*cols)
	for _, band := range DiagonalBandsFromTopLeft(rows, cols) {
		path = append(path, band...)
	}
	return path
}

// DiagonalFromTopRight lists cells grouped by the difference col-row,
// differences descending from cols-1 to -(rows-1), rows ascending within a
// group. The first group is the top-right corner, the last the bottom-left.
func DiagonalFromTopRight(rows, cols int) []Position {
	rows, cols = clampDims(rows, cols)
	path := make([]Position, 0, rows*cols)
	for diff := cols - 1; diff >= -(rows - 1); diff-- {
		rStart := 0
		if diff < 0 {
			rStart = -diff
		}
		rEnd := rows - 1
		if cols-1-diff < rEnd {
			rEnd = cols - 1 - diff
		}
		for r := rStart; r <= rEnd; r++ {
			path = append(path, Position{Row: r, Col: r + diff})
		}
	}
	return path
}
