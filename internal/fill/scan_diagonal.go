package fill

import (
	"brickwork/internal/core"
	"brickwork/internal/paths"
)

// DiagonalScan sweeps a single highlight cell through the top-left
// diagonal family, then the top-right family, then bricks the grid in
// family-1 order.
type DiagonalScan struct {
	scanWalk
}

// NewDiagonalScan builds the program against the canvas dimensions.
func NewDiagonalScan(canvas core.Canvas, opts Options) *DiagonalScan {
	size := canvas.Size()
	fam1 := paths.DiagonalFromTopLeft(size.Rows, size.Cols)
	fam2 := paths.DiagonalFromTopRight(size.Rows, size.Cols)
	p := &DiagonalScan{}
	p.init(canvas, NameScanDiagonal, opts, fam1, fam2, fam1)
	return p
}
