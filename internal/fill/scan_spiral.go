package fill

import (
	"brickwork/internal/core"
	"brickwork/internal/paths"
)

// SpiralScan sweeps a single highlight cell outward along the square
// spiral, back along its reverse, then bricks the grid in spiral order.
type SpiralScan struct {
	scanWalk
}

// NewSpiralScan builds the program against the canvas dimensions.
func NewSpiralScan(canvas core.Canvas, opts Options) *SpiralScan {
	size := canvas.Size()
	forward := paths.Spiral(size.Rows, size.Cols)
	p := &SpiralScan{}
	p.init(canvas, NameScanSpiral, opts, forward, reversed(forward), forward)
	return p
}
