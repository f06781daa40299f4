package fill

import (
	"brickwork/internal/core"
	"brickwork/internal/paths"
)

// RadiationScan sweeps a single highlight cell through the clockwise ray
// order, then the counter-clockwise order, then bricks the grid ray by ray
// clockwise.
type RadiationScan struct {
	scanWalk
}

// NewRadiationScan builds the program against the canvas dimensions.
func NewRadiationScan(canvas core.Canvas, opts Options) *RadiationScan {
	size := canvas.Size()
	cw := paths.RadialClockwise(size.Rows, size.Cols)
	ccw := paths.RadialCounterClockwise(size.Rows, size.Cols)
	p := &RadiationScan{}
	p.init(canvas, NameScanRadiation, opts, cw, ccw, cw)
	return p
}
