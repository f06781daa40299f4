package fill

import (
	"brickwork/internal/core"
	"brickwork/internal/paths"
)

type swipeDiagPhase int

const (
	swipeDiagFam1 swipeDiagPhase = iota
	swipeDiagFam2
	swipeDiagFill
	swipeDiagDone
)

// DiagonalSwipe bounces a window of min(rows, cols) consecutive diagonal
// cells along the top-left family, then the top-right family, then bricks
// the top-left family band by band.
type DiagonalSwipe struct {
	canvas core.Canvas

	fam1  []paths.Position
	fam2  []paths.Position
	bands [][]paths.Position
	span  int

	phase        swipeDiagPhase
	start        int
	dir          int
	reversals    int
	maxReversals int
	drawn        bool
	fillBand     int
	gate         stepGate
}

// NewDiagonalSwipe builds the program against the canvas dimensions.
func NewDiagonalSwipe(canvas core.Canvas, opts Options) *DiagonalSwipe {
	size := canvas.Size()
	maxSwipes := opts.MaxSwipes
	if maxSwipes < 1 {
		maxSwipes = 1
	}
	span := size.Rows
	if size.Cols < span {
		span = size.Cols
	}
	return &DiagonalSwipe{
		canvas:       canvas,
		fam1:         paths.DiagonalFromTopLeft(size.Rows, size.Cols),
		fam2:         paths.DiagonalFromTopRight(size.Rows, size.Cols),
		bands:        paths.DiagonalBandsFromTopLeft(size.Rows, size.Cols),
		span:         span,
		maxReversals: 2 * maxSwipes,
		gate:         newStepGate(opts.Speed),
	}
}

// Name identifies the program.
func (p *DiagonalSwipe) Name() string { return NameSwipeDiagonal }

// Reset clears the canvas to Clay and restarts the family-1 bounce.
func (p *DiagonalSwipe) Reset() {
	fillCanvas(p.canvas, core.Clay)
	p.phase = swipeDiagFam1
	p.drawn = false
	p.fillBand = 0
	p.gate.reset()
}

// Done reports whether the terminal phase was reached.
func (p *DiagonalSwipe) Done() bool { return p.phase == swipeDiagDone }

// Update advances the machine by at most one logical step.
func (p *DiagonalSwipe) Update() {
	if p.phase == swipeDiagDone {
		return
	}
	if !p.gate.ready() {
		return
	}
	switch p.phase {
	case swipeDiagFam1:
		if !p.windowStep(p.fam1) {
			p.phase = swipeDiagFam2
		}
	case swipeDiagFam2:
		if !p.windowStep(p.fam2) {
			p.phase = swipeDiagFill
		}
	case swipeDiagFill:
		if p.fillBand >= len(p.bands) {
			p.phase = swipeDiagDone
			return
		}
		for _, pos := range p.bands[p.fillBand] {
			p.canvas.SetCell(pos.Row, pos.Col, core.Brick)
		}
		p.fillBand++
	}
}

// windowStep slides the highlight window one slot along the flattened
// family path, bouncing at both ends until the reversal budget is spent.
func (p *DiagonalSwipe) windowStep(path []paths.Position) bool {
	limit := len(path) - p.span
	if !p.drawn {
		p.start = 0
		p.dir = 1
		p.reversals = 0
		p.paintWindow(path, 0, core.Brick)
		p.drawn = true
		return true
	}
	next := p.start + p.dir
	for next < 0 || next > limit {
		p.reversals++
		if p.reversals >= p.maxReversals {
			p.paintWindow(path, p.start, core.Clay)
			p.drawn = false
			return false
		}
		p.dir = -p.dir
		next = p.start + p.dir
	}
	p.paintWindow(path, p.start, core.Clay)
	p.paintWindow(path, next, core.Brick)
	p.start = next
	return true
}

func (p *DiagonalSwipe) paintWindow(path []paths.Position, start int, v core.CellState) {
	end := start + p.span
	if end > len(path) {
		end = len(path)
	}
	for _, pos := range path[start:end] {
		p.canvas.SetCell(pos.Row, pos.Col, v)
	}
}
