package fill

import "brickwork/internal/core"

type swipeLinePhase int

const (
	swipeLineRows swipeLinePhase = iota
	swipeLineCols
	swipeLineFill
	swipeLineDone
)

// LineSwipe bounces a full grid line between opposite edges, first a row
// vertically then a column horizontally, then bricks whole rows top to
// bottom one row per step.
type LineSwipe struct {
	canvas core.Canvas
	rows   int
	cols   int

	phase        swipeLinePhase
	cur          int
	dir          int
	reversals    int
	maxReversals int
	drawn        bool
	fillRow      int
	gate         stepGate
}

// NewLineSwipe builds the program against the canvas dimensions.
func NewLineSwipe(canvas core.Canvas, opts Options) *LineSwipe {
	size := canvas.Size()
	maxSwipes := opts.MaxSwipes
	if maxSwipes < 1 {
		maxSwipes = 1
	}
	return &LineSwipe{
		canvas:       canvas,
		rows:         size.Rows,
		cols:         size.Cols,
		maxReversals: 2 * maxSwipes,
		gate:         newStepGate(opts.Speed),
	}
}

// Name identifies the program.
func (p *LineSwipe) Name() string { return NameSwipeLine }

// Reset clears the canvas to Clay and restarts the vertical bounce.
func (p *LineSwipe) Reset() {
	fillCanvas(p.canvas, core.Clay)
	p.phase = swipeLineRows
	p.drawn = false
	p.fillRow = 0
	p.gate.reset()
}

// Done reports whether the terminal phase was reached.
func (p *LineSwipe) Done() bool { return p.phase == swipeLineDone }

// Update advances the machine by at most one logical step.
func (p *LineSwipe) Update() {
	if p.phase == swipeLineDone {
		return
	}
	if !p.gate.ready() {
		return
	}
	switch p.phase {
	case swipeLineRows:
		if !p.bounceStep(p.rows, p.paintRow) {
			p.phase = swipeLineCols
		}
	case swipeLineCols:
		if !p.bounceStep(p.cols, p.paintCol) {
			p.phase = swipeLineFill
		}
	case swipeLineFill:
		if p.fillRow >= p.rows {
			p.phase = swipeLineDone
			return
		}
		p.paintRow(p.fillRow, core.Brick)
		p.fillRow++
	}
}

// bounceStep draws line 0 on its first call, then carries the highlight
// toward the far edge and back, reversing direction at each boundary. The
// call that exhausts the reversal budget erases the lingering line and
// reports false.
func (p *LineSwipe) bounceStep(limit int, paint func(line int, v core.CellState)) bool {
	if !p.drawn {
		p.cur = 0
		p.dir = 1
		p.reversals = 0
		paint(0, core.Brick)
		p.drawn = true
		return true
	}
	next := p.cur + p.dir
	for next < 0 || next >= limit {
		p.reversals++
		if p.reversals >= p.maxReversals {
			paint(p.cur, core.Clay)
			p.drawn = false
			return false
		}
		p.dir = -p.dir
		next = p.cur + p.dir
	}
	paint(p.cur, core.Clay)
	paint(next, core.Brick)
	p.cur = next
	return true
}

func (p *LineSwipe) paintRow(r int, v core.CellState) {
	for c := 0; c < p.cols; c++ {
		p.canvas.SetCell(r, c, v)
	}
}

func (p *LineSwipe) paintCol(c int, v core.CellState) {
	for r := 0; r < p.rows; r++ {
		p.canvas.SetCell(r, c, v)
	}
}
