package fill

import (
	"brickwork/internal/core"
	"brickwork/internal/paths"
)

type linePhase int

const (
	linePhaseRows linePhase = iota
	linePhaseCols
	linePhaseFill
	linePhaseDone
)

// LineScan sweeps a single highlight cell left-to-right top-to-bottom,
// then top-to-bottom left-to-right, then bricks the first Clay cell found
// in row-major order one cell per step. Positions derive from the cursor,
// so no path is precomputed.
type LineScan struct {
	canvas core.Canvas
	rows   int
	cols   int

	phase linePhase
	idx   int
	last  paths.Position
	lit   bool
	gate  stepGate
}

// NewLineScan builds the program against the canvas dimensions.
func NewLineScan(canvas core.Canvas, opts Options) *LineScan {
	size := canvas.Size()
	return &LineScan{
		canvas: canvas,
		rows:   size.Rows,
		cols:   size.Cols,
		gate:   newStepGate(opts.Speed),
	}
}

// Name identifies the program.
func (s *LineScan) Name() string { return NameScanLine }

// Reset clears the canvas to Clay and restarts the horizontal sweep.
func (s *LineScan) Reset() {
	fillCanvas(s.canvas, core.Clay)
	s.phase = linePhaseRows
	s.idx = 0
	s.lit = false
	s.gate.reset()
}

// Done reports whether the terminal phase was reached.
func (s *LineScan) Done() bool { return s.phase == linePhaseDone }

// Update advances the machine by at most one logical step.
func (s *LineScan) Update() {
	if s.phase == linePhaseDone {
		return
	}
	if !s.gate.ready() {
		return
	}
	switch s.phase {
	case linePhaseRows:
		if !s.walkStep(s.rowMajorAt) {
			s.phase = linePhaseCols
			s.idx = 0
		}
	case linePhaseCols:
		if !s.walkStep(s.colMajorAt) {
			s.phase = linePhaseFill
		}
	case linePhaseFill:
		if !s.fillStep() {
			s.phase = linePhaseDone
		}
	}
}

// rowMajorAt maps the cursor onto left-to-right, top-to-bottom order.
func (s *LineScan) rowMajorAt(i int) paths.Position {
	return paths.Position{Row: i / s.cols, Col: i % s.cols}
}

// colMajorAt maps the cursor onto top-to-bottom, left-to-right order.
func (s *LineScan) colMajorAt(i int) paths.Position {
	return paths.Position{Row: i % s.rows, Col: i / s.rows}
}

func (s *LineScan) walkStep(at func(int) paths.Position) bool {
	if s.lit {
		s.canvas.SetCell(s.last.Row, s.last.Col, core.Clay)
		s.lit = false
	}
	if s.idx >= s.rows*s.cols {
		return false
	}
	pos := at(s.idx)
	s.canvas.SetCell(pos.Row, pos.Col, core.Brick)
	s.last = pos
	s.lit = true
	s.idx++
	return true
}

// fillStep bricks the first Clay cell in row-major order.
func (s *LineScan) fillStep() bool {
	for r := 0; r < s.rows; r++ {
		for c := 0; c < s.cols; c++ {
			if s.canvas.Cell(r, c) == core.Clay {
				s.canvas.SetCell(r, c, core.Brick)
				return true
			}
		}
	}
	return false
}
