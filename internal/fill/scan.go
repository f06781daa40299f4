package fill

import (
	"brickwork/internal/core"
	"brickwork/internal/paths"
)

type scanPhase int

const (
	scanPhaseFirst scanPhase = iota
	scanPhaseSecond
	scanPhaseFill
	scanPhaseDone
)

// scanWalk is the machine behind the path-based scan programs: a single
// highlight cell walks one traversal, walks a second, then the grid bricks
// up along a fill order.
type scanWalk struct {
	canvas core.Canvas
	name   string

	first  []paths.Position
	second []paths.Position
	fill   []paths.Position

	phase    scanPhase
	walk     pathWalk
	fillNext int
	gate     stepGate
}

func (s *scanWalk) init(canvas core.Canvas, name string, opts Options, first, second, fillOrder []paths.Position) {
	s.canvas = canvas
	s.name = name
	s.first = first
	s.second = second
	s.fill = fillOrder
	s.gate = newStepGate(opts.Speed)
	s.phase = scanPhaseFirst
	s.walk.restart(first)
}

// Name identifies the program.
func (s *scanWalk) Name() string { return s.name }

// Reset clears the canvas to Clay and restarts the first walk. The paths
// themselves are reused; only cursors reset.
func (s *scanWalk) Reset() {
	fillCanvas(s.canvas, core.Clay)
	s.walk.restart(s.first)
	s.fillNext = 0
	s.gate.reset()
	s.phase = scanPhaseFirst
}

// Done reports whether the terminal phase was reached.
func (s *scanWalk) Done() bool { return s.phase == scanPhaseDone }

// Update advances the machine by at most one logical step.
func (s *scanWalk) Update() {
	if s.phase == scanPhaseDone {
		return
	}
	if !s.gate.ready() {
		return
	}
	switch s.phase {
	case scanPhaseFirst:
		if !s.walk.step(s.canvas) {
			s.walk.restart(s.second)
			s.phase = scanPhaseSecond
		}
	case scanPhaseSecond:
		if !s.walk.step(s.canvas) {
			s.phase = scanPhaseFill
		}
	case scanPhaseFill:
		if !s.fillStep() {
			s.phase = scanPhaseDone
		}
	}
}

// fillStep bricks the next still-Clay cell along the fill order.
func (s *scanWalk) fillStep() bool {
	for s.fillNext < len(s.fill) {
		pos := s.fill[s.fillNext]
		s.fillNext++
		if s.canvas.Cell(pos.Row, pos.Col) == core.Clay {
			s.canvas.SetCell(pos.Row, pos.Col, core.Brick)
			return true
		}
	}
	return false
}
