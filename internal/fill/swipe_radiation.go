package fill

import (
	"brickwork/internal/core"
	"brickwork/internal/paths"
)

type swipeRayPhase int

const (
	swipeRayClockwise swipeRayPhase = iota
	swipeRayCounter
	swipeRayFill
	swipeRayDone
)

// RadiationSwipe draws the ray of cells at angle 0 and rotates it around
// the grid center in 15 degree steps, a full turn clockwise then a full
// turn counter-clockwise, then bricks the rays one per step clockwise.
type RadiationSwipe struct {
	canvas core.Canvas
	rays   [][]paths.Position

	phase    swipeRayPhase
	ray      int
	rotated  int
	turnSpan int
	drawn    bool
	fillRay  int
	gate     stepGate
}

// NewRadiationSwipe builds the program against the canvas dimensions.
// MaxSwipes sets how many full turns each rotation phase performs.
func NewRadiationSwipe(canvas core.Canvas, opts Options) *RadiationSwipe {
	size := canvas.Size()
	maxSwipes := opts.MaxSwipes
	if maxSwipes < 1 {
		maxSwipes = 1
	}
	return &RadiationSwipe{
		canvas:   canvas,
		rays:     paths.RayTable(size.Rows, size.Cols),
		turnSpan: paths.RayCount * maxSwipes,
		gate:     newStepGate(opts.Speed),
	}
}

// Name identifies the program.
func (p *RadiationSwipe) Name() string { return NameSwipeRadiation }

// Reset clears the canvas to Clay and restarts the clockwise turn.
func (p *RadiationSwipe) Reset() {
	fillCanvas(p.canvas, core.Clay)
	p.phase = swipeRayClockwise
	p.drawn = false
	p.fillRay = 0
	p.gate.reset()
}

// Done reports whether the terminal phase was reached.
func (p *RadiationSwipe) Done() bool { return p.phase == swipeRayDone }

// Update advances the machine by at most one logical step.
func (p *RadiationSwipe) Update() {
	if p.phase == swipeRayDone {
		return
	}
	if !p.gate.ready() {
		return
	}
	switch p.phase {
	case swipeRayClockwise:
		if !p.rotateStep(1) {
			p.phase = swipeRayCounter
		}
	case swipeRayCounter:
		if !p.rotateStep(-1) {
			p.phase = swipeRayFill
		}
	case swipeRayFill:
		if p.fillRay >= paths.RayCount {
			p.phase = swipeRayDone
			return
		}
		p.paintRay(p.fillRay, core.Brick)
		p.fillRay++
	}
}

// rotateStep draws ray 0 on its first call, then rotates the highlight one
// ray per step in the given direction. The call after the turn completes
// erases the lingering ray and reports false.
func (p *RadiationSwipe) rotateStep(dir int) bool {
	if !p.drawn {
		p.ray = 0
		p.rotated = 0
		p.paintRay(0, core.Brick)
		p.drawn = true
		return true
	}
	if p.rotated >= p.turnSpan {
		p.paintRay(p.ray, core.Clay)
		p.drawn = false
		return false
	}
	next := (p.ray + dir + paths.RayCount) % paths.RayCount
	p.paintRay(p.ray, core.Clay)
	p.paintRay(next, core.Brick)
	p.ray = next
	p.rotated++
	return true
}

func (p *RadiationSwipe) paintRay(idx int, v core.CellState) {
	for _, pos := range p.rays[idx] {
		p.canvas.SetCell(pos.Row, pos.Col, v)
	}
}
