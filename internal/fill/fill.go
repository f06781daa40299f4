// Package fill implements the seven grid fill programs. Each program is a
// phase-based state machine that repaints the canvas from all-Clay to
// all-Brick, one logical step per update, using a distinct traversal
// geometry.
package fill

import (
	"strconv"

	"brickwork/internal/core"
	"brickwork/internal/paths"
)

// Options holds the tunables shared by every fill program.
type Options struct {
	// Speed throttles stepping: 1.0 performs one logical step per update,
	// lower values spread steps across multiple updates. Values above 1
	// still step at most once per update.
	Speed float64

	// MaxSwipes is the number of full bounce cycles (two boundary
	// reversals each) a swipe phase performs before moving on.
	MaxSwipes int
}

// DefaultOptions returns the standard tuning.
func DefaultOptions() Options {
	return Options{Speed: 1.0, MaxSwipes: 1}
}

// FromMap populates options from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Options {
	o := DefaultOptions()
	if cfg == nil {
		return o
	}
	if v, ok := cfg["speed"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			o.Speed = parsed
		}
	}
	if v, ok := cfg["max_swipes"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			o.MaxSwipes = parsed
		}
	}
	return o
}

// stepGate throttles logical steps to a fractional per-update rate. At most
// one step fires per update call regardless of the rate.
type stepGate struct {
	rate float64
	acc  float64
}

func newStepGate(rate float64) stepGate {
	if rate <= 0 {
		rate = 1
	}
	return stepGate{rate: rate}
}

// ready consumes one update call and reports whether a logical step fires.
func (g *stepGate) ready() bool {
	g.acc += g.rate
	if g.acc < 1 {
		return false
	}
	g.acc -= 1
	if g.acc > 1 {
		g.acc = 1
	}
	return true
}

func (g *stepGate) reset() { g.acc = 0 }

// pathWalk advances a single highlight cell along a fixed coordinate path,
// erasing the previously painted cell on every step.
type pathWalk struct {
	path []paths.Position
	next int
	last paths.Position
	lit  bool
}

func (w *pathWalk) restart(path []paths.Position) {
	w.path = path
	w.next = 0
	w.lit = false
}

// step paints the next path cell Brick after erasing the previous one. It
// reports false once the path is exhausted and the trailing highlight has
// been cleared; that call counts as the phase transition step.
func (w *pathWalk) step(canvas core.Canvas) bool {
	if w.lit {
		canvas.SetCell(w.last.Row, w.last.Col, core.Clay)
		w.lit = false
	}
	if w.next >= len(w.path) {
		return false
	}
	pos := w.path[w.next]
	canvas.SetCell(pos.Row, pos.Col, core.Brick)
	w.last = pos
	w.lit = true
	w.next++
	return true
}

// fillCanvas bulk-paints every cell through the canvas interface.
func fillCanvas(canvas core.Canvas, v core.CellState) {
	size := canvas.Size()
	for r := 0; r < size.Rows; r++ {
		for c := 0; c < size.Cols; c++ {
			canvas.SetCell(r, c, v)
		}
	}
}

// reversed returns a new slice holding path in back-to-front order.
func reversed(path []paths.Position) []paths.Position {
	out := make([]paths.Position, len(path))
	for i, pos := range path {
		out[len(path)-1-i] = pos
	}
	return out
}
