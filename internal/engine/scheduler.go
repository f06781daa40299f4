// Package engine drives the animation. A Scheduler owns the grid, builds
// every registered fill program against it, runs the active program one
// tick at a time, freezes on the finished picture, and then hands the grid
// to a uniformly chosen successor.
package engine

import (
	"fmt"
	"strconv"

	"brickwork/internal/core"
)

type schedulerState int

const (
	stateRunning schedulerState = iota
	stateFrozen
)

// Scheduler owns the grid and the program lifecycle.
type Scheduler struct {
	cfg  Config
	grid *core.Grid

	programs []core.Program
	active   int

	state         schedulerState
	freezeElapsed int

	mode  ColorMode
	rng   *core.RNG
	ticks uint64
}

// New builds a scheduler over the registered programs. The first registered
// program starts on a fresh all-Clay grid.
func New(cfg Config) *Scheduler {
	s := &Scheduler{cfg: cfg.normalized()}
	s.rng = core.NewRNG(s.cfg.Seed)
	s.rebuild()
	return s
}

// rebuild constructs the grid and one instance of every registered program
// for the configured dimensions. The schedule restarts from index zero.
func (s *Scheduler) rebuild() {
	s.grid = core.NewGrid(s.cfg.Rows, s.cfg.Cols)
	opts := s.cfg.optionsMap()
	names := core.Programs()
	s.programs = make([]core.Program, 0, len(names))
	for _, name := range names {
		factory, ok := core.Lookup(name)
		if !ok {
			continue
		}
		s.programs = append(s.programs, factory(s.grid, opts))
	}
	s.active = 0
	s.state = stateRunning
	s.freezeElapsed = 0
	if len(s.programs) > 0 {
		s.programs[s.active].Reset()
	}
}

// Tick advances the animation by one engine tick. A running program gets
// one update; completion freezes the finished picture for FreezeTicks, and
// the tick that ends the freeze advances the color mode, picks the next
// program, and resets it onto a cleared grid.
func (s *Scheduler) Tick() {
	s.ticks++
	if len(s.programs) == 0 {
		return
	}
	if s.state == stateFrozen {
		s.freezeElapsed++
		if s.freezeElapsed < s.cfg.FreezeTicks {
			return
		}
		s.mode = s.mode.Next()
		s.active = s.nextIndex()
		s.programs[s.active].Reset()
		s.state = stateRunning
		return
	}
	p := s.programs[s.active]
	p.Update()
	if p.Done() {
		s.state = stateFrozen
		s.freezeElapsed = 0
	}
}

// nextIndex picks uniformly among the other programs. With fewer than two
// programs the active index stays.
func (s *Scheduler) nextIndex() int {
	if len(s.programs) < 2 {
		return s.active
	}
	n := s.rng.IntN(len(s.programs) - 1)
	if n >= s.active {
		n++
	}
	return n
}

// Resize tears down the grid and rebuilds every program for the new
// dimensions. The color mode and random stream carry over; the schedule
// restarts from the first program. Dimensions clamp to at least 1.
func (s *Scheduler) Resize(rows, cols int) {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	if rows == s.grid.Rows && cols == s.grid.Cols {
		return
	}
	s.cfg.Rows = rows
	s.cfg.Cols = cols
	s.rebuild()
}

// Restart resets the active program onto a cleared grid and unfreezes,
// without advancing the mode or the random stream.
func (s *Scheduler) Restart() {
	if len(s.programs) == 0 {
		return
	}
	s.state = stateRunning
	s.freezeElapsed = 0
	s.programs[s.active].Reset()
}

// Config returns a copy of the normalized configuration.
func (s *Scheduler) Config() Config { return s.cfg }

// Size returns the grid dimensions.
func (s *Scheduler) Size() core.Size { return s.grid.Size() }

// Cells exposes the live cell slice for rendering.
func (s *Scheduler) Cells() []core.CellState { return s.grid.Cells() }

// Mode returns the current color mode.
func (s *Scheduler) Mode() ColorMode { return s.mode }

// Frozen reports whether the scheduler is inside a completion freeze.
func (s *Scheduler) Frozen() bool { return s.state == stateFrozen }

// ActiveName returns the running program's registered name.
func (s *Scheduler) ActiveName() string {
	if len(s.programs) == 0 {
		return ""
	}
	return s.programs[s.active].Name()
}

// Ticks returns the number of Tick calls since construction.
func (s *Scheduler) Ticks() uint64 { return s.ticks }

// Parameters implements core.ParameterProvider for display front-ends.
func (s *Scheduler) Parameters() core.ParameterSnapshot {
	size := s.grid.Size()
	freezeLeft := 0
	if s.state == stateFrozen {
		freezeLeft = s.cfg.FreezeTicks - s.freezeElapsed
		if freezeLeft < 0 {
			freezeLeft = 0
		}
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "schedule",
			Params: []core.Parameter{
				{Key: "program", Label: "Program", Value: s.ActiveName()},
				{Key: "mode", Label: "Mode", Value: s.mode.String()},
				{Key: "frozen", Label: "Frozen", Value: strconv.FormatBool(s.Frozen())},
				{Key: "freeze_left", Label: "Freeze left", Value: strconv.Itoa(freezeLeft)},
			},
		},
		{
			Name: "engine",
			Params: []core.Parameter{
				{Key: "dims", Label: "Grid", Value: fmt.Sprintf("%dx%d", size.Rows, size.Cols)},
				{Key: "ticks", Label: "Ticks", Value: strconv.FormatUint(s.ticks, 10)},
				{Key: "speed", Label: "Speed", Value: strconv.FormatFloat(s.cfg.Speed, 'g', -1, 64)},
				{Key: "seed", Label: "Seed", Value: strconv.FormatInt(s.cfg.Seed, 10)},
			},
		},
	}}
}
