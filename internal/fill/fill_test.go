package fill

import (
	"slices"
	"testing"

	"brickwork/internal/core"
	"brickwork/internal/paths"
)

// allPrograms builds one of each program against the grid.
func allPrograms(grid *core.Grid, opts Options) []core.Program {
	return []core.Program{
		NewLineScan(grid, opts),
		NewSpiralScan(grid, opts),
		NewDiagonalScan(grid, opts),
		NewRadiationScan(grid, opts),
		NewLineSwipe(grid, opts),
		NewDiagonalSwipe(grid, opts),
		NewRadiationSwipe(grid, opts),
	}
}

func runToDone(t *testing.T, p core.Program, limit int) int {
	t.Helper()
	updates := 0
	for !p.Done() {
		if updates >= limit {
			t.Fatalf("%s not done after %d updates", p.Name(), limit)
		}
		p.Update()
		updates++
	}
	return updates
}

func brickCount(grid *core.Grid) int {
	n := 0
	for _, c := range grid.Cells() {
		if c == core.Brick {
			n++
		}
	}
	return n
}

func assertAllBrick(t *testing.T, grid *core.Grid, name string) {
	t.Helper()
	if got, want := brickCount(grid), grid.Rows*grid.Cols; got != want {
		t.Fatalf("%s finished with %d of %d cells brick", name, got, want)
	}
}

// recordingCanvas counts writes so tests can prove programs mutate the grid
// only through the injected accessor.
type recordingCanvas struct {
	*core.Grid
	sets int
}

func (r *recordingCanvas) SetCell(row, col int, v core.CellState) {
	r.sets++
	r.Grid.SetCell(row, col, v)
}

func TestFromMap(t *testing.T) {
	if got := FromMap(nil); got != DefaultOptions() {
		t.Fatalf("FromMap(nil) = %+v, want defaults", got)
	}
	got := FromMap(map[string]string{"speed": "0.25", "max_swipes": "3"})
	if got.Speed != 0.25 || got.MaxSwipes != 3 {
		t.Fatalf("FromMap overrides = %+v", got)
	}
	got = FromMap(map[string]string{"speed": "-2", "max_swipes": "junk"})
	if got != DefaultOptions() {
		t.Fatalf("invalid values must keep defaults, got %+v", got)
	}
}

func TestStepGateHalfSpeed(t *testing.T) {
	g := newStepGate(0.5)
	pattern := []bool{false, true, false, true, false, true}
	for i, want := range pattern {
		if got := g.ready(); got != want {
			t.Fatalf("call %d = %v, want %v", i+1, got, want)
		}
	}
}

func TestStepGateFastRates(t *testing.T) {
	g := newStepGate(2.5)
	for i := 0; i < 16; i++ {
		if !g.ready() {
			t.Fatalf("rate above 1 must step on every call (call %d)", i+1)
		}
	}
}

func TestRegistryOrder(t *testing.T) {
	want := []string{
		NameScanLine, NameScanSpiral, NameScanDiagonal, NameScanRadiation,
		NameSwipeLine, NameSwipeDiagonal, NameSwipeRadiation,
	}
	if got := core.Programs(); !slices.Equal(got, want) {
		t.Fatalf("registry order = %v, want %v", got, want)
	}
	for _, name := range want {
		factory, ok := core.Lookup(name)
		if !ok {
			t.Fatalf("no factory under %q", name)
		}
		p := factory(core.NewGrid(2, 2), map[string]string{"speed": "0.5"})
		if p.Name() != name {
			t.Fatalf("factory under %q builds %q", name, p.Name())
		}
	}
}

func TestProgramsPaintThroughCanvas(t *testing.T) {
	rc := &recordingCanvas{Grid: core.NewGrid(3, 4)}
	p := NewDiagonalScan(rc, DefaultOptions())
	p.Reset()
	afterReset := rc.sets
	if afterReset == 0 {
		t.Fatal("reset wrote nothing through the canvas")
	}
	p.Update()
	if rc.sets <= afterReset {
		t.Fatal("update wrote nothing through the canvas")
	}
}

func TestProgramsOnTinyGrids(t *testing.T) {
	dims := []struct{ rows, cols int }{{1, 1}, {1, 5}, {5, 1}}
	for _, d := range dims {
		grid := core.NewGrid(d.rows, d.cols)
		for _, p := range allPrograms(grid, DefaultOptions()) {
			p.Reset()
			n := d.rows * d.cols
			runToDone(t, p, 16*n+16*paths.RayCount)
			assertAllBrick(t, grid, p.Name())
		}
	}
}
