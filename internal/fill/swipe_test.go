package fill

import (
	"slices"
	"testing"

	"brickwork/internal/core"
	"brickwork/internal/paths"
)

func TestLineSwipeBounce(t *testing.T) {
	grid := core.NewGrid(3, 4)
	p := NewLineSwipe(grid, DefaultOptions())
	p.Reset()

	assertRow := func(step, row int) {
		t.Helper()
		if got := brickCount(grid); got != grid.Cols {
			t.Fatalf("step %d: %d brick cells, want a full row of %d", step, got, grid.Cols)
		}
		for c := 0; c < grid.Cols; c++ {
			if grid.Cell(row, c) != core.Brick {
				t.Fatalf("step %d: highlight not on row %d", step, row)
			}
		}
	}
	assertCol := func(step, col int) {
		t.Helper()
		if got := brickCount(grid); got != grid.Rows {
			t.Fatalf("step %d: %d brick cells, want a full column of %d", step, got, grid.Rows)
		}
		for r := 0; r < grid.Rows; r++ {
			if grid.Cell(r, col) != core.Brick {
				t.Fatalf("step %d: highlight not on column %d", step, col)
			}
		}
	}

	// Down and back up: two boundary reversals end the row phase.
	wantRows := []int{0, 1, 2, 1, 0}
	for i, row := range wantRows {
		p.Update()
		assertRow(i+1, row)
	}
	p.Update()
	if got := brickCount(grid); got != 0 {
		t.Fatalf("row bounce left %d brick cells", got)
	}
	if p.Done() {
		t.Fatal("done before the column phase")
	}

	wantCols := []int{0, 1, 2, 3, 2, 1, 0}
	for i, col := range wantCols {
		p.Update()
		assertCol(i+7, col)
	}
	p.Update()
	if got := brickCount(grid); got != 0 {
		t.Fatalf("column bounce left %d brick cells", got)
	}

	// Fill keeps one whole row per step.
	for i := 1; i <= grid.Rows; i++ {
		p.Update()
		if got := brickCount(grid); got != i*grid.Cols {
			t.Fatalf("fill step %d: %d brick cells", i, got)
		}
	}
	p.Update()
	if !p.Done() {
		t.Fatal("line swipe not done after filling every row")
	}
	assertAllBrick(t, grid, p.Name())
}

func TestLineSwipeHonorsMaxSwipes(t *testing.T) {
	grid := core.NewGrid(3, 2)
	p := NewLineSwipe(grid, Options{Speed: 1, MaxSwipes: 2})
	p.Reset()

	want := []int{0, 1, 2, 1, 0, 1, 2, 1, 0}
	for i, row := range want {
		p.Update()
		if grid.Cell(row, 0) != core.Brick || brickCount(grid) != grid.Cols {
			t.Fatalf("step %d: highlight row != %d", i+1, row)
		}
	}
	p.Update()
	if got := brickCount(grid); got != 0 {
		t.Fatalf("second round trip left %d brick cells", got)
	}
}

func TestDiagonalSwipeWindow(t *testing.T) {
	grid := core.NewGrid(4, 6)
	fam1 := paths.DiagonalFromTopLeft(4, 6)
	p := NewDiagonalSwipe(grid, DefaultOptions())
	p.Reset()

	p.Update()
	if got := brickCount(grid); got != 4 {
		t.Fatalf("first window holds %d cells, want min(rows,cols)=4", got)
	}
	for _, pos := range fam1[:4] {
		if grid.Cell(pos.Row, pos.Col) != core.Brick {
			t.Fatalf("window missing %v", pos)
		}
	}

	p.Update()
	for _, pos := range fam1[1:5] {
		if grid.Cell(pos.Row, pos.Col) != core.Brick {
			t.Fatalf("window did not slide to cover %v", pos)
		}
	}
	if grid.Cell(fam1[0].Row, fam1[0].Col) != core.Clay {
		t.Fatal("window kept its trailing cell")
	}
}

func TestRadiationSwipeRotation(t *testing.T) {
	grid := core.NewGrid(5, 5)
	rays := paths.RayTable(5, 5)
	p := NewRadiationSwipe(grid, DefaultOptions())
	p.Reset()

	p.Update()
	if got := brickCount(grid); got != len(rays[0]) {
		t.Fatalf("first step painted %d cells, want ray 0 alone (%d)", got, len(rays[0]))
	}
	for _, pos := range rays[0] {
		if grid.Cell(pos.Row, pos.Col) != core.Brick {
			t.Fatalf("first step missing ray-0 cell %v", pos)
		}
	}

	p.Update()
	if got := brickCount(grid); got != len(rays[1]) {
		t.Fatalf("rotation painted %d cells, want ray 1 alone (%d)", got, len(rays[1]))
	}
	for _, pos := range rays[1] {
		if grid.Cell(pos.Row, pos.Col) != core.Brick {
			t.Fatalf("rotation missing ray-1 cell %v", pos)
		}
	}
}

func TestSwipeProgramsComplete(t *testing.T) {
	grid := core.NewGrid(5, 7)
	for _, p := range []core.Program{
		NewLineSwipe(grid, DefaultOptions()),
		NewDiagonalSwipe(grid, DefaultOptions()),
		NewRadiationSwipe(grid, DefaultOptions()),
	} {
		p.Reset()
		n := grid.Rows * grid.Cols
		runToDone(t, p, 8*n+8*paths.RayCount)
		assertAllBrick(t, grid, p.Name())

		snapshot := append([]core.CellState(nil), grid.Cells()...)
		p.Update()
		if !slices.Equal(snapshot, grid.Cells()) {
			t.Fatalf("%s mutated the grid after done", p.Name())
		}
	}
}
