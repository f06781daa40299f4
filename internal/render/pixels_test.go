package render

import (
	"image/color"
	"testing"

	"brickwork/internal/core"
)

func TestFillCellsRGBA(t *testing.T) {
	cells := []core.CellState{core.Clay, core.Brick, core.Clay}
	buf := make([]byte, 4*len(cells))
	clay := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	brick := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	fillCellsRGBA(buf, cells, clay, brick)

	want := []byte{
		10, 20, 30, 255,
		200, 100, 50, 255,
		10, 20, 30, 255,
	}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("buf[%d] = %d, want %d", i, buf[i], want[i])
		}
	}
}
