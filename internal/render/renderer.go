//go:build ebiten

package render

import (
	"image/color"

	"brickwork/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter blits a cell grid into a scaled screen image. The offscreen
// image holds one pixel per cell; Blit scales it up on draw.
type GridPainter struct {
	rows int
	cols int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates the offscreen image and pixel buffer for a grid.
func NewGridPainter(rows, cols int) *GridPainter {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	return &GridPainter{
		rows: rows,
		cols: cols,
		img:  ebiten.NewImage(cols, rows),
		buf:  make([]byte, 4*rows*cols),
	}
}

// Blit writes the cells into the offscreen image and draws it scaled onto
// dst. One cell maps to scale x scale pixels. Mismatched cell counts are
// skipped so a resize never draws through a stale painter.
func (p *GridPainter) Blit(dst *ebiten.Image, cells []core.CellState, clay, brick color.Color, scale int) {
	if len(cells) != p.rows*p.cols {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	fillCellsRGBA(p.buf, cells, clay, brick)
	p.img.ReplacePixels(p.buf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(p.img, op)
}

// Size returns the painter's grid dimensions.
func (p *GridPainter) Size() (rows, cols int) { return p.rows, p.cols }
