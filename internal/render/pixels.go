package render

import (
	"image/color"

	"brickwork/internal/core"
)

// fillCellsRGBA converts cell states into RGBA pixels in buf. Brick cells
// take the brick color, everything else the clay color.
func fillCellsRGBA(buf []byte, cells []core.CellState, clay, brick color.Color) {
	rClay, gClay, bClay, aClay := clay.RGBA()
	rBrick, gBrick, bBrick, aBrick := brick.RGBA()
	for i, c := range cells {
		base := i * 4
		if c == core.Brick {
			buf[base+0] = uint8(rBrick >> 8)
			buf[base+1] = uint8(gBrick >> 8)
			buf[base+2] = uint8(bBrick >> 8)
			buf[base+3] = uint8(aBrick >> 8)
			continue
		}
		buf[base+0] = uint8(rClay >> 8)
		buf[base+1] = uint8(gClay >> 8)
		buf[base+2] = uint8(bClay >> 8)
		buf[base+3] = uint8(aClay >> 8)
	}
}
