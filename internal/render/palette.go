package render

import (
	"image/color"

	"brickwork/internal/engine"
)

// Base colors for the two cell states.
var (
	clayColor  = color.RGBA{R: 196, G: 148, B: 108, A: 255}
	brickColor = color.RGBA{R: 158, G: 62, B: 42, A: 255}
)

// ModeColors returns the clay and brick colors for a color mode.
func ModeColors(mode engine.ColorMode) (clay, brick color.RGBA) {
	clay, brick = clayColor, brickColor
	switch mode {
	case engine.ModeBrickGray:
		brick = desaturate(brick)
	case engine.ModeClayGray:
		clay = desaturate(clay)
	case engine.ModeBothGray:
		clay = desaturate(clay)
		brick = desaturate(brick)
	}
	return clay, brick
}

// desaturate maps a color onto its luma gray.
func desaturate(c color.RGBA) color.RGBA {
	gray := uint8((299*int(c.R) + 587*int(c.G) + 114*int(c.B)) / 1000)
	return color.RGBA{R: gray, G: gray, B: gray, A: c.A}
}
