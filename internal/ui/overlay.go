//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"brickwork/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay renders a toggleable parameter panel in the top-left corner.
type Overlay struct {
	provider core.ParameterProvider
	visible  bool
	panel    *ebiten.Image
	lines    []string
}

// NewOverlay constructs an overlay reading from the provider.
func NewOverlay(provider core.ParameterProvider) *Overlay {
	return &Overlay{provider: provider}
}

// Update polls the toggle key and refreshes the panel lines.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		o.visible = !o.visible
	}
	if !o.visible || o.provider == nil {
		return
	}
	snap := o.provider.Parameters()
	o.lines = o.lines[:0]
	for _, group := range snap.Groups {
		o.lines = append(o.lines, group.Name)
		for _, param := range group.Params {
			o.lines = append(o.lines, fmt.Sprintf("  %s: %s", param.Label, param.Value))
		}
	}
}

// Draw paints the panel onto the screen when visible.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible || len(o.lines) == 0 {
		return
	}
	face := basicfont.Face7x13
	width := 0
	for _, line := range o.lines {
		if w := text.BoundString(face, line).Dx(); w > width {
			width = w
		}
	}
	width += 2 * panelPadding
	height := len(o.lines)*lineHeight + 2*panelPadding

	if o.panel == nil || o.panel.Bounds().Dx() != width || o.panel.Bounds().Dy() != height {
		o.panel = ebiten.NewImage(width, height)
	}
	o.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 230})
	for i, line := range o.lines {
		y := panelPadding + i*lineHeight + lineBaseline
		text.Draw(o.panel, line, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(panelMargin, panelMargin)
	screen.DrawImage(o.panel, op)
}

const (
	panelPadding = 8
	lineHeight   = 16
	lineBaseline = 12
	panelMargin  = 8
)
