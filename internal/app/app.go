//go:build ebiten

package app

import (
	"brickwork/internal/engine"
	"brickwork/internal/render"
	"brickwork/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the engine scheduler to the ebiten.Game interface.
type Game struct {
	eng     *engine.Scheduler
	painter *render.GridPainter
	overlay *ui.Overlay

	cellSize  int
	fitWindow bool
	paused    bool
	tickOnce  bool
}

// New constructs a Game over the scheduler.
func New(eng *engine.Scheduler, cellSize int, fitWindow bool) *Game {
	if cellSize < 1 {
		cellSize = 1
	}
	size := eng.Size()
	return &Game{
		eng:       eng,
		painter:   render.NewGridPainter(size.Rows, size.Cols),
		overlay:   ui.NewOverlay(eng),
		cellSize:  cellSize,
		fitWindow: fitWindow,
	}
}

// Update handles per-frame input and advances the engine by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.eng.Restart()
	}

	if g.overlay != nil {
		g.overlay.Update()
	}

	if !g.paused || g.tickOnce {
		g.eng.Tick()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the grid in the active color mode.
func (g *Game) Draw(screen *ebiten.Image) {
	clay, brick := render.ModeColors(g.eng.Mode())
	g.painter.Blit(screen, g.eng.Cells(), clay, brick, g.cellSize)
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

// Layout reports the logical screen size. In fit mode the grid follows the
// window: a change in cell dimensions tears the engine down and rebuilds
// it, along with the painter.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.fitWindow {
		rows := outsideHeight / g.cellSize
		cols := outsideWidth / g.cellSize
		if rows < 1 {
			rows = 1
		}
		if cols < 1 {
			cols = 1
		}
		size := g.eng.Size()
		if rows != size.Rows || cols != size.Cols {
			g.eng.Resize(rows, cols)
			g.painter = render.NewGridPainter(rows, cols)
		}
	}
	size := g.eng.Size()
	return size.Cols * g.cellSize, size.Rows * g.cellSize
}
