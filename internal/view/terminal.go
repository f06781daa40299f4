// Package view renders the animation inside a terminal using gocui.
package view

import (
	"bytes"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"brickwork/internal/core"
	"brickwork/internal/engine"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
)

type keyBinding struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

// TerminalUI drives the engine from a goroutine and paints the wall into a
// gocui view. The mutex guards the engine; gocui handlers and the tick
// loop both go through it.
type TerminalUI struct {
	eng *engine.Scheduler
	cfg engine.Config
	g   *gocui.Gui
	k   []keyBinding

	mu     sync.Mutex
	paused bool

	tps  int
	done chan struct{}
}

var (
	clayFiller      = aurora.Yellow("░").String()
	brickFiller     = aurora.Red("█").String()
	grayClayFiller  = "░"
	grayBrickFiller = aurora.White("█").String()
)

// modeFillers maps a color mode onto the clay and brick glyphs.
func modeFillers(mode engine.ColorMode) (clay, brick string) {
	switch mode {
	case engine.ModeBrickGray:
		return clayFiller, grayBrickFiller
	case engine.ModeClayGray:
		return grayClayFiller, brickFiller
	case engine.ModeBothGray:
		return grayClayFiller, grayBrickFiller
	}
	return clayFiller, brickFiller
}

// NewTerminalUI builds the gocui front-end over the scheduler.
func NewTerminalUI(eng *engine.Scheduler, tps int) *TerminalUI {
	if tps <= 0 {
		tps = core.DefaultTPS
	}
	t := &TerminalUI{
		eng:  eng,
		cfg:  eng.Config(),
		tps:  tps,
		done: make(chan struct{}),
	}

	var err error
	t.g, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln(err)
	}

	t.k = []keyBinding{
		{gocui.KeyCtrlC,
			"^C",
			"Exit",
			t.cmdQuit,
			""},
		{gocui.KeySpace,
			"SPACE",
			"Pause/resume",
			t.cmdPause,
			""},
		{'n',
			"N",
			"Tick once",
			t.cmdStep,
			""},
		{'r',
			"R",
			"Restart program",
			t.cmdRestart,
			""},
	}
	t.g.SetManagerFunc(t.layout)
	t.initKeyBindings(t.k)

	return t
}

func (t *TerminalUI) initKeyBindings(k []keyBinding) {
	for _, kb := range k {
		h := kb.handler
		if err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(gui *gocui.Gui, view *gocui.View) error { return h(view) }); err != nil {
			log.Panicln(err)
		}
	}
}

// Start runs the tick loop and blocks in the gocui main loop until exit.
func (t *TerminalUI) Start() {
	go t.run()
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Panicln(err)
	}
	close(t.done)
	t.g.Close()
}

// run advances the engine at the configured tick rate.
func (t *TerminalUI) run() {
	step := core.NewFixedStep(t.tps)
	ticker := time.NewTicker(time.Second / 120)
	defer ticker.Stop()
	for {
		select {
		case <-t.done:
			return
		case <-ticker.C:
			if !step.ShouldStep() {
				continue
			}
			t.mu.Lock()
			if !t.paused {
				t.eng.Tick()
			}
			t.mu.Unlock()
			t.refresh()
		}
	}
}

func (t *TerminalUI) refresh() {
	t.renderWall()
	t.renderStatus()
}

func (t *TerminalUI) renderWall() {
	t.g.Update(func(g *gocui.Gui) error {
		v, err := g.View("wall")
		if err != nil {
			return err
		}

		t.mu.Lock()
		size := t.eng.Size()
		cells := append([]core.CellState(nil), t.eng.Cells()...)
		clay, brick := modeFillers(t.eng.Mode())
		t.mu.Unlock()

		v.Clear()
		maxW, maxH := v.Size()
		crop := size.Cols > maxW || size.Rows > maxH

		var b bytes.Buffer
		for r := 0; r < size.Rows; r++ {
			if r >= maxH {
				break
			}
			if r != 0 {
				b.WriteByte(10)
			}
			if crop && r == maxH-1 {
				b.WriteString(aurora.Red("The grid is larger than the viewing area").BgBlack().String())
				break
			}
			for c := 0; c < size.Cols; c++ {
				if c >= maxW {
					break
				}
				if cells[r*size.Cols+c] == core.Brick {
					b.WriteString(brick)
				} else {
					b.WriteString(clay)
				}
			}
		}
		_, _ = fmt.Fprint(v, b.String())
		return nil
	})
}

func (t *TerminalUI) renderStatus() {
	t.g.Update(func(g *gocui.Gui) error {
		v, err := g.View("status")
		if err != nil {
			return err
		}

		t.mu.Lock()
		program := t.eng.ActiveName()
		mode := t.eng.Mode().String()
		state := t.stateLabel(t.eng.Frozen(), t.paused)
		ticks := t.eng.Ticks()
		t.mu.Unlock()

		v.Clear()
		_, _ = fmt.Fprintln(v, t.renderProp("Program", "%v", program))
		_, _ = fmt.Fprintln(v, t.renderProp("Mode", "%v", mode))
		_, _ = fmt.Fprintln(v, t.renderProp("State", "%v", state))
		_, _ = fmt.Fprintln(v, t.renderProp("Ticks", "%v", ticks))
		return nil
	})
}

func (t *TerminalUI) renderConfiguration() {
	t.g.Update(func(g *gocui.Gui) error {
		v, err := g.View("configuration")
		if err != nil {
			return err
		}
		v.Clear()
		_, _ = fmt.Fprintln(v, t.renderProp("Dimension", "%v x %v", t.cfg.Rows, t.cfg.Cols))
		_, _ = fmt.Fprintln(v, t.renderProp("Ticks/s", "%v", t.tps))
		_, _ = fmt.Fprintln(v, t.renderProp("Speed", "%v", t.cfg.Speed))
		_, _ = fmt.Fprintln(v, t.renderProp("Freeze", "%v ticks", t.cfg.FreezeTicks))
		_, _ = fmt.Fprintln(v, t.renderProp("Seed", "%v", t.cfg.Seed))
		return nil
	})
}

func (t *TerminalUI) stateLabel(frozen, paused bool) string {
	switch {
	case paused:
		return aurora.Colorize("paused", aurora.BlueFg).String()
	case frozen:
		return aurora.Colorize("frozen", aurora.CyanFg).String()
	}
	return aurora.Colorize("running", aurora.GreenFg).String()
}

func (t *TerminalUI) renderProp(name string, valueFormat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueFormat, values...)
}

func (t *TerminalUI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	leftColumnWidth := 28
	minWindowHeight := 20

	if maxY < minWindowHeight {
		if _, err := t.headerLayout(g, maxY, "Terminal height too small"); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
		_ = g.DeleteView("configuration")
		_ = g.DeleteView("status")
		_ = g.DeleteView("wall")
		return nil
	}

	if _, err := t.headerLayout(g, 3, "brickwork: a wall builds itself"); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
	}

	if v, err := g.SetView("configuration", 0, 3, leftColumnWidth, 3+(maxY-5-3)/2); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Configuration"
		v.Frame = true
		t.renderConfiguration()
	}

	if v, err := g.SetView("status", 0, 3+(maxY-5-3)/2+1, leftColumnWidth, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
		t.renderStatus()
	}

	if v, err := g.SetView("wall", leftColumnWidth+1, 3, maxX-1, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Wall"
		v.Frame = true
		t.renderWall()
	} else {
		t.renderWall()
	}

	if v, err := g.SetView("help", -1, maxY-5, maxX, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		b := bytes.Buffer{}
		b.WriteString("KEYBINDINGS: ")
		for i, k := range t.k {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}

	return nil
}

func (t *TerminalUI) headerLayout(g *gocui.Gui, height int, text string) (v *gocui.View, err error) {
	maxX, _ := g.Size()
	if v, err = g.SetView("header", -1, -1, maxX+1, height); err != nil {
		if err == gocui.ErrUnknownView && v != nil {
			v.Frame = false
			v.BgColor = gocui.ColorCyan
			v.FgColor = gocui.ColorBlack
		}
	}
	if v != nil {
		v.Clear()
		if maxX < len(text) {
			panic(fmt.Sprintf("Terminal width is too small: %v", maxX))
		}
		_, _ = fmt.Fprintln(v, strings.Repeat("\n", height/2+1)+strings.Repeat(" ", (maxX-len(text))/2)+text)
	}
	return
}

func (t *TerminalUI) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *TerminalUI) cmdPause(_ *gocui.View) error {
	t.mu.Lock()
	t.paused = !t.paused
	t.mu.Unlock()
	t.renderStatus()
	return nil
}

func (t *TerminalUI) cmdStep(_ *gocui.View) error {
	t.mu.Lock()
	t.eng.Tick()
	t.mu.Unlock()
	t.refresh()
	return nil
}

func (t *TerminalUI) cmdRestart(_ *gocui.View) error {
	t.mu.Lock()
	t.eng.Restart()
	t.mu.Unlock()
	t.refresh()
	return nil
}
