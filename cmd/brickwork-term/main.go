package main

import (
	"github.com/integrii/flaggy"

	"brickwork/internal/core"
	"brickwork/internal/engine"
	_ "brickwork/internal/fill"
	"brickwork/internal/view"
)

func main() {
	cfg := engine.DefaultConfig()
	tps := core.DefaultTPS

	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&cfg.Cols, "x", "width", "Width of the wall in cells")
	flaggy.Int(&cfg.Rows, "y", "height", "Height of the wall in cells")
	flaggy.Int(&tps, "t", "tps", "Engine ticks per second")
	flaggy.Int(&cfg.FreezeTicks, "f", "freeze", "Ticks to hold a finished picture")
	flaggy.Float64(&cfg.Speed, "p", "speed", "Program steps per tick, at most 1 fires per tick")
	flaggy.Int(&cfg.MaxSwipes, "w", "maxSwipes", "Bounce cycles per swipe phase")
	flaggy.Int64(&cfg.Seed, "s", "seed", "Seed for program selection")
	flaggy.Parse()

	eng := engine.New(cfg)
	view.NewTerminalUI(eng, tps).Start()
}
