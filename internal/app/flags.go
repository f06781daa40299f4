package app

import (
	"flag"

	"brickwork/internal/core"
	"brickwork/internal/engine"
)

// Config represents the command-line parameters for the gallery window.
type Config struct {
	Rows      int
	Cols      int
	CellSize  int
	TPS       int
	Seed      int64
	Speed     float64
	MaxSwipes int
	Freeze    int
	FitWindow bool
}

// NewConfig returns a Config populated with the engine defaults.
func NewConfig() *Config {
	e := engine.DefaultConfig()
	return &Config{
		Rows:      e.Rows,
		Cols:      e.Cols,
		CellSize:  12,
		TPS:       core.DefaultTPS,
		Seed:      e.Seed,
		Speed:     e.Speed,
		MaxSwipes: e.MaxSwipes,
		Freeze:    e.FreezeTicks,
		FitWindow: true,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "pixel size of one cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "engine ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for program selection")
	fs.Float64Var(&c.Speed, "speed", c.Speed, "program steps per tick, at most 1 fires per tick")
	fs.IntVar(&c.MaxSwipes, "max-swipes", c.MaxSwipes, "bounce cycles per swipe phase")
	fs.IntVar(&c.Freeze, "freeze", c.Freeze, "ticks to hold a finished picture")
	fs.BoolVar(&c.FitWindow, "fit", c.FitWindow, "derive grid dimensions from the window size")
}

// Engine converts the flag values into an engine configuration.
func (c *Config) Engine() engine.Config {
	return engine.Config{
		Rows:        c.Rows,
		Cols:        c.Cols,
		Seed:        c.Seed,
		FreezeTicks: c.Freeze,
		Speed:       c.Speed,
		MaxSwipes:   c.MaxSwipes,
	}
}
