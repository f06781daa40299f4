//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"brickwork/internal/app"
	"brickwork/internal/engine"
	_ "brickwork/internal/fill"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	eng := engine.New(cfg.Engine())
	game := app.New(eng, cfg.CellSize, cfg.FitWindow)
	size := eng.Size()

	ebiten.SetWindowTitle("brickwork")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.Cols*cfg.CellSize, size.Rows*cfg.CellSize)
	if cfg.FitWindow {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
