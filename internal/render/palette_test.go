package render

import (
	"testing"

	"brickwork/internal/engine"
)

func TestDesaturateFlattensChannels(t *testing.T) {
	g := desaturate(brickColor)
	if g.R != g.G || g.G != g.B {
		t.Fatalf("desaturated channels differ: %+v", g)
	}
	if g.A != brickColor.A {
		t.Fatalf("desaturate changed alpha: %+v", g)
	}
}

func TestModeColors(t *testing.T) {
	clay, brick := ModeColors(engine.ModeBothColor)
	if clay != clayColor || brick != brickColor {
		t.Fatal("both-color must keep the natural palette")
	}

	clay, brick = ModeColors(engine.ModeBrickGray)
	if clay != clayColor || brick == brickColor {
		t.Fatal("brick-gray must desaturate brick only")
	}
	if brick.R != brick.G || brick.G != brick.B {
		t.Fatalf("brick not gray: %+v", brick)
	}

	clay, brick = ModeColors(engine.ModeClayGray)
	if brick != brickColor || clay == clayColor {
		t.Fatal("clay-gray must desaturate clay only")
	}

	clay, brick = ModeColors(engine.ModeBothGray)
	if clay.R != clay.G || brick.R != brick.G {
		t.Fatalf("both-gray left color in the palette: clay %+v brick %+v", clay, brick)
	}
}
