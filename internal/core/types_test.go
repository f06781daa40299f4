package core

import (
	"slices"
	"testing"
)

func TestRegisterPreservesOrder(t *testing.T) {
	saved := programs
	programs = nil
	defer func() { programs = saved }()

	factory := func(Canvas, map[string]string) Program { return nil }
	Register("vertical", factory)
	Register("horizontal", factory)
	Register("vertical", factory)
	Register("", factory)
	Register("rings", nil)
	Register("rings", factory)

	want := []string{"vertical", "horizontal", "rings"}
	if got := Programs(); !slices.Equal(got, want) {
		t.Fatalf("Programs() = %v, want %v", got, want)
	}
	if _, ok := Lookup("horizontal"); !ok {
		t.Fatal("Lookup failed for a registered name")
	}
	if _, ok := Lookup("missing"); ok {
		t.Fatal("Lookup succeeded for an unregistered name")
	}
}

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(99)
	b := NewRNG(99)
	for i := 0; i < 64; i++ {
		if got, want := a.IntN(7), b.IntN(7); got != want {
			t.Fatalf("draw %d: %d != %d for identical seeds", i, got, want)
		}
	}
	if got := NewRNG(1).IntN(0); got != 0 {
		t.Fatalf("IntN(0) = %d, want 0", got)
	}
}
