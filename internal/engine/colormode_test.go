package engine

import "testing"

func TestColorModeCycle(t *testing.T) {
	m := ModeBothColor
	want := []ColorMode{ModeBrickGray, ModeClayGray, ModeBothGray, ModeBothColor}
	for _, next := range want {
		m = m.Next()
		if m != next {
			t.Fatalf("cycle reached %v, want %v", m, next)
		}
	}
}

func TestColorModeStrings(t *testing.T) {
	cases := map[ColorMode]string{
		ModeBothColor: "both-color",
		ModeBrickGray: "brick-gray",
		ModeClayGray:  "clay-gray",
		ModeBothGray:  "both-gray",
	}
	for m, want := range cases {
		if got := m.String(); got != want {
			t.Fatalf("mode %d String() = %q, want %q", int(m), got, want)
		}
	}
}
