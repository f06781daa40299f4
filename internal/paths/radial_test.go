package paths

import (
	"slices"
	"testing"
)

func TestRayTableCoversGrid(t *testing.T) {
	rays := RayTable(9, 11)
	if len(rays) != RayCount {
		t.Fatalf("ray count = %d, want %d", len(rays), RayCount)
	}
	var flat []Position
	for _, ray := range rays {
		flat = append(flat, ray...)
	}
	assertExactCover(t, flat, 9, 11)
}

func TestRaysSortedByDistance(t *testing.T) {
	cr, cc := Center(9, 11)
	for i, ray := range RayTable(9, 11) {
		for j := 1; j < len(ray); j++ {
			if sqDist(ray[j-1], cr, cc) > sqDist(ray[j], cr, cc) {
				t.Fatalf("ray %d not ascending by distance at index %d: %v", i, j, ray)
			}
		}
	}
}

func TestRayAssignmentDirections(t *testing.T) {
	rays := RayTable(5, 5)
	if rays[0][0] != (Position{Row: 2, Col: 1}) {
		t.Fatalf("ray 0 must start at the center cell, got %v", rays[0][0])
	}
	checks := []struct {
		ray int
		pos Position
	}{
		{0, Position{Row: 2, Col: 2}},
		{6, Position{Row: 3, Col: 1}},
		{12, Position{Row: 2, Col: 0}},
		{18, Position{Row: 1, Col: 1}},
	}
	for _, check := range checks {
		if !slices.Contains(rays[check.ray], check.pos) {
			t.Fatalf("ray %d should contain %v: %v", check.ray, check.pos, rays[check.ray])
		}
	}
}

func TestRadialOrders(t *testing.T) {
	cw := RadialClockwise(7, 7)
	if !slices.Equal(cw, RadialClockwise(7, 7)) {
		t.Fatal("clockwise order not deterministic")
	}
	assertExactCover(t, cw, 7, 7)

	ccw := RadialCounterClockwise(7, 7)
	assertExactCover(t, ccw, 7, 7)

	rays := RayTable(7, 7)
	var want []Position
	for i := len(rays) - 1; i >= 0; i-- {
		want = append(want, rays[i]...)
	}
	if !slices.Equal(ccw, want) {
		t.Fatal("counter-clockwise order must reverse ray order, not cell order")
	}
}

func TestRadialTinyGrids(t *testing.T) {
	cases := []struct{ rows, cols int }{{1, 1}, {1, 4}, {3, 1}}
	for _, tc := range cases {
		assertExactCover(t, RadialClockwise(tc.rows, tc.cols), tc.rows, tc.cols)
	}
}
