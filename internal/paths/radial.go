package paths

import (
	"math"
	"sort"
)

// RayCount is the number of equally spaced rays the radial orders use,
// one per 15 degrees.
const RayCount = 24

// RayTable assigns every cell to the nearest of RayCount rays around
// Center and sorts each ray by ascending distance from it. Equidistant
// cells order by row, then column, so the table is stable across runs.
func RayTable(rows, cols int) [][]Position {
	rows, cols = clampDims(rows, cols)
	cr, cc := Center(rows, cols)
	angleStep := 2 * math.Pi / RayCount

	rays := make([][]Position, RayCount)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			angle := math.Atan2(float64(r-cr), float64(c-cc))
			if angle < 0 {
				angle += 2 * math.Pi
			}
			idx := int(math.Round(angle/angleStep)) % RayCount
			rays[idx] = append(rays[idx], Position{Row: r, Col: c})
		}
	}

	for i := range rays {
		ray := rays[i]
		sort.Slice(ray, func(a, b int) bool {
			da := sqDist(ray[a], cr, cc)
			db := sqDist(ray[b], cr, cc)
			if da != db {
				return da < db
			}
			if ray[a].Row != ray[b].Row {
				return ray[a].Row < ray[b].Row
			}
			return ray[a].Col < ray[b].Col
		})
	}
	return rays
}

// RadialClockwise concatenates the rays in index order 0..RayCount-1.
func RadialClockwise(rows, cols int) []Position {
	return flattenRays(RayTable(rows, cols), false)
}

// RadialCounterClockwise concatenates the rays in index order
// RayCount-1..0. Cells within a ray keep their distance order.
func RadialCounterClockwise(rows, cols int) []Position {
	return flattenRays(RayTable(rows, cols), true)
}

func flattenRays(rays [][]Position, reverse bool) []Position {
	total := 0
	for _, ray := range rays {
		total += len(ray)
	}
	path := make([]Position, 0, total)
	if reverse {
		for i := len(rays) - 1; i >= 0; i-- {
			path = append(path, rays[i]...)
		}
		return path
	}
	for _, ray := range rays {
		path = append(path, ray...)
	}
	return path
}

func sqDist(p Position, cr, cc int) int {
	dr := p.Row - cr
	dc := p.Col - cc
	return dr*dr + dc*dc
}
