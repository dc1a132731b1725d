// Package scenario produces segment sets to analyze: random scenes, text and
// SVG input, and a few embedded fixtures.
package scenario

import (
	"math/rand"

	"github.com/osuushi/segcross/geom"
)

// Generate n segments with integer endpoints drawn uniformly from the closed
// box [0, width] x [0, height].
func Random(rng *rand.Rand, n, width, height int) []geom.Segment {
	point := func() geom.Point {
		return geom.Point{
			X: float64(rng.Intn(width + 1)),
			Y: float64(rng.Intn(height + 1)),
		}
	}
	lines := make([]geom.Segment, n)
	for i := range lines {
		lines[i] = geom.Segment{First: point(), Second: point()}
	}
	return lines
}
