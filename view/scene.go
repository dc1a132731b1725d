package view

import (
	"image/color"

	"github.com/osuushi/segcross/advanced"
	"github.com/osuushi/segcross/geom"
)

type Stroke struct {
	Line  geom.Segment
	Color color.RGBA
}

// One result set per state. The lists are only read.
type Scene struct {
	Initial advanced.SegmentList
	Naive   advanced.SegmentList
	Sweep   advanced.SegmentList
}

var Background = geom.RayWhite

func (sc *Scene) lines(state State) advanced.SegmentList {
	switch state {
	case Naive:
		return sc.Naive
	case Sweep:
		return sc.Sweep
	}
	return sc.Initial
}

// Strokes to draw for a state, in segment order.
func (sc *Scene) Frame(state State) []Stroke {
	lines := sc.lines(state)
	frame := make([]Stroke, len(lines))
	for i, s := range lines {
		frame[i] = Stroke{Line: s.Line, Color: s.Color}
	}
	return frame
}
