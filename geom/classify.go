package geom

import "image/color"

// Kinds of contact between two segments. The declaration order is the
// severity order: when several conditions hold for degenerate input, the
// highest one is the classification.
type Case int

const (
	NoIntersection Case = iota
	CollinearDisjoint
	Overlap
	FullOverlap
	SharedEndpoint
	EndpointOnSegment
	Crossing
)

// Palette, matching what the viewer has always drawn.
var (
	Black     = color.RGBA{0, 0, 0, 255}
	Gray      = color.RGBA{130, 130, 130, 255}
	Red       = color.RGBA{230, 41, 55, 255}
	Green     = color.RGBA{0, 228, 48, 255}
	DarkGreen = color.RGBA{0, 117, 44, 255}
	Purple    = color.RGBA{200, 122, 255, 255}
	Pink      = color.RGBA{255, 109, 194, 255}
	DarkBlue  = color.RGBA{0, 82, 172, 255}
	Blue      = color.RGBA{0, 121, 241, 255}
	RayWhite  = color.RGBA{245, 245, 245, 255}
)

func (c Case) Severity() int {
	return int(c)
}

// Do the segments actually touch?
func (c Case) Intersects() bool {
	return c >= Overlap
}

func (c Case) Color() color.RGBA {
	switch c {
	case Crossing:
		return Red
	case EndpointOnSegment:
		return Green
	case SharedEndpoint:
		return DarkGreen
	case FullOverlap:
		return Purple
	case Overlap:
		return DarkBlue
	case CollinearDisjoint:
		return Blue
	}
	return Gray
}

func (c Case) String() string {
	switch c {
	case Crossing:
		return "Intersection in a middle point"
	case EndpointOnSegment:
		return "Endpoint on the intersection"
	case SharedEndpoint:
		return "Intersection at a shared endpoint"
	case FullOverlap:
		return "Full overlap"
	case Overlap:
		return "Overlap on a shared line"
	case CollinearDisjoint:
		return "No intersection, but on a shared line"
	case NoIntersection:
		return "No intersection"
	}
	return "Invalid case"
}

// Darken each channel, saturating at zero. Alpha is left alone.
func DarkenBy(c color.RGBA, amount uint8) color.RGBA {
	darken := func(v uint8) uint8 {
		if v < amount {
			return 0
		}
		return v - amount
	}
	return color.RGBA{darken(c.R), darken(c.G), darken(c.B), c.A}
}

// Classify the contact between s and t. The checks run from most to least
// severe and the first match wins.
func Classify(s, t Segment) Case {
	o := orient4(s, t)
	collinear := o.collinear()

	switch {
	case o.crossing():
		return Crossing
	case !collinear && endpointOnInterior(s, t, o):
		return EndpointOnSegment
	case SharedEndpoints(s, t) == 1:
		return SharedEndpoint
	case !collinear:
		return NoIntersection
	case containsBox(s, t) || containsBox(t, s):
		// On a shared line, containment in the box means containment in the
		// segment.
		return FullOverlap
	case InsideBoundingBox(s, t.First) || InsideBoundingBox(s, t.Second):
		return Overlap
	}
	return CollinearDisjoint
}

// Some endpoint of one segment lies on the other, away from the other's own
// endpoints.
func endpointOnInterior(s, t Segment, o orientations) bool {
	onInterior := func(seg Segment, orientation Orientation, p Point) bool {
		return orientation == Collinear && InsideBoundingBox(seg, p) && p != seg.First && p != seg.Second
	}
	return onInterior(s, o.t1, t.First) ||
		onInterior(s, o.t2, t.Second) ||
		onInterior(t, o.s1, s.First) ||
		onInterior(t, o.s2, s.Second)
}
