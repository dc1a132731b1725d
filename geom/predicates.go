package geom

// Tells whether the loop pqr turns clockwise, counterclockwise, or is
// degenerate. This is the sign of (p-q) x (p-r). There is deliberately no
// tolerance: near collinear triples are at the mercy of rounding.
//
// With y growing downward (screen coordinates), Clockwise matches what you see.
func Orient(p, q, r Point) Orientation {
	o := p.Sub(q).Cross(p.Sub(r))
	if o > 0 {
		return Clockwise
	} else if o < 0 {
		return CounterClockwise
	}
	return Collinear
}

// Check if p lies inside the closed box that has s as its diagonal.
func InsideBoundingBox(s Segment, p Point) bool {
	min, max := s.Bounds()
	return p.X >= min.X && p.X <= max.X && p.Y >= min.Y && p.Y <= max.Y
}

// Check if both endpoints of t lie inside the box of s.
func containsBox(s, t Segment) bool {
	return InsideBoundingBox(s, t.First) && InsideBoundingBox(s, t.Second)
}

// The four orientation tests shared by SegmentsIntersect and Classify. t1 and
// t2 place t's endpoints against s, s1 and s2 place s's endpoints against t.
type orientations struct {
	t1, t2, s1, s2 Orientation
}

func orient4(s, t Segment) orientations {
	return orientations{
		t1: Orient(s.First, s.Second, t.First),
		t2: Orient(s.First, s.Second, t.Second),
		s1: Orient(t.First, t.Second, s.First),
		s2: Orient(t.First, t.Second, s.Second),
	}
}

// Each segment has its endpoints strictly on opposite sides of the other.
func (o orientations) crossing() bool {
	return o.t1*o.t2 < 0 && o.s1*o.s2 < 0
}

func (o orientations) collinear() bool {
	return o.t1 == Collinear && o.t2 == Collinear && o.s1 == Collinear && o.s2 == Collinear
}

func SegmentsIntersect(s, t Segment) bool {
	o := orient4(s, t)

	// They cross at a middle point
	if o.crossing() {
		return true
	}

	// Some endpoint lies on the other segment
	return (o.t1 == Collinear && InsideBoundingBox(s, t.First)) ||
		(o.t2 == Collinear && InsideBoundingBox(s, t.Second)) ||
		(o.s1 == Collinear && InsideBoundingBox(t, s.First)) ||
		(o.s2 == Collinear && InsideBoundingBox(t, s.Second))
}

// Count how many endpoints of s coincide with an endpoint of t.
func SharedEndpoints(s, t Segment) int {
	count := 0
	for _, p := range [2]Point{s.First, s.Second} {
		if p == t.First || p == t.Second {
			count++
		}
	}
	return count
}

// Find where the lines through s and t meet. Parallel (and degenerate) lines
// have no single answer.
//
// Each coordinate is a single division, so an intersection of integer
// segments that lands on an integer coordinate comes out exact.
func IntersectionPoint(s, t Segment) (Point, bool) {
	r := s.Second.Sub(s.First)
	d := t.Second.Sub(t.First)
	denominator := r.Cross(d)
	if denominator == 0 {
		return Point{}, false
	}
	numerator := t.First.Sub(s.First).Cross(d)
	return Point{
		(s.First.X*denominator + r.X*numerator) / denominator,
		(s.First.Y*denominator + r.Y*numerator) / denominator,
	}, true
}
