package geom

import "math"

// Tolerance used only where the sweep has to decide whether two computed
// coordinates are the same place. Predicates never use it.
const Tolerance = 1e-11

// Relative float comparison. Rounding in YAt and IntersectionPoint stays
// around 1e-13 for coordinates in the thousands, while distinct integer
// segments are rarely closer than 1e-7 there.
func Equal(a, b float64) bool {
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	return math.Abs(a-b) <= Tolerance*scale
}

// Allowance for rounding in a computed x, relative to |x|
const xRounding = 1e-13

// Equal for a height computed at a rounded x on a line as steep as slope. An
// error in x moves the height by slope times as much.
func EqualAt(a, b, x, slope float64) bool {
	if Equal(a, b) {
		return true
	}
	if math.IsInf(slope, 0) {
		return false
	}
	return math.Abs(a-b) <= xRounding*math.Abs(slope)*math.Max(1, math.Abs(x))
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) Scale(f float64) Point {
	return Point{p.X * f, p.Y * f}
}

// Z component of the 3D cross product
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - q.X*p.Y
}

// Lexicographic order, x first. Used to pick the left endpoint of a segment.
func (p Point) Before(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// Is the segment parallel to the y axis? Zero length segments count as
// vertical, since they have no x extent either.
func (s Segment) IsVertical() bool {
	return s.First.X == s.Second.X
}

func (s Segment) IsPoint() bool {
	return s.First == s.Second
}

// Return the segment with its endpoints ordered lexicographically, so that
// First is the left endpoint (or the lower one, for vertical segments).
func (s Segment) Normalize() Segment {
	if s.Second.Before(s.First) {
		return s.Reverse()
	}
	return s
}

func (s Segment) Reverse() Segment {
	return Segment{s.Second, s.First}
}

// Bounding box corners
func (s Segment) Bounds() (min, max Point) {
	min = Point{math.Min(s.First.X, s.Second.X), math.Min(s.First.Y, s.Second.Y)}
	max = Point{math.Max(s.First.X, s.Second.X), math.Max(s.First.Y, s.Second.Y)}
	return min, max
}

// Solve for the y value of the supporting line at x. Endpoints are returned
// exactly. A vertical segment has no single answer, so it reports its lower y.
func (s Segment) YAt(x float64) float64 {
	if s.IsVertical() {
		return math.Min(s.First.Y, s.Second.Y)
	}
	if x == s.First.X {
		return s.First.Y
	}
	if x == s.Second.X {
		return s.Second.Y
	}
	t := (x - s.First.X) / (s.Second.X - s.First.X)
	return s.First.Y + t*(s.Second.Y-s.First.Y)
}

// Slope dy/dx. Vertical segments are +Inf, which sorts them above anything
// through the same point.
func (s Segment) Slope() float64 {
	if s.IsVertical() {
		return math.Inf(1)
	}
	return (s.Second.Y - s.First.Y) / (s.Second.X - s.First.X)
}
