package geom

type Point struct {
	X float64
	Y float64
}

// A segment is an ordered pair of points. Segments are compared by position in
// whatever collection holds them, never by value, so two equal segments are
// still two segments.
type Segment struct {
	First  Point
	Second Point
}

// Orientation of a point triple. The values are chosen so that swapping the
// last two points negates the orientation.
type Orientation int

const (
	CounterClockwise Orientation = -1
	Collinear        Orientation = 0
	Clockwise        Orientation = 1
)

func (o Orientation) String() string {
	switch o {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counterclockwise"
	case Collinear:
		return "collinear"
	}
	return "invalid"
}
