package advanced

import (
	"fmt"

	"github.com/osuushi/segcross/geom"
)

// One endpoint of a segment becoming active (Left) or inactive, or a point
// where two active segments cross and have to swap places in the status
// structure. Events only live as long as the sweep.
type SweepEvent struct {
	geom.Point
	Segment int
	Left    bool
	// Vertical and zero length segments start and end at the same x
	Vertical bool

	// Set for crossing events. Other is the segment that Segment crosses.
	Crossing bool
	Other    int
}

// At equal x, crossings are resolved first so that everything after them sees
// the order just right of the crossing. Segments ending at x leave before
// segments starting at x arrive, so the status structure only ever holds
// segments that continue past x. Vertical segments have to outlive every
// arrival at their x, so they end last.
func (e *SweepEvent) rank() int {
	switch {
	case e.Crossing:
		return 0
	case e.Left:
		return 2
	case e.Vertical:
		return 3
	}
	return 1
}

func (e *SweepEvent) Less(other *SweepEvent) bool {
	if e.X != other.X {
		return e.X < other.X
	}
	if e.rank() != other.rank() {
		return e.rank() < other.rank()
	}
	if e.Y != other.Y {
		return e.Y < other.Y
	}
	if e.Segment != other.Segment {
		return e.Segment < other.Segment
	}
	return e.Other < other.Other
}

func (e *SweepEvent) String() string {
	switch {
	case e.Crossing:
		return fmt.Sprintf("cross %d×%d at (%g, %g)", e.Segment, e.Other, e.X, e.Y)
	case e.Left:
		return fmt.Sprintf("left %d at (%g, %g)", e.Segment, e.X, e.Y)
	}
	return fmt.Sprintf("right %d at (%g, %g)", e.Segment, e.X, e.Y)
}

// Decompose every segment into its left and right events. Vertical segments
// start at their lower endpoint.
func endpointEvents(lines SegmentList) eventQueue {
	queue := make(eventQueue, 0, 2*len(lines))
	for i, line := range lines {
		normal := line.Line.Normalize()
		vertical := normal.IsVertical()
		queue = append(queue,
			&SweepEvent{Point: normal.First, Segment: i, Left: true, Vertical: vertical},
			&SweepEvent{Point: normal.Second, Segment: i, Left: false, Vertical: vertical},
		)
	}
	return queue
}

// eventQueue is a min-heap of events, for use with container/heap.
type eventQueue []*SweepEvent

func (q eventQueue) Len() int           { return len(q) }
func (q eventQueue) Less(i, j int) bool { return q[i].Less(q[j]) }
func (q eventQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }

func (q *eventQueue) Push(x any) {
	*q = append(*q, x.(*SweepEvent))
}

func (q *eventQueue) Pop() any {
	old := *q
	n := len(old)
	event := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return event
}
