package advanced

import (
	"container/heap"
	"math"

	"github.com/osuushi/segcross/geom"
	"github.com/osuushi/segcross/status"
)

// Bentley-Ottmann: sweep a vertical line from left to right over the segment
// endpoints, keeping the segments it currently cuts ordered by height. Two
// segments can only start to intersect where they become neighbors in that
// order, so each event only tests a few neighbors instead of every pair. A
// proper crossing is scheduled as an event of its own, where the two segments
// swap places.
//
// Runs in O((n + k) log n) for n segments and k intersecting pairs, as long as
// the status tree stays shallow. It is not balanced, so adversarial input can
// cost more.

type SweepStats struct {
	Events int
	// Largest number of segments active at once
	PeakActive int
	// Segments still active when the sweep finished. Always zero for a sweep
	// that returns.
	FinalActive int
}

type segmentPair struct {
	a, b int
}

func orderedPair(a, b int) segmentPair {
	if a > b {
		a, b = b, a
	}
	return segmentPair{a, b}
}

type sweep struct {
	lines SegmentList
	// Copies of the lines with their left endpoint first
	normal []geom.Segment
	// Current position of the sweep line. It never moves backwards.
	x float64

	// Non-vertical active segments, keyed by id and ordered by height at x
	status  *status.Tree[*ColorSegment]
	handles map[int]status.Handle
	// Vertical segments have no single height, so they are kept out of the
	// tree. They are only ever active during events at their own x.
	verticals []int
	// Segments that already ended at x. Anything starting at x may still
	// touch them.
	ended []int
	// While a crossing run is put back, its members all sit at pinY
	pinned map[int]bool
	pinY   float64

	queue     eventQueue
	scheduled map[segmentPair]bool
	stats     SweepStats
}

// Find intersecting pairs with a sweep line. Results are recorded the same way
// as CrossingNaive records them, except that segments are colored by the kind
// of contact.
func CrossingSweep(lines SegmentList) SweepStats {
	s := newSweep(lines)
	s.run()
	Logger().Info("sweep pass done",
		"segments", len(lines),
		"events", s.stats.Events,
		"peak", s.stats.PeakActive,
		"pairs", lines.PairCount(),
	)
	return s.stats
}

func newSweep(lines SegmentList) *sweep {
	s := &sweep{
		lines:     lines,
		normal:    make([]geom.Segment, len(lines)),
		x:         math.Inf(-1),
		handles:   make(map[int]status.Handle),
		scheduled: make(map[segmentPair]bool),
	}
	for i := range lines {
		s.normal[i] = lines[i].Line.Normalize()
	}
	s.status = status.NewWithComparator[*ColorSegment](s.compare)
	s.queue = endpointEvents(lines)
	heap.Init(&s.queue)
	return s
}

func (s *sweep) run() {
	for s.queue.Len() > 0 {
		event := heap.Pop(&s.queue).(*SweepEvent)
		if event.X > s.x {
			s.x = event.X
			s.ended = s.ended[:0]
		}
		s.stats.Events++
		if debugEnabled() {
			Logger().Debug("sweep event", "event", event.String(), "status", s.dbgStatus())
		}

		switch {
		case event.Crossing:
			s.swap(event)
		case event.Left:
			s.activate(event)
		default:
			s.deactivate(event)
		}

		if active := s.status.Len() + len(s.verticals); active > s.stats.PeakActive {
			s.stats.PeakActive = active
		}
	}

	s.stats.FinalActive = s.status.Len() + len(s.verticals)
	if s.stats.FinalActive != 0 {
		fatalf("%d segments still active after the sweep: %v", s.stats.FinalActive, s.status.Keys())
	}
}

// Order segment ids by height at the sweep line. Segments at the same height
// are ordered by slope, which is their order just to the right of the sweep
// line. Ids break the remaining ties, so distinct segments never compare
// equal.
func (s *sweep) compare(a, b int) int {
	if a == b {
		return 0
	}
	if !s.pinned[a] || !s.pinned[b] {
		ya, yb := s.height(a), s.height(b)
		if !geom.Equal(ya, yb) {
			if ya < yb {
				return -1
			}
			return 1
		}
	}
	ma, mb := s.normal[a].Slope(), s.normal[b].Slope()
	if ma != mb {
		if ma < mb {
			return -1
		}
		return 1
	}
	if a < b {
		return -1
	}
	return 1
}

func (s *sweep) height(id int) float64 {
	if s.pinned[id] {
		return s.pinY
	}
	return s.normal[id].YAt(s.x)
}

func (s *sweep) passesThrough(id int, p geom.Point) bool {
	line := s.normal[id]
	return geom.EqualAt(line.YAt(p.X), p.Y, p.X, line.Slope())
}

func (s *sweep) activate(event *SweepEvent) {
	id := event.Segment
	for _, vertical := range s.verticals {
		s.test(id, vertical)
	}
	for _, other := range s.ended {
		s.test(id, other)
	}

	if s.normal[id].IsVertical() {
		s.activateVertical(id)
		return
	}

	h, ok := s.status.InsertHandle(id, &s.lines[id])
	if !ok {
		fatalf("segment %d compares equal to active segment %d", id, s.status.Key(h))
	}
	s.handles[id] = h
	s.testNeighbors(h, event.Point)
}

// Test a vertical segment against every active segment whose height at x
// falls within its span.
func (s *sweep) activateVertical(id int) {
	low, high := s.normal[id].First.Y, s.normal[id].Second.Y
	below := func(key int) int {
		y := s.normal[key].YAt(s.x)
		if y < low && !geom.Equal(y, low) {
			return -1
		}
		return 1
	}
	for n := s.status.LowerBound(below); n != status.None; n = s.status.Next(n) {
		key := s.status.Key(n)
		y := s.normal[key].YAt(s.x)
		if y > high && !geom.Equal(y, high) {
			break
		}
		s.test(id, key)
	}
	s.verticals = append(s.verticals, id)
}

func (s *sweep) deactivate(event *SweepEvent) {
	id := event.Segment
	if s.normal[id].IsVertical() {
		for i, vertical := range s.verticals {
			if vertical == id {
				s.verticals = append(s.verticals[:i], s.verticals[i+1:]...)
				return
			}
		}
		fatalf("vertical segment %d ends without being active", id)
	}

	h, ok := s.handles[id]
	if !ok {
		fatalf("segment %d ends without being active", id)
	}
	s.testNeighbors(h, event.Point)

	// The neighbors on either side are about to meet
	prev, next := s.status.Prev(h), s.status.Next(h)
	if prev != status.None && next != status.None {
		s.test(s.status.Key(prev), s.status.Key(next))
	}

	s.status.RemoveHandle(h)
	delete(s.handles, id)
	s.ended = append(s.ended, id)
}

// Two active segments cross at the event point. Everything passing through
// that point reverses its order there, so the whole run is taken out and put
// back at the crossing height, where only slopes order it.
func (s *sweep) swap(event *SweepEvent) {
	a, b := event.Segment, event.Other
	ha, okA := s.handles[a]
	_, okB := s.handles[b]
	if !okA || !okB {
		// One of them already ended, so its right event handled the neighbors
		return
	}

	run := s.runThrough(ha, event.Point, a, b)
	inRun := make(map[int]bool, len(run))
	for i, id := range run {
		inRun[id] = true
		for _, other := range run[i+1:] {
			s.test(id, other)
		}
	}

	for _, id := range run {
		s.status.RemoveHandle(s.handles[id])
		delete(s.handles, id)
	}
	s.pinned, s.pinY = inRun, event.Y
	for _, id := range run {
		h, ok := s.status.InsertHandle(id, &s.lines[id])
		if !ok {
			fatalf("segment %d compares equal to active segment %d after crossing", id, s.status.Key(h))
		}
		s.handles[id] = h
	}
	s.pinned = nil

	// The run has new neighbors at its ends
	for _, id := range run {
		h := s.handles[id]
		if n := s.status.Prev(h); n != status.None && !inRun[s.status.Key(n)] {
			s.test(s.status.Key(n), id)
		}
		if n := s.status.Next(h); n != status.None && !inRun[s.status.Key(n)] {
			s.test(id, s.status.Key(n))
		}
	}
}

// Collect the contiguous segments around h that pass through p, bottom to
// top. a and b always belong, even if rounding puts them slightly off p.
func (s *sweep) runThrough(h status.Handle, p geom.Point, a, b int) []int {
	member := func(n status.Handle) bool {
		if n == status.None {
			return false
		}
		key := s.status.Key(n)
		return key == a || key == b || s.passesThrough(key, p)
	}
	bottom := h
	for n := s.status.Prev(h); member(n); n = s.status.Prev(n) {
		bottom = n
	}
	var run []int
	for n := bottom; member(n); n = s.status.Next(n) {
		run = append(run, s.status.Key(n))
	}
	return run
}

// Test the segment at h against its neighbors below and above. The walk keeps
// going in a direction for as long as the neighbors pass through p, since
// everything meeting at p touches the segment there.
func (s *sweep) testNeighbors(h status.Handle, p geom.Point) {
	id := s.status.Key(h)
	for n := s.status.Prev(h); n != status.None; n = s.status.Prev(n) {
		other := s.status.Key(n)
		s.test(other, id)
		if !s.passesThrough(other, p) {
			break
		}
	}
	for n := s.status.Next(h); n != status.None; n = s.status.Next(n) {
		other := s.status.Key(n)
		s.test(id, other)
		if !s.passesThrough(other, p) {
			break
		}
	}
}

// Exact test of one pair. Hits are recorded, and proper crossings that still
// lie ahead of the sweep line get an event.
func (s *sweep) test(a, b int) {
	if a == b {
		return
	}
	la, lb := s.lines[a].Line, s.lines[b].Line
	if !geom.SegmentsIntersect(la, lb) {
		return
	}
	c := geom.Classify(la, lb)
	s.lines.mark(a, b, c)
	if debugEnabled() {
		Logger().Debug("intersection", "a", s.dbgSegmentName(a), "b", s.dbgSegmentName(b), "case", c.String())
	}
	if c == geom.Crossing {
		s.scheduleCrossing(a, b)
	}
}

func (s *sweep) scheduleCrossing(a, b int) {
	if s.normal[a].IsVertical() || s.normal[b].IsVertical() {
		return
	}
	pair := orderedPair(a, b)
	if s.scheduled[pair] {
		return
	}
	s.scheduled[pair] = true

	p, ok := geom.IntersectionPoint(s.normal[a], s.normal[b])
	if !ok {
		return
	}
	if p.X < s.x {
		if !geom.Equal(p.X, s.x) {
			// Already behind the sweep line, so the order is already past it
			return
		}
		p.X = s.x
	}
	heap.Push(&s.queue, &SweepEvent{Point: p, Segment: pair.a, Crossing: true, Other: pair.b})
}
