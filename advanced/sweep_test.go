package advanced

import (
	"container/heap"
	"math/rand"
	"testing"

	"github.com/osuushi/segcross/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Run every pass on its own copy of the lines.
func allPasses(t *testing.T, lines []geom.Segment) (naive, sweep, indexed SegmentList) {
	t.Helper()
	initial := NewSegmentList(lines)
	naive, sweep, indexed = initial.Clone(), initial.Clone(), initial.Clone()
	CrossingNaive(naive)
	stats := CrossingSweep(sweep)
	CrossingIndexed(indexed)
	require.Equal(t, 0, stats.FinalActive)
	return naive, sweep, indexed
}

func requireAgreement(t *testing.T, lines []geom.Segment) SegmentList {
	t.Helper()
	naive, sweep, indexed := allPasses(t, lines)
	require.Equal(t, naive.Crossings(), sweep.Crossings(), "sweep disagrees with naive on %v", lines)
	require.Equal(t, naive.Crossings(), indexed.Crossings(), "indexed disagrees with naive on %v", lines)
	return sweep
}

func randomLines(rng *rand.Rand, n, size int) []geom.Segment {
	coord := func() float64 { return float64(rng.Intn(size)) }
	lines := make([]geom.Segment, n)
	for i := range lines {
		lines[i] = seg(coord(), coord(), coord(), coord())
	}
	return lines
}

// Coordinates in [-span/2, span/2), so steep segments cross near the axes
func centeredLines(rng *rand.Rand, n, span int) []geom.Segment {
	coord := func() float64 { return float64(rng.Intn(span) - span/2) }
	lines := make([]geom.Segment, n)
	for i := range lines {
		lines[i] = seg(coord(), coord(), coord(), coord())
	}
	return lines
}

func TestSweepProperCrossing(t *testing.T) {
	sweep := requireAgreement(t, []geom.Segment{seg(0, 0, 4, 4), seg(0, 4, 4, 0)})
	for _, s := range sweep {
		assert.Equal(t, geom.Crossing, s.Case)
	}
	assert.ElementsMatch(t,
		[]any{geom.Red, geom.DarkenBy(geom.Red, 10)},
		[]any{sweep[0].Color, sweep[1].Color},
	)
}

func TestSweepClassifiesContacts(t *testing.T) {
	sweep := requireAgreement(t, []geom.Segment{
		seg(0, 0, 2, 0),     // 0 shares an endpoint with 1
		seg(2, 0, 4, 0),     // 1
		seg(10, 0, 14, 0),   // 2 contains 3
		seg(11, 0, 13, 0),   // 3
		seg(20, 0, 24, 4),   // 4 has 5 ending on its middle
		seg(22, 2, 24, 0),   // 5
		seg(30, 0, 31, 1),   // 6 alone
		seg(40, 0, 40, 10),  // 7 vertical
		seg(40, 10, 45, 10), // 8 shares 7's top
	})
	expected := []geom.Case{
		geom.SharedEndpoint, geom.SharedEndpoint,
		geom.FullOverlap, geom.FullOverlap,
		geom.EndpointOnSegment, geom.EndpointOnSegment,
		geom.NoIntersection,
		geom.SharedEndpoint, geom.SharedEndpoint,
	}
	for i, c := range expected {
		assert.Equal(t, c, sweep[i].Case, "segment %d", i)
	}
	assert.Equal(t, geom.Black, sweep[6].Color)
}

func TestSweepDegenerateScenes(t *testing.T) {
	cases := []struct {
		name  string
		lines []geom.Segment
		pairs int
	}{
		{
			"many through one point",
			[]geom.Segment{
				seg(0, 0, 10, 10),
				seg(0, 10, 10, 0),
				seg(0, 5, 10, 5),
				seg(5, 0, 5, 10),
				seg(0, 2, 10, 8),
				seg(2, 0, 8, 10),
			},
			15,
		},
		{
			"grid",
			[]geom.Segment{
				seg(0, 0, 4, 0), seg(0, 1, 4, 1), seg(0, 2, 4, 2), seg(0, 3, 4, 3), seg(0, 4, 4, 4),
				seg(0, 0, 0, 4), seg(1, 0, 1, 4), seg(2, 0, 2, 4), seg(3, 0, 3, 4), seg(4, 0, 4, 4),
			},
			25,
		},
		{
			"collinear runs",
			[]geom.Segment{
				seg(0, 0, 4, 0), seg(1, 0, 3, 0), seg(3, 0, 6, 0), seg(7, 0, 9, 0),
				seg(0, 0, 6, 2), seg(3, 1, 9, 3),
			},
			5,
		},
		{
			"stacked verticals and points",
			[]geom.Segment{
				seg(3, 0, 3, 2), seg(3, 1, 3, 5), seg(3, 5, 3, 7), seg(3, 8, 3, 9),
				seg(2, 2, 2, 2), seg(0, 0, 4, 4), seg(3, 3, 3, 3), seg(2, 2, 2, 2),
			},
			0, // checked against naive only
		},
		{
			"ending and starting on a line",
			[]geom.Segment{
				seg(0, 0, 8, 8),
				seg(0, 8, 4, 4), // ends on 0 from above
				seg(4, 4, 8, 5), // starts where 1 ends
				seg(4, 4, 8, 0), // starts there too, below
				seg(2, 9, 6, 9), // above everything
			},
			6,
		},
		{
			"crossing on an endpoint x",
			[]geom.Segment{
				seg(0, 0, 6, 6),
				seg(0, 6, 6, 0),
				seg(3, 5, 5, 5),
				seg(1, 2, 3, 4),
			},
			3,
		},
		{
			"steep crossing below the origin",
			[]geom.Segment{
				seg(-880, 13, 315, -22),
				seg(-90, 316, -635, -204),
				seg(-379, -198, -378, 730), // slope 928
			},
			3,
		},
		{
			"steep segments through one point",
			[]geom.Segment{
				seg(-2, -400, 2, 400),
				seg(2, -400, -2, 400),
				seg(-1, -350, 1, 350),
				seg(-500, 1, 500, -1),
				seg(-3, -300, -2, 300),
				seg(3, -300, 4, 300),
			},
			8,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			sweep := requireAgreement(t, c.lines)
			if c.pairs > 0 {
				assert.Equal(t, c.pairs, sweep.PairCount())
			}
		})
	}
}

func TestSweepAgreesWithNaiveOnRandomScenes(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		rng := rand.New(rand.NewSource(seed))
		// A small grid forces shared endpoints, verticals and overlaps
		requireAgreement(t, randomLines(rng, 60, 12))
		requireAgreement(t, randomLines(rng, 80, 1000))
	}
}

func TestSweepAgreesWithNaiveAroundTheOrigin(t *testing.T) {
	seeds := int64(2000)
	if testing.Short() {
		seeds = 200
	}
	for seed := int64(1); seed <= seeds; seed++ {
		rng := rand.New(rand.NewSource(seed))
		requireAgreement(t, centeredLines(rng, 60, 2000))
		if seed%4 == 0 {
			requireAgreement(t, centeredLines(rng, 60, 20000))
		}
	}
}

func TestSweepStatusAfterSteepCrossing(t *testing.T) {
	lines := NewSegmentList([]geom.Segment{
		seg(-880, 13, 315, -22),
		seg(-90, 316, -635, -204),
		seg(-379, -198, -378, 730),
	})
	s := newSweep(lines)
	swapped := false
	for s.queue.Len() > 0 {
		event := heap.Pop(&s.queue).(*SweepEvent)
		if event.X > s.x {
			s.x = event.X
			s.ended = s.ended[:0]
		}
		switch {
		case event.Crossing:
			s.swap(event)
			if event.Segment == 0 && event.Other == 2 {
				swapped = true
				assert.Equal(t, []int{0, 2, 1}, s.status.Keys())
			}
		case event.Left:
			s.activate(event)
		default:
			s.deactivate(event)
		}
	}
	assert.True(t, swapped)
	assert.Equal(t, [][]int{{1, 2}, {0, 2}, {0, 1}}, lines.Crossings())
}

func TestSweepWithoutCrossings(t *testing.T) {
	lines := NewSegmentList(ladder(80))
	stats := CrossingSweep(lines)
	assert.Equal(t, 0, lines.PairCount())
	assert.Equal(t, 160, stats.Events)
	assert.Equal(t, 80, stats.PeakActive)
	assert.Equal(t, 0, stats.FinalActive)
}

func TestSweepOnEmptyInput(t *testing.T) {
	stats := CrossingSweep(nil)
	assert.Equal(t, SweepStats{}, stats)
}

func TestEventOrder(t *testing.T) {
	lines := NewSegmentList([]geom.Segment{
		seg(2, 0, 0, 0), // reversed on purpose
		seg(2, 5, 2, 1), // vertical
		seg(2, 3, 4, 3),
	})
	queue := endpointEvents(lines)
	heap.Init(&queue)
	heap.Push(&queue, &SweepEvent{Point: geom.Point{X: 2, Y: 9}, Segment: 0, Crossing: true, Other: 2})

	var order []string
	for queue.Len() > 0 {
		order = append(order, heap.Pop(&queue).(*SweepEvent).String())
	}
	assert.Equal(t, []string{
		"left 0 at (0, 0)",
		"cross 0×2 at (2, 9)",
		"right 0 at (2, 0)",
		"left 1 at (2, 1)",
		"left 2 at (2, 3)",
		"right 1 at (2, 5)",
		"right 2 at (4, 3)",
	}, order)
}

func TestSweepReportsBrokenState(t *testing.T) {
	s := newSweep(NewSegmentList([]geom.Segment{seg(0, 0, 1, 1)}))
	err := func() (err error) {
		defer func() {
			err = HandlePanicRecover(recover())
		}()
		s.deactivate(&SweepEvent{Point: geom.Point{X: 1, Y: 1}, Segment: 0})
		return nil
	}()
	assert.EqualError(t, err, "segment 0 ends without being active")
}

func BenchmarkNaive(b *testing.B) {
	lines := NewSegmentList(randomLines(rand.New(rand.NewSource(1)), 500, 1000))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		CrossingNaive(lines.Clone())
	}
}

func BenchmarkSweep(b *testing.B) {
	lines := NewSegmentList(randomLines(rand.New(rand.NewSource(1)), 500, 1000))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		CrossingSweep(lines.Clone())
	}
}

func BenchmarkIndexed(b *testing.B) {
	lines := NewSegmentList(randomLines(rand.New(rand.NewSource(1)), 500, 1000))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		CrossingIndexed(lines.Clone())
	}
}
