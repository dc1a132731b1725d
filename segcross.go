// Find and classify the intersections in a set of 2D line segments.
//
// Every pair is found three ways: by brute force, by a sweep line over an
// ordered status structure, and through an R-tree of bounding boxes. The
// passes run on separate copies of the input and are timed, so their results
// and speed can be compared.
package segcross

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"slices"
	"time"

	"github.com/osuushi/segcross/advanced"
	"github.com/osuushi/segcross/geom"
	"github.com/pkg/errors"
)

type Point = geom.Point
type Segment = geom.Segment

type Report struct {
	Initial advanced.SegmentList
	Naive   advanced.SegmentList
	Sweep   advanced.SegmentList
	Indexed advanced.SegmentList

	NaiveElapsed   time.Duration
	SweepElapsed   time.Duration
	IndexedElapsed time.Duration

	SweepStats advanced.SweepStats
}

// Send pass logging to l. Silent by default.
func SetLogger(l *slog.Logger) {
	advanced.SetLogger(l)
}

// Run every pass over the segments. Each pass works on its own copy, and the
// input slice is never modified.
func Analyze(segments []Segment) (report *Report, err error) {
	defer func() {
		recoveredErr := advanced.HandlePanicRecover(recover())
		if recoveredErr != nil {
			report = nil
			err = recoveredErr
		}
	}()

	for i, s := range segments {
		for _, v := range []float64{s.First.X, s.First.Y, s.Second.X, s.Second.Y} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, errors.Errorf("segment %d has a non-finite coordinate: %v", i, s)
			}
		}
	}

	initial := advanced.NewSegmentList(segments)
	report = &Report{
		Initial: initial,
		Naive:   initial.Clone(),
		Sweep:   initial.Clone(),
		Indexed: initial.Clone(),
	}

	start := time.Now()
	advanced.CrossingNaive(report.Naive)
	report.NaiveElapsed = time.Since(start)

	start = time.Now()
	report.SweepStats = advanced.CrossingSweep(report.Sweep)
	report.SweepElapsed = time.Since(start)

	start = time.Now()
	advanced.CrossingIndexed(report.Indexed)
	report.IndexedElapsed = time.Since(start)

	return report, nil
}

// Number of segments analyzed
func (r *Report) Count() int {
	return len(r.Initial)
}

// Do all passes find exactly the same pairs?
func (r *Report) Agree() bool {
	naive := r.Naive.Crossings()
	for _, other := range []advanced.SegmentList{r.Sweep, r.Indexed} {
		crossings := other.Crossings()
		for i := range naive {
			if !slices.Equal(naive[i], crossings[i]) {
				return false
			}
		}
	}
	return true
}

func (r *Report) WriteSummary(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"Segments: %d\n"+
			"Naive elapsed time: %d ns\n"+
			"Sweep elapsed time: %d ns\n"+
			"Indexed elapsed time: %d ns\n"+
			"Intersecting pairs: naive %d, sweep %d, indexed %d\n"+
			"Sweep events: %d, peak active segments: %d\n",
		r.Count(),
		r.NaiveElapsed.Nanoseconds(),
		r.SweepElapsed.Nanoseconds(),
		r.IndexedElapsed.Nanoseconds(),
		r.Naive.PairCount(), r.Sweep.PairCount(), r.Indexed.PairCount(),
		r.SweepStats.Events, r.SweepStats.PeakActive,
	)
	return errors.Wrap(err, "writing summary")
}
