package advanced

import (
	"github.com/dhconnelly/rtreego"

	"github.com/osuushi/segcross/geom"
)

// R-tree node capacity, as used for collision broad phases
const (
	minBranching = 25
	maxBranching = 50
)

// rtreego only reports boxes that overlap with positive area, so boxes of
// horizontal and vertical segments, and boxes that merely touch, are grown by
// this much on every side. Candidates are always confirmed exactly.
const boxPadding = 1e-6

type indexedSegment struct {
	id  int
	box rtreego.Rect
}

func (s *indexedSegment) Bounds() rtreego.Rect {
	return s.box
}

func paddedBox(line geom.Segment) (rtreego.Rect, error) {
	low, high := line.Bounds()
	return rtreego.NewRectFromPoints(
		rtreego.Point{low.X - boxPadding, low.Y - boxPadding},
		rtreego.Point{high.X + boxPadding, high.Y + boxPadding},
	)
}

// Find intersecting pairs by searching an R-tree of bounding boxes, then
// confirming each candidate pair with the exact predicate. Records the same
// results as CrossingNaive.
func CrossingIndexed(lines SegmentList) {
	entries := make([]*indexedSegment, len(lines))
	spatials := make([]rtreego.Spatial, len(lines))
	for i := range lines {
		box, err := paddedBox(lines[i].Line)
		if err != nil {
			fatalf("bounding box of segment %d: %v", i, err)
		}
		entries[i] = &indexedSegment{id: i, box: box}
		spatials[i] = entries[i]
	}
	tree := rtreego.NewTree(2, minBranching, maxBranching, spatials...)

	candidates := 0
	for _, entry := range entries {
		for _, hit := range tree.SearchIntersect(entry.box) {
			j := hit.(*indexedSegment).id
			if j <= entry.id {
				continue
			}
			candidates++
			if geom.SegmentsIntersect(lines[entry.id].Line, lines[j].Line) {
				lines.link(entry.id, j)
				lines[entry.id].Color = geom.Red
				lines[j].Color = geom.Red
			}
		}
	}

	Logger().Info("indexed pass done",
		"segments", len(lines),
		"candidates", candidates,
		"pairs", lines.PairCount(),
	)
}
