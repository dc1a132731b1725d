package advanced

import "github.com/osuushi/segcross/geom"

// Test every unordered pair once. Each segment is compared against every
// segment after it, regardless of what it has already been found to cross.
// O(n²) time, and O(n²) space for the crossed-by sets in the worst case.
func CrossingNaive(lines SegmentList) {
	for i := range lines {
		for j := i + 1; j < len(lines); j++ {
			if geom.SegmentsIntersect(lines[i].Line, lines[j].Line) {
				lines.link(i, j)
				lines[i].Color = geom.Red
				lines[j].Color = geom.Red
			}
		}
	}
	Logger().Info("naive pass done", "segments", len(lines), "pairs", lines.PairCount())
}
