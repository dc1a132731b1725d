package advanced

import (
	"image/color"
	"sort"

	"github.com/osuushi/segcross/geom"
)

type IDSet map[int]struct{}

func (s IDSet) Add(id int) {
	s[id] = struct{}{}
}

func (s IDSet) Has(id int) bool {
	_, ok := s[id]
	return ok
}

// Members in increasing order
func (s IDSet) Sorted() []int {
	ids := make([]int, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// A segment along with everything the passes learn about it. The ID is the
// segment's position in its list, and is what CrossedBy refers to.
type ColorSegment struct {
	Line  geom.Segment
	Color color.RGBA
	ID    int
	// Strongest classification recorded against any other segment
	Case      geom.Case
	CrossedBy IDSet
}

type SegmentList []ColorSegment

func NewSegmentList(lines []geom.Segment) SegmentList {
	list := make(SegmentList, len(lines))
	for i, line := range lines {
		list[i] = ColorSegment{
			Line:      line,
			Color:     geom.Black,
			ID:        i,
			CrossedBy: make(IDSet),
		}
	}
	return list
}

// Deep copy, so passes run on separate lists never see each other's results.
func (list SegmentList) Clone() SegmentList {
	clone := make(SegmentList, len(list))
	for i, s := range list {
		clone[i] = s
		clone[i].CrossedBy = make(IDSet, len(s.CrossedBy))
		for id := range s.CrossedBy {
			clone[i].CrossedBy.Add(id)
		}
	}
	return clone
}

// Sorted crossed-by ids per segment. Handy for comparing passes.
func (list SegmentList) Crossings() [][]int {
	result := make([][]int, len(list))
	for i, s := range list {
		result[i] = s.CrossedBy.Sorted()
	}
	return result
}

// Number of distinct intersecting pairs
func (list SegmentList) PairCount() int {
	count := 0
	for _, s := range list {
		count += len(s.CrossedBy)
	}
	return count / 2
}

// Remember that i and j intersect. The relation is kept symmetric.
func (list SegmentList) link(i, j int) {
	list[i].CrossedBy.Add(j)
	list[j].CrossedBy.Add(i)
}

// Record a classified contact between i and j. The first segment gets the
// case color and the second a darker shade of it, unless a segment already
// carries something more severe.
func (list SegmentList) mark(i, j int, c geom.Case) {
	list.link(i, j)
	apply := func(s *ColorSegment, shade color.RGBA) {
		if c.Severity() >= s.Case.Severity() {
			s.Case = c
			s.Color = shade
		}
	}
	apply(&list[i], c.Color())
	apply(&list[j], geom.DarkenBy(c.Color(), 10))
}
