package advanced

import (
	"testing"

	"github.com/osuushi/segcross/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seg(x1, y1, x2, y2 float64) geom.Segment {
	return geom.Segment{First: geom.Point{X: x1, Y: y1}, Second: geom.Point{X: x2, Y: y2}}
}

// Parallel rising segments, 10 apart vertically. Nothing touches.
func ladder(n int) []geom.Segment {
	lines := make([]geom.Segment, n)
	for i := range lines {
		y := 10 * float64(i)
		lines[i] = seg(0, y, 100, y+5)
	}
	return lines
}

func TestNaiveWithoutCrossings(t *testing.T) {
	lines := NewSegmentList(ladder(80))
	CrossingNaive(lines)
	for _, s := range lines {
		assert.Empty(t, s.CrossedBy, "segment %d", s.ID)
		assert.Equal(t, geom.Black, s.Color)
	}
	assert.Equal(t, 0, lines.PairCount())
}

func TestNaiveRecordsBothSides(t *testing.T) {
	lines := NewSegmentList([]geom.Segment{
		seg(0, 0, 4, 4),
		seg(0, 4, 4, 0),
		seg(10, 10, 11, 11),
		seg(2, 0, 2, 1), // touches nothing
		seg(4, 0, 6, 0), // shares an endpoint with 1
	})
	CrossingNaive(lines)

	assert.Equal(t, [][]int{{1}, {0, 4}, {}, {}, {1}}, lines.Crossings())
	assert.Equal(t, 2, lines.PairCount())
	assert.Equal(t, geom.Red, lines[0].Color)
	assert.Equal(t, geom.Red, lines[4].Color)
	assert.Equal(t, geom.Black, lines[2].Color)
}

func TestCloneIsDeep(t *testing.T) {
	lines := NewSegmentList([]geom.Segment{seg(0, 0, 4, 4), seg(0, 4, 4, 0)})
	clone := lines.Clone()
	CrossingNaive(clone)

	require.Equal(t, 1, clone.PairCount())
	assert.Empty(t, lines[0].CrossedBy)
	assert.Equal(t, geom.Black, lines[0].Color)
}

func TestMarkKeepsStrongestCase(t *testing.T) {
	lines := NewSegmentList([]geom.Segment{seg(0, 0, 4, 4), seg(0, 4, 4, 0), seg(4, 4, 6, 4)})
	lines.mark(0, 1, geom.Crossing)
	lines.mark(0, 2, geom.SharedEndpoint)

	assert.Equal(t, geom.Crossing, lines[0].Case)
	assert.Equal(t, geom.Red, lines[0].Color)
	assert.Equal(t, geom.DarkenBy(geom.Red, 10), lines[1].Color)
	assert.Equal(t, geom.SharedEndpoint, lines[2].Case)
	assert.Equal(t, geom.DarkenBy(geom.DarkGreen, 10), lines[2].Color)
	assert.Equal(t, []int{1, 2}, lines[0].CrossedBy.Sorted())
}
