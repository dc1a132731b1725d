package segcross

import (
	"bytes"
	"math"
	"math/rand"
	"testing"

	"github.com/osuushi/segcross/scenario"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smoke test. The passes themselves are tested in advanced.
func TestAnalyze(t *testing.T) {
	segments := []Segment{
		{First: Point{X: 0, Y: 0}, Second: Point{X: 4, Y: 4}},
		{First: Point{X: 0, Y: 4}, Second: Point{X: 4, Y: 0}},
		{First: Point{X: 10, Y: 0}, Second: Point{X: 12, Y: 0}},
	}
	report, err := Analyze(segments)
	require.NoError(t, err)
	assert.Equal(t, 3, report.Count())
	assert.True(t, report.Agree())
	assert.Equal(t, 1, report.Sweep.PairCount())
	assert.Empty(t, report.Initial[0].CrossedBy, "passes work on copies")
	assert.Equal(t, 0, report.SweepStats.FinalActive)

	var out bytes.Buffer
	require.NoError(t, report.WriteSummary(&out))
	assert.Contains(t, out.String(), "Naive elapsed time: ")
	assert.Contains(t, out.String(), "Sweep elapsed time: ")
	assert.Contains(t, out.String(), "Intersecting pairs: naive 1, sweep 1, indexed 1")
}

func TestAnalyzeRejectsNonFiniteInput(t *testing.T) {
	_, err := Analyze([]Segment{{First: Point{X: math.NaN(), Y: 0}, Second: Point{X: 1, Y: 1}}})
	assert.EqualError(t, err, "segment 0 has a non-finite coordinate: {{NaN 0} {1 1}}")
}

func TestAnalyzeEmpty(t *testing.T) {
	report, err := Analyze(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, report.Count())
	assert.True(t, report.Agree())
}

func TestFixturesAgree(t *testing.T) {
	expected := map[string]int{
		"collinear": 7,
		"fan":       55,
		"grid":      36,
		"ladder":    0,
		"star":      28,
		"steep":     35,
	}
	for _, name := range scenario.FixtureNames() {
		t.Run(name, func(t *testing.T) {
			segments, err := scenario.Fixture(name)
			require.NoError(t, err)
			report, err := Analyze(segments)
			require.NoError(t, err)
			assert.True(t, report.Agree())
			assert.Equal(t, expected[name], report.Naive.PairCount())
		})
	}
}

func TestRandomScenesAgree(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		segments := scenario.Random(rand.New(rand.NewSource(seed)), 80, 1280, 900)
		report, err := Analyze(segments)
		require.NoError(t, err)
		assert.True(t, report.Agree(), "seed %d", seed)
	}
}
