package scenario

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/segcross/geom"
	"github.com/pkg/errors"
)

// Read segments from text. Each line is either a whole segment, "x1 y1 x2 y2",
// or a single point "x y". Consecutive points form a polyline, which ends at
// the next blank line (or segment line). Lines starting with # are ignored.
func ReadText(in io.Reader) ([]geom.Segment, error) {
	lines := []geom.Segment{}
	points := []geom.Point{}
	flush := func() {
		for i := 1; i < len(points); i++ {
			lines = append(lines, geom.Segment{First: points[i-1], Second: points[i]})
		}
		points = points[:0]
	}

	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}
		if line == "" {
			flush()
			continue
		}

		values, err := parseFloats(strings.Fields(line))
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		switch len(values) {
		case 2:
			points = append(points, geom.Point{X: values[0], Y: values[1]})
		case 4:
			flush()
			lines = append(lines, geom.Segment{
				First:  geom.Point{X: values[0], Y: values[1]},
				Second: geom.Point{X: values[2], Y: values[3]},
			})
		default:
			return nil, errors.Errorf("line %d: expected 2 or 4 numbers, got %d", lineNumber, len(values))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading segments")
	}

	// Handle trailing polyline if any
	flush()
	return lines, nil
}

func parseFloats(fields []string) ([]float64, error) {
	values := make([]float64, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid number %q", field)
		}
		values[i] = v
	}
	return values, nil
}
