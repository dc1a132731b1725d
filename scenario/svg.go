package scenario

import (
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/segcross/geom"
	"github.com/pkg/errors"
)

// This is not a full SVG reader. It collects <line>, <polyline> and <polygon>
// elements anywhere in the document, in document order, and ignores
// transforms, units and everything else.
func ReadSVG(in io.Reader) ([]geom.Segment, error) {
	// Coordinates are checked while reading them, so the parser does not
	// validate.
	root, err := svgparser.Parse(in, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	lines := []geom.Segment{}
	var walk func(el *svgparser.Element) error
	walk = func(el *svgparser.Element) error {
		switch el.Name {
		case "line":
			line, err := lineElement(el)
			if err != nil {
				return err
			}
			lines = append(lines, line)
		case "polyline", "polygon":
			points, err := parsePoints(el.Attributes["points"])
			if err != nil {
				return errors.Wrapf(err, "<%s>", el.Name)
			}
			if el.Name == "polygon" && len(points) > 2 {
				points = append(points, points[0])
			}
			for i := 1; i < len(points); i++ {
				lines = append(lines, geom.Segment{First: points[i-1], Second: points[i]})
			}
		}
		for _, child := range el.Children {
			if err := walk(child); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(root); err != nil {
		return nil, err
	}
	return lines, nil
}

func lineElement(el *svgparser.Element) (geom.Segment, error) {
	var values [4]float64
	for i, name := range []string{"x1", "y1", "x2", "y2"} {
		// Missing coordinates default to zero, as in SVG
		attr, ok := el.Attributes[name]
		if !ok {
			continue
		}
		v, err := parseLength(attr)
		if err != nil {
			return geom.Segment{}, errors.Wrapf(err, "<line> attribute %s", name)
		}
		values[i] = v
	}
	return geom.Segment{
		First:  geom.Point{X: values[0], Y: values[1]},
		Second: geom.Point{X: values[2], Y: values[3]},
	}, nil
}

func parseLength(s string) (float64, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "px")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid length %q", s)
	}
	return v, nil
}

// Points are separated by whitespace, commas, or both.
func parsePoints(s string) ([]geom.Point, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", s)
	}
	values, err := parseFloats(fields)
	if err != nil {
		return nil, err
	}
	points := make([]geom.Point, 0, len(values)/2)
	for i := 0; i < len(values); i += 2 {
		points = append(points, geom.Point{X: values[i], Y: values[i+1]})
	}
	return points, nil
}
