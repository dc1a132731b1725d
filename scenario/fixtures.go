package scenario

import (
	"embed"
	"path"
	"sort"
	"strings"

	"github.com/osuushi/segcross/geom"
	"github.com/pkg/errors"
)

// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func Fixture(name string) ([]geom.Segment, error) {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		return nil, errors.Wrapf(err, "could not load fixture %q", name)
	}
	defer fixture.Close()

	lines, err := ReadSVG(fixture)
	if err != nil {
		return nil, errors.Wrapf(err, "fixture %q", name)
	}
	return lines, nil
}

// Names of every embedded fixture, sorted
func FixtureNames() []string {
	entries, err := fixtures.ReadDir("fixtures")
	if err != nil {
		// The directory is embedded, so this cannot happen
		panic(err)
	}
	var names []string
	for _, entry := range entries {
		if path.Ext(entry.Name()) == ".svg" {
			names = append(names, strings.TrimSuffix(entry.Name(), ".svg"))
		}
	}
	sort.Strings(names)
	return names
}
