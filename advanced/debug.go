package advanced

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/segcross/dbg"
	"github.com/osuushi/segcross/geom"
	"github.com/osuushi/segcross/status"
)

// These are for debug logging only

// Segment id plus a readable name, colored by what it has hit so far: cyan for
// nothing, red for a proper crossing, green for any other contact.
func (s *sweep) dbgSegmentName(id int) string {
	seg := &s.lines[id]
	name := fmt.Sprintf("%d:%s", id, dbg.Name(seg))
	switch {
	case len(seg.CrossedBy) == 0:
		return aurora.Cyan(name).String()
	case seg.Case == geom.Crossing:
		return aurora.Red(name).String()
	default:
		return aurora.Green(name).String()
	}
}

// Active segments bottom to top, verticals after the bar.
func (s *sweep) dbgStatus() string {
	var parts []string
	for n := s.status.First(); n != status.None; n = s.status.Next(n) {
		parts = append(parts, s.dbgSegmentName(s.status.Key(n)))
	}
	if len(s.verticals) > 0 {
		parts = append(parts, "|")
		for _, id := range s.verticals {
			parts = append(parts, s.dbgSegmentName(id))
		}
	}
	return "[" + strings.Join(parts, " ") + "]"
}
