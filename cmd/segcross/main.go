package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/segcross"
	"github.com/osuushi/segcross/geom"
	"github.com/osuushi/segcross/render"
	"github.com/osuushi/segcross/scenario"
	"github.com/osuushi/segcross/view"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Finds the intersections in a set of segments with every pass, prints the
// timings, and draws the result of one pass.
//
// Segments come from a random scene by default. --input reads a file instead:
// SVG (by extension) or text, where each line is "x1 y1 x2 y2", or "x y" for
// consecutive polyline points separated by blank lines. Use - for text on
// stdin.

var (
	app = kingpin.New("segcross", "Find and classify intersections among 2D line segments.")

	count   = app.Flag("count", "Number of random segments.").Short('n').Default("80").Envar("SEGCROSS_COUNT").Int()
	width   = app.Flag("width", "Canvas width; random segments stay within it.").Default("1280").Envar("SEGCROSS_WIDTH").Int()
	height  = app.Flag("height", "Canvas height; random segments stay within it.").Default("900").Envar("SEGCROSS_HEIGHT").Int()
	seed    = app.Flag("seed", "Random seed. 0 picks one from the clock.").Default("0").Envar("SEGCROSS_SEED").Int64()
	input   = app.Flag("input", "Read segments from a .svg or text file (- for stdin).").Short('i').Envar("SEGCROSS_INPUT").String()
	fixture = app.Flag("fixture", "Use a built in scene: "+strings.Join(scenario.FixtureNames(), ", ")+".").Envar("SEGCROSS_FIXTURE").Enum(scenario.FixtureNames()...)

	viewName    = app.Flag("view", "Which result to draw: initial, naive or sweep.").Default("sweep").Envar("SEGCROSS_VIEW").String()
	out         = app.Flag("out", "PNG file to draw to.").Short('o').Envar("SEGCROSS_OUT").String()
	allViews    = app.Flag("all-views", "Draw every view, adding the view name to the --out file name.").Envar("SEGCROSS_ALL_VIEWS").Bool()
	showImage   = app.Flag("imgcat", "Print drawings inline (iTerm).").Envar("SEGCROSS_IMGCAT").Bool()
	interactive = app.Flag("interactive", "Step through the views with commands on stdin (left/right, p/n).").Envar("SEGCROSS_INTERACTIVE").Bool()
	verbose     = app.Flag("verbose", "Log every sweep event to stderr.").Short('v').Envar("SEGCROSS_VERBOSE").Bool()
	useColor    = app.Flag("color", "Colored output.").Default("true").Envar("SEGCROSS_COLOR").Bool()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))
	au := aurora.NewAurora(*useColor)

	if *verbose {
		segcross.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	segments, err := loadSegments(os.Stdin)
	app.FatalIfError(err, "loading segments")

	report, err := segcross.Analyze(segments)
	app.FatalIfError(err, "analyzing")

	app.FatalIfError(report.WriteSummary(os.Stdout), "")
	printClassification(os.Stdout, au, report)
	if report.Agree() {
		fmt.Println(au.Green("All passes agree"))
	} else {
		fmt.Println(au.Red("Passes disagree"))
	}

	state, err := view.ParseState(*viewName)
	app.FatalIfError(err, "")
	scene := &view.Scene{Initial: report.Initial, Naive: report.Naive, Sweep: report.Sweep}

	switch {
	case *interactive:
		if *input == "-" {
			app.Fatalf("--interactive reads commands from stdin, so --input cannot be -")
		}
		app.FatalIfError(navigate(os.Stdin, au, scene, state), "")
	case *allViews:
		for _, s := range view.States() {
			app.FatalIfError(draw(scene, s, viewPath(outPath(), s)), "")
		}
	case *out != "" || *showImage:
		app.FatalIfError(draw(scene, state, outPath()), "")
	}
}

func loadSegments(stdin io.Reader) ([]geom.Segment, error) {
	switch {
	case *fixture != "":
		return scenario.Fixture(*fixture)
	case *input == "-":
		return scenario.ReadText(stdin)
	case *input != "":
		f, err := os.Open(*input)
		if err != nil {
			return nil, errors.Wrapf(err, "opening %s", *input)
		}
		defer f.Close()
		if strings.EqualFold(filepath.Ext(*input), ".svg") {
			return scenario.ReadSVG(f)
		}
		return scenario.ReadText(f)
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	// Print the seed so that an interesting scene can be reproduced
	fmt.Printf("Seed: %d\n", s)
	return scenario.Random(rand.New(rand.NewSource(s)), *count, *width, *height), nil
}

// Tally the sweep's classification of every segment, most severe first.
func printClassification(w io.Writer, au aurora.Aurora, report *segcross.Report) {
	counts := map[geom.Case]int{}
	for _, s := range report.Sweep {
		counts[s.Case]++
	}
	fmt.Fprintln(w, "Sweep classification:")
	for c := geom.Crossing; c >= geom.NoIntersection; c-- {
		if counts[c] == 0 {
			continue
		}
		line := fmt.Sprintf("  %s: %d", c, counts[c])
		if c.Intersects() {
			fmt.Fprintln(w, au.Bold(line))
		} else {
			fmt.Fprintln(w, line)
		}
	}
}

func outPath() string {
	if *out != "" {
		return *out
	}
	return filepath.Join(os.TempDir(), "segcross.png")
}

// frame.png becomes frame-naive.png
func viewPath(path string, s view.State) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "-" + s.String() + ext
}

func draw(scene *view.Scene, s view.State, path string) error {
	if err := render.SavePNG(path, scene.Frame(s), *width, *height, s.String()); err != nil {
		return err
	}
	if *showImage {
		return render.Show(path, os.Stdout)
	}
	fmt.Printf("Wrote %s view to %s\n", s, path)
	return nil
}

// The keyboard loop of the viewer, driven by lines of text.
func navigate(in io.Reader, au aurora.Aurora, scene *view.Scene, s view.State) error {
	if err := draw(scene, s, outPath()); err != nil {
		return err
	}
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		command := scanner.Text()
		if command == "q" || command == "quit" {
			return nil
		}
		next, ok := s.Apply(command)
		if !ok {
			fmt.Println(au.Yellow(fmt.Sprintf("unknown command %q", command)))
			continue
		}
		s = next
		if err := draw(scene, s, outPath()); err != nil {
			return err
		}
	}
	return errors.Wrap(scanner.Err(), "reading commands")
}
