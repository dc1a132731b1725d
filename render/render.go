// Package render draws view frames into images with gg, and can print them to
// a terminal that understands inline images (iTerm).
package render

import (
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/segcross/geom"
	"github.com/osuushi/segcross/view"
	"github.com/pkg/errors"
)

const (
	lineWidth = 2
	// Margin kept around a scene that has to be scaled to fit
	fitPadding = 20
)

func setColor(c *gg.Context, col color.RGBA) {
	c.SetRGBA255(int(col.R), int(col.G), int(col.B), int(col.A))
}

// Draw a frame on a width x height canvas, in screen coordinates (y grows
// downward). A frame that does not fit the canvas is scaled and moved to fit.
func Draw(frame []view.Stroke, width, height int) *gg.Context {
	c := gg.NewContext(width, height)
	setColor(c, view.Background)
	c.Clear()

	fit(c, frame, width, height)
	c.SetLineWidth(lineWidth)
	c.SetLineCapRound()
	for _, stroke := range frame {
		setColor(c, stroke.Color)
		c.DrawLine(stroke.Line.First.X, stroke.Line.First.Y, stroke.Line.Second.X, stroke.Line.Second.Y)
		c.Stroke()
	}
	return c
}

func fit(c *gg.Context, frame []view.Stroke, width, height int) {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, stroke := range frame {
		for _, p := range [2]geom.Point{stroke.Line.First, stroke.Line.Second} {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}
	if len(frame) == 0 || (minX >= 0 && minY >= 0 && maxX <= float64(width) && maxY <= float64(height)) {
		return
	}

	innerWidth := float64(width - 2*fitPadding)
	innerHeight := float64(height - 2*fitPadding)
	scale := math.Min(innerWidth/math.Max(maxX-minX, 1), innerHeight/math.Max(maxY-minY, 1))
	c.Translate(fitPadding, fitPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)
}

// Write text in the top left corner, the way the viewer shows its status.
func Label(c *gg.Context, text string) {
	c.Push()
	c.Identity()
	setColor(c, color.RGBA{80, 80, 80, 255})
	c.DrawString(text, 10, 20)
	c.Pop()
}

func SavePNG(path string, frame []view.Stroke, width, height int, label string) error {
	c := Draw(frame, width, height)
	if label != "" {
		Label(c, label)
	}
	if err := c.SavePNG(path); err != nil {
		return errors.Wrapf(err, "saving %s", path)
	}
	return nil
}

// Print a saved image to w as an inline terminal image.
func Show(path string, w io.Writer) error {
	return errors.Wrapf(imgcat.CatFile(path, w), "showing %s", path)
}
