// Package curve plots an easing function over the unit square as SVG.
package curve

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/zunguyen/color-interpolation-basic/ease"
)

const (
	// Samples is the number of points taken along a plotted curve.
	Samples = 100
	// Margin is the gap in pixels kept on every side of the plot.
	Margin = 10

	Stroke      = "steelblue"
	StrokeWidth = 2
)

// Sample evaluates fn at n evenly spaced progress values from 0 to 1
// inclusive.
func Sample(fn ease.Func, n int) []Point {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []Point{{1, fn(1)}}
	}
	pts := make([]Point, n)
	for i := range pts {
		t := float64(i) / float64(n-1)
		pts[i] = Point{t, fn(t)}
	}
	return pts
}

// Project maps unit-square samples onto a width x height surface,
// inset by Margin, with eased progress increasing upwards. Samples that
// leave [0,1] land outside the margin box.
func Project(pts []Point, width, height int) []Point {
	x := NewLinear(0, 1, Margin, float64(width-Margin))
	y := NewLinear(0, 1, float64(height-Margin), Margin)
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = Point{x.Map(p.X), y.Map(p.Y)}
	}
	return out
}

// Path returns the SVG path data plotting fn on a width x height surface.
func Path(fn ease.Func, width, height int) string {
	return MonotoneX(Project(Sample(fn, Samples), width, height))
}

// Draw adds the plot of fn to canvas as a single unfilled path.
func Draw(canvas *svg.SVG, fn ease.Func, width, height int) {
	canvas.Path(Path(fn, width, height), pathStyle)
}

// Render writes a standalone SVG document containing only the plot of fn.
func Render(w io.Writer, fn ease.Func, width, height int) {
	canvas := svg.New(w)
	canvas.Start(width, height)
	Draw(canvas, fn, width, height)
	canvas.End()
}

var pathStyle = fmt.Sprintf("fill:none;stroke:%s;stroke-width:%d", Stroke, StrokeWidth)
