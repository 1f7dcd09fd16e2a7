package widget

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/zunguyen/color-interpolation-basic/color"
	"github.com/zunguyen/color-interpolation-basic/curve"
	"github.com/zunguyen/color-interpolation-basic/ease"
)

const (
	swatchSize = 40
	lineHeight = 20
	headerSize = swatchSize + 3*lineHeight
)

// WriteSVG writes a single SVG document showing the swatch row, the
// status and error lines and the curve plot below them.
func (w *Widget) WriteSVG(out io.Writer) {
	width := w.width
	if row := len(w.swatches) * swatchSize; row > width {
		width = row
	}
	canvas := svg.New(out)
	canvas.Start(width, headerSize+w.height)
	canvas.Title(fmt.Sprintf("%s (%s)", w.input, w.shown))

	for i, c := range w.swatches {
		canvas.Rect(i*swatchSize, 0, swatchSize, swatchSize, "fill:"+color.Hex(c))
	}
	canvas.Text(0, swatchSize+lineHeight, w.info, "font-family:sans-serif;font-size:14px")
	if w.errMsg != "" {
		canvas.Text(0, swatchSize+2*lineHeight, w.errMsg, "font-family:sans-serif;font-size:14px;fill:#e05a3a")
	}

	canvas.Gtransform(fmt.Sprintf("translate(0,%d)", headerSize))
	curve.Draw(canvas, ease.Select(w.shown), w.width, w.height)
	canvas.Gend()
	canvas.End()
}
