// Package widget holds the state of the color scale widget: the input
// surfaces the user edits and the output surfaces that the scale
// generator and curve renderer replace on every event.
package widget

import (
	"bytes"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/zunguyen/color-interpolation-basic/color"
	"github.com/zunguyen/color-interpolation-basic/curve"
	"github.com/zunguyen/color-interpolation-basic/ease"
	"github.com/zunguyen/color-interpolation-basic/internal/logger"
)

// InvalidColorMessage is shown when the color field cannot be parsed.
const InvalidColorMessage = "Invalid color format. Please enter a valid hex, rgb, or hsl color."

var log = logger.New("widget")

// Options configure a new Widget.
type Options struct {
	Color  string
	Curve  ease.Curve
	Width  int
	Height int
}

// Widget is the context object shared by the scale generator and the
// curve renderer. It is not safe for concurrent use.
type Widget struct {
	// inputs
	input  string
	curve  ease.Curve
	width  int
	height int

	// outputs; shown is the curve the swatches and plot were built with
	shown    ease.Curve
	swatches color.Scale
	info     string
	errMsg   string
	plot     []byte
}

// New builds a widget, presets the color field and performs the initial
// generation and render.
func New(opts Options) *Widget {
	if opts.Color == "" {
		opts.Color = "#000000"
	}
	w := &Widget{
		input:  opts.Color,
		curve:  opts.Curve,
		shown:  opts.Curve,
		width:  opts.Width,
		height: opts.Height,
	}
	w.Generate()
	w.RenderCurve()
	return w
}

// SetInput handles a change of the color text field.
func (w *Widget) SetInput(text string) {
	w.input = text
	w.Generate()
}

// SetCurve handles a change of the curve selection. A successful
// generation re-renders the curve; a failed one leaves both the scale and
// the curve as they were.
func (w *Widget) SetCurve(c ease.Curve) {
	w.curve = c
	w.Generate()
}

// Click handles the generate button.
func (w *Widget) Click() {
	w.Generate()
}

// Resize changes the plot surface and redraws the displayed curve.
func (w *Widget) Resize(width, height int) {
	w.width, w.height = width, height
	w.RenderCurve()
}

// Generate rebuilds the swatches from the current color text and curve
// selection. Parse failures only set the error line.
func (w *Widget) Generate() {
	target, err := color.Parse(w.input)
	if err != nil {
		log.Debug("generate: %v", err)
		w.errMsg = InvalidColorMessage
		return
	}
	w.errMsg = ""

	w.shown = w.curve
	w.swatches = color.NewScale(target, ease.Select(w.shown), color.Steps)
	w.info = color.Describe(target)
	w.input = color.Hex(target)
	log.Trace("generate: %s curve=%s swatches=%v", w.input, w.curve, w.swatches.Hex())

	w.RenderCurve()
}

// RenderCurve discards the current plot and draws the curve of the last
// successful generation.
func (w *Widget) RenderCurve() {
	w.plot = nil
	var buf bytes.Buffer
	curve.Render(&buf, ease.Select(w.shown), w.width, w.height)
	w.plot = buf.Bytes()
}

// Input returns the text of the color field.
func (w *Widget) Input() string { return w.input }

// Curve returns the current curve selection.
func (w *Widget) Curve() ease.Curve { return w.curve }

// Swatches returns a copy of the displayed scale.
func (w *Widget) Swatches() []colorful.Color {
	return append([]colorful.Color(nil), w.swatches...)
}

// Info returns the light/dark status line.
func (w *Widget) Info() string { return w.info }

// Error returns the error line, empty when the last generation succeeded.
func (w *Widget) Error() string { return w.errMsg }

// Plot returns the SVG document of the current curve.
func (w *Widget) Plot() []byte {
	return append([]byte(nil), w.plot...)
}

// State is a snapshot of everything the widget displays.
type State struct {
	Color    string   `json:"color"`
	Curve    string   `json:"curve"`
	Swatches []string `json:"swatches"`
	Info     string   `json:"info"`
	Error    string   `json:"error"`
	Width    int      `json:"width"`
	Height   int      `json:"height"`
	Plot     string   `json:"plot"`
}

// State returns a snapshot of the widget.
func (w *Widget) State() State {
	return State{
		Color:    w.input,
		Curve:    string(w.curve),
		Swatches: w.swatches.Hex(),
		Info:     w.info,
		Error:    w.errMsg,
		Width:    w.width,
		Height:   w.height,
		Plot:     string(w.plot),
	}
}

// Submit sets both input controls and then presses the generate button.
func (w *Widget) Submit(text string, c ease.Curve) {
	w.input = text
	w.curve = c
	w.Click()
}
