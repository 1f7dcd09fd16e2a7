package color

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
	"golang.org/x/image/colornames"
)

// ErrInvalidColorFormat is returned when text does not describe a color.
var ErrInvalidColorFormat = errors.New("invalid color format")

// Reference is the color every scale starts from.
var Reference, _ = colorful.MakeColor(colornames.White)

// Parse turns hex, rgb(), hsl() or named color text into a Color. Alpha is
// accepted but discarded; a fully transparent result counts as no color.
func Parse(text string) (colorful.Color, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return colorful.Color{}, fmt.Errorf("%w: empty input", ErrInvalidColorFormat)
	}
	c, err := csscolorparser.Parse(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
	}
	if c.A == 0 {
		return colorful.Color{}, fmt.Errorf("%w: %q is transparent", ErrInvalidColorFormat, s)
	}
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped(), nil
}

// MustParse is like Parse but panics on malformed input. It is meant for
// color literals.
func MustParse(s string) colorful.Color {
	c, err := Parse(s)
	if err != nil {
		panic("MustParse: " + err.Error())
	}
	return c
}

// Hex formats c in canonical #rrggbb form.
func Hex(c colorful.Color) string {
	return c.Clamped().Hex()
}

// Channels returns the 0-255 red, green and blue components of c.
func Channels(c colorful.Color) (r, g, b int) {
	r8, g8, b8 := c.Clamped().RGB255()
	return int(r8), int(g8), int(b8)
}

// Luminance estimates perceived brightness as 0.299R + 0.587G + 0.114B on
// unrounded 0-255 channels. Weights are applied per mille so an exact gray
// of 128 lands on 128.
func Luminance(c colorful.Color) float64 {
	c = c.Clamped()
	r, g, b := c.R*255, c.G*255, c.B*255
	return (299*r + 587*g + 114*b) / 1000
}

// IsDark reports whether the luminance of c is below 128.
func IsDark(c colorful.Color) bool {
	return Luminance(c) < 128
}

// Describe returns the status line shown for a brand color.
func Describe(c colorful.Color) string {
	if IsDark(c) {
		return "Brand color is dark"
	}
	return "Brand color is light"
}
