// Package ease selects the easing function used to distribute a color
// scale and to draw its curve.
package ease

import (
	"strings"

	penner "github.com/fogleman/ease"
)

// Func maps normalized progress in [0,1] to eased progress. Overshoot
// curves may return values outside [0,1].
type Func func(t float64) float64

// Curve is the tag held by the curve-type selection control.
type Curve string

const (
	Linear    Curve = "linear"
	Quadratic Curve = "quadratic"
	Cubic     Curve = "cubic"
	Sine      Curve = "sine"
	Exp       Curve = "exp"
	Circle    Curve = "circle"
	Elastic   Curve = "elastic"
	Bounce    Curve = "bounce"
)

// Option is a selectable curve with a human readable label.
type Option struct {
	Curve Curve
	Label string
}

var options = []Option{
	{Linear, "Linear"},
	{Quadratic, "Quadratic"},
	{Cubic, "Cubic"},
	{Sine, "Sine"},
	{Exp, "Exponential"},
	{Circle, "Circular"},
	{Elastic, "Elastic"},
	{Bounce, "Bounce"},
}

// Curves returns the selectable curves in display order.
func Curves() []Option {
	out := make([]Option, len(options))
	copy(out, options)
	return out
}

// Parse normalizes user supplied text into a Curve. The result is not
// guaranteed to be known; Select falls back to linear for those.
func Parse(s string) Curve {
	return Curve(strings.ToLower(strings.TrimSpace(s)))
}

// Known reports whether c names one of the non-default curves or linear.
func (c Curve) Known() bool {
	for _, o := range options {
		if o.Curve == c {
			return true
		}
	}
	return false
}

func (c Curve) String() string {
	if c == "" {
		return string(Linear)
	}
	return string(c)
}

// Select returns the easing function for c. Any unrecognized tag,
// including the empty one, selects the linear identity.
func Select(c Curve) Func {
	switch c {
	case Quadratic:
		return penner.InOutQuad
	case Cubic:
		return penner.InOutCubic
	case Sine:
		return penner.InOutSine
	case Exp:
		return penner.InOutExpo
	case Circle:
		return penner.InOutCirc
	case Elastic:
		return elasticOut
	case Bounce:
		return bounceOut
	default:
		return identity
	}
}

func identity(t float64) float64 { return t }

// elasticOut oscillates around 1 with a period of 0.3.
var elasticOut = Func(penner.OutElasticFunction(0.3))

// bounceOut is Penner's four-parabola bounce.
func bounceOut(t float64) float64 {
	const (
		b1 = 4.0 / 11
		b2 = 6.0 / 11
		b3 = 8.0 / 11
		b4 = 3.0 / 4
		b5 = 9.0 / 11
		b6 = 10.0 / 11
		b7 = 15.0 / 16
		b8 = 21.0 / 22
		b9 = 63.0 / 64
		b0 = 1 / b1 / b1
	)
	switch {
	case t < b1:
		return b0 * t * t
	case t < b3:
		t -= b2
		return b0*t*t + b4
	case t < b6:
		t -= b5
		return b0*t*t + b7
	default:
		t -= b8
		return b0*t*t + b9
	}
}
