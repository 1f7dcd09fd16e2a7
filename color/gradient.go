package color

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/zunguyen/color-interpolation-basic/ease"
)

// Steps is the number of swatches in a scale.
const Steps = 10

// Gradient is a list of color keypoints sorted by position.
type Gradient []struct {
	Col colorful.Color
	Pos float64
}

// NewGradient returns the two keypoint gradient running from `from` at 0
// to `to` at 1.
func NewGradient(from, to colorful.Color) Gradient {
	return Gradient{{from, 0}, {to, 1}}
}

// At returns the RGB blend between the keypoints around t. Positions
// outside the keypoint range extrapolate along the outermost segment so
// overshooting easing curves move past the endpoints.
// Note: It relies heavily on the fact that the keypoints are sorted.
func (g Gradient) At(t float64) colorful.Color {
	switch len(g) {
	case 0:
		return colorful.Color{}
	case 1:
		return g[0].Col
	}
	i := 0
	for i < len(g)-2 && t > g[i+1].Pos {
		i++
	}
	c1, c2 := g[i], g[i+1]
	if c1.Pos == c2.Pos {
		return c2.Col
	}
	return c1.Col.BlendRgb(c2.Col, (t-c1.Pos)/(c2.Pos-c1.Pos))
}

// Scale is an ordered run of colors from the reference toward a target.
type Scale []colorful.Color

// NewScale computes steps colors from Reference toward target, spacing
// progress evenly and passing it through fn before blending. Each color
// is clamped to the displayable range.
func NewScale(target colorful.Color, fn ease.Func, steps int) Scale {
	if steps <= 0 {
		return nil
	}
	if fn == nil {
		fn = ease.Select(ease.Linear)
	}
	g := NewGradient(Reference, target)
	s := make(Scale, steps)
	for i := range s {
		t := 1.0
		if steps > 1 {
			t = float64(i) / float64(steps-1)
		}
		s[i] = g.At(fn(t)).Clamped()
	}
	return s
}

// Hex returns the canonical hex form of every color in s.
func (s Scale) Hex() []string {
	out := make([]string, len(s))
	for i, c := range s {
		out[i] = Hex(c)
	}
	return out
}
