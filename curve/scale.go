package curve

import "github.com/aclements/go-moremath/scale"

// Linear maps a numeric domain onto a pixel range. Values outside the
// domain extrapolate.
type Linear struct {
	domain    scale.Linear
	low, high float64
}

// NewLinear returns a scale mapping [d0,d1] onto [r0,r1]. r0 may be
// larger than r1 to invert an axis.
func NewLinear(d0, d1, r0, r1 float64) Linear {
	return Linear{domain: scale.Linear{Min: d0, Max: d1}, low: r0, high: r1}
}

// Map returns the pixel coordinate of x.
func (l Linear) Map(x float64) float64 {
	return l.low + l.domain.Map(x)*(l.high-l.low)
}
