package curve

import (
	"math"
	"strconv"
	"strings"
)

// Point is one sample of an easing curve, or its pixel position.
type Point struct {
	X, Y float64
}

// MonotoneX returns SVG path data for a smooth curve through pts that
// preserves monotonicity in y, assuming pts are ordered by increasing x.
// Tangents follow Steffen's method, the same one used by d3's
// curveMonotoneX.
func MonotoneX(pts []Point) string {
	var b strings.Builder
	switch len(pts) {
	case 0:
		return ""
	case 1:
		b.WriteString("M")
		writePoint(&b, pts[0])
		return b.String()
	case 2:
		b.WriteString("M")
		writePoint(&b, pts[0])
		b.WriteString("L")
		writePoint(&b, pts[1])
		return b.String()
	}

	n := len(pts)
	tangents := make([]float64, n)
	for i := 1; i < n-1; i++ {
		tangents[i] = slope3(pts[i-1], pts[i], pts[i+1])
	}
	tangents[0] = slope2(pts[0], pts[1], tangents[1])
	tangents[n-1] = slope2(pts[n-2], pts[n-1], tangents[n-2])

	b.WriteString("M")
	writePoint(&b, pts[0])
	for i := 0; i < n-1; i++ {
		p0, p1 := pts[i], pts[i+1]
		dx := (p1.X - p0.X) / 3
		b.WriteString("C")
		writePoint(&b, Point{p0.X + dx, p0.Y + dx*tangents[i]})
		b.WriteString(",")
		writePoint(&b, Point{p1.X - dx, p1.Y - dx*tangents[i+1]})
		b.WriteString(",")
		writePoint(&b, p1)
	}
	return b.String()
}

// slope3 is the tangent at p1 given its neighbors.
func slope3(p0, p1, p2 Point) float64 {
	h0 := p1.X - p0.X
	h1 := p2.X - p1.X
	if h0 == 0 && h1 == 0 {
		return 0
	}
	s0 := secant(p1.Y-p0.Y, h0)
	s1 := secant(p2.Y-p1.Y, h1)
	p := (s0*h1 + s1*h0) / (h0 + h1)
	v := (sign(s0) + sign(s1)) * math.Min(math.Min(math.Abs(s0), math.Abs(s1)), 0.5*math.Abs(p))
	if math.IsNaN(v) {
		return 0
	}
	return v
}

// slope2 is the one-sided tangent at an endpoint of the segment p0-p1,
// given the tangent t at the other end.
func slope2(p0, p1 Point, t float64) float64 {
	h := p1.X - p0.X
	if h == 0 {
		return t
	}
	return (3*(p1.Y-p0.Y)/h - t) / 2
}

// secant divides dy by h. Coincident x values yield a flat secant.
func secant(dy, h float64) float64 {
	if h == 0 {
		return 0
	}
	return dy / h
}

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

func writePoint(b *strings.Builder, p Point) {
	b.WriteString(formatCoord(p.X))
	b.WriteString(",")
	b.WriteString(formatCoord(p.Y))
}

func formatCoord(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
