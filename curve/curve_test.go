package curve

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zunguyen/color-interpolation-basic/ease"
)

func TestSample(t *testing.T) {
	pts := Sample(ease.Select(ease.Linear), Samples)
	require.Len(t, pts, Samples)
	assert.Equal(t, Point{0, 0}, pts[0])
	assert.Equal(t, Point{1, 1}, pts[Samples-1])
	for i := 1; i < len(pts); i++ {
		assert.Greater(t, pts[i].X, pts[i-1].X)
	}
	assert.InDelta(t, 1.0/99, pts[1].X, 1e-12)

	assert.Nil(t, Sample(ease.Select(ease.Linear), 0))
	assert.Equal(t, []Point{{1, 1}}, Sample(ease.Select(ease.Linear), 1))
}

func TestLinear(t *testing.T) {
	x := NewLinear(0, 1, 10, 290)
	assert.Equal(t, 10.0, x.Map(0))
	assert.Equal(t, 290.0, x.Map(1))
	assert.Equal(t, 150.0, x.Map(0.5))

	y := NewLinear(0, 1, 190, 10)
	assert.Equal(t, 190.0, y.Map(0))
	assert.Equal(t, 10.0, y.Map(1))
	// overshoot extrapolates above the margin
	assert.InDelta(t, -8.0, y.Map(1.1), 1e-9)
}

func TestProject(t *testing.T) {
	pts := Project([]Point{{0, 0}, {1, 1}}, 300, 200)
	assert.Equal(t, []Point{{10, 190}, {290, 10}}, pts)
}

func TestMonotoneXShort(t *testing.T) {
	assert.Equal(t, "", MonotoneX(nil))
	assert.Equal(t, "M1,2", MonotoneX([]Point{{1, 2}}))
	assert.Equal(t, "M1,2L3.5,-4", MonotoneX([]Point{{1, 2}, {3.5, -4}}))
}

func TestMonotoneXStraightLine(t *testing.T) {
	// collinear points produce control points on the same line
	d := MonotoneX([]Point{{0, 0}, {3, 3}, {6, 6}})
	assert.Equal(t, "M0,0C1,1,2,2,3,3C4,4,5,5,6,6", d)
}

func TestMonotoneXFlatExtremum(t *testing.T) {
	// the tangent at a local maximum is zero, so the curve does not overshoot
	d := MonotoneX([]Point{{0, 0}, {3, 3}, {6, 0}})
	assert.Equal(t, "M0,0C1,1.5,2,3,3,3C4,3,5,1.5,6,0", d)
}

func TestMonotoneXSegments(t *testing.T) {
	pts := Project(Sample(ease.Select(ease.Cubic), Samples), 300, 200)
	d := MonotoneX(pts)
	assert.True(t, strings.HasPrefix(d, "M10,190C"))
	assert.Equal(t, Samples-1, strings.Count(d, "C"))
	assert.True(t, strings.HasSuffix(d, ",290,10"))
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, ease.Select(ease.Bounce), 300, 200)
	out := buf.String()
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, `width="300"`)
	assert.Contains(t, out, `height="200"`)
	assert.Equal(t, 1, strings.Count(out, "<path"))
	assert.Contains(t, out, "stroke:steelblue")
	assert.Contains(t, out, "stroke-width:2")
	assert.Contains(t, out, "fill:none")
	assert.Contains(t, out, "</svg>")
}

func TestRenderDeterministic(t *testing.T) {
	var a, b bytes.Buffer
	Render(&a, ease.Select(ease.Elastic), 320, 240)
	Render(&b, ease.Select(ease.Elastic), 320, 240)
	assert.Equal(t, a.String(), b.String())
}
