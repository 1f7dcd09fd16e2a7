package color

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"#000000", "#000000"},
		{"#FFF", "#ffffff"},
		{"#ff000080", "#ff0000"},
		{"red", "#ff0000"},
		{"rgb(255,0,0)", "#ff0000"},
		{"rgb(255, 0, 0)", "#ff0000"},
		{"rgba(0, 128, 255, 0.5)", "#0080ff"},
		{"hsl(120, 100%, 50%)", "#00ff00"},
		{"  SteelBlue ", "#4682b4"},
	}
	for _, tt := range tests {
		c, err := Parse(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, Hex(c), tt.input)
	}
}

func TestParseInvalid(t *testing.T) {
	for _, s := range []string{"", "   ", "notacolor", "#12", "rgb(", "transparent"} {
		_, err := Parse(s)
		require.Error(t, err, s)
		assert.True(t, errors.Is(err, ErrInvalidColorFormat), s)
	}
}

func TestMustParse(t *testing.T) {
	assert.Equal(t, "#4682b4", Hex(MustParse("steelblue")))
	assert.Panics(t, func() { MustParse("nope") })
}

func TestReference(t *testing.T) {
	assert.Equal(t, "#ffffff", Hex(Reference))
}

func TestLuminance(t *testing.T) {
	assert.Equal(t, 255.0, Luminance(MustParse("#ffffff")))
	assert.Equal(t, 0.0, Luminance(MustParse("#000000")))
	assert.InDelta(t, 128.0, Luminance(MustParse("rgb(128,128,128)")), 1e-9)
	assert.InDelta(t, 127.5, Luminance(MustParse("hsl(0, 0%, 50%)")), 1e-9)
	assert.InDelta(t, 76.245, Luminance(MustParse("#ff0000")), 1e-9)
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"#FFFFFF", "Brand color is light"},
		{"#000000", "Brand color is dark"},
		{"rgb(128,128,128)", "Brand color is light"},
		{"rgb(127,127,127)", "Brand color is dark"},
		{"hsl(0, 0%, 50%)", "Brand color is dark"},
		{"yellow", "Brand color is light"},
		{"navy", "Brand color is dark"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Describe(MustParse(tt.input)), tt.input)
	}
	assert.True(t, IsDark(MustParse("#000")))
	assert.False(t, IsDark(MustParse("#fff")))
}

func TestChannels(t *testing.T) {
	r, g, b := Channels(MustParse("#0a80ff"))
	assert.Equal(t, []int{10, 128, 255}, []int{r, g, b})
}
