package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zunguyen/color-interpolation-basic/widget"
)

func TestCurveUsage(t *testing.T) {
	u := curveUsage()
	assert.True(t, strings.HasPrefix(u, "linear, quadratic"))
	assert.Equal(t, 7, strings.Count(u, ", "))
}

func TestWriteReport(t *testing.T) {
	w := widget.New(widget.Options{Color: "teal", Width: 300, Height: 200})

	path := filepath.Join(t.TempDir(), "scale.svg")
	require.NoError(t, writeReport(w, path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 10, strings.Count(string(data), "<rect"))

	err = writeReport(w, filepath.Join(t.TempDir(), "missing", "scale.svg"))
	assert.Error(t, err)
}
