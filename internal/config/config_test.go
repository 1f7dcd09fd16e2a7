package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "#000000", cfg.Widget.Color)
	assert.Equal(t, "linear", cfg.Widget.Curve)
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
server:
  addr: "127.0.0.1:9000"
  log_level: debug
widget:
  color: "rebeccapurple"
  curve: bounce
  plot_width: 640
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "rebeccapurple", cfg.Widget.Color)
	assert.Equal(t, "bounce", cfg.Widget.Curve)
	assert.Equal(t, 640, cfg.Widget.PlotWidth)
	assert.Equal(t, 300, cfg.Widget.PlotHeight, "unset fields keep defaults")
	require.NoError(t, cfg.Validate())
}

func TestLoadUnknownFieldsLenient(t *testing.T) {
	path := writeConfig(t, `
widget:
  colour: "#fff"
  curve: sine
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sine", cfg.Widget.Curve)
	assert.Equal(t, "#000000", cfg.Widget.Color)
}

func TestLoadMalformed(t *testing.T) {
	path := writeConfig(t, "server: [unclosed")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidateCollectsErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Server.Addr = ""
	cfg.Server.LogLevel = "loud"
	cfg.Widget.Color = "notacolor"
	cfg.Widget.PlotWidth = 5
	cfg.Widget.PlotHeight = 0

	err := cfg.Validate()
	require.Error(t, err)
	for _, field := range []string{"server.addr", "server.log_level", "widget.color", "widget.plot_width", "widget.plot_height"} {
		assert.Contains(t, err.Error(), field)
	}
}

func TestValidateUnknownCurveOnlyWarns(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Widget.Curve = "spring"
	assert.NoError(t, cfg.Validate())
}
