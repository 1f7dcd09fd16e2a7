// Package config loads the YAML settings shared by the CLI and the server.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zunguyen/color-interpolation-basic/color"
	"github.com/zunguyen/color-interpolation-basic/ease"
	"github.com/zunguyen/color-interpolation-basic/internal/logger"
)

var cfgLog = logger.New("config")

// Config represents the program configuration
type Config struct {
	Server ServerConfig `yaml:"server"`
	Widget WidgetConfig `yaml:"widget"`
}

// ServerConfig holds HTTP server and logging settings
type ServerConfig struct {
	Addr     string `yaml:"addr"`
	LogLevel string `yaml:"log_level"`
	NoColor  bool   `yaml:"no_color"`
}

// WidgetConfig holds the initial widget state and plot surface size
type WidgetConfig struct {
	Color      string `yaml:"color"`
	Curve      string `yaml:"curve"`
	PlotWidth  int    `yaml:"plot_width"`
	PlotHeight int    `yaml:"plot_height"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:     ":8080",
			LogLevel: "info",
		},
		Widget: WidgetConfig{
			Color:      "#000000",
			Curve:      string(ease.Linear),
			PlotWidth:  400,
			PlotHeight: 300,
		},
	}
}

// Validate checks all Config fields and returns a multi-error report.
// Call this after CLI overrides have been applied.
func (c *Config) Validate() error {
	var errs []string

	if c.Server.Addr == "" {
		errs = append(errs, "server.addr: must not be empty")
	}
	if _, err := logger.ParseLevel(c.Server.LogLevel); err != nil {
		errs = append(errs, "server.log_level: "+err.Error())
	}
	if _, err := color.Parse(c.Widget.Color); err != nil {
		errs = append(errs, fmt.Sprintf("widget.color: %v", err))
	}
	if c.Widget.Curve != "" && !ease.Parse(c.Widget.Curve).Known() {
		// unknown curves fall back to linear at runtime; only warn
		cfgLog.Warn("widget.curve: unknown curve %q, linear will be used", c.Widget.Curve)
	}
	// the plot needs room inside its 10px margins
	if c.Widget.PlotWidth <= 20 {
		errs = append(errs, fmt.Sprintf("widget.plot_width: must be > 20 (got %d)", c.Widget.PlotWidth))
	}
	if c.Widget.PlotHeight <= 20 {
		errs = append(errs, fmt.Sprintf("widget.plot_height: must be > 20 (got %d)", c.Widget.PlotHeight))
	}

	if len(errs) > 0 {
		return errors.New("invalid configuration:\n  " + strings.Join(errs, "\n  "))
	}
	return nil
}

func isUnknownFieldError(err error) bool {
	return strings.Contains(err.Error(), "not found in type")
}

// Load reads configuration from path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		if isUnknownFieldError(err) {
			cfgLog.Warn("config has unknown fields (ignored): %v", err)
			cfg = DefaultConfig()
			if err2 := yaml.Unmarshal(data, cfg); err2 != nil {
				return nil, fmt.Errorf("config parse error: %w", err2)
			}
		} else {
			return nil, fmt.Errorf("config parse error: %w", err)
		}
	}

	return cfg, nil
}
