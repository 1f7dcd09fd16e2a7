package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"

	"github.com/zunguyen/color-interpolation-basic/color"
	"github.com/zunguyen/color-interpolation-basic/ease"
	"github.com/zunguyen/color-interpolation-basic/internal/config"
	"github.com/zunguyen/color-interpolation-basic/internal/logger"
	"github.com/zunguyen/color-interpolation-basic/internal/server"
	"github.com/zunguyen/color-interpolation-basic/widget"
)

var log = logger.New("main")

// showScale prints one colored block per swatch followed by the status line.
func showScale(w *widget.Widget, colored bool) {
	fmt.Printf("Color: %s  Curve: %s\n", w.Input(), w.Curve())
	for i, c := range w.Swatches() {
		hex := color.Hex(c)
		block := "      "
		if colored {
			block = lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render(block)
		}
		fmt.Printf("  %d %s %s\n", i, block, hex)
	}
	fmt.Println(w.Info())
}

// writeReport writes the widget's SVG report to path, including any
// error from closing the file.
func writeReport(w *widget.Widget, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	w.WriteSVG(file)
	return file.Close()
}

func curveUsage() string {
	s := ""
	for i, o := range ease.Curves() {
		if i > 0 {
			s += ", "
		}
		s += string(o.Curve)
	}
	return s
}

func main() {
	var configFile = flag.String("config", "config.yaml", "YAML configuration file")
	var colorText = flag.String("c", "", "Brand color (hex, rgb(), hsl() or name)")
	var curveName = flag.String("e", "", "Easing curve: "+curveUsage())
	var outFile = flag.String("o", "scale.svg", "SVG report to write")
	var width = flag.Int("W", 0, "Plot width in pixels")
	var height = flag.Int("H", 0, "Plot height in pixels")
	var serveAddr = flag.String("serve", "", "Serve the interactive widget on this address instead of writing a report")
	var logLevel = flag.String("log", "", "Log level (trace, debug, info, warn, error)")
	var noColor = flag.Bool("no-color", false, "Disable colored terminal output")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	// flags override the config file
	if *colorText != "" {
		cfg.Widget.Color = *colorText
	}
	if *curveName != "" {
		cfg.Widget.Curve = *curveName
	}
	if *width > 0 {
		cfg.Widget.PlotWidth = *width
	}
	if *height > 0 {
		cfg.Widget.PlotHeight = *height
	}
	if *serveAddr != "" {
		cfg.Server.Addr = *serveAddr
	}
	if *logLevel != "" {
		cfg.Server.LogLevel = *logLevel
	}
	if *noColor {
		cfg.Server.NoColor = true
	}

	if err := cfg.Validate(); err != nil {
		fmt.Println(err)
		if _, perr := color.Parse(cfg.Widget.Color); perr != nil {
			os.Exit(2)
		}
		os.Exit(1)
	}

	level, _ := logger.ParseLevel(cfg.Server.LogLevel)
	logger.SetGlobalLevel(level)
	logger.SetColored(!cfg.Server.NoColor)

	w := widget.New(widget.Options{
		Color:  cfg.Widget.Color,
		Curve:  ease.Parse(cfg.Widget.Curve),
		Width:  cfg.Widget.PlotWidth,
		Height: cfg.Widget.PlotHeight,
	})

	if *serveAddr != "" {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := server.New(w).ListenAndServe(ctx, cfg.Server.Addr); err != nil {
			log.Error("server: %v", err)
			os.Exit(1)
		}
		return
	}

	showScale(w, !cfg.Server.NoColor)

	if err := writeReport(w, *outFile); err != nil {
		fmt.Printf("Cannot write to %s: %v\n", *outFile, err)
		os.Exit(4)
	}
	log.Info("wrote %s", *outFile)
}
