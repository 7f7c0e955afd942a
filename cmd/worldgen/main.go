// Command worldgen generates a world headlessly, prints a report and
// optionally exports one image per layer.
package main

import (
	"flag"
	"fmt"
	"os"

	"tileworld/internal/app"
	"tileworld/internal/render"
	"tileworld/internal/world"
)

func main() {
	cfg := app.NewConfig()
	cfg.Scale = 1
	cfg.Bind(flag.CommandLine)
	out := flag.String("out", "", "directory for layer images (empty skips export)")
	format := flag.String("format", "png", "image format (png, bmp, tiff)")
	rivers := flag.Bool("rivers", false, "tint carved rivers on exported layers")
	clouds := flag.Bool("clouds", false, "tint cloud cover on exported layers")
	timings := flag.Bool("timings", true, "include per-stage timings in the report")
	flag.Parse()

	logger := app.NewLogger(os.Stderr, cfg.LogLevel)

	wc := world.FromMap(cfg.Overrides())
	wc.Projection = cfg.Projection
	w, err := world.NewWithConfig(wc, world.WithLogger(logger))
	if err != nil {
		logger.Error("invalid configuration", "err", err)
		os.Exit(2)
	}
	if err := w.Reset(wc.Seed); err != nil {
		logger.Error("generation failed", "err", err)
		os.Exit(1)
	}

	if *out != "" {
		f, err := render.ParseFormat(*format)
		if err != nil {
			logger.Error("export", "err", err)
			os.Exit(2)
		}
		paths, err := render.ExportLayers(w, render.ExportOptions{
			Dir:    *out,
			Prefix: fmt.Sprintf("%s-%d", w.Name(), w.Seed()),
			Format: f,
			Scale:  cfg.Scale,
			Rivers: *rivers,
			Clouds: *clouds,
		})
		if err != nil {
			logger.Error("export", "err", err)
			os.Exit(1)
		}
		for _, p := range paths {
			logger.Info("wrote layer", "path", p)
		}
	}

	if err := writeReport(os.Stdout, w, *timings); err != nil {
		logger.Error("report", "err", err)
		os.Exit(1)
	}
}
