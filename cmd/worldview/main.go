//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"tileworld/internal/app"
	_ "tileworld/internal/world"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := app.NewLogger(os.Stderr, cfg.LogLevel)
	slog.SetDefault(logger)

	gen, err := cfg.NewGenerator()
	if err != nil {
		logger.Error("build world", "err", err)
		os.Exit(1)
	}
	if err := gen.Reset(cfg.Seed); err != nil {
		logger.Error("generate world", "err", err)
		os.Exit(1)
	}

	game := app.New(gen, cfg.Scale, cfg.HUDWidth, cfg.Seed, logger)
	size := gen.Size()

	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("viewer stopped", "err", err)
		os.Exit(1)
	}
}
