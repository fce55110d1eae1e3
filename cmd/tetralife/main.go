//go:build ebiten

package main

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"tetralife/internal/app"
	"tetralife/internal/config"
	"tetralife/internal/logging"
	"tetralife/internal/saves"
	"tetralife/internal/scene"
	"tetralife/internal/session"
	"tetralife/internal/ui"
)

// frameRate is the window's update rate. Generations run at the configured
// TPS inside it.
const frameRate = 60

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal(err)
	}
	var load, pattern string
	cfg.Bind(pflag.CommandLine)
	pflag.StringVar(&load, "load", "", "save slot to open")
	pflag.StringVar(&pattern, "pattern", "", "named pattern to start from")
	pflag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.Development)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	seed, err := cfg.ResolveSeed()
	if err != nil {
		logger.Fatal("seed", zap.Error(err))
	}
	s, err := session.New(session.Options{
		Size:   cfg.UniverseSize,
		Seed:   seed,
		TPS:    cfg.TPS,
		Store:  saves.NewStore(cfg.SavesDir, logger.Named("saves")),
		Binder: scene.New(logger.Named("scene")),
		Log:    logger,
	})
	if err != nil {
		logger.Fatal("new session", zap.Error(err))
	}
	switch {
	case load != "":
		// A failed load is logged and leaves a fresh universe.
		_ = s.Load(load)
	case pattern != "":
		if err := s.LoadPattern(pattern); err != nil {
			logger.Fatal("pattern", zap.Error(err))
		}
	}

	game := app.New(app.NewController(s, logger), cfg.Scale)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle(ui.Title("tetralife", pattern, load))
	ebiten.SetTPS(frameRate)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("game", zap.Error(err))
	}
}
