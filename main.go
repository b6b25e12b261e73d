package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/faiface/beep"
	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/rain-visualization/internal/config"
	"github.com/iburimskiy/rain-visualization/internal/game"
	"github.com/iburimskiy/rain-visualization/internal/rain"
)

const (
	windowWidth  = 1024
	windowHeight = 512

	ambienceSampleRate = beep.SampleRate(44100)
)

func main() {
	cfg := config.Default()
	cfg.RegisterFlags(flag.CommandLine)

	var logLevel slog.Level
	flag.TextVar(&logLevel, "log-level", slog.LevelWarn, "log level (debug, info, warn, error)")
	width := flag.Int("width", windowWidth, "initial window width")
	height := flag.Int("height", windowHeight, "initial window height")
	hud := flag.Bool("hud", false, "show current settings")
	sound := flag.Bool("sound", false, "play rain ambience")
	seed := flag.Uint64("seed", 0, "random seed (0 = time based)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	rain.SetLogger(logger)
	gg.SetLogger(logger)

	rng := rain.NewRand(*seed)
	engine := rain.NewEngine(cfg, rng)

	opts := game.Options{HUD: *hud}
	if *sound {
		amb := game.NewAmbience(ambienceSampleRate, rain.NewRand(rng.Uint64()))
		if err := amb.Start(); err != nil {
			logger.Warn("audio disabled", "err", err)
		} else {
			defer amb.Close()
			opts.Ambience = amb
		}
	}

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("Rain - Space: pause, G: gradient, Up/Down: drops, C: colour, Esc/Q: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetScreenClearedEveryFrame(false)
	ebiten.SetTPS(cfg.TPS())

	g := game.NewGame(engine, opts)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game exited", "err", err)
		os.Exit(1)
	}
}
