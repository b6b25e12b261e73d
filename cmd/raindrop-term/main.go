// Command raindrop-term shows the rain in a terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/gg"

	"github.com/iburimskiy/rain-visualization/internal/config"
	"github.com/iburimskiy/rain-visualization/internal/loop"
	"github.com/iburimskiy/rain-visualization/internal/rain"
	"github.com/iburimskiy/rain-visualization/internal/term"
)

func main() {
	cfg := config.Default()
	cfg.RegisterFlags(flag.CommandLine)

	var logLevel slog.Level
	flag.TextVar(&logLevel, "log-level", slog.LevelWarn, "log level (debug, info, warn, error)")
	logFile := flag.String("log", "", "write logs to this file (the screen is in use)")
	loopKind := flag.String("loop", loop.KindTicker, "frame scheduler: thread or ticker")
	background := flag.String("background", "#000000", "background colour")
	seed := flag.Uint64("seed", 0, "random seed (0 = time based)")
	flag.Parse()

	if err := run(cfg, logLevel, *logFile, *loopKind, *background, *seed); err != nil {
		fmt.Fprintf(os.Stderr, "raindrop-term: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, level slog.Level, logFile, loopKind, background string, seed uint64) error {
	logger := slog.New(slog.DiscardHandler)
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	}
	rain.SetLogger(logger)
	gg.SetLogger(logger)

	bg, err := config.ParseColor(background)
	if err != nil {
		return err
	}
	bg.A = 0xff

	sched, err := loop.New(loopKind, cfg.FrameInterval)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// Restore the terminal on exit, including a panic in the event loop.
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "raindrop-term crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
		screen.Fini()
	}()
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.NewRGBColor(int32(bg.R), int32(bg.G), int32(bg.B))))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine := rain.NewEngine(cfg, rain.NewRand(seed))
	term.Run(ctx, screen, engine, sched, bg)
	return nil
}
