// Command raindrop-frames renders the rain off screen and writes each frame
// as a PNG file.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gogpu/gg"

	"github.com/iburimskiy/rain-visualization/internal/config"
	"github.com/iburimskiy/rain-visualization/internal/loop"
	"github.com/iburimskiy/rain-visualization/internal/raster"
	"github.com/iburimskiy/rain-visualization/internal/rain"
)

type options struct {
	frames   int
	skip     int
	out      string
	width    int
	height   int
	loopKind string
	seed     uint64
}

func main() {
	cfg := config.Default()
	cfg.RegisterFlags(flag.CommandLine)

	var opts options
	var logLevel slog.Level
	flag.TextVar(&logLevel, "log-level", slog.LevelInfo, "log level (debug, info, warn, error)")
	flag.IntVar(&opts.frames, "frames", 60, "number of frames to write")
	flag.IntVar(&opts.skip, "skip", 0, "frames to simulate before writing")
	flag.StringVar(&opts.out, "out", "frames", "output directory")
	flag.IntVar(&opts.width, "width", 360, "frame width in pixels")
	flag.IntVar(&opts.height, "height", 640, "frame height in pixels")
	flag.StringVar(&opts.loopKind, "loop", loop.KindThread, "frame scheduler: thread or ticker")
	flag.Uint64Var(&opts.seed, "seed", 0, "random seed (0 = time based)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	rain.SetLogger(logger)
	gg.SetLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, opts); err != nil {
		logger.Error("render failed", "err", err)
		os.Exit(1)
	}
	logger.Info("frames written", "count", opts.frames, "dir", opts.out)
}

func run(ctx context.Context, cfg config.Config, opts options) error {
	if opts.frames < 1 {
		return fmt.Errorf("frames must be at least 1, got %d", opts.frames)
	}
	if opts.width <= 0 || opts.height <= 0 {
		return fmt.Errorf("invalid frame size %dx%d", opts.width, opts.height)
	}
	if err := os.MkdirAll(opts.out, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	sched, err := loop.New(opts.loopKind, cfg.FrameInterval)
	if err != nil {
		return err
	}

	canvas := raster.New(opts.width, opts.height)
	defer canvas.Close()
	surface := newPNGSurface(canvas, opts.out, opts.skip, opts.frames)

	engine := rain.NewEngine(cfg, rain.NewRand(opts.seed))
	sched.Start(func() { loop.Frame(engine, surface) })

	select {
	case <-surface.Done():
	case <-ctx.Done():
	}
	sched.Stop()

	if err := surface.Err(); err != nil {
		return err
	}
	return ctx.Err()
}
