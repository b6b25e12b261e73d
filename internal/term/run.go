package term

import (
	"context"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/rain-visualization/internal/loop"
	"github.com/iburimskiy/rain-visualization/internal/rain"
)

const dotStep = 10

// Run shows the rain on screen until the user quits or ctx ends. Frames are
// driven by sched; key and resize events are handled here.
func Run(ctx context.Context, screen tcell.Screen, e *rain.Engine, sched loop.Scheduler, background color.NRGBA) {
	surface := NewSurface(screen, background)
	defer surface.Close()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	sched.Start(func() { loop.Frame(e, surface) })
	defer sched.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			if !handleEvent(e, screen, ev) {
				return
			}
		}
	}
}

// handleEvent applies one input event and reports whether to keep running.
func handleEvent(e *rain.Engine, screen tcell.Screen, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		// The next frame picks up the new size; Sync repaints stale cells.
		screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			cfg := e.Config()
			switch ev.Rune() {
			case 'q':
				return false
			case '+', '=':
				e.SetDotCount(cfg.DotCount + dotStep)
			case '-':
				e.SetDotCount(cfg.DotCount - dotStep)
			case 'g':
				e.EnableAlphaGradient(!cfg.AlphaGradient)
			}
		}
	}
	return true
}
