// Package loop drives rain frames on a steady cadence. A Scheduler decides
// when a frame runs; a Surface decides where it is drawn.
package loop

import (
	"fmt"
	"time"

	"github.com/iburimskiy/rain-visualization/internal/rain"
)

// Surface hands out a canvas for exactly one frame.
type Surface interface {
	// Lock acquires the drawing target. ok is false when there is nothing
	// to draw on; the frame is skipped.
	Lock() (canvas rain.Canvas, width, height int, ok bool)
	// Unlock presents the frame and releases the canvas.
	Unlock(canvas rain.Canvas)
}

// Scheduler calls tick repeatedly until stopped. Ticks never overlap.
type Scheduler interface {
	Start(tick func())
	// Stop cancels future ticks and returns once no tick is running.
	Stop()
}

// Frame runs one acquire, clear, step, present cycle.
func Frame(e *rain.Engine, s Surface) bool {
	return present(s, e.Step)
}

// Repaint redraws the current frame without advancing the drops.
func Repaint(e *rain.Engine, s Surface) bool {
	return present(s, e.Repaint)
}

func present(s Surface, draw func(rain.Canvas, int, int)) bool {
	canvas, width, height, ok := s.Lock()
	if !ok {
		rain.Logger().Debug("loop: no surface, frame skipped")
		return false
	}
	defer s.Unlock(canvas)

	canvas.Clear()
	draw(canvas, width, height)
	return true
}

const (
	KindThread = "thread"
	KindTicker = "ticker"
)

// New returns the scheduler registered under kind.
func New(kind string, interval time.Duration) (Scheduler, error) {
	switch kind {
	case KindThread:
		return NewThread(interval), nil
	case KindTicker:
		return NewTicker(interval), nil
	default:
		return nil, fmt.Errorf("unknown loop %q (want %s or %s)", kind, KindThread, KindTicker)
	}
}
