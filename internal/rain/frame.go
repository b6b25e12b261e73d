package rain

import "github.com/iburimskiy/rain-visualization/internal/config"

// FrameStep advances every drop once and draws it, in slot order. Nothing
// happens while the pool has no usable surface size.
func FrameStep(pool *Pool, cfg *config.Config, canvas Canvas) {
	if !pool.Ready() {
		return
	}
	for _, d := range pool.dots {
		pool.Advance(d, cfg.MinSpeed)
		Draw(canvas, d, cfg)
	}
}

// Repaint draws every drop where it is, without moving it.
func Repaint(pool *Pool, cfg *config.Config, canvas Canvas) {
	if !pool.Ready() {
		return
	}
	for _, d := range pool.dots {
		Draw(canvas, d, cfg)
	}
}
