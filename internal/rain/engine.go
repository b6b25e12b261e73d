package rain

import (
	"image/color"
	"math/rand/v2"
	"sync"

	"github.com/iburimskiy/rain-visualization/internal/config"
)

// Engine pairs a configuration with its pool. Step and every mutator take
// the same lock, so a reinitialisation never lands in the middle of a frame.
type Engine struct {
	mu   sync.Mutex
	cfg  config.Config
	pool *Pool
}

func NewEngine(cfg config.Config, rng *rand.Rand) *Engine {
	cfg.SetDotCount(cfg.DotCount)
	cfg.SetMaxSpeed(cfg.MaxSpeed)
	cfg.SetMaxAlpha(cfg.MaxAlpha)
	cfg.SetFrameInterval(cfg.FrameInterval)
	e := &Engine{cfg: cfg, pool: NewPool(rng)}
	e.checkGeometry()
	return e
}

// Step draws one frame onto canvas. A size different from the pool's
// reinitialises it first.
func (e *Engine) Step(canvas Canvas, width, height int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if width != e.pool.Width() || height != e.pool.Height() {
		e.resizeLocked(width, height)
	}
	FrameStep(e.pool, &e.cfg, canvas)
}

// Repaint draws the drops at their current positions with the current
// settings. It is used to refresh a paused frame.
func (e *Engine) Repaint(canvas Canvas, width, height int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if width != e.pool.Width() || height != e.pool.Height() {
		e.resizeLocked(width, height)
	}
	Repaint(e.pool, &e.cfg, canvas)
}

// Config returns a copy of the current configuration.
func (e *Engine) Config() config.Config {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cfg
}

// Len returns the number of drop slots.
func (e *Engine) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pool.Len()
}

func (e *Engine) SetDotCount(n int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cfg.SetDotCount(n)
	e.resizeLocked(e.pool.Width(), e.pool.Height())
}

func (e *Engine) SetMaxSpeed(v int) {
	e.update(func(c *config.Config) { c.SetMaxSpeed(v) })
}

func (e *Engine) SetMinSpeed(v int) {
	e.update(func(c *config.Config) { c.SetMinSpeed(v) })
}

func (e *Engine) SetMaxLength(v float64) {
	e.update(func(c *config.Config) { c.SetMaxLength(v) })
	e.checkGeometry()
}

func (e *Engine) SetMinLength(v float64) {
	e.update(func(c *config.Config) { c.SetMinLength(v) })
	e.checkGeometry()
}

func (e *Engine) SetWaterRadius(v float64) {
	e.update(func(c *config.Config) { c.SetWaterRadius(v) })
	e.checkGeometry()
}

func (e *Engine) SetMaxAlpha(fraction float64) {
	e.update(func(c *config.Config) { c.SetMaxAlpha(fraction) })
}

func (e *Engine) EnableAlphaGradient(enable bool) {
	e.update(func(c *config.Config) { c.EnableAlphaGradient(enable) })
}

func (e *Engine) SetColor(clr color.Color) {
	e.update(func(c *config.Config) { c.SetColor(clr) })
}

func (e *Engine) update(fn func(*config.Config)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(&e.cfg)
}

func (e *Engine) resizeLocked(width, height int) {
	e.pool.Resize(width, height, e.cfg.DotCount, e.cfg.MaxSpeed)
	Logger().Debug("rain: pool reinitialised",
		"width", width, "height", height, "dots", e.pool.Len(), "ready", e.pool.Ready())
}

// checkGeometry logs configurations that would produce NaN outlines. They
// are left as set.
func (e *Engine) checkGeometry() {
	cfg := e.Config()
	if err := cfg.Validate(); err != nil {
		Logger().Warn("rain: drops will not render", "err", err)
	}
}
