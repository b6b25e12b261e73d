package game

import (
	"fmt"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/rain-visualization/internal/config"
	"github.com/iburimskiy/rain-visualization/internal/loop"
	"github.com/iburimskiy/rain-visualization/internal/rain"
)

const (
	dotStep      = 10
	maxDots      = 2000
	speedStep    = 2
	maxSpeedCap  = 200
	maxAlphaStep = 0.02
)

type Options struct {
	// HUD prints the current settings over the rain.
	HUD bool
	// Ambience, when set, follows the drop count and the pause state.
	Ambience *Ambience
}

// Game hosts the rain in an ebiten window. ebiten ticks Update at the
// configured TPS; each tick marks the screen dirty and the next Draw runs
// exactly one frame. The screen is not cleared between Draw calls, so a
// paused or idle frame keeps showing the last one.
type Game struct {
	engine   *rain.Engine
	surface  screenSurface
	ambience *Ambience
	hud      bool

	picks   chan pickResult
	picking atomic.Bool

	dirty   bool
	repaint bool
	paused  bool
	lastErr error
}

func NewGame(engine *rain.Engine, opts Options) *Game {
	g := &Game{
		engine:   engine,
		ambience: opts.Ambience,
		hud:      opts.HUD,
		picks:    make(chan pickResult, 1),
	}
	if g.ambience != nil {
		g.ambience.SetDensity(engine.Config().DotCount)
	}
	return g
}

func (g *Game) Update() error {
	justPressed := inpututil.IsKeyJustPressed

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	cfg := g.engine.Config()
	wasPaused := g.paused

	if justPressed(ebiten.KeySpace) {
		g.togglePause()
	}

	switch {
	case justPressed(ebiten.KeyG):
		g.engine.EnableAlphaGradient(!cfg.AlphaGradient)
	case justPressed(ebiten.KeyArrowUp):
		g.setDotCount(cfg.DotCount + dotStep)
	case justPressed(ebiten.KeyArrowDown):
		g.setDotCount(cfg.DotCount - dotStep)
	case justPressed(ebiten.KeyArrowRight):
		g.engine.SetMaxSpeed(clampInt(cfg.MaxSpeed+speedStep, 1, maxSpeedCap))
	case justPressed(ebiten.KeyArrowLeft):
		g.engine.SetMaxSpeed(clampInt(cfg.MaxSpeed-speedStep, 1, maxSpeedCap))
	case justPressed(ebiten.KeyBracketRight):
		g.engine.SetMaxAlpha(cfg.MaxAlpha + maxAlphaStep)
	case justPressed(ebiten.KeyBracketLeft):
		g.engine.SetMaxAlpha(cfg.MaxAlpha - maxAlphaStep)
	case justPressed(ebiten.KeyC):
		g.pickColor()
	}

	select {
	case p := <-g.picks:
		if p.err != nil {
			g.lastErr = p.err
			g.repaint = true
			rain.Logger().Warn("game: colour dialog failed", "err", p.err)
		} else {
			g.engine.SetColor(p.clr)
		}
	default:
	}

	g.settle(cfg, wasPaused)
	return nil
}

// settle decides what the next Draw does. A running game advances every
// tick; a paused one only repaints when a setting or the pause state changed.
func (g *Game) settle(before config.Config, wasPaused bool) {
	if !g.paused {
		g.dirty = true
		return
	}
	g.dirty = false
	if g.engine.Config() != before || !wasPaused {
		g.repaint = true
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	switch {
	case g.dirty:
		g.surface.canvas.dst = screen
		loop.Frame(g.engine, &g.surface)
	case g.repaint:
		g.surface.canvas.dst = screen
		loop.Repaint(g.engine, &g.surface)
	default:
		return
	}
	g.dirty, g.repaint = false, false

	if g.hud {
		ebitenutil.DebugPrintAt(screen, g.status(), 12, 12)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func (g *Game) status() string {
	cfg := g.engine.Config()
	s := fmt.Sprintf("drops %d  speed %d+%d  alpha %.2f  gradient %v  %.0f tps",
		cfg.DotCount, cfg.MaxSpeed, cfg.MinSpeed, cfg.MaxAlpha, cfg.AlphaGradient, ebiten.ActualTPS())
	if g.paused {
		s += "  [paused]"
	}
	if g.lastErr != nil {
		s += " | Error: " + g.lastErr.Error()
	}
	return s
}

func (g *Game) setDotCount(n int) {
	n = clampInt(n, 1, maxDots)
	g.engine.SetDotCount(n)
	if g.ambience != nil {
		g.ambience.SetDensity(n)
	}
}

func (g *Game) togglePause() {
	g.paused = !g.paused
	if g.ambience != nil {
		g.ambience.SetPaused(g.paused)
	}
}
