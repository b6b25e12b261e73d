package game

import (
	"errors"
	"image/color"

	"github.com/ncruces/zenity"
)

type pickResult struct {
	clr color.Color
	err error
}

// pickColor opens the native colour dialog without blocking the frame
// loop. The choice is applied by Update on a later tick.
func (g *Game) pickColor() {
	if !g.picking.CompareAndSwap(false, true) {
		return
	}
	current := g.engine.Config().Color

	go func() {
		defer g.picking.Store(false)

		clr, err := zenity.SelectColor(
			zenity.Title("Rain colour"),
			zenity.Color(current),
			zenity.ShowPalette(),
		)
		if errors.Is(err, zenity.ErrCanceled) {
			return
		}
		g.picks <- pickResult{clr: clr, err: err}
	}()
}
