// Package raster draws rain on a software canvas backed by gogpu/gg.
package raster

import (
	"image"
	"image/color"
	"io"

	"github.com/gogpu/gg"

	"github.com/iburimskiy/rain-visualization/internal/rain"
)

// Canvas implements rain.Canvas on an anti-aliased gg context.
type Canvas struct {
	dc *gg.Context
}

var _ rain.Canvas = (*Canvas)(nil)

func New(width, height int) *Canvas {
	dc := gg.NewContext(width, height)
	dc.SetFillRule(gg.FillRuleNonZero)
	return &Canvas{dc: dc}
}

func (c *Canvas) Width() int { return c.dc.Width() }

func (c *Canvas) Height() int { return c.dc.Height() }

// Resize reallocates the pixel buffer when the size changes.
func (c *Canvas) Resize(width, height int) error {
	return c.dc.Resize(width, height)
}

// Clear makes every pixel transparent.
func (c *Canvas) Clear() { c.dc.Clear() }

// Fill traces the bulb and the cap as two clockwise sub-paths and fills
// their union.
func (c *Canvas) Fill(t rain.Teardrop, clr color.NRGBA) {
	c.dc.SetRGBA(
		float64(clr.R)/255,
		float64(clr.G)/255,
		float64(clr.B)/255,
		float64(clr.A)/255,
	)
	c.dc.DrawCircle(t.Center.X, t.Center.Y, t.Radius)
	c.dc.MoveTo(t.Tip.X, t.Tip.Y)
	c.dc.LineTo(t.Right.X, t.Right.Y)
	c.dc.LineTo(t.Left.X, t.Left.Y)
	c.dc.ClosePath()
	if err := c.dc.Fill(); err != nil {
		rain.Logger().Debug("raster: fill failed", "err", err)
	}
}

// Image returns a snapshot of the pixels.
func (c *Canvas) Image() image.Image { return c.dc.Image() }

func (c *Canvas) EncodePNG(w io.Writer) error { return c.dc.EncodePNG(w) }

func (c *Canvas) Close() error { return c.dc.Close() }
