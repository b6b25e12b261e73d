package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/rain-visualization/internal/rain"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// screenCanvas fills teardrops on an ebiten image. Vertex and index
// buffers are reused across fills.
type screenCanvas struct {
	dst      *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

func (c *screenCanvas) Clear() { c.dst.Clear() }

func (c *screenCanvas) Fill(t rain.Teardrop, clr color.NRGBA) {
	var path vector.Path
	cx, cy, r := float32(t.Center.X), float32(t.Center.Y), float32(t.Radius)
	path.MoveTo(cx+r, cy)
	path.Arc(cx, cy, r, 0, 2*math.Pi, vector.Clockwise)
	path.Close()
	path.MoveTo(float32(t.Tip.X), float32(t.Tip.Y))
	path.LineTo(float32(t.Right.X), float32(t.Right.Y))
	path.LineTo(float32(t.Left.X), float32(t.Left.Y))
	path.Close()

	c.vertices, c.indices = path.AppendVerticesAndIndicesForFilling(c.vertices[:0], c.indices[:0])
	cr, cg, cb, ca := float32(clr.R)/0xff, float32(clr.G)/0xff, float32(clr.B)/0xff, float32(clr.A)/0xff
	for i := range c.vertices {
		v := &c.vertices[i]
		v.SrcX, v.SrcY = 1, 1
		v.ColorR, v.ColorG, v.ColorB, v.ColorA = cr, cg, cb, ca
	}

	op := &ebiten.DrawTrianglesOptions{
		FillRule:  ebiten.FillRuleNonZero,
		AntiAlias: true,
	}
	c.dst.DrawTriangles(c.vertices, c.indices, whiteSubImage, op)
}

// screenSurface exposes the screen passed to Draw for the duration of one
// frame. ebiten presents the screen itself, so Unlock only releases it.
type screenSurface struct {
	canvas screenCanvas
}

func (s *screenSurface) Lock() (rain.Canvas, int, int, bool) {
	if s.canvas.dst == nil {
		return nil, 0, 0, false
	}
	b := s.canvas.dst.Bounds()
	return &s.canvas, b.Dx(), b.Dy(), true
}

func (s *screenSurface) Unlock(rain.Canvas) { s.canvas.dst = nil }
