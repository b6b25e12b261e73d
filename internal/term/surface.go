// Package term shows the rain in a terminal. Frames are rasterised at
// pixel resolution and folded into half-block cells, two pixels per cell.
package term

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/image/draw"

	"github.com/iburimskiy/rain-visualization/internal/raster"
	"github.com/iburimskiy/rain-visualization/internal/rain"
)

const upperHalfBlock = '▀'

// Cell size in canvas pixels. Each half of a cell covers CellWidth x CellHeight/2.
const (
	CellWidth  = 8
	CellHeight = 16
)

// Surface rasterises into a raster.Canvas sized to the terminal and blits it
// to a tcell screen on Unlock.
type Surface struct {
	screen     tcell.Screen
	background color.NRGBA

	canvas *raster.Canvas
	cells  *image.RGBA
}

func NewSurface(screen tcell.Screen, background color.NRGBA) *Surface {
	return &Surface{screen: screen, background: background}
}

func (s *Surface) Lock() (rain.Canvas, int, int, bool) {
	cols, rows := s.screen.Size()
	if cols <= 0 || rows <= 0 {
		return nil, 0, 0, false
	}
	w, h := cols*CellWidth, rows*CellHeight

	if s.canvas == nil {
		s.canvas = raster.New(w, h)
	} else if err := s.canvas.Resize(w, h); err != nil {
		rain.Logger().Debug("term: resize failed", "err", err)
		return nil, 0, 0, false
	}
	if s.cells == nil || s.cells.Bounds().Dx() != cols || s.cells.Bounds().Dy() != rows*2 {
		s.cells = image.NewRGBA(image.Rect(0, 0, cols, rows*2))
	}
	return s.canvas, w, h, true
}

func (s *Surface) Unlock(rain.Canvas) {
	downsample(s.cells, s.canvas.Image(), s.background)

	b := s.cells.Bounds()
	for y := 0; y < b.Dy()/2; y++ {
		for x := 0; x < b.Dx(); x++ {
			top := s.cells.RGBAAt(x, 2*y)
			bottom := s.cells.RGBAAt(x, 2*y+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			s.screen.SetContent(x, y, upperHalfBlock, nil, style)
		}
	}
	s.screen.Show()
}

// Close releases the raster canvas.
func (s *Surface) Close() error {
	if s.canvas == nil {
		return nil
	}
	return s.canvas.Close()
}

// downsample paints background into dst and composites src over it, scaled
// to dst's bounds.
func downsample(dst *image.RGBA, src image.Image, background color.NRGBA) {
	draw.Draw(dst, dst.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
}
