package rain

import (
	"image/color"
	"math"

	"github.com/iburimskiy/rain-visualization/internal/config"
)

type Point struct {
	X, Y float64
}

// Teardrop is the outline of one drop: a circle joined to a triangular cap
// whose apex is Tip and whose base touches the circle at Right and Left.
//
// Hosts trace the circle clockwise (y grows downwards) starting at angle 0,
// then Tip, Right, Left and close. Both sub-paths wind the same way, so a
// non-zero fill renders the union as one solid shape.
type Teardrop struct {
	Center Point
	Radius float64

	Tip   Point
	Right Point
	Left  Point
}

// NewTeardrop builds the outline in local coordinates with the tip at
// (r, 0) and the circle centred at (r, length). The caller must ensure
// length > 0 and r <= length; otherwise the tangent points are NaN.
func NewTeardrop(r, length float64) Teardrop {
	r2 := r * r
	xt := r + math.Sqrt(r2-r2*r2/(length*length))
	yt := length - r2/length
	return Teardrop{
		Center: Point{X: r, Y: length},
		Radius: r,
		Tip:    Point{X: r, Y: 0},
		Right:  Point{X: xt, Y: yt},
		Left:   Point{X: 2*r - xt, Y: yt},
	}
}

// Offset returns t translated by (dx, dy).
func (t Teardrop) Offset(dx, dy float64) Teardrop {
	move := func(p Point) Point { return Point{X: p.X + dx, Y: p.Y + dy} }
	t.Center = move(t.Center)
	t.Tip = move(t.Tip)
	t.Right = move(t.Right)
	t.Left = move(t.Left)
	return t
}

// Length is the tip-to-bottom length of a drop with the given speed.
func Length(cfg *config.Config, speed int) float64 {
	return cfg.MinLength + cfg.MaxLength*float64(speed)/float64(cfg.MaxSpeed)
}

// AlphaByte is the opacity d is filled with.
func AlphaByte(d *Particle, cfg *config.Config) uint8 {
	if !cfg.AlphaGradient {
		return cfg.MaxAlphaByte
	}
	return uint8(math.Round(d.Alpha * float64(cfg.MaxAlphaByte)))
}

// Canvas is the drawing target supplied by a host for one frame.
type Canvas interface {
	Clear()
	// Fill paints t with clr using the non-zero rule. No stroke.
	Fill(t Teardrop, clr color.NRGBA)
}

// Draw fills the teardrop for d at its current position.
func Draw(c Canvas, d *Particle, cfg *config.Config) {
	t := NewTeardrop(cfg.WaterRadius, Length(cfg, d.Speed)).Offset(float64(d.X), float64(d.Y))
	clr := cfg.Color
	clr.A = AlphaByte(d, cfg)
	c.Fill(t, clr)
}
