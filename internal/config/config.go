package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"time"
)

const (
	DefaultDotCount    = 70
	DefaultMaxSpeed    = 36
	DefaultMinSpeed    = 20
	DefaultMaxLength   = 40
	DefaultMinLength   = 20
	DefaultWaterRadius = 3
	DefaultMaxAlpha    = 0.12

	DefaultFrameInterval = 16 * time.Millisecond

	// Substitute for a non-positive opacity fraction.
	minAlphaFraction = 0.01
)

// ErrGeometry reports a radius/length combination that cannot form a teardrop.
var ErrGeometry = errors.New("invalid teardrop geometry")

// Config holds every tunable of the rain effect. The zero value is not
// useful; start from Default and change fields through the setters so the
// clamping rules stay in one place.
type Config struct {
	DotCount int

	MaxSpeed int
	MinSpeed int

	MaxLength   float64
	MinLength   float64
	WaterRadius float64

	// MaxAlpha is the opacity fraction in (0, 1]; MaxAlphaByte is derived from it.
	MaxAlpha      float64
	MaxAlphaByte  uint8
	AlphaGradient bool

	Color color.NRGBA

	FrameInterval time.Duration
}

func Default() Config {
	c := Config{
		DotCount:      DefaultDotCount,
		MaxSpeed:      DefaultMaxSpeed,
		MinSpeed:      DefaultMinSpeed,
		MaxLength:     DefaultMaxLength,
		MinLength:     DefaultMinLength,
		WaterRadius:   DefaultWaterRadius,
		AlphaGradient: true,
		Color:         color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		FrameInterval: DefaultFrameInterval,
	}
	c.SetMaxAlpha(DefaultMaxAlpha)
	return c
}

// SetDotCount floors n at 1.
func (c *Config) SetDotCount(n int) {
	if n < 1 {
		n = 1
	}
	c.DotCount = n
}

// SetMaxSpeed floors v at 1, keeping speed sampling and the length ratio defined.
func (c *Config) SetMaxSpeed(v int) {
	if v < 1 {
		v = 1
	}
	c.MaxSpeed = v
}

func (c *Config) SetMinSpeed(v int) { c.MinSpeed = v }

func (c *Config) SetMaxLength(v float64) { c.MaxLength = v }

func (c *Config) SetMinLength(v float64) { c.MinLength = v }

func (c *Config) SetWaterRadius(v float64) { c.WaterRadius = v }

// SetMaxAlpha clamps the opacity fraction to (0, 1] and derives MaxAlphaByte.
func (c *Config) SetMaxAlpha(fraction float64) {
	if fraction <= 0 || math.IsNaN(fraction) {
		fraction = minAlphaFraction
	} else if fraction > 1 {
		fraction = 1
	}
	c.MaxAlpha = fraction
	c.MaxAlphaByte = uint8(math.Round(fraction * 255))
}

func (c *Config) EnableAlphaGradient(enable bool) { c.AlphaGradient = enable }

func (c *Config) SetColor(clr color.Color) { c.Color = color.NRGBAModel.Convert(clr).(color.NRGBA) }

// SetFrameInterval falls back to DefaultFrameInterval for non-positive values.
func (c *Config) SetFrameInterval(d time.Duration) {
	if d <= 0 {
		d = DefaultFrameInterval
	}
	c.FrameInterval = d
}

// TPS converts the frame interval to ticks per second, at least 1.
func (c Config) TPS() int {
	tps := int(math.Round(float64(time.Second) / float64(c.FrameInterval)))
	if tps < 1 {
		tps = 1
	}
	return tps
}

// Validate checks that every drop length can hold the water circle.
func (c Config) Validate() error {
	shortest := c.MinLength
	if c.MaxLength < 0 {
		shortest += c.MaxLength
	}
	if !(shortest > 0) {
		return fmt.Errorf("%w: shortest drop length %g must be positive", ErrGeometry, shortest)
	}
	if c.WaterRadius > shortest {
		return fmt.Errorf("%w: water radius %g exceeds shortest drop length %g", ErrGeometry, c.WaterRadius, shortest)
	}
	return nil
}
