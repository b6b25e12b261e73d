package config

import (
	"flag"
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"github.com/gogpu/gg"
)

// RegisterFlags binds c to fs. Flags that carry a clamping rule go through
// the same setters used at runtime.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.Func("dots", fmt.Sprintf("number of drops, at least 1 (default %d)", c.DotCount), func(s string) error {
		n, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		c.SetDotCount(n)
		return nil
	})
	fs.Func("max-speed", fmt.Sprintf("upper bound of a drop's own speed (default %d)", c.MaxSpeed), func(s string) error {
		n, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		c.SetMaxSpeed(n)
		return nil
	})
	fs.IntVar(&c.MinSpeed, "min-speed", c.MinSpeed, "speed added to every drop each frame")
	fs.Float64Var(&c.MaxLength, "max-length", c.MaxLength, "extra length in pixels of the fastest drop")
	fs.Float64Var(&c.MinLength, "min-length", c.MinLength, "length in pixels of the slowest drop")
	fs.Float64Var(&c.WaterRadius, "water-radius", c.WaterRadius, "radius in pixels of the drop bulb")
	fs.Func("max-alpha", fmt.Sprintf("opacity fraction in (0,1] (default %g)", c.MaxAlpha), func(s string) error {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		c.SetMaxAlpha(f)
		return nil
	})
	fs.BoolVar(&c.AlphaGradient, "alpha-gradient", c.AlphaGradient, "vary opacity per drop")
	fs.Func("color", "drop colour as #RGB, #RRGGBB or #RRGGBBAA (default #ffffff)", func(s string) error {
		clr, err := ParseColor(s)
		if err != nil {
			return err
		}
		c.SetColor(clr)
		return nil
	})
	fs.Func("interval", fmt.Sprintf("target time between frames (default %s)", c.FrameInterval), func(s string) error {
		d, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		c.SetFrameInterval(d)
		return nil
	})
}

// ParseColor reads a hex colour with an optional leading '#'.
func ParseColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return color.NRGBA{}, fmt.Errorf("colour %q: want 3, 4, 6 or 8 hex digits", s)
	}
	if _, err := strconv.ParseUint(hex, 16, 64); err != nil {
		return color.NRGBA{}, fmt.Errorf("colour %q: %w", s, err)
	}
	return gg.Hex(hex).Color().(color.NRGBA), nil
}
