package game

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/faiface/beep"
)

func newTestAmbience() *Ambience {
	return NewAmbience(beep.SampleRate(44100), rand.New(rand.NewPCG(5, 6)))
}

func peak(samples [][2]float64) float64 {
	var m float64
	for _, s := range samples {
		m = math.Max(m, math.Max(math.Abs(s[0]), math.Abs(s[1])))
	}
	return m
}

func TestAmbienceStreamBounded(t *testing.T) {
	a := newTestAmbience()
	a.SetDensity(fullDensityDots)

	samples := make([][2]float64, 4096)
	n, ok := a.Stream(samples)
	if n != len(samples) || !ok {
		t.Fatalf("Stream() = %d, %v", n, ok)
	}
	p := peak(samples)
	if p == 0 {
		t.Fatal("full density produced silence")
	}
	if p > patterGain+1e-9 {
		t.Errorf("peak %g above gain %g", p, patterGain)
	}
}

func TestAmbienceDensityScales(t *testing.T) {
	tests := []struct {
		name string
		dots int
		want float64
	}{
		{"silent", 0, 0},
		{"half", fullDensityDots / 2, 0.5},
		{"saturates", fullDensityDots * 4, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			full := newTestAmbience()
			full.SetDensity(fullDensityDots)
			scaled := newTestAmbience()
			scaled.SetDensity(tt.dots)

			a := make([][2]float64, 512)
			b := make([][2]float64, 512)
			full.Stream(a)
			scaled.Stream(b)

			// Same seed, so the only difference is the volume stage.
			for i := range a {
				for ch := 0; ch < 2; ch++ {
					if math.Abs(b[i][ch]-a[i][ch]*tt.want) > 1e-9 {
						t.Fatalf("sample %d/%d = %g, want %g", i, ch, b[i][ch], a[i][ch]*tt.want)
					}
				}
			}
		})
	}
}

func TestAmbiencePause(t *testing.T) {
	a := newTestAmbience()
	a.SetDensity(fullDensityDots)
	a.SetPaused(true)

	samples := make([][2]float64, 256)
	a.Stream(samples)
	if p := peak(samples); p != 0 {
		t.Errorf("paused peak = %g, want 0", p)
	}
}

func TestClamp(t *testing.T) {
	if clamp01(-1) != 0 || clamp01(2) != 1 || clamp01(0.3) != 0.3 {
		t.Error("clamp01 out of range")
	}
	if clampInt(-5, 1, 10) != 1 || clampInt(50, 1, 10) != 10 || clampInt(4, 1, 10) != 4 {
		t.Error("clampInt out of range")
	}
}
