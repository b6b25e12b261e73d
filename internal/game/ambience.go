package game

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
)

const (
	// Drop count at which the patter reaches full volume.
	fullDensityDots = 200
	// One-pole low-pass coefficient; lower is duller.
	patterCutoff = 0.35
	patterGain   = 0.25
)

// Ambience is a soft rain noise whose loudness follows the drop count.
// It streams low-passed white noise through a volume stage.
type Ambience struct {
	sampleRate beep.SampleRate
	rng        *rand.Rand
	low        [2]float64

	ctrl   *beep.Ctrl
	volume *effects.Volume
}

func NewAmbience(sr beep.SampleRate, rng *rand.Rand) *Ambience {
	a := &Ambience{sampleRate: sr, rng: rng}
	a.ctrl = &beep.Ctrl{Streamer: beep.StreamerFunc(a.patter)}
	a.volume = &effects.Volume{Streamer: a.ctrl, Base: 2}
	return a
}

func (a *Ambience) patter(samples [][2]float64) (int, bool) {
	for i := range samples {
		for ch := range samples[i] {
			white := a.rng.Float64()*2 - 1
			a.low[ch] += patterCutoff * (white - a.low[ch])
			samples[i][ch] = a.low[ch] * patterGain
		}
	}
	return len(samples), true
}

// Stream implements beep.Streamer.
func (a *Ambience) Stream(samples [][2]float64) (int, bool) {
	return a.volume.Stream(samples)
}

func (a *Ambience) Err() error { return nil }

// Start opens the speaker and begins playback.
func (a *Ambience) Start() error {
	if err := speaker.Init(a.sampleRate, a.sampleRate.N(time.Second/20)); err != nil {
		return err
	}
	speaker.Play(a)
	return nil
}

// SetDensity scales loudness linearly with dots, silent at zero.
func (a *Ambience) SetDensity(dots int) {
	frac := clamp01(float64(dots) / fullDensityDots)
	speaker.Lock()
	a.volume.Silent = frac == 0
	if frac > 0 {
		a.volume.Volume = math.Log2(frac)
	}
	speaker.Unlock()
}

func (a *Ambience) SetPaused(paused bool) {
	speaker.Lock()
	a.ctrl.Paused = paused
	speaker.Unlock()
}

// Close stops playback. speaker.Clear takes the speaker lock itself.
func (a *Ambience) Close() {
	speaker.Clear()
}
