package rain

import (
	"math/rand/v2"
	"time"
)

// NewRand returns a PCG source for seed, or a time-based one for seed 0.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Pool owns a fixed number of drops and the surface size they fall through.
// It is not safe for concurrent use; Engine serialises access.
type Pool struct {
	dots   []*Particle
	width  int
	height int
	rng    *rand.Rand
}

func NewPool(rng *rand.Rand) *Pool {
	return &Pool{rng: rng}
}

// Resize sets the surface size and the number of drops. Drops are kept by
// index; only slots that have no drop yet are randomised, and only while
// both dimensions are positive.
func (p *Pool) Resize(width, height, count, maxSpeed int) {
	if count < 1 {
		count = 1
	}
	p.width, p.height = width, height

	if len(p.dots) != count {
		dots := make([]*Particle, count)
		copy(dots, p.dots)
		p.dots = dots
	}
	if !p.validSize() {
		return
	}
	if maxSpeed < 1 {
		maxSpeed = 1
	}
	for i, d := range p.dots {
		if d == nil {
			p.dots[i] = NewParticle(
				p.rng.IntN(p.width),
				p.rng.IntN(p.height),
				p.rng.IntN(maxSpeed),
				p.rng.Float64(),
			)
		}
	}
}

// Advance moves d one frame down: Recycle, then add the drop's own speed
// plus the global minSpeed.
func (p *Pool) Advance(d *Particle, minSpeed int) {
	p.Recycle(d)
	d.Y += d.Speed + minSpeed
}

// Recycle puts a drop that is past the right or bottom edge back at the
// top, in a random column. Speed and alpha are kept.
func (p *Pool) Recycle(d *Particle) bool {
	if d.X <= p.width && d.Y <= p.height {
		return false
	}
	d.X = p.rng.IntN(p.width)
	d.Y = 0
	return true
}

// Ready reports whether the pool can be advanced and drawn.
func (p *Pool) Ready() bool {
	if !p.validSize() {
		return false
	}
	for _, d := range p.dots {
		if d == nil {
			return false
		}
	}
	return true
}

func (p *Pool) validSize() bool { return p.width > 0 && p.height > 0 }

func (p *Pool) Len() int { return len(p.dots) }

// At returns the drop in slot i, or nil if the slot is not populated yet.
func (p *Pool) At(i int) *Particle { return p.dots[i] }

func (p *Pool) Width() int { return p.width }

func (p *Pool) Height() int { return p.height }
