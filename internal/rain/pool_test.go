package rain

import (
	"math/rand/v2"
	"testing"
)

func newTestRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestNewParticleClamps(t *testing.T) {
	tests := []struct {
		name      string
		speed     int
		alpha     float64
		wantSpeed int
		wantAlpha float64
	}{
		{"zero speed", 0, 0.5, 1, 0.5},
		{"negative speed", -7, 0.5, 1, 0.5},
		{"low alpha", 5, 0.1, 5, 0.2},
		{"negative alpha", 5, -1, 5, 0.2},
		{"high alpha", 5, 1.4, 5, 1},
		{"in range", 12, 0.75, 12, 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewParticle(3, 4, tt.speed, tt.alpha)
			if d.Speed != tt.wantSpeed {
				t.Errorf("speed = %d, want %d", d.Speed, tt.wantSpeed)
			}
			if d.Alpha != tt.wantAlpha {
				t.Errorf("alpha = %g, want %g", d.Alpha, tt.wantAlpha)
			}
			if d.X != 3 || d.Y != 4 {
				t.Errorf("position = (%d,%d), want (3,4)", d.X, d.Y)
			}
		})
	}
}

func TestPoolResizePopulatesWithinBounds(t *testing.T) {
	for _, count := range []int{1, 7, 70, 500} {
		p := NewPool(newTestRand())
		p.Resize(320, 200, count, 36)

		if p.Len() != count {
			t.Fatalf("Len() = %d, want %d", p.Len(), count)
		}
		if !p.Ready() {
			t.Fatal("pool should be ready")
		}
		for i := 0; i < p.Len(); i++ {
			d := p.At(i)
			if d.X < 0 || d.X >= 320 || d.Y < 0 || d.Y >= 200 {
				t.Errorf("drop %d at (%d,%d) outside surface", i, d.X, d.Y)
			}
			if d.Speed < 1 || d.Speed > 36 {
				t.Errorf("drop %d speed %d outside [1,36]", i, d.Speed)
			}
			if d.Alpha < 0.2 || d.Alpha > 1 {
				t.Errorf("drop %d alpha %g outside [0.2,1]", i, d.Alpha)
			}
		}
	}
}

func TestPoolResizeCoercesCount(t *testing.T) {
	p := NewPool(newTestRand())
	p.Resize(10, 10, 0, 36)
	if p.Len() != 1 {
		t.Errorf("Len() = %d, want 1", p.Len())
	}
	p.Resize(10, 10, -3, 36)
	if p.Len() != 1 {
		t.Errorf("Len() = %d, want 1", p.Len())
	}
}

func TestPoolResizePreservesSlots(t *testing.T) {
	p := NewPool(newTestRand())
	p.Resize(100, 100, 5, 36)
	before := make([]*Particle, p.Len())
	for i := range before {
		before[i] = p.At(i)
	}

	// Same count, new size: every slot survives.
	p.Resize(300, 50, 5, 36)
	for i := range before {
		if p.At(i) != before[i] {
			t.Errorf("slot %d replaced on size change", i)
		}
	}

	// Growing keeps the old slots and fills the new ones.
	p.Resize(300, 50, 8, 36)
	for i := range before {
		if p.At(i) != before[i] {
			t.Errorf("slot %d replaced on grow", i)
		}
	}
	for i := len(before); i < p.Len(); i++ {
		if p.At(i) == nil {
			t.Errorf("slot %d not populated", i)
		}
	}

	// Shrinking keeps the prefix.
	p.Resize(300, 50, 2, 36)
	if p.Len() != 2 || p.At(0) != before[0] || p.At(1) != before[1] {
		t.Error("shrink did not keep the leading slots")
	}
}

func TestPoolZeroSizeDefersPopulation(t *testing.T) {
	p := NewPool(newTestRand())
	p.Resize(0, 100, 4, 36)

	if p.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", p.Len())
	}
	if p.Ready() {
		t.Fatal("pool with zero width must not be ready")
	}
	for i := 0; i < p.Len(); i++ {
		if p.At(i) != nil {
			t.Errorf("slot %d populated on zero width", i)
		}
	}

	p.Resize(50, 60, 4, 36)
	if !p.Ready() {
		t.Fatal("pool should be ready once the size is valid")
	}
}

func TestAdvanceRecycle(t *testing.T) {
	tests := []struct {
		name string
		x, y int
	}{
		{"below bottom", 50, 101},
		{"past right edge", 101, 40},
		{"both", 150, 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPool(newTestRand())
			p.Resize(100, 100, 1, 36)
			d := p.At(0)
			d.X, d.Y = tt.x, tt.y

			p.Advance(d, 20)

			if d.Y != d.Speed+20 {
				t.Errorf("y = %d, want %d", d.Y, d.Speed+20)
			}
			if d.X < 0 || d.X >= 100 {
				t.Errorf("x = %d, want within [0,100)", d.X)
			}
		})
	}
}

func TestAdvanceFall(t *testing.T) {
	p := NewPool(newTestRand())
	p.Resize(100, 100, 1, 36)
	d := p.At(0)
	d.X, d.Y, d.Speed = 100, 100, 7

	// Exactly on the edge does not recycle.
	p.Advance(d, 20)

	if d.X != 100 {
		t.Errorf("x = %d, want unchanged 100", d.X)
	}
	if d.Y != 127 {
		t.Errorf("y = %d, want 127", d.Y)
	}
}

func TestAdvanceScenario(t *testing.T) {
	p := NewPool(newTestRand())
	p.Resize(100, 100, 1, 36)
	d := p.At(0)
	d.X, d.Y, d.Speed = 50, 101, 10

	if !p.Recycle(d) {
		t.Fatal("drop below the bottom edge was not recycled")
	}
	if d.Y != 0 || d.X < 0 || d.X >= 100 {
		t.Fatalf("after recycle (%d,%d), want y=0 and 0<=x<100", d.X, d.Y)
	}
	if p.Recycle(d) {
		t.Fatal("drop at the top recycled twice")
	}

	p.Advance(d, 20)
	if d.Y != 30 {
		t.Errorf("y = %d, want 30", d.Y)
	}
	x := d.X
	p.Advance(d, 20)
	if d.Y != 60 || d.X != x {
		t.Errorf("second step at (%d,%d), want (%d,60)", d.X, d.Y, x)
	}
}

func TestAdvanceRecyclesThenFalls(t *testing.T) {
	p := NewPool(newTestRand())
	p.Resize(100, 100, 1, 36)
	d := p.At(0)
	d.X, d.Y, d.Speed = 50, 101, 10

	p.Advance(d, 20)

	if d.Y != 30 {
		t.Errorf("y = %d, want 30", d.Y)
	}
	if d.X < 0 || d.X >= 100 {
		t.Errorf("x = %d, want within [0,100)", d.X)
	}
	if d.Speed != 10 {
		t.Errorf("speed = %d, recycling must keep it", d.Speed)
	}
}
