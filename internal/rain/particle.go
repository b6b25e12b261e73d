package rain

const (
	minDropAlpha = 0.2
	maxDropAlpha = 1.0
)

// Particle is one falling drop.
type Particle struct {
	X, Y  int
	Speed int
	// Alpha weights the configured opacity when the alpha gradient is on.
	Alpha float64
}

// NewParticle clamps speed to at least 1 and alpha to [0.2, 1].
func NewParticle(x, y, speed int, alpha float64) *Particle {
	if speed <= 0 {
		speed = 1
	}
	if alpha < minDropAlpha {
		alpha = minDropAlpha
	} else if alpha > maxDropAlpha {
		alpha = maxDropAlpha
	}
	return &Particle{X: x, Y: y, Speed: speed, Alpha: alpha}
}
