package object

import colorful "github.com/lucasb-eyer/go-colorful"

// Particle is a short-lived explosion fragment.
type Particle struct {
	X, Y   float64 // Position
	VX, VY float64 // Velocity per tick
	Radius float64
	Life   int // Ticks remaining
	Color  colorful.Color
}

// Explosion burst tuning.
const (
	minParticleRadius = 1.0
	particleRadiusVar = 3.0
	particleSpeed     = 4.0 // Full width of the symmetric velocity range per axis
	minParticleLife   = 30
	particleLifeVar   = 20
	minParticleHue    = 20.0 // Degrees; orange-red band
	particleHueVar    = 60.0
)

// AppendExplosion appends a burst of count particles centered on (x, y) to dst.
func AppendExplosion(dst []Particle, x, y float64, count int, rng Rand) []Particle {
	for i := 0; i < count; i++ {
		radius := minParticleRadius + rng.Float64()*particleRadiusVar
		vx := (rng.Float64() - 0.5) * particleSpeed
		vy := (rng.Float64() - 0.5) * particleSpeed
		life := minParticleLife + int(rng.Float64()*particleLifeVar)
		hue := minParticleHue + rng.Float64()*particleHueVar

		dst = append(dst, Particle{
			X:      x,
			Y:      y,
			VX:     vx,
			VY:     vy,
			Radius: radius,
			Life:   life,
			Color:  colorful.Hsl(hue, 1, 0.5),
		})
	}
	return dst
}

// Update moves the particle and burns one tick of its life.
// Returns true when the particle should be removed.
func (p *Particle) Update() bool {
	p.X += p.VX
	p.Y += p.VY
	p.Life--
	return p.Life <= 0
}
