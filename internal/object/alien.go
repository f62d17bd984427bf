package object

import (
	"math"

	"github.com/tomz197/earthdefense/internal/physics"
)

// AlienType is one row of the alien type table.
type AlienType struct {
	Name    string
	Speed   float64 // Units per tick, downward
	Health  int
	Pattern Pattern
	Tier    int // Visual variant used by renderers
}

// AlienSpec holds the size and sway parameters shared by all aliens.
type AlienSpec struct {
	Width           float64
	Height          float64
	ZigzagStep      float64 // Phase increment per tick (radians)
	ZigzagAmplitude float64 // Horizontal displacement per tick at sin(phase) = 1
}

// Alien is a descending invader.
type Alien struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
	Speed         float64
	Health        int
	Pattern       Pattern
	Tier          int
	Phase         float64 // Zigzag phase accumulator

	step      float64
	amplitude float64
}

// NewAlien creates an alien of the given type with its top-left corner at (x, y).
func NewAlien(x, y float64, typ AlienType, spec AlienSpec) Alien {
	return Alien{
		X:         x,
		Y:         y,
		Width:     spec.Width,
		Height:    spec.Height,
		Speed:     typ.Speed,
		Health:    typ.Health,
		Pattern:   typ.Pattern,
		Tier:      typ.Tier,
		step:      spec.ZigzagStep,
		amplitude: spec.ZigzagAmplitude,
	}
}

// Advance moves the alien one tick along its pattern.
func (a *Alien) Advance() {
	if a.Pattern == PatternZigzag {
		a.Phase += a.step
		a.X += math.Sin(a.Phase) * a.amplitude
	}
	a.Y += a.Speed
}

// Escaped reports whether the alien has crossed the bottom of the screen.
func (a Alien) Escaped(screen Screen) bool {
	return a.Y > screen.Height
}

// Hit takes one point of health. Returns true if the alien is destroyed.
func (a *Alien) Hit() bool {
	a.Health--
	return a.Health <= 0
}

// Bounds returns the alien's bounding box.
func (a Alien) Bounds() physics.Rect {
	return physics.Rect{X: a.X, Y: a.Y, W: a.Width, H: a.Height}
}
