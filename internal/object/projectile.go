package object

import "github.com/tomz197/earthdefense/internal/physics"

// BulletSpec describes the bullets the ship fires.
type BulletSpec struct {
	Width  float64
	Height float64
	Speed  float64 // Units per tick, upward
}

// Bullet is a shot travelling straight up.
type Bullet struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
	Speed         float64
	destroyed     bool
}

// NewBullet creates a bullet centered on the ship's nose.
func NewBullet(p Player, spec BulletSpec) Bullet {
	return Bullet{
		X:      p.X + p.Width/2 - spec.Width/2,
		Y:      p.Y,
		Width:  spec.Width,
		Height: spec.Height,
		Speed:  spec.Speed,
	}
}

// Update moves the bullet up. Returns true once its tail has left the top edge.
func (b *Bullet) Update() bool {
	b.Y -= b.Speed
	return b.Y < -b.Height
}

// MarkDestroyed marks the bullet as spent; it is dropped at the end of the tick.
func (b *Bullet) MarkDestroyed() {
	b.destroyed = true
}

// IsDestroyed returns true if the bullet has already hit something.
func (b *Bullet) IsDestroyed() bool {
	return b.destroyed
}

// Bounds returns the bullet's bounding box.
func (b Bullet) Bounds() physics.Rect {
	return physics.Rect{X: b.X, Y: b.Y, W: b.Width, H: b.Height}
}
