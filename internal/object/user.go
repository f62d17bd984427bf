package object

import "github.com/tomz197/earthdefense/internal/physics"

// PlayerSpec describes the ship a session starts with.
type PlayerSpec struct {
	Width        float64
	Height       float64
	Speed        float64 // Units per tick
	BottomMargin float64 // Distance from the bottom edge to the top of the ship
	Cooldown     int     // Ticks between shots
}

// Player is the ship at the bottom of the screen.
type Player struct {
	X, Y           float64 // Top-left corner
	Width, Height  float64
	Speed          float64
	Cooldown       int // Ticks until the next shot is allowed
	CooldownPeriod int
}

// NewPlayer creates a ship centered horizontally near the bottom of the screen.
func NewPlayer(screen Screen, spec PlayerSpec) Player {
	return Player{
		X:              screen.Width/2 - spec.Width/2,
		Y:              screen.Height - spec.BottomMargin,
		Width:          spec.Width,
		Height:         spec.Height,
		Speed:          spec.Speed,
		CooldownPeriod: spec.Cooldown,
	}
}

// Move steps the ship horizontally. Left and right held together cancel out.
// The ship never leaves [0, screen.Width-Width].
func (p *Player) Move(left, right bool, screen Screen) {
	dir := 0.0
	if right {
		dir++
	}
	if left {
		dir--
	}
	p.X = physics.Clamp(p.X+dir*p.Speed, 0, screen.Width-p.Width)
}

// TryShoot fires a bullet from the nose of the ship if fire is held and the
// cooldown has run out. The cooldown restarts on every shot.
func (p *Player) TryShoot(fire bool, spec BulletSpec) (Bullet, bool) {
	if !fire || p.Cooldown > 0 {
		return Bullet{}, false
	}
	p.Cooldown = p.CooldownPeriod
	return NewBullet(*p, spec), true
}

// CoolDown counts the shot cooldown down by one tick.
func (p *Player) CoolDown() {
	if p.Cooldown > 0 {
		p.Cooldown--
	}
}

// Bounds returns the ship's bounding box.
func (p Player) Bounds() physics.Rect {
	return physics.Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}
