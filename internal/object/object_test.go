package object

import (
	"math"
	"testing"
)

type constRand float64

func (r constRand) Float64() float64 { return float64(r) }
func (r constRand) Intn(n int) int   { return int(float64(r) * float64(n)) }

var testScreen = Screen{Width: 800, Height: 600}

var testSpec = AlienSpec{Width: 40, Height: 40, ZigzagStep: 0.1, ZigzagAmplitude: 3}

func TestNewPlayerCentered(t *testing.T) {
	p := NewPlayer(testScreen, PlayerSpec{Width: 40, Height: 40, Speed: 6, BottomMargin: 60, Cooldown: 20})
	if p.X != 380 || p.Y != 540 {
		t.Fatalf("player at (%v, %v), want (380, 540)", p.X, p.Y)
	}
	if p.Cooldown != 0 || p.CooldownPeriod != 20 {
		t.Fatalf("cooldown=%d period=%d, want 0 and 20", p.Cooldown, p.CooldownPeriod)
	}
}

func TestPlayerMoveClampsAtEdges(t *testing.T) {
	p := Player{X: 757, Width: 40, Speed: 6}
	p.Move(false, true, testScreen)
	if p.X != 760 {
		t.Fatalf("x = %v, want 760", p.X)
	}
	p.X = 2
	p.Move(true, false, testScreen)
	if p.X != 0 {
		t.Fatalf("x = %v, want 0", p.X)
	}
}

func TestBulletSpawnsAtNose(t *testing.T) {
	p := Player{X: 380, Y: 540, Width: 40, Height: 40, CooldownPeriod: 20}
	b, ok := p.TryShoot(true, BulletSpec{Width: 4, Height: 16, Speed: 8})
	if !ok {
		t.Fatal("TryShoot with no cooldown did not fire")
	}
	if b.X != 398 || b.Y != 540 {
		t.Fatalf("bullet at (%v, %v), want (398, 540)", b.X, b.Y)
	}
	if _, ok := p.TryShoot(true, BulletSpec{}); ok {
		t.Fatal("TryShoot fired during cooldown")
	}
	if _, ok := p.TryShoot(false, BulletSpec{}); ok {
		t.Fatal("TryShoot fired without the fire flag")
	}
}

func TestBulletUpdateRemovesAboveTop(t *testing.T) {
	b := Bullet{Y: -8, Height: 16, Speed: 8}
	if b.Update() {
		t.Fatal("bullet at y=-16 removed, want kept until y < -16")
	}
	if !b.Update() {
		t.Fatal("bullet at y=-24 kept, want removed")
	}
}

func TestZigzagAlienSways(t *testing.T) {
	a := NewAlien(100, 0, AlienType{Speed: 4, Health: 1, Pattern: PatternZigzag}, testSpec)
	a.Advance()
	wantX := 100 + math.Sin(0.1)*3
	if math.Abs(a.X-wantX) > 1e-9 || a.Y != 4 {
		t.Fatalf("alien at (%v, %v), want (%v, 4)", a.X, a.Y, wantX)
	}
	if math.Abs(a.Phase-0.1) > 1e-9 {
		t.Fatalf("phase = %v, want 0.1", a.Phase)
	}
}

func TestStraightAlienFalls(t *testing.T) {
	a := NewAlien(100, 0, AlienType{Speed: 2, Health: 3, Pattern: PatternStraight}, testSpec)
	a.Advance()
	if a.X != 100 || a.Y != 2 || a.Phase != 0 {
		t.Fatalf("alien = %+v, want straight fall to y=2", a)
	}
}

func TestAlienHit(t *testing.T) {
	a := NewAlien(0, 0, AlienType{Health: 2}, testSpec)
	if a.Hit() {
		t.Fatal("alien with 2 health died on the first hit")
	}
	if !a.Hit() {
		t.Fatal("alien survived its last hit point")
	}
}

func TestSpawnerChance(t *testing.T) {
	s := AlienSpawner{Base: 0.01, PerWave: 0.005}
	if got := s.Chance(1); math.Abs(got-0.015) > 1e-12 {
		t.Fatalf("Chance(1) = %v, want 0.015", got)
	}
	if got := s.Chance(1000); got != 1 {
		t.Fatalf("Chance(1000) = %v, want 1", got)
	}
}

func TestSpawnerFitsAlienOnScreen(t *testing.T) {
	s := AlienSpawner{
		Types: []AlienType{{Name: "a", Tier: 0}, {Name: "b", Tier: 1}},
		Spec:  testSpec,
		Base:  1,
	}
	a, ok := s.Spawn(testScreen, 1, constRand(0.999))
	if !ok {
		t.Fatal("spawn with chance 1 did not spawn")
	}
	if a.X < 0 || a.X+a.Width > testScreen.Width {
		t.Fatalf("alien x = %v does not fit on screen", a.X)
	}
	if a.Y != -testSpec.Height || a.Tier != 1 {
		t.Fatalf("alien = %+v, want tier 1 above the top edge", a)
	}

	s.Base = 0.01
	if _, ok := s.Spawn(testScreen, 1, constRand(0.5)); ok {
		t.Fatal("spawned above the spawn chance")
	}
}

func TestAppendExplosion(t *testing.T) {
	ps := AppendExplosion(nil, 120, 120, 20, constRand(0))
	if len(ps) != 20 {
		t.Fatalf("particles = %d, want 20", len(ps))
	}
	p := ps[0]
	if p.X != 120 || p.Y != 120 {
		t.Fatalf("particle at (%v, %v), want (120, 120)", p.X, p.Y)
	}
	if p.Radius != 1 || p.VX != -2 || p.VY != -2 || p.Life != 30 {
		t.Fatalf("particle = %+v, want radius 1, velocity -2, life 30", p)
	}
	h, s, l := p.Color.Hsl()
	if math.Abs(h-20) > 0.5 || math.Abs(s-1) > 0.01 || math.Abs(l-0.5) > 0.01 {
		t.Fatalf("colour hsl = (%v, %v, %v), want (20, 1, 0.5)", h, s, l)
	}

	for _, p := range AppendExplosion(nil, 0, 0, 50, constRand(0.999)) {
		if p.Radius < 1 || p.Radius >= 4 || p.Life < 30 || p.Life >= 50 {
			t.Fatalf("particle out of range: %+v", p)
		}
		if math.Abs(p.VX) > 2 || math.Abs(p.VY) > 2 {
			t.Fatalf("particle velocity out of range: %+v", p)
		}
	}
}

func TestParticleExpires(t *testing.T) {
	p := Particle{VX: 1, VY: -1, Life: 2}
	if p.Update() {
		t.Fatal("particle with life left removed")
	}
	if !p.Update() {
		t.Fatal("expired particle kept")
	}
	if p.X != 2 || p.Y != -2 {
		t.Fatalf("particle at (%v, %v), want (2, -2)", p.X, p.Y)
	}
}
