package object

import "github.com/tomz197/earthdefense/internal/physics"

// AlienSpawner creates aliens at the top edge with a wave-scaled probability.
type AlienSpawner struct {
	Types   []AlienType
	Spec    AlienSpec
	Base    float64 // Spawn chance at wave 0
	PerWave float64 // Added chance per wave
}

// Chance returns the per-tick spawn probability for the given wave.
func (s AlienSpawner) Chance(wave int) float64 {
	return physics.Clamp(s.Base+float64(wave)*s.PerWave, 0, 1)
}

// Spawn rolls for a new alien. On success the alien is placed just above the
// top edge at a random column where it fits fully on screen, with a type
// drawn uniformly from the table.
func (s AlienSpawner) Spawn(screen Screen, wave int, rng Rand) (Alien, bool) {
	if len(s.Types) == 0 || rng.Float64() >= s.Chance(wave) {
		return Alien{}, false
	}
	typ := s.Types[rng.Intn(len(s.Types))]
	x := rng.Float64() * (screen.Width - s.Spec.Width)
	return NewAlien(x, -s.Spec.Height, typ, s.Spec), true
}
