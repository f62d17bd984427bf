package loop

import "github.com/tomz197/earthdefense/internal/object"

// resolveCollisions tests every surviving alien against every live bullet.
// A bullet is spent on its first hit; an alien stops taking hits once dead.
func (s *Session) resolveCollisions() {
	if len(s.bullets) == 0 || len(s.aliens) == 0 {
		return
	}

	kept := s.aliens[:0]
	for i := range s.aliens {
		a := &s.aliens[i]
		if s.shootDown(a) {
			// Aliens still standing: those kept so far plus those not yet tested.
			remaining := len(kept) + len(s.aliens) - i - 1
			s.alienDestroyed(*a, remaining)
			continue
		}
		kept = append(kept, *a)
	}
	s.aliens = kept

	live := s.bullets[:0]
	for i := range s.bullets {
		if !s.bullets[i].IsDestroyed() {
			live = append(live, s.bullets[i])
		}
	}
	s.bullets = live
}

// shootDown applies every overlapping bullet to a until it dies.
// Returns true if the alien was destroyed.
func (s *Session) shootDown(a *object.Alien) bool {
	box := a.Bounds()
	for j := len(s.bullets) - 1; j >= 0; j-- {
		b := &s.bullets[j]
		if b.IsDestroyed() || !b.Bounds().Overlaps(box) {
			continue
		}
		b.MarkDestroyed()
		if a.Hit() {
			return true
		}
	}
	return false
}

// alienDestroyed scores the kill and spawns the explosion.
func (s *Session) alienDestroyed(a object.Alien, remaining int) {
	s.score += s.rules.KillReward(s.wave)

	cx, cy := a.Bounds().Center()
	s.particles = object.AppendExplosion(s.particles, cx, cy, s.rules.ExplosionParticles, s.rng)
	s.sink.Cue(CueExplosion)

	s.maybeAdvanceWave(remaining)
}
