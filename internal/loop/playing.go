package loop

import "math"

// updatePlayingState runs one tick of active gameplay:
// player → spawner → motion → collisions → particles.
func (s *Session) updatePlayingState(in Input) {
	s.updatePlayer(in)
	s.spawnAliens()
	s.player.CoolDown()
	s.scrollBackground()

	s.updateBullets()
	s.updateAliens()
	s.resolveCollisions()
	s.updateParticles()

	s.ticks++
}

// updatePlayer moves the ship and fires if the cooldown allows it.
func (s *Session) updatePlayer(in Input) {
	s.player.Move(in.MoveLeft, in.MoveRight, s.rules.Screen)

	if b, ok := s.player.TryShoot(in.Fire, s.rules.Bullet); ok {
		s.bullets = append(s.bullets, b)
		s.sink.Cue(CueShoot)
	}
}

// spawnAliens rolls the spawner once.
func (s *Session) spawnAliens() {
	if a, ok := s.rules.spawner().Spawn(s.rules.Screen, s.wave, s.rng); ok {
		s.aliens = append(s.aliens, a)
	}
}

func (s *Session) scrollBackground() {
	s.background += s.rules.BackgroundScroll
	if s.background >= s.rules.Screen.Height {
		s.background = math.Mod(s.background, s.rules.Screen.Height)
	}
}

// updateBullets moves bullets and drops the ones that left the screen.
func (s *Session) updateBullets() {
	kept := s.bullets[:0] // reuse backing array
	for i := range s.bullets {
		b := &s.bullets[i]
		if !b.Update() {
			kept = append(kept, *b)
		}
	}
	s.bullets = kept
}

// updateAliens moves aliens and penalizes the ones that got past the player.
func (s *Session) updateAliens() {
	kept := s.aliens[:0]
	for i := range s.aliens {
		a := &s.aliens[i]
		a.Advance()
		if a.Escaped(s.rules.Screen) {
			s.alienEscaped()
			continue
		}
		kept = append(kept, *a)
	}
	s.aliens = kept
}

// updateParticles moves particles and drops the expired ones.
func (s *Session) updateParticles() {
	kept := s.particles[:0]
	for i := range s.particles {
		p := &s.particles[i]
		if !p.Update() {
			kept = append(kept, *p)
		}
	}
	s.particles = kept
}
