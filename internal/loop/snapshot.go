package loop

import "github.com/tomz197/earthdefense/internal/object"

// Snapshot is a read-only copy of a session for renderers.
// It shares no memory with the session.
type Snapshot struct {
	State      GameState
	Score      int
	Wave       int
	Background float64
	Ticks      uint64
	Screen     object.Screen
	Player     object.Player
	Bullets    []object.Bullet
	Aliens     []object.Alien
	Particles  []object.Particle
}

// Snapshot copies the current session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		State:      s.state,
		Score:      s.score,
		Wave:       s.wave,
		Background: s.background,
		Ticks:      s.ticks,
		Screen:     s.rules.Screen,
		Player:     s.player,
		Bullets:    append([]object.Bullet{}, s.bullets...),
		Aliens:     append([]object.Alien{}, s.aliens...),
		Particles:  append([]object.Particle{}, s.particles...),
	}
}
