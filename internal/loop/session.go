// Package loop implements the game session: the phase state machine and the
// per-tick update pipeline (spawn, motion, collision, progression, effects).
//
// A Session is owned by a single goroutine. Hosts call Tick once per frame
// with the latest input and read the result through Snapshot.
package loop

import (
	"github.com/tomz197/earthdefense/internal/object"
)

// Rand is the injectable random source used by a session.
type Rand = object.Rand

// Session holds all state for one player's game.
type Session struct {
	rules Rules
	rng   Rand
	sink  CueSink

	state      GameState
	player     object.Player
	bullets    []object.Bullet
	aliens     []object.Alien
	particles  []object.Particle
	score      int
	wave       int
	background float64 // Scroll offset, wraps at the screen height
	ticks      uint64  // Playing ticks since the last start
}

// NewSession creates a session waiting on the title screen.
// A nil sink discards cues.
func NewSession(rules Rules, rng Rand, sink CueSink) *Session {
	if sink == nil {
		sink = nopSink{}
	}
	s := &Session{
		rules: rules,
		rng:   rng,
		sink:  sink,
		state: GameStateStart,
	}
	s.Reset()
	return s
}

// Reset restores score, wave, ship and empties every entity collection.
// The phase is left unchanged.
func (s *Session) Reset() {
	s.player = object.NewPlayer(s.rules.Screen, s.rules.Player)
	s.bullets = s.bullets[:0]
	s.aliens = s.aliens[:0]
	s.particles = s.particles[:0]
	s.score = 0
	s.wave = 1
	s.background = 0
	s.ticks = 0
}

// Tick advances the session by one frame.
func (s *Session) Tick(in Input) {
	switch s.state {
	case GameStateStart:
		if in.Start {
			s.startGame()
		}
	case GameStatePlaying:
		s.updatePlayingState(in)
	case GameStateGameOver:
		if in.Restart {
			s.startGame()
		}
	}
}

// startGame performs the full reset shared by start and restart.
func (s *Session) startGame() {
	s.Reset()
	s.state = GameStatePlaying
	s.sink.Cue(CueMusicStart)
}

// State returns the current phase.
func (s *Session) State() GameState {
	return s.state
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// Wave returns the current wave.
func (s *Session) Wave() int {
	return s.wave
}

// Rules returns the rule set the session plays by.
func (s *Session) Rules() Rules {
	return s.rules
}
