package loop

// alienEscaped applies the flat escape penalty and ends the game once the
// score drops below the floor.
func (s *Session) alienEscaped() {
	s.score -= s.rules.EscapePenalty
	if s.score < s.rules.ScoreFloor && s.state == GameStatePlaying {
		s.state = GameStateGameOver
		s.sink.Cue(CueMusicStop)
	}
}

// maybeAdvanceWave gives a chance to move up a wave when the sky is clear.
// The wave never decreases.
func (s *Session) maybeAdvanceWave(remaining int) {
	if !s.rules.WaveProgression || remaining > 0 {
		return
	}
	if s.rng.Float64() < s.rules.WaveChance {
		s.wave++
	}
}
