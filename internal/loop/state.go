package loop

// GameState represents the current game phase of a session.
type GameState int

const (
	GameStateStart    GameState = iota // Title screen, waiting for start
	GameStatePlaying                   // Active gameplay
	GameStateGameOver                  // Score fell through the floor, waiting for restart
)

// String returns the phase name used in snapshots and logs.
func (g GameState) String() string {
	switch g {
	case GameStateStart:
		return "start"
	case GameStatePlaying:
		return "playing"
	case GameStateGameOver:
		return "gameOver"
	default:
		return "unknown"
	}
}

// Input is the host's input for one tick. MoveLeft, MoveRight and Fire are
// held flags; Start and Restart are one-shot signals that only matter in the
// phase that accepts them.
type Input struct {
	MoveLeft  bool
	MoveRight bool
	Fire      bool
	Start     bool
	Restart   bool
}
