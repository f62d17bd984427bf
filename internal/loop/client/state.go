package client

import (
	"math/rand"
	"time"

	"github.com/tomz197/earthdefense/internal/input"
	"github.com/tomz197/earthdefense/internal/loop"
	"github.com/tomz197/earthdefense/internal/loop/config"
)

// ClientState holds per-connection presentation state. Game state lives in
// the loop.Session; this is everything around it.
type ClientState struct {
	Input         input.Input
	Running       bool           // Client loop running
	delta         time.Duration  // Frame delta time
	frames        int            // Frames drawn, drives blinking prompts
	prevGameState loop.GameState // Phase drawn last frame
	gameOverTicks int            // Ticks spent on the game-over screen
	reported      bool           // Final score sent to the registry

	shutdown      bool    // Host is shutting down
	wasShutdown   bool    // shutdown as of the last frame
	shutdownTimer float64 // Countdown before auto-disconnect on shutdown

	isInactive        bool // Whether the client is in inactive warning state
	wasInactive       bool
	inactiveRemaining int // Seconds until an idle disconnect

	bell bool // Ring the terminal bell with the next frame
}

// NewClientState creates a new initialized client state.
func NewClientState() *ClientState {
	return &ClientState{
		Running:       true,
		prevGameState: loop.GameStateStart,
	}
}

// star is a background star in logical coordinates.
type star struct {
	X, Y  float64
	Shade float64 // Brightness in [0.25, 0.75]
}

// newStarField scatters stars over the playfield. The layout is fixed so
// every connection sees the same sky.
func newStarField(width, height float64) []star {
	rng := rand.New(rand.NewSource(1))
	stars := make([]star, config.StarCount)
	for i := range stars {
		stars[i] = star{
			X:     rng.Float64() * width,
			Y:     rng.Float64() * height,
			Shade: 0.25 + rng.Float64()*0.5,
		}
	}
	return stars
}
