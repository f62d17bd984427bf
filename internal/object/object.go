// Package object defines the game entities and their per-tick behaviour.
//
// Entities are plain values owned by the session that ticks them. Each type
// knows how to advance itself by one tick and how to describe its bounding
// box; anything that involves more than one entity lives in package loop.
package object

// Rand is the random source used for spawning and effects.
// *math/rand.Rand satisfies it; tests substitute a scripted source.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Screen holds the playfield dimensions in logical units.
type Screen struct {
	Width  float64
	Height float64
}

// Pattern is the movement pattern of an alien.
type Pattern int

const (
	PatternStraight Pattern = iota // Straight down
	PatternZigzag                  // Down while swaying on a sine wave
)

// String returns the pattern name used in snapshots and logs.
func (p Pattern) String() string {
	switch p {
	case PatternStraight:
		return "straight"
	case PatternZigzag:
		return "zigzag"
	default:
		return "unknown"
	}
}
