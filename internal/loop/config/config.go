// Package config centralizes all tunable game parameters.
package config

import "time"

// Playfield - logical coordinates used by the simulation.
// Front ends scale this to whatever surface they draw on.
const (
	ScreenWidth  = 800
	ScreenHeight = 600
)

// Player
const (
	PlayerWidth        = 40
	PlayerHeight       = 40
	PlayerSpeed        = 6  // Units per tick
	PlayerBottomMargin = 60 // Distance from the bottom edge to the ship's top
	ShootCooldown      = 20 // Ticks between shots
)

// Bullets
const (
	BulletWidth  = 4
	BulletHeight = 16
	BulletSpeed  = 8 // Units per tick, upward
)

// Aliens
const (
	AlienWidth      = 40
	AlienHeight     = 40
	ZigzagStep      = 0.1 // Radians per tick
	ZigzagAmplitude = 3.0 // Horizontal units per tick at sin(phase) = 1
)

// Alien type table (advanced rules).
const (
	ScoutSpeed  = 4
	ScoutHealth = 1
	TankSpeed   = 2
	TankHealth  = 3
)

// Spawning
const (
	SpawnBase        = 0.01
	SpawnPerWave     = 0.005
	ClassicSpawnRate = 0.02
)

// Scoring and progression
const (
	PointsPerKill        = 20
	EscapePenalty        = 20
	ScoreFloor           = -100
	WaveChance           = 0.1 // Chance to advance the wave when the sky is cleared
	ClassicPointsPerKill = 10
	ClassicEscapePenalty = 10
	ClassicScoreFloor    = -50
)

// Effects
const (
	ExplosionParticles = 20
	BackgroundScroll   = 1 // Units per tick
)

// Front ends
const (
	RestartDelayTicks = 45 // Game-over ticks before SPACE/Enter can restart
	StarCount         = 60 // Background stars drawn by the terminal and browser renderers
)

// Shutdown
const (
	ShutdownDisplaySeconds = 10.0 // Seconds to show shutdown message before auto-disconnect
)

// Inactivity
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)

// Terminal rendering limits. Larger terminals get a centered, bordered area.
const (
	MaxTermWidth  = 160
	MaxTermHeight = 60
)

// Tick rate shared by every front end.
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)
