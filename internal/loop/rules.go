package loop

import (
	"fmt"

	"github.com/tomz197/earthdefense/internal/loop/config"
	"github.com/tomz197/earthdefense/internal/object"
)

// Rules is the complete rule set a session plays by.
type Rules struct {
	Name       string
	Screen     object.Screen
	Player     object.PlayerSpec
	Bullet     object.BulletSpec
	Alien      object.AlienSpec
	AlienTypes []object.AlienType

	SpawnBase    float64 // Spawn chance per tick at wave 0
	SpawnPerWave float64 // Added spawn chance per wave

	PointsPerKill     int
	ScaleRewardByWave bool // Reward is PointsPerKill * wave when set
	EscapePenalty     int  // Flat, never wave-scaled
	ScoreFloor        int  // Falling below this ends the game

	WaveProgression bool
	WaveChance      float64 // Chance to advance when the last alien dies

	ExplosionParticles int
	BackgroundScroll   float64
}

// Rule set names accepted by RulesByName.
const (
	RulesAdvanced = "advanced"
	RulesClassic  = "classic"
)

// DefaultRules returns the advanced rule set: two alien types, wave-scaled
// spawning and rewards, and random wave progression.
func DefaultRules() Rules {
	return Rules{
		Name: RulesAdvanced,
		Screen: object.Screen{
			Width:  config.ScreenWidth,
			Height: config.ScreenHeight,
		},
		Player: object.PlayerSpec{
			Width:        config.PlayerWidth,
			Height:       config.PlayerHeight,
			Speed:        config.PlayerSpeed,
			BottomMargin: config.PlayerBottomMargin,
			Cooldown:     config.ShootCooldown,
		},
		Bullet: object.BulletSpec{
			Width:  config.BulletWidth,
			Height: config.BulletHeight,
			Speed:  config.BulletSpeed,
		},
		Alien: object.AlienSpec{
			Width:           config.AlienWidth,
			Height:          config.AlienHeight,
			ZigzagStep:      config.ZigzagStep,
			ZigzagAmplitude: config.ZigzagAmplitude,
		},
		AlienTypes: []object.AlienType{
			{Name: "scout", Speed: config.ScoutSpeed, Health: config.ScoutHealth, Pattern: object.PatternZigzag, Tier: 0},
			{Name: "tank", Speed: config.TankSpeed, Health: config.TankHealth, Pattern: object.PatternStraight, Tier: 1},
		},
		SpawnBase:          config.SpawnBase,
		SpawnPerWave:       config.SpawnPerWave,
		PointsPerKill:      config.PointsPerKill,
		ScaleRewardByWave:  true,
		EscapePenalty:      config.EscapePenalty,
		ScoreFloor:         config.ScoreFloor,
		WaveProgression:    true,
		WaveChance:         config.WaveChance,
		ExplosionParticles: config.ExplosionParticles,
		BackgroundScroll:   config.BackgroundScroll,
	}
}

// ClassicRules returns the simple rule set: one straight-flying alien type,
// a fixed spawn rate, flat rewards and no wave progression.
func ClassicRules() Rules {
	r := DefaultRules()
	r.Name = RulesClassic
	r.AlienTypes = []object.AlienType{
		{Name: "drone", Speed: config.TankSpeed, Health: 1, Pattern: object.PatternStraight, Tier: 0},
	}
	r.SpawnBase = config.ClassicSpawnRate
	r.SpawnPerWave = 0
	r.PointsPerKill = config.ClassicPointsPerKill
	r.ScaleRewardByWave = false
	r.EscapePenalty = config.ClassicEscapePenalty
	r.ScoreFloor = config.ClassicScoreFloor
	r.WaveProgression = false
	return r
}

// RulesByName looks up a rule set. An empty name selects the advanced rules.
func RulesByName(name string) (Rules, error) {
	switch name {
	case "", RulesAdvanced:
		return DefaultRules(), nil
	case RulesClassic:
		return ClassicRules(), nil
	default:
		return Rules{}, fmt.Errorf("unknown rule set %q (want %q or %q)", name, RulesAdvanced, RulesClassic)
	}
}

// KillReward returns the points for destroying an alien during the given wave.
func (r Rules) KillReward(wave int) int {
	if r.ScaleRewardByWave {
		return r.PointsPerKill * wave
	}
	return r.PointsPerKill
}

func (r Rules) spawner() object.AlienSpawner {
	return object.AlienSpawner{
		Types:   r.AlienTypes,
		Spec:    r.Alien,
		Base:    r.SpawnBase,
		PerWave: r.SpawnPerWave,
	}
}
