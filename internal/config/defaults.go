package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/icy.yaml
var defaultIcyYAML []byte

// DefaultIcyConfig returns the built-in configuration.
// It mirrors defaults/icy.yaml and is used when the embedded file cannot be parsed.
func DefaultIcyConfig() IcyConfig {
	return IcyConfig{
		World: WorldConfig{
			Width:           400,
			Height:          600,
			ScrollThreshold: 0.25,
		},
		Physics: PhysicsConfig{
			Gravity:   0.5,
			Friction:  0.8,
			BaseJump:  -10,
			FallSpeed: 5,
		},
		Player: PlayerConfig{
			Width:       20,
			Height:      20,
			Speed:       5,
			StartOffset: 150,
		},
		Platforms: PlatformsConfig{
			Height:         10,
			Width:          100,
			Spacing:        50,
			SpacingJitter:  50,
			FullWidthEvery: 100,
			LabelEvery:     10,
			InitialCount:   10,
			FirstOffset:    50,
		},
		Hazards: HazardsConfig{
			EnemyChance:      0.05,
			MovingChance:     0.06,
			StarChance:       0.06,
			TeleportChance:   0.03,
			PatrolSpeed:      1.5,
			OscillationRange: 30,
			OscillationSpeed: 1,
			StarBand:         30,
			TeleportOffset:   5,
		},
		Timers: TimersConfig{
			StandLimit:    4 * time.Second,
			LeaveLimit:    5 * time.Second,
			Invincibility: 7 * time.Second,
		},
		Scoring: ScoringConfig{
			PointsPerPlatform: 10,
			SkipBonus:         50,
			SkipThreshold:     2,
			LeaderboardSize:   10,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.6,
			SampleRate:   44100,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultIcyYAML
}
