// Package config provides YAML-based configuration loading for the climber.
package config

import "time"

// IcyConfig contains all tunables for the climbing game.
// Distances are in world units (window pixels), velocities in
// units per tick, and timers are wall-clock durations.
type IcyConfig struct {
	World     WorldConfig     `yaml:"world"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Player    PlayerConfig    `yaml:"player"`
	Platforms PlatformsConfig `yaml:"platforms"`
	Hazards   HazardsConfig   `yaml:"hazards"`
	Timers    TimersConfig    `yaml:"timers"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Audio     AudioConfig     `yaml:"audio"`
}

// WorldConfig defines the playfield.
type WorldConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	ScrollThreshold float64 `yaml:"scroll_threshold"` // Fraction of height; scrolling starts above it
}

// PhysicsConfig defines integration constants.
type PhysicsConfig struct {
	Gravity   float64 `yaml:"gravity"`
	Friction  float64 `yaml:"friction"`
	BaseJump  float64 `yaml:"base_jump"`
	FallSpeed float64 `yaml:"fall_speed"` // Collapsing platform speed
}

// PlayerConfig defines the climber.
type PlayerConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Speed       float64 `yaml:"speed"`
	StartOffset float64 `yaml:"start_offset"` // Distance of the spawn point above the bottom edge
}

// PlatformsConfig defines world generation.
type PlatformsConfig struct {
	Height         float64 `yaml:"height"`
	Width          float64 `yaml:"width"`
	Spacing        float64 `yaml:"spacing"`
	SpacingJitter  int     `yaml:"spacing_jitter"`
	FullWidthEvery int     `yaml:"full_width_every"`
	LabelEvery     int     `yaml:"label_every"`
	InitialCount   int     `yaml:"initial_count"`
	FirstOffset    float64 `yaml:"first_offset"` // Distance of the ground platform above the bottom edge
}

// HazardsConfig defines spawn probabilities and entity behaviour.
type HazardsConfig struct {
	EnemyChance      float64 `yaml:"enemy_chance"`
	MovingChance     float64 `yaml:"moving_chance"`
	StarChance       float64 `yaml:"star_chance"`
	TeleportChance   float64 `yaml:"teleport_chance"`
	PatrolSpeed      float64 `yaml:"patrol_speed"`
	OscillationRange float64 `yaml:"oscillation_range"`
	OscillationSpeed float64 `yaml:"oscillation_speed"`
	StarBand         float64 `yaml:"star_band"`
	TeleportOffset   int     `yaml:"teleport_offset"`
}

// TimersConfig defines the wall-clock windows.
type TimersConfig struct {
	StandLimit    time.Duration `yaml:"stand_limit"`
	LeaveLimit    time.Duration `yaml:"leave_limit"`
	Invincibility time.Duration `yaml:"invincibility"`
}

// ScoringConfig defines point awards and the leaderboard size.
type ScoringConfig struct {
	PointsPerPlatform int `yaml:"points_per_platform"`
	SkipBonus         int `yaml:"skip_bonus"`
	SkipThreshold     int `yaml:"skip_threshold"`
	LeaderboardSize   int `yaml:"leaderboard_size"`
}

// AudioConfig defines the audio sink.
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	MasterVolume float64 `yaml:"master_volume"` // 0.0 to 1.0
	SampleRate   int     `yaml:"sample_rate"`
}
