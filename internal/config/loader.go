package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the user and local config directories.
const ConfigFile = "icy.yaml"

// LoadIcy loads the game configuration.
// Search order: customPath -> ~/.icytower/configs/icy.yaml -> ./configs/icy.yaml -> embedded default.
// Files are overlaid on the defaults, so a partial file only overrides what it names.
func LoadIcy(customPath string) (IcyConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultIcyConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return DefaultIcyConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultIcyYAML)
	if err != nil {
		return DefaultIcyConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the built-in defaults and validates the result.
func Parse(data []byte) (IcyConfig, error) {
	cfg := DefaultIcyConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports every out-of-range setting.
func (c IcyConfig) Validate() error {
	var errs []error

	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	probability := func(name string, v float64) {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("%s must be within [0, 1], got %v", name, v))
		}
	}

	positive("world.width", c.World.Width)
	positive("world.height", c.World.Height)
	probability("world.scroll_threshold", c.World.ScrollThreshold)
	probability("physics.friction", c.Physics.Friction)
	positive("physics.fall_speed", c.Physics.FallSpeed)
	positive("player.width", c.Player.Width)
	positive("player.height", c.Player.Height)
	positive("player.speed", c.Player.Speed)
	positive("platforms.height", c.Platforms.Height)
	positive("platforms.width", c.Platforms.Width)
	positive("platforms.spacing", c.Platforms.Spacing)
	positive("platforms.full_width_every", float64(c.Platforms.FullWidthEvery))
	positive("platforms.initial_count", float64(c.Platforms.InitialCount))
	probability("hazards.enemy_chance", c.Hazards.EnemyChance)
	probability("hazards.moving_chance", c.Hazards.MovingChance)
	probability("hazards.star_chance", c.Hazards.StarChance)
	probability("hazards.teleport_chance", c.Hazards.TeleportChance)
	positive("hazards.teleport_offset", float64(c.Hazards.TeleportOffset))
	positive("timers.stand_limit", c.Timers.StandLimit.Seconds())
	positive("timers.leave_limit", c.Timers.LeaveLimit.Seconds())
	positive("timers.invincibility", c.Timers.Invincibility.Seconds())
	positive("scoring.leaderboard_size", float64(c.Scoring.LeaderboardSize))
	probability("audio.master_volume", c.Audio.MasterVolume)

	if c.Platforms.SpacingJitter < 0 {
		errs = append(errs, fmt.Errorf("platforms.spacing_jitter must not be negative, got %d", c.Platforms.SpacingJitter))
	}
	if c.Platforms.Width > c.World.Width {
		errs = append(errs, fmt.Errorf("platforms.width %v exceeds world.width %v", c.Platforms.Width, c.World.Width))
	}
	if c.Player.Width > c.World.Width {
		errs = append(errs, fmt.Errorf("player.width %v exceeds world.width %v", c.Player.Width, c.World.Width))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid settings: %w", errors.Join(errs...))
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".icytower", "configs", filename)
}
