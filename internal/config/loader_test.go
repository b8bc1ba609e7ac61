package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultIcyConfig() {
		t.Errorf("embedded YAML and DefaultIcyConfig differ:\n%+v\n%+v", cfg, DefaultIcyConfig())
	}
}

func TestParseOverlaysDefaults(t *testing.T) {
	data := []byte(`
physics:
  gravity: 0.75
timers:
  stand_limit: 2500ms
`)

	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if cfg.Physics.Gravity != 0.75 {
		t.Errorf("Gravity = %v, expected 0.75", cfg.Physics.Gravity)
	}
	if cfg.Timers.StandLimit != 2500*time.Millisecond {
		t.Errorf("StandLimit = %v, expected 2.5s", cfg.Timers.StandLimit)
	}
	// Untouched settings keep their defaults
	if cfg.Physics.Friction != 0.8 {
		t.Errorf("Friction = %v, expected default 0.8", cfg.Physics.Friction)
	}
	if cfg.Timers.LeaveLimit != 5*time.Second {
		t.Errorf("LeaveLimit = %v, expected default 5s", cfg.Timers.LeaveLimit)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*IcyConfig)
		field  string
	}{
		{"zero width", func(c *IcyConfig) { c.World.Width = 0 }, "world.width"},
		{"chance above one", func(c *IcyConfig) { c.Hazards.EnemyChance = 1.5 }, "hazards.enemy_chance"},
		{"negative jitter", func(c *IcyConfig) { c.Platforms.SpacingJitter = -1 }, "platforms.spacing_jitter"},
		{"zero invincibility", func(c *IcyConfig) { c.Timers.Invincibility = 0 }, "timers.invincibility"},
		{"platform wider than world", func(c *IcyConfig) { c.Platforms.Width = 500 }, "platforms.width"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultIcyConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("error %q should mention %s", err, tc.field)
			}
		})
	}

	if err := DefaultIcyConfig().Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestLoadIcyCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("player:\n  speed: 7\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadIcy(path)
	if err != nil {
		t.Fatalf("LoadIcy() failed: %v", err)
	}
	if cfg.Player.Speed != 7 {
		t.Errorf("Speed = %v, expected 7", cfg.Player.Speed)
	}
}

func TestLoadIcyCustomPathErrors(t *testing.T) {
	if _, err := LoadIcy(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom file should be an error")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("world:\n  width: -5\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadIcy(path)
	if err == nil {
		t.Fatal("invalid custom file should be an error")
	}
	if cfg != DefaultIcyConfig() {
		t.Error("failed load should return defaults")
	}
}
