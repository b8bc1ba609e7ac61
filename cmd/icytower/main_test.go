package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSetupValidatesFlags(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("world:\n  width: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		level   string
		fps     int
		config  string
		wantErr bool
	}{
		{"defaults", "info", 60, "", false},
		{"debug", "debug", 30, "", false},
		{"bad level", "loud", 60, "", true},
		{"zero fps", "info", 0, "", true},
		{"missing config", "info", 60, filepath.Join(t.TempDir(), "none.yaml"), true},
		{"invalid config", "info", 60, bad, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flagLogLevel, flagFPS, flagConfig = tt.level, tt.fps, tt.config
			t.Cleanup(func() { flagLogLevel, flagFPS, flagConfig = "info", 60, "" })

			err := setup(nil, nil)
			if (err != nil) != tt.wantErr {
				t.Errorf("setup() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRuntimeConfigFromFlags(t *testing.T) {
	flagFPS, flagSeed = 30, 99
	t.Cleanup(func() { flagFPS, flagSeed = 60, 0 })

	cfg := runtimeConfig(100, 40)
	if cfg.ScreenW != 100 || cfg.ScreenH != 40 || cfg.TickRate != 30 || cfg.Seed != 99 {
		t.Errorf("runtimeConfig = %+v", cfg)
	}
}
