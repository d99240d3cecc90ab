package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load(nil) returned %v", err)
	}
	if cfg.PollInterval != 4*time.Millisecond {
		t.Fatalf("PollInterval = %v, want 4ms", cfg.PollInterval)
	}
	if cfg.Deadzone != 0.15 {
		t.Fatalf("Deadzone = %v, want 0.15", cfg.Deadzone)
	}
	if cfg.PointerSpeed != 50.0 {
		t.Fatalf("PointerSpeed = %v, want 50", cfg.PointerSpeed)
	}
	if cfg.Backend != "auto" {
		t.Fatalf("Backend = %q, want auto", cfg.Backend)
	}
	if !cfg.Tray {
		t.Fatal("Tray = false, want true")
	}
	if cfg.Verbose {
		t.Fatal("Verbose = true, want false")
	}
}

func TestLoadFlags(t *testing.T) {
	cfg, err := Load([]string{
		"--poll-interval=8ms",
		"--deadzone=0.2",
		"--pointer-speed=25",
		"--backend=uinput",
		"--tray=false",
		"--verbose",
	})
	if err != nil {
		t.Fatalf("Load returned %v", err)
	}
	if cfg.PollInterval != 8*time.Millisecond {
		t.Fatalf("PollInterval = %v, want 8ms", cfg.PollInterval)
	}
	if cfg.Deadzone != 0.2 {
		t.Fatalf("Deadzone = %v, want 0.2", cfg.Deadzone)
	}
	if cfg.PointerSpeed != 25.0 {
		t.Fatalf("PointerSpeed = %v, want 25", cfg.PointerSpeed)
	}
	if cfg.Backend != "uinput" {
		t.Fatalf("Backend = %q, want uinput", cfg.Backend)
	}
	if cfg.Tray {
		t.Fatal("Tray = true, want false")
	}
	if !cfg.Verbose {
		t.Fatal("Verbose = false, want true")
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("CONTROLLER2KEYS_DEADZONE", "0.3")
	t.Setenv("CONTROLLER2KEYS_BACKEND", "robotgo")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load returned %v", err)
	}
	if cfg.Deadzone != 0.3 {
		t.Fatalf("Deadzone = %v, want 0.3 from env", cfg.Deadzone)
	}
	if cfg.Backend != "robotgo" {
		t.Fatalf("Backend = %q, want robotgo from env", cfg.Backend)
	}
}

func TestFlagBeatsEnv(t *testing.T) {
	t.Setenv("CONTROLLER2KEYS_DEADZONE", "0.3")

	cfg, err := Load([]string{"--deadzone=0.05"})
	if err != nil {
		t.Fatalf("Load returned %v", err)
	}
	if cfg.Deadzone != 0.05 {
		t.Fatalf("Deadzone = %v, want 0.05 from flag", cfg.Deadzone)
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"zero poll interval", []string{"--poll-interval=0s"}},
		{"negative poll interval", []string{"--poll-interval=-4ms"}},
		{"negative deadzone", []string{"--deadzone=-0.1"}},
		{"deadzone of one", []string{"--deadzone=1"}},
		{"zero pointer speed", []string{"--pointer-speed=0"}},
		{"unknown backend", []string{"--backend=serial"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(tt.args); err == nil {
				t.Fatalf("Load(%v) accepted an invalid config", tt.args)
			}
		})
	}
}

func TestLoadRejectsUnknownFlag(t *testing.T) {
	if _, err := Load([]string{"--warp-speed=9"}); err == nil {
		t.Fatal("unknown flag accepted")
	}
}
