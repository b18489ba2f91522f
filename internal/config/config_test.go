package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := DefaultGameConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config failed validation: %v", err)
	}
}

func TestValidateCatchesBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GameConfig)
	}{
		{"zero hit interval", func(c *GameConfig) { c.Timing.HitInterval = 0 }},
		{"negative tick delta", func(c *GameConfig) { c.Timing.MaxTickDelta = -1 }},
		{"hazard probability above 1", func(c *GameConfig) { c.Odds.HazardProbability = 1.5 }},
		{"negative lifeboat probability", func(c *GameConfig) { c.Odds.LifeboatProbability = -0.1 }},
		{"first draw below 1", func(c *GameConfig) { c.Odds.Multiplier.FirstMin = 0.5 }},
		{"inverted first draw bounds", func(c *GameConfig) { c.Odds.Multiplier.FirstMax = 1.0 }},
		{"zero min bet", func(c *GameConfig) { c.Betting.MinBet = 0 }},
		{"zero betting window", func(c *GameConfig) { c.Betting.WindowSeconds = 0 }},
		{"zero max idle", func(c *GameConfig) { c.Field.MaxIdle = 0 }},
		{"pace scale above 1", func(c *GameConfig) { c.Field.PaceScale = 1.5 }},
		{"zero obstacle width", func(c *GameConfig) { c.Field.ObstacleWidth = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultGameConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	yaml := `
timing:
  hit_interval: 3.0
  grace_window: 0.25
  max_tick_delta: 0.05
  settle_delay: 0.6
  outcome_hold: 2.5
odds:
  hazard_probability: 0.25
  lifeboat_probability: 0.05
  multiplier:
    first_min: 1.10
    first_max: 1.30
    early_cap: 2.10
    early_count: 5
    early_increment_min: 0.05
    early_increment_max: 0.30
    late_increment_min: 1.00
    late_increment_max: 3.00
betting:
  window_seconds: 5.0
  min_bet: 1
  bet_step: 10
  starting_balance: 1000
hitbox:
  ship_padding: 0.0
  obstacle_left_inset: 1.0
  obstacle_right_inset: 0.5
field:
  obstacle_width: 6
  obstacle_height: 2
  pace_scale: 0.85
  cull_margin: 4
  max_idle: 2
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("cannot write test config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Timing.HitInterval != 3.0 {
		t.Errorf("hit_interval = %v, want 3.0", cfg.Timing.HitInterval)
	}
	if cfg.Odds.HazardProbability != 0.25 {
		t.Errorf("hazard_probability = %v, want 0.25", cfg.Odds.HazardProbability)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("missing explicit config path should error")
	}

	// An explicit config that fails validation must error loudly rather
	// than fall back to defaults.
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("timing:\n  hit_interval: -1\n"), 0o600); err != nil {
		t.Fatalf("cannot write test config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("invalid explicit config should error")
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("fallback config failed validation: %v", err)
	}
}
