// Package config provides YAML-based configuration loading for the icedrift
// round engine. Every tunable the engine reads lives here so the odds stay
// auditable in one place.
package config

import "fmt"

// GameConfig contains all configuration for the icedrift game.
type GameConfig struct {
	Timing  TimingConfig  `yaml:"timing"`
	Odds    OddsConfig    `yaml:"odds"`
	Betting BettingConfig `yaml:"betting"`
	Hitbox  HitboxConfig  `yaml:"hitbox"`
	Field   FieldConfig   `yaml:"field"`
}

// TimingConfig defines the simulation clock parameters, in seconds.
type TimingConfig struct {
	// HitInterval is the target time-to-contact: an obstacle spawned for
	// contact k intervals ahead collides exactly k*HitInterval seconds later.
	HitInterval float64 `yaml:"hit_interval"`
	// GraceWindow is how long a freshly spawned obstacle is immune to
	// contact resolution.
	GraceWindow float64 `yaml:"grace_window"`
	// MaxTickDelta bounds the simulation step under slow frames.
	MaxTickDelta float64 `yaml:"max_tick_delta"`
	// SettleDelay is how long a resolved obstacle stays visible before
	// removal (the sink/crumble effect).
	SettleDelay float64 `yaml:"settle_delay"`
	// OutcomeHold is how long a terminal outcome is shown before the next
	// betting window opens.
	OutcomeHold float64 `yaml:"outcome_hold"`
}

// OddsConfig defines the probability constants shaping the realized RTP.
// These are fixed constants rather than derived values to keep the odds
// auditable.
type OddsConfig struct {
	// HazardProbability is the chance each spawned obstacle is an iceberg.
	HazardProbability float64 `yaml:"hazard_probability"`
	// LifeboatProbability is the post-hazard survival chance.
	LifeboatProbability float64          `yaml:"lifeboat_probability"`
	Multiplier          MultiplierConfig `yaml:"multiplier"`
}

// MultiplierConfig defines the multiplier planning sequence rules.
type MultiplierConfig struct {
	FirstMin          float64 `yaml:"first_min"`           // First draw lower bound
	FirstMax          float64 `yaml:"first_max"`           // First draw upper bound
	EarlyCap          float64 `yaml:"early_cap"`           // Soft cap for early draws
	EarlyCount        int     `yaml:"early_count"`         // Draws 2..EarlyCount are capped
	EarlyIncrementMin float64 `yaml:"early_increment_min"` // Early increment lower bound
	EarlyIncrementMax float64 `yaml:"early_increment_max"` // Early increment upper bound
	LateIncrementMin  float64 `yaml:"late_increment_min"`  // Long-tail increment lower bound
	LateIncrementMax  float64 `yaml:"late_increment_max"`  // Long-tail increment upper bound
}

// BettingConfig defines the betting window and wallet parameters.
type BettingConfig struct {
	WindowSeconds   float64 `yaml:"window_seconds"`   // Betting window length
	MinBet          float64 `yaml:"min_bet"`          // Smallest allowed stake
	BetStep         float64 `yaml:"bet_step"`         // HUD bet adjustment step
	StartingBalance float64 `yaml:"starting_balance"` // Fresh wallet balance
}

// HitboxConfig defines contact-detection paddings on the lane axis.
type HitboxConfig struct {
	ShipPadding        float64 `yaml:"ship_padding"`         // Extra reach on the ship hull
	ObstacleLeftInset  float64 `yaml:"obstacle_left_inset"`  // Hitbox inset from the obstacle's left edge
	ObstacleRightInset float64 `yaml:"obstacle_right_inset"` // Hitbox inset from the right edge
}

// FieldConfig defines obstacle geometry and world-space housekeeping.
type FieldConfig struct {
	ObstacleWidth  float64 `yaml:"obstacle_width"`  // Width in lane units
	ObstacleHeight float64 `yaml:"obstacle_height"` // Height in screen rows
	PaceScale      float64 `yaml:"pace_scale"`      // Global visual pace multiplier (timing-neutral)
	CullMargin     float64 `yaml:"cull_margin"`     // Off-screen distance before removal
	MaxIdle        int     `yaml:"max_idle"`        // Upper bound on unresolved obstacles
}

// Validate checks that the configuration can drive a sane simulation.
func (c GameConfig) Validate() error {
	if c.Timing.HitInterval <= 0 {
		return fmt.Errorf("config: hit_interval must be positive, got %v", c.Timing.HitInterval)
	}
	if c.Timing.MaxTickDelta <= 0 {
		return fmt.Errorf("config: max_tick_delta must be positive, got %v", c.Timing.MaxTickDelta)
	}
	if c.Odds.HazardProbability < 0 || c.Odds.HazardProbability > 1 {
		return fmt.Errorf("config: hazard_probability must be in [0,1], got %v", c.Odds.HazardProbability)
	}
	if c.Odds.LifeboatProbability < 0 || c.Odds.LifeboatProbability > 1 {
		return fmt.Errorf("config: lifeboat_probability must be in [0,1], got %v", c.Odds.LifeboatProbability)
	}
	if c.Odds.Multiplier.FirstMin < 1 || c.Odds.Multiplier.FirstMax < c.Odds.Multiplier.FirstMin {
		return fmt.Errorf("config: multiplier first draw bounds invalid: [%v, %v]",
			c.Odds.Multiplier.FirstMin, c.Odds.Multiplier.FirstMax)
	}
	if c.Betting.MinBet <= 0 {
		return fmt.Errorf("config: min_bet must be positive, got %v", c.Betting.MinBet)
	}
	if c.Betting.WindowSeconds <= 0 {
		return fmt.Errorf("config: window_seconds must be positive, got %v", c.Betting.WindowSeconds)
	}
	if c.Field.MaxIdle < 1 {
		return fmt.Errorf("config: max_idle must be at least 1, got %d", c.Field.MaxIdle)
	}
	if c.Field.PaceScale <= 0 || c.Field.PaceScale > 1 {
		return fmt.Errorf("config: pace_scale must be in (0,1], got %v", c.Field.PaceScale)
	}
	if c.Field.ObstacleWidth <= 0 {
		return fmt.Errorf("config: obstacle_width must be positive, got %v", c.Field.ObstacleWidth)
	}
	return nil
}
