package config

import (
	_ "embed"
)

//go:embed defaults/icedrift.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the default icedrift configuration. The odds
// constants here define the shipped RTP profile; the embedded YAML default
// mirrors these values exactly.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Timing: TimingConfig{
			HitInterval:  2.0,
			GraceWindow:  0.25,
			MaxTickDelta: 0.05,
			SettleDelay:  0.6,
			OutcomeHold:  2.5,
		},
		Odds: OddsConfig{
			HazardProbability:   0.40,
			LifeboatProbability: 0.05,
			Multiplier: MultiplierConfig{
				FirstMin:          1.10,
				FirstMax:          1.30,
				EarlyCap:          2.10,
				EarlyCount:        5,
				EarlyIncrementMin: 0.05,
				EarlyIncrementMax: 0.30,
				LateIncrementMin:  1.00,
				LateIncrementMax:  3.00,
			},
		},
		Betting: BettingConfig{
			WindowSeconds:   5.0,
			MinBet:          1,
			BetStep:         10,
			StartingBalance: 1000,
		},
		Hitbox: HitboxConfig{
			ShipPadding:        0.0,
			ObstacleLeftInset:  1.0,
			ObstacleRightInset: 0.5,
		},
		Field: FieldConfig{
			ObstacleWidth:  6,
			ObstacleHeight: 2,
			PaceScale:      0.85,
			CullMargin:     4,
			MaxIdle:        2,
		},
	}
}
