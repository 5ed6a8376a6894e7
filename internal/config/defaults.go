package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Movement: MovementConfig{
			MoveSpeed:      8,
			Acceleration:   15,
			Deceleration:   20,
			VelocityPower:  0.9,
			SlipperyFactor: 0.5,
			Mass:           1,
		},
		Jump: JumpConfig{
			Force:             12,
			Randomness:        0.5,
			FallMultiplier:    2.5,
			LowJumpMultiplier: 2,
			CoyoteTime:        0.1,
			JumpBufferTime:    0.1,
		},
		Ground: GroundConfig{
			CheckRadius: 0.2,
			FootOffset:  0.5,
			Layer:       1,
		},
		World: WorldConfig{
			Gravity:        -30,
			RunSpeed:       6,
			KillHeight:     -8,
			PlatformHeight: 0,
			PlayerHalfWide: 0.3,
		},
		Field: FieldConfig{
			SpawnDistance:   15,
			RecycleDistance: 5,
			InitialPoolSize: 10,
			MinSpacing:      2,
			MaxSpacing:      5,
			UnstableChance:  0.5,
			LateralRange:    3,
		},
		Platform: PlatformConfig{
			BreakDelay:    0.5,
			MoveSpeed:     2,
			MoveDirection: [3]float64{1, 0, 0},
		},
		Templates: []TemplateConfig{
			{Name: "slab", Width: 2, Depth: 2.5},
			{Name: "strip", Width: 1.2, Depth: 3.5},
			{Name: "pad", Width: 2.5, Depth: 1.8},
		},
		Score: ScoreConfig{
			PerSecond:    2,
			Penalty:      50,
			SaveInterval: 2,
		},
		Realm: RealmConfig{
			TransitionDelay: 0.5,
			ShakeDuration:   0.5,
			ShakeMagnitude:  0.1,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "distance",
				MaxAt: 1500,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.75,
			},
		},
	}
}
