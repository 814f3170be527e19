package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
// These values match the embedded defaults/runner.yaml.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		World: WorldConfig{
			Width:         600,
			Height:        600,
			Floor:         479,
			StartingPoint: -20,
		},
		Physics: PhysicsConfig{
			Gravity:      1,
			RunningSpeed: 4,
			JumpSpeed:    -25,
			MaxVelocity:  20,
		},
		Generation: GenerationConfig{
			TimelineMinimum: 1000,
			ObstacleBuffer:  20,
		},
		Audio: AudioConfig{
			Enabled: true,
		},
	}
}
