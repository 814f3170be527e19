// Package config provides YAML-based configuration loading for the runner.
package config

// RunnerConfig contains all configuration for the runner game.
type RunnerConfig struct {
	World      WorldConfig      `yaml:"world"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Generation GenerationConfig `yaml:"generation"`
	Audio      AudioConfig      `yaml:"audio"`
}

// WorldConfig defines the fixed world-space dimensions.
type WorldConfig struct {
	Width         int `yaml:"width"`          // World width in world units
	Height        int `yaml:"height"`         // World height in world units
	Floor         int `yaml:"floor"`          // Y the character rests on
	StartingPoint int `yaml:"starting_point"` // Initial character x
}

// PhysicsConfig defines character physics parameters, in world units per tick.
type PhysicsConfig struct {
	Gravity      int `yaml:"gravity"`
	RunningSpeed int `yaml:"running_speed"` // Added to velocity.x per Run event
	JumpSpeed    int `yaml:"jump_speed"`    // Negative, upward
	MaxVelocity  int `yaml:"max_velocity"`  // Terminal fall speed
}

// GenerationConfig defines the procedural segment generation parameters.
type GenerationConfig struct {
	TimelineMinimum int `yaml:"timeline_minimum"` // Lookahead buffer threshold
	ObstacleBuffer  int `yaml:"obstacle_buffer"`  // Gap before a new segment
}

// AudioConfig toggles sound output.
type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
}
