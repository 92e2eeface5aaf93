package config

import (
	_ "embed"
)

//go:embed defaults/spriterun.yaml
var defaultYAML []byte

// DefaultSettings returns the built-in Sprite Run settings.
func DefaultSettings() Settings {
	return Settings{
		Speed: SpeedSettings{
			Base:     5,
			Max:      18,
			Increase: 0.5,
		},
		Physics: PhysicsSettings{
			JumpForce: 12,
			Gravity:   0.5,
		},
		Sprite: SpriteSettings{
			X:      50,
			Width:  40,
			Height: 60,
		},
		Obstacles: ObstacleSettings{
			Width:            20,
			Height:           40,
			MinSpawnInterval: 500,
			MaxSpawnInterval: 900,
			MinGap:           300,
			MaxGap:           500,
		},
		Lane: LaneSettings{
			Width:  600,
			Height: 200,
		},
		Scoring: ScoringSettings{
			Interval:         100,
			SpeedUpThreshold: 30,
			BaseRate:         1,
			SpeedFactor:      0.3,
		},
	}
}

// DefaultYAML returns the embedded default settings file.
func DefaultYAML() []byte {
	return defaultYAML
}
