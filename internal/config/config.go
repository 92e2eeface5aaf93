// Package config provides YAML-based game settings loading and difficulty
// presets for Sprite Run.
package config

import (
	"errors"
	"fmt"
)

// Settings contains every tunable of a Sprite Run session.
// All values are constant for the duration of a run.
type Settings struct {
	Speed     SpeedSettings    `yaml:"speed"`
	Physics   PhysicsSettings  `yaml:"physics"`
	Sprite    SpriteSettings   `yaml:"sprite"`
	Obstacles ObstacleSettings `yaml:"obstacles"`
	Lane      LaneSettings     `yaml:"lane"`
	Scoring   ScoringSettings  `yaml:"scoring"`
}

// SpeedSettings defines the scroll speed range in world units per tick.
type SpeedSettings struct {
	Base     float64 `yaml:"base"`
	Max      float64 `yaml:"max"`
	Increase float64 `yaml:"increase"` // Added on every speed-up
}

// PhysicsSettings defines the jump arc.
type PhysicsSettings struct {
	JumpForce float64 `yaml:"jump_force"`
	Gravity   float64 `yaml:"gravity"`
}

// SpriteSettings defines the fixed sprite geometry.
type SpriteSettings struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ObstacleSettings defines obstacle geometry and spawn timing.
// Intervals are milliseconds, gaps are world units.
type ObstacleSettings struct {
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	MinSpawnInterval float64 `yaml:"min_spawn_interval"`
	MaxSpawnInterval float64 `yaml:"max_spawn_interval"`
	MinGap           float64 `yaml:"min_gap"`
	MaxGap           float64 `yaml:"max_gap"`
}

// LaneSettings defines the playfield size. Obstacles first appear at Width.
type LaneSettings struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ScoringSettings defines score cadence and difficulty ramp.
type ScoringSettings struct {
	Interval         float64 `yaml:"interval"` // Milliseconds between increments
	SpeedUpThreshold int     `yaml:"speed_up_threshold"`
	BaseRate         float64 `yaml:"base_rate"`
	SpeedFactor      float64 `yaml:"speed_factor"`
}

// Validate reports every inconsistency in the settings.
func (s Settings) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(s.Speed.Base > 0, "speed.base must be positive, got %v", s.Speed.Base)
	check(s.Speed.Max >= s.Speed.Base, "speed.max (%v) must be >= speed.base (%v)", s.Speed.Max, s.Speed.Base)
	check(s.Speed.Increase >= 0, "speed.increase must not be negative, got %v", s.Speed.Increase)
	check(s.Physics.JumpForce > 0, "physics.jump_force must be positive, got %v", s.Physics.JumpForce)
	check(s.Physics.Gravity > 0, "physics.gravity must be positive, got %v", s.Physics.Gravity)
	check(s.Sprite.Width > 0 && s.Sprite.Height > 0, "sprite size must be positive")
	check(s.Obstacles.Width > 0 && s.Obstacles.Height > 0, "obstacle size must be positive")
	check(s.Obstacles.MinSpawnInterval >= 0 && s.Obstacles.MaxSpawnInterval >= s.Obstacles.MinSpawnInterval,
		"obstacles spawn interval range [%v, %v) is invalid", s.Obstacles.MinSpawnInterval, s.Obstacles.MaxSpawnInterval)
	check(s.Obstacles.MinGap >= 0 && s.Obstacles.MaxGap >= s.Obstacles.MinGap,
		"obstacles gap range [%v, %v) is invalid", s.Obstacles.MinGap, s.Obstacles.MaxGap)
	check(s.Lane.Width > 0 && s.Lane.Height > 0, "lane size must be positive")
	check(s.Sprite.Height <= s.Lane.Height, "sprite.height must fit in lane.height")
	check(s.Scoring.Interval >= 0, "scoring.interval must not be negative")
	check(s.Scoring.SpeedUpThreshold > 0, "scoring.speed_up_threshold must be positive, got %d", s.Scoring.SpeedUpThreshold)

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid settings: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. An empty string keeps the
// loaded settings untouched.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(name) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(name), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}
