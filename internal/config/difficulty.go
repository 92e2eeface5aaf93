package config

import "math"

// ApplyPreset adjusts settings for a difficulty preset.
// Normal and the empty preset leave the settings untouched.
func ApplyPreset(cfg *Settings, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.Base = math.Max(1, cfg.Speed.Base-1)
		cfg.Speed.Max = math.Max(cfg.Speed.Base, cfg.Speed.Max-4)
		cfg.Obstacles.MinGap += 100
		cfg.Obstacles.MaxGap += 100
	case DifficultyHard:
		cfg.Speed.Base += 2
		cfg.Speed.Max += 4
		cfg.Obstacles.MinSpawnInterval *= 0.8
		cfg.Obstacles.MaxSpawnInterval *= 0.8
	case DifficultyFixed:
		// No speed-ups: the run stays at base speed.
		cfg.Speed.Increase = 0
		cfg.Speed.Max = cfg.Speed.Base
	}
}
