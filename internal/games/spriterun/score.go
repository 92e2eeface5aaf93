package spriterun

import (
	"math"

	"github.com/vovakirdan/sprite-run/internal/config"
	"github.com/vovakirdan/sprite-run/internal/core"
)

// ScoreModel accumulates score on a fixed cadence and owns the scroll speed,
// which rises each time the score lands on a multiple of the speed-up threshold.
type ScoreModel struct {
	cfg      *config.Settings
	score    int
	speed    float64
	lastTick float64
}

// NewScoreModel creates a score model at zero score and base speed.
func NewScoreModel(cfg *config.Settings, now float64) ScoreModel {
	return ScoreModel{
		cfg:      cfg,
		speed:    cfg.Speed.Base,
		lastTick: now,
	}
}

// Score returns the current score.
func (s *ScoreModel) Score() int {
	return s.score
}

// Speed returns the current scroll speed.
func (s *ScoreModel) Speed() float64 {
	return s.speed
}

// LastTick returns the time of the last score increment.
func (s *ScoreModel) LastTick() float64 {
	return s.lastTick
}

// Increment returns the points awarded per scoring interval at the current speed.
func (s *ScoreModel) Increment() int {
	return int(math.Round(s.cfg.Scoring.BaseRate + s.speed*s.cfg.Scoring.SpeedFactor))
}

// Update awards points if more than one scoring interval has passed.
// It reports whether the score changed.
func (s *ScoreModel) Update(now float64) bool {
	if now-s.lastTick <= s.cfg.Scoring.Interval {
		return false
	}

	prev := s.score
	s.score += s.Increment()
	s.lastTick = now

	threshold := s.cfg.Scoring.SpeedUpThreshold
	if s.score > 0 && s.score%threshold == 0 && s.speed < s.cfg.Speed.Max {
		s.speed = core.ClampF(s.speed+s.cfg.Speed.Increase, s.cfg.Speed.Base, s.cfg.Speed.Max)
	}

	return s.score != prev
}
