package spriterun

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sprite-run/internal/config"
	"github.com/vovakirdan/sprite-run/internal/core"
)

// Options wires a Controller to its collaborators.
// Nil fields fall back to a system clock, a time-seeded RNG, no-op
// renderer, display and scheduler, an in-memory high score and a silent logger.
type Options struct {
	Clock     Clock
	Random    Random
	Renderer  Renderer
	Display   Display
	Scores    HighScoreStore
	Scheduler Scheduler
	Logger    *log.Logger
}

// Controller owns one game session: the phase state machine, the run
// state and the per-tick orchestration of score, physics, obstacles and
// collision. It is not safe for concurrent use; frontends drive it from a
// single goroutine.
type Controller struct {
	cfg       config.Settings
	clock     Clock
	rng       Random
	renderer  Renderer
	display   Display
	scores    HighScoreStore
	sched     Scheduler
	logger    *log.Logger
	phase     Phase
	sprite    PhysicsState
	score     ScoreModel
	field     *ObstacleField
	highScore int
}

// NewController creates a controller in the Idle phase.
func NewController(cfg config.Settings, opts Options) *Controller {
	c := &Controller{
		cfg:      cfg,
		clock:    opts.Clock,
		rng:      opts.Random,
		renderer: opts.Renderer,
		display:  opts.Display,
		scores:   opts.Scores,
		sched:    opts.Scheduler,
		logger:   opts.Logger,
	}
	if c.clock == nil {
		c.clock = NewSystemClock()
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if c.renderer == nil {
		c.renderer = &nopRenderer{}
	}
	if c.display == nil {
		c.display = nopDisplay{}
	}
	if c.scores == nil {
		c.scores = NewMemoryHighScores()
	}
	if c.sched == nil {
		c.sched = nopScheduler{}
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}

	now := c.clock.Now()
	c.score = NewScoreModel(&c.cfg, now)
	c.field = NewObstacleField(&c.cfg, c.rng, c.renderer, now)
	return c
}

// Open loads the persisted high score and shows the start overlay.
func (c *Controller) Open() {
	c.highScore = c.loadHighScore()
	c.display.DisplayHighScore(c.highScore)
	c.display.DisplayScore(c.score.Score())
	c.display.ShowOverlay(TitleStart, LabelStart)
}

// loadHighScore treats a missing, malformed or unreadable value as zero.
func (c *Controller) loadHighScore() int {
	score, ok, err := c.scores.LoadHighScore()
	if err != nil {
		c.logger.Warn("cannot load high score", "error", err)
		return 0
	}
	if !ok || score < 0 {
		return 0
	}
	return score
}

// Activate handles the jump-or-start input.
// Idle starts a run, Running attempts a jump, GameOver ignores it.
func (c *Controller) Activate() {
	switch c.phase {
	case PhaseIdle:
		c.start()
	case PhaseRunning:
		if c.sprite.Jump(c.cfg.Physics.JumpForce) {
			c.logger.Debug("jump", "score", c.score.Score())
		}
	}
}

// Restart starts a fresh run from Idle or GameOver. It is ignored while running.
func (c *Controller) Restart() {
	if c.phase == PhaseRunning {
		return
	}
	c.start()
}

// start re-initialises the whole run state and begins ticking.
func (c *Controller) start() {
	now := c.clock.Now()
	prev := c.phase

	c.phase = PhaseRunning
	c.score = NewScoreModel(&c.cfg, now)
	c.sprite = PhysicsState{}
	c.field.Clear()
	c.field = NewObstacleField(&c.cfg, c.rng, c.renderer, now)

	// Other sessions sharing the store may have raised the record
	if hs := c.loadHighScore(); hs > c.highScore {
		c.highScore = hs
		c.display.DisplayHighScore(hs)
	}

	c.display.HideOverlay()
	c.showScore()
	c.renderer.SetSpriteY(0)

	// Drop any tick still pending from the previous run before scheduling anew
	c.sched.Stop()
	c.sched.Start()

	c.logger.Debug("run started", "from", prev, "high_score", c.highScore)
}

// Tick advances a running session by one frame. It does nothing outside
// the Running phase.
func (c *Controller) Tick() {
	if c.phase != PhaseRunning {
		return
	}
	now := c.clock.Now()

	if c.score.Update(now) {
		c.showScore()
	}

	if c.sprite.Jumping {
		c.sprite.Update(c.cfg.Physics.Gravity)
		c.renderer.SetSpriteY(c.sprite.Y)
	}

	c.field.Update(now, c.score.Speed())

	if _, hit := FirstHit(c.SpriteBox(), c.field.Boxes()); hit {
		c.end()
	}
}

// end moves to GameOver and cancels further ticks.
func (c *Controller) end() {
	c.phase = PhaseGameOver
	c.display.ShowOverlay(TitleGameOver, LabelRestart)
	c.sched.Stop()
	c.logger.Debug("run ended", "score", c.score.Score(), "speed", c.score.Speed())
}

// showScore displays the score and persists a new high score immediately.
func (c *Controller) showScore() {
	score := c.score.Score()
	c.display.DisplayScore(score)
	if score <= c.highScore {
		return
	}
	c.highScore = score
	if err := c.scores.SaveHighScore(score); err != nil {
		c.logger.Warn("cannot save high score", "score", score, "error", err)
	}
	c.display.DisplayHighScore(score)
}

// SpriteBox returns the sprite's collision box derived from its height above ground.
func (c *Controller) SpriteBox() core.Box {
	s := c.cfg.Sprite
	top := c.cfg.Lane.Height - c.sprite.Y - s.Height
	return core.BoxAt(s.X, top, s.Width, s.Height)
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// HighScore returns the best score known to this session.
func (c *Controller) HighScore() int {
	return c.highScore
}

// Settings returns the settings the controller was built with.
func (c *Controller) Settings() config.Settings {
	return c.cfg
}

// State returns a copy of the run state.
func (c *Controller) State() RunState {
	obstacles := make([]Obstacle, len(c.field.Obstacles()))
	copy(obstacles, c.field.Obstacles())

	return RunState{
		Phase:         c.phase,
		SpriteY:       c.sprite.Y,
		JumpVelocity:  c.sprite.Velocity,
		Jumping:       c.sprite.Jumping,
		Speed:         c.score.Speed(),
		Score:         c.score.Score(),
		HighScore:     c.highScore,
		LastScoreTick: c.score.LastTick(),
		LastSpawnTick: c.field.LastSpawn(),
		NextSpawnX:    c.field.NextSpawnX(),
		Obstacles:     obstacles,
	}
}
