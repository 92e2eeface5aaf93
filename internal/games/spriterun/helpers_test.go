package spriterun

import (
	"errors"

	"github.com/vovakirdan/sprite-run/internal/config"
)

// manualClock advances only when told to.
type manualClock struct{ now float64 }

func (c *manualClock) Now() float64 { return c.now }

func (c *manualClock) Advance(ms float64) { c.now += ms }

// fixedRandom always returns the same draw.
type fixedRandom float64

func (r fixedRandom) Float64() float64 { return float64(r) }

// recordingRenderer counts side effects per obstacle handle.
type recordingRenderer struct {
	next    ObstacleHandle
	created []ObstacleHandle
	xs      map[ObstacleHandle]float64
	removed map[ObstacleHandle]int
	spriteY []float64
}

func newRecordingRenderer() *recordingRenderer {
	return &recordingRenderer{
		xs:      make(map[ObstacleHandle]float64),
		removed: make(map[ObstacleHandle]int),
	}
}

func (r *recordingRenderer) CreateObstacle(x float64) ObstacleHandle {
	r.next++
	r.created = append(r.created, r.next)
	r.xs[r.next] = x
	return r.next
}

func (r *recordingRenderer) SetObstacleX(h ObstacleHandle, x float64) { r.xs[h] = x }

func (r *recordingRenderer) RemoveObstacle(h ObstacleHandle) { r.removed[h]++ }

func (r *recordingRenderer) SetSpriteY(y float64) { r.spriteY = append(r.spriteY, y) }

// recordingDisplay keeps the latest overlay and counters.
type recordingDisplay struct {
	overlay      bool
	title        string
	action       string
	score        int
	highScore    int
	scoreUpdates int
}

func (d *recordingDisplay) ShowOverlay(title, action string) {
	d.overlay, d.title, d.action = true, title, action
}

func (d *recordingDisplay) HideOverlay() { d.overlay = false }

func (d *recordingDisplay) DisplayScore(score int) {
	d.score = score
	d.scoreUpdates++
}

func (d *recordingDisplay) DisplayHighScore(score int) { d.highScore = score }

// recordingScheduler tracks whether ticks are requested.
type recordingScheduler struct {
	active bool
	calls  []string
}

func (s *recordingScheduler) Start() {
	s.active = true
	s.calls = append(s.calls, "start")
}

func (s *recordingScheduler) Stop() {
	s.active = false
	s.calls = append(s.calls, "stop")
}

// stubScores returns a fixed load result and records saves.
type stubScores struct {
	score   int
	ok      bool
	loadErr error
	saved   []int
	saveErr error
}

func (s *stubScores) LoadHighScore() (int, bool, error) { return s.score, s.ok, s.loadErr }

func (s *stubScores) SaveHighScore(score int) error {
	s.saved = append(s.saved, score)
	return s.saveErr
}

var errStorage = errors.New("storage offline")

// testRig bundles a controller with recording collaborators.
type testRig struct {
	cfg      config.Settings
	clock    *manualClock
	renderer *recordingRenderer
	display  *recordingDisplay
	sched    *recordingScheduler
	scores   *stubScores
	ctrl     *Controller
}

func newTestRig(cfg config.Settings, scores *stubScores) *testRig {
	if scores == nil {
		scores = &stubScores{}
	}
	r := newSharedRig(cfg, scores)
	r.scores = scores
	return r
}

// newSharedRig opens a controller on an arbitrary high score store, which
// several rigs may share.
func newSharedRig(cfg config.Settings, scores HighScoreStore) *testRig {
	r := &testRig{
		cfg:      cfg,
		clock:    &manualClock{},
		renderer: newRecordingRenderer(),
		display:  &recordingDisplay{},
		sched:    &recordingScheduler{},
	}
	r.ctrl = NewController(cfg, Options{
		Clock:     r.clock,
		Random:    fixedRandom(0),
		Renderer:  r.renderer,
		Display:   r.display,
		Scores:    scores,
		Scheduler: r.sched,
	})
	r.ctrl.Open()
	return r
}

// tick advances the clock by one 60 Hz frame and ticks the controller.
func (r *testRig) tick() {
	r.clock.Advance(16)
	r.ctrl.Tick()
}
