package spriterun

import (
	"fmt"
	"sync"
	"time"
)

// Clock supplies the current time in milliseconds. It must never go backwards.
type Clock interface {
	Now() float64
}

// SystemClock measures milliseconds since it was created using the
// monotonic reading of time.Time.
type SystemClock struct {
	start time.Time
}

// NewSystemClock creates a clock starting at zero.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Now returns the milliseconds elapsed since the clock was created.
func (c *SystemClock) Now() float64 {
	return float64(time.Since(c.start)) / float64(time.Millisecond)
}

// Random is the uniform [0, 1) source used for spawn timing and spacing.
// *math/rand.Rand satisfies it.
type Random interface {
	Float64() float64
}

// ObstacleHandle identifies an obstacle's visual in the renderer.
type ObstacleHandle int

// Renderer receives the visual side effects of the simulation.
type Renderer interface {
	CreateObstacle(x float64) ObstacleHandle
	SetObstacleX(h ObstacleHandle, x float64)
	RemoveObstacle(h ObstacleHandle)
	SetSpriteY(y float64)
}

// Display shows the overlay and the score counters.
type Display interface {
	ShowOverlay(title, action string)
	HideOverlay()
	DisplayScore(score int)
	DisplayHighScore(score int)
}

// HighScoreStore persists the best score across sessions.
// LoadHighScore reports ok=false when nothing usable is stored.
type HighScoreStore interface {
	LoadHighScore() (score int, ok bool, err error)
	SaveHighScore(score int) error
}

// Scheduler drives Controller.Tick. Start begins a fresh tick chain and
// Stop cancels any tick that is still pending.
type Scheduler interface {
	Start()
	Stop()
}

// FormatScore renders a score as a five digit, zero padded counter.
func FormatScore(score int) string {
	return fmt.Sprintf("%05d", score)
}

type nopRenderer struct{ next ObstacleHandle }

func (r *nopRenderer) CreateObstacle(float64) ObstacleHandle {
	r.next++
	return r.next
}
func (*nopRenderer) SetObstacleX(ObstacleHandle, float64) {}
func (*nopRenderer) RemoveObstacle(ObstacleHandle)        {}
func (*nopRenderer) SetSpriteY(float64)                   {}

type nopDisplay struct{}

func (nopDisplay) ShowOverlay(string, string) {}
func (nopDisplay) HideOverlay()               {}
func (nopDisplay) DisplayScore(int)           {}
func (nopDisplay) DisplayHighScore(int)       {}

type nopScheduler struct{}

func (nopScheduler) Start() {}
func (nopScheduler) Stop()  {}

// MemoryHighScores keeps the high score in memory. It is safe for
// concurrent use so several sessions can share one instance.
type MemoryHighScores struct {
	mu    sync.Mutex
	score int
	set   bool
}

// NewMemoryHighScores creates an empty in-memory store.
func NewMemoryHighScores() *MemoryHighScores {
	return &MemoryHighScores{}
}

// LoadHighScore returns the stored score, if any.
func (m *MemoryHighScores) LoadHighScore() (int, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.score, m.set, nil
}

// SaveHighScore stores the score unless a higher one is already held.
func (m *MemoryHighScores) SaveHighScore(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.set && m.score >= score {
		return nil
	}
	m.score = score
	m.set = true
	return nil
}
