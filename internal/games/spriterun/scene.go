package spriterun

// Scene is the terminal-side view of a session. It implements Renderer and
// Display by recording what should be on screen; Game.Render draws it.
type Scene struct {
	next      ObstacleHandle
	obstacles map[ObstacleHandle]float64
	spriteY   float64
	overlay   bool
	title     string
	action    string
	score     int
	highScore int
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{obstacles: make(map[ObstacleHandle]float64)}
}

// CreateObstacle registers a new obstacle visual at x.
func (s *Scene) CreateObstacle(x float64) ObstacleHandle {
	s.next++
	s.obstacles[s.next] = x
	return s.next
}

// SetObstacleX moves an obstacle visual. Unknown handles are ignored.
func (s *Scene) SetObstacleX(h ObstacleHandle, x float64) {
	if _, ok := s.obstacles[h]; ok {
		s.obstacles[h] = x
	}
}

// RemoveObstacle drops an obstacle visual.
func (s *Scene) RemoveObstacle(h ObstacleHandle) {
	delete(s.obstacles, h)
}

// SetSpriteY sets the sprite's height above ground.
func (s *Scene) SetSpriteY(y float64) {
	s.spriteY = y
}

// ShowOverlay shows the message box.
func (s *Scene) ShowOverlay(title, action string) {
	s.overlay = true
	s.title = title
	s.action = action
}

// HideOverlay hides the message box.
func (s *Scene) HideOverlay() {
	s.overlay = false
}

// DisplayScore sets the score counter.
func (s *Scene) DisplayScore(score int) {
	s.score = score
}

// DisplayHighScore sets the high score counter.
func (s *Scene) DisplayHighScore(score int) {
	s.highScore = score
}

// ObstacleCount returns the number of obstacle visuals on screen.
func (s *Scene) ObstacleCount() int {
	return len(s.obstacles)
}

// Overlay returns the overlay texts and whether it is visible.
func (s *Scene) Overlay() (title, action string, visible bool) {
	return s.title, s.action, s.overlay
}
