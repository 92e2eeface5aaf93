package web

import (
	"github.com/vovakirdan/sprite-run/internal/config"
	"github.com/vovakirdan/sprite-run/internal/games/spriterun"
)

// Server to client message types.
const (
	TypeHello = "hello"
	TypeFrame = "frame"
)

// Client to server message types.
const (
	TypeActivate = "activate"
	TypeRestart  = "restart"
)

// Event types carried in a frame.
const (
	EventSpawn       = "spawn"
	EventMove        = "move"
	EventRemove      = "remove"
	EventSprite      = "sprite"
	EventOverlay     = "overlay"
	EventHideOverlay = "hideOverlay"
	EventScore       = "score"
	EventHighScore   = "highScore"
)

type clientMessage struct {
	Type string `json:"type"`
}

type laneInfo struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type boxInfo struct {
	X      float64 `json:"x,omitempty"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// helloMessage describes the playfield geometry so a client can draw it,
// followed by the events that set up the idle screen.
type helloMessage struct {
	Type     string   `json:"type"`
	TickRate int      `json:"tickRate"`
	Lane     laneInfo `json:"lane"`
	Sprite   boxInfo  `json:"sprite"`
	Obstacle boxInfo  `json:"obstacle"`
	Events   []any    `json:"events"`
}

func newHello(cfg config.Settings, tickRate int, events []any) helloMessage {
	return helloMessage{
		Type:     TypeHello,
		TickRate: tickRate,
		Lane:     laneInfo{Width: cfg.Lane.Width, Height: cfg.Lane.Height},
		Sprite:   boxInfo{X: cfg.Sprite.X, Width: cfg.Sprite.Width, Height: cfg.Sprite.Height},
		Obstacle: boxInfo{Width: cfg.Obstacles.Width, Height: cfg.Obstacles.Height},
		Events:   events,
	}
}

// frameMessage batches the render commands produced by one tick or input.
type frameMessage struct {
	Type   string `json:"type"`
	Seq    uint64 `json:"seq"`
	Phase  string `json:"phase"`
	Events []any  `json:"events"`
}

type obstacleEvent struct {
	Type string  `json:"type"`
	ID   int     `json:"id"`
	X    float64 `json:"x"`
}

type removeEvent struct {
	Type string `json:"type"`
	ID   int    `json:"id"`
}

type spriteEvent struct {
	Type string  `json:"type"`
	Y    float64 `json:"y"`
}

type overlayEvent struct {
	Type   string `json:"type"`
	Title  string `json:"title,omitempty"`
	Action string `json:"action,omitempty"`
}

type scoreEvent struct {
	Type  string `json:"type"`
	Value int    `json:"value"`
	Text  string `json:"text"`
}

// recorder implements spriterun.Renderer and spriterun.Display by queueing
// one event per call.
type recorder struct {
	next   spriterun.ObstacleHandle
	events []any
}

var (
	_ spriterun.Renderer = (*recorder)(nil)
	_ spriterun.Display  = (*recorder)(nil)
)

func (r *recorder) CreateObstacle(x float64) spriterun.ObstacleHandle {
	r.next++
	r.events = append(r.events, obstacleEvent{Type: EventSpawn, ID: int(r.next), X: x})
	return r.next
}

func (r *recorder) SetObstacleX(h spriterun.ObstacleHandle, x float64) {
	r.events = append(r.events, obstacleEvent{Type: EventMove, ID: int(h), X: x})
}

func (r *recorder) RemoveObstacle(h spriterun.ObstacleHandle) {
	r.events = append(r.events, removeEvent{Type: EventRemove, ID: int(h)})
}

func (r *recorder) SetSpriteY(y float64) {
	r.events = append(r.events, spriteEvent{Type: EventSprite, Y: y})
}

func (r *recorder) ShowOverlay(title, action string) {
	r.events = append(r.events, overlayEvent{Type: EventOverlay, Title: title, Action: action})
}

func (r *recorder) HideOverlay() {
	r.events = append(r.events, overlayEvent{Type: EventHideOverlay})
}

func (r *recorder) DisplayScore(score int) {
	r.events = append(r.events, scoreEvent{Type: EventScore, Value: score, Text: spriterun.FormatScore(score)})
}

func (r *recorder) DisplayHighScore(score int) {
	r.events = append(r.events, scoreEvent{Type: EventHighScore, Value: score, Text: spriterun.FormatScore(score)})
}

// drain returns the queued events and resets the queue.
func (r *recorder) drain() []any {
	events := r.events
	r.events = nil
	return events
}
