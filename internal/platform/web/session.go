package web

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/sprite-run/internal/config"
	"github.com/vovakirdan/sprite-run/internal/games/spriterun"
	"github.com/vovakirdan/sprite-run/internal/storage"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 25 * time.Second
	maxMessageSize = 1024
)

// tickGate implements spriterun.Scheduler for the session loop: the
// ticker keeps running and ticks are delivered only while the gate is open.
type tickGate struct {
	open bool
}

func (g *tickGate) Start() { g.open = true }

func (g *tickGate) Stop() { g.open = false }

// Session is one browser game. The goroutine running Run owns the
// controller and is the only writer on the connection.
type Session struct {
	conn     *websocket.Conn
	tickRate int
	ctrl     *spriterun.Controller
	rec      *recorder
	gate     *tickGate
	history  *storage.Store
	logger   *log.Logger
	seq      uint64
	recorded bool
}

// SessionOptions configures a Session.
type SessionOptions struct {
	Settings config.Settings
	TickRate int
	Scores   spriterun.HighScoreStore
	History  *storage.Store
	Clock    spriterun.Clock
	Seed     int64
	Logger   *log.Logger
}

// NewSession binds a controller to conn and opens it.
func NewSession(conn *websocket.Conn, opts SessionOptions) *Session {
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	s := &Session{
		conn:     conn,
		tickRate: opts.TickRate,
		rec:      &recorder{},
		gate:     &tickGate{},
		history:  opts.History,
		logger:   opts.Logger,
	}
	s.ctrl = spriterun.NewController(opts.Settings, spriterun.Options{
		Clock:     opts.Clock,
		Random:    rand.New(rand.NewSource(opts.Seed)),
		Renderer:  s.rec,
		Display:   s.rec,
		Scores:    opts.Scores,
		Scheduler: s.gate,
		Logger:    opts.Logger,
	})
	s.ctrl.Open()
	return s
}

// Run sends the hello message and drives the game until the client goes
// away or ctx is cancelled.
func (s *Session) Run(ctx context.Context) error {
	if err := s.write(newHello(s.ctrl.Settings(), s.tickRate, s.rec.drain())); err != nil {
		return err
	}

	s.conn.SetReadLimit(maxMessageSize)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	done := make(chan struct{})
	defer close(done)
	input := make(chan string, 16)
	readErr := make(chan error, 1)
	go s.readLoop(done, input, readErr)

	ticker := time.NewTicker(time.Second / time.Duration(s.tickRate))
	defer ticker.Stop()
	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	for {
		select {
		case <-ctx.Done():
			msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
			_ = s.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
			return nil

		case err := <-readErr:
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return err

		case kind := <-input:
			s.apply(kind)
			if err := s.flush(); err != nil {
				return err
			}

		case <-ticker.C:
			if !s.gate.open {
				continue
			}
			s.ctrl.Tick()
			s.recordRun()
			if err := s.flush(); err != nil {
				return err
			}

		case <-ping.C:
			if err := s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return err
			}
		}
	}
}

// readLoop decodes client messages and hands valid ones to the session loop.
func (s *Session) readLoop(done <-chan struct{}, input chan<- string, readErr chan<- error) {
	for {
		_, payload, err := s.conn.ReadMessage()
		if err != nil {
			readErr <- err
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			s.logger.Warn("discarding malformed message", "error", err)
			continue
		}
		switch msg.Type {
		case TypeActivate, TypeRestart:
			select {
			case input <- msg.Type:
			case <-done:
				return
			}
		default:
			s.logger.Warn("discarding unknown message", "type", msg.Type)
		}
	}
}

func (s *Session) apply(kind string) {
	wasRunning := s.ctrl.Phase() == spriterun.PhaseRunning
	switch kind {
	case TypeActivate:
		s.ctrl.Activate()
	case TypeRestart:
		s.ctrl.Restart()
	}
	if !wasRunning && s.ctrl.Phase() == spriterun.PhaseRunning {
		s.recorded = false
	}
}

// recordRun appends a finished run to the history once per game over.
func (s *Session) recordRun() {
	if s.recorded || s.ctrl.Phase() != spriterun.PhaseGameOver {
		return
	}
	s.recorded = true

	score := s.ctrl.State().Score
	if s.history == nil || score <= 0 {
		return
	}
	if _, err := s.history.SaveScore(spriterun.ID, score); err != nil {
		s.logger.Warn("cannot record run", "score", score, "error", err)
	}
}

// flush sends the queued events as one frame. Nothing is sent when the
// last call produced no events.
func (s *Session) flush() error {
	events := s.rec.drain()
	if len(events) == 0 {
		return nil
	}
	s.seq++
	return s.write(frameMessage{
		Type:   TypeFrame,
		Seq:    s.seq,
		Phase:  s.ctrl.Phase().String(),
		Events: events,
	})
}

func (s *Session) write(v any) error {
	if err := s.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	if err := s.conn.WriteJSON(v); err != nil {
		if errors.Is(err, websocket.ErrCloseSent) {
			return nil
		}
		return err
	}
	return nil
}
