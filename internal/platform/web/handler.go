// Package web serves Sprite Run to browsers over WebSocket. Each
// connection plays its own game; the server runs the simulation and
// streams render commands to the client.
package web

import (
	"context"
	"io"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/sprite-run/internal/config"
	"github.com/vovakirdan/sprite-run/internal/games/spriterun"
	"github.com/vovakirdan/sprite-run/internal/storage"
)

// HandlerConfig configures a Handler.
type HandlerConfig struct {
	Settings config.Settings
	TickRate int
	// Scores is shared by every session. Defaults to an in-memory slot.
	Scores  spriterun.HighScoreStore
	History *storage.Store
	// Clock overrides the per-session system clock.
	Clock  spriterun.Clock
	Logger *log.Logger
}

// Handler upgrades connections on /ws and runs one Session per connection.
type Handler struct {
	cfg      HandlerConfig
	logger   *log.Logger
	upgrader websocket.Upgrader
	ctx      context.Context
	cancel   context.CancelFunc
	mu       sync.Mutex // guards closed and wg.Add against Close
	closed   bool
	wg       sync.WaitGroup
	sessions atomic.Int64
}

// NewHandler constructs a websocket handler.
func NewHandler(cfg HandlerConfig) *Handler {
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	if cfg.Scores == nil {
		cfg.Scores = spriterun.NewMemoryHighScores()
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Handler{
		cfg:    cfg,
		logger: cfg.Logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		ctx:    ctx,
		cancel: cancel,
	}
}

// Routes returns the HTTP routes served by the handler.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", h.Handle)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, "ok")
	})
	return mux
}

// Handle upgrades the request and plays a game until the client leaves.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if !h.join() {
		http.Error(w, "server shutting down", http.StatusServiceUnavailable)
		return
	}
	defer h.wg.Done()

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	defer conn.Close()

	n := h.sessions.Add(1)
	defer h.sessions.Add(-1)
	logger := h.logger.With("remote", r.RemoteAddr)
	logger.Info("session started", "sessions", n)

	session := NewSession(conn, SessionOptions{
		Settings: h.cfg.Settings,
		TickRate: h.cfg.TickRate,
		Scores:   h.cfg.Scores,
		History:  h.cfg.History,
		Clock:    h.cfg.Clock,
		Logger:   logger,
	})
	if err := session.Run(h.ctx); err != nil {
		logger.Warn("session ended with error", "error", err)
		return
	}
	logger.Info("session ended")
}

// Sessions returns the number of connected players.
func (h *Handler) Sessions() int {
	return int(h.sessions.Load())
}

// join registers a session unless the handler is closed.
func (h *Handler) join() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.wg.Add(1)
	return true
}

// Close ends every running session and waits for them to return.
// Connections arriving afterwards are refused.
func (h *Handler) Close() {
	h.mu.Lock()
	h.closed = true
	h.mu.Unlock()

	h.cancel()
	h.wg.Wait()
}
