// Package tui provides the Bubble Tea frontend for Sprite Run.
// It handles the terminal UI loop, key bindings, the scoreboard and the
// SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick. Gen identifies the tick
// chain that produced it.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

// TickScheduler implements spriterun.Scheduler on top of tea.Tick.
// Every Start or Stop begins a new generation, so ticks still in flight
// from an earlier chain are recognised and dropped. At most one tick per
// generation is in flight.
type TickScheduler struct {
	interval time.Duration
	gen      uint64
	active   bool
	inFlight bool
}

// NewTickScheduler creates a stopped scheduler ticking at tickRate per second.
func NewTickScheduler(tickRate int) *TickScheduler {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &TickScheduler{interval: time.Second / time.Duration(tickRate)}
}

// Start begins a new tick chain.
func (s *TickScheduler) Start() {
	s.gen++
	s.active = true
	s.inFlight = false
}

// Stop cancels the current tick chain.
func (s *TickScheduler) Stop() {
	s.gen++
	s.active = false
	s.inFlight = false
}

// Active reports whether ticks are wanted.
func (s *TickScheduler) Active() bool {
	return s.active
}

// Interval returns the time between ticks.
func (s *TickScheduler) Interval() time.Duration {
	return s.interval
}

// Next returns the command for the next tick, or nil when the scheduler is
// stopped or a tick of the current chain is already pending.
func (s *TickScheduler) Next() tea.Cmd {
	if !s.active || s.inFlight {
		return nil
	}
	s.inFlight = true
	gen := s.gen
	return tea.Tick(s.interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}

// Accept reports whether msg belongs to the running chain. An accepted
// tick clears the pending mark so Next can schedule the following one.
func (s *TickScheduler) Accept(msg TickMsg) bool {
	if !s.active || msg.Gen != s.gen {
		return false
	}
	s.inFlight = false
	return true
}
