package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sprite-run/internal/config"
	"github.com/vovakirdan/sprite-run/internal/core"
	"github.com/vovakirdan/sprite-run/internal/games/spriterun"
	"github.com/vovakirdan/sprite-run/internal/storage"
)

type stepClock struct{ now float64 }

func (c *stepClock) Now() float64 { return c.now }

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func newTestModel(t *testing.T, history *storage.Store) (Model, *stepClock) {
	t.Helper()
	clock := &stepClock{}
	m := NewModel(ModelOptions{
		Settings:      config.DefaultSettings(),
		Runtime:       core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 1},
		History:       history,
		Clock:         clock,
		ScreenshotDir: filepath.Join(t.TempDir(), "shots"),
	})
	return m, clock
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

// tick delivers a tick of the running chain after advancing the clock.
func tick(t *testing.T, m Model, clock *stepClock) (Model, tea.Cmd) {
	t.Helper()
	clock.now += 16
	return update(t, m, TickMsg{Gen: m.sched.gen})
}

func TestKeyMapActions(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{runeKey('w'), core.ActionActivate},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionActivate},
		{runeKey('r'), core.ActionRestart},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionRestart},
		{runeKey('q'), core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{runeKey('x'), core.ActionNone},
	}

	for _, tc := range tests {
		if got := keys.Action(tc.msg); got != tc.want {
			t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
		}
	}
}

func TestModelIdleDoesNotTick(t *testing.T) {
	m, _ := newTestModel(t, nil)

	if m.sched.Active() {
		t.Error("scheduler should be stopped while idle")
	}

	view := m.View()
	if !strings.Contains(view, spriterun.TitleStart) {
		t.Error("idle view should show the start overlay")
	}
	if !strings.Contains(view, "start/jump") {
		t.Error("view should include the help line")
	}
}

func TestModelActivateStartsTicking(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m, cmd := update(t, m, runeKey('w'))

	if !m.game.State().Running {
		t.Fatal("activate should start a run immediately")
	}
	if cmd == nil {
		t.Error("starting a run should schedule a tick")
	}
}

func TestModelStaleTickIgnored(t *testing.T) {
	m, clock := newTestModel(t, nil)
	m, _ = update(t, m, runeKey('w'))

	clock.now += 500
	m, cmd := update(t, m, TickMsg{Gen: m.sched.gen - 1})
	if cmd != nil {
		t.Error("stale tick should not schedule another")
	}
	if got := m.game.Controller().State().Score; got != 0 {
		t.Errorf("stale tick advanced the game: score %d", got)
	}
}

func TestModelRecordsRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m, clock := newTestModel(t, store)
	m, _ = update(t, m, runeKey('w'))

	for i := 0; i < 5000 && m.game.State().Running; i++ {
		m, _ = tick(t, m, clock)
	}
	state := m.game.State()
	if !state.GameOver {
		t.Fatal("run never ended")
	}
	if m.sched.Active() {
		t.Error("scheduler should stop on game over")
	}

	// Late ticks after game over must not record again
	for i := 0; i < 3; i++ {
		m, _ = update(t, m, TickMsg{Gen: m.sched.gen})
	}

	scores, err := store.TopScores(spriterun.ID, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != state.Score {
		t.Errorf("history = %+v, expected one run with score %d", scores, state.Score)
	}

	// Restart and lose again: a second row
	m, _ = update(t, m, runeKey('r'))
	if !m.game.State().Running {
		t.Fatal("restart should start a new run")
	}
	for i := 0; i < 5000 && m.game.State().Running; i++ {
		m, _ = tick(t, m, clock)
	}
	scores, _ = store.TopScores(spriterun.ID, 10)
	if len(scores) != 2 {
		t.Errorf("expected 2 recorded runs, got %d", len(scores))
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelScreenshot(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	if m.lastShot == "" {
		t.Fatal("screenshot was not saved")
	}
	data, err := os.ReadFile(m.lastShot)
	if err != nil {
		t.Fatalf("cannot read screenshot: %v", err)
	}
	if !strings.Contains(string(data), spriterun.TitleStart) {
		t.Error("screenshot should contain the overlay")
	}
}

func TestModelResizeReservesHelpLine(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, expected 100x29", m.screen.Width(), m.screen.Height())
	}
}
