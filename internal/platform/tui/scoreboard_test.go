package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sprite-run/internal/games/spriterun"
	"github.com/vovakirdan/sprite-run/internal/storage"
)

func openModelStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)

	view := m.View()
	if !strings.Contains(view, "No runs recorded yet") {
		t.Errorf("empty scoreboard should say so, got:\n%s", view)
	}
	if !strings.Contains(view, "High score 00000") {
		t.Errorf("empty scoreboard should show a zero high score, got:\n%s", view)
	}
}

func TestScoreboardListsRuns(t *testing.T) {
	store := openModelStore(t)
	for _, s := range []int{40, 90} {
		if _, err := store.SaveScore(spriterun.ID, s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if err := store.HighScoreSlot(storage.HighScoreKey).SaveHighScore(120); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}

	m := NewScoreboardModel(store, 100, 30)
	if len(m.scores) != 2 || m.scores[0].Score != 90 {
		t.Fatalf("scores = %+v", m.scores)
	}

	view := m.View()
	for _, want := range []string{"High score 00120", "Runs 2", "Best run 90", "00090", "00040"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestScoreboardQuit(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
	if next.View() != "" {
		t.Error("view should be empty after quitting")
	}
}
