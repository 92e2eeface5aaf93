package spriterun

import (
	"strings"
	"testing"

	"github.com/vovakirdan/sprite-run/internal/config"
	"github.com/vovakirdan/sprite-run/internal/core"
)

func newTestGame(scores HighScoreStore) (*Game, *manualClock) {
	clock := &manualClock{}
	g := New(config.DefaultSettings(), Options{
		Clock:  clock,
		Random: fixedRandom(0),
		Scores: scores,
	})
	return g, clock
}

func press(g *Game, a core.Action) {
	in := core.NewInputFrame()
	in.Set(a)
	g.HandleInput(in)
}

func TestGameRenderIdle(t *testing.T) {
	g, _ := newTestGame(&stubScores{score: 120, ok: true})
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"Sprite Run", TitleStart, "[ " + LabelStart + " ]", "HI 00120  00000"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}

	// Ground spans the row above the bottom line
	if got := screen.Get(0, 22); got != GroundChar {
		t.Errorf("ground cell = %q, expected %q", got, GroundChar)
	}
	// Sprite stands on the ground at the left of the lane
	if got := screen.Get(6, 21); got != SpriteChar {
		t.Errorf("sprite cell = %q, expected %q", got, SpriteChar)
	}
	if got := screen.GetCell(6, 21).Color; got != core.ColorBrightGreen {
		t.Errorf("sprite color = %v, expected bright green", got)
	}
}

func TestGameRenderTooSmall(t *testing.T) {
	g, _ := newTestGame(nil)
	screen := core.NewScreen(20, 5)

	g.Render(screen)

	if !strings.HasPrefix(screen.Row(0), "Terminal too small") {
		t.Errorf("row 0 = %q", screen.Row(0))
	}
}

func TestGameInputDrivesPhases(t *testing.T) {
	g, clock := newTestGame(nil)
	screen := core.NewScreen(80, 24)

	press(g, core.ActionActivate)
	if st := g.State(); !st.Running || st.GameOver {
		t.Fatalf("State() = %+v, expected running", st)
	}

	g.Render(screen)
	if strings.Contains(screen.String(), "[ "+LabelStart+" ]") {
		t.Error("overlay should be hidden while running")
	}

	for i := 0; i < 5000 && g.State().Running; i++ {
		clock.Advance(16)
		g.Step()
	}
	st := g.State()
	if !st.GameOver {
		t.Fatal("run never ended")
	}
	if st.Score == 0 || st.HighScore != st.Score {
		t.Errorf("State() = %+v, expected a new high score", st)
	}

	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, TitleGameOver) || !strings.Contains(out, "[ "+LabelRestart+" ]") {
		t.Error("game over overlay not rendered")
	}
	if !strings.Contains(out, string(ObstacleChar)) {
		t.Error("obstacles should stay visible after game over")
	}

	press(g, core.ActionRestart)
	if st := g.State(); !st.Running || st.Score != 0 {
		t.Errorf("State() after restart = %+v", st)
	}
	if g.scene.ObstacleCount() != 0 {
		t.Errorf("scene keeps %d obstacles after restart", g.scene.ObstacleCount())
	}
}

func TestSceneTracksControllerObstacles(t *testing.T) {
	g, clock := newTestGame(nil)
	press(g, core.ActionActivate)

	for i := 0; i < 300 && g.State().Running; i++ {
		clock.Advance(16)
		g.Step()
		if got, want := g.scene.ObstacleCount(), len(g.ctrl.State().Obstacles); got != want {
			t.Fatalf("tick %d: scene has %d obstacles, controller %d", i, got, want)
		}
	}
	for _, o := range g.ctrl.State().Obstacles {
		if g.scene.obstacles[o.Handle] != o.X {
			t.Errorf("obstacle %d drawn at %v, simulated at %v", o.Handle, g.scene.obstacles[o.Handle], o.X)
		}
	}
}

func TestFormatScore(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, "00000"},
		{42, "00042"},
		{123456, "123456"},
	}
	for _, tc := range tests {
		if got := FormatScore(tc.score); got != tc.want {
			t.Errorf("FormatScore(%d) = %q, expected %q", tc.score, got, tc.want)
		}
	}
}
