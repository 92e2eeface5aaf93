package spriterun

import (
	"testing"

	"github.com/vovakirdan/sprite-run/internal/config"
)

func TestSpawnWaitsForDelay(t *testing.T) {
	cfg := config.DefaultSettings()
	r := newRecordingRenderer()
	f := NewObstacleField(&cfg, fixedRandom(0), r, 0)

	// With a zero draw the delay is exactly MinSpawnInterval; equal is not enough
	f.Update(500, 5)
	if len(f.Obstacles()) != 0 {
		t.Fatalf("spawned at the delay boundary")
	}

	f.Update(501, 5)
	obs := f.Obstacles()
	if len(obs) != 1 {
		t.Fatalf("expected one obstacle, got %d", len(obs))
	}
	if len(r.created) != 1 || r.created[0] != obs[0].Handle {
		t.Errorf("renderer should see exactly one create for the obstacle")
	}
	// Spawned at lane width, then advanced in the same tick
	if obs[0].X != cfg.Lane.Width-5 {
		t.Errorf("X = %v, expected %v", obs[0].X, cfg.Lane.Width-5)
	}
	if f.NextSpawnX() != cfg.Lane.Width+cfg.Obstacles.Width+cfg.Obstacles.MinGap {
		t.Errorf("NextSpawnX() = %v", f.NextSpawnX())
	}
	if f.LastSpawn() != 501 {
		t.Errorf("LastSpawn() = %v, expected 501", f.LastSpawn())
	}
}

func TestSpawnUsesRandomRanges(t *testing.T) {
	cfg := config.DefaultSettings()
	f := NewObstacleField(&cfg, fixedRandom(0.5), newRecordingRenderer(), 0)

	// Delay 700, gap 400
	f.Update(700, 1)
	if len(f.Obstacles()) != 0 {
		t.Fatal("spawned before the sampled delay")
	}
	f.Update(701, 1)
	if len(f.Obstacles()) != 1 {
		t.Fatal("expected a spawn after the sampled delay")
	}
	if want := cfg.Lane.Width + cfg.Obstacles.Width + 400; f.NextSpawnX() != want {
		t.Errorf("NextSpawnX() = %v, expected %v", f.NextSpawnX(), want)
	}
}

func TestObstaclesAdvanceUniformly(t *testing.T) {
	cfg := config.DefaultSettings()
	r := newRecordingRenderer()
	f := NewObstacleField(&cfg, fixedRandom(0), r, 0)

	now := 0.0
	for len(f.Obstacles()) < 3 {
		now += 501
		f.Update(now, 7)
	}

	before := make([]float64, 0, 3)
	for _, o := range f.Obstacles() {
		before = append(before, o.X)
	}

	f.Update(now, 7)
	for i, o := range f.Obstacles() {
		if o.X != before[i]-7 {
			t.Errorf("obstacle %d moved from %v to %v, expected -7", i, before[i], o.X)
		}
		if r.xs[o.Handle] != o.X {
			t.Errorf("renderer x for obstacle %d = %v, expected %v", i, r.xs[o.Handle], o.X)
		}
		if i > 0 && o.X <= f.Obstacles()[i-1].X {
			t.Errorf("spawn order should have increasing x")
		}
	}
}

func TestCullExactlyOnce(t *testing.T) {
	cfg := config.DefaultSettings()
	r := newRecordingRenderer()
	f := NewObstacleField(&cfg, fixedRandom(0), r, 0)

	f.Update(501, 20)
	h := f.Obstacles()[0].Handle

	// 600 - 20*31 = -20: at -width the obstacle is still live
	for i := 0; i < 30; i++ {
		f.Update(501, 20)
	}
	if len(f.Obstacles()) != 1 || f.Obstacles()[0].X != -20 {
		t.Fatalf("expected one obstacle at -20, got %+v", f.Obstacles())
	}
	if r.removed[h] != 0 {
		t.Fatal("removed before scrolling past -width")
	}

	if culled := f.Update(501, 20); culled != 1 {
		t.Errorf("Update() culled %d, expected 1", culled)
	}
	if len(f.Obstacles()) != 0 {
		t.Error("obstacle should be gone at -40")
	}

	f.Update(501, 20)
	f.Clear()
	if r.removed[h] != 1 {
		t.Errorf("remove side effect fired %d times, expected 1", r.removed[h])
	}
}

func TestClearRemovesVisuals(t *testing.T) {
	cfg := config.DefaultSettings()
	r := newRecordingRenderer()
	f := NewObstacleField(&cfg, fixedRandom(0), r, 0)

	f.Update(501, 1)
	f.Update(1002, 1)
	if len(f.Obstacles()) != 2 {
		t.Fatalf("expected 2 obstacles, got %d", len(f.Obstacles()))
	}

	f.Clear()
	if len(f.Obstacles()) != 0 {
		t.Error("Clear() left obstacles behind")
	}
	for _, h := range r.created {
		if r.removed[h] != 1 {
			t.Errorf("handle %d removed %d times, expected 1", h, r.removed[h])
		}
	}
}

func TestBoxesFollowObstacles(t *testing.T) {
	cfg := config.DefaultSettings()
	f := NewObstacleField(&cfg, fixedRandom(0), newRecordingRenderer(), 0)
	f.Update(501, 5)

	boxes := f.Boxes()
	if len(boxes) != 1 {
		t.Fatalf("expected one box, got %d", len(boxes))
	}
	b := boxes[0]
	if b.Left != 595 || b.Right != 615 || b.Top != 160 || b.Bottom != 200 {
		t.Errorf("Boxes()[0] = %+v", b)
	}
}
