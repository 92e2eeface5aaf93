package spriterun

import (
	"github.com/vovakirdan/sprite-run/internal/config"
	"github.com/vovakirdan/sprite-run/internal/core"
)

// Obstacle is a ground block the sprite must jump over.
type Obstacle struct {
	X      float64        // Horizontal position (left edge)
	Width  float64        // Width in world units
	Handle ObstacleHandle // Renderer visual
}

// Box returns the obstacle's collision box; the ground is at laneHeight.
func (o Obstacle) Box(height, laneHeight float64) core.Box {
	return core.BoxAt(o.X, laneHeight-height, o.Width, height)
}

// ObstacleField handles spawning, movement and removal of obstacles
// along the single lane.
type ObstacleField struct {
	obstacles  []Obstacle
	rng        Random
	renderer   Renderer
	cfg        *config.Settings
	nextSpawnX float64 // X position where the next obstacle will spawn
	lastSpawn  float64 // Time of the last spawn in milliseconds
}

// NewObstacleField creates an empty field whose spawn timer starts at now.
func NewObstacleField(cfg *config.Settings, rng Random, r Renderer, now float64) *ObstacleField {
	return &ObstacleField{
		obstacles:  make([]Obstacle, 0, 8),
		rng:        rng,
		renderer:   r,
		cfg:        cfg,
		nextSpawnX: cfg.Lane.Width,
		lastSpawn:  now,
	}
}

// Update spawns, advances and culls obstacles for one tick.
// It returns the number of obstacles culled.
func (f *ObstacleField) Update(now, speed float64) int {
	if now-f.lastSpawn > f.spawnDelay() {
		f.spawn(now)
	}

	// Move every obstacle left by the same amount
	for i := range f.obstacles {
		f.obstacles[i].X -= speed
		f.renderer.SetObstacleX(f.obstacles[i].Handle, f.obstacles[i].X)
	}

	// Remove obstacles that have scrolled past the left edge
	culled := 0
	kept := f.obstacles[:0]
	for _, o := range f.obstacles {
		if o.X < -f.cfg.Obstacles.Width {
			f.renderer.RemoveObstacle(o.Handle)
			culled++
			continue
		}
		kept = append(kept, o)
	}
	f.obstacles = kept

	return culled
}

// spawn appends an obstacle at the spawn position and moves the spawn
// position past it by a random gap.
func (f *ObstacleField) spawn(now float64) {
	o := Obstacle{
		X:      f.nextSpawnX,
		Width:  f.cfg.Obstacles.Width,
		Handle: f.renderer.CreateObstacle(f.nextSpawnX),
	}
	f.obstacles = append(f.obstacles, o)
	f.lastSpawn = now
	f.nextSpawnX += f.cfg.Obstacles.Width + f.gap()
}

// spawnDelay draws a delay from [MinSpawnInterval, MaxSpawnInterval).
func (f *ObstacleField) spawnDelay() float64 {
	o := f.cfg.Obstacles
	return o.MinSpawnInterval + f.rng.Float64()*(o.MaxSpawnInterval-o.MinSpawnInterval)
}

// gap draws a spacing from [MinGap, MaxGap).
func (f *ObstacleField) gap() float64 {
	o := f.cfg.Obstacles
	return o.MinGap + f.rng.Float64()*(o.MaxGap-o.MinGap)
}

// Clear removes every obstacle and its visual.
func (f *ObstacleField) Clear() {
	for _, o := range f.obstacles {
		f.renderer.RemoveObstacle(o.Handle)
	}
	f.obstacles = f.obstacles[:0]
}

// Obstacles returns the live obstacles in spawn order.
// The slice is owned by the field and is only valid until the next Update.
func (f *ObstacleField) Obstacles() []Obstacle {
	return f.obstacles
}

// Boxes returns the collision boxes of all live obstacles in spawn order.
func (f *ObstacleField) Boxes() []core.Box {
	boxes := make([]core.Box, len(f.obstacles))
	for i, o := range f.obstacles {
		boxes[i] = o.Box(f.cfg.Obstacles.Height, f.cfg.Lane.Height)
	}
	return boxes
}

// NextSpawnX returns the x position of the next spawn.
func (f *ObstacleField) NextSpawnX() float64 {
	return f.nextSpawnX
}

// LastSpawn returns the time of the most recent spawn.
func (f *ObstacleField) LastSpawn() float64 {
	return f.lastSpawn
}
