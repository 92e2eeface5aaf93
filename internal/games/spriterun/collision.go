package spriterun

import "github.com/vovakirdan/sprite-run/internal/core"

// HitInset shrinks an obstacle's hit region on both horizontal sides,
// so grazing an edge does not end the run.
const HitInset = 10

// Overlaps reports whether the sprite box hits the obstacle box.
// All comparisons are strict: touching the inset edge is a miss.
func Overlaps(sprite, obstacle core.Box) bool {
	hit := obstacle.Inset(HitInset)
	return sprite.Right > hit.Left &&
		sprite.Left < hit.Right &&
		sprite.Bottom > hit.Top
}

// FirstHit returns the index of the first obstacle the sprite overlaps.
// Obstacles after the first hit are not examined.
func FirstHit(sprite core.Box, obstacles []core.Box) (int, bool) {
	for i, o := range obstacles {
		if Overlaps(sprite, o) {
			return i, true
		}
	}
	return -1, false
}
