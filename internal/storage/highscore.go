package storage

import (
	"fmt"
	"strconv"
	"strings"
)

// HighScoreKey is the kv key the persisted high score lives under.
const HighScoreKey = "spriterun.high_score"

// HighScoreSlot is a single persisted high score backed by the kv table.
type HighScoreSlot struct {
	store *Store
	key   string
}

// HighScoreSlot returns the high score slot stored under key.
func (s *Store) HighScoreSlot(key string) *HighScoreSlot {
	return &HighScoreSlot{store: s, key: key}
}

// LoadHighScore reads the slot. Values that are not a decimal integer
// are reported as absent.
func (h *HighScoreSlot) LoadHighScore() (int, bool, error) {
	raw, ok, err := h.store.Value(h.key)
	if err != nil || !ok {
		return 0, false, err
	}
	score, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false, nil
	}
	return score, true, nil
}

// raiseHighScore writes the new score only when it beats the stored one.
// Stored values LoadHighScore would report as absent are overwritten.
const raiseHighScore = `
	INSERT INTO kv (key, value) VALUES (?1, ?2)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value
	WHERE trim(kv.value, ' ' || char(9, 10, 13)) = ''
	   OR trim(kv.value, ' ' || char(9, 10, 13)) GLOB '*[^0-9]*'
	   OR length(trim(kv.value, ' ' || char(9, 10, 13))) > 18
	   OR CAST(trim(kv.value, ' ' || char(9, 10, 13)) AS INTEGER) < CAST(excluded.value AS INTEGER)`

// SaveHighScore stores score unless the slot already holds a higher one.
// Sessions sharing the slot can therefore never lower it.
func (h *HighScoreSlot) SaveHighScore(score int) error {
	if _, err := h.store.db.Exec(raiseHighScore, h.key, strconv.Itoa(score)); err != nil {
		return fmt.Errorf("storage: cannot write %s: %w", h.key, err)
	}
	return nil
}

// Reset removes the persisted value.
func (h *HighScoreSlot) Reset() error {
	return h.store.DeleteValue(h.key)
}
