// Package score accrues the run score, applies failure penalties and keeps
// the persisted high score.
package score

import (
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/realm-runner/internal/config"
)

// HighScoreKey is the preference key the high score is stored under.
const HighScoreKey = "HighScore"

// Prefs is a key-value store for persisted scalar preferences.
type Prefs interface {
	Float(key string, def float64) (float64, error)
	SetFloat(key string, value float64) error
}

// Raiser is implemented by stores that can keep the larger of the stored
// and given value in one step. RaiseFloat returns the value now stored.
type Raiser interface {
	RaiseFloat(key string, value float64) (float64, error)
}

// raise stores max(stored, value) under key and returns it. Stores without
// an atomic raise are read first.
func raise(prefs Prefs, key string, value float64) (float64, error) {
	if r, ok := prefs.(Raiser); ok {
		return r.RaiseFloat(key, value)
	}
	stored, err := prefs.Float(key, 0)
	if err != nil {
		return 0, err
	}
	if stored >= value {
		return stored, nil
	}
	if err := prefs.SetFloat(key, value); err != nil {
		return 0, err
	}
	return value, nil
}

// MemoryPrefs is an in-process Prefs used when no store is available.
type MemoryPrefs struct {
	values map[string]float64
}

// NewMemoryPrefs returns an empty in-memory store.
func NewMemoryPrefs() *MemoryPrefs {
	return &MemoryPrefs{values: make(map[string]float64)}
}

// Float returns the stored value or def.
func (m *MemoryPrefs) Float(key string, def float64) (float64, error) {
	if v, ok := m.values[key]; ok {
		return v, nil
	}
	return def, nil
}

// SetFloat stores a value.
func (m *MemoryPrefs) SetFloat(key string, value float64) error {
	m.values[key] = value
	return nil
}

// Tracker holds the current score and the high score.
type Tracker struct {
	cfg    config.ScoreConfig
	prefs  Prefs
	logger *log.Logger

	score     float64
	high      float64
	dirty     bool
	sinceSave float64
}

// NewTracker creates a tracker and loads the high score from prefs.
// A nil prefs falls back to memory; a failed load starts from zero.
func NewTracker(cfg config.ScoreConfig, prefs Prefs, logger *log.Logger) *Tracker {
	if prefs == nil {
		prefs = NewMemoryPrefs()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	t := &Tracker{cfg: cfg, prefs: prefs, logger: logger}

	high, err := prefs.Float(HighScoreKey, 0)
	if err != nil {
		logger.Warn("could not load high score", "error", err)
		high = 0
	}
	t.high = high
	return t
}

// Tick accrues score for dt seconds of survival. A new high score is
// written through at most once per SaveInterval; zero leaves saving to the
// caller.
func (t *Tracker) Tick(dt float64) {
	if dt <= 0 {
		return
	}
	t.score += dt * t.cfg.PerSecond
	t.sinceSave += dt
	if t.score > t.high {
		t.high = t.score
		t.dirty = true
	}
	if t.dirty && t.cfg.SaveInterval > 0 && t.sinceSave >= t.cfg.SaveInterval {
		if err := t.Save(); err != nil {
			t.logger.Warn("could not save high score", "error", err)
			t.sinceSave = 0
		}
	}
}

// Penalize subtracts the configured penalty, never going below zero.
func (t *Tracker) Penalize() {
	t.score = math.Max(0, t.score-t.cfg.Penalty)
}

// Score returns the current score.
func (t *Tracker) Score() float64 { return t.score }

// HighScore returns the best score seen, including this run.
func (t *Tracker) HighScore() float64 { return t.high }

// Display returns the score floored for display.
func (t *Tracker) Display() int { return int(math.Floor(t.score)) }

// DisplayHigh returns the high score floored for display.
func (t *Tracker) DisplayHigh() int { return int(math.Floor(t.high)) }

// Save persists the high score if it changed since the last save. The
// stored value never decreases: a higher score saved by another tracker on
// the same prefs is kept and adopted.
func (t *Tracker) Save() error {
	if !t.dirty {
		return nil
	}
	stored, err := raise(t.prefs, HighScoreKey, t.high)
	if err != nil {
		return err
	}
	t.high = math.Max(t.high, stored)
	t.dirty = false
	t.sinceSave = 0
	return nil
}

// Reset starts a new run, keeping the high score.
func (t *Tracker) Reset() {
	t.score = 0
}
