package score

import (
	"errors"
	"testing"

	"github.com/vovakirdan/realm-runner/internal/config"
)

var testCfg = config.ScoreConfig{PerSecond: 2, Penalty: 50}

type failingPrefs struct{}

func (failingPrefs) Float(string, float64) (float64, error) { return 0, errors.New("boom") }
func (failingPrefs) SetFloat(string, float64) error         { return errors.New("boom") }

func TestTickAccruesScore(t *testing.T) {
	tr := NewTracker(testCfg, nil, nil)
	for i := 0; i < 60; i++ {
		tr.Tick(1.0 / 60.0)
	}
	if got := tr.Score(); got < 1.999 || got > 2.001 {
		t.Errorf("Score() = %v after 1s, expected 2", got)
	}
}

func TestPenaltyClampsAtZero(t *testing.T) {
	tr := NewTracker(testCfg, nil, nil)
	tr.Tick(15) // 30 points
	tr.Penalize()
	if tr.Score() != 0 {
		t.Errorf("Score() = %v, expected 0", tr.Score())
	}

	tr.Tick(40) // 80 points
	tr.Penalize()
	if tr.Score() != 30 {
		t.Errorf("Score() = %v, expected 30", tr.Score())
	}
}

func TestHighScoreFollowsScore(t *testing.T) {
	tr := NewTracker(testCfg, nil, nil)
	tr.Tick(50) // 100
	tr.Penalize()
	if tr.HighScore() != 100 {
		t.Errorf("HighScore() = %v, expected 100", tr.HighScore())
	}
	if tr.Display() != 50 || tr.DisplayHigh() != 100 {
		t.Errorf("Display() = %d/%d, expected 50/100", tr.Display(), tr.DisplayHigh())
	}
	tr.Tick(0.25) // 50.5
	if tr.Display() != 50 {
		t.Errorf("Display() = %d, expected floored 50", tr.Display())
	}
	tr.Tick(9.75) // 70
	if tr.HighScore() != 100 {
		t.Errorf("HighScore() = %v, penalty should not lower the high score", tr.HighScore())
	}
}

func TestHighScorePersistenceRoundTrip(t *testing.T) {
	prefs := NewMemoryPrefs()
	tr := NewTracker(testCfg, prefs, nil)
	tr.Tick(12.345)
	if err := tr.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	reloaded := NewTracker(testCfg, prefs, nil)
	if reloaded.HighScore() != tr.HighScore() {
		t.Errorf("reloaded high score = %v, expected %v", reloaded.HighScore(), tr.HighScore())
	}
	if reloaded.Score() != 0 {
		t.Errorf("reloaded score = %v, expected a fresh run", reloaded.Score())
	}
}

func TestSaveOnlyWhenChanged(t *testing.T) {
	prefs := NewMemoryPrefs()
	prefs.SetFloat(HighScoreKey, 500)
	tr := NewTracker(testCfg, prefs, nil)
	tr.Tick(10)
	if err := tr.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	v, _ := prefs.Float(HighScoreKey, 0)
	if v != 500 {
		t.Errorf("stored high score = %v, a lower run must not overwrite it", v)
	}
}

func TestLoadFailureStartsFromZero(t *testing.T) {
	tr := NewTracker(testCfg, failingPrefs{}, nil)
	if tr.HighScore() != 0 {
		t.Errorf("HighScore() = %v, expected 0", tr.HighScore())
	}
	tr.Tick(1)
	if err := tr.Save(); err == nil {
		t.Error("Save() should report the store error")
	}
}

func TestSaveNeverLowersStoredHighScore(t *testing.T) {
	prefs := NewMemoryPrefs()
	a := NewTracker(testCfg, prefs, nil)
	b := NewTracker(testCfg, prefs, nil)

	b.Tick(100) // 200
	if err := b.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	a.Tick(75) // 150, against a stale baseline of 0
	if err := a.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	if v, _ := prefs.Float(HighScoreKey, 0); v != 200 {
		t.Errorf("stored high score = %v, expected 200", v)
	}
	if a.HighScore() != 200 {
		t.Errorf("HighScore() = %v, expected the stored 200 to be adopted", a.HighScore())
	}
}

func TestTickSavesNewHighOnInterval(t *testing.T) {
	cfg := testCfg
	cfg.SaveInterval = 1
	prefs := NewMemoryPrefs()
	tr := NewTracker(cfg, prefs, nil)

	tr.Tick(0.5)
	if _, ok := prefs.values[HighScoreKey]; ok {
		t.Fatal("high score written before the interval elapsed")
	}
	tr.Tick(0.5)
	if v, _ := prefs.Float(HighScoreKey, 0); v != 2 {
		t.Errorf("stored high score = %v after 1s, expected 2", v)
	}

	tr.Tick(0.5)
	if v, _ := prefs.Float(HighScoreKey, 0); v != 2 {
		t.Errorf("stored high score = %v, expected throttled write", v)
	}
	tr.Tick(0.5)
	if v, _ := prefs.Float(HighScoreKey, 0); v != 4 {
		t.Errorf("stored high score = %v after 2s, expected 4", v)
	}
}

func TestTickWithoutIntervalLeavesSavingToCaller(t *testing.T) {
	prefs := NewMemoryPrefs()
	tr := NewTracker(testCfg, prefs, nil)
	tr.Tick(10)
	if _, ok := prefs.values[HighScoreKey]; ok {
		t.Error("Tick() should not write when SaveInterval is 0")
	}
}
