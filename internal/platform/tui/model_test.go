package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/realm-runner/internal/core"
	"github.com/vovakirdan/realm-runner/internal/games/runner"
	"github.com/vovakirdan/realm-runner/internal/storage"
)

type fakeGame struct {
	resets   int
	steps    int
	finishes int
	lastIn   core.InputFrame
}

func (g *fakeGame) ID() string               { return "fake" }
func (g *fakeGame) Title() string            { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *fakeGame) Render(dst *core.Screen)  { dst.DrawText(0, 0, "fake") }
func (g *fakeGame) State() core.GameState    { return core.GameState{Score: g.steps} }
func (g *fakeGame) Finish() error            { g.finishes++; return nil }
func (g *fakeGame) Summary() runner.Summary {
	return runner.Summary{Score: g.steps, Duration: float64(g.steps)}
}
func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.lastIn = in
	return core.StepResult{State: g.State()}
}

func testModel(t *testing.T, g *fakeGame, store *storage.Store) Model {
	t.Helper()
	m := NewModel(g, store, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}, nil)
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestModelTickStepsGameWithInput(t *testing.T) {
	g := &fakeGame{}
	m := testModel(t, g, nil)

	m = update(t, m, runeKey("w"))
	m = update(t, m, TickMsg{})
	if g.steps != 1 {
		t.Fatalf("steps = %d, expected 1", g.steps)
	}
	if !g.lastIn.Jump.Pressed {
		t.Error("jump press should reach the game")
	}
	if m.gameState.Score != 1 {
		t.Errorf("gameState not updated: %+v", m.gameState)
	}
}

func TestModelRestartRecordsRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &fakeGame{}
	m := testModel(t, g, store)
	for i := 0; i < 5; i++ {
		m = update(t, m, TickMsg{})
	}

	m = update(t, m, runeKey("r"))
	m = update(t, m, TickMsg{})

	if g.resets != 2 || g.finishes != 1 {
		t.Errorf("resets=%d finishes=%d, expected 2 and 1", g.resets, g.finishes)
	}
	if g.steps != 5 {
		t.Errorf("restart tick should not step the game, steps = %d", g.steps)
	}
	runs, err := store.TopRuns(10)
	if err != nil || len(runs) != 1 || runs[0].Score != 5 {
		t.Errorf("TopRuns() = %v, %v; expected one run with score 5", runs, err)
	}
}

func TestModelQuitFinishesRun(t *testing.T) {
	g := &fakeGame{}
	m := testModel(t, g, nil)
	m = update(t, m, TickMsg{})

	next, cmd := m.Update(runeKey("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if !next.(Model).IsQuitting() {
		t.Error("model should be quitting")
	}
	if g.finishes != 1 {
		t.Errorf("finishes = %d, expected 1", g.finishes)
	}
	if next.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelResizeKeepsHelpRow(t *testing.T) {
	g := &fakeGame{}
	m := testModel(t, g, nil)
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, expected 100x29", m.screen.Width(), m.screen.Height())
	}
	if g.resets != 1 {
		t.Error("resize must not restart the run")
	}
}
