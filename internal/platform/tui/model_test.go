package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/icy-tower/internal/core"
	"github.com/vovakirdan/icy-tower/internal/storage"
)

// stubGame records what the host hands it and replays scripted results.
type stubGame struct {
	resets  int
	inputs  []core.InputFrame
	script  []core.StepResult
	state   core.GameState
	best    int
	maxKeep int
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{}
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	if len(g.script) == 0 {
		return core.StepResult{State: g.state}
	}
	r := g.script[0]
	g.script = g.script[1:]
	g.state = r.State
	return r
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "stub")
}

func (g *stubGame) State() core.GameState { return g.state }
func (g *stubGame) SetBestScore(score int) { g.best = score }
func (g *stubGame) LeaderboardSize() int   { return g.maxKeep }

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 20, TickRate: 60, Seed: 1}
}

func over(score int) core.StepResult {
	return core.StepResult{
		State: core.GameState{Score: score, GameOver: true},
		Events: []core.Event{
			{Kind: core.EventGameOver, Value: score},
			{Kind: core.EventMusicStop},
		},
	}
}

func TestModelTickPassesRunClock(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, nil, testConfig())
	m.Init()

	next, cmd := m.handleTick(m.start.Add(500 * time.Millisecond))
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	m = next.(Model)

	if len(g.inputs) != 1 {
		t.Fatalf("steps = %d, want 1", len(g.inputs))
	}
	if g.inputs[0].Now != 500*time.Millisecond {
		t.Errorf("Now = %v, want 500ms", g.inputs[0].Now)
	}
}

func TestModelHeldMovement(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, nil, testConfig())
	t0 := m.start

	next, _ := m.handleKey(tea.KeyMsg{Type: tea.KeyLeft}, t0)
	m = next.(Model)

	next, _ = m.handleTick(t0.Add(100 * time.Millisecond))
	m = next.(Model)
	next, _ = m.handleTick(t0.Add(time.Second))
	m = next.(Model)

	if !g.inputs[0].IsHeld(core.ActionLeft) {
		t.Error("left should be held right after the press")
	}
	if g.inputs[1].IsHeld(core.ActionLeft) {
		t.Error("left should be released once the window passes")
	}
}

func TestModelEdgeActionsLastOneTick(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, nil, testConfig())
	now := m.start

	next, _ := m.handleKey(tea.KeyMsg{Type: tea.KeySpace}, now)
	m = next.(Model)
	next, _ = m.handleTick(now)
	m = next.(Model)
	m.handleTick(now)

	if !g.inputs[0].Has(core.ActionJump) {
		t.Error("jump should reach the next step")
	}
	if g.inputs[1].Has(core.ActionJump) {
		t.Error("jump should be cleared after one step")
	}
}

func TestModelSavesScoreOnGameOver(t *testing.T) {
	store := openStore(t)
	g := &stubGame{maxKeep: 10, script: []core.StepResult{over(42)}}
	m := NewModel(g, store, nil, testConfig())
	m.Init()

	next, _ := m.handleTick(m.start)
	m = next.(Model)

	if m.rank != 1 {
		t.Errorf("rank = %d, want 1", m.rank)
	}
	scores, err := store.TopScores("stub", 10)
	if err != nil {
		t.Fatalf("TopScores failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 42 {
		t.Errorf("scores = %+v, want one entry of 42", scores)
	}

	// The frozen game over screen must not save again.
	m.handleTick(m.start)
	scores, _ = store.TopScores("stub", 10)
	if len(scores) != 1 {
		t.Errorf("scores saved %d times, want once", len(scores))
	}

	if !strings.Contains(m.screenText(), "New high score!") {
		t.Error("result line missing from game over view")
	}
}

func TestModelRestartRefreshesBest(t *testing.T) {
	store := openStore(t)
	g := &stubGame{maxKeep: 10, script: []core.StepResult{
		over(30),
		{State: core.GameState{}},
	}}
	m := NewModel(g, store, nil, testConfig())
	m.Init()

	next, _ := m.handleTick(m.start)
	m = next.(Model)
	next, _ = m.handleTick(m.start)
	m = next.(Model)

	if g.best != 30 {
		t.Errorf("best = %d, want 30 after restart", g.best)
	}
	if m.rank != 0 {
		t.Errorf("rank = %d, want cleared", m.rank)
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, nil, testConfig())
	m.Init()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(Model)

	if g.resets != 1 {
		t.Errorf("resets = %d, want 1", g.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, want 100x40", m.screen.Width(), m.screen.Height())
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&stubGame{}, nil, nil, testConfig())

	next, cmd := m.Update(runeKey("q"))
	m = next.(Model)

	if !m.IsQuitting() {
		t.Error("q should quit")
	}
	if cmd == nil {
		t.Error("quit should return tea.Quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestModelBackOnlyWhenEmbeddedAndStopped(t *testing.T) {
	tests := []struct {
		name     string
		embedded bool
		state    core.GameState
		want     bool
	}{
		{"standalone over", false, core.GameState{GameOver: true}, false},
		{"embedded running", true, core.GameState{}, false},
		{"embedded over", true, core.GameState{GameOver: true}, true},
		{"embedded paused", true, core.GameState{Paused: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewModel(&stubGame{}, nil, nil, testConfig())
			m.embedded = tt.embedded
			m.gameState = tt.state

			next, _ := m.Update(runeKey("b"))
			if got := next.(Model).BackToMenu(); got != tt.want {
				t.Errorf("BackToMenu = %v, want %v", got, tt.want)
			}
		})
	}
}

// screenText renders the view without styling.
func (m Model) screenText() string {
	m.game.Render(m.screen)
	m.renderResult()
	return m.screen.String()
}
