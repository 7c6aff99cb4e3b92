package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/quadbreak/internal/core"
	_ "github.com/vovakirdan/quadbreak/internal/games/breakout"
	"github.com/vovakirdan/quadbreak/internal/registry"
	"github.com/vovakirdan/quadbreak/internal/storage"
)

// fakeGame records what the model asks of it.
type fakeGame struct {
	resets   int
	elapsed  []time.Duration
	inputs   []core.InputFrame
	score    int
	over     bool
	paused   bool
	resizedW int
	resizedH int
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.over = false
}

func (g *fakeGame) Resize(w, h int) {
	g.resizedW, g.resizedH = w, h
}

func (g *fakeGame) Advance(elapsed time.Duration, in core.InputFrame) core.StepResult {
	g.elapsed = append(g.elapsed, elapsed)
	frame := core.NewInputFrame()
	for a, ok := range in.Actions {
		if ok {
			frame.Set(a)
		}
	}
	g.inputs = append(g.inputs, frame)
	return core.StepResult{
		State:  g.State(),
		Events: []core.Event{{Name: "advanced", Fields: []any{"elapsed", elapsed}}},
	}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake")
}

func (g *fakeGame) State() core.GameState {
	return core.GameState{Score: g.score, GameOver: g.over, Paused: g.paused}
}

func (g *fakeGame) Summary() core.RunSummary {
	return core.RunSummary{Score: g.score, BricksDestroyed: 3, Ticks: 120, Cleared: g.over}
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, FrameRate: 30, Seed: 7}
}

func testStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model, cmd
}

func TestModelResetsOnCreate(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testRuntime())

	if g.resets != 1 {
		t.Errorf("resets = %d, want 1", g.resets)
	}
	if m.Init() == nil {
		t.Error("Init should start the frame loop")
	}
	if m.config.Seed != 7 {
		t.Errorf("fixed seed = %d, want 7", m.config.Seed)
	}
}

func TestModelRandomSeed(t *testing.T) {
	cfg := testRuntime()
	cfg.Seed = 0
	m := NewModel(&fakeGame{}, cfg)

	if !m.randomSeed || m.config.Seed == 0 {
		t.Errorf("seed 0 should pick a seed, got %d", m.config.Seed)
	}
}

func TestModelTickElapsed(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testRuntime())
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	m, cmd := update(t, m, TickMsg{At: start, Loop: m.loop})
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	m, _ = update(t, m, TickMsg{At: start.Add(20 * time.Millisecond), Loop: m.loop})

	want := []time.Duration{0, 20 * time.Millisecond}
	if len(g.elapsed) != len(want) {
		t.Fatalf("Advance called %d times, want %d", len(g.elapsed), len(want))
	}
	for i := range want {
		if g.elapsed[i] != want[i] {
			t.Errorf("frame %d elapsed = %v, want %v", i, g.elapsed[i], want[i])
		}
	}
}

func TestModelIgnoresStaleTick(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testRuntime())

	_, cmd := update(t, m, TickMsg{At: time.Now(), Loop: m.loop + 100})
	if cmd != nil {
		t.Error("a tick from another loop should not schedule anything")
	}
	if len(g.elapsed) != 0 {
		t.Error("a tick from another loop should not advance the game")
	}
}

func TestModelInputClearedEachFrame(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testRuntime())
	now := time.Now()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, TickMsg{At: now, Loop: m.loop})
	m, _ = update(t, m, TickMsg{At: now.Add(time.Millisecond), Loop: m.loop})

	if !g.inputs[0].Has(core.ActionLeft) {
		t.Error("first frame should carry the left key")
	}
	if g.inputs[1].Has(core.ActionLeft) {
		t.Error("second frame should start with no keys")
	}
}

func TestModelQuitSavesRun(t *testing.T) {
	store := testStore(t)
	g := &fakeGame{score: 120}
	m := NewModel(g, testRuntime(), WithStore(store), WithPlayer("alice"))

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil || !m.IsQuitting() {
		t.Fatal("q should quit")
	}
	if m.BackToMenu() {
		t.Error("q is not a back request")
	}

	runs, err := store.TopRuns("fake", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}
	r := runs[0]
	if r.Score != 120 || r.Player != "alice" || r.EndReason != storage.EndQuit || r.Seed != 7 {
		t.Errorf("saved run = %+v", r)
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestModelZeroScoreNotSaved(t *testing.T) {
	store := testStore(t)
	m := NewModel(&fakeGame{}, testRuntime(), WithStore(store))

	update(t, m, runeKey('q'))

	runs, err := store.TopRuns("fake", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("got %d runs, want none", len(runs))
	}
}

func TestModelGameOverSavesOnce(t *testing.T) {
	store := testStore(t)
	g := &fakeGame{score: 500}
	m := NewModel(g, testRuntime(), WithStore(store))
	g.over = true
	now := time.Now()

	m, _ = update(t, m, TickMsg{At: now, Loop: m.loop})
	m, _ = update(t, m, TickMsg{At: now.Add(time.Millisecond), Loop: m.loop})
	update(t, m, runeKey('q'))

	runs, err := store.TopRuns("fake", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}
	if !runs[0].Cleared || runs[0].EndReason != storage.EndCleared {
		t.Errorf("saved run = %+v, want a cleared run", runs[0])
	}
}

func TestModelRestartAfterGameOver(t *testing.T) {
	g := &fakeGame{score: 10}
	m := NewModel(g, testRuntime())
	g.over = true
	now := time.Now()

	m, _ = update(t, m, TickMsg{At: now, Loop: m.loop})
	m, _ = update(t, m, runeKey('r'))
	m, _ = update(t, m, TickMsg{At: now.Add(time.Millisecond), Loop: m.loop})

	if g.resets != 2 {
		t.Errorf("resets = %d, want 2", g.resets)
	}
	if m.runSaved {
		t.Error("a restarted run should not count as saved")
	}
	if m.State().GameOver {
		t.Error("restarted run should not be over")
	}
}

func TestModelBackOnlyWhenStopped(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testRuntime())

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd != nil || m.BackToMenu() {
		t.Fatal("back should be ignored while playing")
	}

	g.paused = true
	m, _ = update(t, m, TickMsg{At: time.Now(), Loop: m.loop})
	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil || !m.BackToMenu() || !m.IsQuitting() {
		t.Error("back should leave a paused run")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testRuntime())

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if g.resizedW != 120 || g.resizedH != 40 {
		t.Errorf("game resized to %dx%d, want 120x40", g.resizedW, g.resizedH)
	}
	if g.resets != 1 {
		t.Errorf("resize should not reset, resets = %d", g.resets)
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, want 120x40", m.screen.Width(), m.screen.Height())
	}
}

func TestModelViewBreakout(t *testing.T) {
	game, err := registry.Create("breakout")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	m := NewModel(game, testRuntime())

	view := m.View()
	if !strings.Contains(view, "Score: 0") {
		t.Errorf("view should show the score HUD:\n%s", view)
	}
	if lines := strings.Count(view, "\n") + 1; lines != 24 {
		t.Errorf("view has %d lines, want 24", lines)
	}
}
