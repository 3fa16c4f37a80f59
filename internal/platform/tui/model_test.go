package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// fakeGame reports whatever state the test sets.
type fakeGame struct {
	state   core.GameState
	resets  int
	resizes int
	steps   int
}

func (g *fakeGame) ID() string               { return "fake" }
func (g *fakeGame) Title() string            { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++; g.state = core.GameState{} }
func (g *fakeGame) Resize(int, int)          { g.resizes++ }
func (g *fakeGame) State() core.GameState    { return g.state }
func (g *fakeGame) Render(dst *core.Screen)  { dst.Clear(); dst.DrawText(0, 0, "fake") }
func (g *fakeGame) Step(core.InputFrame) core.StepResult {
	g.steps++
	return core.StepResult{State: g.state}
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7, Spawn4Prob: 0.1}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model
}

func TestModelRecordsGameOverOnce(t *testing.T) {
	store := openStore(t)
	g := &fakeGame{}
	m := NewModel(g, store, testRuntime())
	m.Init()

	g.state = core.GameState{MaxTile: 256, Moves: 120, GameOver: true}
	m = update(t, m, TickMsg{})
	m = update(t, m, TickMsg{})

	results, err := store.RecentResults("fake", 10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	r := results[0]
	if r.MaxTile != 256 || r.Moves != 120 || r.Seed != 7 || r.Outcome != storage.OutcomeGameOver {
		t.Errorf("unexpected result %+v", r)
	}
	if m.SaveErr() != nil {
		t.Errorf("SaveErr() = %v", m.SaveErr())
	}
}

func TestModelRecordsQuitAfterMoves(t *testing.T) {
	store := openStore(t)
	g := &fakeGame{}
	m := NewModel(g, store, testRuntime())
	m.Init()

	g.state = core.GameState{MaxTile: 16, Moves: 9}
	m = update(t, m, TickMsg{})

	next, cmd := m.Update(runeKey("q"))
	m = next.(Model)
	if !m.IsQuitting() || cmd == nil {
		t.Fatal("q did not quit")
	}

	results, err := store.RecentResults("fake", 10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(results) != 1 || results[0].Outcome != storage.OutcomeQuit {
		t.Errorf("results = %+v, want one quit result", results)
	}
}

func TestModelSkipsEmptySessions(t *testing.T) {
	store := openStore(t)
	m := NewModel(&fakeGame{}, store, testRuntime())
	m.Init()

	m = update(t, m, TickMsg{})
	m = update(t, m, runeKey("q"))

	results, err := store.RecentResults("", 10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("got %d results, want 0", len(results))
	}
}

func TestModelRestartAfterGameOver(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, testRuntime())
	m.Init()

	g.state = core.GameState{MaxTile: 64, Moves: 40, GameOver: true}
	m = update(t, m, TickMsg{})

	m = update(t, m, runeKey("r"))
	m = update(t, m, TickMsg{})

	if g.resets != 2 {
		t.Errorf("resets = %d, want 2", g.resets)
	}
	if m.State().GameOver {
		t.Error("state still game over after restart")
	}
}

func TestModelResizeKeepsGrid(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, testRuntime())
	m.Init()

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if g.resizes != 1 {
		t.Errorf("resizes = %d, want 1", g.resizes)
	}
	if g.resets != 1 {
		t.Errorf("resets = %d, want 1 (resize must not reset)", g.resets)
	}
}

func TestModelBackOnlyWhenAllowed(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, testRuntime())
	m.Init()
	g.state = core.GameState{Paused: true}
	m = update(t, m, TickMsg{})

	m = update(t, m, runeKey("b"))
	if m.BackToMenu() {
		t.Error("local model went back to menu")
	}

	sm := NewModel(g, nil, testRuntime()).WithBackToMenu()
	sm = update(t, sm, TickMsg{})
	sm = update(t, sm, runeKey("b"))
	if !sm.BackToMenu() {
		t.Error("paused session did not go back to menu")
	}
}

func TestModelPlaysRealGame(t *testing.T) {
	g := game.New(game.Classic)
	m := NewModel(g, nil, testRuntime())
	m.Init()

	// Two tiles on an empty board can always move in some direction.
	for _, key := range []tea.KeyType{tea.KeyLeft, tea.KeyRight, tea.KeyUp, tea.KeyDown} {
		m = update(t, m, tea.KeyMsg{Type: key})
		m = update(t, m, TickMsg{})
	}

	if m.State().Moves == 0 {
		t.Error("no move was applied")
	}
	if !strings.Contains(m.View(), "Moves:") {
		t.Error("view is missing the HUD")
	}
}

func TestSaveScreenshot(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	m := NewModel(&fakeGame{}, nil, testRuntime())
	path, err := m.saveScreenshot()
	if err != nil {
		t.Fatalf("saveScreenshot() failed: %v", err)
	}

	if dir := filepath.Join(home, ".t2048", "screenshots"); filepath.Dir(path) != dir {
		t.Errorf("screenshot saved to %s, want under %s", path, dir)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if !strings.HasPrefix(string(data), "fake") {
		t.Errorf("screenshot content = %q", data)
	}
}

func TestSaveScreenshotWritesSnapshot(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	g := game.New(game.Strict)
	m := NewModel(g, nil, testRuntime())
	m.Init()

	path, err := m.saveScreenshot()
	if err != nil {
		t.Fatalf("saveScreenshot() failed: %v", err)
	}

	data, err := os.ReadFile(strings.TrimSuffix(path, ".txt") + ".yaml")
	if err != nil {
		t.Fatalf("snapshot not written: %v", err)
	}

	var snap game.Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}
	if snap != g.Snapshot() {
		t.Errorf("snapshot = %+v, want %+v", snap, g.Snapshot())
	}
}
