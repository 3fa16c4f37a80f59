package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// snapshotter is implemented by games that can describe their state.
type snapshotter interface {
	Snapshot() game.Snapshot
}

// resizer is implemented by games that can adapt to a new screen size
// without being reset.
type resizer interface {
	Resize(w, h int)
}

// Model is the Bubble Tea model for playing one variant.
type Model struct {
	game        registry.Game
	screen      *core.Screen
	store       *storage.Store
	config      core.RuntimeConfig
	inputFrame  core.InputFrame
	gameState   core.GameState
	keyMapper   *KeyMapper
	quitting    bool
	allowBack   bool // B/Esc returns to the menu (SSH sessions)
	backToMenu  bool
	resultSaved bool // Whether the current session has been recorded
	saveErr     error
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// WithBackToMenu lets B/Esc leave a paused or finished game.
func (m Model) WithBackToMenu() Model {
	m.allowBack = true
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.recordResult(storage.OutcomeQuit)
		m.quitting = true
		return m, tea.Quit
	}

	if m.allowBack && m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.recordResult(storage.OutcomeQuit)
		m.backToMenu = true
		return m, nil
	}

	return m, nil
}

// handleResize keeps the grid and only adapts the layout.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.resultSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver {
		m.recordResult(storage.OutcomeGameOver)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// recordResult stores the current session once. Sessions without a single
// move are not recorded.
func (m *Model) recordResult(outcome storage.Outcome) {
	if m.resultSaved || m.gameState.Moves == 0 {
		return
	}
	m.resultSaved = true
	if m.store == nil {
		return
	}

	_, err := m.store.SaveResult(storage.Result{
		Variant: m.game.ID(),
		MaxTile: m.gameState.MaxTile,
		Moves:   m.gameState.Moves,
		Seed:    m.config.Seed,
		Outcome: outcome,
	})
	if err != nil {
		m.saveErr = err
	}
}

// saveScreenshot saves the current screen to ~/.t2048/screenshots, plus a
// YAML snapshot of the board when the game provides one.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	dir := filepath.Join(home, ".t2048", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	base := filepath.Join(dir, fmt.Sprintf("%s_%s", m.game.ID(), time.Now().Format("20060102_150405")))
	path := base + ".txt"

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	if s, ok := m.game.(snapshotter); ok {
		data, err := yaml.Marshal(s.Snapshot())
		if err != nil {
			return path, fmt.Errorf("screenshot: %w", err)
		}
		if err := os.WriteFile(base+".yaml", data, 0o600); err != nil {
			return path, fmt.Errorf("screenshot: %w", err)
		}
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// SaveErr returns the last error from recording a result, if any.
func (m Model) SaveErr() error {
	return m.saveErr
}

// RunResult describes how a local play session ended.
type RunResult struct {
	State   core.GameState
	SaveErr error
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) (RunResult, error) {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return RunResult{}, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return RunResult{}, nil
	}
	return RunResult{State: m.State(), SaveErr: m.SaveErr()}, nil
}
