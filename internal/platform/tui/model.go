package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-racer/internal/core"
	"github.com/vovakirdan/tui-racer/internal/loop"
	"github.com/vovakirdan/tui-racer/internal/registry"
)

// Options configures a Model beyond the runtime config.
type Options struct {
	// Logger receives game events. Nil discards them.
	Logger *log.Logger

	// ScreenshotDir is where Ctrl+S writes screenshots.
	// Empty means ~/.arcade/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game     registry.Game
	loop     *loop.Loop
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	shotDir  string
	state    core.GameState
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game and resets
// the game. Nothing ticks until the player starts a run.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:    game,
		loop:    loop.New(game),
		screen:  core.NewScreen(cfg.ScreenW, fieldHeight(cfg.ScreenH, 1)),
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    h,
		logger:  logger.With("game", game.ID()),
		shotDir: opts.ScreenshotDir,
		state:   game.State(),
	}
}

// fieldHeight leaves room below the playfield for the help footer.
func fieldHeight(termH, footer int) int {
	return core.Max(termH-footer, 1)
}

// footerRows returns how many rows the help footer takes.
func (m Model) footerRows() int {
	if !m.help.ShowAll {
		return 1
	}
	rows := 1
	for _, col := range m.keys.FullHelp() {
		rows = core.Max(rows, len(col))
	}
	return rows
}

// Init implements tea.Model. The first tick is scheduled by the first
// Start, not here.
func (m Model) Init() tea.Cmd {
	return nil
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
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.config.ScreenW, fieldHeight(m.config.ScreenH, m.footerRows()))
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	// Back leaves the game when nothing is running; there is no menu to
	// return to.
	if action == core.ActionBack {
		if m.state.Running() {
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	result, schedule := m.loop.Dispatch(action)
	if result != nil {
		m.observe(*result)
	}
	if schedule {
		return m, tickCmd(m.config.TickRate)
	}
	return m, nil
}

// handleResize processes window resize events. The playfield is scaled to
// the new size, so the run continues untouched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, fieldHeight(msg.Height, m.footerRows()))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one scheduled simulation tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.loop.Scheduled() {
		return m, nil
	}

	result, next := m.loop.Tick()
	m.observe(result)
	if next {
		return m, tickCmd(m.config.TickRate)
	}
	return m, nil
}

// observe records the new state and reports events.
func (m *Model) observe(result core.StepResult) {
	m.state = result.State
	for _, ev := range result.Events {
		switch ev.Kind {
		case core.EventGameOver:
			m.logger.Info("game over", "score", ev.Value)
		case core.EventLivesChanged:
			m.logger.Debug("lives changed", "lives", ev.Value)
		case core.EventScoreChanged:
			m.logger.Debug("score changed", "score", ev.Value)
		}
	}
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	path, err := m.writeScreenshot(time.Now())
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

func (m *Model) writeScreenshot(now time.Time) (string, error) {
	m.game.Render(m.screen)

	dir := m.shotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: cannot get home directory: %w", err)
		}
		dir = filepath.Join(home, ".arcade", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), now.Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	return RenderScreen(m.screen, 1) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
