package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-spacewar/internal/core"
	"github.com/vovakirdan/tui-spacewar/internal/registry"
	"github.com/vovakirdan/tui-spacewar/internal/storage"
)

var logger = log.New(io.Discard)

// SetLogger sets the logger used by the TUI models.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// Model is the Bubble Tea model for running one arena variant.
// Every finished round is appended to the ledger under the model's session.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	ledger     *storage.Store
	session    string
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	standalone bool // quit the program on back instead of handing control to a session
	quitting   bool
	backToMenu bool
	recorded   int // rounds written to the ledger
}

// NewModel creates a new Bubble Tea model for the given variant.
// The ledger may be nil; rounds are then not recorded.
func NewModel(game registry.Game, ledger *storage.Store, session string, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		ledger:     ledger,
		session:    session,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init starts the match and the tick loop.
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
		// The arena is scaled into the screen, so the match survives a resize.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	// Back to menu is only offered while paused or after the match
	if action == core.ActionBack {
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			if m.standalone {
				return m, tea.Quit
			}
		}
		return m, nil
	}

	m.keyMapper.MapKeyToFrame(msg, &m.inputFrame)
	return m, nil
}

// handleTick advances the simulation by one tick and records finished rounds.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.recordRounds(result.Rounds)

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// recordRounds appends finished rounds to the ledger.
func (m *Model) recordRounds(rounds []core.RoundSummary) {
	for _, r := range rounds {
		m.recorded++
		if m.ledger == nil {
			continue
		}
		_, err := m.ledger.RecordRound(storage.RoundRecord{
			Session: m.session,
			Variant: m.game.ID(),
			Round:   r.Round,
			Outcome: r.Outcome(),
			Delta:   r.Delta,
			Score:   r.Score,
			Ticks:   r.Ticks,
		})
		if err != nil {
			logger.Warn("round not recorded", "session", m.session, "round", r.Round, "err", err)
		}
	}
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".spacewar", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		logger.Warn("screenshot not saved", "path", path, "err", err)
		return
	}
	logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Recorded returns how many rounds finished during this model's lifetime.
func (m Model) Recorded() int {
	return m.recorded
}

// Config returns the current runtime config (may have been updated by resize).
func (m Model) Config() core.RuntimeConfig {
	return m.config
}

// closeGame releases resources held by the game, such as a Lua pilot.
func closeGame(g registry.Game) {
	if c, ok := g.(io.Closer); ok {
		if err := c.Close(); err != nil {
			logger.Warn("game close failed", "game", g.ID(), "err", err)
		}
	}
}

// Run plays one variant in the local terminal.
// Returns true if the user asked to go back to the menu.
func Run(game registry.Game, ledger *storage.Store, session string, cfg core.RuntimeConfig) (backToMenu bool, err error) {
	model := NewModel(game, ledger, session, cfg)
	model.standalone = true
	defer closeGame(game)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
