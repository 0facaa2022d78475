package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dala-run/internal/assets"
	"github.com/vovakirdan/dala-run/internal/core"
)

// Game is the simulation a Model drives, one Step per tick.
type Game interface {
	Step(in core.InputFrame) core.StepResult
	Draw(c core.Canvas)
	State() core.GameState
}

// footerLines is the height of the help footer below the game.
const footerLines = 1

// Model is the Bubble Tea model for running a game session.
type Model struct {
	game       Game
	screen     *core.Screen
	canvas     *ScreenCanvas
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game. The game draws on a logical
// canvas of canvasW x canvasH pixels that is scaled to the terminal.
func NewModel(game Game, catalog *assets.Catalog, canvasW, canvasH float64, cfg core.RuntimeConfig) Model {
	screen := core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerLines, 1))

	return Model{
		game:       game,
		screen:     screen,
		canvas:     NewScreenCanvas(screen, catalog, canvasW, canvasH),
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
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
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize rescales the canvas; the session itself keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-footerLines, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".dala", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("dala_%s.txt", time.Now().Format("20060102_150405"))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

func (m *Model) draw() {
	m.screen.Clear()
	m.game.Draw(m.canvas)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program with the given model and blocks until the player quits.
func Run(game Game, catalog *assets.Catalog, canvasW, canvasH float64, cfg core.RuntimeConfig) error {
	model := NewModel(game, catalog, canvasW, canvasH, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
