package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

// Model is the Bubble Tea model for running a game session.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	keys       KeyMap
	keyState   *core.KeyState
	prompt     *NewGamePrompt
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game. If the game
// hosts a platform prompt, it is attached here, before initialization.
func NewModel(game registry.Game, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	prompt := NewNewGamePrompt()
	if host, ok := game.(registry.PromptHost); ok {
		host.AttachPrompt(prompt)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:       DefaultKeyMap(),
		keyState:   core.NewKeyState(holdWindow(cfg.TickRate)),
		prompt:     prompt,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
}

// holdWindow sizes the held-key window so keys survive the terminal's
// autorepeat delay at the active tick rate.
func holdWindow(tickRate int) int {
	return core.Max(3, tickRate/5)
}

// InitGame initializes the underlying game. Must be called once before the
// program starts; an error here aborts the session.
func (m Model) InitGame() error {
	return m.game.Init(m.config)
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
	switch action := m.keys.ActionFor(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionConfirm:
		if m.prompt.Visible() {
			m.prompt.Fire()
		}

	case core.ActionNone:
		// Unbound key, ignore.

	default:
		m.keyState.Press(action)
	}

	return m, nil
}

// handleResize processes window resize events. The game projects its world
// onto the buffer every frame, so no game state changes here.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.keyState.Snapshot(&m.inputFrame)
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.keyState.Tick()

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run initializes the game and starts the Bubble Tea program.
func Run(game registry.Game, cfg core.RuntimeConfig) error {
	model := NewModel(game, cfg)
	if err := model.InitGame(); err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
