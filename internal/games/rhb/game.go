package rhb

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-runner/internal/assets"
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

// UI is the narrow contract to the platform's game-over surface.
// ShowNewGamePrompt displays a "new game" control and returns a one-shot
// channel that fires when the player activates it; HideNewGamePrompt
// tears the control down. Both are fire-and-forget from the simulation's
// point of view.
type UI interface {
	ShowNewGamePrompt() <-chan struct{}
	HideNewGamePrompt()
}

// nopUI is the default when no platform UI is wired. Its prompt channel is
// nil, which a non-blocking poll treats as "never fires".
type nopUI struct{}

func (nopUI) ShowNewGamePrompt() <-chan struct{} { return nil }
func (nopUI) HideNewGamePrompt()                 {}

// gamePhase identifies the top-level flow state.
type gamePhase uint8

const (
	phaseReady gamePhase = iota
	phaseWalking
	phaseGameOver
)

func (p gamePhase) String() string {
	switch p {
	case phaseReady:
		return "Ready"
	case phaseWalking:
		return "Walking"
	case phaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Package-level hooks set by the platform before the game is created.
var (
	configPath string
	uiHooks    UI
	audioHooks Audio
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetUI wires the platform's game-over prompt surface.
func SetUI(ui UI) {
	uiHooks = ui
}

// SetAudio wires the platform's sound output.
func SetAudio(a Audio) {
	audioHooks = a
}

// Game is the top-level runner: the Ready -> Walking -> GameOver -> Ready
// flow wrapped around a Walk.
type Game struct {
	cfg         config.RunnerConfig
	tuning      *Tuning
	ui          UI
	sessionUI   UI
	audio       Audio
	initialized bool

	phase   gamePhase
	walk    *Walk
	newGame <-chan struct{} // One-shot, owned while in GameOver
}

// New creates an uninitialized game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "rhb"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Red Hat Boy"
}

// AttachPrompt wires a per-instance game-over prompt surface, taking
// precedence over the package-level SetUI hook. Used by multi-session
// hosts where a shared hook would cross wires between players.
func (g *Game) AttachPrompt(ui registry.PromptUI) {
	g.sessionUI = ui
}

// Init loads configuration and atlases, validates every sprite the
// simulation will request, and builds the initial walk. Initialization is
// all-or-nothing and single-attempt: any failure aborts startup, and
// initializing an already-loaded game is an error.
func (g *Game) Init(runtime core.RuntimeConfig) error {
	if g.initialized {
		return fmt.Errorf("rhb: game is already initialized")
	}

	cfg, err := config.LoadRunner(configPath)
	if err != nil {
		return fmt.Errorf("rhb: %w", err)
	}

	boySheet, err := assets.DefaultBoySheet()
	if err != nil {
		return fmt.Errorf("rhb: %w", err)
	}
	tileSheet, err := assets.DefaultTileSheet()
	if err != nil {
		return fmt.Errorf("rhb: %w", err)
	}
	if err := validateTileSheet(tileSheet); err != nil {
		return fmt.Errorf("rhb: %w", err)
	}

	g.ui = g.sessionUI
	if g.ui == nil {
		g.ui = uiHooks
	}
	if g.ui == nil {
		g.ui = nopUI{}
	}
	g.audio = audioHooks
	if g.audio == nil || !cfg.Audio.Enabled {
		g.audio = NopAudio{}
	}

	g.cfg = cfg
	g.tuning = NewTuning(cfg)

	boy, err := NewBoy(boySheet, g.tuning, g.audio)
	if err != nil {
		return fmt.Errorf("rhb: %w", err)
	}

	rng := rand.New(rand.NewSource(runtime.Seed))
	g.walk = newWalk(boy, tileSheet, cfg.World, cfg.Generation, rng)
	g.phase = phaseReady
	g.initialized = true

	g.audio.PlayLooping(ClipMusic)
	return nil
}

// Step advances the game by one tick. All per-tick operations are total;
// an uninitialized game simply does nothing.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if !g.initialized {
		return core.StepResult{State: g.State()}
	}

	switch g.phase {
	case phaseReady:
		// Idle on the spot until the first run input.
		g.walk.boy.Update()
		if in.Has(core.ActionRight) {
			g.walk.boy.RunRight()
			g.phase = phaseWalking
		}

	case phaseWalking:
		g.walk.update(in)
		if g.walk.knockedOut() {
			g.newGame = g.ui.ShowNewGamePrompt()
			g.phase = phaseGameOver
		}

	case phaseGameOver:
		// Poll the one-shot new-game signal, never block.
		select {
		case <-g.newGame:
			g.ui.HideNewGamePrompt()
			g.newGame = nil
			g.walk.reset()
			g.phase = phaseReady
		default:
		}
	}

	return core.StepResult{State: g.State()}
}

// State returns the current top-level state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:      g.phase.String(),
		GameOver:   g.phase == phaseGameOver,
		PromptOpen: g.phase == phaseGameOver,
	}
}

// Register the game with the registry.
func init() {
	registry.Register("rhb", func() registry.Game {
		return New()
	})
}
