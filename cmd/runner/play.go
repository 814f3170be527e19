package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/audio"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/rhb"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

var (
	flagConfig string
	flagMute   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start the runner in the current terminal.

Controls:
  Right/D    - Run (hold to accelerate)
  Space/Up   - Jump
  Down/S     - Slide
  Enter      - New game (after a knockout)
  Q/Ctrl+C   - Quit

Examples:
  runner play
  runner play --seed 42
  runner play --config ./my-runner.yaml
  runner play --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound output")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size, fall back to a standard window
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Hooks must be set before the game initializes
	rhb.SetConfigPath(flagConfig)

	var player *audio.Player
	if !flagMute {
		player = audio.New()
		if audioErr := player.Initialize(); audioErr != nil {
			log.Warn("running without sound", "error", audioErr)
			player = nil
		} else {
			rhb.SetAudio(player)
			defer player.Cleanup()
		}
	}

	game, err := registry.Create("rhb")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	if runErr := tui.Run(game, cfg); runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
