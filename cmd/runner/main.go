// runner is a terminal endless-runner: guide the boy over stones and
// platforms for as long as you can.
//
// Usage:
//
//	runner play              - Play in the current terminal
//	runner list              - List available games
//	runner serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-runner/internal/games/rhb"
)

var (
	// Global flags
	flagFPS  int
	flagSeed int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Red Hat Boy - an endless runner in your terminal",
	Long: `runner is a terminal-based endless runner. Run right, jump over
stones, slide under obstacles and land on platforms.

Available commands:
  play     - Play in the current terminal
  list     - Show available games
  serve    - Start SSH server for remote play

Examples:
  runner play
  runner play --seed 42
  runner serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
}
