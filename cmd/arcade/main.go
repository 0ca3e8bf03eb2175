// arcade is the DevPulse arcade: retro mini-games for the terminal.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.devpulse-arcade/scores.db)
//	--mute          - Disable the terminal bell on game events
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/devpulse/arcade/internal/core"
	"github.com/devpulse/arcade/internal/platform/tui"

	// Import games to register them
	_ "github.com/devpulse/arcade/internal/games/brickbreaker"
	_ "github.com/devpulse/arcade/internal/games/invaders"
	_ "github.com/devpulse/arcade/internal/games/minesweeper"
	_ "github.com/devpulse/arcade/internal/games/snake"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagMute   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "DevPulse Arcade - Play retro games in your terminal",
	Long: `DevPulse Arcade is the mini-game corner of the DevPulse dashboard:
classic-style games playable directly in your terminal.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  arcade list
  arcade play brickbreaker
  arcade menu
  arcade serve --ssh :2222
  arcade scores brickbreaker`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.devpulse-arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable the terminal bell on game events")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newFeedbackSink builds the event sink shared by the interactive
// commands. The bell is the only audible feedback a terminal offers.
func newFeedbackSink() core.EventSink {
	var bell func()
	if !flagMute {
		bell = func() {
			//nolint:errcheck // Best-effort bell
			os.Stdout.WriteString("\a")
		}
	}
	return tui.NewFeedbackSink(nil, bell)
}
