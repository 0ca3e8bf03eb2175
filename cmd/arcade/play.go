package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/devpulse/arcade/internal/core"
	"github.com/devpulse/arcade/internal/platform/tui"
	"github.com/devpulse/arcade/internal/registry"
	"github.com/devpulse/arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  A/D or arrows - Move
  Space         - Launch/Fire/Reveal
  F             - Flag (minesweeper)
  P/Esc         - Pause
  R             - Restart (after game over)
  Q/Ctrl+C      - Quit

Difficulty options:
  easy   - Forgiving speeds, extra lives
  normal - Default tuning
  hard   - Faster, fewer lives, denser fields

Examples:
  arcade play brickbreaker
  arcade play spaceinvaders --difficulty easy
  arcade play minesweeper --difficulty hard
  arcade play snake --config ./my-snake.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Apply config path and difficulty preset
	if err := configureGame(game); err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, newFeedbackSink(), cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// configureGame applies the --config and --difficulty flags to games
// that support runtime tuning.
func configureGame(game registry.Game) error {
	if flagConfig == "" && flagDifficulty == "" {
		return nil
	}
	c, ok := game.(registry.Configurable)
	if !ok {
		return fmt.Errorf("game %q does not support config overrides", game.ID())
	}
	return c.Configure(flagConfig, flagDifficulty)
}
