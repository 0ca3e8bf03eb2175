package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/devpulse/arcade/internal/registry"
	"github.com/devpulse/arcade/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the top 10 high scores for the specified game, or a
per-game summary when no game is given.

Examples:
  arcade scores
  arcade scores brickbreaker
  arcade scores snake --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all recorded scores for the game")
}

func runScores(cmd *cobra.Command, args []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		if flagClearScores {
			fmt.Fprintln(os.Stderr, "Error: --clear requires a game ID.")
			os.Exit(1)
		}
		showAllStats(store)
		return
	}

	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	if flagClearScores {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared all scores for %s.\n", gameID)
		return
	}

	showGameScores(store, gameID)
}

// showGameScores prints the top 10 table and summary for one game.
func showGameScores(store *storage.Store, gameID string) {
	// Get game title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	// Get top scores
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	// Display scores
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	// Show aggregate stats
	fmt.Println()
	stats, err := store.GetGameStats(gameID)
	if err == nil && stats.GamesCount > 0 {
		fmt.Printf("Best: %d  |  Plays: %d  |  Average: %.0f\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
}

// showAllStats prints the per-game summary table.
func showAllStats(store *storage.Store) {
	allStats, err := store.GetAllGamesStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	if len(allStats) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'arcade play <game>' to set the first high score!")
		return
	}

	ids := make([]string, 0, len(allStats))
	for id := range allStats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Println("Arcade score summary:")
	fmt.Println()
	fmt.Printf("  %-14s  %-6s  %-10s  %-10s  %s\n", "Game", "Plays", "Best", "Average", "Last played")
	fmt.Printf("  %-14s  %-6s  %-10s  %-10s  %s\n", "----", "-----", "----", "-------", "-----------")

	for _, id := range ids {
		s := allStats[id]
		lastStr := "-"
		if !s.LastPlayed.IsZero() {
			lastStr = s.LastPlayed.Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-14s  %-6d  %-10d  %-10.0f  %s\n",
			id, s.GamesCount, s.HighScore, s.AvgScore, lastStr)
	}

	fmt.Println()
	fmt.Println("Run 'arcade scores <game>' for the full leaderboard.")
}
