package storage

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSubmitScoreReturnsRank(t *testing.T) {
	store := openTestStore(t)

	rank, err := store.SubmitScore("brickbreaker", 100, nil)
	if err != nil {
		t.Fatalf("SubmitScore: %v", err)
	}
	if rank != 1 {
		t.Errorf("first score rank = %d, want 1", rank)
	}

	rank, _ = store.SubmitScore("brickbreaker", 300, nil)
	if rank != 1 {
		t.Errorf("higher score rank = %d, want 1", rank)
	}

	rank, _ = store.SubmitScore("brickbreaker", 200, nil)
	if rank != 2 {
		t.Errorf("middle score rank = %d, want 2", rank)
	}

	// Ranks are per game.
	rank, _ = store.SubmitScore("snake", 50, nil)
	if rank != 1 {
		t.Errorf("other game rank = %d, want 1", rank)
	}
}

func TestMetadataRoundTrip(t *testing.T) {
	store := openTestStore(t)

	md := map[string]any{"level": 3, "max_combo": 7}
	if _, err := store.SubmitScore("brickbreaker", 500, md); err != nil {
		t.Fatalf("SubmitScore: %v", err)
	}

	entries, err := store.TopScores("brickbreaker", 10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}

	// JSON numbers decode as float64.
	if got := entries[0].Metadata["level"]; got != float64(3) {
		t.Errorf("metadata level = %v, want 3", got)
	}
	if got := entries[0].Metadata["max_combo"]; got != float64(7) {
		t.Errorf("metadata max_combo = %v, want 7", got)
	}
}

func TestTopScoresOrderAndLimit(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{10, 50, 30, 40, 20} {
		store.SubmitScore("snake", score, nil)
	}

	entries, err := store.TopScores("snake", 3)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(entries))
	}
	want := []int{50, 40, 30}
	for i, e := range entries {
		if e.Score != want[i] {
			t.Errorf("entry %d score = %d, want %d", i, e.Score, want[i])
		}
	}
}

func TestHighScoreEmptyAndPopulated(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("minesweeper")
	if err != nil {
		t.Fatalf("HighScore: %v", err)
	}
	if high != 0 {
		t.Errorf("empty high score = %d, want 0", high)
	}

	store.SubmitScore("minesweeper", 700, nil)
	store.SubmitScore("minesweeper", 400, nil)
	high, _ = store.HighScore("minesweeper")
	if high != 700 {
		t.Errorf("high score = %d, want 700", high)
	}
}

func TestClearScoresIsPerGame(t *testing.T) {
	store := openTestStore(t)
	store.SubmitScore("snake", 10, nil)
	store.SubmitScore("spaceinvaders", 20, nil)

	if err := store.ClearScores("snake"); err != nil {
		t.Fatalf("ClearScores: %v", err)
	}

	snake, _ := store.AllScores("snake")
	if len(snake) != 0 {
		t.Error("snake scores survived the clear")
	}
	invaders, _ := store.AllScores("spaceinvaders")
	if len(invaders) != 1 {
		t.Error("clear leaked into another game")
	}
}

func TestGameStats(t *testing.T) {
	store := openTestStore(t)
	store.SubmitScore("brickbreaker", 100, nil)
	store.SubmitScore("brickbreaker", 300, nil)

	stats, err := store.GetGameStats("brickbreaker")
	if err != nil {
		t.Fatalf("GetGameStats: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.TotalScore != 400 {
		t.Errorf("stats = %+v, want count 2, high 300, total 400", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("avg = %v, want 200", stats.AvgScore)
	}
}
