package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsParse(t *testing.T) {
	cfg, err := LoadBrickBreaker("")
	if err != nil {
		t.Fatalf("LoadBrickBreaker failed: %v", err)
	}
	want := DefaultBrickBreakerConfig()
	if cfg.World.Width != want.World.Width || cfg.World.Height != want.World.Height {
		t.Errorf("world = %vx%v, want %vx%v",
			cfg.World.Width, cfg.World.Height, want.World.Width, want.World.Height)
	}
	if cfg.Gameplay.Lives != want.Gameplay.Lives {
		t.Errorf("lives = %d, want %d", cfg.Gameplay.Lives, want.Gameplay.Lives)
	}
	if cfg.PowerUps.MaxBalls != want.PowerUps.MaxBalls {
		t.Errorf("max_balls = %d, want %d", cfg.PowerUps.MaxBalls, want.PowerUps.MaxBalls)
	}

	inv, err := LoadInvaders("")
	if err != nil {
		t.Fatalf("LoadInvaders failed: %v", err)
	}
	if inv.Fleet.Rows != DefaultInvadersConfig().Fleet.Rows {
		t.Errorf("fleet rows = %d, want %d", inv.Fleet.Rows, DefaultInvadersConfig().Fleet.Rows)
	}

	sn, err := LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake failed: %v", err)
	}
	if sn.MoveEveryTicks != DefaultSnakeConfig().MoveEveryTicks {
		t.Errorf("move_every_ticks = %d, want %d", sn.MoveEveryTicks, DefaultSnakeConfig().MoveEveryTicks)
	}

	ms, err := LoadMinesweeper("")
	if err != nil {
		t.Fatalf("LoadMinesweeper failed: %v", err)
	}
	if ms.Mines != DefaultMinesweeperConfig().Mines {
		t.Errorf("mines = %d, want %d", ms.Mines, DefaultMinesweeperConfig().Mines)
	}
}

func TestCustomPathOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	yaml := []byte("move_every_ticks: 4\nmin_move_ticks: 2\nspeedup_every: 3\nfood_value: 25\nstart_length: 5\n")
	if err := os.WriteFile(path, yaml, 0o600); err != nil {
		t.Fatalf("cannot write config: %v", err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake failed: %v", err)
	}
	if cfg.MoveEveryTicks != 4 {
		t.Errorf("move_every_ticks = %d, want 4", cfg.MoveEveryTicks)
	}
	if cfg.FoodValue != 25 {
		t.Errorf("food_value = %d, want 25", cfg.FoodValue)
	}
}

func TestMissingCustomPathIsAnError(t *testing.T) {
	_, err := LoadSnake(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("expected error for missing custom config path")
	}
}

func TestMalformedCustomConfigIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("move_every_ticks: [not a number"), 0o600); err != nil {
		t.Fatalf("cannot write config: %v", err)
	}

	_, err := LoadMinesweeper(path)
	if err == nil {
		t.Error("expected error for malformed custom config")
	}
}

func TestParsePreset(t *testing.T) {
	cases := map[string]DifficultyPreset{
		"easy":    DifficultyEasy,
		"normal":  DifficultyNormal,
		"hard":    DifficultyHard,
		"extreme": "",
		"":        "",
	}
	for in, want := range cases {
		if got := ParsePreset(in); got != want {
			t.Errorf("ParsePreset(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPresetsAdjustTunables(t *testing.T) {
	easy := DefaultBrickBreakerConfig()
	ApplyBrickBreakerPreset(&easy, DifficultyEasy)
	hard := DefaultBrickBreakerConfig()
	ApplyBrickBreakerPreset(&hard, DifficultyHard)

	if easy.Gameplay.Lives <= hard.Gameplay.Lives {
		t.Errorf("easy lives %d should exceed hard lives %d", easy.Gameplay.Lives, hard.Gameplay.Lives)
	}
	if easy.Physics.BallSpeed >= hard.Physics.BallSpeed {
		t.Errorf("easy ball speed %v should be below hard %v", easy.Physics.BallSpeed, hard.Physics.BallSpeed)
	}
	if easy.Paddle.MaxWidth < easy.Paddle.BaseWidth {
		t.Errorf("max width %v below base width %v", easy.Paddle.MaxWidth, easy.Paddle.BaseWidth)
	}

	normal := DefaultBrickBreakerConfig()
	ApplyBrickBreakerPreset(&normal, DifficultyNormal)
	if normal.Gameplay.Lives != DefaultBrickBreakerConfig().Gameplay.Lives {
		t.Error("normal preset should leave defaults untouched")
	}
}

func TestMinesweeperPresetCapsMineCount(t *testing.T) {
	cfg := MinesweeperConfig{Rows: 4, Cols: 4, Mines: 3}
	ApplyMinesweeperPreset(&cfg, DifficultyHard)

	maxMines := cfg.Rows*cfg.Cols - 9
	if cfg.Mines > maxMines {
		t.Errorf("mines = %d, exceeds cap %d", cfg.Mines, maxMines)
	}
}
