package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI string to a preset; unknown values return "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// ApplyBrickBreakerPreset adjusts the config for a difficulty preset.
func ApplyBrickBreakerPreset(cfg *BrickBreakerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.BaseWidth = 130
		cfg.Physics.BallSpeed = 3.0
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.BaseWidth = 80
		cfg.Physics.BallSpeed = 4.5
	}
	if cfg.Paddle.MaxWidth < cfg.Paddle.BaseWidth {
		cfg.Paddle.MaxWidth = cfg.Paddle.BaseWidth
	}
}

// ApplyInvadersPreset adjusts the config for a difficulty preset.
func ApplyInvadersPreset(cfg *InvadersConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Fleet.BombChance = 0.08
		cfg.Fleet.MarchInterval = 36
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Fleet.BombChance = 0.2
		cfg.Fleet.MarchInterval = 22
	}
}

// ApplySnakePreset adjusts the config for a difficulty preset.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.MoveEveryTicks = 10
	case DifficultyHard:
		cfg.MoveEveryTicks = 5
		cfg.MinMoveTicks = 2
	}
}

// ApplyMinesweeperPreset adjusts the config for a difficulty preset.
func ApplyMinesweeperPreset(cfg *MinesweeperConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Mines = 24
	case DifficultyHard:
		cfg.Mines = 54
	}
	maxMines := cfg.Rows*cfg.Cols - 9
	if cfg.Mines > maxMines {
		cfg.Mines = maxMines
	}
}
