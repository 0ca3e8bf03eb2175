package config

import (
	_ "embed"
)

//go:embed defaults/brickbreaker.yaml
var defaultBrickBreakerYAML []byte

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

//go:embed defaults/minesweeper.yaml
var defaultMinesweeperYAML []byte

// DefaultBrickBreakerConfig returns the hardcoded brick breaker defaults.
// Used as the last-resort fallback if the embedded YAML fails to parse.
func DefaultBrickBreakerConfig() BrickBreakerConfig {
	return BrickBreakerConfig{
		World: BrickWorld{
			Width:  500,
			Height: 650,
		},
		Physics: BrickPhysics{
			BallSpeed:         3.5,
			BallSpeedPerLevel: 0.5,
			MaxBallSpeed:      9.0,
			PaddleSpeed:       6.0,
			MaxBounceAngleDeg: 60,
		},
		Paddle: BrickPaddle{
			BaseWidth: 100,
			MaxWidth:  160,
			Height:    12,
		},
		Ball: BrickBall{
			Radius: 8,
		},
		Bricks: BrickLayout{
			Rows:      5,
			Cols:      10,
			Width:     50,
			Height:    20,
			Top:       60,
			BaseValue: 10,
			GapChance: 0.15,
			MaxHits:   3,
		},
		Gameplay: BrickGameplay{
			Lives:           3,
			ServeDelayTicks: 60,
			ComboIdleTicks:  180,
		},
		PowerUps: BrickPowerUps{
			DropChance:      0.18,
			FallSpeed:       2.0,
			ExtendAmount:    30,
			DurationExtend:  720,
			DurationLaser:   480,
			DurationSlowmo:  480,
			DurationCatch:   600,
			MaxBalls:        12,
			WeightMultiball: 20,
			WeightExtend:    25,
			WeightLaser:     15,
			WeightSlowmo:    15,
			WeightCatch:     15,
			WeightLife:      5,
		},
	}
}

// DefaultInvadersConfig returns the hardcoded invaders defaults.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Cannon: InvadersCannon{
			Speed:         5.0,
			ShotSpeed:     8.0,
			CooldownTicks: 18,
		},
		Fleet: InvadersFleet{
			Rows:          5,
			Cols:          11,
			MarchInterval: 30,
			StepDown:      20,
			BombChance:    0.12,
			BombSpeed:     3.0,
		},
		Gameplay: InvadersGameplay{
			Lives:     3,
			RowValue:  10,
			WaveBonus: 100,
		},
	}
}

// DefaultSnakeConfig returns the hardcoded snake defaults.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		MoveEveryTicks: 8,
		MinMoveTicks:   3,
		SpeedupEvery:   5,
		FoodValue:      10,
		StartLength:    3,
	}
}

// DefaultMinesweeperConfig returns the hardcoded minesweeper defaults.
func DefaultMinesweeperConfig() MinesweeperConfig {
	return MinesweeperConfig{
		Rows:        12,
		Cols:        24,
		Mines:       36,
		RevealValue: 10,
		WinBonusMax: 1000,
		WinBonusPer: 2,
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "brickbreaker":
		return defaultBrickBreakerYAML
	case "spaceinvaders":
		return defaultInvadersYAML
	case "snake":
		return defaultSnakeYAML
	case "minesweeper":
		return defaultMinesweeperYAML
	default:
		return nil
	}
}
