// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

// BrickBreakerConfig contains all tunables for the brick breaker game.
type BrickBreakerConfig struct {
	World    BrickWorld    `yaml:"world"`
	Physics  BrickPhysics  `yaml:"physics"`
	Paddle   BrickPaddle   `yaml:"paddle"`
	Ball     BrickBall     `yaml:"ball"`
	Bricks   BrickLayout   `yaml:"bricks"`
	Gameplay BrickGameplay `yaml:"gameplay"`
	PowerUps BrickPowerUps `yaml:"powerups"`
}

// BrickWorld defines the fixed logical playfield. The simulation runs in
// world units; the renderer scales to whatever screen it gets.
type BrickWorld struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BrickPhysics defines motion parameters, in world units per tick.
type BrickPhysics struct {
	BallSpeed         float64 `yaml:"ball_speed"`           // Base speed at level 1
	BallSpeedPerLevel float64 `yaml:"ball_speed_per_level"` // Added per level above 1
	MaxBallSpeed      float64 `yaml:"max_ball_speed"`
	PaddleSpeed       float64 `yaml:"paddle_speed"`
	MaxBounceAngleDeg float64 `yaml:"max_bounce_angle_deg"` // Paddle rebound clamp from vertical
}

// BrickPaddle defines paddle geometry.
type BrickPaddle struct {
	BaseWidth float64 `yaml:"base_width"`
	MaxWidth  float64 `yaml:"max_width"`
	Height    float64 `yaml:"height"`
}

// BrickBall defines ball geometry.
type BrickBall struct {
	Radius float64 `yaml:"radius"`
}

// BrickLayout defines the brick grid generated at each level start.
type BrickLayout struct {
	Rows      int     `yaml:"rows"`
	Cols      int     `yaml:"cols"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Top       float64 `yaml:"top"`        // Y of the first brick row
	BaseValue int     `yaml:"base_value"` // Score base per destroyed brick
	GapChance float64 `yaml:"gap_chance"` // Per-cell skip probability, levels > 1
	MaxHits   int     `yaml:"max_hits"`   // Ceiling for per-brick hit counts
}

// BrickGameplay defines lives and timing rules.
type BrickGameplay struct {
	Lives           int `yaml:"lives"`
	ServeDelayTicks int `yaml:"serve_delay_ticks"` // Delay before a respawned ball launches
	ComboIdleTicks  int `yaml:"combo_idle_ticks"`  // Idle ticks before the combo resets
}

// BrickPowerUps defines pickup spawning and timed effect parameters.
type BrickPowerUps struct {
	DropChance float64 `yaml:"drop_chance"` // Probability a brick carries a power-up tag
	FallSpeed  float64 `yaml:"fall_speed"`  // World units per tick

	ExtendAmount float64 `yaml:"extend_amount"` // Width added by extend

	// Timed effect durations, in ticks.
	DurationExtend int `yaml:"duration_extend"`
	DurationLaser  int `yaml:"duration_laser"`
	DurationSlowmo int `yaml:"duration_slowmo"`
	DurationCatch  int `yaml:"duration_catch"`

	MaxBalls int `yaml:"max_balls"` // Multiball population cap

	// Relative spawn weights per type.
	WeightMultiball int `yaml:"weight_multiball"`
	WeightExtend    int `yaml:"weight_extend"`
	WeightLaser     int `yaml:"weight_laser"`
	WeightSlowmo    int `yaml:"weight_slowmo"`
	WeightCatch     int `yaml:"weight_catch"`
	WeightLife      int `yaml:"weight_life"`
}

// InvadersConfig contains all tunables for the invaders game.
type InvadersConfig struct {
	Cannon   InvadersCannon   `yaml:"cannon"`
	Fleet    InvadersFleet    `yaml:"fleet"`
	Gameplay InvadersGameplay `yaml:"gameplay"`
}

// InvadersCannon defines the player cannon.
type InvadersCannon struct {
	Speed         float64 `yaml:"speed"`          // World units per tick
	ShotSpeed     float64 `yaml:"shot_speed"`     // Upward, world units per tick
	CooldownTicks int     `yaml:"cooldown_ticks"` // Minimum ticks between shots
}

// InvadersFleet defines the alien grid and its behavior.
type InvadersFleet struct {
	Rows          int     `yaml:"rows"`
	Cols          int     `yaml:"cols"`
	MarchInterval int     `yaml:"march_interval"` // Ticks between horizontal steps at wave 1
	StepDown      float64 `yaml:"step_down"`      // Descent on edge reversal
	BombChance    float64 `yaml:"bomb_chance"`    // Per-march-step drop probability
	BombSpeed     float64 `yaml:"bomb_speed"`
}

// InvadersGameplay defines lives and scoring.
type InvadersGameplay struct {
	Lives     int `yaml:"lives"`
	RowValue  int `yaml:"row_value"`  // Score base multiplied by the alien's row tier
	WaveBonus int `yaml:"wave_bonus"` // Awarded on wave clear
}

// SnakeConfig contains all tunables for the snake game.
type SnakeConfig struct {
	MoveEveryTicks int `yaml:"move_every_ticks"` // Ticks per cell move at tier 1
	MinMoveTicks   int `yaml:"min_move_ticks"`
	SpeedupEvery   int `yaml:"speedup_every"` // Foods eaten per speed tier
	FoodValue      int `yaml:"food_value"`    // Score base per food, multiplied by tier
	StartLength    int `yaml:"start_length"`
}

// MinesweeperConfig contains all tunables for the minesweeper game.
type MinesweeperConfig struct {
	Rows        int `yaml:"rows"`
	Cols        int `yaml:"cols"`
	Mines       int `yaml:"mines"`
	RevealValue int `yaml:"reveal_value"` // Score per revealed safe cell
	WinBonusMax int `yaml:"win_bonus_max"`
	WinBonusPer int `yaml:"win_bonus_per"` // Bonus lost per elapsed second
}
