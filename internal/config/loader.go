package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// load unmarshals a game config following the standard search order:
// customPath -> ~/.devpulse-arcade/configs/<name> -> ./configs/<name> ->
// embedded default. A customPath failure is an error; failures further
// down the chain fall through silently.
func load(customPath, filename string, embedded []byte, out any) error {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return nil
	}

	if userPath := userConfigPath(filename); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, out); err == nil {
				return nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, out); err == nil {
			return nil
		}
	}

	return yaml.Unmarshal(embedded, out)
}

// userConfigPath returns the path to a user config file, or empty if the
// home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".devpulse-arcade", "configs", filename)
}

// LoadBrickBreaker loads the brick breaker configuration.
func LoadBrickBreaker(customPath string) (BrickBreakerConfig, error) {
	var cfg BrickBreakerConfig
	if err := load(customPath, "brickbreaker.yaml", defaultBrickBreakerYAML, &cfg); err != nil {
		return DefaultBrickBreakerConfig(), err
	}
	return cfg, nil
}

// LoadInvaders loads the invaders configuration.
func LoadInvaders(customPath string) (InvadersConfig, error) {
	var cfg InvadersConfig
	if err := load(customPath, "invaders.yaml", defaultInvadersYAML, &cfg); err != nil {
		return DefaultInvadersConfig(), err
	}
	return cfg, nil
}

// LoadSnake loads the snake configuration.
func LoadSnake(customPath string) (SnakeConfig, error) {
	var cfg SnakeConfig
	if err := load(customPath, "snake.yaml", defaultSnakeYAML, &cfg); err != nil {
		return DefaultSnakeConfig(), err
	}
	return cfg, nil
}

// LoadMinesweeper loads the minesweeper configuration.
func LoadMinesweeper(customPath string) (MinesweeperConfig, error) {
	var cfg MinesweeperConfig
	if err := load(customPath, "minesweeper.yaml", defaultMinesweeperYAML, &cfg); err != nil {
		return DefaultMinesweeperConfig(), err
	}
	return cfg, nil
}
