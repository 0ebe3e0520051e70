package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: SnakeGrid{Size: 20},
	}
}

// DefaultTetrisConfig returns the default Tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: TetrisBoard{
			Columns: 10,
			Rows:    20,
		},
		Scoring: TetrisScoring{
			PointsPerLine: 100,
		},
		Spawn: TetrisSpawn{X: 3, Y: 0},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "snake":
		return defaultSnakeYAML
	case "tetris":
		return defaultTetrisYAML
	default:
		return nil
	}
}
