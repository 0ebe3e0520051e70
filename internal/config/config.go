// Package config provides YAML-based game configuration loading for the
// arcade platform.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// SnakeConfig contains all configuration for the Snake trail game.
type SnakeConfig struct {
	Grid SnakeGrid `yaml:"grid"`
}

// SnakeGrid defines the square playfield.
type SnakeGrid struct {
	Size int `yaml:"size"` // Cells per side; the head starts at (Size/2, Size/2)
}

// Validate checks that the grid is usable.
func (c SnakeConfig) Validate() error {
	if c.Grid.Size < 1 {
		return fmt.Errorf("config: snake grid size %d: %w", c.Grid.Size, ErrInvalidConfig)
	}
	return nil
}

// TetrisConfig contains all configuration for the Tetris game.
type TetrisConfig struct {
	Board   TetrisBoard   `yaml:"board"`
	Scoring TetrisScoring `yaml:"scoring"`
	Spawn   TetrisSpawn   `yaml:"spawn"`
}

// TetrisBoard defines the well dimensions.
type TetrisBoard struct {
	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`
}

// TetrisScoring defines score credit for cleared lines.
type TetrisScoring struct {
	PointsPerLine int `yaml:"points_per_line"`
}

// TetrisSpawn is the top-left anchor where new pieces appear.
type TetrisSpawn struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Validate checks board dimensions and scoring. Whether every piece fits
// at the spawn anchor depends on the shape catalogue and is checked by the
// tetris package.
func (c TetrisConfig) Validate() error {
	if c.Board.Columns < 1 || c.Board.Rows < 1 {
		return fmt.Errorf("config: tetris board %dx%d: %w", c.Board.Columns, c.Board.Rows, ErrInvalidConfig)
	}
	if c.Scoring.PointsPerLine < 0 {
		return fmt.Errorf("config: tetris points_per_line %d: %w", c.Scoring.PointsPerLine, ErrInvalidConfig)
	}
	if c.Spawn.X < 0 || c.Spawn.Y < 0 {
		return fmt.Errorf("config: tetris spawn (%d,%d): %w", c.Spawn.X, c.Spawn.Y, ErrInvalidConfig)
	}
	return nil
}
