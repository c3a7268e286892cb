// Package generator builds mazes for the level grid.
package generator

import (
	"extraction/pkg/engine/world"
)

// RNG is the randomness source used during generation. *rand.Rand satisfies it.
type RNG interface {
	Intn(n int) int
}

// GridGenerator is an interface for maze generation algorithms
type GridGenerator interface {
	Generate(width, height int, rng RNG) *world.Grid
	Name() string
}

// Available generators
var (
	Backtracker = &BacktrackerGenerator{}
)

// DefaultGenerator is the default maze generator
var DefaultGenerator GridGenerator = Backtracker
