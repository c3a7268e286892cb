// Package gameplay provides core game logic: level lifecycle, the per-tick
// simulation step, and the scheduler that drives it.
package gameplay

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"extraction/pkg/engine/world"
	"extraction/pkg/game/campaign"
	"extraction/pkg/game/entities"
	"extraction/pkg/game/generator"
	"extraction/pkg/game/locale"
	"extraction/pkg/game/state"
)

// seedStride spreads per-level seeds derived from a fixed base seed
const seedStride = 7919

// GenerateGrid creates a new maze using the default generator
func GenerateGrid(width, height int, seed int64) *world.Grid {
	return generator.DefaultGenerator.Generate(width, height, rand.New(rand.NewSource(seed)))
}

// NewGame creates a new game on the start screen.
// seed 0 makes every level time seeded; any other value makes the campaign reproducible.
func NewGame(maxLevel, startLevel int, seed int64) *state.Game {
	g := state.NewGame(maxLevel)
	g.BaseSeed = seed

	// Set starting level if specified (for developer testing)
	if startLevel > 1 && startLevel <= g.MaxLevel {
		g.StartLevel = startLevel
	}
	g.Level = g.StartLevel

	return g
}

// logger returns the session logger for g
func logger(g *state.Game) *log.Logger {
	return log.With("session", g.ID.String())
}

// levelSeed picks the generation seed for the current level
func levelSeed(g *state.Game) int64 {
	if g.BaseSeed == 0 {
		return time.Now().UnixNano()
	}
	return g.BaseSeed + int64(g.Level)*seedStride
}

// StartGame begins a new campaign from the start level and enters play
func StartGame(g *state.Game) {
	g.Level = g.StartLevel
	g.Phase = state.PhasePlaying
	logger(g).Info("campaign started", "level", g.Level, "max_level", g.MaxLevel)
	InitializeLevel(g)
}

// InitializeLevel builds a fresh maze and avatar for the current level,
// replacing any previous ones.
func InitializeLevel(g *state.Game) {
	seed := levelSeed(g)
	buildLevel(g, seed)

	g.ClearMessages()
	g.AddMessage(fmt.Sprintf(locale.Get("MSG_LEVEL_START"), campaign.SectorFor(g.Level, g.MaxLevel).Name()))

	logger(g).Info("level initialized",
		"level", g.Level,
		"width", g.Grid.Width(),
		"height", g.Grid.Height(),
		"seed", seed,
	)
}

// buildLevel generates the maze for the current level from seed and spawns the avatar
func buildLevel(g *state.Game, seed int64) {
	width, height := campaign.Dimensions(g.Level)

	g.LevelSeed = seed
	g.Grid = GenerateGrid(width, height, seed)

	x, y := campaign.SpawnPosition(g.Grid.CellSize())
	g.Player = entities.NewAvatar(x, y)
}

// CompleteLevel marks the current level as cleared
func CompleteLevel(g *state.Game) {
	g.Phase = state.PhaseLevelComplete
	logger(g).Info("level complete", "level", g.Level)
}

// AdvanceLevel moves past a completed level. Returns false when the campaign is
// over: the game then returns to the start screen with the level left at its
// final value.
func AdvanceLevel(g *state.Game) bool {
	next := campaign.NextLevel(g.Level, g.MaxLevel)
	if next == 0 {
		g.Phase = state.PhaseStart
		g.CampaignsCompleted++
		g.Grid = nil
		g.Player = nil
		g.ClearMessages()
		logger(g).Info("campaign complete", "levels", g.MaxLevel, "campaigns", g.CampaignsCompleted)
		return false
	}

	g.Level = next
	g.Phase = state.PhasePlaying
	InitializeLevel(g)
	return true
}

// ResetLevel regenerates the current level from its stored seed and respawns the avatar
func ResetLevel(g *state.Game) {
	seed := g.LevelSeed
	if seed == 0 {
		// Fallback: use level number as seed (deterministic)
		seed = int64(g.Level)
	}
	buildLevel(g, seed)

	g.ClearMessages()
	g.AddMessage(locale.Get("MSG_LEVEL_RESET"))

	logger(g).Info("level reset", "level", g.Level, "seed", seed)
}
