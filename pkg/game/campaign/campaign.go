// Package campaign defines the fixed level count, the per-level maze sizing
// policy, spawn placement, and the sector each level is set in.
package campaign

import (
	"extraction/pkg/engine/world"
	"extraction/pkg/game/locale"
)

// TotalLevels is the default number of levels in a campaign
const TotalLevels = 10

// Maze sizing. Every two levels the maze grows by WidthStep columns and HeightStep rows.
const (
	BaseSize   = 15
	WidthStep  = 4
	HeightStep = 3
)

// Multiplier returns the growth step for the given level (1-based): floor((level-1)/2)
func Multiplier(level int) int {
	if level <= 1 {
		return 0
	}
	return (level - 1) / 2
}

// Dimensions returns the maze width and height for the given level (1-based).
// Both are rounded up to odd values.
func Dimensions(level int) (width, height int) {
	m := Multiplier(level)
	width = BaseSize + m*WidthStep
	height = BaseSize + m*HeightStep
	if width%2 == 0 {
		width++
	}
	if height%2 == 0 {
		height++
	}
	return width, height
}

// SpawnPosition returns the pixel centre of the origin cell (1,1)
func SpawnPosition(cellSize int) (x, y float64) {
	origin := world.Point{Col: 1, Row: 1}
	x = (float64(origin.Col) + 0.5) * float64(cellSize)
	y = (float64(origin.Row) + 0.5) * float64(cellSize)
	return x, y
}

// IsFinalLevel returns true if level is the last one of a campaign of maxLevel levels
func IsFinalLevel(level, maxLevel int) bool {
	return level >= maxLevel
}

// NextLevel returns the level after currentLevel, or 0 if currentLevel is the final one
func NextLevel(currentLevel, maxLevel int) int {
	if currentLevel <= 0 || currentLevel >= maxLevel {
		return 0
	}
	return currentLevel + 1
}

// Sector is the hostile territory a level is set in
type Sector int

const (
	Perimeter Sector = iota // Outer defence lines
	Barracks                // Abandoned garrison blocks
	Reactor                 // Power plant tunnels
	HiveTunnels             // Infested lower levels
	CommandBunker           // Final objective
)

// sectorCount is the number of sectors cycled through before the final level
const sectorCount = 4

// SectorFor returns the sector for the given level (1-based). Levels cycle through
// the outer sectors; the final level of a campaign is always the command bunker.
func SectorFor(level, maxLevel int) Sector {
	if level >= maxLevel {
		return CommandBunker
	}
	if level <= 0 {
		return Perimeter
	}
	return Sector((level - 1) % sectorCount)
}

// Key returns the gettext message key for the sector name
func (s Sector) Key() string {
	switch s {
	case Barracks:
		return "SECTOR_BARRACKS"
	case Reactor:
		return "SECTOR_REACTOR"
	case HiveTunnels:
		return "SECTOR_HIVE"
	case CommandBunker:
		return "SECTOR_COMMAND"
	default:
		return "SECTOR_PERIMETER"
	}
}

// Name returns the translated sector name. Uses constant keys for the catalog extractor.
func (s Sector) Name() string {
	switch s {
	case Barracks:
		return locale.Get("SECTOR_BARRACKS")
	case Reactor:
		return locale.Get("SECTOR_REACTOR")
	case HiveTunnels:
		return locale.Get("SECTOR_HIVE")
	case CommandBunker:
		return locale.Get("SECTOR_COMMAND")
	default:
		return locale.Get("SECTOR_PERIMETER")
	}
}
