// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"bufio"
	"fmt"
	"io"

	"extraction/pkg/engine/world"
	"extraction/pkg/game/campaign"
	"extraction/pkg/game/entities"
	"extraction/pkg/game/state"
)

// Map symbols
const (
	SymbolWall   = '#'
	SymbolOpen   = '.'
	SymbolGoal   = 'G'
	SymbolAvatar = '@'
	SymbolSpawn  = 'S'
)

// cellSymbol returns the symbol for a cell with no avatar overlay
func cellSymbol(g *world.Grid, col, row int) rune {
	switch {
	case !g.IsOpen(col, row):
		return SymbolWall
	case g.InGoalBlock(col, row):
		return SymbolGoal
	case g.Origin() == (world.Point{Col: col, Row: row}):
		return SymbolSpawn
	default:
		return SymbolOpen
	}
}

// DumpMaze writes the maze as one line of symbols per row. The avatar, when
// given, is drawn over the cell containing its centre.
func DumpMaze(w io.Writer, g *world.Grid, avatar *entities.Avatar) error {
	bw := bufio.NewWriter(w)

	avatarCell := world.Point{Col: -1, Row: -1}
	if avatar != nil {
		avatarCell = avatar.Cell(g.CellSize())
	}

	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			sym := cellSymbol(g, col, row)
			if avatarCell == (world.Point{Col: col, Row: row}) {
				sym = SymbolAvatar
			}
			bw.WriteRune(sym)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// DumpLevel writes a header with the level metadata and legend, followed by the maze
func DumpLevel(w io.Writer, g *state.Game) error {
	if g.Grid == nil {
		return fmt.Errorf("devtools: no level loaded")
	}

	sector := campaign.SectorFor(g.Level, g.MaxLevel)
	_, err := fmt.Fprintf(w,
		"level: %d/%d\nsector: %s\nsize: %dx%d\nseed: %d\nopen_cells: %d\nlegend: %c wall, %c open, %c goal, %c spawn, %c avatar\n\n",
		g.Level, g.MaxLevel, sector.Name(), g.Grid.Width(), g.Grid.Height(), g.LevelSeed, g.Grid.OpenCount(),
		SymbolWall, SymbolOpen, SymbolGoal, SymbolSpawn, SymbolAvatar)
	if err != nil {
		return err
	}
	return DumpMaze(w, g.Grid, g.Player)
}
