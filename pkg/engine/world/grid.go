package world

import (
	"fmt"
	"math"
)

// DefaultCellSize is the pixel length of one cell edge
const DefaultCellSize = 20

// MinDimension is the smallest width or height a grid is built with.
// Anything smaller cannot hold the carve origin and a separate 2x2 goal block.
const MinDimension = 5

// Grid represents the maze topology: a rectangular, row-major block of cells.
// Cells are mutable only until Seal is called; after that the grid is read-only
// and safe to share between the simulation and a renderer.
type Grid struct {
	cells    []CellState
	width    int
	height   int
	cellSize int
	sealed   bool
}

// NormalizeDimension clamps n to MinDimension and rounds it up to the next odd number
func NormalizeDimension(n int) int {
	if n < MinDimension {
		n = MinDimension
	}
	if n%2 == 0 {
		n++
	}
	return n
}

// NewGrid creates a new all-wall grid. Requested dimensions are normalized with
// NormalizeDimension, so the result is always odd and at least MinDimension.
func NewGrid(width, height int) *Grid {
	return NewGridWithCellSize(width, height, DefaultCellSize)
}

// NewGridWithCellSize is NewGrid with an explicit pixel cell size
func NewGridWithCellSize(width, height, cellSize int) *Grid {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	g := &Grid{
		width:    NormalizeDimension(width),
		height:   NormalizeDimension(height),
		cellSize: cellSize,
	}
	g.cells = make([]CellState, g.width*g.height)
	return g
}

// Width returns the number of columns in the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid
func (g *Grid) Height() int {
	return g.height
}

// CellSize returns the pixel length of one cell edge
func (g *Grid) CellSize() int {
	return g.cellSize
}

// PixelWidth returns the width of the grid in pixels
func (g *Grid) PixelWidth() int {
	return g.width * g.cellSize
}

// PixelHeight returns the height of the grid in pixels
func (g *Grid) PixelHeight() int {
	return g.height * g.cellSize
}

// InBounds checks if a col/row position is within grid bounds
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.width && row >= 0 && row < g.height
}

// IsInterior checks if a position is strictly inside the outer wall ring
func (g *Grid) IsInterior(col, row int) bool {
	return col >= 1 && col < g.width-1 && row >= 1 && row < g.height-1
}

// IsOnPerimeter checks if a position is on the edge of the grid
func (g *Grid) IsOnPerimeter(col, row int) bool {
	return g.InBounds(col, row) && !g.IsInterior(col, row)
}

// State returns the state of a cell. Out-of-bounds positions are Wall.
func (g *Grid) State(col, row int) CellState {
	if !g.InBounds(col, row) {
		return Wall
	}
	return g.cells[row*g.width+col]
}

// IsOpen returns true if the cell at col/row is in bounds and Open
func (g *Grid) IsOpen(col, row int) bool {
	return g.State(col, row) == Open
}

// Carve opens the cell at col/row. Returns false if the position is out of
// bounds or the grid has been sealed.
func (g *Grid) Carve(col, row int) bool {
	if g.sealed || !g.InBounds(col, row) {
		return false
	}
	g.cells[row*g.width+col] = Open
	return true
}

// Seal freezes the topology. Further Carve calls are rejected.
func (g *Grid) Seal() {
	g.sealed = true
}

// Sealed reports whether the topology is frozen
func (g *Grid) Sealed() bool {
	return g.sealed
}

// Origin returns the carve origin cell
func (g *Grid) Origin() Point {
	return Point{Col: 1, Row: 1}
}

// GoalAnchor returns the bottom-right interior cell that anchors the goal block
func (g *Grid) GoalAnchor() Point {
	return Point{Col: g.width - 2, Row: g.height - 2}
}

// GoalBlock returns the four cells of the 2x2 goal block, anchor first
func (g *Grid) GoalBlock() []Point {
	a := g.GoalAnchor()
	return []Point{a, a.Add(-1, 0), a.Add(0, -1), a.Add(-1, -1)}
}

// InGoalBlock reports whether a cell is one of the four GoalBlock cells
func (g *Grid) InGoalBlock(col, row int) bool {
	a := g.GoalAnchor()
	return col >= a.Col-1 && col <= a.Col && row >= a.Row-1 && row <= a.Row
}

// CellAt converts pixel coordinates to cell coordinates.
// Flooring keeps negative pixels out of column/row 0.
func (g *Grid) CellAt(x, y float64) (col, row int) {
	size := float64(g.cellSize)
	return int(math.Floor(x / size)), int(math.Floor(y / size))
}

// IsWall reports whether the pixel lies in a wall cell. Anything outside the
// grid is a wall, so collision probes can never leave the maze.
func (g *Grid) IsWall(x, y float64) bool {
	if math.IsNaN(x) || math.IsNaN(y) {
		return true
	}
	col, row := g.CellAt(x, y)
	return !g.IsOpen(col, row)
}

// IsInGoalZone reports whether the pixel lies in the goal zone: the cells at
// or right of and below GoalAnchor. The zone only shares the anchor with the
// carved block. Pixels outside the grid are never in the goal.
func (g *Grid) IsInGoalZone(x, y float64) bool {
	if math.IsNaN(x) || math.IsNaN(y) {
		return false
	}
	col, row := g.CellAt(x, y)
	if !g.InBounds(col, row) {
		return false
	}
	a := g.GoalAnchor()
	return col >= a.Col && row >= a.Row
}

// ForEachCell iterates over all cells in row-major order
func (g *Grid) ForEachCell(fn func(col, row int, state CellState)) {
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			fn(col, row, g.cells[row*g.width+col])
		}
	}
}

// OpenCount returns the number of Open cells
func (g *Grid) OpenCount() int {
	n := 0
	for _, s := range g.cells {
		if s == Open {
			n++
		}
	}
	return n
}

// Equal reports whether two grids have the same dimensions and cells
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Validate checks the grid for common issues and returns an error description or empty string if valid
func (g *Grid) Validate() string {
	if g.width < MinDimension || g.height < MinDimension {
		return fmt.Sprintf("Grid is smaller than %dx%d", MinDimension, MinDimension)
	}

	if g.width%2 == 0 || g.height%2 == 0 {
		return "Grid has even dimensions"
	}

	origin := g.Origin()
	if !g.IsOpen(origin.Col, origin.Row) {
		return "Origin cell is not open"
	}

	for _, p := range g.GoalBlock() {
		if !g.IsOpen(p.Col, p.Row) {
			return fmt.Sprintf("Goal cell %d:%d is not open", p.Col, p.Row)
		}
	}

	for col := 0; col < g.width; col++ {
		if g.IsOpen(col, 0) || g.IsOpen(col, g.height-1) {
			return "Outer wall ring is broken"
		}
	}
	for row := 0; row < g.height; row++ {
		if g.IsOpen(0, row) || g.IsOpen(g.width-1, row) {
			return "Outer wall ring is broken"
		}
	}

	return ""
}
