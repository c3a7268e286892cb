// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

// CellState is the topology of a single grid cell.
type CellState uint8

// Cell states. A freshly built grid is entirely Wall.
const (
	Wall CellState = iota
	Open
)

// String returns the string representation of a cell state
func (s CellState) String() string {
	switch s {
	case Wall:
		return "Wall"
	case Open:
		return "Open"
	default:
		return "Unknown"
	}
}

// Point addresses a cell by column and row.
type Point struct {
	Col int
	Row int
}

// Add returns the point offset by the given column and row deltas
func (p Point) Add(colDelta, rowDelta int) Point {
	return Point{Col: p.Col + colDelta, Row: p.Row + rowDelta}
}

// Step returns the point n cells away in the given direction
func (p Point) Step(dir Direction, n int) Point {
	colDelta, rowDelta := dir.Delta()
	return p.Add(colDelta*n, rowDelta*n)
}

// Midpoint returns the cell halfway between p and q.
// For carving-lattice neighbours (two cells apart on one axis) this is the connector cell.
func (p Point) Midpoint(q Point) Point {
	return Point{Col: p.Col + (q.Col-p.Col)/2, Row: p.Row + (q.Row-p.Row)/2}
}

// Neighbors returns the four orthogonally adjacent points in Up, Right, Down, Left order
func (p Point) Neighbors() []Point {
	neighbors := make([]Point, 0, 4)
	for _, dir := range AllDirections() {
		neighbors = append(neighbors, p.Step(dir, 1))
	}
	return neighbors
}
