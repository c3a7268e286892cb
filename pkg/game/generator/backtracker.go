package generator

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/stack"

	"extraction/pkg/engine/world"
)

// BacktrackerGenerator carves mazes with a randomized iterative depth-first search
type BacktrackerGenerator struct{}

// Name returns the name of this generator
func (g *BacktrackerGenerator) Name() string {
	return "Recursive Backtracker"
}

// Generate creates a sealed maze of at least width x height cells.
// Dimensions are normalized to odd values of at least world.MinDimension.
func (g *BacktrackerGenerator) Generate(width, height int, rng RNG) *world.Grid {
	grid := world.NewGrid(width, height)

	Carve(grid, rng)
	OpenGoal(grid)
	if EnsureGoalReachable(grid) {
		log.Debug("goal connector carved", "width", grid.Width(), "height", grid.Height())
	}

	grid.Seal()

	if msg := grid.Validate(); msg != "" {
		panic(fmt.Sprintf("generator: invalid maze %dx%d: %s", grid.Width(), grid.Height(), msg))
	}

	return grid
}

// Carve runs the depth-first carve from the origin cell (1,1).
// Every odd-coordinate interior cell ends up Open and joined to the origin by
// exactly one path.
func Carve(grid *world.Grid, rng RNG) {
	origin := grid.Origin()
	grid.Carve(origin.Col, origin.Row)

	s := stack.New[world.Point]()
	s.Push(origin)

	candidates := make([]world.Point, 0, 4)
	for s.Size() > 0 {
		current := s.Peek()

		candidates = candidates[:0]
		for _, dir := range world.AllDirections() {
			next := current.Step(dir, 2)
			if grid.IsInterior(next.Col, next.Row) && !grid.IsOpen(next.Col, next.Row) {
				candidates = append(candidates, next)
			}
		}

		if len(candidates) == 0 {
			s.Pop()
			continue
		}

		next := candidates[rng.Intn(len(candidates))]
		connector := current.Midpoint(next)
		grid.Carve(connector.Col, connector.Row)
		grid.Carve(next.Col, next.Row)
		s.Push(next)
	}
}

// OpenGoal forces the 2x2 goal block open regardless of its prior state
func OpenGoal(grid *world.Grid) {
	for _, p := range grid.GoalBlock() {
		grid.Carve(p.Col, p.Row)
	}
}

// EnsureGoalReachable verifies the goal block is connected to the origin.
// When it is not, a single connector is carved between the goal block and the
// origin's region. Returns true if a connector was carved.
func EnsureGoalReachable(grid *world.Grid) bool {
	if grid.GoalReachable() {
		return false
	}

	reachable := grid.Reachable(grid.Origin())

	// Prefer a single wall cell that separates a goal cell from the origin region
	for _, p := range grid.GoalBlock() {
		for _, dir := range world.AllDirections() {
			connector := p.Step(dir, 1)
			beyond := p.Step(dir, 2)
			if !grid.IsInterior(connector.Col, connector.Row) || grid.IsOpen(connector.Col, connector.Row) {
				continue
			}
			if reachable.Has(beyond) {
				grid.Carve(connector.Col, connector.Row)
				return true
			}
		}
	}

	// Otherwise carve a corridor from the goal anchor toward the origin region
	carveCorridor(grid, grid.GoalAnchor(), reachable)
	return true
}

// carveCorridor carves a straight path left along the anchor row, then up the
// origin column, stopping as soon as it touches the reachable region.
func carveCorridor(grid *world.Grid, from world.Point, reachable mapset.Set[world.Point]) {
	p := from
	origin := grid.Origin()
	for p.Col > origin.Col {
		p = p.Step(world.Left, 1)
		if reachable.Has(p) {
			return
		}
		grid.Carve(p.Col, p.Row)
	}
	for p.Row > origin.Row {
		p = p.Step(world.Up, 1)
		if reachable.Has(p) {
			return
		}
		grid.Carve(p.Col, p.Row)
	}
}
