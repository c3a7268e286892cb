// Package generator tests maze carving: odd dimensions, spanning-tree shape,
// goal reachability, and seeded determinism.
package generator

import (
	"math/rand"
	"testing"

	"extraction/pkg/engine/world"
)

// countEdges returns the number of orthogonally adjacent Open cell pairs.
func countEdges(grid *world.Grid) int {
	edges := 0
	grid.ForEachCell(func(col, row int, state world.CellState) {
		if state != world.Open {
			return
		}
		if grid.IsOpen(col+1, row) {
			edges++
		}
		if grid.IsOpen(col, row+1) {
			edges++
		}
	})
	return edges
}

func TestGenerate_OddDimensions(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, dims := range [][2]int{{15, 15}, {19, 18}, {16, 16}, {23, 21}, {4, 4}, {0, -2}} {
		grid := DefaultGenerator.Generate(dims[0], dims[1], rng)
		if grid.Width()%2 == 0 || grid.Height()%2 == 0 {
			t.Errorf("Generate(%d,%d) dims %dx%d, want odd", dims[0], dims[1], grid.Width(), grid.Height())
		}
		if grid.Width() < world.MinDimension || grid.Height() < world.MinDimension {
			t.Errorf("Generate(%d,%d) dims %dx%d below minimum", dims[0], dims[1], grid.Width(), grid.Height())
		}
		if !grid.Sealed() {
			t.Errorf("Generate(%d,%d) returned unsealed grid", dims[0], dims[1])
		}
	}
}

func TestCarve_SpanningTree(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		grid := world.NewGrid(15+int(seed%3)*4, 15+int(seed%4)*2)
		Carve(grid, rng)

		open := grid.OpenCount()
		reachable := grid.Reachable(grid.Origin()).Size()
		if reachable != open {
			t.Errorf("seed %d: reachable %d of %d open cells", seed, reachable, open)
		}
		if edges := countEdges(grid); edges != open-1 {
			t.Errorf("seed %d: %d edges for %d cells, want %d", seed, edges, open, open-1)
		}

		// every odd lattice cell is visited
		for row := 1; row < grid.Height()-1; row += 2 {
			for col := 1; col < grid.Width()-1; col += 2 {
				if !grid.IsOpen(col, row) {
					t.Errorf("seed %d: lattice cell (%d,%d) not carved", seed, col, row)
				}
			}
		}
	}
}

func TestCarve_KeepsOuterWall(t *testing.T) {
	grid := world.NewGrid(21, 17)
	Carve(grid, rand.New(rand.NewSource(7)))
	grid.ForEachCell(func(col, row int, state world.CellState) {
		if grid.IsOnPerimeter(col, row) && state == world.Open {
			t.Errorf("perimeter cell (%d,%d) carved", col, row)
		}
	})
}

func TestGenerate_GoalReachable(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		rng := rand.New(rand.NewSource(seed))
		level := int(seed%10) + 1
		grid := DefaultGenerator.Generate(15+level*2, 15+level, rng)

		for _, p := range grid.GoalBlock() {
			if !grid.IsOpen(p.Col, p.Row) {
				t.Errorf("seed %d: goal cell %v not open", seed, p)
			}
		}
		reachable := grid.Reachable(grid.Origin())
		anchor := grid.GoalAnchor()
		if !reachable.Has(anchor) {
			t.Errorf("seed %d: goal anchor %v unreachable from origin", seed, anchor)
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a := DefaultGenerator.Generate(25, 21, rand.New(rand.NewSource(42)))
	b := DefaultGenerator.Generate(25, 21, rand.New(rand.NewSource(42)))
	if !a.Equal(b) {
		t.Error("same seed produced different mazes")
	}

	c := DefaultGenerator.Generate(25, 21, rand.New(rand.NewSource(43)))
	if a.Equal(c) {
		t.Error("different seeds produced identical mazes")
	}
}

func TestEnsureGoalReachable_AlreadyConnected(t *testing.T) {
	grid := world.NewGrid(15, 15)
	Carve(grid, rand.New(rand.NewSource(3)))
	OpenGoal(grid)
	before := grid.OpenCount()
	if EnsureGoalReachable(grid) {
		t.Error("EnsureGoalReachable() = true on connected maze")
	}
	if grid.OpenCount() != before {
		t.Errorf("OpenCount changed from %d to %d", before, grid.OpenCount())
	}
}

func TestEnsureGoalReachable_SingleConnector(t *testing.T) {
	grid := world.NewGrid(7, 7)
	// origin region: top row corridor dropping down column 5 to row 2
	for col := 1; col <= 5; col++ {
		grid.Carve(col, 1)
	}
	grid.Carve(5, 2)
	OpenGoal(grid)
	// goal block occupies rows 4-5; row 3 is the separating wall
	if grid.GoalReachable() {
		t.Fatal("setup: goal already reachable")
	}

	before := grid.OpenCount()
	if !EnsureGoalReachable(grid) {
		t.Fatal("EnsureGoalReachable() = false, want true")
	}
	if got := grid.OpenCount() - before; got != 1 {
		t.Errorf("carved %d cells, want 1", got)
	}
	if !grid.GoalReachable() {
		t.Error("goal still unreachable after EnsureGoalReachable")
	}
}

func TestEnsureGoalReachable_Corridor(t *testing.T) {
	grid := world.NewGrid(9, 9)
	grid.Carve(1, 1)
	OpenGoal(grid)

	if !EnsureGoalReachable(grid) {
		t.Fatal("EnsureGoalReachable() = false, want true")
	}
	if !grid.GoalReachable() {
		t.Error("goal still unreachable after corridor carve")
	}
	if msg := grid.Validate(); msg != "" {
		t.Errorf("Validate() = %q after corridor carve", msg)
	}
}
