package world

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"
)

// Reachable returns every Open cell connected to from through orthogonal steps.
// An empty set is returned when from is not Open.
func (g *Grid) Reachable(from Point) mapset.Set[Point] {
	visited := mapset.New[Point]()
	if !g.IsOpen(from.Col, from.Row) {
		return visited
	}

	q := queue.New[Point]()
	q.Enqueue(from)
	visited.Put(from)

	for !q.Empty() {
		current := q.Dequeue()
		for _, n := range current.Neighbors() {
			if visited.Has(n) || !g.IsOpen(n.Col, n.Row) {
				continue
			}
			visited.Put(n)
			q.Enqueue(n)
		}
	}

	return visited
}

// IsReachable checks if to can be reached from from over Open cells
func (g *Grid) IsReachable(from, to Point) bool {
	if !g.IsOpen(to.Col, to.Row) {
		return false
	}
	return g.Reachable(from).Has(to)
}

// GoalReachable checks if any goal block cell is reachable from the origin
func (g *Grid) GoalReachable() bool {
	reachable := g.Reachable(g.Origin())
	for _, p := range g.GoalBlock() {
		if reachable.Has(p) {
			return true
		}
	}
	return false
}
