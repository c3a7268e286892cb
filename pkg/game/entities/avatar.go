// Package entities contains game-specific entity types for Extraction.
// These are the movable actors that live on top of the engine's world grid.
package entities

import (
	"math"

	"extraction/pkg/engine/world"
)

// Avatar defaults
const (
	DefaultSize  = 16.0 // Bounding box side in pixels
	DefaultSpeed = 4.0  // Pixels moved per input step

	// IdleTicks is how many update ticks without movement pass before the idle
	// animation starts advancing (about 100ms at 60 ticks per second).
	IdleTicks = 6
)

// Collider answers pixel wall queries. *world.Grid satisfies it.
type Collider interface {
	IsWall(x, y float64) bool
}

// GoalZone answers pixel goal queries. *world.Grid satisfies it.
type GoalZone interface {
	IsInGoalZone(x, y float64) bool
}

// Avatar is the player's marine. X and Y are the centre of a square bounding
// box of side Size, in pixels.
type Avatar struct {
	X     float64
	Y     float64
	Size  float64
	Speed float64

	Direction      world.Direction // Facing, cosmetic
	AnimationFrame int             // Advances while idle

	idleTicks int
}

// NewAvatar creates an avatar at the given pixel position, facing up
func NewAvatar(x, y float64) *Avatar {
	return &Avatar{
		X:         x,
		Y:         y,
		Size:      DefaultSize,
		Speed:     DefaultSpeed,
		Direction: world.Up,
	}
}

// Move attempts one input step of (dx, dy), each in {-1, 0, 1}.
// The axes are resolved independently so the avatar slides along walls when a
// diagonal step is half blocked. Returns true if the position changed.
func (a *Avatar) Move(dx, dy int, maze Collider) bool {
	if dx == 0 && dy == 0 {
		return false
	}

	newX := a.X + float64(dx)*a.Speed
	newY := a.Y + float64(dy)*a.Speed
	half := a.Size / 2

	cornersX := [2]float64{newX - half, newX + half}
	cornersY := [2]float64{newY - half, newY + half}

	// X probes use the candidate corner X with the unmoved centre Y
	canMoveX := true
	for _, cx := range cornersX {
		if maze.IsWall(cx, a.Y) {
			canMoveX = false
			break
		}
	}

	// Y probes use the unmoved centre X with the candidate corner Y
	canMoveY := true
	for _, cy := range cornersY {
		if maze.IsWall(a.X, cy) {
			canMoveY = false
			break
		}
	}

	movedX := canMoveX && dx != 0
	movedY := canMoveY && dy != 0
	if movedX {
		a.X = newX
	}
	if movedY {
		a.Y = newY
	}

	a.idleTicks = 0
	a.Direction = facing(dx, dy)

	return movedX || movedY
}

// facing resolves the direction for a non-zero step; horizontal wins ties
func facing(dx, dy int) world.Direction {
	switch {
	case dx > 0:
		return world.Right
	case dx < 0:
		return world.Left
	case dy > 0:
		return world.Down
	default:
		return world.Up
	}
}

// Update advances the cosmetic idle animation by one tick
func (a *Avatar) Update() {
	a.idleTicks++
	if a.idleTicks > IdleTicks {
		a.AnimationFrame++
	}
}

// Idle reports whether the idle animation is running
func (a *Avatar) Idle() bool {
	return a.idleTicks > IdleTicks
}

// Reset moves the avatar back to a spawn position and clears its facing and animation
func (a *Avatar) Reset(x, y float64) {
	a.X = x
	a.Y = y
	a.Direction = world.Up
	a.AnimationFrame = 0
	a.idleTicks = 0
}

// ReachedGoal checks if the avatar's centre is inside the goal zone
func (a *Avatar) ReachedGoal(zone GoalZone) bool {
	return zone.IsInGoalZone(a.X, a.Y)
}

// Cell returns the grid cell containing the avatar's centre. It floors like
// Grid.CellAt so a centre left of or above the origin maps to -1.
func (a *Avatar) Cell(cellSize int) world.Point {
	size := float64(cellSize)
	return world.Point{Col: int(math.Floor(a.X / size)), Row: int(math.Floor(a.Y / size))}
}
