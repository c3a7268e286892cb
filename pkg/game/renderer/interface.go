package renderer

import (
	"context"

	"extraction/pkg/game/gameplay"
)

// Renderer defines the interface for game frontends.
// Implementations include TUI (terminal) and Ebiten. A frontend owns the frame
// loop: it reads input, calls Scheduler.Tick once per frame and draws
// Scheduler.Snapshot.
type Renderer interface {
	// Init prepares the frontend (colors, window settings, terminal mode)
	Init() error

	// Run drives the game until the player quits or ctx is cancelled
	Run(ctx context.Context, s *gameplay.Scheduler) error
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}
