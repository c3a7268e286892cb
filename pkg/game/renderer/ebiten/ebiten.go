package ebiten

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	engineinput "extraction/pkg/engine/input"
	"extraction/pkg/game/gameplay"
	"extraction/pkg/game/locale"
)

// EbitenRenderer is the windowed frontend. Ebiten calls Update at a fixed 60
// ticks per second, which is the game's frame scheduler: each Update reads the
// keyboard and gamepads and runs one Scheduler.Tick.
type EbitenRenderer struct {
	windowWidth  int
	windowHeight int

	ctx       context.Context
	scheduler *gameplay.Scheduler
	keys      *engineinput.KeyState

	tick  int
	noise *rand.Rand

	windowOpenedLogged bool
}

// New creates a new Ebiten renderer
func New() *EbitenRenderer {
	return &EbitenRenderer{
		windowWidth:  screenWidth,
		windowHeight: screenHeight,
		keys:         engineinput.NewKeyState(0),
		noise:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Init sets up the window
func (e *EbitenRenderer) Init() error {
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(locale.Get("TITLE"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(ticksPerSecond)
	return nil
}

// Run opens the window and blocks until the player quits or ctx is cancelled
func (e *EbitenRenderer) Run(ctx context.Context, s *gameplay.Scheduler) error {
	e.ctx = ctx
	e.scheduler = s

	err := ebiten.RunGame(e)
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// Update handles input and advances the game one tick (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Info("main window opened", "width", w, "height", h)
	}

	if e.ctx != nil && e.ctx.Err() != nil {
		return ebiten.Termination
	}

	e.pollKeyboard()
	e.pollGamepads()

	events := e.scheduler.Tick(e.keys.Intent(time.Now()))
	e.tick++

	if gameplay.HasEvent(events, gameplay.EventQuit) {
		return ebiten.Termination
	}
	return nil
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.windowWidth, e.windowHeight
}
