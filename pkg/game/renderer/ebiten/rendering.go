package ebiten

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"extraction/pkg/engine/world"
	"extraction/pkg/game/renderer"
	"extraction/pkg/game/state"
)

// Draw renders the game to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	if e.scheduler == nil {
		return
	}

	snap := e.scheduler.Snapshot()

	if snap.HasPlayer() {
		ox, oy := e.camera(screen, &snap)
		e.drawMaze(screen, snap.Grid, ox, oy)
		e.drawAvatar(screen, &snap, ox, oy)
	}

	if lines := renderer.ScreenLines(snap); lines != nil {
		if snap.Phase == state.PhaseStart {
			e.drawStatic(screen, e.noise)
		}
		e.drawCenteredPanel(screen, lines)
	} else if snap.HasPlayer() {
		e.drawHUD(screen, renderer.HUDLines(snap), snap.Messages)
	}

	e.drawScanline(screen)
}

// camera returns the pixel offset of the maze origin on screen
func (e *EbitenRenderer) camera(screen *ebiten.Image, snap *state.Snapshot) (float32, float32) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	ox, oy := renderer.CameraOffset(float64(w), float64(h),
		float64(snap.Grid.PixelWidth()), float64(snap.Grid.PixelHeight()),
		snap.PlayerX, snap.PlayerY)
	return float32(math.Round(ox)), float32(math.Round(oy))
}

// drawMaze draws the visible cells and the pulsing extraction zone
func (e *EbitenRenderer) drawMaze(screen *ebiten.Image, g *world.Grid, ox, oy float32) {
	w, h := float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy())
	cs := float32(g.CellSize())

	g.ForEachCell(func(col, row int, s world.CellState) {
		x := ox + float32(col)*cs
		y := oy + float32(row)*cs
		if x+cs < 0 || y+cs < 0 || x > w || y > h {
			return
		}
		if s == world.Wall {
			vector.DrawFilledRect(screen, x, y, cs, cs, colorWall, false)
			vector.StrokeRect(screen, x+0.5, y+0.5, cs-1, cs-1, 1, colorWallEdge, false)
			return
		}
		vector.DrawFilledRect(screen, x, y, cs, cs, colorFloor, false)
	})

	// The zone starts at the anchor cell and extends right and down
	anchor := g.GoalAnchor()
	gx := ox + float32(anchor.Col)*cs
	gy := oy + float32(anchor.Row)*cs
	inset := cs / 4
	vector.DrawFilledRect(screen, gx+inset, gy+inset, cs-2*inset, cs-2*inset, e.goalColor(), false)
	vector.StrokeRect(screen, gx, gy, cs*2, cs*2, 2, e.goalColor(), false)
}

// drawAvatar draws the marine as a circle with a line pointing where it faces.
// The idle animation bobs the marker.
func (e *EbitenRenderer) drawAvatar(screen *ebiten.Image, snap *state.Snapshot, ox, oy float32) {
	r := float32(snap.PlayerSize / 2)
	cx := ox + float32(snap.PlayerX)
	cy := oy + float32(snap.PlayerY)

	if snap.AnimationFrame > 0 {
		cy += float32(math.Sin(float64(snap.AnimationFrame)*0.2)) * 1.5
	}

	vector.DrawFilledCircle(screen, cx, cy, r, colorPlayer, true)

	dc, dr := snap.PlayerDirection.Delta()
	vector.StrokeLine(screen, cx, cy, cx+float32(dc)*r, cy+float32(dr)*r, 2, colorPlayerFacing, true)
}

// drawHUD draws the status panel in the top left and recent messages in the bottom left
func (e *EbitenRenderer) drawHUD(screen *ebiten.Image, lines, messages []string) {
	e.drawPanel(screen, hudMargin, hudMargin, lines)

	if len(messages) == 0 {
		return
	}
	h := screen.Bounds().Dy()
	y := h - hudMargin - len(messages)*glyphHeight - panelPadding*2
	e.drawPanel(screen, hudMargin, y, messages)
}

// drawPanel draws lines of text on a translucent panel with its top-left corner at (x, y)
func (e *EbitenRenderer) drawPanel(screen *ebiten.Image, x, y int, lines []string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l))*glyphWidth)
	}
	height := len(lines) * glyphHeight

	vector.DrawFilledRect(screen, float32(x), float32(y),
		float32(width+panelPadding*2), float32(height+panelPadding*2), colorPanelBackground, false)

	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, x+panelPadding, y+panelPadding+i*glyphHeight)
	}
}

// drawCenteredPanel draws a panel in the middle of the screen
func (e *EbitenRenderer) drawCenteredPanel(screen *ebiten.Image, lines []string) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l))*glyphWidth)
	}
	x := (w - width) / 2
	y := (h - len(lines)*glyphHeight) / 2
	e.drawPanel(screen, x-panelPadding, y-panelPadding, lines)
}
