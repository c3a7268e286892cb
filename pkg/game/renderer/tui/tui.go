package tui

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gookit/color"

	"extraction/pkg/engine/input"
	"extraction/pkg/engine/terminal"
	"extraction/pkg/engine/world"
	"extraction/pkg/game/gameplay"
	"extraction/pkg/game/renderer"
	"extraction/pkg/game/state"
)

// Each maze cell is drawn two characters wide so cells look roughly square
const cellChars = 2

// HoldWindow is how long a movement key counts as held after its last press.
// Terminals send no key-up events, only auto-repeated presses.
const HoldWindow = 150 * time.Millisecond

// Glyphs for a single cell, cellChars wide
type glyphSet struct {
	wall, floor, goal string
	avatar            map[world.Direction]string
}

var (
	blockGlyphs = glyphSet{
		wall:  "██",
		floor: "  ",
		goal:  "▒▒",
		avatar: map[world.Direction]string{
			world.Up: "▲▲", world.Right: "▶▶", world.Down: "▼▼", world.Left: "◀◀",
		},
	}
	asciiGlyphs = glyphSet{
		wall:  "##",
		floor: "  ",
		goal:  "GG",
		avatar: map[world.Direction]string{
			world.Up: "@^", world.Right: "@>", world.Down: "@v", world.Left: "<@",
		},
	}
)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	in       io.Reader
	out      io.Writer
	tickRate int
	glyphs   glyphSet
	plain    bool

	colorWall   color.Style
	colorFloor  color.Style
	colorGoal   color.Style
	colorPlayer color.Style
	colorTitle  color.Style
	colorSubtle color.Style
}

// New creates a new TUI renderer running at tickRate frames per second
func New(tickRate int) *TUIRenderer {
	if tickRate <= 0 {
		tickRate = 30
	}
	return &TUIRenderer{
		in:       os.Stdin,
		out:      os.Stdout,
		tickRate: tickRate,
		glyphs:   blockGlyphs,
	}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() error {
	if !terminal.IsTerminal() {
		return fmt.Errorf("tui: stdin is not a terminal")
	}

	t.colorWall = color.Style{color.FgGreen}
	t.colorFloor = color.Style{color.BgBlack}
	t.colorGoal = color.Style{color.FgLightGreen, color.OpBold}
	t.colorPlayer = color.Style{color.FgLightGreen, color.BgBlack, color.OpBold}
	t.colorTitle = color.Style{color.FgLightGreen, color.OpBold}
	t.colorSubtle = color.Style{color.FgGreen}
	return nil
}

// Run puts the terminal in raw mode on the alternate screen and runs the frame
// loop until the player quits or ctx is cancelled
func (t *TUIRenderer) Run(ctx context.Context, s *gameplay.Scheduler) error {
	raw, err := terminal.EnterRaw()
	if err != nil {
		return err
	}
	defer raw.Restore()

	fmt.Fprint(t.out, terminal.AltScreenOn+terminal.HideCursor+terminal.ClearScreen)
	defer fmt.Fprint(t.out, terminal.ShowCursor+terminal.AltScreenOff)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	codes := input.ReadTerminal(ctx, t.in)
	keys := input.NewKeyState(HoldWindow)

	ticker := time.NewTicker(time.Second / time.Duration(t.tickRate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case code, ok := <-codes:
			if !ok {
				log.Debug("terminal input closed")
				return nil
			}
			keys.Press(code, time.Now())
		case now := <-ticker.C:
			events := s.Tick(keys.Intent(now))
			if gameplay.HasEvent(events, gameplay.EventQuit) {
				return nil
			}
			cols, rows := terminal.GetSize()
			fmt.Fprint(t.out, terminal.CursorHome+t.composeFrame(s.Snapshot(), cols, rows))
		}
	}
}

// style applies s unless the renderer is in plain mode
func (t *TUIRenderer) style(s color.Style, text string) string {
	if t.plain || len(s) == 0 {
		return text
	}
	return s.Sprint(text)
}

// composeFrame builds a full screen of cols x rows characters. Lines are
// separated with CRLF for raw mode and each is cleared to the end.
func (t *TUIRenderer) composeFrame(snap state.Snapshot, cols, rows int) string {
	var lines []string

	if screen := renderer.ScreenLines(snap); screen != nil {
		top := max(0, (rows-len(screen))/2)
		for i := 0; i < top; i++ {
			lines = append(lines, "")
		}
		for i, l := range screen {
			st := t.colorSubtle
			if i == 0 {
				st = t.colorTitle
			}
			lines = append(lines, t.center(l, cols, st))
		}
	} else if snap.HasPlayer() {
		hud := renderer.HUDLines(snap)
		lines = append(lines, t.mazeLines(snap, cols, rows-len(hud)-1)...)
		lines = append(lines, "")
		for _, l := range hud {
			lines = append(lines, t.style(t.colorSubtle, l))
		}
	}

	if len(lines) > rows {
		lines = lines[:rows]
	}
	for len(lines) < rows {
		lines = append(lines, "")
	}

	var sb strings.Builder
	for i, l := range lines {
		sb.WriteString(l)
		sb.WriteString("\x1b[K")
		if i < len(lines)-1 {
			sb.WriteString("\r\n")
		}
	}
	return sb.String()
}

// center pads text so it sits in the middle of a line cols wide
func (t *TUIRenderer) center(text string, cols int, st color.Style) string {
	pad := max(0, (cols-len([]rune(text)))/2)
	return strings.Repeat(" ", pad) + t.style(st, text)
}

// mazeLines draws the part of the maze visible in a viewport of cols x rows
// characters, positioned with the shared camera policy
func (t *TUIRenderer) mazeLines(snap state.Snapshot, cols, rows int) []string {
	g := snap.Grid
	cs := float64(g.CellSize())
	viewCols := max(1, cols/cellChars)
	viewRows := max(1, rows)

	ox, oy := renderer.CameraOffset(float64(viewCols)*cs, float64(viewRows)*cs,
		float64(g.PixelWidth()), float64(g.PixelHeight()), snap.PlayerX, snap.PlayerY)

	avatarCol, avatarRow := g.CellAt(snap.PlayerX, snap.PlayerY)

	lines := make([]string, 0, viewRows)
	for sr := 0; sr < viewRows; sr++ {
		var sb strings.Builder
		row := int(math.Floor((float64(sr)*cs + cs/2 - oy) / cs))
		for sc := 0; sc < viewCols; sc++ {
			col := int(math.Floor((float64(sc)*cs + cs/2 - ox) / cs))
			sb.WriteString(t.cell(snap, col, row, avatarCol, avatarRow))
		}
		lines = append(lines, strings.TrimRight(sb.String(), " "))
	}
	return lines
}

// cell returns the styled glyph for one maze cell
func (t *TUIRenderer) cell(snap state.Snapshot, col, row, avatarCol, avatarRow int) string {
	g := snap.Grid
	switch {
	case !g.InBounds(col, row):
		return strings.Repeat(" ", cellChars)
	case col == avatarCol && row == avatarRow:
		return t.style(t.colorPlayer, t.glyphs.avatar[snap.PlayerDirection])
	case g.GoalAnchor() == world.Point{Col: col, Row: row}:
		return t.style(t.colorGoal, t.glyphs.goal)
	case g.IsOpen(col, row):
		return t.style(t.colorFloor, t.glyphs.floor)
	default:
		return t.style(t.colorWall, t.glyphs.wall)
	}
}
