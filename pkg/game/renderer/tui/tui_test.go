package tui

import (
	"os"
	"strings"
	"testing"

	"extraction/pkg/game/gameplay"
	"extraction/pkg/game/locale"
	"extraction/pkg/game/state"
)

func TestMain(m *testing.M) {
	if err := locale.Init("en"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func plainRenderer() *TUIRenderer {
	return &TUIRenderer{glyphs: asciiGlyphs, plain: true, tickRate: 30}
}

// frameLines splits a composed frame back into its visible lines
func frameLines(frame string) []string {
	lines := strings.Split(frame, "\r\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\x1b[K")
	}
	return lines
}

func TestComposeFrame_Level(t *testing.T) {
	g := gameplay.NewGame(10, 1, 42)
	gameplay.StartGame(g)

	lines := frameLines(plainRenderer().composeFrame(g.Snapshot(), 80, 24))
	if len(lines) != 24 {
		t.Fatalf("got %d lines, want 24", len(lines))
	}

	// A 15x15 maze in a 40x20 cell viewport is centred: column 0 lands on
	// screen cell 12 and row 0 on screen row 2.
	wantTop := strings.Repeat(" ", 24) + strings.Repeat("##", 15)
	if lines[2] != wantTop {
		t.Errorf("top wall row = %q, want %q", lines[2], wantTop)
	}
	if got := lines[3][26:28]; got != "@^" {
		t.Errorf("avatar glyph = %q, want %q", got, "@^")
	}
	if got := lines[15][50:52]; got != "GG" {
		t.Errorf("goal glyph = %q, want %q", got, "GG")
	}
	if !strings.HasPrefix(lines[21], "Level 1") {
		t.Errorf("hud line = %q", lines[21])
	}
}

func TestComposeFrame_StartScreen(t *testing.T) {
	g := gameplay.NewGame(10, 1, 42)
	frame := plainRenderer().composeFrame(g.Snapshot(), 80, 24)

	if !strings.Contains(frame, "EXTRACTION") {
		t.Errorf("start screen missing title:\n%s", frame)
	}
	if strings.Contains(frame, "##") {
		t.Error("start screen should not draw a maze")
	}
}

func TestComposeFrame_SmallTerminal(t *testing.T) {
	g := gameplay.NewGame(10, 1, 42)
	gameplay.StartGame(g)

	lines := frameLines(plainRenderer().composeFrame(g.Snapshot(), 20, 8))
	if len(lines) != 8 {
		t.Fatalf("got %d lines, want 8", len(lines))
	}

	// The maze no longer fits so the camera follows the avatar; it must be visible
	found := false
	for _, l := range lines {
		if strings.Contains(l, "@^") {
			found = true
		}
	}
	if !found {
		t.Errorf("avatar not visible in small viewport:\n%s", strings.Join(lines, "\n"))
	}
}

func TestComposeFrame_LevelComplete(t *testing.T) {
	snap := state.Snapshot{Phase: state.PhaseLevelComplete, Level: 2}
	frame := plainRenderer().composeFrame(snap, 80, 24)
	if !strings.Contains(frame, "Level 2 complete.") {
		t.Errorf("level complete screen:\n%s", frame)
	}
}
