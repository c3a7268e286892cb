// Package gameplay tests the campaign state machine, the per-tick step, and the
// scheduler's event dispatch.
package gameplay

import (
	"os"
	"testing"

	engineinput "extraction/pkg/engine/input"
	"extraction/pkg/engine/world"
	"extraction/pkg/game/campaign"
	"extraction/pkg/game/locale"
	"extraction/pkg/game/state"
)

func TestMain(m *testing.M) {
	if err := locale.Init("en"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

var confirm = engineinput.Intent{Action: engineinput.ActionConfirm}

// startedGame creates a seeded game and confirms past the start screen.
func startedGame(t *testing.T, maxLevel int, seed int64) *state.Game {
	t.Helper()
	g := NewGame(maxLevel, 1, seed)
	events := Step(g, confirm)
	if !HasEvent(events, EventGameStart) || !HasEvent(events, EventLevelStart) {
		t.Fatalf("confirm on start screen gave %v, want GameStart and LevelStart", events)
	}
	return g
}

// pathTo returns the cells from start to goal (inclusive) over Open cells, or nil.
func pathTo(grid *world.Grid, start, goal world.Point) []world.Point {
	prev := map[world.Point]world.Point{start: start}
	queue := []world.Point{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current == goal {
			break
		}
		for _, n := range current.Neighbors() {
			if _, seen := prev[n]; seen || !grid.IsOpen(n.Col, n.Row) {
				continue
			}
			prev[n] = current
			queue = append(queue, n)
		}
	}
	if _, ok := prev[goal]; !ok {
		return nil
	}
	var path []world.Point
	for p := goal; p != start; p = prev[p] {
		path = append([]world.Point{p}, path...)
	}
	return append([]world.Point{start}, path...)
}

// teleportToGoal places the avatar at the centre of the goal anchor cell.
func teleportToGoal(g *state.Game) {
	anchor := g.Grid.GoalAnchor()
	size := float64(g.Grid.CellSize())
	g.Player.X = (float64(anchor.Col) + 0.5) * size
	g.Player.Y = (float64(anchor.Row) + 0.5) * size
}

func TestNewGame_StartScreen(t *testing.T) {
	g := NewGame(10, 1, 5)
	if g.Phase != state.PhaseStart {
		t.Errorf("phase = %v, want Start", g.Phase)
	}
	if events := Step(g, engineinput.Intent{DX: 1}); len(events) != 0 {
		t.Errorf("movement on start screen gave events %v", events)
	}
	if g.Grid != nil || g.Player != nil {
		t.Error("start screen built a level")
	}
}

func TestStartGame_InitializesLevelOne(t *testing.T) {
	g := startedGame(t, 10, 99)
	if g.Phase != state.PhasePlaying || g.Level != 1 {
		t.Fatalf("phase/level = %v/%d, want Playing/1", g.Phase, g.Level)
	}
	if g.Grid.Width() != 15 || g.Grid.Height() != 15 {
		t.Errorf("level 1 maze = %dx%d, want 15x15", g.Grid.Width(), g.Grid.Height())
	}
	if g.Player.X != 30 || g.Player.Y != 30 {
		t.Errorf("spawn = (%v,%v), want (30,30)", g.Player.X, g.Player.Y)
	}
	if len(g.Messages) == 0 {
		t.Error("no level start message")
	}
}

func TestStartLevel(t *testing.T) {
	g := NewGame(10, 3, 7)
	Step(g, confirm)
	if g.Level != 3 {
		t.Fatalf("level = %d, want 3", g.Level)
	}
	if g.Grid.Width() != 19 || g.Grid.Height() != 19 {
		t.Errorf("level 3 maze = %dx%d, want 19x19", g.Grid.Width(), g.Grid.Height())
	}

	// out of range start levels fall back to 1
	if got := NewGame(5, 9, 7).StartLevel; got != 1 {
		t.Errorf("StartLevel = %d, want 1", got)
	}
}

func TestStep_WalkToGoal(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g := startedGame(t, 10, seed)
		start := g.Player.Cell(g.Grid.CellSize())
		path := pathTo(g.Grid, start, g.Grid.GoalAnchor())
		if path == nil {
			t.Fatalf("seed %d: no path to goal", seed)
		}

		stepsPerCell := int(float64(g.Grid.CellSize()) / g.Player.Speed)
		completed := false
		moves := 0
	walk:
		for i := 1; i < len(path); i++ {
			dx, dy := path[i].Col-path[i-1].Col, path[i].Row-path[i-1].Row
			for s := 0; s < stepsPerCell; s++ {
				events := Step(g, engineinput.Intent{DX: dx, DY: dy})
				if HasEvent(events, EventMove) {
					moves++
				}
				if HasEvent(events, EventLevelComplete) {
					completed = true
					break walk
				}
			}
		}

		if !completed {
			t.Fatalf("seed %d: walked the path without completing the level", seed)
		}
		if g.Phase != state.PhaseLevelComplete {
			t.Errorf("seed %d: phase = %v, want LevelComplete", seed, g.Phase)
		}
		if moves == 0 {
			t.Errorf("seed %d: no move events", seed)
		}

		// movement is ignored once the level is complete
		x := g.Player.X
		Step(g, engineinput.Intent{DX: -1})
		if g.Player.X != x {
			t.Errorf("seed %d: avatar moved after level complete", seed)
		}
	}
}

func TestAdvanceLevel_ThroughCampaign(t *testing.T) {
	g := startedGame(t, 3, 11)

	for level := 1; level <= 3; level++ {
		if g.Level != level || g.Phase != state.PhasePlaying {
			t.Fatalf("level/phase = %d/%v, want %d/Playing", g.Level, g.Phase, level)
		}
		wantW, wantH := campaign.Dimensions(level)
		if g.Grid.Width() != wantW || g.Grid.Height() != wantH {
			t.Errorf("level %d maze = %dx%d, want %dx%d", level, g.Grid.Width(), g.Grid.Height(), wantW, wantH)
		}

		teleportToGoal(g)
		if !HasEvent(Step(g, engineinput.Intent{}), EventLevelComplete) {
			t.Fatalf("level %d: no LevelComplete at goal", level)
		}

		events := Step(g, confirm)
		if level < 3 && !HasEvent(events, EventLevelStart) {
			t.Errorf("level %d: advance gave %v, want LevelStart", level, events)
		}
		if level == 3 && !HasEvent(events, EventCampaignComplete) {
			t.Errorf("final level: advance gave %v, want CampaignComplete", events)
		}
	}

	if g.Phase != state.PhaseStart {
		t.Errorf("phase after campaign = %v, want Start", g.Phase)
	}
	if g.Level != 3 {
		t.Errorf("level after campaign = %d, want 3", g.Level)
	}
	if g.CampaignsCompleted != 1 {
		t.Errorf("CampaignsCompleted = %d, want 1", g.CampaignsCompleted)
	}

	// a new campaign starts over at level 1
	Step(g, confirm)
	if g.Level != 1 || g.Phase != state.PhasePlaying {
		t.Errorf("new campaign level/phase = %d/%v, want 1/Playing", g.Level, g.Phase)
	}
}

func TestResetLevel_SameMaze(t *testing.T) {
	g := startedGame(t, 10, 0)
	before := g.Grid
	seed := g.LevelSeed

	g.Player.X += 4
	events := Step(g, engineinput.Intent{Action: engineinput.ActionResetLevel})
	if !HasEvent(events, EventLevelReset) {
		t.Fatalf("reset gave %v, want LevelReset", events)
	}
	if !g.Grid.Equal(before) {
		t.Error("reset produced a different maze")
	}
	if g.LevelSeed != seed {
		t.Errorf("LevelSeed = %d, want %d", g.LevelSeed, seed)
	}
	if g.Player.X != 30 || g.Player.Y != 30 {
		t.Errorf("avatar not respawned: (%v,%v)", g.Player.X, g.Player.Y)
	}
}

func TestSeededCampaignsMatch(t *testing.T) {
	a := startedGame(t, 10, 1234)
	b := startedGame(t, 10, 1234)
	if !a.Grid.Equal(b.Grid) {
		t.Error("same base seed gave different level 1 mazes")
	}
	if a.ID == b.ID {
		t.Error("games share a session id")
	}
}

func TestStep_ControlEvents(t *testing.T) {
	g := NewGame(10, 1, 3)
	tests := []struct {
		action engineinput.Action
		want   EventKind
	}{
		{engineinput.ActionQuit, EventQuit},
		{engineinput.ActionToggleMute, EventToggleMute},
		{engineinput.ActionVolumeUp, EventVolumeUp},
		{engineinput.ActionVolumeDown, EventVolumeDown},
	}
	for _, tt := range tests {
		events := Step(g, engineinput.Intent{Action: tt.action})
		if !HasEvent(events, tt.want) {
			t.Errorf("%s gave %v, want %v", engineinput.ActionName(tt.action), events, tt.want)
		}
	}
	if g.Phase != state.PhaseStart {
		t.Errorf("control actions changed phase to %v", g.Phase)
	}
}

func TestStep_ResetIgnoredOutsidePlay(t *testing.T) {
	g := NewGame(10, 1, 3)
	if events := Step(g, engineinput.Intent{Action: engineinput.ActionResetLevel}); len(events) != 0 {
		t.Errorf("reset on start screen gave %v", events)
	}
}

func TestClampUnit(t *testing.T) {
	for in, want := range map[int]int{-5: -1, -1: -1, 0: 0, 1: 1, 9: 1} {
		if got := clampUnit(in); got != want {
			t.Errorf("clampUnit(%d) = %d, want %d", in, got, want)
		}
	}
}
