package gameplay

import (
	engineinput "extraction/pkg/engine/input"
	"extraction/pkg/game/state"
)

// stepPlaying moves the avatar, advances its animation, and checks the goal
func stepPlaying(g *state.Game, intent engineinput.Intent) []Event {
	if !g.Playing() {
		return nil
	}

	var events []Event
	if intent.Moving() && g.Player.Move(clampUnit(intent.DX), clampUnit(intent.DY), g.Grid) {
		events = append(events, Event{Kind: EventMove, Level: g.Level})
	}

	g.Player.Update()

	if g.Player.ReachedGoal(g.Grid) {
		CompleteLevel(g)
		events = append(events, Event{Kind: EventLevelComplete, Level: g.Level})
	}

	return events
}

// clampUnit maps any integer to -1, 0 or 1
func clampUnit(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
