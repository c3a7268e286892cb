package gameplay

import (
	engineinput "extraction/pkg/engine/input"
	"extraction/pkg/game/state"
)

// Step runs one simulation tick for intent and returns the events it produced.
// It is the only place game state changes during play.
func Step(g *state.Game, intent engineinput.Intent) []Event {
	var events []Event

	// Control actions work in every phase
	switch intent.Action {
	case engineinput.ActionQuit:
		return append(events, Event{Kind: EventQuit, Level: g.Level})
	case engineinput.ActionToggleMute:
		events = append(events, Event{Kind: EventToggleMute, Level: g.Level})
	case engineinput.ActionVolumeUp:
		events = append(events, Event{Kind: EventVolumeUp, Level: g.Level})
	case engineinput.ActionVolumeDown:
		events = append(events, Event{Kind: EventVolumeDown, Level: g.Level})
	}

	switch g.Phase {
	case state.PhaseStart:
		if intent.Action == engineinput.ActionConfirm {
			StartGame(g)
			events = append(events,
				Event{Kind: EventGameStart, Level: g.Level},
				Event{Kind: EventLevelStart, Level: g.Level},
			)
		}

	case state.PhasePlaying:
		if intent.Action == engineinput.ActionResetLevel {
			ResetLevel(g)
			return append(events, Event{Kind: EventLevelReset, Level: g.Level})
		}
		events = append(events, stepPlaying(g, intent)...)

	case state.PhaseLevelComplete:
		if intent.Action == engineinput.ActionConfirm {
			if AdvanceLevel(g) {
				events = append(events, Event{Kind: EventLevelStart, Level: g.Level})
			} else {
				events = append(events, Event{Kind: EventCampaignComplete, Level: g.Level})
			}
		}
	}

	return events
}
