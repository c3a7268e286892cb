package gameplay

// EventKind identifies a discrete notification produced by a simulation step
type EventKind int

const (
	EventGameStart EventKind = iota
	EventLevelStart
	EventMove
	EventLevelComplete
	EventCampaignComplete
	EventLevelReset

	// Control requests, passed through for frontends and audio
	EventQuit
	EventToggleMute
	EventVolumeUp
	EventVolumeDown
)

// String returns the string representation of an event kind
func (k EventKind) String() string {
	switch k {
	case EventGameStart:
		return "GameStart"
	case EventLevelStart:
		return "LevelStart"
	case EventMove:
		return "Move"
	case EventLevelComplete:
		return "LevelComplete"
	case EventCampaignComplete:
		return "CampaignComplete"
	case EventLevelReset:
		return "LevelReset"
	case EventQuit:
		return "Quit"
	case EventToggleMute:
		return "ToggleMute"
	case EventVolumeUp:
		return "VolumeUp"
	case EventVolumeDown:
		return "VolumeDown"
	default:
		return "Unknown"
	}
}

// Event is one notification from a step. Level is the level it happened on.
type Event struct {
	Kind  EventKind
	Level int
}

// Listener receives events dispatched by a Scheduler
type Listener interface {
	HandleEvent(ev Event)
}

// ListenerFunc adapts a function to a Listener
type ListenerFunc func(ev Event)

// HandleEvent calls f(ev)
func (f ListenerFunc) HandleEvent(ev Event) {
	f(ev)
}

// HasEvent reports whether events contains an event of the given kind
func HasEvent(events []Event, kind EventKind) bool {
	for _, ev := range events {
		if ev.Kind == kind {
			return true
		}
	}
	return false
}
