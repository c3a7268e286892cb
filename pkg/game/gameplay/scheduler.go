package gameplay

import (
	"sync"
	"time"

	engineinput "extraction/pkg/engine/input"
	"extraction/pkg/game/state"
)

// MoveEventInterval is the minimum gap between move events reaching listeners
const MoveEventInterval = 150 * time.Millisecond

// VolumeSource reports the output level shown in the HUD
type VolumeSource interface {
	Volume() float64
	Muted() bool
}

// Scheduler owns a game and runs one Step per frame tick. Events are dispatched
// to listeners after the step, outside the lock, so listeners may call Snapshot.
type Scheduler struct {
	mu        sync.Mutex
	game      *state.Game
	listeners []Listener
	volume    VolumeSource

	now      func() time.Time
	lastMove time.Time
}

// NewScheduler creates a scheduler for g using the wall clock
func NewScheduler(g *state.Game) *Scheduler {
	return &Scheduler{
		game: g,
		now:  time.Now,
	}
}

// SetClock replaces the clock used for move-event throttling
func (s *Scheduler) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// SetVolumeSource sets where Snapshot reads volume and mute state from
func (s *Scheduler) SetVolumeSource(v VolumeSource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.volume = v
}

// AddListener registers l for dispatched events
func (s *Scheduler) AddListener(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// Tick steps the game with intent. It returns every event the step produced;
// listeners receive the same events except that move events are dropped when
// one was delivered less than MoveEventInterval ago.
func (s *Scheduler) Tick(intent engineinput.Intent) []Event {
	s.mu.Lock()
	events := Step(s.game, intent)

	dispatch := make([]Event, 0, len(events))
	for _, ev := range events {
		if ev.Kind == EventMove {
			now := s.now()
			if !s.lastMove.IsZero() && now.Sub(s.lastMove) <= MoveEventInterval {
				continue
			}
			s.lastMove = now
		}
		dispatch = append(dispatch, ev)
	}
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()

	for _, ev := range dispatch {
		for _, l := range listeners {
			l.HandleEvent(ev)
		}
	}

	return events
}

// Snapshot returns a read-only copy of the game for rendering
func (s *Scheduler) Snapshot() state.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.game.Snapshot()
	if s.volume != nil {
		snap.Volume = s.volume.Volume()
		snap.Muted = s.volume.Muted()
	}
	return snap
}
