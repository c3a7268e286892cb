package input

import (
	"sync"
	"time"
)

// KeyState tracks held movement keys and queued one-shot actions between ticks.
//
// Windowed frontends report key up/down edges with Set. Terminals only deliver
// presses (plus auto-repeat), so Press treats a movement key as held for
// holdWindow after its last press.
type KeyState struct {
	mu         sync.Mutex
	holdWindow time.Duration
	down       map[Action]bool
	lastPress  map[Action]time.Time
	pending    []Action
}

// NewKeyState creates a key state. A zero holdWindow means presses are only
// held for the tick they arrive in.
func NewKeyState(holdWindow time.Duration) *KeyState {
	return &KeyState{
		holdWindow: holdWindow,
		down:       make(map[Action]bool),
		lastPress:  make(map[Action]time.Time),
	}
}

// Press records a key press at now. Movement keys become held; other bound keys
// queue their action for the next Intent call. Returns the mapped action.
func (k *KeyState) Press(code string, now time.Time) Action {
	act := MapToAction(code)
	if act == ActionNone {
		return act
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	if act.IsMovement() {
		k.lastPress[act] = now
	} else {
		k.pending = append(k.pending, act)
	}
	return act
}

// Set records the held state of a movement key. Non-movement codes are ignored.
func (k *KeyState) Set(code string, down bool) {
	act := MapToAction(code)
	if !act.IsMovement() {
		return
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	k.down[act] = down
}

// Release clears all held keys and queued actions
func (k *KeyState) Release() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.down = make(map[Action]bool)
	k.lastPress = make(map[Action]time.Time)
	k.pending = nil
}

// held must be called with mu held
func (k *KeyState) held(act Action, now time.Time) bool {
	if k.down[act] {
		return true
	}
	t, ok := k.lastPress[act]
	if !ok {
		return false
	}
	return now.Sub(t) <= k.holdWindow
}

// Intent resolves the state at now into a per-tick intent. Right overrides left
// and down overrides up when both are held. At most one queued action is
// consumed per call.
func (k *KeyState) Intent(now time.Time) Intent {
	k.mu.Lock()
	defer k.mu.Unlock()

	var intent Intent
	if k.held(ActionMoveLeft, now) {
		intent.DX = -1
	}
	if k.held(ActionMoveRight, now) {
		intent.DX = 1
	}
	if k.held(ActionMoveUp, now) {
		intent.DY = -1
	}
	if k.held(ActionMoveDown, now) {
		intent.DY = 1
	}

	if len(k.pending) > 0 {
		intent.Action = k.pending[0]
		k.pending = k.pending[1:]
	}

	return intent
}
