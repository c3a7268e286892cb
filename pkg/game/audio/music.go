package audio

import (
	"context"
	"sync"
	"time"

	"github.com/gopxl/beep"
)

// Music plays the background pattern in a loop. Each pass re-arms a timer for
// the next one; Stop or cancelling the start context ends the loop.
type Music struct {
	mu       sync.Mutex
	play     func(beep.Streamer)
	pattern  func() beep.Streamer
	interval time.Duration
	cancel   context.CancelFunc
	done     chan struct{}
	loops    int
}

// NewMusic creates a music loop. pattern is called for every pass so volume
// changes apply from the next loop on.
func NewMusic(play func(beep.Streamer), pattern func() beep.Streamer, interval time.Duration) *Music {
	return &Music{
		play:     play,
		pattern:  pattern,
		interval: interval,
	}
}

// Start begins looping after delay. Does nothing if already running.
func (m *Music) Start(ctx context.Context, delay time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	m.cancel = cancel
	m.done = done

	go m.run(ctx, delay, done)
}

func (m *Music) run(ctx context.Context, delay time.Duration, done chan struct{}) {
	defer close(done)
	defer func() {
		// Parent context cancelled: clear the running state ourselves
		m.mu.Lock()
		if m.done == done {
			m.cancel()
			m.cancel, m.done = nil, nil
		}
		m.mu.Unlock()
	}()

	timer := time.NewTimer(delay)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		m.mu.Lock()
		m.loops++
		m.mu.Unlock()
		m.play(m.pattern())

		timer.Reset(m.interval)
	}
}

// Stop ends the loop and waits for it to exit. Safe to call when not running.
func (m *Music) Stop() {
	m.mu.Lock()
	cancel, done := m.cancel, m.done
	m.cancel, m.done = nil, nil
	m.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Running reports whether the loop is active
func (m *Music) Running() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cancel != nil
}

// Loops returns how many patterns have been played since creation
func (m *Music) Loops() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loops
}
