package audio

import (
	"context"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"extraction/pkg/game/gameplay"
)

const testRate = beep.SampleRate(8000)

// drain streams s to completion and returns the sample count and peak amplitude.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 256)
	total := 0
	peak := 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = math.Max(peak, math.Abs(smp[0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never drained")
	return 0, 0
}

// fakeOutput records played streamers.
type fakeOutput struct {
	mu     sync.Mutex
	played []beep.Streamer
}

func (f *fakeOutput) Play(s beep.Streamer) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.played = append(f.played, s)
}

func (f *fakeOutput) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.played)
}

func TestOscillator_LengthAndRange(t *testing.T) {
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveTriangle} {
		n, peak := drain(t, NewOscillator(440, 100*time.Millisecond, wave, testRate))
		assert.Equal(t, testRate.N(100*time.Millisecond), n, "wave %d", wave)
		assert.LessOrEqual(t, peak, 1.0)
		assert.Greater(t, peak, 0.5)
	}
}

func TestSweep_EndsNearTargetFrequency(t *testing.T) {
	o := NewSweep(200, 800, time.Second, WaveSaw, testRate).(*oscillator)
	assert.InDelta(t, 200, o.frequency(), 0.001)
	o.position = o.duration / 2
	assert.InDelta(t, 400, o.frequency(), 0.5)
	o.position = o.duration
	assert.InDelta(t, 800, o.frequency(), 0.001)
}

func TestPluck_DecaysToFloor(t *testing.T) {
	p := NewPluck(NewOscillator(440, 50*time.Millisecond, WaveSquare, testRate), 0.15, 50*time.Millisecond, noteAttack, testRate).(*pluck)
	assert.Equal(t, 0.0, p.gain())
	p.position = p.attack
	assert.InDelta(t, 0.15, p.gain(), 1e-9)
	p.position = p.total
	assert.InDelta(t, decayFloor, p.gain(), 1e-9)

	silent := NewPluck(NewOscillator(440, 50*time.Millisecond, WaveSquare, testRate), 0, 50*time.Millisecond, noteAttack, testRate)
	_, peak := drain(t, silent)
	assert.Equal(t, 0.0, peak)
}

func TestSounds_Durations(t *testing.T) {
	n, peak := drain(t, CreateMoveSound(0.3, func(int) int { return 2 }, testRate))
	assert.Equal(t, testRate.N(moveDuration), n)
	assert.LessOrEqual(t, peak, 0.15+1e-9)

	n, _ = drain(t, CreateLevelCompleteSound(0.3, testRate))
	assert.Equal(t, testRate.N(3*fanfareNoteSpacing)+testRate.N(fanfareNoteDuration), n)

	n, peak = drain(t, CreateGameStartSound(0.3, testRate))
	assert.Equal(t, testRate.N(startDuration), n)
	assert.LessOrEqual(t, peak, 0.3*startGain+1e-9)

	n, _ = drain(t, CreateMusicPattern(0.3, testRate))
	assert.LessOrEqual(t, n, testRate.N(MusicLoopLength))
	assert.Greater(t, n, testRate.N(MusicLoopLength-BeatDuration))
}

func TestSystem_VolumeAndMute(t *testing.T) {
	s := NewSystemWithOutput(Options{Volume: DefaultVolume}, &fakeOutput{})

	assert.InDelta(t, 0.3, s.Volume(), 1e-9)
	s.HandleEvent(gameplay.Event{Kind: gameplay.EventVolumeUp})
	assert.InDelta(t, 0.4, s.Volume(), 1e-9)
	s.SetVolume(5)
	assert.Equal(t, 1.0, s.Volume())

	s.HandleEvent(gameplay.Event{Kind: gameplay.EventToggleMute})
	assert.True(t, s.Muted())
	assert.Equal(t, 0.0, s.Volume())

	s.HandleEvent(gameplay.Event{Kind: gameplay.EventToggleMute})
	assert.False(t, s.Muted())
	assert.InDelta(t, DefaultVolume, s.Volume(), 1e-9)

	for i := 0; i < 5; i++ {
		s.HandleEvent(gameplay.Event{Kind: gameplay.EventVolumeDown})
	}
	assert.Equal(t, 0.0, s.Volume())
	assert.True(t, s.Muted())
}

func TestSystem_PlaysEffects(t *testing.T) {
	out := &fakeOutput{}
	s := NewSystemWithOutput(Options{Volume: DefaultVolume, SampleRate: testRate}, out)

	s.HandleEvent(gameplay.Event{Kind: gameplay.EventMove})
	s.HandleEvent(gameplay.Event{Kind: gameplay.EventLevelComplete})
	assert.Equal(t, 2, out.count())

	s.ToggleMute()
	s.HandleEvent(gameplay.Event{Kind: gameplay.EventMove})
	assert.Equal(t, 2, out.count(), "muted system played a sound")
}

func TestSystem_UninitializedIsSilent(t *testing.T) {
	s := NewSystem(Options{Volume: DefaultVolume})
	assert.NotPanics(t, func() {
		s.HandleEvent(gameplay.Event{Kind: gameplay.EventMove})
		s.HandleEvent(gameplay.Event{Kind: gameplay.EventLevelComplete})
		s.Close()
	})
}

func TestSystem_MusicStartsAndStops(t *testing.T) {
	out := &fakeOutput{}
	s := NewSystemWithOutput(Options{Volume: DefaultVolume, SampleRate: testRate}, out)
	require.NoError(t, s.Init(context.Background()))

	s.HandleEvent(gameplay.Event{Kind: gameplay.EventGameStart})
	assert.True(t, s.MusicRunning())
	assert.Equal(t, 1, out.count(), "start sweep not played")

	s.HandleEvent(gameplay.Event{Kind: gameplay.EventCampaignComplete})
	assert.False(t, s.MusicRunning())
	s.Close()
}

func TestMusic_RearmsUntilStopped(t *testing.T) {
	var mu sync.Mutex
	played := 0
	m := NewMusic(func(beep.Streamer) {
		mu.Lock()
		played++
		mu.Unlock()
	}, func() beep.Streamer { return beep.Silence(1) }, 5*time.Millisecond)

	m.Start(context.Background(), 0)
	m.Start(context.Background(), 0) // second start is ignored
	require.Eventually(t, func() bool { return m.Loops() >= 3 }, time.Second, time.Millisecond)

	m.Stop()
	assert.False(t, m.Running())
	loops := m.Loops()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, loops, m.Loops(), "loop kept running after Stop")

	mu.Lock()
	assert.Equal(t, loops, played)
	mu.Unlock()

	m.Stop() // idempotent
}

func TestMusic_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	m := NewMusic(func(beep.Streamer) {}, func() beep.Streamer { return nil }, time.Millisecond)
	m.Start(ctx, 0)
	cancel()
	require.Eventually(t, func() bool { return !m.Running() }, time.Second, time.Millisecond)

	// can be started again afterwards
	m.Start(context.Background(), time.Hour)
	assert.True(t, m.Running())
	m.Stop()
}
