package audio

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"extraction/pkg/game/gameplay"
)

const (
	// DefaultSampleRate is the output sample rate
	DefaultSampleRate = beep.SampleRate(44100)

	// DefaultVolume is the master volume on start and after unmuting
	DefaultVolume = 0.3

	// VolumeStep is the change applied by volume up/down
	VolumeStep = 0.1

	// MusicDelay is the pause between the start sweep and the music loop
	MusicDelay = time.Second
)

// Output plays streamers. The speaker output mixes them into the sound card.
type Output interface {
	Play(s beep.Streamer)
}

// speakerOutput plays through a shared mixer attached to the speaker
type speakerOutput struct {
	mixer *beep.Mixer
}

func (o *speakerOutput) Play(s beep.Streamer) {
	speaker.Lock()
	o.mixer.Add(s)
	speaker.Unlock()
}

// Options configure a System
type Options struct {
	Volume     float64
	Muted      bool
	SampleRate beep.SampleRate
}

// System turns gameplay events into sound. Until Init succeeds (or when it
// fails) every method is a silent no-op, so gameplay never depends on audio.
type System struct {
	mu     sync.Mutex
	out    Output
	rate   beep.SampleRate
	volume float64
	muted  bool
	rng    *rand.Rand
	music  *Music
	ctx    context.Context
}

// NewSystem creates an audio system with no output attached
func NewSystem(opts Options) *System {
	if opts.SampleRate <= 0 {
		opts.SampleRate = DefaultSampleRate
	}
	s := &System{
		rate:   opts.SampleRate,
		volume: clampVolume(opts.Volume),
		muted:  opts.Muted,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		ctx:    context.Background(),
	}
	s.music = NewMusic(s.playMusic, s.musicPattern, MusicLoopLength)
	return s
}

// NewSystemWithOutput creates an audio system that plays into out
func NewSystemWithOutput(opts Options, out Output) *System {
	s := NewSystem(opts)
	s.out = out
	return s
}

// Init opens the speaker. ctx bounds the music loop. On failure the system
// stays silent and the error is returned for logging.
func (s *System) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ctx = ctx
	if s.out != nil {
		return nil
	}

	if err := speaker.Init(s.rate, s.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}
	mixer := &beep.Mixer{}
	speaker.Play(mixer)
	s.out = &speakerOutput{mixer: mixer}

	log.Debug("audio initialized", "sample_rate", int(s.rate))
	return nil
}

// Close stops the music and releases the speaker
func (s *System) Close() {
	s.music.Stop()

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.out.(*speakerOutput); ok {
		speaker.Close()
	}
	s.out = nil
}

// Volume returns the master volume (0 while muted)
func (s *System) Volume() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.effectiveVolume()
}

// Muted reports whether output is muted
func (s *System) Muted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.muted
}

// SetVolume sets the master volume, clamped to [0, 1]. Zero mutes; anything
// else unmutes.
func (s *System) SetVolume(v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.volume = clampVolume(v)
	s.muted = s.volume == 0
}

// ToggleMute mutes, or unmutes back to DefaultVolume
func (s *System) ToggleMute() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.muted {
		s.muted = false
		s.volume = DefaultVolume
		return
	}
	s.muted = true
}

// MusicRunning reports whether the background loop is active
func (s *System) MusicRunning() bool {
	return s.music.Running()
}

// HandleEvent plays the sound for a gameplay event
func (s *System) HandleEvent(ev gameplay.Event) {
	switch ev.Kind {
	case gameplay.EventMove:
		s.playEffect(func(vol float64) beep.Streamer {
			return CreateMoveSound(vol, s.rng.Intn, s.rate)
		})
	case gameplay.EventLevelComplete:
		s.playEffect(func(vol float64) beep.Streamer {
			return CreateLevelCompleteSound(vol, s.rate)
		})
	case gameplay.EventGameStart:
		s.playEffect(func(vol float64) beep.Streamer {
			return CreateGameStartSound(vol, s.rate)
		})
		s.mu.Lock()
		ctx := s.ctx
		s.mu.Unlock()
		s.music.Start(ctx, MusicDelay)
	case gameplay.EventCampaignComplete:
		s.music.Stop()
	case gameplay.EventToggleMute:
		s.ToggleMute()
	case gameplay.EventVolumeUp:
		s.SetVolume(s.Volume() + VolumeStep)
	case gameplay.EventVolumeDown:
		s.SetVolume(s.Volume() - VolumeStep)
	}
}

// playEffect builds a sound at the current volume and plays it, unless muted or uninitialized
func (s *System) playEffect(build func(vol float64) beep.Streamer) {
	s.mu.Lock()
	out := s.out
	vol := s.effectiveVolume()
	s.mu.Unlock()

	if out == nil || vol <= 0 {
		return
	}
	out.Play(build(vol))
}

func (s *System) playMusic(st beep.Streamer) {
	s.mu.Lock()
	out := s.out
	s.mu.Unlock()
	if out != nil && st != nil {
		out.Play(st)
	}
}

// musicPattern returns the next loop at the current volume, or nil when silent
func (s *System) musicPattern() beep.Streamer {
	vol := s.Volume()
	if vol <= 0 {
		return nil
	}
	return CreateMusicPattern(vol, s.rate)
}

// effectiveVolume must be called with mu held
func (s *System) effectiveVolume() float64 {
	if s.muted {
		return 0
	}
	return s.volume
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	// round to avoid drift from repeated steps
	return float64(int(v*100+0.5)) / 100
}
