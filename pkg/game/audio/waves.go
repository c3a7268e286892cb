// Package audio synthesizes the game's 8-bit sound effects and music loop with
// gopxl/beep and plays them in response to gameplay events.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveTriangle
)

// oscillator generates a raw wave, optionally sweeping its frequency
// exponentially from freq to freqEnd over its duration
type oscillator struct {
	freq     float64
	freqEnd  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator whose frequency moves exponentially from
// startFreq to endFreq over duration
func NewSweep(startFreq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     startFreq,
		freqEnd:  endFreq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

// frequency returns the instantaneous frequency at the current position
func (o *oscillator) frequency() float64 {
	if o.freqEnd == o.freq || o.freq <= 0 || o.freqEnd <= 0 || o.duration == 0 {
		return o.freq
	}
	frac := float64(o.position) / float64(o.duration)
	return o.freq * math.Pow(o.freqEnd/o.freq, frac)
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveTriangle:
			val = 4.0*math.Abs(o.phase-0.5) - 1.0
		}

		samples[i][0] = val
		samples[i][1] = val

		// Advance phase
		o.phase += o.frequency() / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so we handle 0 volume by making it silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// delayed prefixes s with delay worth of silence
func delayed(s beep.Streamer, delay time.Duration, rate beep.SampleRate) beep.Streamer {
	if delay <= 0 {
		return s
	}
	return beep.Seq(beep.Silence(rate.N(delay)), s)
}
