package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// decayFloor is the gain an exponential decay ends on
const decayFloor = 0.01

// pluck shapes a stream with a linear attack to peak gain followed by an
// exponential decay down to decayFloor at the end of duration
type pluck struct {
	streamer beep.Streamer
	peak     float64
	position int
	attack   int
	total    int
}

// NewPluck creates a pluck envelope. A peak at or below decayFloor produces silence.
func NewPluck(s beep.Streamer, peak float64, duration, attack time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	if att > total {
		att = total
	}
	return &pluck{streamer: s, peak: peak, attack: att, total: total}
}

func (p *pluck) gain() float64 {
	if p.peak <= decayFloor {
		return 0
	}
	if p.position < p.attack {
		return p.peak * float64(p.position) / float64(p.attack)
	}
	decay := p.total - p.attack
	if decay <= 0 {
		return p.peak
	}
	frac := float64(p.position-p.attack) / float64(decay)
	return p.peak * math.Pow(decayFloor/p.peak, frac)
}

func (p *pluck) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = p.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if p.position >= p.total {
			return i, i > 0
		}
		g := p.gain()
		samples[i][0] *= g
		samples[i][1] *= g
		p.position++
	}
	return n, ok
}

func (p *pluck) Err() error { return p.streamer.Err() }

// swell shapes a stream with a linear ramp from 0 to peak over attack and a
// linear ramp back to 0 at the end of duration
type swell struct {
	streamer beep.Streamer
	peak     float64
	position int
	attack   int
	total    int
}

// NewSwell creates a swell envelope
func NewSwell(s beep.Streamer, peak float64, duration, attack time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	if att > total {
		att = total
	}
	return &swell{streamer: s, peak: peak, attack: att, total: total}
}

func (w *swell) gain() float64 {
	if w.position < w.attack {
		return w.peak * float64(w.position) / float64(w.attack)
	}
	release := w.total - w.attack
	if release <= 0 {
		return w.peak
	}
	return w.peak * float64(w.total-w.position) / float64(release)
}

func (w *swell) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = w.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if w.position >= w.total {
			return i, i > 0
		}
		g := w.gain()
		samples[i][0] *= g
		samples[i][1] *= g
		w.position++
	}
	return n, ok
}

func (w *swell) Err() error { return w.streamer.Err() }
