package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// Note frequencies (Hz)
const (
	noteC3  = 130.81
	noteEb3 = 155.56
	noteFs3 = 184.99
	noteG3  = 196.00
	noteBb3 = 233.08
	noteC4  = 261.63
	noteEb4 = 311.13
	noteFs4 = 369.99
	noteG4  = 392.00
	noteBb4 = 466.16
	noteC5  = 523.25
	noteE5  = 659.25
	noteG5  = 783.99
	noteC6  = 1046.50
)

// Sound timing
const (
	noteAttack = 10 * time.Millisecond

	moveDuration = 50 * time.Millisecond

	fanfareNoteDuration = 300 * time.Millisecond
	fanfareNoteSpacing  = 100 * time.Millisecond

	startDuration = time.Second
	startAttack   = 100 * time.Millisecond
	startFreqLow  = 200.0
	startFreqHigh = 800.0

	// BeatDuration is one music step (150 BPM)
	BeatDuration = 400 * time.Millisecond
)

// Gain factors relative to the master volume
const (
	effectGain = 0.5
	startGain  = 0.4
	melodyGain = 0.3
	bassGain   = 0.2
	arpGain    = 0.1
)

var (
	moveFrequencies = []float64{400, 450, 500}
	fanfareNotes    = []float64{noteC5, noteE5, noteG5, noteC6}

	// C minor pentatonic flavoured loop
	melodyNotes = []float64{noteC4, noteEb4, noteFs4, noteBb4, noteC5, noteG4, noteEb4, noteC4, noteG4, noteBb4}
	bassNotes   = []float64{noteC3, noteEb3, noteFs3, noteBb3, noteC3, noteG3, noteEb3, noteC3, noteG3, noteBb3}
	arpNotes    = []float64{noteC4 * 2, noteEb4 * 2, noteFs4 * 2}
)

// arpSteps is the number of arpeggio notes per loop, at half-beat spacing
const arpSteps = 8

// MusicLoopLength is the length of one music pattern
var MusicLoopLength = time.Duration(len(melodyNotes)) * BeatDuration

// blip is a plucked oscillator note
func blip(freq float64, wave WaveType, duration time.Duration, peak float64, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(freq, duration, wave, rate)
	return NewPluck(osc, peak, duration, noteAttack, rate)
}

// CreateMoveSound generates a short square blip at one of three pitches.
// pick chooses the pitch index and is given the number of choices.
func CreateMoveSound(volume float64, pick func(n int) int, rate beep.SampleRate) beep.Streamer {
	freq := moveFrequencies[pick(len(moveFrequencies))]
	return blip(freq, WaveSquare, moveDuration, volume*effectGain, rate)
}

// CreateLevelCompleteSound generates the ascending C major fanfare
func CreateLevelCompleteSound(volume float64, rate beep.SampleRate) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(fanfareNotes))
	for i, freq := range fanfareNotes {
		note := blip(freq, WaveSquare, fanfareNoteDuration, volume*effectGain, rate)
		notes = append(notes, delayed(note, time.Duration(i)*fanfareNoteSpacing, rate))
	}
	return beep.Mix(notes...)
}

// CreateGameStartSound generates the rising sawtooth start-up sweep
func CreateGameStartSound(volume float64, rate beep.SampleRate) beep.Streamer {
	sweep := NewSweep(startFreqLow, startFreqHigh, startDuration, WaveSaw, rate)
	return NewSwell(sweep, volume*startGain, startDuration, startAttack, rate)
}

// CreateMusicPattern generates one loop of the background music: a square
// melody, a sawtooth bass an octave down, and a triangle arpeggio on half beats
func CreateMusicPattern(volume float64, rate beep.SampleRate) beep.Streamer {
	voices := make([]beep.Streamer, 0, len(melodyNotes)*2+arpSteps)

	melodyLen := BeatDuration * 8 / 10
	bassLen := BeatDuration * 9 / 10
	for i := range melodyNotes {
		at := time.Duration(i) * BeatDuration
		voices = append(voices,
			delayed(blip(melodyNotes[i], WaveSquare, melodyLen, volume*melodyGain, rate), at, rate),
			delayed(blip(bassNotes[i], WaveSaw, bassLen, volume*bassGain, rate), at, rate),
		)
	}

	arpLen := BeatDuration / 3
	for i := 0; i < arpSteps; i++ {
		at := time.Duration(i) * BeatDuration / 2
		freq := arpNotes[i%len(arpNotes)]
		voices = append(voices, delayed(blip(freq, WaveTriangle, arpLen, volume*arpGain, rate), at, rate))
	}

	return beep.Mix(voices...)
}
