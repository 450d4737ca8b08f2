// Package audio plays the demo's beat: short enveloped tones pulsed at a
// knob-controlled rate through the beep speaker.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Wave selects the oscillator shape
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
)

// oscillator generates a raw wave for a fixed number of samples
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     Wave
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
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
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(sampleRate)
		o.phase = o.phase - math.Floor(o.phase) // keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping so pulses do not click
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attack && e.attack > 0 {
			vol = float64(e.position) / float64(e.attack)
		} else if rem := e.total - e.position; rem < e.release && e.release > 0 {
			vol = float64(rem) / float64(e.release)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return nil }

// Pulse owns speaker state for the beat track
// A failed speaker init degrades to silent mode rather than erroring; the
// demo must keep rendering on machines with no audio device
type Pulse struct {
	ready bool
	muted bool
	gain  float64
}

// NewPulse initializes the speaker; silent mode on failure
func NewPulse(muted bool) *Pulse {
	p := &Pulse{muted: muted, gain: 0.4}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err == nil {
		p.ready = true
	}
	return p
}

// Silent reports whether the speaker failed to open
func (p *Pulse) Silent() bool {
	return !p.ready
}

// SetMuted toggles beat playback without touching the speaker
func (p *Pulse) SetMuted(muted bool) {
	p.muted = muted
}

// Beat submits one enveloped tone at freq Hz for the given duration
func (p *Pulse) Beat(freq float64, duration time.Duration, wave Wave) {
	if !p.ready || p.muted || freq <= 0 {
		return
	}

	total := sampleRate.N(duration)
	osc := &oscillator{freq: freq, duration: total, wave: wave}
	env := &envelope{
		streamer: osc,
		attack:   sampleRate.N(5 * time.Millisecond),
		release:  sampleRate.N(duration / 3),
		total:    total,
	}
	speaker.Play(&gainStage{streamer: env, gain: p.gain})
}

// Close releases the speaker
func (p *Pulse) Close() {
	if p.ready {
		speaker.Close()
		p.ready = false
	}
}

// gainStage scales output so overlapping beats do not clip
type gainStage struct {
	streamer beep.Streamer
	gain     float64
}

func (g *gainStage) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = g.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		samples[i][0] *= g.gain
		samples[i][1] *= g.gain
	}
	return n, ok
}

func (g *gainStage) Err() error { return nil }
