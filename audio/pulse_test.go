package audio

import (
	"math"
	"testing"
)

func drain(s interface {
	Stream([][2]float64) (int, bool)
}) []float64 {
	var out []float64
	buf := make([][2]float64, 256)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			out = append(out, buf[i][0])
		}
		if !ok {
			return out
		}
	}
}

func TestOscillatorLength(t *testing.T) {
	osc := &oscillator{freq: 440, duration: 1000, wave: WaveSine}
	got := drain(osc)
	if len(got) != 1000 {
		t.Errorf("expected 1000 samples, got %d", len(got))
	}
}

func TestOscillatorAmplitudeBounded(t *testing.T) {
	for _, wave := range []Wave{WaveSine, WaveSquare, WaveSaw} {
		osc := &oscillator{freq: 220, duration: 2000, wave: wave}
		for i, v := range drain(osc) {
			if v < -1.0001 || v > 1.0001 {
				t.Fatalf("wave %v sample %d out of range: %v", wave, i, v)
			}
		}
	}
}

func TestSineOscillatorPeriod(t *testing.T) {
	// 441 Hz at 44100 Hz: exactly 100 samples per period
	osc := &oscillator{freq: 441, duration: 300, wave: WaveSine}
	got := drain(osc)
	for i := 0; i < 100; i++ {
		if math.Abs(got[i]-got[i+100]) > 1e-9 {
			t.Fatalf("sample %d not periodic: %v vs %v", i, got[i], got[i+100])
		}
	}
}

func TestEnvelopeShapesEdges(t *testing.T) {
	osc := &oscillator{freq: 441, duration: 1000, wave: WaveSquare}
	env := &envelope{streamer: osc, attack: 100, release: 200, total: 1000}
	got := drain(env)

	if len(got) != 1000 {
		t.Fatalf("envelope changed sample count: %d", len(got))
	}
	if math.Abs(got[0]) > 1e-9 {
		t.Errorf("attack must start from silence, first sample %v", got[0])
	}
	if math.Abs(got[999]) > math.Abs(got[500]) {
		t.Errorf("release must fade toward silence: tail %v vs sustain %v", got[999], got[500])
	}
	if math.Abs(got[500]) != 1.0 {
		t.Errorf("sustain region should pass the square wave through, got %v", got[500])
	}
}

func TestGainStage(t *testing.T) {
	osc := &oscillator{freq: 441, duration: 500, wave: WaveSquare}
	g := &gainStage{streamer: osc, gain: 0.25}
	for i, v := range drain(g) {
		if math.Abs(v) > 0.25+1e-9 {
			t.Fatalf("sample %d exceeds gain ceiling: %v", i, v)
		}
	}
}
