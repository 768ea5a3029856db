package sound

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveNoise
)

// Tone describes one synthesized note: a frequency sweep from Freq to
// EndFreq with a short attack and a linear decay to silence.
type Tone struct {
	Freq     float64
	EndFreq  float64 // Zero keeps Freq
	Duration time.Duration
	Wave     Wave
	Gain     float64 // 0..1
}

const attack = 5 * time.Millisecond

// toneStreamer generates samples for a Tone.
type toneStreamer struct {
	tone   Tone
	rate   beep.SampleRate
	total  int
	attack int
	pos    int
	phase  float64
	noise  *rand.Rand
}

// NewTone returns a finite streamer playing t at the given sample rate.
func NewTone(t Tone, rate beep.SampleRate) beep.Streamer {
	if t.EndFreq == 0 {
		t.EndFreq = t.Freq
	}
	return &toneStreamer{
		tone:   t,
		rate:   rate,
		total:  rate.N(t.Duration),
		attack: rate.N(attack),
		noise:  rand.New(rand.NewSource(int64(t.Freq))),
	}
}

func (s *toneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		progress := float64(s.pos) / float64(s.total)

		var val float64
		switch s.tone.Wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * s.phase)
		case WaveSquare:
			val = 1
			if s.phase >= 0.5 {
				val = -1
			}
		case WaveNoise:
			val = s.noise.Float64()*2 - 1
		}

		env := 1 - progress
		if s.pos < s.attack {
			env *= float64(s.pos) / float64(s.attack)
		}
		val *= env * s.tone.Gain

		samples[i][0] = val
		samples[i][1] = val

		freq := s.tone.Freq + (s.tone.EndFreq-s.tone.Freq)*progress
		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *toneStreamer) Err() error { return nil }

// withVolume scales a streamer linearly; vol <= 0 silences it.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
