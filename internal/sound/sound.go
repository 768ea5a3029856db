// Package sound synthesizes short cues for game events. It never opens an
// audio device; see the speaker subpackage for playback.
package sound

import (
	"time"

	"github.com/gopxl/beep"
)

// Cue is a named sound effect.
type Cue int

const (
	CueShot Cue = iota
	CueExplosion
	CueHit
	CuePowerUp
	CueBoss
	CueLevelUp
	CueGameOver
	CueGameClear
)

var cueNames = map[Cue]string{
	CueShot:      "shot",
	CueExplosion: "explosion",
	CueHit:       "hit",
	CuePowerUp:   "power-up",
	CueBoss:      "boss",
	CueLevelUp:   "level up",
	CueGameOver:  "game over",
	CueGameClear: "game clear",
}

func (c Cue) String() string {
	if name, ok := cueNames[c]; ok {
		return name
	}
	return "unknown"
}

// cueTones lists the notes of each cue, played in sequence.
var cueTones = map[Cue][]Tone{
	CueShot:      {{Freq: 1200, EndFreq: 600, Duration: 60 * time.Millisecond, Wave: WaveSquare, Gain: 0.15}},
	CueExplosion: {{Freq: 1, Duration: 250 * time.Millisecond, Wave: WaveNoise, Gain: 0.4}},
	CueHit:       {{Freq: 220, EndFreq: 80, Duration: 200 * time.Millisecond, Wave: WaveSquare, Gain: 0.3}},
	CuePowerUp: {
		{Freq: 660, Duration: 70 * time.Millisecond, Wave: WaveSine, Gain: 0.4},
		{Freq: 990, Duration: 90 * time.Millisecond, Wave: WaveSine, Gain: 0.4},
	},
	CueBoss: {{Freq: 90, EndFreq: 60, Duration: 600 * time.Millisecond, Wave: WaveSquare, Gain: 0.3}},
	CueLevelUp: {
		{Freq: 523.25, Duration: 100 * time.Millisecond, Wave: WaveSquare, Gain: 0.2},
		{Freq: 659.25, Duration: 100 * time.Millisecond, Wave: WaveSquare, Gain: 0.2},
		{Freq: 783.99, Duration: 200 * time.Millisecond, Wave: WaveSquare, Gain: 0.2},
	},
	CueGameOver: {
		{Freq: 392, Duration: 200 * time.Millisecond, Wave: WaveSine, Gain: 0.4},
		{Freq: 311.13, Duration: 200 * time.Millisecond, Wave: WaveSine, Gain: 0.4},
		{Freq: 261.63, Duration: 400 * time.Millisecond, Wave: WaveSine, Gain: 0.4},
	},
	CueGameClear: {
		{Freq: 523.25, Duration: 120 * time.Millisecond, Wave: WaveSine, Gain: 0.4},
		{Freq: 783.99, Duration: 120 * time.Millisecond, Wave: WaveSine, Gain: 0.4},
		{Freq: 1046.5, Duration: 400 * time.Millisecond, Wave: WaveSine, Gain: 0.4},
	},
}

// Streamer builds a fresh streamer for a cue, or nil for an unknown cue.
func Streamer(c Cue, volume float64, rate beep.SampleRate) beep.Streamer {
	tones, ok := cueTones[c]
	if !ok {
		return nil
	}
	notes := make([]beep.Streamer, len(tones))
	for i, t := range tones {
		notes[i] = NewTone(t, rate)
	}
	return withVolume(beep.Seq(notes...), volume)
}

// Player plays cues.
type Player interface {
	Play(c Cue)
	Close()
}

// Nop is a Player that stays silent.
type Nop struct{}

func (Nop) Play(Cue) {}
func (Nop) Close()   {}

var _ Player = Nop{}
