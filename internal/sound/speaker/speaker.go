// Package speaker plays sound cues on the local audio device. It links the
// cgo audio backend, so only the local binary imports it.
package speaker

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/tomz197/skyguard/internal/sound"
)

const sampleRate = beep.SampleRate(44100)

// Manager plays cues on the system speaker through a shared mixer.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewManager creates a manager. Nothing is played until Init succeeds.
func NewManager(volume float64) *Manager {
	return &Manager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Init opens the speaker. Calling it again is a no-op.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Play mixes a cue into the output. It is a no-op before Init.
func (m *Manager) Play(c sound.Cue) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	s := sound.Streamer(c, m.volume, sampleRate)
	if s == nil {
		return
	}
	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}

// Close silences all cues and releases the speaker.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	m.initialized = false
}

var _ sound.Player = (*Manager)(nil)
