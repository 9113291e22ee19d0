package audio

import (
	"math/rand"
	"sync"

	"github.com/faiface/beep"

	"github.com/iburimskiy/yes-no-rings/internal/config"
	"github.com/iburimskiy/yes-no-rings/internal/physics"
)

// Manager mixes cues from a Bank. Break cues overlap freely; a new touch cue
// stops the one still playing.
type Manager struct {
	bank    *Bank
	mixer   *beep.Mixer
	lock    sync.Locker
	rng     *rand.Rand
	ambient *beep.Ctrl
}

// NewManager creates a manager whose mixer is guarded by lock, which must be
// the lock held by whatever is streaming the mixer.
func NewManager(bank *Bank, lock sync.Locker, rng *rand.Rand) *Manager {
	return &Manager{
		bank:  bank,
		mixer: &beep.Mixer{},
		lock:  lock,
		rng:   rng,
	}
}

// Streamer is the mixed output to hand to the speaker.
func (m *Manager) Streamer() beep.Streamer { return m.mixer }

func (m *Manager) SampleRate() beep.SampleRate { return m.bank.Format().SampleRate }

// PlayTouch starts a random ambient clip.
func (m *Manager) PlayTouch() {
	clip := m.bank.Ambient(m.rng.Intn(m.bank.AmbientCount()))

	m.lock.Lock()
	defer m.lock.Unlock()

	if m.ambient != nil {
		// a nil streamer makes the mixer drop the ctrl
		m.ambient.Streamer = nil
	}
	m.ambient = &beep.Ctrl{Streamer: clip}
	m.mixer.Add(m.ambient)
}

// PlayBreak plays the clip of the ball that broke a ring.
func (m *Manager) PlayBreak(kind physics.BallKind) {
	name := config.YesClip
	if kind == physics.No {
		name = config.NoClip
	}
	clip := m.bank.Clip(name)

	m.lock.Lock()
	m.mixer.Add(clip)
	m.lock.Unlock()
}

// Playing is the number of clips still in the mixer.
func (m *Manager) Playing() int {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.mixer.Len()
}

// Stop silences everything.
func (m *Manager) Stop() {
	m.lock.Lock()
	defer m.lock.Unlock()
	if m.ambient != nil {
		m.ambient.Streamer = nil
		m.ambient = nil
	}
	m.mixer.Clear()
}
