// Package device plays a mixed stream through the system speaker.
package device

import (
	"fmt"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/yes-no-rings/internal/config"
)

type speakerLock struct{}

func (speakerLock) Lock()   { speaker.Lock() }
func (speakerLock) Unlock() { speaker.Unlock() }

// Locker guards state read by the speaker goroutine.
var Locker = speakerLock{}

// Open initialises the speaker at rate and starts streaming src.
func Open(rate beep.SampleRate, src beep.Streamer) error {
	if err := speaker.Init(rate, rate.N(config.SpeakerBuffer)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(src)
	return nil
}

// Close stops playback.
func Close() {
	speaker.Clear()
}
