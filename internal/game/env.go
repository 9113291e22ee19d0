package game

import (
	"math/rand"

	"github.com/iburimskiy/yes-no-rings/internal/config"
	"github.com/iburimskiy/yes-no-rings/internal/physics"
)

// Cues is the audio side of the game: a touch cue on every ball/ring contact
// and a cue per ball when it breaks a ring.
type Cues interface {
	PlayTouch()
	PlayBreak(kind physics.BallKind)
}

type silentCues struct{}

func (silentCues) PlayTouch()                 {}
func (silentCues) PlayBreak(physics.BallKind) {}

// Env holds the collaborators shared by every entity of one run.
type Env struct {
	World *physics.World
	View  physics.Viewport
	Rand  *rand.Rand
	Cues  Cues
}

// NewEnv builds a fresh world. A nil cues disables audio.
func NewEnv(cues Cues, seed int64) *Env {
	if cues == nil {
		cues = silentCues{}
	}
	return &Env{
		World: physics.NewWorld(),
		View: physics.Viewport{
			Width:  config.WindowWidth,
			Height: config.WindowHeight,
			PPM:    config.PixelsPerMeter,
		},
		Rand: rand.New(rand.NewSource(seed)),
		Cues: cues,
	}
}
