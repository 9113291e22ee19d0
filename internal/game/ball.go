package game

import (
	"image/color"

	"github.com/jakecoffman/cp"

	"github.com/iburimskiy/yes-no-rings/internal/config"
	"github.com/iburimskiy/yes-no-rings/internal/physics"
)

// Palette is the set of colours a ball draws with and pulses rings in.
type Palette struct {
	Edge  color.RGBA
	Text  color.RGBA
	Trail color.RGBA
	Pulse [config.PulseWidth]color.RGBA
}

var palettes = map[physics.BallKind]Palette{
	physics.Yes: {
		Edge:  color.RGBA{G: 255, A: 255},
		Text:  color.RGBA{G: 255, A: 255},
		Trail: color.RGBA{G: 255, A: 255},
		Pulse: [config.PulseWidth]color.RGBA{
			{R: 68, G: 122, B: 52, A: 255},
			{R: 33, G: 180, B: 43, A: 255},
			{R: 34, G: 255, B: 0, A: 255},
		},
	},
	physics.No: {
		Edge:  color.RGBA{R: 255, A: 255},
		Text:  color.RGBA{R: 255, A: 255},
		Trail: color.RGBA{R: 255, A: 255},
		Pulse: [config.PulseWidth]color.RGBA{
			{R: 122, G: 52, B: 52, A: 255},
			{R: 180, G: 43, B: 33, A: 255},
			{R: 255, A: 255},
		},
	},
}

func PaletteOf(kind physics.BallKind) Palette {
	return palettes[kind]
}

type Ball struct {
	Kind    physics.BallKind
	Label   string
	Radius  float64
	Palette Palette

	// Complete is set once the round is over.
	Complete bool
	// Touches counts contacts with the innermost ring.
	Touches int

	body  *cp.Body
	trail *trail
}

func newBall(env *Env, kind physics.BallKind, pos, vel cp.Vector) *Ball {
	return &Ball{
		Kind:    kind,
		Label:   kind.String(),
		Radius:  config.BallRadius,
		Palette: PaletteOf(kind),
		body:    env.World.NewBall(kind, pos, vel, config.BallRadius),
		trail:   newTrail(config.TrailLength),
	}
}

func (b *Ball) Position() cp.Vector {
	return b.body.Position()
}

// Trail returns recent positions, oldest first.
func (b *Ball) Trail() []cp.Vector {
	return b.trail.snapshot()
}

func (b *Ball) update() {
	b.trail.push(b.Position())
}
