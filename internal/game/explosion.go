package game

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/jakecoffman/cp"

	"github.com/iburimskiy/yes-no-rings/internal/config"
)

// Particle moves a fixed distance per tick until its life runs out.
type Particle struct {
	Pos    cp.Vector
	Vel    cp.Vector
	Life   int
	Radius float64
}

type Explosion struct {
	Color     color.RGBA
	Particles []Particle
}

func newExplosion(pos cp.Vector, c color.RGBA, rng *rand.Rand) *Explosion {
	angle := (config.ParticleAngleMin + rng.Float64()*(config.ParticleAngleMax-config.ParticleAngleMin)) * math.Pi / 180
	speed := (rng.Float64()*2 - 1) * config.ParticleSpeedMax / config.PixelsPerMeter
	return &Explosion{
		Color: c,
		Particles: []Particle{{
			Pos: pos,
			// screen-space angle, y flipped into world space
			Vel:    cp.Vector{X: math.Cos(angle) * speed, Y: -math.Sin(angle) * speed},
			Life:   config.ParticleLifeMin + rng.Intn(config.ParticleLifeMax-config.ParticleLifeMin+1),
			Radius: config.ParticleRadius,
		}},
	}
}

func (e *Explosion) update() {
	alive := e.Particles[:0]
	for _, p := range e.Particles {
		p.Pos = p.Pos.Add(p.Vel)
		p.Life--
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	e.Particles = alive
}

func (e *Explosion) Done() bool {
	return len(e.Particles) == 0
}
