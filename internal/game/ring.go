package game

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/jakecoffman/cp"

	"github.com/iburimskiy/yes-no-rings/internal/config"
	"github.com/iburimskiy/yes-no-rings/internal/physics"
)

type Ring struct {
	ID  int
	Dir float64

	radius    float64
	target    float64
	shrinking bool

	baseColor      color.RGBA
	pulseColor     color.RGBA
	pulseIntensity float64

	body   *physics.RingBody
	points []cp.Vector
}

func newRing(env *Env, id int, radius, dir float64) *Ring {
	r := &Ring{
		ID:        id,
		Dir:       dir,
		radius:    radius,
		target:    radius,
		baseColor: randomRingColor(env.Rand),
		body:      env.World.NewRing(id, env.View.Center(), radius),
	}
	r.points = r.body.Outline()
	return r
}

// randomRingColor picks a fully saturated colour at a random hue.
func randomRingColor(rng *rand.Rand) color.RGBA {
	r, g, b := hsvToRgb(rng.Float64()*360, 1, 1)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func (r *Ring) Radius() float64       { return r.radius }
func (r *Ring) TargetRadius() float64 { return r.target }
func (r *Ring) Shrinking() bool       { return r.shrinking }

// Points is the world-space outline used for containment tests and drawing.
func (r *Ring) Points() []cp.Vector { return r.points }

// ShrinkTo starts moving the radius toward target.
func (r *Ring) ShrinkTo(target float64) {
	r.target = target
	r.shrinking = true
}

// update spins the ring by dt, advances the shrink animation and refreshes
// the outline.
func (r *Ring) update(dt float64) {
	r.body.Rotate(dt * r.Dir * config.RingRotationScale)
	if r.shrinking {
		step := config.RingShrinkSpeed * dt
		switch {
		case math.Abs(r.radius-r.target) <= step:
			r.radius = r.target
			r.shrinking = false
		case r.radius > r.target:
			r.radius -= step
		default:
			r.radius += step
		}
		r.body.Rebuild(r.radius)
	}
	r.points = r.body.Outline()
}

// Contains reports whether p lies inside the ring's outline.
func (r *Ring) Contains(p cp.Vector) bool {
	return physics.PointInPolygon(p, r.points)
}

func (r *Ring) setPulse(c color.RGBA, intensity float64) {
	r.pulseColor = c
	r.pulseIntensity = clamp01(intensity)
}

func (r *Ring) clearPulse() {
	r.pulseIntensity = 0
}

// DisplayColor is the base colour blended with any active pulse.
func (r *Ring) DisplayColor() color.RGBA {
	if r.pulseIntensity <= 0 {
		return r.baseColor
	}
	return blend(r.baseColor, r.pulseColor, r.pulseIntensity)
}

// explode returns one explosion per outline vertex in the unblended colour.
func (r *Ring) explode(rng *rand.Rand) []*Explosion {
	out := make([]*Explosion, 0, len(r.points))
	for _, p := range r.points {
		out = append(out, newExplosion(p, r.baseColor, rng))
	}
	return out
}

func (r *Ring) destroy() {
	r.body.Remove()
	r.points = nil
}
