// Package game holds the per-frame state machine of the toy: two balls, a
// stack of rotating open rings, pulses, explosions, the countdown and the
// Yes/No score. It has no rendering or audio backend of its own.
package game

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"

	"github.com/iburimskiy/yes-no-rings/internal/config"
	"github.com/iburimskiy/yes-no-rings/internal/physics"
)

type Game struct {
	env *Env

	balls      [2]*Ball
	rings      []*Ring
	pulses     pulseQueue
	explosions []*Explosion

	timer  Countdown
	scores [2]int

	broken     int
	lastFactor float64
	nextID     int
	// largest is the radius of the outermost ring ever spawned. It only grows.
	largest float64

	paused bool
}

func New(env *Env) *Game {
	g := &Game{
		env:        env,
		timer:      NewCountdown(),
		lastFactor: config.ShrinkBase,
	}
	env.World.OnContact = func(physics.Contact) {
		env.Cues.PlayTouch()
	}

	view := env.View
	g.balls[physics.Yes] = newBall(env, physics.Yes,
		view.ToWorld(view.Width/2-config.BallOffsetX, view.Height/2-config.BallOffsetY),
		cp.Vector{X: config.BallSpeedX, Y: config.BallSpeedY})
	g.balls[physics.No] = newBall(env, physics.No,
		view.ToWorld(view.Width/2+config.BallOffsetX, view.Height/2-config.BallOffsetY),
		cp.Vector{X: -config.BallSpeedX, Y: config.BallSpeedY})

	radius := config.InitialRingRadius
	dir := config.InitialRingDir
	for i := 0; i < config.InitialRings; i++ {
		g.rings = append(g.rings, newRing(env, i+1, radius, dir))
		g.largest = radius
		radius += config.RingRadiusStep
		dir *= config.RingDirDecay
	}
	g.nextID = config.InitialRings + 1
	return g
}

// Update advances one frame of dt wall-clock seconds. The countdown takes
// dt as is; animations take it capped at MaxFrameDelta. Nothing moves while
// paused.
func (g *Game) Update(dt float64) {
	if g.paused {
		return
	}

	g.env.World.Step()
	g.countTouches(g.env.World.DrainContacts())

	if g.timer.Tick(dt) {
		g.finishRound()
	}

	step := math.Min(dt, config.MaxFrameDelta)
	g.pulses.update(step, g.rings)
	for _, r := range g.rings {
		r.update(step)
	}
	for _, b := range g.balls {
		b.update()
	}

	g.checkBreak()
	g.updateExplosions()
}

// countTouches counts contacts with the innermost ring. Contacts never break
// a ring; only checkBreak does.
func (g *Game) countTouches(contacts []physics.Contact) {
	for _, c := range contacts {
		if len(g.rings) == 0 || c.Ring != g.rings[0].ID {
			continue
		}
		g.balls[c.Ball].Touches++
	}
}

func (g *Game) checkBreak() {
	if len(g.rings) == 0 {
		return
	}
	inner := g.rings[0]
	var breakers []physics.BallKind
	for _, b := range g.balls {
		if !inner.Contains(b.Position()) {
			breakers = append(breakers, b.Kind)
		}
	}
	if len(breakers) > 0 {
		g.breakInnermost(breakers)
	}
}

// BreakInnermost breaks the innermost ring as if kind had left it. It
// returns false when there is no ring left.
func (g *Game) BreakInnermost(kind physics.BallKind) bool {
	if len(g.rings) == 0 {
		return false
	}
	g.breakInnermost([]physics.BallKind{kind})
	return true
}

func (g *Game) breakInnermost(breakers []physics.BallKind) {
	inner := g.rings[0]
	g.rings = g.rings[1:]
	g.explosions = append(g.explosions, inner.explode(g.env.Rand)...)
	inner.destroy()

	factor := ShrinkFactor(g.broken)
	g.broken++
	g.lastFactor = factor

	if g.timer.Scoring() {
		for _, k := range breakers {
			g.scores[k]++
			g.env.Cues.PlayBreak(k)
		}
	}
	g.pulses.start(PaletteOf(breakers[0]).Pulse)

	g.spawnRing()
	for _, r := range g.rings {
		r.ShrinkTo(r.Radius() * factor)
	}
}

// spawnRing appends one ring a step outside the largest ring ever spawned.
// Rings shrink after every break but this radius never does, so new rings
// come in around the balls again.
func (g *Game) spawnRing() {
	if len(g.rings) >= config.MaxRings {
		return
	}
	radius := g.largest + config.RingRadiusStep
	g.largest = radius
	dir := config.NewRingDirMin + g.env.Rand.Float64()*(config.NewRingDirMax-config.NewRingDirMin)
	g.rings = append(g.rings, newRing(g.env, g.nextID, radius, dir))
	g.nextID++
}

func (g *Game) updateExplosions() {
	alive := g.explosions[:0]
	for _, e := range g.explosions {
		e.update()
		if !e.Done() {
			alive = append(alive, e)
		}
	}
	for i := len(alive); i < len(g.explosions); i++ {
		g.explosions[i] = nil
	}
	g.explosions = alive
}

func (g *Game) finishRound() {
	for _, b := range g.balls {
		b.Complete = true
	}
	log.Printf("Round over: Yes %d, No %d", g.scores[physics.Yes], g.scores[physics.No])
}

func (g *Game) TogglePause() { g.paused = !g.paused }
func (g *Game) Paused() bool { return g.paused }

func (g *Game) Ball(kind physics.BallKind) *Ball { return g.balls[kind] }
func (g *Game) Rings() []*Ring                   { return g.rings }
func (g *Game) Explosions() []*Explosion         { return g.explosions }
func (g *Game) Pulses() []*Pulse                 { return g.pulses }

// Score returns the displayed score, which stays zero until scoring opens.
func (g *Game) Score(kind physics.BallKind) int {
	if !g.timer.Scoring() {
		return 0
	}
	return g.scores[kind]
}

func (g *Game) TimeLeft() float64 { return g.timer.Remaining() }
func (g *Game) RoundOver() bool   { return g.timer.Expired() }

// RingsBroken is the total number of rings broken so far.
func (g *Game) RingsBroken() int { return g.broken }

// ShrinkFactor is the factor applied by the most recent break.
func (g *Game) ShrinkFactor() float64 { return g.lastFactor }
