// Package physics wraps the Chipmunk2D space used by the toy: one dynamic
// circle body per ball, one kinematic arc body per ring, and a begin-contact
// observer that queues ball/ring touches for the frame update to drain.
package physics

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/iburimskiy/yes-no-rings/internal/config"
)

const (
	ballCollision cp.CollisionType = iota + 1
	ringCollision
)

// Contact is a begin-contact event between a ball and a ring.
type Contact struct {
	Ball BallKind
	Ring int
}

// World owns the physics space and the per-frame contact queue.
type World struct {
	space    *cp.Space
	contacts []Contact

	// OnContact runs inside Step for every queued contact.
	OnContact func(Contact)
}

func NewWorld() *World {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{X: 0, Y: config.GravityY})
	space.Iterations = config.SolverIterations

	w := &World{space: space}
	handler := space.NewCollisionHandler(ballCollision, ringCollision)
	handler.BeginFunc = w.beginContact
	return w
}

// Step advances the simulation by one fixed step.
func (w *World) Step() {
	w.space.Step(config.PhysicsStep)
}

// DrainContacts returns the contacts recorded since the last call and clears the queue.
func (w *World) DrainContacts() []Contact {
	if len(w.contacts) == 0 {
		return nil
	}
	out := w.contacts
	w.contacts = nil
	return out
}

func (w *World) beginContact(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
	a, b := arb.Shapes()
	c, ok := contactOf(TagOf(a.Body()), TagOf(b.Body()))
	if !ok {
		return true
	}
	w.contacts = append(w.contacts, c)
	if w.OnContact != nil {
		w.OnContact(c)
	}
	return true
}

// contactOf matches a (ball, ring) pair in either order.
func contactOf(a, b Tag) (Contact, bool) {
	switch a := a.(type) {
	case BallTag:
		if r, ok := b.(RingTag); ok {
			return Contact{Ball: a.Kind, Ring: r.ID}, true
		}
	case RingTag:
		if ball, ok := b.(BallTag); ok {
			return Contact{Ball: ball.Kind, Ring: a.ID}, true
		}
	}
	return Contact{}, false
}

// NewBall adds a dynamic circle body for a ball.
func (w *World) NewBall(kind BallKind, pos, vel cp.Vector, radius float64) *cp.Body {
	mass := config.BallDensity * math.Pi * radius * radius
	body := cp.NewBody(mass, cp.MomentForCircle(mass, 0, radius, cp.Vector{}))
	body.SetPosition(pos)
	body.SetVelocity(vel.X, vel.Y)
	body.UserData = BallTag{Kind: kind}
	w.space.AddBody(body)

	shape := cp.NewCircle(body, radius, cp.Vector{})
	shape.SetElasticity(config.BallElasticity)
	shape.SetFriction(0)
	shape.SetCollisionType(ballCollision)
	w.space.AddShape(shape)
	return body
}
