package physics

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/iburimskiy/yes-no-rings/internal/config"
)

// RingBody is a kinematic body carrying the open arc of a ring as segment
// shapes. Chipmunk cannot resize a segment in place, so a radius change
// removes every shape and builds the arc again.
type RingBody struct {
	space  *cp.Space
	body   *cp.Body
	shapes []*cp.Shape
	local  []cp.Vector
}

// NewRing adds a ring centred at center. The ring does not spin by itself;
// the caller turns it with Rotate.
func (w *World) NewRing(id int, center cp.Vector, radius float64) *RingBody {
	body := cp.NewKinematicBody()
	body.SetPosition(center)
	body.SetAngle(config.RingStartAngle * math.Pi / 180)
	body.UserData = RingTag{ID: id}
	w.space.AddBody(body)

	r := &RingBody{space: w.space, body: body}
	r.Rebuild(radius)
	return r
}

// Rebuild replaces the ring's segment shapes with an arc of the given radius.
func (r *RingBody) Rebuild(radius float64) {
	for _, s := range r.shapes {
		r.space.RemoveShape(s)
	}
	r.shapes = r.shapes[:0]

	r.local = ArcVertices(config.RingVertexCount, radius)
	for i := 0; i+1 < len(r.local); i++ {
		seg := cp.NewSegment(r.body, r.local[i], r.local[i+1], 0)
		seg.SetElasticity(config.RingElasticity)
		seg.SetFriction(0)
		seg.SetCollisionType(ringCollision)
		r.shapes = append(r.shapes, r.space.AddShape(seg))
	}
}

// Outline returns the arc vertices in world space, in order.
func (r *RingBody) Outline() []cp.Vector {
	out := make([]cp.Vector, len(r.local))
	for i, v := range r.local {
		out[i] = r.body.LocalToWorld(v)
	}
	return out
}

// SegmentCount is the number of edge shapes currently attached.
func (r *RingBody) SegmentCount() int {
	return len(r.shapes)
}

// Rotate turns the ring by delta radians.
func (r *RingBody) Rotate(delta float64) {
	r.body.SetAngle(r.body.Angle() + delta)
}

// Remove deletes the ring's shapes and body from the space.
func (r *RingBody) Remove() {
	for _, s := range r.shapes {
		r.space.RemoveShape(s)
	}
	r.shapes = nil
	r.space.RemoveBody(r.body)
}

// ArcVertices returns the polyline of an n-gon of the given radius covering
// the edges whose start angle lies in [RingGapEndDegrees, 360]. The edges
// before that angle are left out and form the exit gap.
func ArcVertices(n int, radius float64) []cp.Vector {
	vertex := func(i int) cp.Vector {
		a := float64(i%n) * 2 * math.Pi / float64(n)
		return cp.Vector{X: radius * math.Cos(a), Y: radius * math.Sin(a)}
	}

	var out []cp.Vector
	for i := 0; i < n; i++ {
		deg := float64(i) * 360 / float64(n)
		if deg < config.RingGapEndDegrees {
			continue
		}
		if len(out) == 0 {
			out = append(out, vertex(i))
		}
		out = append(out, vertex(i+1))
	}
	return out
}
