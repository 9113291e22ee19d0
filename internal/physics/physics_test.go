package physics

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestContactOfEitherOrder(t *testing.T) {
	tests := []struct {
		name string
		a, b Tag
		want Contact
		ok   bool
	}{
		{"ball first", BallTag{Kind: No}, RingTag{ID: 7}, Contact{Ball: No, Ring: 7}, true},
		{"ring first", RingTag{ID: 3}, BallTag{Kind: Yes}, Contact{Ball: Yes, Ring: 3}, true},
		{"two balls", BallTag{Kind: Yes}, BallTag{Kind: No}, Contact{}, false},
		{"two rings", RingTag{ID: 1}, RingTag{ID: 2}, Contact{}, false},
		{"untagged", nil, RingTag{ID: 1}, Contact{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := contactOf(tt.a, tt.b)
			if ok != tt.ok || got != tt.want {
				t.Errorf("contactOf() = %+v, %v; want %+v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestPointInPolygon(t *testing.T) {
	square := []cp.Vector{{X: -1, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1}}
	tests := []struct {
		p    cp.Vector
		want bool
	}{
		{cp.Vector{X: 0, Y: 0}, true},
		{cp.Vector{X: 0.9, Y: -0.9}, true},
		{cp.Vector{X: 1.5, Y: 0}, false},
		{cp.Vector{X: 0, Y: -3}, false},
	}
	for _, tt := range tests {
		if got := PointInPolygon(tt.p, square); got != tt.want {
			t.Errorf("PointInPolygon(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
	if PointInPolygon(cp.Vector{}, nil) {
		t.Error("empty polygon should contain nothing")
	}
}

func TestArcVertices(t *testing.T) {
	verts := ArcVertices(50, 2)
	// edges 13..49 inclusive, closed back at vertex 0
	if len(verts) != 38 {
		t.Fatalf("got %d vertices, want 38", len(verts))
	}
	for i, v := range verts {
		if r := v.Length(); math.Abs(r-2) > 1e-9 {
			t.Errorf("vertex %d at radius %f", i, r)
		}
	}
	last := verts[len(verts)-1]
	if math.Abs(last.X-2) > 1e-9 || math.Abs(last.Y) > 1e-9 {
		t.Errorf("arc should end at angle 0, got %v", last)
	}
}

func TestViewportRoundTrip(t *testing.T) {
	v := Viewport{Width: 540, Height: 960, PPM: 10}
	p := v.ToWorld(100, 200)
	x, y := v.ToScreen(p)
	if math.Abs(x-100) > 1e-9 || math.Abs(y-200) > 1e-9 {
		t.Errorf("round trip got (%f, %f)", x, y)
	}
	c := v.Center()
	if c.X != 27 || c.Y != 48 {
		t.Errorf("Center() = %v", c)
	}
}

func TestRingRebuildReplacesShapes(t *testing.T) {
	w := NewWorld()
	r := w.NewRing(1, cp.Vector{}, 3)
	if r.SegmentCount() != 37 {
		t.Fatalf("got %d segments, want 37", r.SegmentCount())
	}
	r.Rebuild(1.5)
	if r.SegmentCount() != 37 {
		t.Errorf("rebuild changed segment count to %d", r.SegmentCount())
	}
	for _, v := range r.Outline() {
		if math.Abs(v.Length()-1.5) > 1e-9 {
			t.Fatalf("outline vertex %v not at new radius", v)
		}
	}
	r.Remove()
	if r.SegmentCount() != 0 {
		t.Errorf("Remove left %d shapes", r.SegmentCount())
	}
}

func TestBallFallingOntoRingIsReported(t *testing.T) {
	w := NewWorld()
	var seen []Contact
	w.OnContact = func(c Contact) { seen = append(seen, c) }

	w.NewRing(4, cp.Vector{}, 5)
	w.NewBall(No, cp.Vector{}, cp.Vector{}, 1)

	var drained []Contact
	for i := 0; i < 120; i++ {
		w.Step()
		drained = append(drained, w.DrainContacts()...)
	}
	if len(drained) == 0 {
		t.Fatal("no contact recorded")
	}
	if drained[0] != (Contact{Ball: No, Ring: 4}) {
		t.Errorf("first contact = %+v", drained[0])
	}
	if len(seen) != len(drained) {
		t.Errorf("hook saw %d contacts, queue had %d", len(seen), len(drained))
	}
	if w.DrainContacts() != nil {
		t.Error("queue not cleared after drain")
	}
}

func TestRingRotate(t *testing.T) {
	w := NewWorld()
	r := w.NewRing(1, cp.Vector{}, 2)
	before := r.Outline()[0]

	r.Rotate(0.5)
	after := r.Outline()[0]
	got := math.Atan2(after.Y, after.X) - math.Atan2(before.Y, before.X)
	if math.Abs(got-0.5) > 1e-9 {
		t.Errorf("outline turned by %f, want 0.5", got)
	}

	for i := 0; i < 120; i++ {
		w.Step()
	}
	if moved := r.Outline()[0]; math.Abs(moved.X-after.X) > 1e-9 || math.Abs(moved.Y-after.Y) > 1e-9 {
		t.Errorf("ring turned during Step: %v -> %v", after, moved)
	}
}
