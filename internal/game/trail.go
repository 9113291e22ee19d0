package game

import "github.com/jakecoffman/cp"

// trail records the last N ball positions in a ring buffer; once full the
// oldest position is overwritten.
type trail struct {
	buffer    []cp.Vector
	nextIndex int
	size      int
}

func newTrail(capacity int) *trail {
	return &trail{buffer: make([]cp.Vector, capacity)}
}

func (t *trail) push(p cp.Vector) {
	t.buffer[t.nextIndex] = p
	t.nextIndex++
	if t.nextIndex >= len(t.buffer) {
		t.nextIndex = 0
	}
	if t.size < len(t.buffer) {
		t.size++
	}
}

func (t *trail) len() int { return t.size }

// snapshot returns the recorded positions, oldest first.
func (t *trail) snapshot() []cp.Vector {
	out := make([]cp.Vector, 0, t.size)
	// Walk forward from the oldest slot
	idx := t.nextIndex - t.size
	if idx < 0 {
		idx += len(t.buffer)
	}
	for i := 0; i < t.size; i++ {
		out = append(out, t.buffer[idx])
		idx++
		if idx >= len(t.buffer) {
			idx = 0
		}
	}
	return out
}
