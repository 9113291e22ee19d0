package game

import (
	"image/color"

	"github.com/iburimskiy/yes-no-rings/internal/config"
)

// Pulse is a colour highlight travelling outward one ring at a time.
type Pulse struct {
	Index   int
	Colors  [config.PulseWidth]color.RGBA
	elapsed float64
}

type pulseQueue []*Pulse

func (q *pulseQueue) start(colors [config.PulseWidth]color.RGBA) {
	*q = append(*q, &Pulse{Colors: colors})
}

// update advances every pulse, retires those past the last ring and paints
// the rest. Ring colours are recomputed from scratch each call.
func (q *pulseQueue) update(dt float64, rings []*Ring) {
	for _, r := range rings {
		r.clearPulse()
	}

	kept := (*q)[:0]
	for _, p := range *q {
		p.elapsed += dt
		if p.elapsed > config.PulseDuration {
			p.Index++
			p.elapsed = 0
		}
		if p.Index >= len(rings) {
			continue
		}
		for off, c := range p.Colors {
			if p.Index+off >= len(rings) {
				break
			}
			rings[p.Index+off].setPulse(c, 1)
		}
		kept = append(kept, p)
	}
	for i := len(kept); i < len(*q); i++ {
		(*q)[i] = nil
	}
	*q = kept
}
