package game

import (
	"math"

	"github.com/iburimskiy/yes-no-rings/internal/config"
)

// ShrinkFactor is the radius multiplier applied after a break when broken
// rings had already been broken before it. It decays with broken and never
// drops below ShrinkFloor.
func ShrinkFactor(broken int) float64 {
	n := float64(broken)
	growth := math.Pow(config.ShrinkGrowth, math.Pow(n, config.ShrinkExponent)) - 1
	return math.Max(config.ShrinkBase-growth*config.ShrinkScale, config.ShrinkFloor)
}
