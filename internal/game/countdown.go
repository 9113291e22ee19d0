package game

import "github.com/iburimskiy/yes-no-rings/internal/config"

// Countdown runs from TimerStart to zero. Scoring opens once the remaining
// time reaches ScoreThreshold and stays open.
type Countdown struct {
	remaining float64
	scoring   bool
	expired   bool
}

func NewCountdown() Countdown {
	return Countdown{remaining: config.TimerStart}
}

// Tick subtracts dt and reports whether the countdown hit zero on this call.
func (c *Countdown) Tick(dt float64) bool {
	c.remaining -= dt
	if c.remaining < 0 {
		c.remaining = 0
	}
	if c.remaining <= config.ScoreThreshold {
		c.scoring = true
	}
	if c.remaining == 0 && !c.expired {
		c.expired = true
		return true
	}
	return false
}

func (c Countdown) Remaining() float64 { return c.remaining }
func (c Countdown) Scoring() bool      { return c.scoring }
func (c Countdown) Expired() bool      { return c.expired }
