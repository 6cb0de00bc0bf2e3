package components

// Countdown is a tick-counted timer with optional phase thresholds.
// Thresholds are remaining-tick values in descending order; each one crossed
// advances Phase by one. The countdown never goes below zero.
type Countdown struct {
	Remaining  int
	Phase      int
	thresholds []int
}

// NewCountdown returns a countdown starting at ticks.
func NewCountdown(ticks int, thresholds ...int) Countdown {
	c := Countdown{thresholds: thresholds}
	c.Reset(ticks)
	return c
}

// Reset restarts the countdown at ticks and recomputes the phase.
func (c *Countdown) Reset(ticks int) {
	if ticks < 0 {
		ticks = 0
	}
	c.Remaining = ticks
	c.Phase = c.phaseFor(ticks)
}

// Tick decrements once. phaseChanged is set when a threshold was crossed,
// expired only on the tick the countdown reaches zero.
func (c *Countdown) Tick() (phaseChanged, expired bool) {
	if c.Remaining <= 0 {
		return false, false
	}
	c.Remaining--
	if p := c.phaseFor(c.Remaining); p != c.Phase {
		c.Phase = p
		phaseChanged = true
	}
	return phaseChanged, c.Remaining == 0
}

// Active reports whether ticks remain.
func (c *Countdown) Active() bool {
	return c.Remaining > 0
}

func (c *Countdown) phaseFor(remaining int) int {
	phase := 0
	for _, th := range c.thresholds {
		if remaining <= th {
			phase++
		}
	}
	return phase
}
