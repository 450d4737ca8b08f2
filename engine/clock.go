package engine

import "time"

// FrameClock derives per-frame dt from the monotonic clock and keeps a
// smoothed fps estimate for the status line
type FrameClock struct {
	last  time.Time
	fps   float64
	maxDt float32
}

// NewFrameClock creates a clock; maxDt caps the dt handed to integrators so
// a stall (window drag, suspend) does not teleport the animation
func NewFrameClock(maxDt float32) *FrameClock {
	return &FrameClock{
		last:  time.Now(),
		maxDt: maxDt,
	}
}

// Tick returns the elapsed seconds since the previous Tick, capped at maxDt
func (c *FrameClock) Tick() float32 {
	now := time.Now()
	raw := now.Sub(c.last).Seconds()
	c.last = now

	if raw > 0 {
		// Exponential smoothing keeps the readout steady
		inst := 1.0 / raw
		if c.fps == 0 {
			c.fps = inst
		} else {
			c.fps = c.fps*0.95 + inst*0.05
		}
	}

	dt := float32(raw)
	if dt > c.maxDt {
		dt = c.maxDt
	}
	if dt < 0 {
		dt = 0
	}
	return dt
}

// FPS returns the smoothed frames-per-second estimate
func (c *FrameClock) FPS() float64 {
	return c.fps
}
