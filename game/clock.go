package game

import (
	"math"
	"time"
)

// MaxFrame caps the time a single Advance may account for. Longer frames,
// such as after the process was suspended, are cut to MaxFrame.
const MaxFrame = time.Minute

// Stepper is driven by a Clock.
type Stepper interface {
	MoveStep()
	SpawnStep()
}

// Clock turns variable frame times into fixed-interval movement and food
// ticks. Leftover time is carried into the next Advance.
type Clock struct {
	moveInterval time.Duration
	foodInterval time.Duration
	moveAcc      time.Duration
	foodAcc      time.Duration
	stepper      Stepper
}

func NewClock(moveInterval, foodInterval time.Duration, stepper Stepper) *Clock {
	return &Clock{
		moveInterval: moveInterval,
		foodInterval: foodInterval,
		stepper:      stepper,
	}
}

// Advance adds elapsed to both accumulators and fires every tick that is
// due. Negative durations are ignored and anything above MaxFrame counts
// as MaxFrame.
func (c *Clock) Advance(elapsed time.Duration) {
	if elapsed <= 0 {
		return
	}
	if elapsed > MaxFrame {
		elapsed = MaxFrame
	}

	c.moveAcc += elapsed
	for c.moveAcc >= c.moveInterval {
		c.stepper.MoveStep()
		c.moveAcc -= c.moveInterval
	}

	c.foodAcc += elapsed
	for c.foodAcc >= c.foodInterval {
		c.stepper.SpawnStep()
		c.foodAcc -= c.foodInterval
	}
}

// AdvanceSeconds is Advance for frame times reported as float seconds.
// NaN is ignored.
func (c *Clock) AdvanceSeconds(elapsed float64) {
	if math.IsNaN(elapsed) || elapsed <= 0 {
		return
	}
	if elapsed >= MaxFrame.Seconds() {
		c.Advance(MaxFrame)
		return
	}
	c.Advance(time.Duration(elapsed * float64(time.Second)))
}

func (c *Clock) Reset() {
	c.moveAcc = 0
	c.foodAcc = 0
}

// Pending returns the time accumulated towards the next movement and food
// ticks.
func (c *Clock) Pending() (move, food time.Duration) {
	return c.moveAcc, c.foodAcc
}
