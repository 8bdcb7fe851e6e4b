package testutil

import "time"

// FixedClock always reports the same instant.
type FixedClock time.Time

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time { return time.Time(c) }

// StepClock advances by Step on every reading.
type StepClock struct {
	next time.Time
	Step time.Duration
}

// NewStepClock returns a clock whose first reading is start.
func NewStepClock(start time.Time, step time.Duration) *StepClock {
	return &StepClock{next: start, Step: step}
}

// Now returns the current reading and advances the clock.
func (c *StepClock) Now() time.Time {
	t := c.next
	c.next = c.next.Add(c.Step)
	return t
}
