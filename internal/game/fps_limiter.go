package game

import (
	"time"

	"shinage/internal/config"
)

// spinWindow is how close to the deadline Wait stops sleeping and spins.
const spinWindow = 200 * time.Microsecond

// FPSLimiter paces frames to config.GetFPSLimit.
type FPSLimiter struct {
	next  time.Time
	limit func() int
}

func NewFPSLimiter() *FPSLimiter {
	return &FPSLimiter{limit: config.GetFPSLimit}
}

// Wait blocks until the next frame is due. A limit of zero or less disables
// pacing. Deadlines advance by a fixed step so short frames do not drift;
// after a hitch longer than one step the schedule restarts from now.
func (f *FPSLimiter) Wait() {
	limit := f.limit()
	if limit <= 0 {
		f.next = time.Time{}
		return
	}
	target := time.Second / time.Duration(limit)

	if f.next.IsZero() {
		f.next = time.Now().Add(target)
	} else {
		f.next = f.next.Add(target)
	}

	for {
		remaining := time.Until(f.next)
		if remaining <= 0 {
			break
		}
		if remaining > spinWindow {
			time.Sleep(remaining - spinWindow)
		}
	}

	if late := -time.Until(f.next); late > target {
		f.next = time.Now().Add(target)
	}
}
