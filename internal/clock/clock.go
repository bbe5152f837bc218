// internal/clock/clock.go
package clock

import "time"

// Clock is the only way the core waits or reads time.
// Sleep blocks the caller; there is no cancellation.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// System is the wall clock.
type System struct{}

func (System) Now() time.Time { return time.Now() }

func (System) Sleep(d time.Duration) {
	if d <= 0 {
		return
	}
	time.Sleep(d)
}
