// internal/clock/manual_test.go
package clock

import (
	"testing"
	"time"
)

func TestManualSleepAdvancesAndRecords(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewManual(start)

	c.Sleep(time.Second)
	c.Sleep(50 * time.Millisecond)
	c.Advance(5 * time.Millisecond)

	if got := c.Now().Sub(start); got != 1055*time.Millisecond {
		t.Fatalf("unexpected elapsed: got=%v want=1.055s", got)
	}
	if got := c.Slept(); got != 1050*time.Millisecond {
		t.Fatalf("unexpected slept: got=%v want=1.05s", got)
	}
	if n := len(c.Sleeps()); n != 2 {
		t.Fatalf("expected 2 sleeps, got %d", n)
	}
}
