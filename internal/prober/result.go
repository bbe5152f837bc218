// internal/prober/result.go
package prober

import (
	"strconv"
	"time"
)

// FailedText is the display text for a failed probe.
const FailedText = "Failed"

// Result is one probe outcome: Success(Latency) or Failure(Err).
type Result struct {
	Host    string
	OK      bool
	Latency time.Duration // start to first received chunk
	Err     error
	At      time.Time
}

// Millis returns the latency in whole milliseconds. Zero on failure.
func (r Result) Millis() uint64 {
	if !r.OK || r.Latency < 0 {
		return 0
	}
	return uint64(r.Latency / time.Millisecond)
}

// Text is the display form: "<n>ms" or "Failed".
func (r Result) Text() string {
	if !r.OK {
		return FailedText
	}
	return strconv.FormatUint(r.Millis(), 10) + "ms"
}
