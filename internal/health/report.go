// internal/health/report.go
package health

import (
	"github.com/tamzrod/linkmon/internal/indicator"
	"github.com/tamzrod/linkmon/internal/prober"
)

// Classification thresholds in milliseconds.
// These values are the visual protocol and MUST NOT be configurable.
const (
	RedAboveMs    = 50.0
	OrangeAboveMs = 25.0
)

// Target is one probe destination and its display label.
type Target struct {
	Host  string
	Label string
}

// TargetResult pairs a target with this cycle's outcome.
type TargetResult struct {
	Target Target
	Result prober.Result
}

// CycleReport aggregates one full pass over the targets.
// Lifetime is one loop iteration.
type CycleReport struct {
	Results      []TargetResult
	SuccessCount int
	LatencySum   uint64 // milliseconds, successes only
}

// Tally builds a report from ordered results.
func Tally(results []TargetResult) CycleReport {
	rep := CycleReport{Results: results}
	for _, r := range results {
		if !r.Result.OK {
			continue
		}
		rep.SuccessCount++
		rep.LatencySum += r.Result.Millis()
	}
	return rep
}

// Average returns the mean successful latency. ok is false with zero successes.
func (r CycleReport) Average() (avg float64, ok bool) {
	if r.SuccessCount == 0 {
		return 0, false
	}
	return float64(r.LatencySum) / float64(r.SuccessCount), true
}

// Classify maps a report to the indicator colour.
//
//	no successes        -> Purple
//	average > 50        -> Red
//	25 < average <= 50  -> Orange
//	average <= 25       -> Green
func Classify(r CycleReport) indicator.Color {
	avg, ok := r.Average()
	switch {
	case !ok:
		return indicator.Purple
	case avg > RedAboveMs:
		return indicator.Red
	case avg > OrangeAboveMs:
		return indicator.Orange
	default:
		return indicator.Green
	}
}
