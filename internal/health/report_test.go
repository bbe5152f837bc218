// internal/health/report_test.go
package health

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tamzrod/linkmon/internal/indicator"
	"github.com/tamzrod/linkmon/internal/prober"
)

func ok(ms int) TargetResult {
	return TargetResult{Result: prober.Result{OK: true, Latency: time.Duration(ms) * time.Millisecond}}
}

func failed() TargetResult {
	return TargetResult{Result: prober.Result{Err: errors.New("refused")}}
}

func TestClassifyThresholds(t *testing.T) {
	cases := []struct {
		name    string
		results []TargetResult
		want    indicator.Color
	}{
		{"none reachable", []TargetResult{failed(), failed(), failed()}, indicator.Purple},
		{"empty target list", nil, indicator.Purple},
		{"fast", []TargetResult{ok(5), ok(10), ok(15)}, indicator.Green},
		{"exactly 25 is green", []TargetResult{ok(20), ok(25), ok(30)}, indicator.Green},
		{"just above 25", []TargetResult{ok(25), ok(26)}, indicator.Orange},
		{"exactly 50 is orange", []TargetResult{ok(50)}, indicator.Orange},
		{"just above 50", []TargetResult{ok(50), ok(51)}, indicator.Red},
		{"slow", []TargetResult{ok(120), failed()}, indicator.Red},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(Tally(tc.results)))
		})
	}
}

func TestTallyIgnoresFailures(t *testing.T) {
	rep := Tally([]TargetResult{ok(30), ok(40), failed()})

	assert.Equal(t, 2, rep.SuccessCount)
	assert.Equal(t, uint64(70), rep.LatencySum)

	avg, have := rep.Average()
	assert.True(t, have)
	assert.InDelta(t, 35.0, avg, 1e-9)
}

func TestAverageUndefinedWithoutSuccesses(t *testing.T) {
	_, have := Tally([]TargetResult{failed()}).Average()
	assert.False(t, have)
}
