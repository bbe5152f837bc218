// internal/health/reporter.go
package health

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tamzrod/linkmon/internal/clock"
	"github.com/tamzrod/linkmon/internal/display"
	"github.com/tamzrod/linkmon/internal/indicator"
	"github.com/tamzrod/linkmon/internal/prober"
)

// Prober abstracts the single-host measurement the reporter depends on.
type Prober interface {
	Probe(host string) prober.Result
}

// Config is the minimal runtime config the reporter needs.
type Config struct {
	Rotations    int           // page cycles per report
	PageHold     time.Duration // time each target page stays up
	DegradedHold time.Duration // Purple hold when nothing answered
}

// DefaultConfig matches a low-refresh 64x48 panel.
func DefaultConfig() Config {
	return Config{
		Rotations:    3,
		PageHold:     time.Second,
		DegradedHold: 10 * time.Second,
	}
}

// Page text positions on the panel.
var (
	labelPos  = display.Line{X: 0, Y: 10}
	resultPos = display.Line{X: 0, Y: 20}
)

// Reporter runs probe cycles and drives the indicator and display.
// It holds no state across cycles.
type Reporter struct {
	cfg    Config
	prober Prober
	lamp   *indicator.Lamp
	screen *display.Screen
	clock  clock.Clock
	log    *logrus.Entry
}

// New creates a reporter with immutable config.
func New(cfg Config, p Prober, lamp *indicator.Lamp, screen *display.Screen, clk clock.Clock, log *logrus.Entry) (*Reporter, error) {
	if p == nil {
		return nil, errors.New("health: prober required")
	}
	if lamp == nil || screen == nil {
		return nil, errors.New("health: indicator and display required")
	}
	if cfg.Rotations < 0 {
		return nil, errors.New("health: rotations must be >= 0")
	}
	if clk == nil {
		clk = clock.System{}
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Reporter{
		cfg:    cfg,
		prober: p,
		lamp:   lamp,
		screen: screen,
		clock:  clk,
		log:    log.WithField("component", "health"),
	}, nil
}

// Cycle runs one pass over targets, reports it, and returns the report.
func (r *Reporter) Cycle(targets []Target) CycleReport {
	rep := r.RunCycle(targets)
	r.Report(rep)
	return rep
}

// RunCycle probes every target in order. A failing target never aborts the pass.
func (r *Reporter) RunCycle(targets []Target) CycleReport {
	results := make([]TargetResult, 0, len(targets))

	for i, t := range targets {
		res := r.prober.Probe(t.Host)
		results = append(results, TargetResult{Target: t, Result: res})

		r.log.Infof("connection %d to %s took %s", i+1, t.Host, res.Text())
	}

	rep := Tally(results)
	if avg, ok := rep.Average(); ok {
		r.log.WithFields(logrus.Fields{
			"connections_made": rep.SuccessCount,
			"total_latency_ms": rep.LatencySum,
			"average_ms":       avg,
		}).Info("cycle complete")
	} else {
		r.log.WithField("targets", len(targets)).Warn("cycle complete: no target reachable")
	}
	return rep
}

// Report sets the class colour and rotates per-target pages,
// then resets the indicator and display for the next cycle.
func (r *Reporter) Report(rep CycleReport) {
	color := Classify(rep)
	r.lamp.Set(color)

	if rep.SuccessCount == 0 {
		r.clock.Sleep(r.cfg.DegradedHold)
	} else {
		r.rotate(rep.Results)
	}

	r.screen.Blank()
	r.lamp.Set(indicator.Off)
}

func (r *Reporter) rotate(results []TargetResult) {
	for i := 0; i < r.cfg.Rotations; i++ {
		for _, tr := range results {
			r.screen.Show(
				display.Line{X: labelPos.X, Y: labelPos.Y, Text: tr.Target.Label},
				display.Line{X: resultPos.X, Y: resultPos.Y, Text: tr.Result.Text()},
			)
			r.clock.Sleep(r.cfg.PageHold)
			r.screen.ClearBuffer()
		}
	}
}
