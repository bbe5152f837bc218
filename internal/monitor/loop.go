// internal/monitor/loop.go
package monitor

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tamzrod/linkmon/internal/association"
	"github.com/tamzrod/linkmon/internal/clock"
	"github.com/tamzrod/linkmon/internal/health"
	"github.com/tamzrod/linkmon/internal/indicator"
	"github.com/tamzrod/linkmon/internal/netif"
)

// HeartbeatPulse is how long White stays up between failed join attempts.
const HeartbeatPulse = 50 * time.Millisecond

// Associator is the association contract the loop depends on.
type Associator interface {
	EnsureAssociated(creds netif.Credentials) (association.State, error)
}

// Cycler runs one probe-and-report pass.
type Cycler interface {
	Cycle(targets []health.Target) health.CycleReport
}

// Loop ties association and reporting together forever.
type Loop struct {
	creds   netif.Credentials
	targets []health.Target
	assoc   Associator
	cycler  Cycler
	lamp    *indicator.Lamp
	clock   clock.Clock
	log     *logrus.Entry

	iterations uint64
}

// New creates the main loop. targets is copied and never mutated.
func New(creds netif.Credentials, targets []health.Target, assoc Associator, cycler Cycler, lamp *indicator.Lamp, clk clock.Clock, log *logrus.Entry) (*Loop, error) {
	if assoc == nil || cycler == nil {
		return nil, errors.New("monitor: associator and cycler required")
	}
	if lamp == nil {
		return nil, errors.New("monitor: indicator required")
	}
	if len(targets) == 0 {
		return nil, errors.New("monitor: at least one target required")
	}
	if clk == nil {
		clk = clock.System{}
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	own := make([]health.Target, len(targets))
	copy(own, targets)

	return &Loop{
		creds:   creds,
		targets: own,
		assoc:   assoc,
		cycler:  cycler,
		lamp:    lamp,
		clock:   clk,
		log:     log.WithField("component", "monitor"),
	}, nil
}

// Run never returns except with a *association.FatalDriverError.
func (l *Loop) Run() error {
	for {
		if _, err := l.RunOnce(); err != nil {
			return err
		}
	}
}

// RunOnce associates (retrying until Connected) and then runs one cycle.
func (l *Loop) RunOnce() (health.CycleReport, error) {
	if err := l.Associate(); err != nil {
		return health.CycleReport{}, err
	}
	l.iterations++
	l.log.Debugf("cycle %d", l.iterations)
	return l.cycler.Cycle(l.targets), nil
}

// Associate re-invokes the associator until Connected.
// Every failed attempt pulses the indicator White then Off.
func (l *Loop) Associate() error {
	for {
		state, err := l.assoc.EnsureAssociated(l.creds)
		if err != nil {
			return err
		}
		if state == association.Connected {
			return nil
		}

		l.log.Warn("network has not connected, retrying")
		l.lamp.Set(indicator.White)
		l.clock.Sleep(HeartbeatPulse)
		l.lamp.Set(indicator.Off)
	}
}

// Iterations returns completed cycles.
func (l *Loop) Iterations() uint64 { return l.iterations }
