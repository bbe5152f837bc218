// internal/association/manager.go
package association

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tamzrod/linkmon/internal/clock"
	"github.com/tamzrod/linkmon/internal/display"
	"github.com/tamzrod/linkmon/internal/indicator"
	"github.com/tamzrod/linkmon/internal/netif"
)

// Config is the minimal runtime config the manager needs.
type Config struct {
	MaxAttempts  int           // polling iterations before giving up
	PollInterval time.Duration // fixed, no backoff
	FatalHold    time.Duration // White shown before a fatal return
	JoinedHold   time.Duration // "Joined WiFi" banner time
}

// DefaultConfig bounds one attempt to roughly 30 seconds.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:  30,
		PollInterval: time.Second,
		FatalHold:    5 * time.Second,
		JoinedHold:   50 * time.Millisecond,
	}
}

// Manager drives a Station through connect / poll / timeout.
type Manager struct {
	cfg     Config
	station netif.Station
	lamp    *indicator.Lamp
	screen  *display.Screen
	clock   clock.Clock
	log     *logrus.Entry

	state    State
	attempts int
}

// New creates a manager with immutable config.
func New(cfg Config, station netif.Station, lamp *indicator.Lamp, screen *display.Screen, clk clock.Clock, log *logrus.Entry) (*Manager, error) {
	if station == nil {
		return nil, errors.New("association: station required")
	}
	if lamp == nil || screen == nil {
		return nil, errors.New("association: indicator and display required")
	}
	if cfg.MaxAttempts <= 0 {
		return nil, errors.New("association: max attempts must be > 0")
	}
	if cfg.PollInterval <= 0 {
		return nil, errors.New("association: poll interval must be > 0")
	}
	if clk == nil {
		clk = clock.System{}
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Manager{
		cfg:     cfg,
		station: station,
		lamp:    lamp,
		screen:  screen,
		clock:   clk,
		log:     log.WithField("component", "association"),
		state:   Disconnected,
	}, nil
}

// State returns the last terminal or transient state.
func (m *Manager) State() State { return m.state }

// Attempts returns the polling iterations used by the last join attempt.
func (m *Manager) Attempts() int { return m.attempts }

// EnsureAssociated returns Connected or Failed.
// A non-nil error is always a *FatalDriverError.
func (m *Manager) EnsureAssociated(creds netif.Credentials) (State, error) {
	if err := m.station.Activate(true); err != nil {
		return m.fatal("activate", err)
	}

	// Already joined: no side effects.
	if m.station.IsAssociated() {
		m.state = Connected
		return m.state, nil
	}

	m.log.Infof("connecting to network %q", creds.SSID)
	m.state = Connecting
	m.attempts = 0

	if err := m.station.Connect(creds.SSID, creds.Passphrase); err != nil {
		return m.fatal("connect", err)
	}

	for !m.station.IsAssociated() {
		if m.attempts >= m.cfg.MaxAttempts {
			m.log.Warnf("connection failed after %d attempts", m.attempts)
			if err := m.station.Activate(false); err != nil {
				m.log.Warnf("deactivate failed: %v", err)
			}
			m.state = Failed
			return m.state, nil
		}
		m.attempts++
		m.log.Debugf("waiting for association (%d/%d)", m.attempts, m.cfg.MaxAttempts)
		m.clock.Sleep(m.cfg.PollInterval)
	}

	m.state = Connected
	m.joined()
	return m.state, nil
}

func (m *Manager) joined() {
	if cfg, err := m.station.Config(); err != nil {
		m.log.Warnf("network connected, config unavailable: %v", err)
	} else {
		m.log.WithFields(logrus.Fields{
			"ip":      cfg.IP,
			"netmask": cfg.Netmask,
			"gateway": cfg.Gateway,
			"dns":     cfg.DNS,
		}).Info("network connected")
	}

	m.lamp.Set(indicator.Off)
	m.screen.Show(
		display.Line{X: 10, Y: 5, Text: "Joined"},
		display.Line{X: 17, Y: 15, Text: "WiFi"},
	)
	m.clock.Sleep(m.cfg.JoinedHold)
	m.screen.Blank()
}

func (m *Manager) fatal(op string, err error) (State, error) {
	m.log.Errorf("%s failed: %v", op, err)
	m.lamp.Set(indicator.White)
	m.clock.Sleep(m.cfg.FatalHold)
	m.state = Failed
	return m.state, &FatalDriverError{Op: op, Err: err}
}
