// internal/prober/prober.go
package prober

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tamzrod/linkmon/internal/clock"
	"github.com/tamzrod/linkmon/internal/indicator"
	"github.com/tamzrod/linkmon/internal/netif"
)

// Request is the exact probe payload: request line plus empty line, no headers.
var Request = []byte("GET / HTTP/1.0\r\n\r\n")

// MaxChunk is the largest first chunk read.
const MaxChunk = 4096

// Config is the minimal runtime config the prober needs.
type Config struct {
	Port int
	// ReadTimeout bounds the wait for the first byte. Zero blocks forever.
	ReadTimeout time.Duration
}

// DefaultConfig probes port 80 with a bounded receive.
func DefaultConfig() Config {
	return Config{
		Port:        80,
		ReadTimeout: 10 * time.Second,
	}
}

// Prober measures time-to-first-byte against one host at a time.
type Prober struct {
	cfg    Config
	dialer netif.Dialer
	lamp   *indicator.Lamp
	clock  clock.Clock
	log    *logrus.Entry
}

// New creates a prober. lamp may be nil.
func New(cfg Config, dialer netif.Dialer, lamp *indicator.Lamp, clk clock.Clock, log *logrus.Entry) (*Prober, error) {
	if dialer == nil {
		return nil, errors.New("prober: dialer required")
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("prober: invalid port %d", cfg.Port)
	}
	if cfg.ReadTimeout < 0 {
		return nil, errors.New("prober: read timeout must be >= 0")
	}
	if clk == nil {
		clk = clock.System{}
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Prober{
		cfg:    cfg,
		dialer: dialer,
		lamp:   lamp,
		clock:  clk,
		log:    log.WithField("component", "prober"),
	}, nil
}

// Probe performs exactly one measurement.
// The socket, once opened, is closed exactly once on every path.
func (p *Prober) Probe(host string) Result {
	start := p.clock.Now()
	res := Result{Host: host, At: start}

	sock, err := p.dialer.Open()
	if err != nil {
		return p.fail(res, fmt.Errorf("open socket: %w", err))
	}
	defer func() {
		if err := sock.Close(); err != nil {
			p.log.Debugf("close socket (host=%s): %v", host, err)
		}
	}()

	if err := p.exchange(sock, host); err != nil {
		return p.fail(res, err)
	}

	res.OK = true
	res.Latency = p.clock.Now().Sub(start)
	p.log.Debugf("probe %s: %s", host, res.Text())
	return res
}

func (p *Prober) exchange(sock netif.Socket, host string) error {
	addr, err := p.dialer.Resolve(host, p.cfg.Port)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", host, err)
	}
	if err := sock.Connect(addr); err != nil {
		return fmt.Errorf("connect %s: %w", addr, err)
	}
	if _, err := sock.Send(Request); err != nil {
		return fmt.Errorf("send %s: %w", addr, err)
	}

	sock.SetReadTimeout(p.cfg.ReadTimeout)
	data, err := sock.Receive(MaxChunk)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("receive %s: connection closed without data", addr)
		}
		return fmt.Errorf("receive %s: %w", addr, err)
	}
	if len(data) == 0 {
		return fmt.Errorf("receive %s: empty response", addr)
	}
	return nil
}

func (p *Prober) fail(res Result, err error) Result {
	res.OK = false
	res.Err = err
	p.log.Warnf("probe %s failed: %v", res.Host, err)

	// Interim cue; the cycle colour overwrites it.
	if p.lamp != nil {
		p.lamp.Set(indicator.Off)
	}
	return res
}
