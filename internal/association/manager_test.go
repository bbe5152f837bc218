// internal/association/manager_test.go
package association

import (
	"errors"
	"testing"
	"time"

	"github.com/tamzrod/linkmon/internal/clock"
	"github.com/tamzrod/linkmon/internal/display"
	"github.com/tamzrod/linkmon/internal/indicator"
	"github.com/tamzrod/linkmon/internal/netif"
)

// fakeStation associates after a fixed number of IsAssociated polls made
// once Connect has been issued. associateAfter < 0 never associates.
type fakeStation struct {
	associated     bool
	associateAfter int
	activateErr    error
	connectErr     error

	polls       int
	connects    int
	activations []bool
}

func (f *fakeStation) Activate(on bool) error {
	f.activations = append(f.activations, on)
	if on {
		return f.activateErr
	}
	return nil
}

func (f *fakeStation) Connect(ssid, pass string) error {
	f.connects++
	return f.connectErr
}

func (f *fakeStation) IsAssociated() bool {
	if f.associated {
		return true
	}
	if f.connects == 0 {
		return false
	}
	f.polls++
	if f.associateAfter >= 0 && f.polls > f.associateAfter {
		f.associated = true
	}
	return f.associated
}

func (f *fakeStation) Config() (netif.IfConfig, error) {
	return netif.IfConfig{IP: "192.168.1.50", Netmask: "255.255.255.0"}, nil
}

type harness struct {
	mgr    *Manager
	lamp   *indicator.Recorder
	screen *display.Recorder
	clk    *clock.Manual
}

func newHarness(t *testing.T, st *fakeStation) harness {
	t.Helper()
	lampRec := &indicator.Recorder{}
	screenRec := &display.Recorder{}
	clk := clock.NewManual(time.Unix(0, 0))

	m, err := New(DefaultConfig(), st,
		indicator.NewLamp(lampRec, nil),
		display.NewScreen(screenRec, nil),
		clk, nil)
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}
	return harness{mgr: m, lamp: lampRec, screen: screenRec, clk: clk}
}

var creds = netif.Credentials{SSID: "54g", Passphrase: "secret"}

func TestAlreadyAssociatedHasNoSideEffects(t *testing.T) {
	st := &fakeStation{associated: true}
	h := newHarness(t, st)

	state, err := h.mgr.EnsureAssociated(creds)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state != Connected {
		t.Fatalf("state: got=%s want=connected", state)
	}
	if st.connects != 0 {
		t.Fatalf("connect must not be issued, got %d", st.connects)
	}
	if len(h.lamp.Shown) != 0 || len(h.screen.Frames) != 0 {
		t.Fatalf("indicator/display touched: lamp=%v frames=%v", h.lamp.Shown, h.screen.Frames)
	}
	if h.clk.Slept() != 0 {
		t.Fatalf("no waiting expected, slept %v", h.clk.Slept())
	}
}

func TestAlreadyAssociatedKeepsAttemptCounter(t *testing.T) {
	st := &fakeStation{associateAfter: 3}
	h := newHarness(t, st)

	if state, _ := h.mgr.EnsureAssociated(creds); state != Connected {
		t.Fatalf("first join failed: %s", state)
	}
	before := h.mgr.Attempts()

	if state, _ := h.mgr.EnsureAssociated(creds); state != Connected {
		t.Fatalf("second call: got=%s", state)
	}
	if h.mgr.Attempts() != before {
		t.Fatalf("attempts changed: got=%d want=%d", h.mgr.Attempts(), before)
	}
}

func TestJoinShowsBannerAndTurnsIndicatorOff(t *testing.T) {
	st := &fakeStation{associateAfter: 3}
	h := newHarness(t, st)

	state, err := h.mgr.EnsureAssociated(creds)
	if err != nil || state != Connected {
		t.Fatalf("state=%s err=%v", state, err)
	}
	if h.mgr.Attempts() != 3 {
		t.Fatalf("attempts: got=%d want=3", h.mgr.Attempts())
	}

	last, ok := h.lamp.Last()
	if !ok || last != indicator.Off.RGB() {
		t.Fatalf("indicator should be off, got %v", last)
	}

	frames := h.screen.Frames
	if len(frames) != 2 {
		t.Fatalf("expected banner then blank, got %d frames", len(frames))
	}
	if frames[0][0].Text != "Joined" || frames[0][1].Text != "WiFi" {
		t.Fatalf("unexpected banner: %+v", frames[0])
	}
	if len(frames[1]) != 0 {
		t.Fatalf("banner must be cleared")
	}

	sleeps := h.clk.Sleeps()
	if sleeps[len(sleeps)-1] != 50*time.Millisecond {
		t.Fatalf("banner hold: got=%v", sleeps[len(sleeps)-1])
	}
}

func TestRetryBudgetExhausted(t *testing.T) {
	st := &fakeStation{associateAfter: -1}
	h := newHarness(t, st)

	state, err := h.mgr.EnsureAssociated(creds)
	if err != nil {
		t.Fatalf("timeout is not fatal: %v", err)
	}
	if state != Failed {
		t.Fatalf("state: got=%s want=failed", state)
	}
	if h.mgr.Attempts() != 30 {
		t.Fatalf("attempts: got=%d want=30", h.mgr.Attempts())
	}
	if n := len(h.clk.Sleeps()); n != 30 {
		t.Fatalf("polling iterations: got=%d want=30", n)
	}
	if h.clk.Slept() != 30*time.Second {
		t.Fatalf("wall time: got=%v want=30s", h.clk.Slept())
	}
	if last := st.activations[len(st.activations)-1]; last {
		t.Fatalf("interface must be deactivated on failure")
	}
	if len(h.screen.Frames) != 0 {
		t.Fatalf("no banner on failure")
	}
}

func TestConnectDriverErrorIsFatal(t *testing.T) {
	st := &fakeStation{associateAfter: -1, connectErr: errors.New("wifi internal error")}
	h := newHarness(t, st)

	state, err := h.mgr.EnsureAssociated(creds)

	var fatal *FatalDriverError
	if !errors.As(err, &fatal) {
		t.Fatalf("expected FatalDriverError, got %v", err)
	}
	if fatal.Op != "connect" {
		t.Fatalf("op: got=%s", fatal.Op)
	}
	if state != Failed {
		t.Fatalf("state: got=%s", state)
	}

	last, _ := h.lamp.Last()
	if last != indicator.White.RGB() {
		t.Fatalf("indicator should be white, got %v", last)
	}
	if h.clk.Slept() != 5*time.Second {
		t.Fatalf("fatal hold: got=%v want=5s", h.clk.Slept())
	}
	if st.polls != 0 {
		t.Fatalf("no polling after driver error, got %d", st.polls)
	}
}

func TestActivateDriverErrorIsFatal(t *testing.T) {
	st := &fakeStation{activateErr: errors.New("no such device")}
	h := newHarness(t, st)

	_, err := h.mgr.EnsureAssociated(creds)

	var fatal *FatalDriverError
	if !errors.As(err, &fatal) || fatal.Op != "activate" {
		t.Fatalf("expected fatal activate error, got %v", err)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	lamp := indicator.NewLamp(&indicator.Recorder{}, nil)
	screen := display.NewScreen(&display.Recorder{}, nil)

	cfg := DefaultConfig()
	cfg.MaxAttempts = 0
	if _, err := New(cfg, &fakeStation{}, lamp, screen, nil, nil); err == nil {
		t.Fatalf("expected error for zero attempts")
	}
	if _, err := New(DefaultConfig(), nil, lamp, screen, nil, nil); err == nil {
		t.Fatalf("expected error for nil station")
	}
}
