// internal/panel/frame_test.go
package panel

import (
	"errors"
	"testing"

	"github.com/tamzrod/linkmon/internal/indicator"
)

func TestFramePlacesTextByCell(t *testing.T) {
	f := NewFrame()
	f.Draw(10, 5, "Joined")
	f.Draw(17, 15, "WiFi")

	lines := f.Lines()
	if lines[0] != " Joined" {
		t.Fatalf("row 0: got=%q", lines[0])
	}
	if lines[1] != "  WiFi" {
		t.Fatalf("row 1: got=%q", lines[1])
	}
}

func TestFrameClipsAndSanitises(t *testing.T) {
	f := NewFrame()
	f.Draw(0, 20, "123456789ms")
	f.Draw(0, 30, "a\tb")
	f.Draw(64, 0, "off panel")
	f.Draw(0, 48, "off panel")
	f.Draw(-1, 0, "off panel")

	lines := f.Lines()
	if lines[2] != "12345678" {
		t.Fatalf("clip: got=%q", lines[2])
	}
	if lines[3] != "a?b" {
		t.Fatalf("sanitise: got=%q", lines[3])
	}
	if lines[0] != "" || lines[5] != "" {
		t.Fatalf("off-panel text leaked: %q", lines)
	}

	f.Clear()
	if !f.Blank() {
		t.Fatalf("expected blank after clear")
	}
}

func TestEncodeLayout(t *testing.T) {
	f := NewFrame()
	f.Draw(0, 10, "Google:")

	regs := Encode(State{
		Color:    indicator.Orange.RGB(),
		Shows:    7,
		Presents: 3,
		Frame:    f,
	})

	if len(regs) != SlotsPerPanel {
		t.Fatalf("block size: got=%d want=%d", len(regs), SlotsPerPanel)
	}
	if regs[SlotRed] != 0xff || regs[SlotGreen] != 0x22 || regs[SlotBlue] != 0 {
		t.Fatalf("colour: %v", regs[:3])
	}
	if regs[SlotShowCounter] != 7 || regs[SlotPresentCounter] != 3 {
		t.Fatalf("counters: %v", regs[3:5])
	}

	row1 := SlotTextStart + 1*RegsPerRow
	if regs[row1] != uint16('G')<<8|uint16('o') {
		t.Fatalf("row 1 reg 0: got=%04x", regs[row1])
	}
	if regs[row1+3] != uint16(':')<<8|uint16(' ') {
		t.Fatalf("row 1 reg 3: got=%04x", regs[row1+3])
	}
	if regs[SlotTextStart] != 0x2020 {
		t.Fatalf("blank row should be spaces, got=%04x", regs[SlotTextStart])
	}
}

type countingDevice struct {
	calls int
	err   error
}

func (c *countingDevice) SetColor(indicator.RGB) error { c.calls++; return c.err }
func (c *countingDevice) Show() error { c.calls++; return c.err }
func (c *countingDevice) Clear() error { c.calls++; return c.err }
func (c *countingDevice) DrawText(int, int, string) error { c.calls++; return c.err }
func (c *countingDevice) Present() error { c.calls++; return c.err }

func TestTeeDeliversDespiteFailures(t *testing.T) {
	bad := &countingDevice{err: errors.New("offline")}
	good := &countingDevice{}
	tee := Tee{bad, good}

	if err := tee.SetColor(indicator.Green.RGB()); err == nil {
		t.Fatalf("expected aggregated error")
	}
	if err := tee.Present(); err == nil {
		t.Fatalf("expected aggregated error")
	}
	if good.calls != 2 {
		t.Fatalf("good device calls: got=%d want=2", good.calls)
	}
}
