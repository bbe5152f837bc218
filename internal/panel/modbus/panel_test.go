// internal/panel/modbus/panel_test.go
package modbus

import (
	"errors"
	"testing"

	"github.com/tamzrod/linkmon/internal/indicator"
	"github.com/tamzrod/linkmon/internal/panel"
)

type write struct {
	addr uint16
	regs []uint16
}

type fakeRegisterWriter struct {
	writes []write
	failN  int // fail the next N writes
}

func (f *fakeRegisterWriter) WriteRegisters(addr uint16, regs []uint16) error {
	if f.failN > 0 {
		f.failN--
		return errors.New("modbus: exception 4")
	}
	cp := make([]uint16, len(regs))
	copy(cp, regs)
	f.writes = append(f.writes, write{addr: addr, regs: cp})
	return nil
}

func (f *fakeRegisterWriter) last() write {
	return f.writes[len(f.writes)-1]
}

func TestFirstFlushWritesFullBlock(t *testing.T) {
	cli := &fakeRegisterWriter{}
	p, err := New(cli, 100)
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}

	_ = p.SetColor(indicator.Green.RGB())
	if err := p.Show(); err != nil {
		t.Fatalf("show: %v", err)
	}

	w := cli.last()
	if w.addr != 100 || len(w.regs) != panel.SlotsPerPanel {
		t.Fatalf("expected full block at 100, got addr=%d len=%d", w.addr, len(w.regs))
	}
	if w.regs[panel.SlotGreen] != 0xff || w.regs[panel.SlotShowCounter] != 1 {
		t.Fatalf("unexpected block head: %v", w.regs[:5])
	}
}

func TestIncrementalFlushWritesOnlyChangedRuns(t *testing.T) {
	cli := &fakeRegisterWriter{}
	p, _ := New(cli, 0)

	_ = p.SetColor(indicator.Green.RGB())
	_ = p.Show()

	_ = p.SetColor(indicator.Red.RGB())
	if err := p.Show(); err != nil {
		t.Fatalf("show: %v", err)
	}

	// R: 0->ff, G: ff->0, B unchanged, show counter 1->2
	if len(cli.writes) != 3 {
		t.Fatalf("expected 1 full + 2 runs, got %d writes", len(cli.writes))
	}
	if w := cli.writes[1]; w.addr != panel.SlotRed || len(w.regs) != 2 {
		t.Fatalf("colour run: %+v", w)
	}
	if w := cli.writes[2]; w.addr != panel.SlotShowCounter || w.regs[0] != 2 {
		t.Fatalf("counter run: %+v", w)
	}
}

func TestPresentWritesOnlyTextThatChanged(t *testing.T) {
	cli := &fakeRegisterWriter{}
	p, _ := New(cli, 0)
	_ = p.Present()

	_ = p.Clear()
	_ = p.DrawText(0, 10, "Bing:")
	if err := p.Present(); err != nil {
		t.Fatalf("present: %v", err)
	}

	// present counter + row 1 text
	if len(cli.writes) != 3 {
		t.Fatalf("expected 3 writes, got %d", len(cli.writes))
	}
	text := cli.writes[2]
	if text.addr != panel.SlotTextStart+panel.RegsPerRow {
		t.Fatalf("text addr: got=%d", text.addr)
	}
	if text.regs[0] != uint16('B')<<8|uint16('i') {
		t.Fatalf("text reg: got=%04x", text.regs[0])
	}
}

func TestDrawWithoutPresentIsInvisible(t *testing.T) {
	cli := &fakeRegisterWriter{}
	p, _ := New(cli, 0)

	_ = p.DrawText(0, 0, "hidden")
	_ = p.SetColor(indicator.White.RGB())
	_ = p.Show()

	full := cli.last().regs
	if full[panel.SlotTextStart] != 0x2020 {
		t.Fatalf("undrawn text leaked into block: %04x", full[panel.SlotTextStart])
	}
}

func TestFailureForcesFullReassert(t *testing.T) {
	cli := &fakeRegisterWriter{}
	p, _ := New(cli, 0)
	_ = p.Show()

	cli.failN = 1
	_ = p.SetColor(indicator.Purple.RGB())
	if err := p.Show(); err == nil {
		t.Fatalf("expected write error")
	}

	_ = p.SetColor(indicator.Off.RGB())
	if err := p.Show(); err != nil {
		t.Fatalf("recovery show: %v", err)
	}
	if w := cli.last(); len(w.regs) != panel.SlotsPerPanel {
		t.Fatalf("expected full re-assert after failure, got %d regs", len(w.regs))
	}
}

func TestNewRejectsOverflowingBase(t *testing.T) {
	if _, err := New(&fakeRegisterWriter{}, 0xFFFF); err == nil {
		t.Fatalf("expected error for block beyond register space")
	}
	if _, err := New(nil, 0); err == nil {
		t.Fatalf("expected error for nil client")
	}
}

func TestChangedRuns(t *testing.T) {
	prev := []uint16{1, 2, 3, 4, 5, 6}
	next := []uint16{1, 9, 9, 4, 5, 0}

	runs := changedRuns(prev, next)
	if len(runs) != 2 {
		t.Fatalf("runs: %+v", runs)
	}
	if runs[0] != (span{1, 3}) || runs[1] != (span{5, 6}) {
		t.Fatalf("runs: %+v", runs)
	}
}
