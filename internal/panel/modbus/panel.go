// internal/panel/modbus/panel.go
package modbus

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tamzrod/linkmon/internal/indicator"
	"github.com/tamzrod/linkmon/internal/panel"
)

// registerWriter is the exact contract the panel uses.
type registerWriter interface {
	WriteRegisters(addr uint16, regs []uint16) error
}

// Panel drives an RGB pixel and a text panel exposed as holding registers.
//
// SetColor, Clear and DrawText only touch local state. Show and Present
// push the changed registers. The first push, and any push after a
// failure, re-asserts the whole block.
type Panel struct {
	cli  registerWriter
	base uint16

	pending indicator.RGB
	back    panel.Frame
	shown   panel.State

	needFull bool
	last     []uint16
}

// New creates a panel whose block starts at base.
func New(cli registerWriter, base uint16) (*Panel, error) {
	if cli == nil {
		return nil, errors.New("panel modbus: client required")
	}
	if int(base)+panel.SlotsPerPanel > 0x10000 {
		return nil, fmt.Errorf("panel modbus: block at %d exceeds register space", base)
	}
	return &Panel{
		cli:      cli,
		base:     base,
		back:     panel.NewFrame(),
		shown:    panel.State{Frame: panel.NewFrame()},
		needFull: true,
	}, nil
}

// ---- indicator.Driver ----

func (p *Panel) SetColor(c indicator.RGB) error {
	p.pending = c
	return nil
}

func (p *Panel) Show() error {
	p.shown.Color = p.pending
	p.shown.Shows++
	return p.flush()
}

// ---- display.Driver ----

func (p *Panel) Clear() error {
	p.back.Clear()
	return nil
}

func (p *Panel) DrawText(x, y int, text string) error {
	p.back.Draw(x, y, text)
	return nil
}

func (p *Panel) Present() error {
	p.shown.Frame = p.back
	p.shown.Presents++
	return p.flush()
}

// ---- delivery ----

func (p *Panel) flush() error {
	regs := panel.Encode(p.shown)

	if p.needFull || len(p.last) != len(regs) {
		if err := p.cli.WriteRegisters(p.base, regs); err != nil {
			p.needFull = true
			return fmt.Errorf("panel modbus: full block write failed: %w", err)
		}
		p.needFull = false
		p.last = regs
		return nil
	}

	var errs []string
	for _, run := range changedRuns(p.last, regs) {
		addr := p.base + uint16(run.start)
		if err := p.cli.WriteRegisters(addr, regs[run.start:run.end]); err != nil {
			errs = append(errs, fmt.Sprintf("slots %d-%d write failed: %v", run.start, run.end-1, err))
			continue
		}
		copy(p.last[run.start:run.end], regs[run.start:run.end])
	}

	if len(errs) > 0 {
		// Any partial failure introduces doubt; re-assert on next flush.
		p.needFull = true
		return errors.New("panel modbus: " + strings.Join(errs, " | "))
	}
	return nil
}

type span struct {
	start int
	end   int // exclusive
}

// changedRuns returns maximal runs of differing registers.
func changedRuns(prev, next []uint16) []span {
	var out []span
	i := 0
	for i < len(next) {
		if prev[i] == next[i] {
			i++
			continue
		}
		j := i
		for j < len(next) && prev[j] != next[j] {
			j++
		}
		out = append(out, span{start: i, end: j})
		i = j
	}
	return out
}
