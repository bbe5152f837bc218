// internal/panel/encode.go
package panel

import "github.com/tamzrod/linkmon/internal/indicator"

// State is exactly what a panel shows: the flushed colour and the presented frame.
type State struct {
	Color    indicator.RGB
	Shows    uint16
	Presents uint16
	Frame    Frame
}

// Encode converts a State into a full panel register block.
// Layout is protocol-locked.
// No IO. No side effects.
func Encode(s State) []uint16 {
	regs := make([]uint16, SlotsPerPanel)

	regs[SlotRed] = uint16(s.Color.R)
	regs[SlotGreen] = uint16(s.Color.G)
	regs[SlotBlue] = uint16(s.Color.B)
	regs[SlotShowCounter] = s.Shows
	regs[SlotPresentCounter] = s.Presents

	copy(regs[SlotTextStart:SlotTextEnd+1], encodeText(s.Frame))
	return regs
}

// encodeText packs each row into RegsPerRow registers.
// Each register stores two ASCII bytes in big-endian order.
func encodeText(f Frame) []uint16 {
	out := make([]uint16, SlotTextSlots)
	for r := 0; r < Rows; r++ {
		for c := 0; c < Columns; c += 2 {
			hi := f.cells[r][c]
			lo := f.cells[r][c+1]
			out[r*RegsPerRow+c/2] = uint16(hi)<<8 | uint16(lo)
		}
	}
	return out
}
