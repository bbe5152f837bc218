// internal/panel/frame.go
package panel

import "strings"

// Frame is a character-cell back buffer for the text panel.
// Text is placed at the cell containing (x, y) and clipped at the edge.
type Frame struct {
	cells [Rows][Columns]byte
}

// NewFrame returns a blank frame.
func NewFrame() Frame {
	var f Frame
	f.Clear()
	return f
}

// Clear blanks every cell.
func (f *Frame) Clear() {
	for r := range f.cells {
		for c := range f.cells[r] {
			f.cells[r][c] = ' '
		}
	}
}

// Draw writes text starting at pixel (x, y).
// Off-panel origins are ignored; non-printable bytes become '?'.
func (f *Frame) Draw(x, y int, text string) {
	if x < 0 || y < 0 {
		return
	}
	row := y / GlyphHeight
	col := x / GlyphWidth
	if row >= Rows || col >= Columns {
		return
	}
	for i := 0; i < len(text) && col+i < Columns; i++ {
		b := text[i]
		if b < 0x20 || b > 0x7E {
			b = '?'
		}
		f.cells[row][col+i] = b
	}
}

// Lines returns each row with trailing blanks trimmed.
func (f *Frame) Lines() []string {
	out := make([]string, Rows)
	for r := range f.cells {
		out[r] = strings.TrimRight(string(f.cells[r][:]), " ")
	}
	return out
}

// Blank reports whether no cell holds a visible character.
func (f *Frame) Blank() bool {
	for _, ln := range f.Lines() {
		if ln != "" {
			return false
		}
	}
	return true
}
