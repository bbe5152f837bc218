// internal/panel/layout.go
package panel

// Panel register block layout constants.
// These values define the protocol and MUST NOT be configurable.

// ---- INDICATOR ----

// SlotRed, SlotGreen, SlotBlue hold the shown pixel colour (0..255 each).
const (
	SlotRed   = 0
	SlotGreen = 1
	SlotBlue  = 2
)

// SlotShowCounter increments on every indicator Show.
const SlotShowCounter = 3

// SlotPresentCounter increments on every display Present.
const SlotPresentCounter = 4

// ---- TEXT FRAME ----

// Glyph cell size of the panel font, in pixels.
const (
	GlyphWidth  = 8
	GlyphHeight = 8
)

// Panel resolution in pixels.
const (
	PixelWidth  = 64
	PixelHeight = 48
)

// Text grid derived from resolution and glyph size.
const (
	Columns = PixelWidth / GlyphWidth   // 8
	Rows    = PixelHeight / GlyphHeight // 6
)

// RegsPerRow packs two ASCII characters per register.
const RegsPerRow = Columns / 2

// SlotTextStart is the first register of the text frame.
const SlotTextStart = 5

// SlotTextSlots is the number of registers holding text.
const SlotTextSlots = Rows * RegsPerRow

// SlotTextEnd is the last text register (inclusive).
const SlotTextEnd = SlotTextStart + SlotTextSlots - 1

// ---- BLOCK GEOMETRY ----

// SlotsPerPanel is the full block size.
const SlotsPerPanel = SlotTextEnd + 1
