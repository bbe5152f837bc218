// internal/indicator/color.go
package indicator

import "fmt"

// RGB is one 8-bit-per-channel pixel value.
type RGB struct {
	R, G, B uint8
}

// Hex returns the colour as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Color is the closed set of indicator states.
type Color int

const (
	Off    Color = iota
	White        // association trouble
	Red          // average latency above 50ms
	Orange       // average latency above 25ms
	Green        // average latency 25ms or less
	Blue         // reserved
	Purple       // no target reachable
)

// Fixed palette. These values are the visual protocol and MUST NOT be configurable.
var palette = map[Color]RGB{
	Off:    {0x00, 0x00, 0x00},
	White:  {0xff, 0xff, 0xff},
	Red:    {0xff, 0x00, 0x00},
	Orange: {0xff, 0x22, 0x00},
	Green:  {0x00, 0xff, 0x00},
	Blue:   {0x00, 0x00, 0xff},
	Purple: {0x99, 0x00, 0xff},
}

// RGB returns the fixed triple for c. Unknown colours map to Off.
func (c Color) RGB() RGB {
	return palette[c]
}

func (c Color) String() string {
	switch c {
	case Off:
		return "off"
	case White:
		return "white"
	case Red:
		return "red"
	case Orange:
		return "orange"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Purple:
		return "purple"
	default:
		return fmt.Sprintf("color(%d)", int(c))
	}
}
