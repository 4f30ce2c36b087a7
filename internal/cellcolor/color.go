package cellcolor

import (
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit RGB color in display order.
type Color struct {
	R, G, B uint8
}

var (
	Black = Color{}
	White = Color{R: 0xFF, G: 0xFF, B: 0xFF}
)

// Hex formats c as "#RRGGBB" with upper-case digits.
func (c Color) Hex() string {
	cf := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
	return strings.ToUpper(cf.Hex())
}

// String implements fmt.Stringer.
func (c Color) String() string { return c.Hex() }

// ParseHex parses "#RRGGBB" (either case) back into a Color.
func ParseHex(s string) (Color, error) {
	cf, err := colorful.Hex(s)
	if err != nil {
		return Color{}, err
	}
	r, g, b := cf.RGB255()
	return Color{R: r, G: g, B: b}, nil
}
